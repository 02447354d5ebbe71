package urlparser

// Equals implements §8's equality testable property:
// Equals(a, b, false) ⇔ a.Href() == b.Href(); with excludeFragments
// true, the comparison ignores both records' fragment component.
func (u *URL) Equals(other *URL, excludeFragments bool) bool {
	if !u.valid || !other.valid {
		return false
	}
	if excludeFragments {
		return u.HrefExcludingFragment() == other.HrefExcludingFragment()
	}
	return u.Href() == other.Href()
}
