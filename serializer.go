package urlparser

import (
	"strconv"
	"strings"
)

// rebuild recomputes the canonical string and the offset array from
// the record's fields. It is the Serializer contract of §4.4 recast
// as "recompute on every commit" rather than "stream incrementally
// during parse": the cached canonical string has monotonically
// non-decreasing offsets and separators emitted at part transitions,
// and the state machine operates on the structured record fields and
// defers serialization to this one pass. Href and
// HrefExcludingFragment read the cached string; the component getters
// read the record's fields. See DESIGN.md for the rationale.
func (u *URL) rebuild() {
	var b strings.Builder
	b.Grow(64)

	set := func(p part, st presence) { u.present[p] = st; u.offsets[p] = b.Len() }

	b.WriteString(u.scheme)
	set(partScheme, presenceSet)

	if u.hasAuthority {
		b.WriteString("://")
	} else {
		b.WriteByte(':')
	}
	set(partSchemeSep, presenceSet)

	if u.hasAuthority {
		if u.username != "" || u.hasPassword {
			b.WriteString(u.username)
		}
		set(partUsername, presenceSet)

		if u.hasPassword {
			b.WriteByte(':')
			b.WriteString(u.password)
		}
		set(partPassword, presenceSet)

		if u.username != "" || u.hasPassword {
			b.WriteByte('@')
		}
		set(partHostStart, presenceSet)

		hostStr := u.host.String()
		b.WriteString(hostStr)
		if !u.hasHost {
			set(partHost, presenceNull)
		} else if hostStr == "" {
			set(partHost, presenceEmpty)
		} else {
			set(partHost, presenceSet)
		}

		if u.port >= 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.port))
			u.present[partPort] = presenceSet
		} else {
			u.present[partPort] = presenceNull
		}
		u.offsets[partPort] = b.Len()
	} else {
		set(partUsername, presenceUnset)
		set(partPassword, presenceUnset)
		set(partHostStart, presenceUnset)
		set(partHost, presenceNull)
		u.present[partPort] = presenceNull
		u.offsets[partPort] = b.Len()
	}

	pathPrefix := u.computePathPrefix()
	b.WriteString(pathPrefix)
	set(partPathPrefix, presenceSet)

	if u.cannotBeBase {
		b.WriteString(u.opaquePath)
	} else {
		for _, seg := range u.pathSegments {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}
	set(partPath, presenceSet)

	if u.query != nil {
		b.WriteByte('?')
		b.WriteString(*u.query)
		if *u.query == "" {
			set(partQuery, presenceEmpty)
		} else {
			set(partQuery, presenceSet)
		}
	} else {
		set(partQuery, presenceNull)
	}

	if u.fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.fragment)
		if *u.fragment == "" {
			set(partFragment, presenceEmpty)
		} else {
			set(partFragment, presenceSet)
		}
	} else {
		set(partFragment, presenceNull)
	}

	u.cachedHref = b.String()
}

// computePathPrefix implements the "/." path-prefix quirk of §3/§4.1:
// emitted iff host is null, the path is a non-opaque list with ≥2
// segments, and the first two characters of the serialized path would
// otherwise be "//".
func (u *URL) computePathPrefix() string {
	if u.hasAuthority || u.cannotBeBase {
		return ""
	}
	if len(u.pathSegments) < 2 {
		return ""
	}
	if u.pathSegments[0] == "" {
		return "/."
	}
	return ""
}

func (u *URL) substring(p part) string {
	start := 0
	if p > 0 {
		start = u.offsets[p-1]
	}
	end := u.offsets[p]
	if start > end || start > len(u.cachedHref) || end > len(u.cachedHref) {
		return ""
	}
	return u.cachedHref[start:end]
}

// Href returns the canonical serialization of the record, fragment
// included.
func (u *URL) Href() string {
	if !u.valid {
		return ""
	}
	return u.cachedHref
}

// HrefExcludingFragment returns the canonical serialization without a
// trailing "#fragment", used by Equals and by callers that need a
// fragment-insensitive identity.
func (u *URL) HrefExcludingFragment() string {
	if !u.valid {
		return ""
	}
	end := u.offsets[partQuery]
	return u.cachedHref[:end]
}

// String implements fmt.Stringer as Href.
func (u *URL) String() string { return u.Href() }

// Protocol returns the scheme component followed by ":".
func (u *URL) Protocol() string {
	if !u.valid {
		return ""
	}
	return u.scheme + ":"
}

// Username returns the username component, percent-encoded.
func (u *URL) Username() string {
	if !u.valid {
		return ""
	}
	return u.username
}

// Password returns the password component, percent-encoded.
func (u *URL) Password() string {
	if !u.valid {
		return ""
	}
	return u.password
}

// Host returns "hostname[:port]", or "" if there is no host.
func (u *URL) Host() string {
	if !u.valid || !u.hasHost {
		return ""
	}
	h := u.host.String()
	if u.port >= 0 {
		return h + ":" + strconv.Itoa(u.port)
	}
	return h
}

// Hostname returns the host component alone.
func (u *URL) Hostname() string {
	if !u.valid || !u.hasHost {
		return ""
	}
	return u.host.String()
}

// Port returns the port as a string, or "" if there is none.
func (u *URL) Port() string {
	if !u.valid || u.port < 0 {
		return ""
	}
	return strconv.Itoa(u.port)
}

// Pathname returns the path component, "/.": prefix included when
// present.
func (u *URL) Pathname() string {
	if !u.valid {
		return ""
	}
	return u.computePathPrefix() + u.serializedPath()
}

func (u *URL) serializedPath() string {
	if u.cannotBeBase {
		return u.opaquePath
	}
	var b strings.Builder
	for _, seg := range u.pathSegments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// Search returns "" or "?query".
func (u *URL) Search() string {
	if !u.valid || u.query == nil || *u.query == "" {
		return ""
	}
	return "?" + *u.query
}

// Hash returns "" or "#fragment".
func (u *URL) Hash() string {
	if !u.valid || u.fragment == nil || *u.fragment == "" {
		return ""
	}
	return "#" + *u.fragment
}

// RawQuery returns the query component without the leading "?", and
// whether a query is present at all (nil vs empty string).
func (u *URL) RawQuery() (string, bool) {
	if u.query == nil {
		return "", false
	}
	return *u.query, true
}
