// Package cpset defines the fixed ASCII code-point sets used throughout
// the parser to decide whether a byte must be percent-encoded, and the
// small related predicates (hex digits, forbidden host/domain code
// points) that the host parser and percent codec share.
//
// Sets are represented as 128-bit bitmaps over the ASCII range, built
// once at init time with github.com/willf/bitset the way
// nlnwa/whatwg-url trims code points through a *bitset.BitSet — here
// the bitmaps are the percent-encode sets of the URL Standard rather
// than a trim set.
package cpset

import "github.com/willf/bitset"

// Set is an immutable membership test over ASCII code points 0..127.
// Code points ≥ 0x80 are never members of a no-encode set: non-ASCII
// bytes are always percent-encoded.
type Set struct {
	bits *bitset.BitSet
}

// Has reports whether c is a member of the set. Non-ASCII code points
// are never members.
func (s Set) Has(c rune) bool {
	if c < 0 || c > 0x7f {
		return false
	}
	return s.bits.Test(uint(c))
}

func newSet(members func(c rune) bool) Set {
	b := bitset.New(128)
	for c := rune(0); c < 128; c++ {
		if members(c) {
			b.Set(uint(c))
		}
	}
	return Set{bits: b}
}

// union returns a set containing every member of a or b.
func union(a, b Set) Set {
	return newSet(func(c rune) bool { return a.Has(c) || b.Has(c) })
}

// minus returns a set containing the members of a that are not in b.
func minus(a Set, exclude ...rune) Set {
	excluded := make(map[rune]bool, len(exclude))
	for _, c := range exclude {
		excluded[c] = true
	}
	return newSet(func(c rune) bool { return a.Has(c) && !excluded[c] })
}

// C0Control is the C0-control percent-encode set: every code point
// less than U+0020 (SP), plus DEL. Unlike the sets below, its members
// are the code points to encode. Non-ASCII code points are not members
// (Has reports false for them).
var C0Control = newSet(func(c rune) bool { return c < 0x20 || c == 0x7f })

func isPrintableASCII(c rune) bool { return c >= 0x20 && c < 0x7f }

var printable = newSet(isPrintableASCII)

// Fragment holds the code points the fragment percent-encode set
// leaves unencoded.
var Fragment = minus(printable, ' ', '"', '<', '>', '`')

// Query holds the code points the query percent-encode set leaves
// unencoded.
var Query = minus(printable, ' ', '"', '#', '<', '>')

// SpecialQuery holds the code points the special-query percent-encode
// set leaves unencoded.
var SpecialQuery = minus(Query, '\'')

// Path holds the code points the path percent-encode set leaves
// unencoded.
var Path = minus(Query, '?', '`', '{', '}')

// Userinfo holds the code points the userinfo percent-encode set
// leaves unencoded.
var Userinfo = minus(Path, '/', ':', ';', '=', '@', '[', '\\', ']', '^', '|')

// Component holds the code points the component percent-encode set
// leaves unencoded.
var Component = minus(Userinfo, '$', '%', '&', '+', ',')

// ApplicationFormURLEncoded is the set of bytes the
// application/x-www-form-urlencoded serializer leaves unescaped.
var ApplicationFormURLEncoded = newSet(func(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c == '*' || c == '-' || c == '.' || c == '_':
		return true
	}
	return false
})

// ForbiddenHost is the forbidden-host code-point set.
var ForbiddenHost = newSet(func(c rune) bool {
	switch c {
	case 0x00, 0x09, 0x0a, 0x0d, ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
})

// ForbiddenDomain is the forbidden-domain code-point set: forbidden
// host points, unioned with the C0 controls, '%' and U+007F.
var ForbiddenDomain = union(ForbiddenHost, union(C0Control, newSet(func(c rune) bool {
	return c == '%'
})))

// IsASCIIHexDigit reports whether c is 0-9, A-F or a-f.
func IsASCIIHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// IsASCIIAlpha reports whether c is an ASCII letter.
func IsASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsASCIIAlphanumeric reports whether c is an ASCII letter or digit.
func IsASCIIAlphanumeric(c rune) bool {
	return IsASCIIAlpha(c) || (c >= '0' && c <= '9')
}

// IsASCIIDigit reports whether c is an ASCII digit.
func IsASCIIDigit(c rune) bool { return c >= '0' && c <= '9' }

// IsC0ControlOrSpace reports whether c is a C0 control or space, the
// trim set used to strip leading/trailing junk before parsing.
func IsC0ControlOrSpace(c rune) bool { return c <= 0x20 }

// IsASCIITabOrNewline reports whether c is TAB, LF or CR, the set
// stripped from the interior of the input before parsing.
func IsASCIITabOrNewline(c rune) bool { return c == 0x09 || c == 0x0a || c == 0x0d }
