// Package ipv6 parses and serializes the bracketed IPv6 host form of
// §4.3: eight 16-bit pieces, a single "::" compression run, and an
// optional embedded IPv4 tail in the last two pieces.
package ipv6

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned for any input that does not parse as
// a valid IPv6 address.
var ErrInvalidAddress = errors.New("invalid IPv6 address")

// Address is eight 16-bit pieces, most significant piece first.
type Address [8]uint16

func isASCIIHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Parse parses s (without the surrounding brackets) as an IPv6
// address.
func Parse(s string) (Address, error) {
	var addr Address
	pieceIndex := 0
	compress := -1

	i := 0
	n := len(s)

	if n > 0 && s[0] == ':' {
		if n < 2 || s[1] != ':' {
			return addr, ErrInvalidAddress
		}
		i = 2
		pieceIndex++
		compress = pieceIndex
	}

	for i < n {
		if pieceIndex == 8 {
			return addr, ErrInvalidAddress
		}
		if s[i] == ':' {
			if compress != -1 {
				return addr, ErrInvalidAddress
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value := 0
		length := 0
		for length < 4 && i < n && isASCIIHexDigit(s[i]) {
			d, _ := strconv.ParseUint(s[i:i+1], 16, 8)
			value = value*16 + int(d)
			i++
			length++
		}
		if length == 0 {
			return addr, ErrInvalidAddress
		}

		if i < n && s[i] == '.' {
			if length == 0 {
				return addr, ErrInvalidAddress
			}
			if pieceIndex > 6 {
				return addr, ErrInvalidAddress
			}
			numbersSeen := 0
			// Rewind to re-scan the run as an IPv4 tail: find the
			// start of this numeric group.
			start := i - length
			ipv4Str := s[start:]
			// ipv4Str runs to end-of-input per the grammar (the tail
			// is always the last thing in the address).
			parts := strings.Split(ipv4Str, ".")
			if len(parts) != 4 {
				return addr, ErrInvalidAddress
			}
			for pi, part := range parts {
				numbersSeen++
				if part == "" {
					return addr, ErrInvalidAddress
				}
				if len(part) > 1 && part[0] == '0' {
					return addr, ErrInvalidAddress
				}
				for _, c := range part {
					if c < '0' || c > '9' {
						return addr, ErrInvalidAddress
					}
				}
				v, err := strconv.Atoi(part)
				if err != nil || v > 255 {
					return addr, ErrInvalidAddress
				}
				if pi%2 == 0 {
					addr[pieceIndex] = uint16(v) << 8
				} else {
					addr[pieceIndex] |= uint16(v)
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				return addr, ErrInvalidAddress
			}
			i = n
			break
		}

		addr[pieceIndex] = uint16(value)
		pieceIndex++

		if i < n {
			if s[i] != ':' {
				return addr, ErrInvalidAddress
			}
			i++
			if i == n {
				return addr, ErrInvalidAddress
			}
		}
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for swaps > 0 && pieceIndex >= 0 {
			addr[pieceIndex], addr[compress+swaps-1] = addr[compress+swaps-1], addr[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return addr, ErrInvalidAddress
	}

	return addr, nil
}

// Serialize renders addr in canonical form: the longest run of ≥2
// consecutive zero pieces (leftmost on a tie) compressed as "::",
// other pieces as lower-case hex with no leading zeros.
func Serialize(addr Address) string {
	longestStart, longestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if addr[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > longestLen {
				longestStart, longestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if longestLen < 2 {
		longestStart = -1
	}

	var b strings.Builder
	b.Grow(39)
	ignore0 := false
	for i := 0; i < 8; i++ {
		if ignore0 {
			if addr[i] == 0 {
				continue
			}
			ignore0 = false
		}
		if i == longestStart {
			if i == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			ignore0 = true
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(addr[i]), 16))
		if i != 7 {
			b.WriteByte(':')
		}
	}
	return b.String()
}
