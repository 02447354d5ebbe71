// Package ipv4 parses and serializes the IPv4 numeric host forms of
// §4.3: dotted 1-4 part addresses with decimal, octal and hex parts,
// folded into a single uint32 and serialized back as dotted decimal.
package ipv4

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned for any input that is not a valid
// IPv4 address per the "ends in a number" + "parse IPv4" algorithm.
var ErrInvalidAddress = errors.New("invalid IPv4 address")

// EndsInNumber reports whether domain's last non-empty, dot-separated
// label looks like a number: either all ASCII digits, or "0x"/"0X"
// followed by all hex digits (an empty remainder counts).
func EndsInNumber(domain string) bool {
	parts := strings.Split(domain, ".")
	last := parts[len(parts)-1]
	if last == "" {
		if len(parts) < 2 {
			return false
		}
		last = parts[len(parts)-2]
	}
	if last == "" {
		return false
	}
	if isAllDigits(last) {
		return true
	}
	if len(last) >= 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		return isAllHex(last[2:])
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAllHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// parseNumber parses one dot-separated part as a "number": a "0x"/"0X"
// prefix selects hex, a leading "0" selects octal, otherwise decimal.
// The value must fit in a uint32; a larger value is rejected (ok is
// false), matching §4.3's "each part must be ≤ u32::MAX".
func parseNumber(part string) (uint64, bool) {
	if part == "" {
		return 0, false
	}
	base := 10
	digits := part
	switch {
	case len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X'):
		base = 16
		digits = part[2:]
		if digits == "" {
			return 0, true
		}
	case len(part) >= 1 && part[0] == '0':
		base = 8
		digits = part[1:]
		if digits == "" {
			return 0, true
		}
	}
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false
	}
	if n > 0xFFFFFFFF {
		return 0, false
	}
	return n, true
}

// Parse parses s (with no brackets) as an IPv4 address; a single
// trailing empty part (a trailing dot) is dropped. It returns the address
// folded into a uint32 in network byte order semantics (most
// significant octet first, as a plain integer).
func Parse(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 0 && parts[len(parts)-1] == "" && len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 || len(parts) > 4 {
		return 0, ErrInvalidAddress
	}

	numbers := make([]uint64, 0, len(parts))
	for _, p := range parts {
		n, ok := parseNumber(p)
		if !ok {
			return 0, ErrInvalidAddress
		}
		numbers = append(numbers, n)
	}

	for i := 0; i < len(numbers)-1; i++ {
		if numbers[i] > 255 {
			return 0, ErrInvalidAddress
		}
	}
	last := numbers[len(numbers)-1]
	maxLast := uint64(1) << uint(8*(5-len(numbers)))
	if last >= maxLast {
		return 0, ErrInvalidAddress
	}

	var addr uint32
	for i := 0; i < len(numbers)-1; i++ {
		addr |= uint32(numbers[i]) << uint(8*(3-i))
	}
	addr |= uint32(last)
	return addr, nil
}

// Serialize renders addr as canonical dotted-decimal.
func Serialize(addr uint32) string {
	var b strings.Builder
	b.Grow(15)
	for i := 3; i >= 0; i-- {
		octet := byte(addr >> uint(8*i))
		b.WriteString(strconv.Itoa(int(octet)))
		if i != 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}
