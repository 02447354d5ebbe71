// Package host implements the host parser dispatch of §4.3: bracketed
// input goes to IPv6, opaque schemes get an opaque host, and
// everything else is a domain, fast-pathed through ASCII lower-casing
// or routed through IDNA when non-ASCII or percent-escapes are
// present.
package host

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/upa-url/upa-sub001/internal/cpset"
	"github.com/upa-url/upa-sub001/internal/ipv4"
	"github.com/upa-url/upa-sub001/internal/ipv6"
	"github.com/upa-url/upa-sub001/internal/percent"
)

// Kind tags the variant a Host holds, mirroring the tagged {Empty,
// Opaque, Domain, IPv4, IPv6} host type of §3.
type Kind int

const (
	Empty Kind = iota
	Opaque
	Domain
	IPv4
	IPv6
)

// Host is the parsed host, carrying exactly the fields its Kind needs.
type Host struct {
	Kind   Kind
	Opaque string // Kind == Opaque or Domain: the string form
	IPv4   uint32
	IPv6   ipv6.Address
}

// String renders the host the way it must appear in a canonical URL:
// IPv6 addresses are bracketed, IPv4 is dotted-decimal, everything
// else is the stored string verbatim.
func (h Host) String() string {
	switch h.Kind {
	case Empty:
		return ""
	case IPv4:
		return ipv4.Serialize(h.IPv4)
	case IPv6:
		return "[" + ipv6.Serialize(h.IPv6) + "]"
	default:
		return h.Opaque
	}
}

// ErrKind enumerates the failure reasons the host parser can produce;
// callers map these onto the closed error taxonomy of §7.
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrEmptyHost
	ErrIDNA
	ErrInvalidIPv4
	ErrInvalidIPv6
	ErrInvalidDomainCharacter
)

// Error wraps an ErrKind with the input that triggered it.
type Error struct {
	Kind  ErrKind
	Input string
}

func (e *Error) Error() string { return "invalid host: " + e.Input }

// ASCIIDomainToASCII is the narrow IDNA collaborator contract of §6:
// Unicode domain in, A-label domain or failure out. The default
// implementation is backed by golang.org/x/net/idna, configured the
// way §6 mandates (Nontransitional, every Check* off,
// UseSTD3ASCIIRules off, VerifyDNSLength off).
type ASCIIDomainToASCII func(input string) (string, error)

var defaultIDNAProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.ValidateLabels(false),
	idna.StrictDomainName(false),
)

// ToASCII adapts golang.org/x/net/idna to the ASCIIDomainToASCII
// contract: Nontransitional processing, no bidi/joiner/hyphen checks
// (BidiRule and CheckHyphens are both opt-in in x/net/idna and are
// left unset here), and UseSTD3ASCIIRules/VerifyDNSLength off via
// StrictDomainName(false)/ValidateLabels(false).
func ToASCII(input string) (string, error) {
	return defaultIDNAProfile.ToASCII(input)
}

// Parser dispatches host parsing, using ToASCII as its IDNA
// collaborator. Parse's isSpecial argument selects special-scheme
// rules (non-special schemes may hold an opaque host and accept an
// empty host where special schemes cannot). The host package treats
// file like any other special scheme; localhost collapsing is done by
// the caller.
type Parser struct {
	ToASCII ASCIIDomainToASCII
}

// NewParser returns a Parser backed by the default x/net/idna profile.
func NewParser() *Parser { return &Parser{ToASCII: ToASCII} }

// Parse parses input as a host. Input starting with "[" must end with
// "]"; Parse strips the brackets and parses the interior as IPv6.
// isSpecial selects special-scheme
// authority rules; isOpaque additionally selects the opaque-host path
// for non-special schemes (isOpaque implies !isSpecial).
func (p *Parser) Parse(input string, isSpecial, isOpaque bool) (Host, *Error) {
	if input == "" {
		if isSpecial {
			return Host{}, &Error{Kind: ErrEmptyHost, Input: input}
		}
		return Host{Kind: Empty}, nil
	}

	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, &Error{Kind: ErrInvalidIPv6, Input: input}
		}
		addr, err := ipv6.Parse(input[1 : len(input)-1])
		if err != nil {
			return Host{}, &Error{Kind: ErrInvalidIPv6, Input: input}
		}
		return Host{Kind: IPv6, IPv6: addr}, nil
	}

	if isOpaque {
		return p.parseOpaque(input)
	}

	return p.parseDomain(input)
}

func (p *Parser) parseOpaque(input string) (Host, *Error) {
	for _, r := range input {
		if cpset.ForbiddenHost.Has(r) {
			return Host{}, &Error{Kind: ErrInvalidDomainCharacter, Input: input}
		}
	}
	var b strings.Builder
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case r >= 0x80:
			percent.EncodeRune(&b, r, cpset.C0Control)
		case cpset.C0Control.Has(r):
			percent.EncodeByte(&b, byte(r))
		default:
			b.WriteByte(byte(r))
		}
		i += size
	}
	out := b.String()
	if out == "" {
		return Host{Kind: Empty}, nil
	}
	return Host{Kind: Opaque, Opaque: out}, nil
}

func (p *Parser) parseDomain(input string) (Host, *Error) {
	domain := input
	if isASCIIFastPathEligible(input) {
		domain = strings.ToLower(input)
	} else {
		decoded := percent.Decode(input)
		ascii, err := p.ToASCII(decoded)
		if err != nil {
			return Host{}, &Error{Kind: ErrIDNA, Input: input}
		}
		domain = ascii
	}

	for _, r := range domain {
		if cpset.ForbiddenDomain.Has(r) {
			return Host{}, &Error{Kind: ErrInvalidDomainCharacter, Input: input}
		}
	}

	if ipv4.EndsInNumber(domain) {
		addr, err := ipv4.Parse(domain)
		if err != nil {
			return Host{}, &Error{Kind: ErrInvalidIPv4, Input: input}
		}
		return Host{Kind: IPv4, IPv4: addr}, nil
	}

	if domain == "" {
		return Host{Kind: Empty}, nil
	}
	return Host{Kind: Domain, Opaque: domain}, nil
}

// isASCIIFastPathEligible reports whether input is ASCII-only, has no
// '%' and no label starting with the ACE prefix "xn--" -- the fast
// path of §4.3 that skips IDNA entirely.
func isASCIIFastPathEligible(input string) bool {
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c >= 0x80 || c == '%' {
			return false
		}
	}
	for _, label := range strings.Split(input, ".") {
		if len(label) >= 4 && strings.EqualFold(label[:4], "xn--") {
			return false
		}
	}
	return true
}
