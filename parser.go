package urlparser

import (
	"strconv"
	"strings"

	"github.com/upa-url/upa-sub001/internal/buffer"
	"github.com/upa-url/upa-sub001/internal/cpset"
	"github.com/upa-url/upa-sub001/internal/host"
	"github.com/upa-url/upa-sub001/internal/pathcanon"
	"github.com/upa-url/upa-sub001/internal/percent"
	"github.com/upa-url/upa-sub001/internal/utfdecode"
	"github.com/upa-url/upa-sub001/urlerrors"
)

const eof rune = -1

var hostParser = host.NewParser()

// ValidationErrorFunc receives a human-readable description of a
// non-fatal deviation the parser noticed (§7: "Implementations may
// expose a hook to receive validation-error callbacks"). It never
// affects parsing outcome.
type ValidationErrorFunc func(message string)

// ParseOptions controls the (rare) knobs a caller can set on a parse.
type ParseOptions struct {
	OnValidationError ValidationErrorFunc
	MaxInputLength    int // 0 means "use the package default"
}

type parseContext struct {
	input    []rune
	base     *URL
	override State
	opts     ParseOptions
	url      *URL

	isSpecial bool
}

func (pc *parseContext) warn(msg string) {
	if pc.opts.OnValidationError != nil {
		pc.opts.OnValidationError(msg)
	}
}

func (pc *parseContext) at(p int) rune {
	if p < 0 || p >= len(pc.input) {
		return eof
	}
	return pc.input[p]
}

func isASCIIAlpha(c rune) bool { return cpset.IsASCIIAlpha(c) }

func toASCIILower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// basicParse runs the basic URL parser (§4.1) against input, against
// base (nil for none) with an optional state-override, writing into
// target (a fresh record for a plain parse; the setter front-end
// passes a scratch clone of the record being mutated so that parts
// the override's states never touch survive unchanged).
func basicParse(rawInput []rune, base *URL, override State, opts ParseOptions, target *URL) (*URL, *urlerrors.Error) {
	u := target
	pc := &parseContext{base: base, override: override, opts: opts, url: u}
	if override != stateNone {
		pc.isSpecial = u.info.special
	}

	limit := opts.MaxInputLength
	if limit <= 0 {
		limit = defaultMaxInputLength
	}
	if len(rawInput) > limit {
		return nil, urlerrors.New("parse", urlerrors.CodeOverflow, "")
	}

	input := rawInput
	if override == stateNone {
		start, end := 0, len(input)
		for start < end && cpset.IsC0ControlOrSpace(input[start]) {
			start++
		}
		for end > start && cpset.IsC0ControlOrSpace(input[end-1]) {
			end--
		}
		if start != 0 || end != len(input) {
			pc.warn("leading or trailing C0 control or space")
		}
		input = input[start:end]
	}
	{
		stripped := input[:0:0]
		changed := false
		for _, c := range input {
			if cpset.IsASCIITabOrNewline(c) {
				changed = true
				continue
			}
			stripped = append(stripped, c)
		}
		if changed {
			pc.warn("ASCII tab or newline in URL")
			input = stripped
		}
	}
	pc.input = input

	if err := pc.run(); err != nil {
		return nil, err
	}
	u.valid = true
	u.rebuild()
	return u, nil
}

// Parse parses rawURL with no base.
func Parse(rawURL string) (*URL, error) {
	return ParseWithOptions(rawURL, nil, ParseOptions{})
}

// ParseRef parses rawURL relative to base.
func ParseRef(rawURL string, base *URL) (*URL, error) {
	return ParseWithOptions(rawURL, base, ParseOptions{})
}

// ParseWithOptions is Parse/ParseRef with explicit options.
func ParseWithOptions(rawURL string, base *URL, opts ParseOptions) (*URL, error) {
	return parseCodePoints(utfdecode.FromUTF8(rawURL), base, opts)
}

// ParseUTF16 parses a UTF-16 code-unit sequence, the form a JS-hosted
// caller holds a URL string in, per §9's "over-loaded input forms"
// design note.
func ParseUTF16(units []uint16, base *URL) (*URL, error) {
	return parseCodePoints(utfdecode.FromUTF16(units), base, ParseOptions{})
}

// ParseUTF32 parses a raw code-point (UTF-32) sequence.
func ParseUTF32(points []rune, base *URL) (*URL, error) {
	return parseCodePoints(utfdecode.FromUTF32(points), base, ParseOptions{})
}

func parseCodePoints(codePoints []rune, base *URL, opts ParseOptions) (*URL, error) {
	if base != nil && !base.valid {
		return nil, urlerrors.New("parse", urlerrors.CodeInvalidBase, string(codePoints))
	}
	u, err := basicParse(codePoints, base, stateNone, opts, &URL{port: -1})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (pc *parseContext) run() *urlerrors.Error {
	u := pc.url
	state := stateSchemeStart
	if pc.override != stateNone {
		state = pc.override
	}

	buf := buffer.New()
	atSignSeen := false
	passwordTokenSeen := false
	insideBrackets := false
	pointer := 0

	for pointer <= len(pc.input) {
		c := pc.at(pointer)

		switch state {
		case stateSchemeStart:
			if isASCIIAlpha(c) {
				buf.WriteRune(toASCIILower(c))
				state = stateScheme
			} else if pc.override == stateNone {
				state = stateNoScheme
				pointer--
			} else {
				return urlerrors.New("scheme-start", urlerrors.CodeInvalidSchemeCharacter, string(c))
			}

		case stateScheme:
			if cpset.IsASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.' {
				buf.WriteRune(toASCIILower(c))
			} else if c == ':' {
				scheme := buf.String()
				buf.Reset()
				oldSpecial := u.info.special
				newInfo, isSpecial := lookupScheme(scheme)
				if !isSpecial {
					newInfo = schemeInfo{defaultPort: -1}
				}
				if pc.override != stateNone && oldSpecial != isSpecial {
					return falseSignal()
				}
				if pc.override != stateNone && u.info.file && u.hasHost && u.host.Kind == host.Empty {
					return falseSignal()
				}
				u.scheme = scheme
				u.info = newInfo
				pc.isSpecial = u.info.special

				if pc.override != stateNone {
					if (u.port == u.info.defaultPort) && u.port >= 0 {
						u.port = -1
					}
					return nil
				}

				if u.info.file {
					if pc.at(pointer+1) != '/' || pc.at(pointer+2) != '/' {
						pc.warn("file scheme without //")
					}
					state = stateFile
				} else if u.info.special && pc.base != nil && pc.base.scheme == u.scheme {
					state = stateSpecialRelativeOrAuthority
				} else if u.info.special {
					state = stateSpecialAuthoritySlashes
				} else if pc.at(pointer+1) == '/' {
					state = statePathOrAuthority
					pointer++
				} else {
					u.cannotBeBase = true
					u.opaquePath = ""
					state = stateOpaquePath
				}
			} else if pc.override == stateNone {
				buf.Reset()
				state = stateNoScheme
				pointer = -1
			} else {
				return urlerrors.New("scheme", urlerrors.CodeInvalidSchemeCharacter, string(c))
			}

		case stateNoScheme:
			if pc.base == nil || (pc.base.cannotBeBase && c != '#') {
				if pc.base != nil && pc.base.cannotBeBase {
					return urlerrors.New("no-scheme", urlerrors.CodeRelativeURLWithCannotBeABase, "")
				}
				return urlerrors.New("no-scheme", urlerrors.CodeRelativeURLWithoutBase, "")
			}
			if pc.base.cannotBeBase && c == '#' {
				u.scheme = pc.base.scheme
				u.info = pc.base.info
				u.cannotBeBase = true
				u.opaquePath = pc.base.opaquePath
				u.query = copyStringPtr(pc.base.query)
				state = stateFragment
			} else if pc.base.info.file {
				state = stateFile
				pointer--
			} else {
				state = stateRelative
				pointer--
			}

		case stateSpecialRelativeOrAuthority:
			if c == '/' && pc.at(pointer+1) == '/' {
				state = stateSpecialAuthorityIgnoreSlashes
				pointer++
			} else {
				pc.warn("relative URL missing second slash")
				state = stateRelative
				pointer--
			}

		case statePathOrAuthority:
			if c == '/' {
				state = stateAuthority
			} else {
				state = statePath
				pointer--
			}

		case stateRelative:
			u.scheme = pc.base.scheme
			u.info = pc.base.info
			pc.isSpecial = u.info.special
			if c == '/' {
				state = stateRelativeSlash
			} else if pc.isSpecial && c == '\\' {
				pc.warn("backslash used as a path separator")
				state = stateRelativeSlash
			} else {
				copyAuthority(u, pc.base)
				u.pathSegments = cloneSegments(pc.base.pathSegments)
				if len(u.pathSegments) > 0 {
					u.pathSegments = u.pathSegments[:len(u.pathSegments)-1]
				}
				u.query = copyStringPtr(pc.base.query)
				if c == '?' {
					u.query = strPtr("")
					state = stateQuery
				} else if c == '#' {
					u.fragment = strPtr("")
					state = stateFragment
				} else if c != eof {
					u.query = nil
					state = statePath
					pointer--
				} else {
					state = statePath
					pointer--
				}
			}

		case stateRelativeSlash:
			if pc.isSpecial && (c == '/' || c == '\\') {
				if c == '\\' {
					pc.warn("backslash used as a path separator")
				}
				state = stateSpecialAuthorityIgnoreSlashes
			} else if c == '/' {
				state = stateAuthority
			} else {
				copyAuthority(u, pc.base)
				state = statePath
				pointer--
			}

		case stateSpecialAuthoritySlashes:
			if c == '/' && pc.at(pointer+1) == '/' {
				state = stateSpecialAuthorityIgnoreSlashes
				pointer++
			} else {
				pc.warn("special scheme missing authority slashes")
				state = stateSpecialAuthorityIgnoreSlashes
				pointer--
			}

		case stateSpecialAuthorityIgnoreSlashes:
			if c != '/' && c != '\\' {
				state = stateAuthority
				pointer--
			} else {
				pc.warn("unexpected slash in authority")
			}

		case stateAuthority:
			if c == '@' {
				pc.warn("'@' in authority")
				if atSignSeen {
					buf.WriteString("%40")
				}
				atSignSeen = true
				pc.applyUserinfo(buf.String(), &passwordTokenSeen)
				buf.Reset()
			} else if (c == eof || c == '/' || c == '?' || c == '#') || (pc.isSpecial && c == '\\') {
				if atSignSeen && buf.Len() == 0 {
					return urlerrors.New("authority", urlerrors.CodeEmptyHost, "")
				}
				pointer -= runeLen(buf.String()) + 1
				buf.Reset()
				state = stateHost
			} else {
				if c == ':' && !passwordTokenSeen {
					passwordTokenSeen = true
				}
				buf.WriteRune(c)
			}

		case stateHost, stateHostname:
			if pc.override != stateNone && u.info.file {
				pointer--
				state = stateFileHost
			} else if c == ':' && !insideBrackets {
				if buf.Len() == 0 {
					return urlerrors.New("host", urlerrors.CodeEmptyHost, "")
				}
				if pc.override == stateHostname {
					return falseSignal()
				}
				h, herr := hostParser.Parse(buf.String(), pc.isSpecial, !pc.isSpecial)
				if herr != nil {
					return mapHostErr(herr)
				}
				u.host = h
				u.hasHost = true
				u.hasAuthority = true
				buf.Reset()
				state = statePort
			} else if (c == eof || c == '/' || c == '?' || c == '#') || (pc.isSpecial && c == '\\') {
				pointer--
				if pc.isSpecial && buf.Len() == 0 {
					return urlerrors.New("host", urlerrors.CodeEmptyHost, "")
				}
				if pc.override != stateNone && buf.Len() == 0 && (u.username != "" || u.hasPassword || u.port >= 0) {
					return falseSignal()
				}
				h, herr := hostParser.Parse(buf.String(), pc.isSpecial, !pc.isSpecial)
				if herr != nil {
					return mapHostErr(herr)
				}
				u.host = h
				u.hasHost = true
				u.hasAuthority = true
				buf.Reset()
				if pc.override != stateNone {
					return nil
				}
				state = statePathStart
			} else {
				if c == '[' {
					insideBrackets = true
				} else if c == ']' {
					insideBrackets = false
				}
				buf.WriteRune(c)
			}

		case statePort:
			if cpset.IsASCIIDigit(c) {
				buf.WriteRune(c)
			} else if (c == eof || c == '/' || c == '?' || c == '#') || (pc.isSpecial && c == '\\') || pc.override != stateNone {
				if buf.Len() > 0 {
					portStr := buf.String()
					n, convErr := strconv.Atoi(portStr)
					if convErr != nil || n > 65535 {
						return urlerrors.New("port", urlerrors.CodeInvalidPort, portStr)
					}
					if n == u.info.defaultPort {
						u.port = -1
					} else {
						u.port = n
					}
					buf.Reset()
				} else if pc.override != stateNone {
					// empty input: caller already cleared the port.
				}
				if pc.override != stateNone {
					return nil
				}
				state = statePathStart
				pointer--
			} else {
				return urlerrors.New("port", urlerrors.CodeInvalidPort, string(c))
			}

		case stateFile:
			u.scheme = "file"
			u.info = specialSchemes["file"]
			pc.isSpecial = true
			u.hasHost = true
			u.hasAuthority = true
			u.host = host.Host{Kind: host.Empty}
			if c == '/' || c == '\\' {
				if c == '\\' {
					pc.warn("backslash used as a path separator")
				}
				state = stateFileSlash
			} else if pc.base != nil && pc.base.info.file {
				copyAuthority(u, pc.base)
				u.pathSegments = cloneSegments(pc.base.pathSegments)
				u.query = copyStringPtr(pc.base.query)
				if c == '?' {
					u.query = strPtr("")
					state = stateQuery
				} else if c == '#' {
					u.fragment = strPtr("")
					state = stateFragment
				} else if c != eof {
					u.query = nil
					if !pathcanon.StartsWithWindowsDriveLetter(remainingString(pc.input, pointer)) {
						if len(u.pathSegments) > 0 {
							u.pathSegments = u.pathSegments[:len(u.pathSegments)-1]
						}
					} else {
						pc.warn("file path looks like a Windows drive letter")
						u.pathSegments = nil
					}
					state = statePath
					pointer--
				}
			} else {
				state = statePath
				pointer--
			}

		case stateFileSlash:
			if c == '/' || c == '\\' {
				if c == '\\' {
					pc.warn("backslash used as a path separator")
				}
				state = stateFileHost
			} else {
				if pc.base != nil && pc.base.info.file {
					u.host = pc.base.host
					u.hasHost = pc.base.hasHost
					if seg := firstSegment(pc.base.pathSegments); pathcanon.IsNormalizedWindowsDriveLetter(seg) {
						u.pathSegments = append(u.pathSegments, seg)
					}
				}
				state = statePath
				pointer--
			}

		case stateFileHost:
			if c == eof || c == '/' || c == '\\' || c == '?' || c == '#' {
				pointer--
				hostStr := buf.String()
				if pathcanon.IsWindowsDriveLetter(hostStr) {
					pc.warn("file host looks like a Windows drive letter")
					state = statePath
				} else if hostStr == "" {
					u.hasHost = true
					u.hasAuthority = true
					u.host = host.Host{Kind: host.Empty}
					if pc.override != stateNone {
						return nil
					}
					state = statePathStart
				} else {
					h, herr := hostParser.Parse(hostStr, true, false)
					if herr != nil {
						return mapHostErr(herr)
					}
					if h.Kind == host.Domain && h.Opaque == "localhost" {
						h = host.Host{Kind: host.Empty}
					}
					u.host = h
					u.hasHost = true
					u.hasAuthority = true
					buf.Reset()
					if pc.override != stateNone {
						return nil
					}
					state = statePathStart
				}
			} else {
				buf.WriteRune(c)
			}

		case statePathStart:
			if pc.isSpecial {
				if c == '\\' {
					pc.warn("backslash used as a path separator")
				}
				state = statePath
				if c != '/' && c != '\\' {
					pointer--
				}
			} else if c == '?' {
				u.query = strPtr("")
				state = stateQuery
			} else if c == '#' {
				u.fragment = strPtr("")
				state = stateFragment
			} else if c != eof {
				state = statePath
				if c != '/' {
					pointer--
				}
			} else if pc.override != stateNone && !u.hasHost {
				u.pathSegments = append(u.pathSegments, "")
			}

		case statePath:
			terminator := c == eof || c == '/' || (pc.isSpecial && c == '\\') || (pc.override == stateNone && (c == '?' || c == '#'))
			if terminator {
				if pc.isSpecial && c == '\\' {
					pc.warn("backslash used as a path separator")
				}
				segment := buf.String()
				buf.Reset()
				if pathcanon.IsDoubleDot(segment) {
					shorten(u)
					if c != '/' && !(pc.isSpecial && c == '\\') {
						u.pathSegments = append(u.pathSegments, "")
					}
				} else if pathcanon.IsSingleDot(segment) {
					if c != '/' && !(pc.isSpecial && c == '\\') {
						u.pathSegments = append(u.pathSegments, "")
					}
				} else {
					if u.info.file && len(u.pathSegments) == 0 && pathcanon.IsWindowsDriveLetter(segment) {
						segment = pathcanon.NormalizeWindowsDriveLetter(segment)
					}
					u.pathSegments = append(u.pathSegments, segment)
				}
				if c == '?' {
					u.query = strPtr("")
					state = stateQuery
				} else if c == '#' {
					u.fragment = strPtr("")
					state = stateFragment
				}
			} else {
				encodeInto(buf, c, cpset.Path)
			}

		case stateOpaquePath:
			if c == '?' {
				u.query = strPtr("")
				state = stateQuery
			} else if c == '#' {
				u.fragment = strPtr("")
				state = stateFragment
			} else if c != eof {
				var eb strings.Builder
				switch {
				case c >= 0x80:
					percent.EncodeRune(&eb, c, cpset.C0Control)
				case cpset.C0Control.Has(c):
					percent.EncodeByte(&eb, byte(c))
				default:
					eb.WriteByte(byte(c))
				}
				u.opaquePath += eb.String()
			}

		case stateQuery:
			set := cpset.Query
			if pc.isSpecial {
				set = cpset.SpecialQuery
			}
			if c == '#' || c == eof {
				q := *u.query + encodeQueryBuf(buf.String(), set)
				u.query = &q
				buf.Reset()
				if c == '#' {
					u.fragment = strPtr("")
					state = stateFragment
				}
			} else {
				buf.WriteRune(c)
			}

		case stateFragment:
			if c != eof {
				encodeInto(buf, c, cpset.Fragment)
			} else {
				f := buf.String()
				u.fragment = &f
			}
		}

		if c == eof {
			break
		}
		pointer++
	}

	return nil
}

func encodeInto(buf percent.Sink, c rune, set cpset.Set) {
	percent.EncodeRune(buf, c, set)
}

func encodeQueryBuf(s string, set cpset.Set) string {
	var b strings.Builder
	for _, r := range s {
		percent.EncodeRune(&b, r, set)
	}
	return b.String()
}

func runeLen(s string) int { return len([]rune(s)) }

func remainingString(input []rune, from int) string {
	if from >= len(input) {
		return ""
	}
	return string(input[from:])
}

func firstSegment(segs []string) string {
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}

func cloneSegments(segs []string) []string {
	if segs == nil {
		return nil
	}
	out := make([]string, len(segs))
	copy(out, segs)
	return out
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func strPtr(s string) *string { return &s }

func copyAuthority(dst, src *URL) {
	dst.username = src.username
	dst.password = src.password
	dst.hasPassword = src.hasPassword
	dst.host = src.host
	dst.hasHost = src.hasHost
	dst.hasAuthority = src.hasAuthority
	dst.port = src.port
}

// shorten pops the last path segment unless the path has zero
// segments, or the scheme is file and the path is exactly one
// normalized Windows drive-letter segment (§4.1 "Shortening").
func shorten(u *URL) {
	if len(u.pathSegments) == 0 {
		return
	}
	if u.info.file && len(u.pathSegments) == 1 && pathcanon.IsNormalizedWindowsDriveLetter(u.pathSegments[0]) {
		return
	}
	u.pathSegments = u.pathSegments[:len(u.pathSegments)-1]
}

func (pc *parseContext) applyUserinfo(userinfo string, passwordSeen *bool) {
	idx := strings.IndexByte(userinfo, ':')
	u := pc.url
	u.hasAuthority = true
	if idx < 0 {
		u.username += percent.Encode(userinfo, cpset.Userinfo)
		return
	}
	user := userinfo[:idx]
	pass := userinfo[idx+1:]
	u.username += percent.Encode(user, cpset.Userinfo)
	u.password += percent.Encode(pass, cpset.Userinfo)
	u.hasPassword = true
	*passwordSeen = true
}

func mapHostErr(e *host.Error) *urlerrors.Error {
	switch e.Kind {
	case host.ErrEmptyHost:
		return urlerrors.New("host", urlerrors.CodeEmptyHost, e.Input)
	case host.ErrIDNA:
		return urlerrors.New("host", urlerrors.CodeIDNA, e.Input)
	case host.ErrInvalidIPv4:
		return urlerrors.New("host", urlerrors.CodeInvalidIPv4Address, e.Input)
	case host.ErrInvalidIPv6:
		return urlerrors.New("host", urlerrors.CodeInvalidIPv6Address, e.Input)
	default:
		return urlerrors.New("host", urlerrors.CodeInvalidDomainCharacter, e.Input)
	}
}

// falseSignal reports the internal §7 "False" sentinel: a setter's
// input violated a precondition, so the record must not be mutated.
// It is never surfaced past the setter front-end.
func falseSignal() *urlerrors.Error {
	return urlerrors.New("", urlerrors.CodeFalse, "")
}

const defaultMaxInputLength = 8 * 1024 * 1024
