// Package compat bridges this module's spec-exact URL record to
// net/url and to github.com/PuerkitoBio/purell's flag-based
// normalizer, for callers migrating off net/url who still want a
// legacy-shaped normalization pass. It is deliberately NOT part of the
// core: the core serializer in the root package is the only
// spec-conformant canonicalizer. This package is grounded on the
// teacher repo's own urlparser.ToNetURL/urlparser.Normalize, adapted
// from its regex-based URL struct to the WHATWG record.
package compat

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
	"golang.org/x/net/idna"

	upaurl "github.com/upa-url/upa-sub001"
)

// ToNetURL converts a parsed *upaurl.URL into a *net/url.URL for
// interop with stdlib- or net/url-based code. Percent-encoding is
// preserved as-is (RawPath/RawQuery carry the already-encoded form),
// matching the teacher's own "users of net/url may expect most of
// these to be decoded" caveat: Path, RawPath and RawQuery all carry
// the encoded form, and callers that need decoded components must
// decode them rather than assume net/url did any extra work.
func ToNetURL(u *upaurl.URL) *url.URL {
	out := &url.URL{
		Scheme:   u.Protocol(),
		Host:     u.Host(),
		Path:     u.Pathname(),
		RawPath:  u.Pathname(),
		RawQuery: strings.TrimPrefix(u.Search(), "?"),
		Fragment: strings.TrimPrefix(u.Hash(), "#"),
	}
	out.Scheme = strings.TrimSuffix(out.Scheme, ":")
	if u.CannotBeABaseURL() {
		out.Opaque = u.Pathname()
		out.Path = ""
		out.RawPath = ""
	}
	if user := u.Username(); user != "" || u.Password() != "" {
		if u.Password() != "" {
			out.User = url.UserPassword(user, u.Password())
		} else {
			out.User = url.User(user)
		}
	}
	return out
}

const legacyNormalizeFlags purell.NormalizationFlags = purell.FlagRemoveDefaultPort |
	purell.FlagDecodeDWORDHost | purell.FlagDecodeOctalHost | purell.FlagDecodeHexHost |
	purell.FlagRemoveUnnecessaryHostDots | purell.FlagRemoveDotSegments | purell.FlagRemoveDuplicateSlashes |
	purell.FlagUppercaseEscapes | purell.FlagDecodeUnnecessaryEscapes | purell.FlagEncodeNecessaryEscapes |
	purell.FlagSortQuery

// LegacyNormalize runs u through net/url + purell's normalization
// flags, as a migration aid for callers who depended on purell's
// looser normalization (decimal/octal/hex host forms, duplicate-slash
// collapsing) before adopting the spec-exact serializer. It is not
// used by, and has no effect on, the core parser/serializer.
func LegacyNormalize(u *upaurl.URL) (string, error) {
	hostname := u.Hostname()
	unicodeHost, err := idna.ToUnicode(hostname)
	if err != nil {
		return "", err
	}

	netURL := ToNetURL(u)
	netURL.Host = strings.ToLower(unicodeHost)
	if port := u.Port(); port != "" {
		netURL.Host += ":" + port
	}

	return purell.NormalizeURL(netURL, legacyNormalizeFlags), nil
}
