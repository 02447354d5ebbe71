package urlparser

import "github.com/upa-url/upa-sub001/internal/host"

// schemeInfo is the static scheme-info table of §3: default port (or
// -1 for none), specialness, and the file/ws tags a few states need.
type schemeInfo struct {
	defaultPort int
	special     bool
	file        bool
	ws          bool
}

var specialSchemes = map[string]schemeInfo{
	"ftp":   {defaultPort: 21, special: true},
	"file":  {defaultPort: -1, special: true, file: true},
	"http":  {defaultPort: 80, special: true},
	"https": {defaultPort: 443, special: true},
	"ws":    {defaultPort: 80, special: true, ws: true},
	"wss":   {defaultPort: 443, special: true, ws: true},
}

func lookupScheme(scheme string) (schemeInfo, bool) {
	info, ok := specialSchemes[scheme]
	return info, ok
}

// URL is the in-memory URL record of §3: scheme, username, password,
// host, port, path, query, fragment, plus the cannot-be-a-base and
// validity flags. Href returns a cached canonical string that every
// mutator recomputes before returning; the component getters
// (Protocol, Username, ... Hash) build their results from the record's
// fields and do not read that string.
//
// A zero URL is not valid; construct one with Parse or ParseRef.
type URL struct {
	scheme        string
	info          schemeInfo
	hasAuthority  bool // host (and '//') are present, even if host is empty
	username      string
	password      string
	hasPassword   bool
	host          host.Host
	hasHost       bool
	port          int // -1 means no port
	pathSegments  []string
	opaquePath    string
	cannotBeBase  bool
	query         *string
	fragment      *string
	valid         bool

	cachedHref string
	offsets    [numParts]int
	present    [numParts]presence

	params *searchParamsView
}

type presence int

const (
	presenceUnset presence = iota
	presenceNull
	presenceEmpty
	presenceSet
)

// part names the pieces the serializer tracks offsets for, in the
// fixed order of §3.
type part int

const (
	partScheme part = iota
	partSchemeSep
	partUsername
	partPassword
	partHostStart
	partHost
	partPort
	partPathPrefix
	partPath
	partQuery
	partFragment
	numParts
)

// IsSpecial reports whether the record's scheme is one of the six
// special schemes.
func (u *URL) IsSpecial() bool { return u.info.special }

// IsFile reports whether the record's scheme is "file".
func (u *URL) IsFile() bool { return u.info.file }

// CannotBeABaseURL reports the cannot-be-a-base-URL flag.
func (u *URL) CannotBeABaseURL() bool { return u.cannotBeBase }

// Valid reports whether this record holds a successfully parsed URL.
func (u *URL) Valid() bool { return u.valid }

