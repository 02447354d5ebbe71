package urlparser

// State names one of the parser's 21 states (§4.1). Zero value
// stateNone means "no override": the parser starts at stateSchemeStart
// and runs preprocessing. Any other value is a valid state-override
// for a setter re-entering the machine mid-record.
type State int

const (
	stateNone State = iota
	stateSchemeStart
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)
