package urlparser

import (
	"strings"

	"github.com/upa-url/upa-sub001/internal/cpset"
	"github.com/upa-url/upa-sub001/internal/percent"
	"github.com/upa-url/upa-sub001/internal/utfdecode"
)

// clone returns a shallow-but-independent copy of u: slices and
// string pointers are duplicated so that mutating the copy through
// the state machine cannot alias the original record, preserving the
// §5 atomicity guarantee that a setter either fully replaces the
// relevant parts or leaves the record untouched.
func (u *URL) clone() *URL {
	c := *u
	c.pathSegments = cloneSegments(u.pathSegments)
	c.query = copyStringPtr(u.query)
	c.fragment = copyStringPtr(u.fragment)
	c.params = nil
	return &c
}

// commitFrom copies src (a clone of u that the override states ran
// against) back onto u, keeping u's search-params view, then rebuilds
// the canonical string.
func (u *URL) commitFrom(src *URL) {
	params := u.params
	*u = *src
	u.params = params
	u.rebuild()
}

// cannotHaveCredentialsOrPort reports whether the record cannot carry
// credentials or an explicit port: no host, an empty host, a
// cannot-be-a-base path, or the file scheme all disqualify it.
func (u *URL) cannotHaveCredentialsOrPort() bool {
	return !u.hasHost || u.host.String() == "" || u.cannotBeBase || u.info.file
}

// SetProtocol implements the protocol setter of §4.5: a full state
// re-entry at scheme-start. On any failure (including the cross-
// special-scheme "False" rejection) the record is left unchanged.
func (u *URL) SetProtocol(value string) {
	if !u.valid {
		return
	}
	scratch := u.clone()
	input := append(utfdecode.FromUTF8(value), ':')
	if _, err := basicParse(input, nil, stateSchemeStart, ParseOptions{}, scratch); err != nil {
		return
	}
	u.commitFrom(scratch)
}

// SetUsername implements the username setter: percent-encoded direct
// assignment, a no-op when the record cannot carry credentials.
func (u *URL) SetUsername(value string) {
	if !u.valid || u.cannotHaveCredentialsOrPort() {
		return
	}
	u.username = percent.Encode(value, cpset.Userinfo)
	u.rebuild()
}

// SetPassword implements the password setter.
func (u *URL) SetPassword(value string) {
	if !u.valid || u.cannotHaveCredentialsOrPort() {
		return
	}
	u.password = percent.Encode(value, cpset.Userinfo)
	u.hasPassword = true
	u.rebuild()
}

// SetHost implements the host setter: override state "host" (port
// included).
func (u *URL) SetHost(value string) {
	u.setHostLike(value, stateHost)
}

// SetHostname implements the hostname setter: override state
// "hostname" (no port accepted).
func (u *URL) SetHostname(value string) {
	u.setHostLike(value, stateHostname)
}

func (u *URL) setHostLike(value string, state State) {
	if !u.valid || u.cannotBeBase {
		return
	}
	scratch := u.clone()
	if _, err := basicParse(utfdecode.FromUTF8(value), nil, state, ParseOptions{}, scratch); err != nil {
		return
	}
	u.commitFrom(scratch)
}

// SetPort implements the port setter: empty input clears the port.
func (u *URL) SetPort(value string) {
	if !u.valid || u.cannotHaveCredentialsOrPort() {
		return
	}
	if value == "" {
		u.port = -1
		u.rebuild()
		return
	}
	scratch := u.clone()
	if _, err := basicParse(utfdecode.FromUTF8(value), nil, statePort, ParseOptions{}, scratch); err != nil {
		return
	}
	u.commitFrom(scratch)
}

// SetPathname implements the pathname setter.
func (u *URL) SetPathname(value string) {
	if !u.valid || u.cannotBeBase {
		return
	}
	scratch := u.clone()
	scratch.pathSegments = nil
	if _, err := basicParse(utfdecode.FromUTF8(value), nil, statePathStart, ParseOptions{}, scratch); err != nil {
		return
	}
	u.commitFrom(scratch)
}

// SetSearch implements the search setter: empty input clears the
// query (and the coupled search-params view); otherwise a leading "?"
// is stripped and the remainder runs through the query state.
func (u *URL) SetSearch(value string) {
	if !u.valid {
		return
	}
	if value == "" {
		u.query = nil
		u.params = nil
		u.rebuild()
		return
	}
	stripped := strings.TrimPrefix(value, "?")
	scratch := u.clone()
	q := ""
	scratch.query = &q
	if _, err := basicParse(utfdecode.FromUTF8(stripped), nil, stateQuery, ParseOptions{}, scratch); err != nil {
		return
	}
	u.commitFrom(scratch)
	u.refreshParamsFromQuery()
}

// SetHash implements the hash setter.
func (u *URL) SetHash(value string) {
	if !u.valid {
		return
	}
	if value == "" {
		u.fragment = nil
		u.rebuild()
		return
	}
	stripped := strings.TrimPrefix(value, "#")
	scratch := u.clone()
	f := ""
	scratch.fragment = &f
	if _, err := basicParse(utfdecode.FromUTF8(stripped), nil, stateFragment, ParseOptions{}, scratch); err != nil {
		return
	}
	u.commitFrom(scratch)
}

// SetHref implements the href setter: a full reparse with no base,
// returning whether it succeeded. The record is replaced only on
// success.
func (u *URL) SetHref(value string) bool {
	parsed, err := Parse(value)
	if err != nil {
		return false
	}
	params := u.params
	*u = *parsed
	u.params = params
	u.refreshParamsFromQuery()
	return true
}
