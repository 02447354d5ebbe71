// Package urlerrors defines the closed error taxonomy of spec.md §7.
// It is a standalone package (rather than inline in the parser) the
// way nlnwa/whatwg-url factors its failure codes into their own
// "errors" package, so callers can compare against named sentinels
// with errors.Is without importing the whole parser's internals.
package urlerrors

import "errors"

// Code is one member of the closed failure taxonomy. False is never
// returned to a caller: it is the parser's internal "setter no-op"
// signal, exported so the parser package can return it internally
// without redeclaring it.
type Code int

const (
	_ Code = iota
	CodeFalse
	CodeInvalidSchemeCharacter
	CodeEmptyHost
	CodeIDNA
	CodeInvalidPort
	CodeInvalidIPv4Address
	CodeInvalidIPv6Address
	CodeInvalidDomainCharacter
	CodeRelativeURLWithoutBase
	CodeRelativeURLWithCannotBeABase
	CodeInvalidBase
	CodeOverflow
	CodeEmptyPath
	CodeUnsupportedPath
)

var names = map[Code]string{
	CodeFalse:                        "false",
	CodeInvalidSchemeCharacter:        "invalid scheme character",
	CodeEmptyHost:                     "empty host",
	CodeIDNA:                          "IDNA error",
	CodeInvalidPort:                   "invalid port",
	CodeInvalidIPv4Address:            "invalid IPv4 address",
	CodeInvalidIPv6Address:            "invalid IPv6 address",
	CodeInvalidDomainCharacter:        "invalid domain character",
	CodeRelativeURLWithoutBase:        "relative URL without a base",
	CodeRelativeURLWithCannotBeABase:  "relative URL with a cannot-be-a-base base URL",
	CodeInvalidBase:                   "invalid base URL",
	CodeOverflow:                      "input exceeds the configured length limit",
	CodeEmptyPath:                     "empty path",
	CodeUnsupportedPath:               "unsupported path",
}

func (c Code) String() string {
	if s, ok := names[c]; ok {
		return s
	}
	return "unknown url error"
}

// Error is the concrete error type every failing operation returns.
// Op names the operation ("parse", "protocol", "port", ...) and Input
// is the offending string, trimmed to a reasonable length by the
// caller before logging if it may be attacker-controlled.
type Error struct {
	Code  Code
	Op    string
	Input string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Code.String()
	}
	return e.Op + ": " + e.Code.String()
}

// New constructs an *Error for op/code/input.
func New(op string, code Code, input string) *Error {
	return &Error{Code: code, Op: op, Input: input}
}

// Is reports whether target is an *Error with the same Code, ignoring
// Op and Input, so errors.Is(err, urlerrors.New("", code, "")) matches
// by code. Code itself does not implement error and cannot be passed
// to errors.Is directly.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}
