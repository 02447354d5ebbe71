// Package urlparser implements the WHATWG URL Standard: a basic URL
// parser and serializer, a host parser (IDNA domains, IPv4, IPv6,
// opaque hosts), a percent-encoding layer, a path canonicalizer, and
// the setter front-end that lets each named component be reassigned
// through the same state machine the parser itself runs on.
//
//	URL Standard: https://url.spec.whatwg.org/
//
// A URL record is built with Parse or ParseRef and is immutable from
// the outside except through its named setters (SetProtocol,
// SetUsername, SetHost, ...), each of which either fully adopts the
// new value or leaves the record unchanged -- never a partial update.
// SearchParams returns a view over the query component kept in sync
// with it in both directions.
package urlparser
