// Package query implements the application/x-www-form-urlencoded
// codec and the ordered name/value view of §4.6: parse/serialize a
// query string, and an independently usable View with the standard's
// append/delete/get/set/sort operations.
package query

import (
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/upa-url/upa-sub001/internal/cpset"
	"github.com/upa-url/upa-sub001/internal/percent"
)

// Pair is one name/value entry of a parsed query.
type Pair struct {
	Name  string
	Value string
}

// Parse parses s (a query string; one leading "?" is stripped) into
// an ordered list of
// name/value pairs, per §4.6: split on "&", split each piece at the
// first "=", replace "+" with " " in each half, then percent-decode
// each half as UTF-8.
func Parse(s string) []Pair {
	s = strings.TrimPrefix(s, "?")
	if s == "" {
		return nil
	}
	pieces := strings.Split(s, "&")
	pairs := make([]Pair, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		name, value := piece, ""
		if idx := strings.IndexByte(piece, '='); idx >= 0 {
			name, value = piece[:idx], piece[idx+1:]
		}
		pairs = append(pairs, Pair{
			Name:  percent.Decode(strings.ReplaceAll(name, "+", " ")),
			Value: percent.Decode(strings.ReplaceAll(value, "+", " ")),
		})
	}
	return pairs
}

// Serialize renders pairs back into a query string (without a leading
// "?"), per §4.6's form-urlencoded serializer: space becomes "+",
// anything outside [A-Za-z0-9*-._] becomes "%HH", pairs joined by "&"
// and name/value joined by "=".
func Serialize(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		encodeFormField(&b, p.Name)
		b.WriteByte('=')
		encodeFormField(&b, p.Value)
	}
	return b.String()
}

func encodeFormField(b *strings.Builder, s string) {
	for _, r := range s {
		if r == ' ' {
			b.WriteByte('+')
			continue
		}
		percent.EncodeRune(b, r, cpset.ApplicationFormURLEncoded)
	}
}

// View is an ordered, mutable sequence of name/value pairs coupled
// (by the owner, e.g. a URL record) to a serialized query string.
// View itself holds no back-pointer; the owner is responsible for
// calling Serialize(view.List()) after a mutation and List/Reset for
// the reverse direction, the way §3's "lifecycle" describes the
// form-params view as reachable only through its owning record.
type View struct {
	pairs []Pair
}

// NewView builds a View from an already-parsed pair list.
func NewView(pairs []Pair) *View {
	return &View{pairs: append([]Pair(nil), pairs...)}
}

// List returns the view's current pairs, in order. The caller must
// not mutate the returned slice.
func (v *View) List() []Pair { return v.pairs }

// Reset replaces the view's pairs wholesale (used to resynchronize
// the view after the owner's query was set through another path, e.g.
// the "search" setter or href reparse).
func (v *View) Reset(pairs []Pair) { v.pairs = append([]Pair(nil), pairs...) }

// Size returns the number of pairs.
func (v *View) Size() int { return len(v.pairs) }

// Append adds a new name/value pair at the end.
func (v *View) Append(name, value string) {
	v.pairs = append(v.pairs, Pair{Name: name, Value: value})
}

// Delete removes every pair named name (when no value filter is
// given) or every pair matching both name and value.
func (v *View) Delete(name string, value *string) {
	out := v.pairs[:0:0]
	for _, p := range v.pairs {
		if p.Name == name && (value == nil || p.Value == *value) {
			continue
		}
		out = append(out, p)
	}
	v.pairs = out
}

// Get returns the value of the first pair named name.
func (v *View) Get(name string) (string, bool) {
	for _, p := range v.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// GetAll returns the values of every pair named name, in order.
func (v *View) GetAll(name string) []string {
	var out []string
	for _, p := range v.pairs {
		if p.Name == name {
			out = append(out, p.Value)
		}
	}
	return out
}

// Has reports whether any pair is named name (when value is nil) or
// whether a pair with exactly name and *value exists.
func (v *View) Has(name string, value *string) bool {
	for _, p := range v.pairs {
		if p.Name == name && (value == nil || p.Value == *value) {
			return true
		}
	}
	return false
}

// Set replaces every existing pair named name with a single pair
// name=value, at the position of the first existing occurrence (or
// appended if name was not already present).
func (v *View) Set(name, value string) {
	found := false
	out := v.pairs[:0:0]
	for _, p := range v.pairs {
		if p.Name != name {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, Pair{Name: name, Value: value})
			found = true
		}
	}
	if !found {
		out = append(out, Pair{Name: name, Value: value})
	}
	v.pairs = out
}

// Sort stably sorts the pairs by name, comparing names as UTF-16
// code-unit sequences the way §4.6/§8 specify, so that pairs with
// equal names retain their relative order.
func (v *View) Sort() {
	sort.SliceStable(v.pairs, func(i, j int) bool {
		return lessUTF16(v.pairs[i].Name, v.pairs[j].Name)
	})
}

func lessUTF16(a, b string) bool {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}
