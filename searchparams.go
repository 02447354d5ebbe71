package urlparser

import "github.com/upa-url/upa-sub001/query"

// searchParamsView couples a query.View to the URL record whose query
// component it mirrors, per §3's form-params-view lifecycle: created
// lazily on first access, its mutations write straight through to the
// record's query without a reparse, and a reparse of the record's
// query (via the search setter, href, or a fresh Parse that replaces
// the record) refreshes the view's list.
type searchParamsView struct {
	view  *query.View
	owner *URL
}

// SearchParams is the public, coupled query-parameter view returned
// by (*URL).SearchParams. Its method set matches §4.6.
type SearchParams struct {
	inner *searchParamsView
}

// SearchParams returns the URL's coupled query-parameter view,
// creating it on first access from the record's current query.
func (u *URL) SearchParams() *SearchParams {
	if u.params == nil {
		q := ""
		if u.query != nil {
			q = *u.query
		}
		u.params = &searchParamsView{view: query.NewView(query.Parse(q)), owner: u}
	}
	return &SearchParams{inner: u.params}
}

// refreshParamsFromQuery resynchronizes an already-created view after
// the record's query changed through some other path. It is a no-op
// if no view has been created yet (nothing to refresh).
func (u *URL) refreshParamsFromQuery() {
	if u.params == nil {
		return
	}
	q := ""
	if u.query != nil {
		q = *u.query
	}
	u.params.view.Reset(query.Parse(q))
}

// writeBack serializes v's pairs and installs them as the owning
// record's query, without reparsing: the view-to-record half of §3's
// synchronization contract.
func (u *URL) writeBack(v *query.View) {
	if v.Size() == 0 {
		u.query = nil
		u.rebuild()
		return
	}
	s := query.Serialize(v.List())
	u.query = &s
	u.rebuild()
}

// Size returns the number of name/value pairs.
func (s *SearchParams) Size() int { return s.inner.view.Size() }

// List returns the pairs in order. The caller must not mutate it.
func (s *SearchParams) List() []query.Pair { return s.inner.view.List() }

// Append adds a new name/value pair and writes the query back.
func (s *SearchParams) Append(name, value string) {
	s.inner.view.Append(name, value)
	s.inner.owner.writeBack(s.inner.view)
}

// Delete removes every pair named name.
func (s *SearchParams) Delete(name string) {
	s.inner.view.Delete(name, nil)
	s.inner.owner.writeBack(s.inner.view)
}

// DeleteValue removes every pair matching both name and value.
func (s *SearchParams) DeleteValue(name, value string) {
	s.inner.view.Delete(name, &value)
	s.inner.owner.writeBack(s.inner.view)
}

// Get returns the value of the first pair named name.
func (s *SearchParams) Get(name string) (string, bool) { return s.inner.view.Get(name) }

// GetAll returns every value for name, in order.
func (s *SearchParams) GetAll(name string) []string { return s.inner.view.GetAll(name) }

// Has reports whether any pair is named name.
func (s *SearchParams) Has(name string) bool { return s.inner.view.Has(name, nil) }

// HasValue reports whether a pair with exactly name and value exists.
func (s *SearchParams) HasValue(name, value string) bool {
	return s.inner.view.Has(name, &value)
}

// Set replaces every pair named name with a single name=value pair
// and writes the query back.
func (s *SearchParams) Set(name, value string) {
	s.inner.view.Set(name, value)
	s.inner.owner.writeBack(s.inner.view)
}

// Sort stably sorts the pairs by name (as UTF-16 code units) and
// writes the query back.
func (s *SearchParams) Sort() {
	s.inner.view.Sort()
	s.inner.owner.writeBack(s.inner.view)
}

// String serializes the view exactly as the owning record's query
// component (without a leading "?").
func (s *SearchParams) String() string {
	return query.Serialize(s.inner.view.List())
}
