package query_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/upa-url/upa-sub001/query"
)

var _ = Describe("Parse/Serialize", func() {
	It("parses name=value pairs split on '&'", func() {
		pairs := query.Parse("a=1&b=2")
		Expect(pairs).To(Equal([]query.Pair{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}))
	})

	It("treats a missing '=' as an empty value", func() {
		Expect(query.Parse("a")).To(Equal([]query.Pair{{Name: "a", Value: ""}}))
	})

	It("decodes '+' as space", func() {
		Expect(query.Parse("a+b=c+d")).To(Equal([]query.Pair{{Name: "a b", Value: "c d"}}))
	})

	It("serializes space back to '+' and escapes the rest", func() {
		got := query.Serialize([]query.Pair{{Name: "a b", Value: "c&d"}})
		Expect(got).To(Equal("a+b=c%26d"))
	})

	It("round-trips parse(serialize(x))", func() {
		pairs := []query.Pair{{Name: "a", Value: "1"}, {Name: "b c", Value: "2"}}
		Expect(query.Parse(query.Serialize(pairs))).To(Equal(pairs))
	})
})

var _ = Describe("View", func() {
	var v *query.View

	BeforeEach(func() {
		v = query.NewView(query.Parse("a=1&b=2&a=3"))
	})

	It("lists pairs in insertion order", func() {
		Expect(v.List()).To(Equal([]query.Pair{
			{Name: "a", Value: "1"}, {Name: "b", Value: "2"}, {Name: "a", Value: "3"},
		}))
	})

	It("appends a new pair at the end", func() {
		v.Append("c", "4")
		Expect(v.Size()).To(Equal(4))
		Expect(v.List()[3]).To(Equal(query.Pair{Name: "c", Value: "4"}))
	})

	It("deletes every pair with a matching name", func() {
		v.Delete("a", nil)
		Expect(v.List()).To(Equal([]query.Pair{{Name: "b", Value: "2"}}))
	})

	It("deletes only pairs matching both name and value", func() {
		val := "1"
		v.Delete("a", &val)
		Expect(v.List()).To(Equal([]query.Pair{{Name: "b", Value: "2"}, {Name: "a", Value: "3"}}))
	})

	It("gets the first matching value and all matching values", func() {
		val, ok := v.Get("a")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal("1"))
		Expect(v.GetAll("a")).To(Equal([]string{"1", "3"}))
	})

	It("reports Has with and without a value filter", func() {
		Expect(v.Has("a", nil)).To(BeTrue())
		Expect(v.Has("z", nil)).To(BeFalse())
		val := "3"
		Expect(v.Has("a", &val)).To(BeTrue())
	})

	It("collapses every matching pair to one at the first position on Set", func() {
		v.Set("a", "9")
		Expect(v.List()).To(Equal([]query.Pair{
			{Name: "a", Value: "9"}, {Name: "b", Value: "2"},
		}))
	})

	It("appends on Set when the name is absent", func() {
		v.Set("c", "4")
		Expect(v.List()[3]).To(Equal(query.Pair{Name: "c", Value: "4"}))
	})

	It("stably sorts by name as UTF-16 code units", func() {
		v.Sort()
		Expect(v.List()).To(Equal([]query.Pair{
			{Name: "a", Value: "1"}, {Name: "a", Value: "3"}, {Name: "b", Value: "2"},
		}))
	})

	It("Reset replaces the pairs wholesale", func() {
		v.Reset(query.Parse("z=9"))
		Expect(v.List()).To(Equal([]query.Pair{{Name: "z", Value: "9"}}))
	})
})
