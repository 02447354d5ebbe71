package cpset_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/upa-url/upa-sub001/internal/cpset"
)

var _ = Describe("percent-encode sets", func() {
	It("never admits non-ASCII code points to Fragment", func() {
		Expect(cpset.Fragment.Has('é')).To(BeFalse())
	})

	It("narrows from Query down to Path down to Userinfo down to Component", func() {
		Expect(cpset.Query.Has('\'')).To(BeTrue())
		Expect(cpset.SpecialQuery.Has('\'')).To(BeFalse())

		Expect(cpset.Path.Has('?')).To(BeFalse())
		Expect(cpset.Path.Has('\'')).To(BeTrue())

		Expect(cpset.Userinfo.Has('/')).To(BeFalse())
		Expect(cpset.Userinfo.Has('{')).To(BeTrue())

		Expect(cpset.Component.Has('$')).To(BeFalse())
		Expect(cpset.Component.Has(':')).To(BeFalse())
	})

	It("treats C0 controls and DEL as members of C0Control", func() {
		Expect(cpset.C0Control.Has(0x00)).To(BeTrue())
		Expect(cpset.C0Control.Has(0x1f)).To(BeTrue())
		Expect(cpset.C0Control.Has(0x7f)).To(BeTrue())
		Expect(cpset.C0Control.Has(' ')).To(BeFalse())
	})

	It("leaves unreserved form characters unescaped", func() {
		Expect(cpset.ApplicationFormURLEncoded.Has('a')).To(BeTrue())
		Expect(cpset.ApplicationFormURLEncoded.Has('*')).To(BeTrue())
		Expect(cpset.ApplicationFormURLEncoded.Has(' ')).To(BeFalse())
	})

	It("extends ForbiddenHost with C0 controls and '%' for ForbiddenDomain", func() {
		Expect(cpset.ForbiddenHost.Has('%')).To(BeFalse())
		Expect(cpset.ForbiddenDomain.Has('%')).To(BeTrue())
		Expect(cpset.ForbiddenDomain.Has(0x01)).To(BeTrue())
		Expect(cpset.ForbiddenDomain.Has('@')).To(BeTrue())
	})
})

var _ = Describe("ASCII predicates", func() {
	It("classifies hex digits", func() {
		Expect(cpset.IsASCIIHexDigit('9')).To(BeTrue())
		Expect(cpset.IsASCIIHexDigit('f')).To(BeTrue())
		Expect(cpset.IsASCIIHexDigit('F')).To(BeTrue())
		Expect(cpset.IsASCIIHexDigit('g')).To(BeFalse())
	})

	It("classifies alpha and alphanumeric", func() {
		Expect(cpset.IsASCIIAlpha('Z')).To(BeTrue())
		Expect(cpset.IsASCIIAlpha('9')).To(BeFalse())
		Expect(cpset.IsASCIIAlphanumeric('9')).To(BeTrue())
	})

	It("classifies C0-or-space and tab/newline trim sets", func() {
		Expect(cpset.IsC0ControlOrSpace(' ')).To(BeTrue())
		Expect(cpset.IsC0ControlOrSpace('a')).To(BeFalse())
		Expect(cpset.IsASCIITabOrNewline('\t')).To(BeTrue())
		Expect(cpset.IsASCIITabOrNewline('\n')).To(BeTrue())
		Expect(cpset.IsASCIITabOrNewline('\r')).To(BeTrue())
		Expect(cpset.IsASCIITabOrNewline('x')).To(BeFalse())
	})
})
