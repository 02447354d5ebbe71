package percent_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/upa-url/upa-sub001/internal/cpset"
	"github.com/upa-url/upa-sub001/internal/percent"
)

var _ = Describe("Encode/Decode", func() {
	It("leaves no-encode-set ASCII bytes verbatim", func() {
		Expect(percent.Encode("hello", cpset.Path)).To(Equal("hello"))
	})

	It("percent-encodes a space in the fragment set", func() {
		Expect(percent.Encode("a b", cpset.Fragment)).To(Equal("a%20b"))
	})

	It("encodes non-ASCII as upper-case hex UTF-8 bytes", func() {
		Expect(percent.Encode("é", cpset.Path)).To(Equal("%C3%A9"))
	})

	It("decodes a percent-escape triplet", func() {
		Expect(percent.Decode("a%20b")).To(Equal("a b"))
	})

	It("leaves a malformed escape's '%' literal", func() {
		Expect(percent.Decode("100% sure")).To(Equal("100% sure"))
	})

	It("replaces ill-formed decoded UTF-8 with U+FFFD", func() {
		Expect(percent.Decode("%FF")).To(Equal("�"))
	})
})
