package utfdecode_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/upa-url/upa-sub001/internal/utfdecode"
)

var _ = Describe("FromUTF8", func() {
	It("is a transparent rune conversion", func() {
		Expect(utfdecode.FromUTF8("abc")).To(Equal([]rune("abc")))
	})
})

var _ = Describe("FromUTF16", func() {
	It("decodes a BMP sequence", func() {
		Expect(utfdecode.FromUTF16([]uint16{'a', 'b', 'c'})).To(Equal([]rune("abc")))
	})

	It("substitutes U+FFFD for an unpaired surrogate", func() {
		got := utfdecode.FromUTF16([]uint16{0xD800, 'x'})
		Expect(got).To(Equal([]rune{0xFFFD, 'x'}))
	})
})

var _ = Describe("FromUTF32", func() {
	It("passes through ordinary scalar values", func() {
		Expect(utfdecode.FromUTF32([]rune{'a', 'b', 'c'})).To(Equal([]rune("abc")))
	})

	It("substitutes U+FFFD for a surrogate value", func() {
		Expect(utfdecode.FromUTF32([]rune{0xD800})).To(Equal([]rune{0xFFFD}))
	})

	It("substitutes U+FFFD for a value above U+10FFFF", func() {
		Expect(utfdecode.FromUTF32([]rune{0x110000})).To(Equal([]rune{0xFFFD}))
	})
})
