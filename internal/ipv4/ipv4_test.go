package ipv4_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/ginkgo/extensions/table"

	"github.com/upa-url/upa-sub001/internal/ipv4"
)

var _ = Describe("Parse", func() {
	table.DescribeTable("valid addresses",
		func(input string, want uint32) {
			got, err := ipv4.Parse(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		table.Entry("plain decimal", "127.0.0.1", uint32(0x7f000001)),
		table.Entry("hex first octet, decimal tail folded", "0x7f.1", uint32(0x7f000001)),
		table.Entry("octal", "0300.0250.0.1", uint32(0xc0a80001)),
		table.Entry("single 32-bit number", "3232235521", uint32(0xc0a80001)),
		table.Entry("three parts, last absorbs two octets", "192.168.1", uint32(0xc0a80001)),
		table.Entry("bare 0x part is zero, not rejected", "0x", uint32(0)),
		table.Entry("bare 0X part is zero, not rejected", "1.2.3.0X", uint32(0x01020300)),
	)

	It("rejects more than four parts", func() {
		_, err := ipv4.Parse("1.2.3.4.5")
		Expect(err).To(HaveOccurred())
	})

	It("rejects an out-of-range non-final part", func() {
		_, err := ipv4.Parse("256.0.0.1")
		Expect(err).To(HaveOccurred())
	})

	It("round-trips serialize(parse(x)) for a representative sample", func() {
		for _, n := range []uint32{0, 1, 0x7f000001, 0xc0a80001, 0xffffffff} {
			s := ipv4.Serialize(n)
			got, err := ipv4.Parse(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(n))
		}
	})
})

var _ = Describe("EndsInNumber", func() {
	It("is true for an all-digit last label", func() {
		Expect(ipv4.EndsInNumber("example.123")).To(BeTrue())
	})
	It("is true for a 0x-prefixed last label", func() {
		Expect(ipv4.EndsInNumber("example.0x1")).To(BeTrue())
	})
	It("is false for an ordinary domain", func() {
		Expect(ipv4.EndsInNumber("example.com")).To(BeFalse())
	})
})
