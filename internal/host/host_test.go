package host_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/upa-url/upa-sub001/internal/host"
)

var _ = Describe("Parse", func() {
	var p *host.Parser

	BeforeEach(func() {
		p = host.NewParser()
	})

	It("parses a bracketed IPv6 literal", func() {
		h, err := p.Parse("[::1]", true, false)
		Expect(err).To(BeNil())
		Expect(h.Kind).To(Equal(host.IPv6))
		Expect(h.String()).To(Equal("[::1]"))
	})

	It("rejects a bracketed literal missing its closing bracket", func() {
		_, err := p.Parse("[::1", true, false)
		Expect(err).NotTo(BeNil())
		Expect(err.Kind).To(Equal(host.ErrInvalidIPv6))
	})

	It("lower-cases an ASCII domain on the fast path", func() {
		h, err := p.Parse("EXAMPLE.COM", true, false)
		Expect(err).To(BeNil())
		Expect(h.Kind).To(Equal(host.Domain))
		Expect(h.String()).To(Equal("example.com"))
	})

	It("recognizes an all-numeric domain as IPv4", func() {
		h, err := p.Parse("192.168.0.1", true, false)
		Expect(err).To(BeNil())
		Expect(h.Kind).To(Equal(host.IPv4))
		Expect(h.String()).To(Equal("192.168.0.1"))
	})

	It("rejects an empty host for a special scheme", func() {
		_, err := p.Parse("", true, false)
		Expect(err).NotTo(BeNil())
		Expect(err.Kind).To(Equal(host.ErrEmptyHost))
	})

	It("accepts an empty host for a non-special scheme", func() {
		h, err := p.Parse("", false, false)
		Expect(err).To(BeNil())
		Expect(h.Kind).To(Equal(host.Empty))
	})

	It("percent-encodes C0 controls in an opaque host", func() {
		h, err := p.Parse("a\x01b", false, true)
		Expect(err).To(BeNil())
		Expect(h.Kind).To(Equal(host.Opaque))
		Expect(h.String()).To(Equal("a%01b"))
	})

	It("rejects a forbidden host code point in an opaque host", func() {
		_, err := p.Parse("a|b", false, true)
		Expect(err).NotTo(BeNil())
		Expect(err.Kind).To(Equal(host.ErrInvalidDomainCharacter))
	})

	It("routes a percent-escaped domain through IDNA", func() {
		h, err := p.Parse("exa%6dple.com", true, false)
		Expect(err).To(BeNil())
		Expect(h.Kind).To(Equal(host.Domain))
		Expect(h.String()).To(Equal("example.com"))
	})
})
