package compat_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/upa-url/upa-sub001/compat"

	upaurl "github.com/upa-url/upa-sub001"
)

var _ = Describe("ToNetURL", func() {
	It("maps scheme, host, path, query and fragment", func() {
		u, err := upaurl.Parse("http://u:p@example.com/a/b?x=1#f")
		Expect(err).NotTo(HaveOccurred())

		netURL := compat.ToNetURL(u)
		Expect(netURL.Scheme).To(Equal("http"))
		Expect(netURL.Host).To(Equal("example.com"))
		Expect(netURL.Path).To(Equal("/a/b"))
		Expect(netURL.RawQuery).To(Equal("x=1"))
		Expect(netURL.Fragment).To(Equal("f"))
		Expect(netURL.User.String()).To(Equal("u:p"))
	})

	It("carries an opaque path for cannot-be-a-base URLs", func() {
		u, err := upaurl.Parse("mailto:a@b.com")
		Expect(err).NotTo(HaveOccurred())

		netURL := compat.ToNetURL(u)
		Expect(netURL.Opaque).To(Equal("a@b.com"))
		Expect(netURL.Path).To(Equal(""))
	})
})

var _ = Describe("LegacyNormalize", func() {
	It("lower-cases the host and sorts the query", func() {
		u, err := upaurl.Parse("HTTP://EXAMPLE.com/a?b=2&a=1")
		Expect(err).NotTo(HaveOccurred())

		normalized, err := compat.LegacyNormalize(u)
		Expect(err).NotTo(HaveOccurred())
		Expect(normalized).To(ContainSubstring("example.com"))
		Expect(normalized).To(ContainSubstring("a=1&b=2"))
	})
})
