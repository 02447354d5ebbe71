package harness_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/upa-url/upa-sub001/internal/harness"
)

const sample = `
COMMENT: default port stripped, dot-segments resolved
BASE: http://example.org/
URL: http://u:p@EXAMPLE.com:80/a/./b/../c?x=1#f => http://u:p@example.com/a/c?x=1#f

COMMENT: setter soft-rejection
SET:protocol
url: file:///path
val: http => file:///path
`

var _ = Describe("Parse", func() {
	It("reads URL: and SET: blocks with their base/comment context", func() {
		cases, err := harness.Parse(strings.NewReader(sample))
		Expect(err).NotTo(HaveOccurred())
		Expect(cases).To(HaveLen(2))

		Expect(cases[0].Base).To(Equal("http://example.org/"))
		Expect(cases[0].URL).To(Equal("http://u:p@EXAMPLE.com:80/a/./b/../c?x=1#f"))
		Expect(cases[0].Want).To(Equal("http://u:p@example.com/a/c?x=1#f"))

		Expect(cases[1].Setter).To(Equal("protocol"))
		Expect(cases[1].SetValue).To(Equal("http"))
		Expect(cases[1].Want).To(Equal("file:///path"))
	})
})

var _ = Describe("Run", func() {
	It("passes every matching case", func() {
		cases, err := harness.Parse(strings.NewReader(sample))
		Expect(err).NotTo(HaveOccurred())

		results := harness.Run(cases, zerolog.Nop())
		Expect(results).To(HaveLen(2))
		for _, r := range results {
			Expect(r.Failed).To(BeFalse(), r.Message)
		}
	})

	It("flags a case whose href does not match Want", func() {
		cases, err := harness.Parse(strings.NewReader("URL: http://example.com/ => http://wrong/\n"))
		Expect(err).NotTo(HaveOccurred())
		results := harness.Run(cases, zerolog.Nop())
		Expect(results[0].Failed).To(BeTrue())
	})
})
