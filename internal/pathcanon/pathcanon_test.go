package pathcanon_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/ginkgo/extensions/table"

	"github.com/upa-url/upa-sub001/internal/pathcanon"
)

var _ = Describe("dot-segment recognition", func() {
	table.DescribeTable("IsSingleDot",
		func(segment string, want bool) {
			Expect(pathcanon.IsSingleDot(segment)).To(Equal(want))
		},
		table.Entry(".", ".", true),
		table.Entry("%2e", "%2e", true),
		table.Entry("%2E", "%2E", true),
		table.Entry("..", "..", false),
		table.Entry("a", "a", false),
	)

	table.DescribeTable("IsDoubleDot",
		func(segment string, want bool) {
			Expect(pathcanon.IsDoubleDot(segment)).To(Equal(want))
		},
		table.Entry("..", "..", true),
		table.Entry("%2e.", "%2e.", true),
		table.Entry(".%2e", ".%2e", true),
		table.Entry("%2e%2e", "%2e%2e", true),
		table.Entry("%2E%2E", "%2E%2E", true),
		table.Entry(".", ".", false),
		table.Entry("...", "...", false),
	)
})

var _ = Describe("Windows drive letters", func() {
	It("recognizes a colon or pipe drive letter", func() {
		Expect(pathcanon.IsWindowsDriveLetter("c:")).To(BeTrue())
		Expect(pathcanon.IsWindowsDriveLetter("c|")).To(BeTrue())
		Expect(pathcanon.IsWindowsDriveLetter("cc")).To(BeFalse())
		Expect(pathcanon.IsWindowsDriveLetter("c")).To(BeFalse())
	})

	It("only treats ':' as normalized", func() {
		Expect(pathcanon.IsNormalizedWindowsDriveLetter("c:")).To(BeTrue())
		Expect(pathcanon.IsNormalizedWindowsDriveLetter("c|")).To(BeFalse())
	})

	It("requires a path boundary after the two code points", func() {
		Expect(pathcanon.StartsWithWindowsDriveLetter("c:")).To(BeTrue())
		Expect(pathcanon.StartsWithWindowsDriveLetter("c:/x")).To(BeTrue())
		Expect(pathcanon.StartsWithWindowsDriveLetter("c:x")).To(BeFalse())
	})

	It("normalizes '|' to ':'", func() {
		Expect(pathcanon.NormalizeWindowsDriveLetter("c|")).To(Equal("c:"))
		Expect(pathcanon.NormalizeWindowsDriveLetter("c:")).To(Equal("c:"))
	})
})
