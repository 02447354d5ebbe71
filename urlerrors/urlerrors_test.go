package urlerrors_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/upa-url/upa-sub001/urlerrors"
)

var _ = Describe("Error", func() {
	It("prefixes the message with Op when present", func() {
		err := urlerrors.New("port", urlerrors.CodeInvalidPort, "65536")
		Expect(err.Error()).To(Equal("port: invalid port"))
	})

	It("omits the prefix when Op is empty", func() {
		err := urlerrors.New("", urlerrors.CodeEmptyHost, "")
		Expect(err.Error()).To(Equal("empty host"))
	})

	It("supports errors.Is by comparing codes, ignoring Op/Input", func() {
		a := urlerrors.New("parse", urlerrors.CodeOverflow, "aaaa")
		b := urlerrors.New("protocol", urlerrors.CodeOverflow, "bbbb")
		c := urlerrors.New("parse", urlerrors.CodeInvalidBase, "aaaa")

		Expect(errors.Is(a, b)).To(BeTrue())
		Expect(errors.Is(a, c)).To(BeFalse())
	})
})
