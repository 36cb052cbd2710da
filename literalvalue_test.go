package owlrdf_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

var _ = Describe("typed literal constructors", func() {
	build := NewIRIFactory()

	It("round-trips an integer", func() {
		lit := NewIntegerLiteral(build, 42)
		v, err := lit.AsInteger()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(42))
	})

	It("round-trips a boolean", func() {
		lit := NewBooleanLiteral(build, true)
		v, err := lit.AsBoolean()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeTrue())
	})

	It("round-trips a dateTime", func() {
		now := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
		lit := NewDateTimeLiteral(build, now)
		v, err := lit.AsDateTime()
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Equal(now)).To(BeTrue())
	})

	It("rejects a type mismatch", func() {
		lit := NewStringLiteral(build, "hello")
		_, err := lit.AsInteger()
		Expect(err).To(MatchError(ErrLiteralTypeMismatch))
	})
})
