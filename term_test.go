package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

var _ = Describe("IRIFactory", func() {
	It("interns equal strings to the same handle", func() {
		build := NewIRIFactory()
		a := build.IRI("https://example.com/A")
		b := build.IRI("https://example.com/A")
		Expect(a).To(Equal(b))
		Expect(a.String()).To(Equal("https://example.com/A"))
	})

	It("mints distinct handles for distinct strings", func() {
		build := NewIRIFactory()
		a := build.IRI("https://example.com/A")
		b := build.IRI("https://example.com/B")
		Expect(a).NotTo(Equal(b))
	})
})

var _ = Describe("Term ordering", func() {
	build := NewIRIFactory()

	It("orders by kind ordinal first", func() {
		owlTerm := TermIRI(build.IRI("https://example.com/A"))
		bnode := TermBlank(BlankNodeID("b0"))
		Expect(owlTerm.Less(bnode)).To(BeTrue())
		Expect(bnode.Less(owlTerm)).To(BeFalse())
	})

	It("orders IRIs lexically within the IRI kind", func() {
		a := TermIRI(build.IRI("https://example.com/A"))
		b := TermIRI(build.IRI("https://example.com/B"))
		Expect(a.Less(b)).To(BeTrue())
	})

	It("orders literals by lexical form, then language, then datatype", func() {
		a := TermLangLiteral("hello", "en")
		b := TermLangLiteral("hello", "fr")
		Expect(a.Less(b)).To(BeTrue())
	})
})

var _ = Describe("language-tagged literals", func() {
	It("carries no implicit datatype", func() {
		t := TermLangLiteral("hello", "en")
		Expect(t.IsLangLiteral()).To(BeTrue())
		Expect(t.Datatype.Empty()).To(BeTrue())
	})
})
