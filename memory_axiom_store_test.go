package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

var _ = Describe("MemoryAxiomStore", func() {
	build := NewIRIFactory()
	classA := build.IRI("https://example.com/A")
	decl := Declaration{Kind: EntityClass, IRI: classA}

	It("inserts and finds an axiom", func() {
		store := NewMemoryAxiomStore()
		Expect(store.Insert(AnnotatedAxiom{Axiom: decl})).To(Succeed())
		found, ok := store.Find(decl)
		Expect(ok).To(BeTrue())
		Expect(found.Axiom).To(Equal(Axiom(decl)))
	})

	It("rejects a second insert of a logically-equal axiom", func() {
		store := NewMemoryAxiomStore()
		Expect(store.Insert(AnnotatedAxiom{Axiom: decl})).To(Succeed())
		Expect(store.Insert(AnnotatedAxiom{Axiom: decl})).To(MatchError(ErrAxiomAlreadyExists))
	})

	It("unions annotations across UpdateLogicallyEqual calls", func() {
		store := NewMemoryAxiomStore()
		ap := AnnotationPropertyExpression{IRI: build.IRI("https://example.com/label")}
		ann1 := Annotation{Property: ap, Value: AnnotationValue{Literal: Literal{Lexical: "first"}}}
		ann2 := Annotation{Property: ap, Value: AnnotationValue{Literal: Literal{Lexical: "second"}}}

		store.UpdateLogicallyEqual(AnnotatedAxiom{Axiom: decl, Annotations: []Annotation{ann1}})
		store.UpdateLogicallyEqual(AnnotatedAxiom{Axiom: decl, Annotations: []Annotation{ann2}})

		found, ok := store.Find(decl)
		Expect(ok).To(BeTrue())
		Expect(found.Annotations).To(HaveLen(2))
		Expect(store.Len()).To(Equal(1))
	})

	It("deletes an axiom", func() {
		store := NewMemoryAxiomStore()
		Expect(store.Insert(AnnotatedAxiom{Axiom: decl})).To(Succeed())
		Expect(store.Delete(decl)).To(Succeed())
		_, ok := store.Find(decl)
		Expect(ok).To(BeFalse())
		Expect(store.Delete(decl)).To(MatchError(ErrAxiomNotFound))
	})
})
