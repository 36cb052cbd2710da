package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

var _ = Describe("Ontology", func() {
	It("tracks declarations as axioms are inserted", func() {
		build := NewIRIFactory()
		classA := build.IRI("https://example.com/A")
		ont := NewOntology()

		_, ok := ont.FindDeclarationKind(classA)
		Expect(ok).To(BeFalse())

		ont.Insert(AnnotatedAxiom{Axiom: Declaration{Kind: EntityClass, IRI: classA}})

		kind, ok := ont.FindDeclarationKind(classA)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(EntityClass))
		Expect(ont.Len()).To(Equal(1))
	})

	It("tracks annotation properties specially", func() {
		build := NewIRIFactory()
		ap := build.IRI("https://example.com/note")
		ont := NewOntology()
		ont.Insert(AnnotatedAxiom{Axiom: Declaration{Kind: EntityAnnotationProperty, IRI: ap}})
		Expect(ont.IsAnnotationProperty(ap)).To(BeTrue())
	})

	It("can be backed by a caller-supplied AxiomSet", func() {
		store := NewMemoryAxiomStore()
		ont := NewOntologyWithStore(store)
		build := NewIRIFactory()
		classA := build.IRI("https://example.com/A")
		ont.Insert(AnnotatedAxiom{Axiom: Declaration{Kind: EntityClass, IRI: classA}})
		Expect(store.Len()).To(Equal(1))
	})
})
