package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

const (
	rdfType        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfsSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
	owlClass       = "http://www.w3.org/2002/07/owl#Class"
	owlOntologyIRI = "http://www.w3.org/2002/07/owl#Ontology"
)

func findAxiom(ont *Ontology, pred func(Axiom) bool) (Axiom, bool) {
	for _, ax := range ont.All() {
		if pred(ax.Axiom) {
			return ax.Axiom, true
		}
	}
	return nil, false
}

var _ = Describe("Parse", func() {
	It("reconstructs a minimal class hierarchy", func() {
		build := NewIRIFactory()
		ontIRI := build.IRI("https://example.com/onto")
		classA := build.IRI("https://example.com/A")
		classB := build.IRI("https://example.com/B")

		triples := []Triple{
			{Subject: TermIRI(ontIRI), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlOntologyIRI))},
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(classB), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfsSubClassOf)), Object: TermIRI(classB)},
		}

		ont, residuals, err := Parse(triples, build, Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		Expect(ont.ID.IRI).NotTo(BeNil())
		Expect(*ont.ID.IRI).To(Equal(ontIRI))

		kindA, ok := ont.FindDeclarationKind(classA)
		Expect(ok).To(BeTrue())
		Expect(kindA).To(Equal(EntityClass))

		_, ok = findAxiom(ont, func(ax Axiom) bool {
			sc, ok := ax.(SubClassOf)
			if !ok {
				return false
			}
			sub, ok1 := sc.Sub.(Class)
			super, ok2 := sc.Super.(Class)
			return ok1 && ok2 && sub.IRI == classA && super.IRI == classB
		})
		Expect(ok).To(BeTrue())
	})

	It("reports residuals in strict mode when a triple cannot be recognised", func() {
		build := NewIRIFactory()
		unknownPred := build.IRI("https://example.com/unknownPredicate")
		triples := []Triple{
			{Subject: TermBlank("b0"), Predicate: TermIRI(unknownPred), Object: TermBlank("b1")},
		}

		_, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).To(HaveOccurred())
		Expect(residuals).NotTo(BeEmpty())
	})
})
