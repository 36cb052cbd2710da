package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

const (
	owlEquivalentProperty   = "http://www.w3.org/2002/07/owl#equivalentProperty"
	owlPropertyDisjointWith = "http://www.w3.org/2002/07/owl#propertyDisjointWith"
)

var _ = Describe("property-level equivalent/disjoint recognition", func() {
	It("reconstructs EquivalentObjectProperties from owl:equivalentProperty", func() {
		build := NewIRIFactory()
		hasAuthor := build.IRI("https://example.com/hasAuthor")
		wroteBy := build.IRI("https://example.com/wroteBy")

		triples := []Triple{
			{Subject: TermIRI(hasAuthor), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlObjectProperty))},
			{Subject: TermIRI(wroteBy), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlObjectProperty))},
			{Subject: TermIRI(hasAuthor), Predicate: TermIRI(build.IRI(owlEquivalentProperty)), Object: TermIRI(wroteBy)},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		_, ok := findAxiom(ont, func(ax Axiom) bool {
			eq, ok := ax.(EquivalentObjectProperties)
			if !ok || len(eq.Properties) != 2 {
				return false
			}
			first, ok := eq.Properties[0].(ObjectProperty)
			if !ok || first.IRI != hasAuthor {
				return false
			}
			second, ok := eq.Properties[1].(ObjectProperty)
			return ok && second.IRI == wroteBy
		})
		Expect(ok).To(BeTrue())
	})

	It("reconstructs DisjointDataProperties from owl:propertyDisjointWith", func() {
		build := NewIRIFactory()
		age := build.IRI("https://example.com/age")
		height := build.IRI("https://example.com/height")

		triples := []Triple{
			{Subject: TermIRI(age), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlDatatypeProperty))},
			{Subject: TermIRI(height), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlDatatypeProperty))},
			{Subject: TermIRI(age), Predicate: TermIRI(build.IRI(owlPropertyDisjointWith)), Object: TermIRI(height)},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		_, ok := findAxiom(ont, func(ax Axiom) bool {
			dis, ok := ax.(DisjointDataProperties)
			if !ok || len(dis.Properties) != 2 {
				return false
			}
			return dis.Properties[0].IRI == age && dis.Properties[1].IRI == height
		})
		Expect(ok).To(BeTrue())
	})
})
