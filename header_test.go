package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

var _ = Describe("ontology header extraction", func() {
	It("records the version IRI alongside the ontology IRI", func() {
		build := NewIRIFactory()
		ontIRI := build.IRI("https://example.com/onto")
		versionIRI := build.IRI("https://example.com/onto/1.0")

		triples := []Triple{
			{Subject: TermIRI(ontIRI), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlOntologyIRI))},
			{Subject: TermIRI(ontIRI), Predicate: TermIRI(build.IRI(owlVersionIRI)), Object: TermIRI(versionIRI)},
		}

		ont, _, err := Parse(triples, build, Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(ont.ID.IRI).NotTo(BeNil())
		Expect(*ont.ID.IRI).To(Equal(ontIRI))
		Expect(ont.ID.VersionIRI).NotTo(BeNil())
		Expect(*ont.ID.VersionIRI).To(Equal(versionIRI))
	})

	It("keeps the last ontology IRI when more than one rdf:type owl:Ontology triple is present", func() {
		build := NewIRIFactory()
		ontA := build.IRI("https://example.com/onto-a")
		ontB := build.IRI("https://example.com/onto-b")

		triples := []Triple{
			{Subject: TermIRI(ontA), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlOntologyIRI))},
			{Subject: TermIRI(ontB), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlOntologyIRI))},
		}

		ont, _, err := Parse(triples, build, Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(ont.ID.IRI).NotTo(BeNil())
		Expect(*ont.ID.IRI).To(Equal(ontB))
	})
})

const owlVersionIRI = "http://www.w3.org/2002/07/owl#versionIRI"
