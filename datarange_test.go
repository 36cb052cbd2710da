package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

const (
	owlDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"
	rdfsDatatype        = "http://www.w3.org/2000/01/rdf-schema#Datatype"
	rdfsRange           = "http://www.w3.org/2000/01/rdf-schema#range"
	owlOneOf            = "http://www.w3.org/2002/07/owl#oneOf"
)

var _ = Describe("data range reconstruction", func() {
	It("reconstructs a DataOneOf range on a data property", func() {
		build := NewIRIFactory()
		status := build.IRI("https://example.com/status")
		dr := BlankNodeID("dr0")
		cons1 := BlankNodeID("l0")
		cons2 := BlankNodeID("l1")

		triples := []Triple{
			{Subject: TermIRI(status), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlDatatypeProperty))},
			{Subject: TermBlank(dr), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(rdfsDatatype))},
			{Subject: TermBlank(dr), Predicate: TermIRI(build.IRI(owlOneOf)), Object: TermBlank(cons1)},
			{Subject: TermBlank(cons1), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermTypedLiteral("active", build.IRI("http://www.w3.org/2001/XMLSchema#string"))},
			{Subject: TermBlank(cons1), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermBlank(cons2)},
			{Subject: TermBlank(cons2), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermTypedLiteral("inactive", build.IRI("http://www.w3.org/2001/XMLSchema#string"))},
			{Subject: TermBlank(cons2), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermIRI(build.IRI(rdfNil))},
			{Subject: TermIRI(status), Predicate: TermIRI(build.IRI(rdfsRange)), Object: TermBlank(dr)},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		_, ok := findAxiom(ont, func(ax Axiom) bool {
			dpr, ok := ax.(DataPropertyRange)
			if !ok {
				return false
			}
			oneOf, ok := dpr.Range.(DataOneOf)
			if !ok || len(oneOf.Literals) != 2 {
				return false
			}
			return oneOf.Literals[0].Lexical == "active" && oneOf.Literals[1].Lexical == "inactive"
		})
		Expect(ok).To(BeTrue())
	})
})
