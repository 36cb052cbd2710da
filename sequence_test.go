package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

const (
	rdfFirst                = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	rdfRest                 = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	rdfNil                  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
	owlAllDisjointClasses   = "http://www.w3.org/2002/07/owl#AllDisjointClasses"
	owlMembers              = "http://www.w3.org/2002/07/owl#members"
)

var _ = Describe("RDF list reconstruction", func() {
	It("stitches an owl:members list into an ordered DisjointClasses axiom", func() {
		build := NewIRIFactory()
		classA := build.IRI("https://example.com/A")
		classB := build.IRI("https://example.com/B")
		disjoint := BlankNodeID("d0")
		cons1 := BlankNodeID("l0")
		cons2 := BlankNodeID("l1")

		triples := []Triple{
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(classB), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermBlank(disjoint), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlAllDisjointClasses))},
			{Subject: TermBlank(disjoint), Predicate: TermIRI(build.IRI(owlMembers)), Object: TermBlank(cons1)},
			{Subject: TermBlank(cons1), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermIRI(classA)},
			{Subject: TermBlank(cons1), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermBlank(cons2)},
			{Subject: TermBlank(cons2), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermIRI(classB)},
			{Subject: TermBlank(cons2), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermIRI(build.IRI(rdfNil))},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		_, ok := findAxiom(ont, func(ax Axiom) bool {
			dc, ok := ax.(DisjointClasses)
			if !ok || len(dc.Classes) != 2 {
				return false
			}
			first, ok1 := dc.Classes[0].(Class)
			second, ok2 := dc.Classes[1].(Class)
			return ok1 && ok2 && first.IRI == classA && second.IRI == classB
		})
		Expect(ok).To(BeTrue())
	})
})
