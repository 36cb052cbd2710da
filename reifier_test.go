package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

const (
	owlAxiom             = "http://www.w3.org/2002/07/owl#Axiom"
	owlAnnotatedSource   = "http://www.w3.org/2002/07/owl#annotatedSource"
	owlAnnotatedProperty = "http://www.w3.org/2002/07/owl#annotatedProperty"
	owlAnnotatedTarget   = "http://www.w3.org/2002/07/owl#annotatedTarget"
	rdfsComment          = "http://www.w3.org/2000/01/rdf-schema#comment"
)

var _ = Describe("axiom annotation reification", func() {
	It("attaches a reified owl:Axiom annotation to its underlying axiom", func() {
		build := NewIRIFactory()
		classA := build.IRI("https://example.com/A")
		classB := build.IRI("https://example.com/B")
		reif := BlankNodeID("ax0")

		triples := []Triple{
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(classB), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermBlank(reif), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlAxiom))},
			{Subject: TermBlank(reif), Predicate: TermIRI(build.IRI(owlAnnotatedSource)), Object: TermIRI(classA)},
			{Subject: TermBlank(reif), Predicate: TermIRI(build.IRI(owlAnnotatedProperty)), Object: TermIRI(build.IRI(rdfsSubClassOf))},
			{Subject: TermBlank(reif), Predicate: TermIRI(build.IRI(owlAnnotatedTarget)), Object: TermIRI(classB)},
			{Subject: TermBlank(reif), Predicate: TermIRI(build.IRI(rdfsComment)), Object: TermLangLiteral("why", "en")},
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfsSubClassOf)), Object: TermIRI(classB)},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		var found AnnotatedAxiom
		var ok bool
		for _, ax := range ont.All() {
			if sc, isSC := ax.Axiom.(SubClassOf); isSC {
				sub, ok1 := sc.Sub.(Class)
				super, ok2 := sc.Super.(Class)
				if ok1 && ok2 && sub.IRI == classA && super.IRI == classB {
					found, ok = ax, true
					break
				}
			}
		}
		Expect(ok).To(BeTrue())
		Expect(found.Annotations).To(HaveLen(1))
		Expect(found.Annotations[0].Value.Literal.Lexical).To(Equal("why"))
	})
})
