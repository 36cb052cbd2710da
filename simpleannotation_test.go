package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

const owlVersionInfo = "http://www.w3.org/2002/07/owl#versionInfo"

var _ = Describe("simple annotation recognition", func() {
	It("promotes rdfs:comment into an AnnotationAssertion", func() {
		build := NewIRIFactory()
		classA := build.IRI("https://example.com/A")

		triples := []Triple{
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfsComment)), Object: TermLangLiteral("a class", "en")},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		_, ok := findAxiom(ont, func(ax Axiom) bool {
			aa, ok := ax.(AnnotationAssertion)
			if !ok || !aa.Subject.IsIRI || aa.Subject.IRI != classA {
				return false
			}
			return aa.Annotation.Value.Literal.Lexical == "a class"
		})
		Expect(ok).To(BeTrue())
	})

	It("promotes a declared custom annotation property", func() {
		build := NewIRIFactory()
		classA := build.IRI("https://example.com/A")
		note := build.IRI("https://example.com/note")

		triples := []Triple{
			{Subject: TermIRI(classA), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(note), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlAnnotationProperty))},
			{Subject: TermIRI(classA), Predicate: TermIRI(note), Object: TermLangLiteral("custom", "en")},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		_, ok := findAxiom(ont, func(ax Axiom) bool {
			aa, ok := ax.(AnnotationAssertion)
			if !ok || !aa.Subject.IsIRI || aa.Subject.IRI != classA {
				return false
			}
			return aa.Annotation.Property.IRI == note && aa.Annotation.Value.Literal.Lexical == "custom"
		})
		Expect(ok).To(BeTrue())
	})
})

const owlAnnotationProperty = "http://www.w3.org/2002/07/owl#AnnotationProperty"
