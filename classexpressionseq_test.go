package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

const (
	owlIntersectionOf = "http://www.w3.org/2002/07/owl#intersectionOf"
	owlUnionOf        = "http://www.w3.org/2002/07/owl#unionOf"
)

var _ = Describe("class expression sequence resolution", func() {
	It("resolves an ObjectIntersectionOf whose operands need different fixed-point passes", func() {
		build := NewIRIFactory()
		hasPart := build.IRI("https://example.com/hasPart")
		hasColor := build.IRI("https://example.com/hasColor")
		wheel := build.IRI("https://example.com/Wheel")
		red := build.IRI("https://example.com/Red")
		blue := build.IRI("https://example.com/Blue")
		vehicle := build.IRI("https://example.com/Vehicle")

		intersection := BlankNodeID("i0")
		intCons1 := BlankNodeID("ic0")
		intCons2 := BlankNodeID("ic1")
		restriction1 := BlankNodeID("r1")
		restriction2 := BlankNodeID("r2")
		union := BlankNodeID("u0")
		unionCons1 := BlankNodeID("uc0")
		unionCons2 := BlankNodeID("uc1")

		triples := []Triple{
			{Subject: TermIRI(hasPart), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlObjectProperty))},
			{Subject: TermIRI(hasColor), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlObjectProperty))},
			{Subject: TermIRI(wheel), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(red), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(blue), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermIRI(vehicle), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},

			// restriction1 = hasPart some Wheel -- resolves without any nested bnode.
			{Subject: TermBlank(restriction1), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlRestriction))},
			{Subject: TermBlank(restriction1), Predicate: TermIRI(build.IRI(owlOnProperty)), Object: TermIRI(hasPart)},
			{Subject: TermBlank(restriction1), Predicate: TermIRI(build.IRI(owlSomeValuesFrom)), Object: TermIRI(wheel)},

			// union = Red unionOf Blue
			{Subject: TermBlank(union), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermBlank(union), Predicate: TermIRI(build.IRI(owlUnionOf)), Object: TermBlank(unionCons1)},
			{Subject: TermBlank(unionCons1), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermIRI(red)},
			{Subject: TermBlank(unionCons1), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermBlank(unionCons2)},
			{Subject: TermBlank(unionCons2), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermIRI(blue)},
			{Subject: TermBlank(unionCons2), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermIRI(build.IRI(rdfNil))},

			// restriction2 = hasColor some (Red or Blue) -- its filler is itself a
			// blank-node class expression, so it can only resolve once `union` has
			// already been rewritten into a ClassExpression on some earlier pass.
			{Subject: TermBlank(restriction2), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlRestriction))},
			{Subject: TermBlank(restriction2), Predicate: TermIRI(build.IRI(owlOnProperty)), Object: TermIRI(hasColor)},
			{Subject: TermBlank(restriction2), Predicate: TermIRI(build.IRI(owlSomeValuesFrom)), Object: TermBlank(union)},

			// intersection = restriction1 and restriction2. Whichever of the two
			// operands the fixed point loop happens to resolve first, the other
			// must still be present in class_expr when this sequence is checked.
			{Subject: TermBlank(intersection), Predicate: TermIRI(build.IRI(rdfType)), Object: TermIRI(build.IRI(owlClass))},
			{Subject: TermBlank(intersection), Predicate: TermIRI(build.IRI(owlIntersectionOf)), Object: TermBlank(intCons1)},
			{Subject: TermBlank(intCons1), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermBlank(restriction1)},
			{Subject: TermBlank(intCons1), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermBlank(intCons2)},
			{Subject: TermBlank(intCons2), Predicate: TermIRI(build.IRI(rdfFirst)), Object: TermBlank(restriction2)},
			{Subject: TermBlank(intCons2), Predicate: TermIRI(build.IRI(rdfRest)), Object: TermIRI(build.IRI(rdfNil))},

			{Subject: TermIRI(vehicle), Predicate: TermIRI(build.IRI(rdfsSubClassOf)), Object: TermBlank(intersection)},
		}

		ont, residuals, err := Parse(triples, build, Options{StrictMode: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())

		_, ok := findAxiom(ont, func(ax Axiom) bool {
			sc, ok := ax.(SubClassOf)
			if !ok {
				return false
			}
			sub, ok := sc.Sub.(Class)
			if !ok || sub.IRI != vehicle {
				return false
			}
			super, ok := sc.Super.(ObjectIntersectionOf)
			return ok && len(super.Operands) == 2
		})
		Expect(ok).To(BeTrue())
	})
})
