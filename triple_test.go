package owlrdf_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

var _ = Describe("Triple", func() {
	build := NewIRIFactory()
	s := TermIRI(build.IRI("https://example.com/s"))
	p := TermIRI(build.IRI("https://example.com/p"))
	o := TermIRI(build.IRI("https://example.com/o"))

	It("projects to a comparable key", func() {
		t1 := Triple{Subject: s, Predicate: p, Object: o}
		t2 := Triple{Subject: s, Predicate: p, Object: o}
		Expect(t1.Key()).To(Equal(t2.Key()))
	})

	It("orders by subject, then predicate, then object", func() {
		t1 := Triple{Subject: s, Predicate: p, Object: o}
		o2 := TermIRI(build.IRI("https://example.com/o2"))
		t2 := Triple{Subject: s, Predicate: p, Object: o2}
		Expect(t1.Less(t2)).To(BeTrue())
		Expect(t2.Less(t1)).To(BeFalse())
	})
})
