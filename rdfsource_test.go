package owlrdf_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/kahefi/owlrdf"
)

var _ = Describe("ParseReader", func() {
	It("parses Turtle text into an ontology", func() {
		const ttl = `
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

<https://example.com/onto> a owl:Ontology .
<https://example.com/A> a owl:Class .
<https://example.com/B> a owl:Class .
<https://example.com/A> rdfs:subClassOf <https://example.com/B> .
`
		build := NewIRIFactory()
		ont, residuals, err := ParseReader(strings.NewReader(ttl), "text/turtle", build, Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(residuals).To(BeEmpty())
		Expect(ont.ID.IRI).NotTo(BeNil())
		Expect(ont.Len()).To(BeNumerically(">", 0))
	})

	It("wraps a malformed document as a syntax ParseError", func() {
		build := NewIRIFactory()
		_, _, err := ParseReader(strings.NewReader("this is not turtle {{{"), "text/turtle", build, Options{})
		Expect(err).To(HaveOccurred())
		var perr *ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Kind).To(Equal(ErrKindSyntax))
	})
})
