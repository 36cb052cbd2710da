package owlrdf

import (
	"fmt"
	"io"

	"github.com/deiu/rdf2go"
)

// ParseReader is the convenience entry point spec §6 calls out ("a
// convenience parse_reader(bytes, build) that chains an RDF/XML
// tokeniser"): it tokenises r with rdf2go (format is a MIME type such as
// "application/rdf+xml" or "text/turtle") and feeds the resulting triples
// through Parse. Grounded on the teacher's ParseFromTurtle
// (memory_store.go), generalised from a single hard-coded Turtle format
// and a GraphStore result to any rdf2go-supported format and an Ontology
// result.
func ParseReader(r io.Reader, format string, build IRIFactory, opts Options) (*Ontology, []Residual, error) {
	triples, err := readTriples(r, format, build)
	if err != nil {
		return nil, nil, newSyntaxError(err)
	}
	return Parse(triples, build, opts)
}

// readTriples tokenises r and converts every rdf2go.Triple into this
// package's Triple by round-tripping each term through its N-Triples
// string projection (termcodec.go), which is the only representation
// rdf2go and this package's Term agree on.
func readTriples(r io.Reader, format string, build IRIFactory) ([]Triple, error) {
	g := rdf2go.NewGraph("")
	if err := g.Parse(r, format); err != nil {
		return nil, err
	}
	var out []Triple
	for trp := range g.IterTriples() {
		subj, err := DecodeNTripleTerm(trp.Subject.String(), build)
		if err != nil {
			return nil, fmt.Errorf("owlrdf: decoding subject %s: %w", trp.Subject.String(), err)
		}
		pred, err := DecodeNTripleTerm(trp.Predicate.String(), build)
		if err != nil {
			return nil, fmt.Errorf("owlrdf: decoding predicate %s: %w", trp.Predicate.String(), err)
		}
		obj, err := DecodeNTripleTerm(trp.Object.String(), build)
		if err != nil {
			return nil, fmt.Errorf("owlrdf: decoding object %s: %w", trp.Object.String(), err)
		}
		out = append(out, Triple{Subject: subj, Predicate: pred, Object: obj})
	}
	return out, nil
}
