package owlrdf

import (
	gonumrdf "gonum.org/v1/gonum/graph/formats/rdf"
)

// This file backs the NTriple-string projection of a Term onto gonum's
// rdf package, the same encoding kortschak/smeargol's internal/owl package
// builds when collecting Gene Ontology statements. The teacher package
// (kahefi/ontograph) hand-rolled this with string slicing in triple.go
// (Term.IsResource/IsLiteral/Value/Language/Datatype); gonum's rdf.Term
// already implements the W3C N-Triples term grammar correctly (escaping,
// IRI scheme validation, language-tag validation), so we delegate to it
// instead of re-deriving the same parsing by hand.

// EncodeNTripleTerm renders t in N-Triples term syntax using gonum/rdf's
// escaping rules.
func EncodeNTripleTerm(t Term) (string, error) {
	switch t.Kind {
	case KindOWL:
		gt, err := gonumrdf.NewIRITerm(t.OWL.IRI())
		return gt.Value, err
	case KindRDF:
		gt, err := gonumrdf.NewIRITerm(t.RDF.IRI())
		return gt.Value, err
	case KindRDFS:
		gt, err := gonumrdf.NewIRITerm(t.RDFS.IRI())
		return gt.Value, err
	case KindIRI:
		gt, err := gonumrdf.NewIRITerm(t.IRI.String())
		return gt.Value, err
	case KindBNode:
		gt, err := gonumrdf.NewBlankTerm(string(t.BNode))
		return gt.Value, err
	case KindLiteral:
		qual := ""
		if t.Lang != "" {
			qual = "@" + t.Lang
		} else if !t.Datatype.Empty() {
			qual = t.Datatype.String()
		}
		gt, err := gonumrdf.NewLiteralTerm(t.Lexical, qual)
		return gt.Value, err
	default:
		return "", ErrNotEncodable
	}
}

// DecodeNTripleTerm parses an N-Triples term string (as produced by
// rdf2go's Term.String(), or read directly from an N-Triples/N-Quads
// document) back into a Term, classifying built-in vocabulary IRIs
// along the way (component C1).
func DecodeNTripleTerm(s string, build IRIFactory) (Term, error) {
	gt := gonumrdf.Term{Value: s}
	text, qual, kind, err := gt.Parts()
	if err != nil {
		return Term{}, err
	}
	switch kind {
	case gonumrdf.IRI:
		return classify(TermIRI(build.IRI(text)), build), nil
	case gonumrdf.Blank:
		return TermBlank(BlankNodeID(text)), nil
	case gonumrdf.Literal:
		switch {
		case qual == "":
			return TermTypedLiteral(text, build.IRI(xsdString)), nil
		case qual[0] == '@':
			return TermLangLiteral(text, qual[1:]), nil
		default:
			return TermTypedLiteral(text, build.IRI(qual)), nil
		}
	default:
		return Term{}, ErrNotDecodable
	}
}

const xsdString = "http://www.w3.org/2001/XMLSchema#string"
