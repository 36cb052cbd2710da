package owlrdf

import "fmt"

// TermKind classifies a Term. The ordinal values fix the total order
// required by component C1: OWL < RDF < RDFS < IRI < BNode < Literal < Variable.
type TermKind int

const (
	KindOWL TermKind = iota
	KindRDF
	KindRDFS
	KindIRI
	KindBNode
	KindLiteral
	KindVariable
)

// BlankNodeID is an opaque, document-scoped blank node identifier.
type BlankNodeID string

// IRI is a stable, cheaply-copyable handle to an interned IRI string.
// Handle equality implies string equality, per the IRI factory contract
// in spec §6.
type IRI struct {
	id  int32
	str string
}

// String returns the IRI's string projection.
func (i IRI) String() string { return i.str }

// Empty reports whether this is the zero IRI value.
func (i IRI) Empty() bool { return i.str == "" }

// IRIFactory mints stable IRI handles. It is owned by the caller for the
// duration of a parse and must outlive the returned Ontology.
type IRIFactory interface {
	IRI(s string) IRI
}

// internIRIFactory is the default IRIFactory: a simple string interner.
// Grounded on the shortuuid-backed test-fixture IRIs in the teacher's test
// suite, generalised into a real interning table rather than a throwaway
// random label generator.
type internIRIFactory struct {
	table map[string]IRI
	next  int32
}

// NewIRIFactory creates a new, empty IRI interning table.
func NewIRIFactory() IRIFactory {
	return &internIRIFactory{table: make(map[string]IRI)}
}

func (f *internIRIFactory) IRI(s string) IRI {
	if iri, ok := f.table[s]; ok {
		return iri
	}
	iri := IRI{id: f.next, str: s}
	f.table[s] = iri
	f.next++
	return iri
}

// Term is a tagged union over a built-in vocabulary token, a canonical IRI,
// a blank node, a typed or language-tagged literal, or a variable. Terms
// are hashable, equality-comparable (via Go's == on the struct, since every
// field is itself comparable) and totally ordered (Term.Less).
type Term struct {
	Kind TermKind

	OWL  OWLTerm
	RDF  RDFTerm
	RDFS RDFSTerm

	IRI   IRI
	BNode BlankNodeID

	// Literal / LangLiteral payload.
	Lexical  string
	Datatype IRI    // set when Kind == KindLiteral
	Lang     string // set when Kind == KindLiteral and language-tagged

	Variable string
}

// TermIRI builds a named-IRI term.
func TermIRI(iri IRI) Term { return Term{Kind: KindIRI, IRI: iri} }

// TermBlank builds a blank-node term.
func TermBlank(id BlankNodeID) Term { return Term{Kind: KindBNode, BNode: id} }

// TermTypedLiteral builds a literal term with an explicit datatype IRI.
func TermTypedLiteral(lexical string, datatype IRI) Term {
	return Term{Kind: KindLiteral, Lexical: lexical, Datatype: datatype}
}

// TermLangLiteral builds a language-tagged literal term.
func TermLangLiteral(lexical, lang string) Term {
	return Term{Kind: KindLiteral, Lexical: lexical, Lang: lang}
}

// TermVariable builds a variable term. OWL RDF never produces these; they
// are preserved only so a caller feeding SPARQL-shaped input doesn't panic.
func TermVariable(name string) Term { return Term{Kind: KindVariable, Variable: name} }

func termOWL(t OWLTerm) Term  { return Term{Kind: KindOWL, OWL: t} }
func termRDF(t RDFTerm) Term  { return Term{Kind: KindRDF, RDF: t} }
func termRDFS(t RDFSTerm) Term { return Term{Kind: KindRDFS, RDFS: t} }

// classify rewrites a raw IRI term into its built-in vocabulary token when
// the IRI is a known OWL/RDF/RDFS term, per component C1. Non-IRI terms are
// returned unchanged.
func classify(t Term, build IRIFactory) Term {
	if t.Kind != KindIRI {
		return t
	}
	s := t.IRI.String()
	if tok, ok := iriToOWL[s]; ok {
		return termOWL(tok)
	}
	if tok, ok := iriToRDF[s]; ok {
		return termRDF(tok)
	}
	if tok, ok := iriToRDFS[s]; ok {
		return termRDFS(tok)
	}
	return t
}

// IsLangLiteral reports whether the term is a language-tagged literal.
// Per spec.md's open question (a), the two legal RDF serialisations
// disagree on whether an explicit rdf:langString datatype accompanies the
// tag; we normalise to "no implicit datatype" (Datatype stays empty), see
// DESIGN.md.
func (t Term) IsLangLiteral() bool {
	return t.Kind == KindLiteral && t.Lang != ""
}

// String renders the term for diagnostics. It is not a serialisation format.
func (t Term) String() string {
	switch t.Kind {
	case KindOWL:
		return t.OWL.IRI()
	case KindRDF:
		return t.RDF.IRI()
	case KindRDFS:
		return t.RDFS.IRI()
	case KindIRI:
		return "<" + t.IRI.String() + ">"
	case KindBNode:
		return "_:" + string(t.BNode)
	case KindLiteral:
		if t.Lang != "" {
			return fmt.Sprintf("%q@%s", t.Lexical, t.Lang)
		}
		if !t.Datatype.Empty() {
			return fmt.Sprintf("%q^^<%s>", t.Lexical, t.Datatype.String())
		}
		return fmt.Sprintf("%q", t.Lexical)
	case KindVariable:
		return "?" + t.Variable
	default:
		return "<invalid term>"
	}
}

// termIRIString returns the IRI string backing an IRI, OWL, RDF or RDFS
// term, and false for anything else (blank nodes, literals, variables).
func termIRIString(t Term) (string, bool) {
	switch t.Kind {
	case KindIRI:
		return t.IRI.String(), true
	case KindOWL:
		return t.OWL.IRI(), true
	case KindRDF:
		return t.RDF.IRI(), true
	case KindRDFS:
		return t.RDFS.IRI(), true
	default:
		return "", false
	}
}

// Less implements the total order over Terms required for deterministic
// sorting of blank-node triple buckets (component C2): first by kind
// ordinal, then by value within a kind.
func (t Term) Less(o Term) bool {
	if t.Kind != o.Kind {
		return t.Kind < o.Kind
	}
	switch t.Kind {
	case KindOWL:
		return t.OWL < o.OWL
	case KindRDF:
		return t.RDF < o.RDF
	case KindRDFS:
		return t.RDFS < o.RDFS
	case KindIRI:
		return t.IRI.String() < o.IRI.String()
	case KindBNode:
		return t.BNode < o.BNode
	case KindLiteral:
		if t.Lexical != o.Lexical {
			return t.Lexical < o.Lexical
		}
		if t.Lang != o.Lang {
			return t.Lang < o.Lang
		}
		return t.Datatype.String() < o.Datatype.String()
	case KindVariable:
		return t.Variable < o.Variable
	default:
		return false
	}
}
