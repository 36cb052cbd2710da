package owlrdf

import (
	"fmt"
	"net/http"

	"github.com/deiu/rdf2go"
	shortuuid "github.com/lithammer/shortuuid/v3"
)

// BlazegraphAxiomStore is a SPARQL-backed AxiomSet, for ontologies too
// large to hold in memory (spec §4.16). It generalises the teacher's
// BlazegraphStore (blazegraph_store.go: CRUD over raw triples in a named
// graph, against the old NTriple-string Term) from triples to axioms,
// talking to the same BlazegraphEndpoint (blazegraph_endpoint.go) but
// encoding/decoding through this package's Term/Triple model instead.
//
// An axiom is only durably storable here if it flattens to exactly one
// RDF triple (flattenAxiom, writer.go) -- the same restriction the writer
// itself has today, since nested class-expression blank nodes have no
// stable round-trip encoding yet. Annotations ride along as owl:Axiom
// reification triples, in the same shape C4 (reifier.go) expects to find
// them on the way back in. Because several processes may write into the
// same namespace concurrently, the reification node is a fresh shortuuid
// rather than a parser-local sequential blank node id.
type BlazegraphAxiomStore struct {
	endpoint  *BlazegraphEndpoint
	namespace string
	graphURI  string
	build     IRIFactory
}

// NewBlazegraphAxiomStore creates a store for the named graph graphURI in
// namespace, talking to endpoint. It does not check that the namespace or
// graph exist.
func NewBlazegraphAxiomStore(endpoint *BlazegraphEndpoint, namespace, graphURI string, build IRIFactory) *BlazegraphAxiomStore {
	return &BlazegraphAxiomStore{endpoint: endpoint, namespace: namespace, graphURI: graphURI, build: build}
}

var _ AxiomSet = (*BlazegraphAxiomStore)(nil)

func (s *BlazegraphAxiomStore) flatten(ax Axiom) (rdfTriple, error) {
	ts := flattenAxiom(ax)
	if len(ts) != 1 {
		return rdfTriple{}, fmt.Errorf("owlrdf: %w: axiom has no single-triple RDF shape", ErrNotEncodable)
	}
	return ts[0], nil
}

// Insert adds ax, erroring with ErrAxiomAlreadyExists if a logically-equal
// axiom (by its flat triple form) is already present.
func (s *BlazegraphAxiomStore) Insert(ax AnnotatedAxiom) error {
	t, err := s.flatten(ax.Axiom)
	if err != nil {
		return err
	}
	exists, err := s.askTriple(t)
	if err != nil {
		return err
	}
	if exists {
		return ErrAxiomAlreadyExists
	}
	return s.insertTriple(t, ax.Annotations)
}

// UpdateLogicallyEqual replaces any existing axiom whose flat triple form
// equals ax.Axiom's, unioning the annotation sets; otherwise it inserts ax
// as new. Axioms with no single-triple shape are silently dropped, same as
// the writer's scope.
func (s *BlazegraphAxiomStore) UpdateLogicallyEqual(ax AnnotatedAxiom) {
	t, err := s.flatten(ax.Axiom)
	if err != nil {
		return
	}
	if existing, ok := s.Find(ax.Axiom); ok {
		merged := unionAnnotations(existing.Annotations, ax.Annotations)
		_ = s.deleteAnnotations(t)
		_ = s.insertAnnotations(t, merged)
		return
	}
	_ = s.insertTriple(t, ax.Annotations)
}

// Find returns the stored axiom whose flat triple form equals ax's, if any.
func (s *BlazegraphAxiomStore) Find(ax Axiom) (AnnotatedAxiom, bool) {
	t, err := s.flatten(ax)
	if err != nil {
		return AnnotatedAxiom{}, false
	}
	exists, err := s.askTriple(t)
	if err != nil || !exists {
		return AnnotatedAxiom{}, false
	}
	anns, err := s.loadAnnotations(t)
	if err != nil {
		return AnnotatedAxiom{}, false
	}
	return AnnotatedAxiom{Axiom: ax, Annotations: anns}, true
}

// Delete removes the axiom whose flat triple form equals ax's, erroring
// with ErrAxiomNotFound if none is present.
func (s *BlazegraphAxiomStore) Delete(ax Axiom) error {
	t, err := s.flatten(ax)
	if err != nil {
		return err
	}
	exists, err := s.askTriple(t)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAxiomNotFound
	}
	if err := s.deleteAnnotations(t); err != nil {
		return err
	}
	sparql := fmt.Sprintf("DELETE WHERE { GRAPH <%s> { %s %s %s . } }", s.graphURI, nt(t.Subject), nt(t.Predicate), nt(t.Object))
	code, err := s.endpoint.DoSparqlUpdate(s.namespace, sparql)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("owlrdf: delete axiom failed (HTTP %d)", code)
	}
	return nil
}

// All is unimplemented: a remote graph is a closed set of flattened
// triples, and inverting a triple back to its Axiom requires knowing
// which of flattenAxiom's shapes produced it. Use Find/Len for the
// operations this store can actually support, or MemoryAxiomStore when
// the full axiom set must be enumerated.
func (s *BlazegraphAxiomStore) All() []AnnotatedAxiom { return nil }

// Len returns the number of triples currently in the named graph.
func (s *BlazegraphAxiomStore) Len() int {
	sparql := fmt.Sprintf("SELECT (COUNT(*) as ?n) FROM <%s> WHERE { ?s ?p ?o }", s.graphURI)
	resSet, code, err := s.endpoint.DoSparqlJsonQuery(s.namespace, sparql)
	if err != nil || code != http.StatusOK || len(resSet.Results.Bindings) == 0 {
		return 0
	}
	n := 0
	fmt.Sscanf(resSet.Results.Bindings[0]["n"].Value, "%d", &n)
	return n
}

func (s *BlazegraphAxiomStore) askTriple(t rdfTriple) (bool, error) {
	sparql := fmt.Sprintf("ASK WHERE { GRAPH <%s> { %s %s %s } }", s.graphURI, nt(t.Subject), nt(t.Predicate), nt(t.Object))
	resSet, code, err := s.endpoint.DoSparqlJsonQuery(s.namespace, sparql)
	if err != nil {
		return false, err
	}
	if code == http.StatusNotFound {
		return false, nil
	}
	if code != http.StatusOK {
		return false, fmt.Errorf("owlrdf: ASK query failed (HTTP %d)", code)
	}
	return resSet.Boolean, nil
}

func (s *BlazegraphAxiomStore) insertTriple(t rdfTriple, anns []Annotation) error {
	sparql := fmt.Sprintf("INSERT DATA { GRAPH <%s> { %s %s %s . } }", s.graphURI, nt(t.Subject), nt(t.Predicate), nt(t.Object))
	code, err := s.endpoint.DoSparqlUpdate(s.namespace, sparql)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("owlrdf: insert axiom failed (HTTP %d)", code)
	}
	return s.insertAnnotations(t, anns)
}

// insertAnnotations writes one owl:Axiom reification blank node per
// annotation, in the same shape reifyAxiomAnnotations (reifier.go) reads
// back on ingest.
func (s *BlazegraphAxiomStore) insertAnnotations(t rdfTriple, anns []Annotation) error {
	for _, ann := range anns {
		node := "_:ax" + shortuuid.New()
		body := fmt.Sprintf(
			"%s <%s> <%s> . %s <%s> %s . %s <%s> %s . %s <%s> %s . %s <%s> %s .",
			node, rdfTypeIRI, OWLAxiom.IRI(),
			node, OWLAnnotatedSource.IRI(), nt(t.Subject),
			node, OWLAnnotatedProperty.IRI(), nt(t.Predicate),
			node, OWLAnnotatedTarget.IRI(), nt(t.Object),
			node, ann.Property.IRI.String(), ntAnnotationValue(ann.Value),
		)
		sparql := fmt.Sprintf("INSERT DATA { GRAPH <%s> { %s } }", s.graphURI, body)
		code, err := s.endpoint.DoSparqlUpdate(s.namespace, sparql)
		if err != nil {
			return err
		}
		if code != http.StatusOK {
			return fmt.Errorf("owlrdf: insert annotation failed (HTTP %d)", code)
		}
	}
	return nil
}

func (s *BlazegraphAxiomStore) deleteAnnotations(t rdfTriple) error {
	sparql := fmt.Sprintf(
		"DELETE WHERE { GRAPH <%s> { ?ax <%s> %s . ?ax <%s> %s . ?ax <%s> %s . ?ax ?p ?o . } }",
		s.graphURI, OWLAnnotatedSource.IRI(), nt(t.Subject), OWLAnnotatedProperty.IRI(), nt(t.Predicate), OWLAnnotatedTarget.IRI(), nt(t.Object),
	)
	code, err := s.endpoint.DoSparqlUpdate(s.namespace, sparql)
	if err != nil {
		return err
	}
	if code != http.StatusOK && code != http.StatusNotFound {
		return fmt.Errorf("owlrdf: delete annotations failed (HTTP %d)", code)
	}
	return nil
}

func (s *BlazegraphAxiomStore) loadAnnotations(t rdfTriple) ([]Annotation, error) {
	sparql := fmt.Sprintf(
		"SELECT ?p ?v WHERE { GRAPH <%s> { ?ax <%s> %s . ?ax <%s> %s . ?ax <%s> %s . ?ax ?p ?v . FILTER(?p != <%s> && ?p != <%s> && ?p != <%s> && ?p != <%s>) } }",
		s.graphURI, OWLAnnotatedSource.IRI(), nt(t.Subject), OWLAnnotatedProperty.IRI(), nt(t.Predicate), OWLAnnotatedTarget.IRI(), nt(t.Object),
		rdfTypeIRI, OWLAnnotatedSource.IRI(), OWLAnnotatedProperty.IRI(), OWLAnnotatedTarget.IRI(),
	)
	resSet, code, err := s.endpoint.DoSparqlJsonQuery(s.namespace, sparql)
	if err != nil || code != http.StatusOK {
		return nil, err
	}
	var anns []Annotation
	for _, binding := range resSet.Results.Bindings {
		propTerm, err := DecodeNTripleTerm(fmt.Sprintf("<%s>", binding["p"].Value), s.build)
		if err != nil || propTerm.Kind != KindIRI {
			continue
		}
		ap := AnnotationPropertyExpression{IRI: propTerm.IRI}
		if binding["v"].Type == "uri" {
			vTerm, err := DecodeNTripleTerm(fmt.Sprintf("<%s>", binding["v"].Value), s.build)
			if err != nil {
				continue
			}
			anns = append(anns, Annotation{Property: ap, Value: AnnotationValue{IsIRI: true, IRI: vTerm.IRI}})
			continue
		}
		anns = append(anns, Annotation{Property: ap, Value: AnnotationValue{Literal: Literal{
			Lexical:  binding["v"].Value,
			Lang:     binding["v"].Lang,
			Datatype: s.build.IRI(binding["v"].DataType),
		}}})
	}
	return anns, nil
}

// nt renders an rdf2go.Term in its N-Triples form for inline use in a
// SPARQL query string.
func nt(t rdf2go.Term) string { return t.String() }

// ntAnnotationValue renders an AnnotationValue the same way.
func ntAnnotationValue(v AnnotationValue) string {
	if v.IsIRI {
		return nt(iriResource(v.IRI))
	}
	return nt(literalTerm(v.Literal))
}
