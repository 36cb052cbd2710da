package owlrdf

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/deiu/rdf2go"
)

// WriteTurtle serialises ont's header and every axiom whose arguments are
// all named (IRIs and literals -- no synthesised blank nodes for nested
// class expressions) as Turtle. This matches spec.md's Round-trip
// property, which is explicitly scoped to "used only by tests" / header
// round-trip today; axioms that need a blank node (nested class
// expressions, property chains, ...) are silently skipped and are not
// yet part of the writer's growth.
//
// Grounded on the teacher's MemoryStore.SerializeToTurtle
// (memory_store.go): build an rdf2go.Graph, serialize it, then run the
// same prefix-compaction pass (a @prefix block for rdf/rdfs/owl/xsd plus,
// when the ontology has an IRI, an empty prefix for that IRI followed by
// "#", each IRI prefix string-replaced with its abbreviation).
func WriteTurtle(w io.Writer, ont *Ontology, build IRIFactory) error {
	g := rdf2go.NewGraph("")

	baseURI := ""
	if ont.ID.IRI != nil {
		baseURI = ont.ID.IRI.String()
		g.AddTriple(rdf2go.NewResource(baseURI), rdf2go.NewResource(rdfTypeIRI), rdf2go.NewResource(OWLOntology.IRI()))
		if ont.ID.VersionIRI != nil {
			g.AddTriple(rdf2go.NewResource(baseURI), rdf2go.NewResource(OWLVersionIRI.IRI()), rdf2go.NewResource(ont.ID.VersionIRI.String()))
		}
	}

	for _, ax := range ont.All() {
		for _, t := range flattenAxiom(ax.Axiom) {
			g.AddTriple(t.Subject, t.Predicate, t.Object)
		}
	}

	var ttlBytes bytes.Buffer
	if err := g.Serialize(&ttlBytes, "text/turtle"); err != nil {
		return err
	}
	ttlContent := ttlBytes.String()

	prefixMap := map[string]string{
		"rdf":  nsRDF,
		"rdfs": nsRDFS,
		"owl":  nsOWL,
		"xsd":  "http://www.w3.org/2001/XMLSchema#",
	}
	if baseURI != "" {
		prefixMap[""] = baseURI + "#"
	}

	var prefixBlock strings.Builder
	for abbr, prefix := range prefixMap {
		fmt.Fprintf(&prefixBlock, "@prefix %s: <%s> .\n", abbr, prefix)
		re := regexp.MustCompile(fmt.Sprintf(`<%s(.+?)>`, regexp.QuoteMeta(prefix)))
		ttlContent = re.ReplaceAllString(ttlContent, fmt.Sprintf("%s:$1", abbr))
	}
	ttlContent = strings.ReplaceAll(ttlContent, " .", " .\n")

	out := prefixBlock.String() + "\n" + ttlContent
	if baseURI != "" {
		out = fmt.Sprintf("@base <%s> .\n%s", baseURI, out)
	}
	_, err := io.WriteString(w, out)
	return err
}

const rdfTypeIRI = nsRDF + "type"

// rdfTriple is an rdf2go triple literal used only to batch-emit flattened
// axiom triples into the graph in flattenAxiom.
type rdfTriple struct {
	Subject, Predicate, Object rdf2go.Term
}

func iriResource(iri IRI) rdf2go.Term { return rdf2go.NewResource(iri.String()) }

func literalTerm(lit Literal) rdf2go.Term {
	if lit.Lang != "" {
		return rdf2go.NewLiteralWithLanguage(lit.Lexical, lit.Lang)
	}
	if !lit.Datatype.Empty() {
		return rdf2go.NewLiteralWithDatatype(lit.Lexical, iriResource(lit.Datatype))
	}
	return rdf2go.NewLiteral(lit.Lexical)
}

// flattenAxiom renders ax back to its RDF triple shape when every one of
// its arguments is named (a Class/ObjectProperty/DataProperty IRI or a
// named Individual/Literal); it returns nil for anything requiring a
// blank node.
func flattenAxiom(ax Axiom) []rdfTriple {
	switch a := ax.(type) {
	case Declaration:
		tok, ok := declarationOWLType(a.Kind)
		if !ok {
			return nil
		}
		return []rdfTriple{{iriResource(a.IRI), rdf2go.NewResource(rdfTypeIRI), rdf2go.NewResource(tok)}}

	case SubClassOf:
		sub, ok1 := a.Sub.(Class)
		super, ok2 := a.Super.(Class)
		if !ok1 || !ok2 {
			return nil
		}
		return []rdfTriple{{iriResource(sub.IRI), rdf2go.NewResource(nsRDFS + "subClassOf"), iriResource(super.IRI)}}

	case DisjointClasses:
		if len(a.Classes) != 2 {
			return nil
		}
		c0, ok1 := a.Classes[0].(Class)
		c1, ok2 := a.Classes[1].(Class)
		if !ok1 || !ok2 {
			return nil
		}
		return []rdfTriple{{iriResource(c0.IRI), rdf2go.NewResource(nsOWL + "disjointWith"), iriResource(c1.IRI)}}

	case EquivalentClasses:
		if len(a.Classes) != 2 {
			return nil
		}
		c0, ok1 := a.Classes[0].(Class)
		c1, ok2 := a.Classes[1].(Class)
		if !ok1 || !ok2 {
			return nil
		}
		return []rdfTriple{{iriResource(c0.IRI), rdf2go.NewResource(nsOWL + "equivalentClass"), iriResource(c1.IRI)}}

	case ObjectPropertyDomain:
		p, ok1 := a.Property.(ObjectProperty)
		d, ok2 := a.Domain.(Class)
		if !ok1 || !ok2 {
			return nil
		}
		return []rdfTriple{{iriResource(p.IRI), rdf2go.NewResource(nsRDFS + "domain"), iriResource(d.IRI)}}

	case ObjectPropertyRange:
		p, ok1 := a.Property.(ObjectProperty)
		r, ok2 := a.Range.(Class)
		if !ok1 || !ok2 {
			return nil
		}
		return []rdfTriple{{iriResource(p.IRI), rdf2go.NewResource(nsRDFS + "range"), iriResource(r.IRI)}}

	case DataPropertyDomain:
		d, ok := a.Domain.(Class)
		if !ok {
			return nil
		}
		return []rdfTriple{{iriResource(a.Property.IRI), rdf2go.NewResource(nsRDFS + "domain"), iriResource(d.IRI)}}

	case DataPropertyRange:
		r, ok := a.Range.(Datatype)
		if !ok {
			return nil
		}
		return []rdfTriple{{iriResource(a.Property.IRI), rdf2go.NewResource(nsRDFS + "range"), iriResource(r.IRI)}}

	case FunctionalObjectProperty:
		p, ok := a.Property.(ObjectProperty)
		if !ok {
			return nil
		}
		return []rdfTriple{{iriResource(p.IRI), rdf2go.NewResource(rdfTypeIRI), rdf2go.NewResource(nsOWL + "FunctionalProperty")}}

	case TransitiveObjectProperty:
		p, ok := a.Property.(ObjectProperty)
		if !ok {
			return nil
		}
		return []rdfTriple{{iriResource(p.IRI), rdf2go.NewResource(rdfTypeIRI), rdf2go.NewResource(nsOWL + "TransitiveProperty")}}

	case ClassAssertion:
		c, ok1 := a.Class.(Class)
		if !ok1 || !a.Individual.Named {
			return nil
		}
		return []rdfTriple{{iriResource(a.Individual.IRI), rdf2go.NewResource(rdfTypeIRI), iriResource(c.IRI)}}

	case ObjectPropertyAssertion:
		p, ok1 := a.Property.(ObjectProperty)
		if !ok1 || !a.Subject.Named || !a.Object.Named {
			return nil
		}
		return []rdfTriple{{iriResource(a.Subject.IRI), iriResource(p.IRI), iriResource(a.Object.IRI)}}

	case DataPropertyAssertion:
		if !a.Subject.Named {
			return nil
		}
		return []rdfTriple{{iriResource(a.Subject.IRI), iriResource(a.Property.IRI), literalTerm(a.Value)}}

	case AnnotationAssertion:
		if !a.Subject.IsIRI {
			return nil
		}
		if a.Annotation.Value.IsIRI {
			return []rdfTriple{{iriResource(a.Subject.IRI), iriResource(a.Annotation.Property.IRI), iriResource(a.Annotation.Value.IRI)}}
		}
		return []rdfTriple{{iriResource(a.Subject.IRI), iriResource(a.Annotation.Property.IRI), literalTerm(a.Annotation.Value.Literal)}}

	case SameIndividual:
		if len(a.Individuals) != 2 || !a.Individuals[0].Named || !a.Individuals[1].Named {
			return nil
		}
		return []rdfTriple{{iriResource(a.Individuals[0].IRI), rdf2go.NewResource(nsOWL + "sameAs"), iriResource(a.Individuals[1].IRI)}}

	case DifferentIndividuals:
		if len(a.Individuals) != 2 || !a.Individuals[0].Named || !a.Individuals[1].Named {
			return nil
		}
		return []rdfTriple{{iriResource(a.Individuals[0].IRI), rdf2go.NewResource(nsOWL + "differentFrom"), iriResource(a.Individuals[1].IRI)}}
	}
	return nil
}

func declarationOWLType(kind EntityKind) (string, bool) {
	switch kind {
	case EntityClass:
		return nsOWL + "Class", true
	case EntityObjectProperty:
		return nsOWL + "ObjectProperty", true
	case EntityDataProperty:
		return nsOWL + "DatatypeProperty", true
	case EntityAnnotationProperty:
		return nsOWL + "AnnotationProperty", true
	case EntityNamedIndividual:
		return nsOWL + "NamedIndividual", true
	case EntityDatatype:
		return nsRDFS + "Datatype", true
	}
	return "", false
}
