package owlrdf

// reifyAxiomAnnotations detects the owl:Axiom reification pattern on a
// blank node:
//
//	(_, owl:annotatedSource, s)
//	(_, owl:annotatedProperty, p)
//	(_, owl:annotatedTarget, o)
//	(_, rdf:type, owl:Axiom)
//
// plus any number of additional (_, ap, av) annotation triples on the same
// blank node. It records ann_map[(s,p,o)] and re-emits (s,p,o) into the
// `simple` bucket so a later stage (C6, C10, C11) notices the annotations
// when it recognises the underlying axiom (component C4, spec §4.4).
//
// This must run before declarations (C6): a reified target only becomes an
// axiom-bearing triple once it is pushed back into `simple`.
func (s *parseState) reifyAxiomAnnotations() {
	for id, trps := range s.bnode {
		typeTrp := findTriple(trps, termRDF(RDFType), termOWL(OWLAxiom))
		if typeTrp == nil {
			continue
		}
		srcTrp := findTripleByPredicate(trps, termOWL(OWLAnnotatedSource))
		propTrp := findTripleByPredicate(trps, termOWL(OWLAnnotatedProperty))
		tgtTrp := findTripleByPredicate(trps, termOWL(OWLAnnotatedTarget))
		if srcTrp == nil || propTrp == nil || tgtTrp == nil {
			continue
		}
		target := Triple{Subject: srcTrp.Object, Predicate: propTrp.Object, Object: tgtTrp.Object}

		consumed := map[int]bool{}
		for i, t := range trps {
			if t == *typeTrp || t == *srcTrp || t == *propTrp || t == *tgtTrp {
				consumed[i] = true
			}
		}
		var anns []Annotation
		for i, t := range trps {
			if consumed[i] {
				continue
			}
			ap, ok := s.asAnnotationProperty(t.Predicate)
			if !ok {
				continue
			}
			av, ok := s.asAnnotationValue(t.Object)
			if !ok {
				continue
			}
			anns = append(anns, Annotation{Property: ap, Value: av})
		}

		key := target.Key()
		s.annMap[key] = append(s.annMap[key], anns...)
		s.simple = append(s.simple, target)
		delete(s.bnode, id)
	}
}

func findTriple(trps []Triple, pred, obj Term) *Triple {
	for i, t := range trps {
		if t.Predicate == pred && t.Object == obj {
			return &trps[i]
		}
	}
	return nil
}

func findTripleByPredicate(trps []Triple, pred Term) *Triple {
	for i, t := range trps {
		if t.Predicate == pred {
			return &trps[i]
		}
	}
	return nil
}

func (s *parseState) asAnnotationProperty(t Term) (AnnotationPropertyExpression, bool) {
	if iri, ok := termIRIString(t); ok {
		return AnnotationPropertyExpression{IRI: s.internedIRI(t, iri)}, true
	}
	return AnnotationPropertyExpression{}, false
}

// internedIRI recovers the already-interned IRI handle for a classified
// term (OWL/RDF/RDFS tokens carry their canonical string but not an IRI
// handle, since the term-classification step in term.go rewrites the IRI
// away). Builtin vocabulary terms are rare as annotation properties in
// practice; when one occurs, we mint a fresh handle for it from its
// canonical string through the parse's own factory (spec §5/§6: the
// factory is caller-owned, never a package-level singleton).
func (s *parseState) internedIRI(t Term, str string) IRI {
	if t.Kind == KindIRI {
		return t.IRI
	}
	return s.build.IRI(str)
}

func (s *parseState) asAnnotationValue(t Term) (AnnotationValue, bool) {
	switch t.Kind {
	case KindLiteral:
		return AnnotationValue{IsIRI: false, Literal: Literal{Lexical: t.Lexical, Datatype: t.Datatype, Lang: t.Lang}}, true
	default:
		if iri, ok := termIRIString(t); ok {
			return AnnotationValue{IsIRI: true, IRI: s.internedIRI(t, iri)}, true
		}
		return AnnotationValue{}, false
	}
}
