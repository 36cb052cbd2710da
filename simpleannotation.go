package owlrdf

// recogniseSimpleAnnotations promotes every residual `(subject, p, value)`
// triple in `simple` into an AnnotationAssertion when `p` is (a) a
// built-in RDFS annotation predicate, (b) owl:versionInfo, or (c) an IRI
// already declared as an AnnotationProperty by C6 (component C11, spec
// §4.11). It runs before the data-range/object-property/class-expression/
// axiom stages so that annotation predicates never get mistaken for an
// axiom predicate further down the pipeline; anything it doesn't
// recognise is left untouched in `simple` for C10.
func (s *parseState) recogniseSimpleAnnotations() {
	remaining := s.simple[:0:0]
	for _, t := range s.simple {
		ap, ok := s.annotationPropertyForPredicate(t.Predicate)
		if !ok {
			remaining = append(remaining, t)
			continue
		}
		value, ok := s.asAnnotationValue(t.Object)
		if !ok {
			remaining = append(remaining, t)
			continue
		}
		subject, ok := s.annotationSubjectFromTerm(t.Subject)
		if !ok {
			remaining = append(remaining, t)
			continue
		}
		ax := AnnotationAssertion{Subject: subject, Annotation: Annotation{Property: ap, Value: value}}
		anns := s.annMap[t.Key()]
		delete(s.annMap, t.Key())
		s.ont.UpdateLogicallyEqualAxiom(AnnotatedAxiom{Axiom: ax, Annotations: anns})
	}
	s.simple = remaining
}

// annotationPropertyForPredicate decides whether a predicate term is an
// annotation predicate under rule (a), (b) or (c), returning the
// AnnotationPropertyExpression to record it under.
func (s *parseState) annotationPropertyForPredicate(p Term) (AnnotationPropertyExpression, bool) {
	if p.Kind == KindRDFS && rdfsAnnotationPredicates[p.RDFS] {
		return s.asAnnotationProperty(p)
	}
	if p == termOWL(OWLVersionInfo) {
		return s.asAnnotationProperty(p)
	}
	if iriStr, ok := termIRIString(p); ok {
		if s.ont.IsAnnotationProperty(s.build.IRI(iriStr)) {
			return s.asAnnotationProperty(p)
		}
	}
	return AnnotationPropertyExpression{}, false
}

func (s *parseState) annotationSubjectFromTerm(t Term) (AnnotationSubject, bool) {
	if iriStr, ok := termIRIString(t); ok {
		return AnnotationSubject{IsIRI: true, IRI: s.internedIRI(t, iriStr)}, true
	}
	if t.Kind == KindBNode {
		return AnnotationSubject{IsIRI: false, Anon: t.BNode}, true
	}
	return AnnotationSubject{}, false
}
