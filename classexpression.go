package owlrdf

import "strconv"

// buildClassExpressions rewrites blank-node trees into ClassExpression
// values: restrictions, boolean connectives, and enumerations (component
// C9, spec §4.9). It is the largest single stage and the only one whose
// rules consult the running declaration table (via lookupPropertyKind) to
// disambiguate object-vs-data restrictions; a rule whose property kind
// isn't known yet simply fails for this iteration and the triple stays in
// `bnode`; a later iteration may see it once a property declaration (or an
// intervening data-range/OPE build) has unblocked it. Iteration continues
// until class_expression stops growing.
func (s *parseState) buildClassExpressions() {
	for {
		before := len(s.classExpr)
		for id, trps := range s.bnode {
			if ce, ok := s.tryBuildClassExpression(trps); ok {
				s.classExpr[id] = ce
				delete(s.bnode, id)
			}
		}
		if len(s.classExpr) == before {
			break
		}
	}
}

func (s *parseState) tryBuildClassExpression(trps []Triple) (ClassExpression, bool) {
	if onPropTrp := findTripleByPredicate(trps, termOWL(OWLOnProperty)); onPropTrp != nil {
		if findTriple(trps, termRDF(RDFType), termOWL(OWLRestriction)) == nil {
			return nil, false
		}
		return s.tryBuildRestriction(trps, onPropTrp.Object)
	}

	if findTriple(trps, termRDF(RDFType), termOWL(OWLClass)) == nil {
		return nil, false
	}
	if seqTrp := findTripleByPredicate(trps, termOWL(OWLIntersectionOf)); seqTrp != nil && len(trps) == 2 {
		if operands, ok := s.resolveClassExpressionSeq(seqTrp.Object); ok {
			return ObjectIntersectionOf{Operands: operands}, true
		}
		return nil, false
	}
	if seqTrp := findTripleByPredicate(trps, termOWL(OWLUnionOf)); seqTrp != nil && len(trps) == 2 {
		if operands, ok := s.resolveClassExpressionSeq(seqTrp.Object); ok {
			return ObjectUnionOf{Operands: operands}, true
		}
		return nil, false
	}
	if compTrp := findTripleByPredicate(trps, termOWL(OWLComplementOf)); compTrp != nil && len(trps) == 2 {
		if ce, ok := s.resolveClassExpressionTerm(compTrp.Object); ok {
			return ObjectComplementOf{Operand: ce}, true
		}
		return nil, false
	}
	if seqTrp := findTripleByPredicate(trps, termOWL(OWLOneOf)); seqTrp != nil && len(trps) == 2 {
		if inds, ok := s.resolveIndividualSeq(seqTrp.Object); ok {
			return ObjectOneOf{Individuals: inds}, true
		}
		return nil, false
	}
	return nil, false
}

func (s *parseState) tryBuildRestriction(trps []Triple, propTerm Term) (ClassExpression, bool) {
	kind, ope, dpe, ok := s.resolvePropertyOnRestriction(propTerm)
	if !ok {
		return nil, false
	}

	if fillerTrp := findTripleByPredicate(trps, termOWL(OWLSomeValuesFrom)); fillerTrp != nil && len(trps) == 3 {
		return s.buildValuesFromRestriction(kind, ope, dpe, fillerTrp.Object, true)
	}
	if fillerTrp := findTripleByPredicate(trps, termOWL(OWLAllValuesFrom)); fillerTrp != nil && len(trps) == 3 {
		return s.buildValuesFromRestriction(kind, ope, dpe, fillerTrp.Object, false)
	}
	if valTrp := findTripleByPredicate(trps, termOWL(OWLHasValue)); valTrp != nil && len(trps) == 3 {
		if kind == PropertyObject {
			ind, ok := s.resolveIndividualTerm(valTrp.Object)
			if !ok {
				return nil, false
			}
			return ObjectHasValue{Property: ope, Value: ind}, true
		}
		if valTrp.Object.Kind != KindLiteral {
			return nil, false
		}
		return DataHasValue{Property: dpe, Value: literalFromTerm(valTrp.Object)}, true
	}
	if selfTrp := findTripleByPredicate(trps, termOWL(OWLHasSelf)); selfTrp != nil && len(trps) == 3 {
		if kind != PropertyObject {
			return nil, false
		}
		return ObjectHasSelf{Property: ope}, true
	}

	if cardTrp, cKind, ok := findCardinalityTriple(trps); ok {
		return s.buildCardinalityRestriction(trps, kind, ope, dpe, cardTrp, cKind)
	}
	return nil, false
}

// cardinalityPredicateKind tags which of the six cardinality predicates a
// restriction uses, bundling qualification with min/max/exact.
type cardinalityPredicateKind struct {
	ceKind    ObjectCardinalityKind
	qualified bool
}

func findCardinalityTriple(trps []Triple) (*Triple, cardinalityPredicateKind, bool) {
	table := []struct {
		pred Term
		kind cardinalityPredicateKind
	}{
		{termOWL(OWLMinQualifiedCardinality), cardinalityPredicateKind{CardinalityMin, true}},
		{termOWL(OWLMaxQualifiedCardinality), cardinalityPredicateKind{CardinalityMax, true}},
		{termOWL(OWLQualifiedCardinality), cardinalityPredicateKind{CardinalityExact, true}},
		{termOWL(OWLMinCardinality), cardinalityPredicateKind{CardinalityMin, false}},
		{termOWL(OWLMaxCardinality), cardinalityPredicateKind{CardinalityMax, false}},
		{termOWL(OWLCardinality), cardinalityPredicateKind{CardinalityExact, false}},
	}
	for _, e := range table {
		if t := findTripleByPredicate(trps, e.pred); t != nil {
			return t, e.kind, true
		}
	}
	return nil, cardinalityPredicateKind{}, false
}

func (s *parseState) buildCardinalityRestriction(trps []Triple, kind PropertyKind, ope ObjectPropertyExpression, dpe DataPropertyExpression, cardTrp *Triple, ck cardinalityPredicateKind) (ClassExpression, bool) {
	n, ok := parseIntLiteral(cardTrp.Object)
	if !ok {
		return nil, false
	}

	if !ck.qualified {
		if len(trps) != 3 {
			return nil, false
		}
		if kind == PropertyObject {
			return ObjectCardinality{Kind: ck.ceKind, Cardinality: n, Property: ope, Filler: nil}, true
		}
		return DataCardinality{Kind: ck.ceKind, Cardinality: n, Property: dpe, Filler: nil}, true
	}

	if len(trps) != 4 {
		return nil, false
	}
	if onClassTrp := findTripleByPredicate(trps, termOWL(OWLOnClass)); onClassTrp != nil {
		ce, ok := s.resolveClassExpressionTerm(onClassTrp.Object)
		if !ok {
			return nil, false
		}
		return ObjectCardinality{Kind: ck.ceKind, Cardinality: n, Property: ope, Filler: ce}, true
	}
	if onDrTrp := findTripleByPredicate(trps, termOWL(OWLOnDataRange)); onDrTrp != nil {
		dr, ok := s.resolveDataRangeTerm(onDrTrp.Object)
		if !ok {
			return nil, false
		}
		return DataCardinality{Kind: ck.ceKind, Cardinality: n, Property: dpe, Filler: dr}, true
	}
	return nil, false
}

func (s *parseState) buildValuesFromRestriction(kind PropertyKind, ope ObjectPropertyExpression, dpe DataPropertyExpression, filler Term, some bool) (ClassExpression, bool) {
	if kind == PropertyObject {
		ce, ok := s.resolveClassExpressionTerm(filler)
		if !ok {
			return nil, false
		}
		if some {
			return ObjectSomeValuesFrom{Property: ope, Filler: ce}, true
		}
		return ObjectAllValuesFrom{Property: ope, Filler: ce}, true
	}
	dr, ok := s.resolveDataRangeTerm(filler)
	if !ok {
		return nil, false
	}
	if some {
		return DataSomeValuesFrom{Property: dpe, Filler: dr}, true
	}
	return DataAllValuesFrom{Property: dpe, Filler: dr}, true
}

// resolvePropertyOnRestriction resolves the onProperty object into either
// an ObjectPropertyExpression or a DataPropertyExpression, consulting the
// find_property_kind oracle (the running declaration table) to decide
// which. A blank-node property term can only be an already-built object
// property expression (OWL 2 has no compound data properties), so it is
// always object-kind.
func (s *parseState) resolvePropertyOnRestriction(t Term) (PropertyKind, ObjectPropertyExpression, DataPropertyExpression, bool) {
	if t.Kind == KindBNode {
		if ope, ok := s.objPropExpr[t.BNode]; ok {
			return PropertyObject, ope, DataPropertyExpression{}, true
		}
		return PropertyUnknown, nil, DataPropertyExpression{}, false
	}
	iriStr, ok := termIRIString(t)
	if !ok {
		return PropertyUnknown, nil, DataPropertyExpression{}, false
	}
	iri := s.build.IRI(iriStr)
	kind, ok := s.lookupPropertyKind(iri)
	if !ok {
		return PropertyUnknown, nil, DataPropertyExpression{}, false
	}
	switch kind {
	case PropertyObject:
		return PropertyObject, ObjectProperty{IRI: iri}, DataPropertyExpression{}, true
	case PropertyData:
		return PropertyData, nil, DataPropertyExpression{IRI: iri}, true
	default:
		return PropertyUnknown, nil, DataPropertyExpression{}, false
	}
}

// lookupPropertyKind is the find_property_kind oracle (spec §9): it
// consults the declarations recognised so far by C6 (threaded through the
// Ontology under construction) to classify a named property IRI.
func (s *parseState) lookupPropertyKind(iri IRI) (PropertyKind, bool) {
	k, ok := s.ont.FindDeclarationKind(iri)
	if !ok {
		return PropertyUnknown, false
	}
	switch k {
	case EntityObjectProperty:
		return PropertyObject, true
	case EntityDataProperty:
		return PropertyData, true
	case EntityAnnotationProperty:
		return PropertyAnnotation, true
	default:
		return PropertyUnknown, false
	}
}

func (s *parseState) resolveClassExpressionTerm(t Term) (ClassExpression, bool) {
	ce, ok := s.peekClassExpressionTerm(t)
	if !ok {
		return nil, false
	}
	if t.Kind == KindBNode {
		delete(s.classExpr, t.BNode)
	}
	return ce, true
}

// peekClassExpressionTerm is resolveClassExpressionTerm without the
// consuming delete, so a sequence resolver can check every operand before
// committing to removing any of them from class_expr.
func (s *parseState) peekClassExpressionTerm(t Term) (ClassExpression, bool) {
	if iriStr, ok := termIRIString(t); ok {
		return Class{IRI: s.build.IRI(iriStr)}, true
	}
	if t.Kind == KindBNode {
		if ce, ok := s.classExpr[t.BNode]; ok {
			return ce, true
		}
	}
	return nil, false
}

// resolveClassExpressionSeq resolves every operand of a sequence before
// deleting any class_expr entry: if a later sibling in the same
// IntersectionOf/UnionOf isn't ready yet on this fixed-point pass, an
// earlier sibling's entry must not be consumed, or it would be lost for
// good once this call returns false (spec §3 invariant 2, order
// independence).
func (s *parseState) resolveClassExpressionSeq(head Term) ([]ClassExpression, bool) {
	if head.Kind != KindBNode {
		return nil, false
	}
	terms, ok := s.bnodeSeq[head.BNode]
	if !ok {
		return nil, false
	}
	out := make([]ClassExpression, 0, len(terms))
	for _, t := range terms {
		ce, ok := s.peekClassExpressionTerm(t)
		if !ok {
			return nil, false
		}
		out = append(out, ce)
	}
	for _, t := range terms {
		if t.Kind == KindBNode {
			delete(s.classExpr, t.BNode)
		}
	}
	delete(s.bnodeSeq, head.BNode)
	return out, true
}

func (s *parseState) resolveIndividualTerm(t Term) (Individual, bool) {
	if iriStr, ok := termIRIString(t); ok {
		return Individual{Named: true, IRI: s.build.IRI(iriStr)}, true
	}
	if t.Kind == KindBNode {
		return Individual{Named: false, Anon: t.BNode}, true
	}
	return Individual{}, false
}

func (s *parseState) resolveIndividualSeq(head Term) ([]Individual, bool) {
	if head.Kind != KindBNode {
		return nil, false
	}
	terms, ok := s.bnodeSeq[head.BNode]
	if !ok {
		return nil, false
	}
	out := make([]Individual, 0, len(terms))
	for _, t := range terms {
		ind, ok := s.resolveIndividualTerm(t)
		if !ok {
			return nil, false
		}
		out = append(out, ind)
	}
	delete(s.bnodeSeq, head.BNode)
	return out, true
}

func literalFromTerm(t Term) Literal {
	return Literal{Lexical: t.Lexical, Datatype: t.Datatype, Lang: t.Lang}
}

func parseIntLiteral(t Term) (int, bool) {
	if t.Kind != KindLiteral {
		return 0, false
	}
	n, err := strconv.Atoi(t.Lexical)
	if err != nil {
		return 0, false
	}
	return n, true
}
