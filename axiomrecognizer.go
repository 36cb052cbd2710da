package owlrdf

// recogniseAxioms is the last working-collection-consuming stage
// (component C10, spec §4.10). It consumes whatever is left of `simple`
// plus every remaining flattened `bnode` triple; by this point every
// other bnode shape (sequences, reified annotations, data ranges, object
// property expressions, class expressions) has already been built, so any
// triple still rooted at a blank node belongs to an axiom directly (e.g.
// the `owl:AllDisjointClasses`/`owl:NegativePropertyAssertion` shapes
// below) or is a dangling fragment that will surface as a residual.
//
// Multi-triple blank-node axiom shapes are recognised first, each
// consuming its whole blank node. What remains -- the bulk of the table --
// is dispatched by predicate over the combined simple+bnode triple list.
func (s *parseState) recogniseAxioms() {
	s.recogniseBlankNodeAxiomShapes()

	trps := append([]Triple{}, s.simple...)
	for _, bucket := range s.bnode {
		trps = append(trps, bucket...)
	}
	s.bnode = make(map[BlankNodeID][]Triple)

	remaining := trps[:0:0]
	for _, t := range trps {
		if ax, ok := s.tryRecogniseAxiom(t); ok {
			s.emitAxiom(ax, t)
			continue
		}
		remaining = append(remaining, t)
	}
	s.simple = remaining
}

func (s *parseState) emitAxiom(ax Axiom, t Triple) {
	anns := s.annMap[t.Key()]
	delete(s.annMap, t.Key())
	s.ont.UpdateLogicallyEqualAxiom(AnnotatedAxiom{Axiom: ax, Annotations: anns})
}

// recogniseBlankNodeAxiomShapes matches the owl:AllDisjointClasses,
// owl:AllDisjointProperties, owl:AllDifferent and
// owl:NegativePropertyAssertion reification shapes, each of which spans
// every triple on one blank node rather than dispatching off a single
// predicate.
func (s *parseState) recogniseBlankNodeAxiomShapes() {
	for id, trps := range s.bnode {
		if ax, key, ok := s.tryAllDisjointClasses(trps); ok {
			s.emitAxiom(ax, key)
			delete(s.bnode, id)
			continue
		}
		if ax, key, ok := s.tryAllDisjointProperties(trps); ok {
			s.emitAxiom(ax, key)
			delete(s.bnode, id)
			continue
		}
		if ax, key, ok := s.tryAllDifferent(trps); ok {
			s.emitAxiom(ax, key)
			delete(s.bnode, id)
			continue
		}
		if ax, key, ok := s.tryNegativePropertyAssertion(trps); ok {
			s.emitAxiom(ax, key)
			delete(s.bnode, id)
			continue
		}
	}
}

func (s *parseState) tryAllDisjointClasses(trps []Triple) (Axiom, Triple, bool) {
	typeTrp := findTriple(trps, termRDF(RDFType), termOWL(OWLAllDisjointClasses))
	if typeTrp == nil || len(trps) != 2 {
		return nil, Triple{}, false
	}
	membersTrp := findTripleByPredicate(trps, termOWL(OWLMembers))
	if membersTrp == nil {
		return nil, Triple{}, false
	}
	classes, ok := s.resolveClassExpressionSeq(membersTrp.Object)
	if !ok {
		return nil, Triple{}, false
	}
	return DisjointClasses{Classes: classes}, *membersTrp, true
}

func (s *parseState) tryAllDisjointProperties(trps []Triple) (Axiom, Triple, bool) {
	typeTrp := findTriple(trps, termRDF(RDFType), termOWL(OWLAllDisjointProperties))
	if typeTrp == nil || len(trps) != 2 {
		return nil, Triple{}, false
	}
	membersTrp := findTripleByPredicate(trps, termOWL(OWLMembers))
	if membersTrp == nil {
		return nil, Triple{}, false
	}
	terms, ok := s.resolvePropertySeqTerms(membersTrp.Object)
	if !ok || len(terms) == 0 {
		return nil, Triple{}, false
	}
	kind, _, _, ok := s.resolvePropertyOnRestriction(terms[0])
	if !ok {
		return nil, Triple{}, false
	}
	if kind == PropertyObject {
		opes := make([]ObjectPropertyExpression, 0, len(terms))
		for _, pt := range terms {
			ope, ok := s.resolveObjectPropertyExpressionTerm(pt)
			if !ok {
				return nil, Triple{}, false
			}
			opes = append(opes, ope)
		}
		return DisjointObjectProperties{Properties: opes}, *membersTrp, true
	}
	dpes := make([]DataPropertyExpression, 0, len(terms))
	for _, pt := range terms {
		dpe, ok := s.resolveDataPropertyExpressionTerm(pt)
		if !ok {
			return nil, Triple{}, false
		}
		dpes = append(dpes, dpe)
	}
	return DisjointDataProperties{Properties: dpes}, *membersTrp, true
}

func (s *parseState) tryAllDifferent(trps []Triple) (Axiom, Triple, bool) {
	typeTrp := findTriple(trps, termRDF(RDFType), termOWL(OWLAllDifferent))
	if typeTrp == nil || len(trps) != 2 {
		return nil, Triple{}, false
	}
	membersTrp := findTripleByPredicate(trps, termOWL(OWLDistinctMembers))
	if membersTrp == nil {
		membersTrp = findTripleByPredicate(trps, termOWL(OWLMembers))
	}
	if membersTrp == nil {
		return nil, Triple{}, false
	}
	inds, ok := s.resolveIndividualSeq(membersTrp.Object)
	if !ok {
		return nil, Triple{}, false
	}
	return DifferentIndividuals{Individuals: inds}, *membersTrp, true
}

func (s *parseState) tryNegativePropertyAssertion(trps []Triple) (Axiom, Triple, bool) {
	typeTrp := findTriple(trps, termRDF(RDFType), termOWL(OWLNegativePropertyAssertion))
	if typeTrp == nil {
		return nil, Triple{}, false
	}
	srcTrp := findTripleByPredicate(trps, termOWL(OWLSourceIndividual))
	propTrp := findTripleByPredicate(trps, termOWL(OWLAssertionProperty))
	if srcTrp == nil || propTrp == nil {
		return nil, Triple{}, false
	}
	subject, ok := s.resolveIndividualTerm(srcTrp.Object)
	if !ok {
		return nil, Triple{}, false
	}

	if tgtTrp := findTripleByPredicate(trps, termOWL(OWLTargetIndividual)); tgtTrp != nil && len(trps) == 4 {
		ope, ok := s.resolveObjectPropertyExpressionTerm(propTrp.Object)
		if !ok {
			return nil, Triple{}, false
		}
		object, ok := s.resolveIndividualTerm(tgtTrp.Object)
		if !ok {
			return nil, Triple{}, false
		}
		return NegativeObjectPropertyAssertion{Property: ope, Subject: subject, Object: object}, *typeTrp, true
	}
	if tgtTrp := findTripleByPredicate(trps, termOWL(OWLTargetValue)); tgtTrp != nil && len(trps) == 4 {
		if tgtTrp.Object.Kind != KindLiteral {
			return nil, Triple{}, false
		}
		dpe, ok := s.resolveDataPropertyExpressionTerm(propTrp.Object)
		if !ok {
			return nil, Triple{}, false
		}
		return NegativeDataPropertyAssertion{Property: dpe, Subject: subject, Value: literalFromTerm(tgtTrp.Object)}, *typeTrp, true
	}
	return nil, Triple{}, false
}

// tryRecogniseAxiom dispatches a single triple against the per-predicate
// axiom table (spec §4.10). Declarations, header triples and annotation
// assertions have already been stripped out by earlier stages, so every
// predicate seen here is either a built-in OWL/RDFS axiom predicate or an
// arbitrary, previously-declared object/data property used in an
// assertion.
func (s *parseState) tryRecogniseAxiom(t Triple) (Axiom, bool) {
	switch t.Predicate {
	case termRDFS(RDFSSubClassOf):
		return s.recogniseSubClassOf(t)
	case termOWL(OWLEquivalentClass):
		return s.recogniseEquivalentClassOrDatatype(t)
	case termOWL(OWLDisjointWith):
		return s.recogniseDisjointWith(t)
	case termOWL(OWLEquivalentProperty):
		return s.recogniseEquivalentOrDisjointProperty(t, true)
	case termOWL(OWLPropertyDisjointWith):
		return s.recogniseEquivalentOrDisjointProperty(t, false)
	case termOWL(OWLDisjointUnionOf):
		return s.recogniseDisjointUnion(t)
	case termOWL(OWLHasKey):
		return s.recogniseHasKey(t)
	case termOWL(OWLInverseOf):
		return s.recogniseInverseObjectProperties(t)
	case termOWL(OWLPropertyChainAxiom):
		return s.recognisePropertyChainAxiom(t)
	case termRDFS(RDFSSubPropertyOf):
		return s.recogniseSubPropertyOf(t)
	case termRDFS(RDFSDomain):
		return s.recogniseDomain(t)
	case termRDFS(RDFSRange):
		return s.recogniseRange(t)
	case termOWL(OWLSameAs):
		return s.recogniseSameAs(t)
	case termOWL(OWLDifferentFrom):
		return s.recogniseDifferentFrom(t)
	case termRDF(RDFType):
		return s.recogniseTypeAxiom(t)
	}
	return s.recognisePropertyAssertion(t)
}

func (s *parseState) recogniseSubClassOf(t Triple) (Axiom, bool) {
	sub, ok := s.resolveClassExpressionTerm(t.Subject)
	if !ok {
		return nil, false
	}
	super, ok := s.resolveClassExpressionTerm(t.Object)
	if !ok {
		return nil, false
	}
	return SubClassOf{Sub: sub, Super: super}, true
}

func (s *parseState) recogniseEquivalentClassOrDatatype(t Triple) (Axiom, bool) {
	if iriStr, ok := termIRIString(t.Subject); ok {
		iri := s.build.IRI(iriStr)
		if kind, ok := s.ont.FindDeclarationKind(iri); ok && kind == EntityDatatype {
			dr, ok := s.resolveDataRangeTerm(t.Object)
			if !ok {
				return nil, false
			}
			return DatatypeDefinition{Datatype: iri, Range: dr}, true
		}
	}
	sub, ok := s.resolveClassExpressionTerm(t.Subject)
	if !ok {
		return nil, false
	}
	obj, ok := s.resolveClassExpressionTerm(t.Object)
	if !ok {
		return nil, false
	}
	return EquivalentClasses{Classes: []ClassExpression{sub, obj}}, true
}

func (s *parseState) recogniseDisjointWith(t Triple) (Axiom, bool) {
	sub, ok := s.resolveClassExpressionTerm(t.Subject)
	if !ok {
		return nil, false
	}
	obj, ok := s.resolveClassExpressionTerm(t.Object)
	if !ok {
		return nil, false
	}
	return DisjointClasses{Classes: []ClassExpression{sub, obj}}, true
}

// recogniseEquivalentOrDisjointProperty handles owl:equivalentProperty and
// owl:propertyDisjointWith, dispatching the object-vs-data variant on the
// subject's declared property kind the same way recogniseSubPropertyOf
// does for rdfs:subPropertyOf.
func (s *parseState) recogniseEquivalentOrDisjointProperty(t Triple, equivalent bool) (Axiom, bool) {
	kind, ok := s.propertyKindOfTerm(t.Subject)
	if !ok {
		return nil, false
	}
	switch kind {
	case PropertyObject:
		first, ok := s.resolveObjectPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		second, ok := s.resolveObjectPropertyExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		if equivalent {
			return EquivalentObjectProperties{Properties: []ObjectPropertyExpression{first, second}}, true
		}
		return DisjointObjectProperties{Properties: []ObjectPropertyExpression{first, second}}, true
	case PropertyData:
		first, ok := s.resolveDataPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		second, ok := s.resolveDataPropertyExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		if equivalent {
			return EquivalentDataProperties{Properties: []DataPropertyExpression{first, second}}, true
		}
		return DisjointDataProperties{Properties: []DataPropertyExpression{first, second}}, true
	}
	return nil, false
}

func (s *parseState) recogniseDisjointUnion(t Triple) (Axiom, bool) {
	iriStr, ok := termIRIString(t.Subject)
	if !ok {
		return nil, false
	}
	disjoint, ok := s.resolveClassExpressionSeq(t.Object)
	if !ok {
		return nil, false
	}
	return DisjointUnion{Class: s.build.IRI(iriStr), Disjoint: disjoint}, true
}

func (s *parseState) recogniseHasKey(t Triple) (Axiom, bool) {
	class, ok := s.resolveClassExpressionTerm(t.Subject)
	if !ok {
		return nil, false
	}
	terms, ok := s.resolvePropertySeqTerms(t.Object)
	if !ok {
		return nil, false
	}
	var opes []ObjectPropertyExpression
	var dpes []DataPropertyExpression
	for _, pt := range terms {
		kind, ope, dpe, ok := s.resolvePropertyOnRestriction(pt)
		if !ok {
			return nil, false
		}
		if kind == PropertyObject {
			opes = append(opes, ope)
		} else {
			dpes = append(dpes, dpe)
		}
	}
	return HasKey{Class: class, ObjectProperties: opes, DataProperties: dpes}, true
}

func (s *parseState) recogniseInverseObjectProperties(t Triple) (Axiom, bool) {
	first, ok := s.resolveObjectPropertyExpressionTerm(t.Subject)
	if !ok {
		return nil, false
	}
	second, ok := s.resolveObjectPropertyExpressionTerm(t.Object)
	if !ok {
		return nil, false
	}
	return InverseObjectProperties{First: first, Second: second}, true
}

func (s *parseState) recognisePropertyChainAxiom(t Triple) (Axiom, bool) {
	super, ok := s.resolveObjectPropertyExpressionTerm(t.Subject)
	if !ok {
		return nil, false
	}
	chain, ok := s.resolveObjectPropertyExpressionSeq(t.Object)
	if !ok {
		return nil, false
	}
	return SubObjectPropertyOf{Chain: chain, Super: super}, true
}

func (s *parseState) recogniseSubPropertyOf(t Triple) (Axiom, bool) {
	kind, ok := s.propertyKindOfTerm(t.Subject)
	if !ok {
		return nil, false
	}
	switch kind {
	case PropertyObject:
		sub, ok := s.resolveObjectPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		super, ok := s.resolveObjectPropertyExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		return SubObjectPropertyOf{Sub: sub, Super: super}, true
	case PropertyData:
		sub, ok := s.resolveDataPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		super, ok := s.resolveDataPropertyExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		return SubDataPropertyOf{Sub: sub, Super: super}, true
	case PropertyAnnotation:
		sub, ok := s.resolveAnnotationPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		super, ok := s.resolveAnnotationPropertyExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		return SubAnnotationPropertyOf{Sub: sub, Super: super}, true
	}
	return nil, false
}

func (s *parseState) recogniseDomain(t Triple) (Axiom, bool) {
	kind, ok := s.propertyKindOfTerm(t.Subject)
	if !ok {
		return nil, false
	}
	switch kind {
	case PropertyObject:
		ope, ok := s.resolveObjectPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		ce, ok := s.resolveClassExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		return ObjectPropertyDomain{Property: ope, Domain: ce}, true
	case PropertyData:
		dpe, ok := s.resolveDataPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		ce, ok := s.resolveClassExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		return DataPropertyDomain{Property: dpe, Domain: ce}, true
	case PropertyAnnotation:
		ape, ok := s.resolveAnnotationPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		iriStr, ok := termIRIString(t.Object)
		if !ok {
			return nil, false
		}
		return AnnotationPropertyDomain{Property: ape, Domain: s.build.IRI(iriStr)}, true
	}
	return nil, false
}

func (s *parseState) recogniseRange(t Triple) (Axiom, bool) {
	kind, ok := s.propertyKindOfTerm(t.Subject)
	if !ok {
		return nil, false
	}
	switch kind {
	case PropertyObject:
		ope, ok := s.resolveObjectPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		ce, ok := s.resolveClassExpressionTerm(t.Object)
		if !ok {
			return nil, false
		}
		return ObjectPropertyRange{Property: ope, Range: ce}, true
	case PropertyData:
		dpe, ok := s.resolveDataPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		dr, ok := s.resolveDataRangeTerm(t.Object)
		if !ok {
			return nil, false
		}
		return DataPropertyRange{Property: dpe, Range: dr}, true
	case PropertyAnnotation:
		ape, ok := s.resolveAnnotationPropertyExpressionTerm(t.Subject)
		if !ok {
			return nil, false
		}
		iriStr, ok := termIRIString(t.Object)
		if !ok {
			return nil, false
		}
		return AnnotationPropertyRange{Property: ape, Range: s.build.IRI(iriStr)}, true
	}
	return nil, false
}

func (s *parseState) recogniseSameAs(t Triple) (Axiom, bool) {
	subj, ok := s.resolveIndividualTerm(t.Subject)
	if !ok {
		return nil, false
	}
	obj, ok := s.resolveIndividualTerm(t.Object)
	if !ok {
		return nil, false
	}
	return SameIndividual{Individuals: []Individual{subj, obj}}, true
}

func (s *parseState) recogniseDifferentFrom(t Triple) (Axiom, bool) {
	subj, ok := s.resolveIndividualTerm(t.Subject)
	if !ok {
		return nil, false
	}
	obj, ok := s.resolveIndividualTerm(t.Object)
	if !ok {
		return nil, false
	}
	return DifferentIndividuals{Individuals: []Individual{subj, obj}}, true
}

// characteristicAxiom builds the object-property-characteristic axiom for
// a given owl:<Characteristic>Property rdf:type object, or reports false
// for a type object this recogniser doesn't own (handed back to
// recogniseTypeAxiom's ClassAssertion fallback).
func characteristicAxiom(tok OWLTerm, ope ObjectPropertyExpression) (Axiom, bool) {
	switch tok {
	case OWLFunctionalProperty:
		return FunctionalObjectProperty{Property: ope}, true
	case OWLInverseFunctionalProperty:
		return InverseFunctionalObjectProperty{Property: ope}, true
	case OWLTransitiveProperty:
		return TransitiveObjectProperty{Property: ope}, true
	case OWLSymmetricProperty:
		return SymmetricObjectProperty{Property: ope}, true
	case OWLAsymmetricProperty:
		return AsymmetricObjectProperty{Property: ope}, true
	case OWLReflexiveProperty:
		return ReflexiveObjectProperty{Property: ope}, true
	case OWLIrreflexiveProperty:
		return IrreflexiveObjectProperty{Property: ope}, true
	}
	return nil, false
}

func (s *parseState) recogniseTypeAxiom(t Triple) (Axiom, bool) {
	if t.Object.Kind == KindOWL {
		if t.Object.OWL == OWLFunctionalProperty {
			// FunctionalProperty is the one characteristic shared by object
			// and data properties; dispatch on the declared kind.
			if kind, ok := s.propertyKindOfTerm(t.Subject); ok && kind == PropertyData {
				dpe, ok := s.resolveDataPropertyExpressionTerm(t.Subject)
				if !ok {
					return nil, false
				}
				return FunctionalDataProperty{Property: dpe}, true
			}
		}
		if ope, ok := s.resolveObjectPropertyExpressionTerm(t.Subject); ok {
			if ax, ok := characteristicAxiom(t.Object.OWL, ope); ok {
				return ax, true
			}
		}
	}

	ce, ok := s.resolveClassExpressionTerm(t.Object)
	if !ok {
		return nil, false
	}
	ind, ok := s.resolveIndividualTerm(t.Subject)
	if !ok {
		return nil, false
	}
	return ClassAssertion{Class: ce, Individual: ind}, true
}

func (s *parseState) recognisePropertyAssertion(t Triple) (Axiom, bool) {
	kind, ok := s.propertyKindOfTerm(t.Predicate)
	if !ok {
		return nil, false
	}
	subj, ok := s.resolveIndividualTerm(t.Subject)
	if !ok {
		return nil, false
	}
	if kind == PropertyObject {
		ope, ok := s.resolveObjectPropertyExpressionTerm(t.Predicate)
		if !ok {
			return nil, false
		}
		obj, ok := s.resolveIndividualTerm(t.Object)
		if !ok {
			return nil, false
		}
		return ObjectPropertyAssertion{Property: ope, Subject: subj, Object: obj}, true
	}
	if kind == PropertyData {
		if t.Object.Kind != KindLiteral {
			return nil, false
		}
		dpe, ok := s.resolveDataPropertyExpressionTerm(t.Predicate)
		if !ok {
			return nil, false
		}
		return DataPropertyAssertion{Property: dpe, Subject: subj, Value: literalFromTerm(t.Object)}, true
	}
	return nil, false
}

// --- shared term-resolution helpers used only by the axiom recogniser ---

func (s *parseState) propertyKindOfTerm(t Term) (PropertyKind, bool) {
	iriStr, ok := termIRIString(t)
	if !ok {
		return PropertyUnknown, false
	}
	return s.lookupPropertyKind(s.build.IRI(iriStr))
}

// resolveObjectPropertyExpressionTerm resolves a single Term into an
// ObjectPropertyExpression: a bare IRI lifts to a named ObjectProperty, a
// blank node is looked up in (and removed from) obj_prop_expr -- each
// sub-expression has one parent, per spec's single-parent invariant (§9).
func (s *parseState) resolveObjectPropertyExpressionTerm(t Term) (ObjectPropertyExpression, bool) {
	ope, ok := s.peekObjectPropertyExpressionTerm(t)
	if !ok {
		return nil, false
	}
	if t.Kind == KindBNode {
		delete(s.objPropExpr, t.BNode)
	}
	return ope, true
}

// peekObjectPropertyExpressionTerm is resolveObjectPropertyExpressionTerm
// without the consuming delete, so a sequence resolver can check every
// operand before committing to removing any of them from obj_prop_expr.
func (s *parseState) peekObjectPropertyExpressionTerm(t Term) (ObjectPropertyExpression, bool) {
	if iriStr, ok := termIRIString(t); ok {
		return ObjectProperty{IRI: s.build.IRI(iriStr)}, true
	}
	if t.Kind == KindBNode {
		if ope, ok := s.objPropExpr[t.BNode]; ok {
			return ope, true
		}
	}
	return nil, false
}

func (s *parseState) resolveDataPropertyExpressionTerm(t Term) (DataPropertyExpression, bool) {
	iriStr, ok := termIRIString(t)
	if !ok {
		return DataPropertyExpression{}, false
	}
	return DataPropertyExpression{IRI: s.build.IRI(iriStr)}, true
}

func (s *parseState) resolveAnnotationPropertyExpressionTerm(t Term) (AnnotationPropertyExpression, bool) {
	iriStr, ok := termIRIString(t)
	if !ok {
		return AnnotationPropertyExpression{}, false
	}
	return AnnotationPropertyExpression{IRI: s.build.IRI(iriStr)}, true
}

// resolveObjectPropertyExpressionSeq resolves every operand before deleting
// any obj_prop_expr entry: if a later sibling in the same chain isn't ready
// yet on this fixed-point pass, an earlier sibling's entry must not be
// consumed, or it would be lost for good once this call returns false
// (spec §3 invariant 2, order independence).
func (s *parseState) resolveObjectPropertyExpressionSeq(head Term) ([]ObjectPropertyExpression, bool) {
	terms, ok := s.resolvePropertySeqTerms(head)
	if !ok {
		return nil, false
	}
	out := make([]ObjectPropertyExpression, 0, len(terms))
	for _, t := range terms {
		ope, ok := s.peekObjectPropertyExpressionTerm(t)
		if !ok {
			return nil, false
		}
		out = append(out, ope)
	}
	for _, t := range terms {
		if t.Kind == KindBNode {
			delete(s.objPropExpr, t.BNode)
		}
	}
	return out, true
}

// resolvePropertySeqTerms returns the raw sequence terms backing an
// owl:members/owl:hasKey list, without yet deciding object-vs-data. The
// sequence is consumed (deleted from bnode_seq) on success.
func (s *parseState) resolvePropertySeqTerms(head Term) ([]Term, bool) {
	if head.Kind != KindBNode {
		return nil, false
	}
	terms, ok := s.bnodeSeq[head.BNode]
	if !ok {
		return nil, false
	}
	delete(s.bnodeSeq, head.BNode)
	return terms, true
}
