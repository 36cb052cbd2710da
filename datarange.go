package owlrdf

// buildDataRanges rewrites blank-node trees into DataRange expressions
// (intersection, union, complement, one-of), iterating to a fixed point
// because nested data ranges are themselves built out of data-range
// sequences whose elements may only resolve on a later iteration
// (component C7, spec §4.7). It must run before class-expression building
// (C9): some cardinality restrictions carry a data range argument.
func (s *parseState) buildDataRanges() {
	for {
		before := len(s.dataRange)
		for id, trps := range s.bnode {
			if dr, ok := s.tryBuildDataRange(id, trps); ok {
				s.dataRange[id] = dr
				delete(s.bnode, id)
			}
		}
		if len(s.dataRange) == before {
			break
		}
	}
}

func (s *parseState) tryBuildDataRange(id BlankNodeID, trps []Triple) (DataRange, bool) {
	if findTriple(trps, termRDF(RDFType), termRDFS(RDFSDatatype)) == nil {
		return nil, false
	}

	if seqTrp := findTripleByPredicate(trps, termOWL(OWLIntersectionOf)); seqTrp != nil && len(trps) == 2 {
		if operands, ok := s.resolveDataRangeSeq(seqTrp.Object); ok {
			return DataIntersectionOf{Operands: operands}, true
		}
		return nil, false
	}
	if seqTrp := findTripleByPredicate(trps, termOWL(OWLUnionOf)); seqTrp != nil && len(trps) == 2 {
		if operands, ok := s.resolveDataRangeSeq(seqTrp.Object); ok {
			return DataUnionOf{Operands: operands}, true
		}
		return nil, false
	}
	if compTrp := findTripleByPredicate(trps, termOWL(OWLDatatypeComplementOf)); compTrp != nil && len(trps) == 2 {
		if dr, ok := s.resolveDataRangeTerm(compTrp.Object); ok {
			return DataComplementOf{Operand: dr}, true
		}
		return nil, false
	}
	if seqTrp := findTripleByPredicate(trps, termOWL(OWLOneOf)); seqTrp != nil && len(trps) == 2 {
		if lits, ok := s.resolveLiteralSeq(seqTrp.Object); ok {
			return DataOneOf{Literals: lits}, true
		}
		return nil, false
	}
	return nil, false
}

// resolveDataRangeTerm resolves a single Term into a DataRange: a bare IRI
// lifts to a named Datatype, a blank node is looked up in (and removed
// from) data_range -- each sub-expression has one parent, per spec's
// single-parent invariant (§9).
func (s *parseState) resolveDataRangeTerm(t Term) (DataRange, bool) {
	dr, ok := s.peekDataRangeTerm(t)
	if !ok {
		return nil, false
	}
	if t.Kind == KindBNode {
		delete(s.dataRange, t.BNode)
	}
	return dr, true
}

// peekDataRangeTerm is resolveDataRangeTerm without the consuming delete,
// so a sequence resolver can check every operand before committing to
// removing any of them from data_range.
func (s *parseState) peekDataRangeTerm(t Term) (DataRange, bool) {
	if iriStr, ok := termIRIString(t); ok {
		return Datatype{IRI: s.build.IRI(iriStr)}, true
	}
	if t.Kind == KindBNode {
		if dr, ok := s.dataRange[t.BNode]; ok {
			return dr, true
		}
	}
	return nil, false
}

// resolveDataRangeSeq resolves every operand before deleting any
// data_range entry: if a later sibling in the same
// IntersectionOf/UnionOf isn't ready yet on this fixed-point pass, an
// earlier sibling's entry must not be consumed, or it would be lost for
// good once this call returns false (spec §3 invariant 2, order
// independence).
func (s *parseState) resolveDataRangeSeq(head Term) ([]DataRange, bool) {
	if head.Kind != KindBNode {
		return nil, false
	}
	terms, ok := s.bnodeSeq[head.BNode]
	if !ok {
		return nil, false
	}
	out := make([]DataRange, 0, len(terms))
	for _, t := range terms {
		dr, ok := s.peekDataRangeTerm(t)
		if !ok {
			return nil, false
		}
		out = append(out, dr)
	}
	for _, t := range terms {
		if t.Kind == KindBNode {
			delete(s.dataRange, t.BNode)
		}
	}
	delete(s.bnodeSeq, head.BNode)
	return out, true
}

func (s *parseState) resolveLiteralSeq(head Term) ([]Literal, bool) {
	if head.Kind != KindBNode {
		return nil, false
	}
	terms, ok := s.bnodeSeq[head.BNode]
	if !ok {
		return nil, false
	}
	out := make([]Literal, 0, len(terms))
	for _, t := range terms {
		if t.Kind != KindLiteral {
			return nil, false
		}
		out = append(out, Literal{Lexical: t.Lexical, Datatype: t.Datatype, Lang: t.Lang})
	}
	delete(s.bnodeSeq, head.BNode)
	return out, true
}
