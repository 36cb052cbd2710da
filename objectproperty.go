package owlrdf

// buildObjectPropertyExpressions runs a single pass over `bnode` rewriting
// the owl:inverseOf shape into ObjectInverseOf expressions (component C8,
// spec §4.8). Unlike the data-range and class-expression builders this
// stage is not iterated to a fixed point: inverse object properties never
// nest (OWL 2 has no InverseOf-of-InverseOf in the structural spec), so
// one pass always suffices. Only the matched triple is removed; any other
// triples already present on the same blank node (e.g. annotations) are
// left in place for a later stage.
func (s *parseState) buildObjectPropertyExpressions() {
	for id, trps := range s.bnode {
		invTrp := findTripleByPredicate(trps, termOWL(OWLInverseOf))
		if invTrp == nil {
			continue
		}
		iriStr, ok := termIRIString(invTrp.Object)
		if !ok {
			continue
		}
		s.objPropExpr[id] = ObjectInverseOf{Inverse: ObjectProperty{IRI: s.build.IRI(iriStr)}}
		remaining := removeTriple(trps, *invTrp)
		if len(remaining) == 0 {
			delete(s.bnode, id)
		} else {
			s.bnode[id] = remaining
		}
	}
}
