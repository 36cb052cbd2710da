package owlrdf

// stitchSequences reassembles RDF linked lists (rdf:first/rdf:rest/rdf:nil
// chains over blank nodes) into ordered element vectors keyed by the head
// blank node (component C3, spec §4.3). It runs a seed pass, then an
// extend pass iterated to a fixed point, then reverses every stitched
// sequence once so element order matches the source list order.
func (s *parseState) stitchSequences() {
	// Seed: a node whose two triples are exactly (_, first, v), (_, rest, nil).
	for id, trps := range s.bnode {
		if v, ok := matchListSeed(trps); ok {
			s.bnodeSeq[id] = []Term{v}
			delete(s.bnode, id)
		}
	}

	// Extend to a fixed point: a node whose two triples are
	// (_, first, v), (_, rest, n') where bnodeSeq[n'] already exists.
	for {
		progressed := false
		for id, trps := range s.bnode {
			v, next, ok := matchListExtend(trps)
			if !ok {
				continue
			}
			tail, ok := s.bnodeSeq[next]
			if !ok {
				continue
			}
			seq := make([]Term, 0, len(tail)+1)
			seq = append(seq, tail...)
			seq = append(seq, v)
			s.bnodeSeq[id] = seq
			delete(s.bnodeSeq, next)
			delete(s.bnode, id)
			progressed = true
		}
		if !progressed {
			break
		}
	}

	// The accumulation above prepends in reverse (each step appends the
	// newly-seen head element after the tail accumulated so far), so the
	// final vector is reversed once to recover source order.
	for id, seq := range s.bnodeSeq {
		s.bnodeSeq[id] = reverseTerms(seq)
	}
}

func matchListSeed(trps []Triple) (Term, bool) {
	if len(trps) != 2 {
		return Term{}, false
	}
	var first, rest *Triple
	for i := range trps {
		switch trps[i].Predicate {
		case termRDF(RDFFirst):
			first = &trps[i]
		case termRDF(RDFRest):
			rest = &trps[i]
		}
	}
	if first == nil || rest == nil {
		return Term{}, false
	}
	if rest.Object != termRDF(RDFNil) {
		return Term{}, false
	}
	return first.Object, true
}

func matchListExtend(trps []Triple) (value Term, next BlankNodeID, ok bool) {
	if len(trps) != 2 {
		return Term{}, "", false
	}
	var first, rest *Triple
	for i := range trps {
		switch trps[i].Predicate {
		case termRDF(RDFFirst):
			first = &trps[i]
		case termRDF(RDFRest):
			rest = &trps[i]
		}
	}
	if first == nil || rest == nil || rest.Object.Kind != KindBNode {
		return Term{}, "", false
	}
	return first.Object, rest.Object.BNode, true
}

func reverseTerms(in []Term) []Term {
	out := make([]Term, len(in))
	for i, t := range in {
		out[len(in)-1-i] = t
	}
	return out
}
