package owlrdf

import "sort"

// groupTriples partitions the input triples into the `simple` (IRI-subject)
// and `bnode` (blank-node-subject) working collections, then sorts each
// bnode bucket by the total Term order so later shape-matching stages are
// insensitive to the order triples arrived in (component C2, spec §4.2).
func (s *parseState) groupTriples(triples []Triple) {
	for _, t := range triples {
		switch t.Subject.Kind {
		case KindBNode:
			s.bnode[t.Subject.BNode] = append(s.bnode[t.Subject.BNode], t)
		default:
			// Only IRI (or classified OWL/RDF/RDFS token) subjects belong
			// in the teacher-shaped `simple` bag; OWL RDF never produces
			// a literal or variable subject.
			s.simple = append(s.simple, t)
		}
	}
	for id, trps := range s.bnode {
		sorted := make([]Triple, len(trps))
		copy(sorted, trps)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
		s.bnode[id] = sorted
	}
}

// bnodeTriplesWithPredicate returns the subset of trps whose predicate
// equals pred, picking out every triple of one field of a blank-node
// record. The shape-matching stages (C3-C9) currently use
// findTripleByPredicate, which returns only the first such triple.
func bnodeTriplesWithPredicate(trps []Triple, pred Term) []Triple {
	var out []Triple
	for _, t := range trps {
		if t.Predicate == pred {
			out = append(out, t)
		}
	}
	return out
}

// removeTriple removes the first triple equal to target from trps and
// returns the shortened slice.
func removeTriple(trps []Triple, target Triple) []Triple {
	for i, t := range trps {
		if t == target {
			return append(trps[:i:i], trps[i+1:]...)
		}
	}
	return trps
}
