package owlrdf

// parseState holds the five working collections the reconstruction engine
// drains over the course of a parse (spec §3). It is created once per
// Parse call and owned exclusively by that call; nothing here is shared
// across parses or goroutines (spec §5).
type parseState struct {
	build IRIFactory

	simple []Triple
	bnode  map[BlankNodeID][]Triple

	bnodeSeq map[BlankNodeID][]Term

	classExpr map[BlankNodeID]ClassExpression
	dataRange map[BlankNodeID]DataRange
	objPropExpr map[BlankNodeID]ObjectPropertyExpression

	annMap map[TripleKey][]Annotation

	ont *Ontology
}

func newParseState(build IRIFactory, ont *Ontology) *parseState {
	return &parseState{
		build:       build,
		bnode:       make(map[BlankNodeID][]Triple),
		bnodeSeq:    make(map[BlankNodeID][]Term),
		classExpr:   make(map[BlankNodeID]ClassExpression),
		dataRange:   make(map[BlankNodeID]DataRange),
		objPropExpr: make(map[BlankNodeID]ObjectPropertyExpression),
		annMap:      make(map[TripleKey][]Annotation),
		ont:         ont,
	}
}

// residualCount sums every working collection still holding unconsumed
// entries, the non-emptiness the driver (C12) reports at the end of a
// parse (spec §3 invariant 4).
func (s *parseState) residualCount() int {
	n := len(s.simple)
	for _, trps := range s.bnode {
		n += len(trps)
	}
	n += len(s.bnodeSeq)
	n += len(s.classExpr)
	n += len(s.dataRange)
	n += len(s.objPropExpr)
	return n
}

// Residual is a single unconsumed entry surfaced for diagnostic inspection
// after a parse (spec §6: ParseError's Unrecognised variant, aggregated).
type Residual struct {
	Triple *Triple     // set when the residual is a simple or bnode triple
	Blank  BlankNodeID // set when the residual is keyed by blank node id
	Reason string
}

func (s *parseState) residuals() []Residual {
	var out []Residual
	for i := range s.simple {
		t := s.simple[i]
		out = append(out, Residual{Triple: &t, Reason: "unrecognised simple triple"})
	}
	for id, trps := range s.bnode {
		for i := range trps {
			t := trps[i]
			out = append(out, Residual{Triple: &t, Blank: id, Reason: "unrecognised blank node triple"})
		}
	}
	for id := range s.bnodeSeq {
		out = append(out, Residual{Blank: id, Reason: "unconsumed RDF list"})
	}
	for id := range s.classExpr {
		out = append(out, Residual{Blank: id, Reason: "unconsumed class expression"})
	}
	for id := range s.dataRange {
		out = append(out, Residual{Blank: id, Reason: "unconsumed data range"})
	}
	for id := range s.objPropExpr {
		out = append(out, Residual{Blank: id, Reason: "unconsumed object property expression"})
	}
	return out
}
