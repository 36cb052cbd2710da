package owlrdf

// recogniseDeclarations promotes every (s, rdf:type, K) triple in `simple`
// where K is one of owl:Class, owl:ObjectProperty, owl:DatatypeProperty,
// owl:AnnotationProperty, owl:NamedIndividual or rdfs:Datatype into a
// Declaration axiom for the corresponding entity kind, attaching any
// ann_map entry recorded for that triple by the reifier (C4). Unknown Ks
// are left in `simple` for a later stage (component C6, spec §4.6).
func (s *parseState) recogniseDeclarations() {
	remaining := s.simple[:0:0]
	for _, t := range s.simple {
		if t.Predicate != termRDF(RDFType) {
			remaining = append(remaining, t)
			continue
		}
		kind, ok := declarationKind(t.Object)
		if !ok {
			remaining = append(remaining, t)
			continue
		}
		iriStr, ok := termIRIString(t.Subject)
		if !ok {
			remaining = append(remaining, t)
			continue
		}
		iri := s.build.IRI(iriStr)
		ax := AnnotatedAxiom{
			Axiom:       Declaration{Kind: kind, IRI: iri},
			Annotations: s.annMap[t.Key()],
		}
		delete(s.annMap, t.Key())
		s.ont.UpdateLogicallyEqualAxiom(ax)
	}
	s.simple = remaining
}

func declarationKind(obj Term) (EntityKind, bool) {
	if obj.Kind == KindOWL {
		if k, ok := entityKindTypes[obj.OWL]; ok {
			return k, true
		}
	}
	if obj.Kind == KindRDFS && obj.RDFS == RDFSDatatype {
		return EntityDatatype, true
	}
	return EntityClass, false
}
