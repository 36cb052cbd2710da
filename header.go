package owlrdf

// extractHeader scans `simple` for (s, rdf:type, owl:Ontology) to set the
// ontology IRI, and (s, owl:versionIRI, v) with matching s to set the
// version IRI. Consumed triples are removed. If multiple ontology or
// version triples are present, the last one processed wins, per spec's
// open question (b) and RDF's set semantics (component C5, spec §4.5).
func (s *parseState) extractHeader() {
	var ontologyIRI *Term
	remaining := s.simple[:0:0]
	for _, t := range s.simple {
		if t.Predicate == termRDF(RDFType) && t.Object == termOWL(OWLOntology) {
			subj := t.Subject
			ontologyIRI = &subj
			continue
		}
		remaining = append(remaining, t)
	}
	s.simple = remaining

	if ontologyIRI != nil {
		if iriStr, ok := termIRIString(*ontologyIRI); ok {
			iri := s.build.IRI(iriStr)
			s.ont.ID.IRI = &iri
		}
	}

	remaining = s.simple[:0:0]
	for _, t := range s.simple {
		if t.Predicate == termOWL(OWLVersionIRI) && ontologyIRI != nil && t.Subject == *ontologyIRI {
			if iriStr, ok := termIRIString(t.Object); ok {
				iri := s.build.IRI(iriStr)
				s.ont.ID.VersionIRI = &iri
			}
			continue
		}
		remaining = append(remaining, t)
	}
	s.simple = remaining
}
