package owlrdf

// This file implements the closed built-in vocabularies of OWL, RDF and
// RDFS terms (component C1 of the reconstruction engine) and the static
// bidirectional mapping between their canonical IRIs and the enum tokens
// used throughout the rest of the package. Collapsing the known vocabulary
// into small enums lets every later stage match on a closed set instead of
// comparing IRI strings.

// OWLTerm is a built-in OWL 2 vocabulary token.
type OWLTerm int

// RDFTerm is a built-in RDF vocabulary token.
type RDFTerm int

// RDFSTerm is a built-in RDFS vocabulary token.
type RDFSTerm int

const (
	OWLNothing OWLTerm = iota
	OWLThing
	OWLOntology
	OWLVersionIRI
	OWLImports
	OWLClass
	OWLObjectProperty
	OWLDatatypeProperty
	OWLAnnotationProperty
	OWLNamedIndividual
	OWLAxiom
	OWLAnnotatedSource
	OWLAnnotatedProperty
	OWLAnnotatedTarget
	OWLNegativePropertyAssertion
	OWLSourceIndividual
	OWLAssertionProperty
	OWLTargetIndividual
	OWLTargetValue
	OWLVersionInfo
	OWLEquivalentClass
	OWLEquivalentProperty
	OWLDisjointWith
	OWLPropertyDisjointWith
	OWLDisjointUnionOf
	OWLAllDisjointClasses
	OWLAllDisjointProperties
	OWLAllDifferent
	OWLDistinctMembers
	OWLMembers
	OWLIntersectionOf
	OWLUnionOf
	OWLComplementOf
	OWLDatatypeComplementOf
	OWLOneOf
	OWLRestriction
	OWLOnProperty
	OWLOnClass
	OWLOnDataRange
	OWLSomeValuesFrom
	OWLAllValuesFrom
	OWLHasValue
	OWLHasSelf
	OWLHasKey
	OWLMinCardinality
	OWLMaxCardinality
	OWLCardinality
	OWLMinQualifiedCardinality
	OWLMaxQualifiedCardinality
	OWLQualifiedCardinality
	OWLInverseOf
	OWLFunctionalProperty
	OWLInverseFunctionalProperty
	OWLTransitiveProperty
	OWLSymmetricProperty
	OWLAsymmetricProperty
	OWLReflexiveProperty
	OWLIrreflexiveProperty
	OWLPropertyChainAxiom
	OWLSameAs
	OWLDifferentFrom
	OWLDatatype
)

const (
	RDFType RDFTerm = iota
	RDFFirst
	RDFRest
	RDFNil
	RDFLangString
	RDFPlainLiteral
)

const (
	RDFSSubClassOf RDFSTerm = iota
	RDFSSubPropertyOf
	RDFSDomain
	RDFSRange
	RDFSComment
	RDFSLabel
	RDFSDatatype
	RDFSSeeAlso
	RDFSIsDefinedBy
)

const (
	nsOWL  = "http://www.w3.org/2002/07/owl#"
	nsRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsRDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

var owlIRIs = map[OWLTerm]string{
	OWLNothing:                   nsOWL + "Nothing",
	OWLThing:                     nsOWL + "Thing",
	OWLOntology:                  nsOWL + "Ontology",
	OWLVersionIRI:                nsOWL + "versionIRI",
	OWLImports:                   nsOWL + "imports",
	OWLClass:                     nsOWL + "Class",
	OWLObjectProperty:            nsOWL + "ObjectProperty",
	OWLDatatypeProperty:          nsOWL + "DatatypeProperty",
	OWLAnnotationProperty:        nsOWL + "AnnotationProperty",
	OWLNamedIndividual:           nsOWL + "NamedIndividual",
	OWLAxiom:                     nsOWL + "Axiom",
	OWLAnnotatedSource:           nsOWL + "annotatedSource",
	OWLAnnotatedProperty:         nsOWL + "annotatedProperty",
	OWLAnnotatedTarget:           nsOWL + "annotatedTarget",
	OWLNegativePropertyAssertion: nsOWL + "NegativePropertyAssertion",
	OWLSourceIndividual:          nsOWL + "sourceIndividual",
	OWLAssertionProperty:         nsOWL + "assertionProperty",
	OWLTargetIndividual:          nsOWL + "targetIndividual",
	OWLTargetValue:               nsOWL + "targetValue",
	OWLVersionInfo:               nsOWL + "versionInfo",
	OWLEquivalentClass:           nsOWL + "equivalentClass",
	OWLEquivalentProperty:        nsOWL + "equivalentProperty",
	OWLDisjointWith:              nsOWL + "disjointWith",
	OWLPropertyDisjointWith:      nsOWL + "propertyDisjointWith",
	OWLDisjointUnionOf:           nsOWL + "disjointUnionOf",
	OWLAllDisjointClasses:        nsOWL + "AllDisjointClasses",
	OWLAllDisjointProperties:     nsOWL + "AllDisjointProperties",
	OWLAllDifferent:              nsOWL + "AllDifferent",
	OWLDistinctMembers:           nsOWL + "distinctMembers",
	OWLMembers:                   nsOWL + "members",
	OWLIntersectionOf:            nsOWL + "intersectionOf",
	OWLUnionOf:                   nsOWL + "unionOf",
	OWLComplementOf:              nsOWL + "complementOf",
	OWLDatatypeComplementOf:      nsOWL + "datatypeComplementOf",
	OWLOneOf:                     nsOWL + "oneOf",
	OWLRestriction:               nsOWL + "Restriction",
	OWLOnProperty:                nsOWL + "onProperty",
	OWLOnClass:                   nsOWL + "onClass",
	OWLOnDataRange:               nsOWL + "onDataRange",
	OWLSomeValuesFrom:            nsOWL + "someValuesFrom",
	OWLAllValuesFrom:             nsOWL + "allValuesFrom",
	OWLHasValue:                  nsOWL + "hasValue",
	OWLHasSelf:                   nsOWL + "hasSelf",
	OWLHasKey:                    nsOWL + "hasKey",
	OWLMinCardinality:            nsOWL + "minCardinality",
	OWLMaxCardinality:            nsOWL + "maxCardinality",
	OWLCardinality:               nsOWL + "cardinality",
	OWLMinQualifiedCardinality:   nsOWL + "minQualifiedCardinality",
	OWLMaxQualifiedCardinality:   nsOWL + "maxQualifiedCardinality",
	OWLQualifiedCardinality:      nsOWL + "qualifiedCardinality",
	OWLInverseOf:                 nsOWL + "inverseOf",
	OWLFunctionalProperty:        nsOWL + "FunctionalProperty",
	OWLInverseFunctionalProperty: nsOWL + "InverseFunctionalProperty",
	OWLTransitiveProperty:        nsOWL + "TransitiveProperty",
	OWLSymmetricProperty:         nsOWL + "SymmetricProperty",
	OWLAsymmetricProperty:        nsOWL + "AsymmetricProperty",
	OWLReflexiveProperty:         nsOWL + "ReflexiveProperty",
	OWLIrreflexiveProperty:       nsOWL + "IrreflexiveProperty",
	OWLPropertyChainAxiom:        nsOWL + "propertyChainAxiom",
	OWLSameAs:                    nsOWL + "sameAs",
	OWLDifferentFrom:             nsOWL + "differentFrom",
	OWLDatatype:                  nsOWL + "Datatype",
}

var rdfIRIs = map[RDFTerm]string{
	RDFType:         nsRDF + "type",
	RDFFirst:        nsRDF + "first",
	RDFRest:         nsRDF + "rest",
	RDFNil:          nsRDF + "nil",
	RDFLangString:   nsRDF + "langString",
	RDFPlainLiteral: nsRDF + "PlainLiteral",
}

var rdfsIRIs = map[RDFSTerm]string{
	RDFSSubClassOf:    nsRDFS + "subClassOf",
	RDFSSubPropertyOf: nsRDFS + "subPropertyOf",
	RDFSDomain:        nsRDFS + "domain",
	RDFSRange:         nsRDFS + "range",
	RDFSComment:       nsRDFS + "comment",
	RDFSLabel:         nsRDFS + "label",
	RDFSDatatype:      nsRDFS + "Datatype",
	RDFSSeeAlso:       nsRDFS + "seeAlso",
	RDFSIsDefinedBy:   nsRDFS + "isDefinedBy",
}

var iriToOWL = inverseOWL(owlIRIs)
var iriToRDF = inverseRDF(rdfIRIs)
var iriToRDFS = inverseRDFS(rdfsIRIs)

func inverseOWL(m map[OWLTerm]string) map[string]OWLTerm {
	out := make(map[string]OWLTerm, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func inverseRDF(m map[RDFTerm]string) map[string]RDFTerm {
	out := make(map[string]RDFTerm, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func inverseRDFS(m map[RDFSTerm]string) map[string]RDFSTerm {
	out := make(map[string]RDFSTerm, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// IRI returns the canonical IRI string for the token.
func (t OWLTerm) IRI() string { return owlIRIs[t] }

// IRI returns the canonical IRI string for the token.
func (t RDFTerm) IRI() string { return rdfIRIs[t] }

// IRI returns the canonical IRI string for the token.
func (t RDFSTerm) IRI() string { return rdfsIRIs[t] }

// AllOWLTerms returns every built-in OWL vocabulary token.
func AllOWLTerms() []OWLTerm {
	out := make([]OWLTerm, 0, len(owlIRIs))
	for k := range owlIRIs {
		out = append(out, k)
	}
	return out
}

// AllRDFTerms returns every built-in RDF vocabulary token used by the mapping.
func AllRDFTerms() []RDFTerm {
	out := make([]RDFTerm, 0, len(rdfIRIs))
	for k := range rdfIRIs {
		out = append(out, k)
	}
	return out
}

// AllRDFSTerms returns every built-in RDFS vocabulary token used by the mapping.
func AllRDFSTerms() []RDFSTerm {
	out := make([]RDFSTerm, 0, len(rdfsIRIs))
	for k := range rdfsIRIs {
		out = append(out, k)
	}
	return out
}

// entityKindTypes maps the rdf:type object of a declaration triple to the
// entity kind it declares (component C6).
var entityKindTypes = map[OWLTerm]EntityKind{
	OWLClass:              EntityClass,
	OWLObjectProperty:     EntityObjectProperty,
	OWLDatatypeProperty:   EntityDataProperty,
	OWLAnnotationProperty: EntityAnnotationProperty,
	OWLNamedIndividual:    EntityNamedIndividual,
}

// rdfsAnnotationPredicates is the set of RDFS predicates that are always
// annotation properties regardless of explicit declaration (component C11).
var rdfsAnnotationPredicates = map[RDFSTerm]bool{
	RDFSLabel:       true,
	RDFSComment:     true,
	RDFSSeeAlso:     true,
	RDFSIsDefinedBy: true,
}
