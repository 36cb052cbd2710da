package owlrdf

// Axiom is the sealed sum type over every OWL 2 axiom the reconstruction
// engine recognises (component C10), following the same sealed-interface
// convention as ClassExpression/DataRange in model.go.
type Axiom interface {
	isAxiom()
	logicalKey() string
}

// AnnotatedAxiom pairs a logical axiom with the set of annotations attached
// to it, either directly (simple-annotation recognition, C11) or via
// owl:Axiom reification (C4/C10).
type AnnotatedAxiom struct {
	Axiom       Axiom
	Annotations []Annotation
}

// --- Declarations ---

// Declaration introduces an entity of a given kind.
type Declaration struct {
	Kind EntityKind
	IRI  IRI
}

func (Declaration) isAxiom() {}
func (d Declaration) logicalKey() string { return "Decl/" + d.Kind.String() + "/" + d.IRI.String() }

// --- Class axioms ---

type SubClassOf struct{ Sub, Super ClassExpression }
type EquivalentClasses struct{ Classes []ClassExpression }
type DisjointClasses struct{ Classes []ClassExpression }
type DisjointUnion struct {
	Class       IRI
	Disjoint    []ClassExpression
}
type DatatypeDefinition struct {
	Datatype IRI
	Range    DataRange
}

func (SubClassOf) isAxiom() {}
func (a SubClassOf) logicalKey() string {
	return "SubClassOf/" + ceKey(a.Sub) + "/" + ceKey(a.Super)
}

func (EquivalentClasses) isAxiom() {}
func (a EquivalentClasses) logicalKey() string { return "EquivalentClasses/" + ceSetKey(a.Classes) }

func (DisjointClasses) isAxiom() {}
func (a DisjointClasses) logicalKey() string { return "DisjointClasses/" + ceSetKey(a.Classes) }

func (DisjointUnion) isAxiom() {}
func (a DisjointUnion) logicalKey() string {
	return "DisjointUnion/" + a.Class.String() + "/" + ceSetKey(a.Disjoint)
}

func (DatatypeDefinition) isAxiom() {}
func (a DatatypeDefinition) logicalKey() string {
	return "DatatypeDefinition/" + a.Datatype.String() + "/" + drKey(a.Range)
}

// --- Object property axioms ---

type SubObjectPropertyOf struct {
	// Sub is either a single property expression (simple sub-property)
	// or, when Chain is non-nil, the chain is the sub-expression and
	// Sub is ignored (spec.md §4.10, owl:propertyChainAxiom).
	Sub   ObjectPropertyExpression
	Chain []ObjectPropertyExpression
	Super ObjectPropertyExpression
}
type EquivalentObjectProperties struct{ Properties []ObjectPropertyExpression }
type DisjointObjectProperties struct{ Properties []ObjectPropertyExpression }
type ObjectPropertyDomain struct {
	Property ObjectPropertyExpression
	Domain   ClassExpression
}
type ObjectPropertyRange struct {
	Property ObjectPropertyExpression
	Range    ClassExpression
}
type InverseObjectProperties struct{ First, Second ObjectPropertyExpression }
type FunctionalObjectProperty struct{ Property ObjectPropertyExpression }
type InverseFunctionalObjectProperty struct{ Property ObjectPropertyExpression }
type ReflexiveObjectProperty struct{ Property ObjectPropertyExpression }
type IrreflexiveObjectProperty struct{ Property ObjectPropertyExpression }
type SymmetricObjectProperty struct{ Property ObjectPropertyExpression }
type AsymmetricObjectProperty struct{ Property ObjectPropertyExpression }
type TransitiveObjectProperty struct{ Property ObjectPropertyExpression }

func (SubObjectPropertyOf) isAxiom() {}
func (a SubObjectPropertyOf) logicalKey() string {
	if a.Chain != nil {
		return "SubObjectPropertyChain/" + opeSetKeyOrdered(a.Chain) + "/" + opeKey(a.Super)
	}
	return "SubObjectPropertyOf/" + opeKey(a.Sub) + "/" + opeKey(a.Super)
}

func (EquivalentObjectProperties) isAxiom() {}
func (a EquivalentObjectProperties) logicalKey() string {
	return "EquivalentObjectProperties/" + opeSetKey(a.Properties)
}

func (DisjointObjectProperties) isAxiom() {}
func (a DisjointObjectProperties) logicalKey() string {
	return "DisjointObjectProperties/" + opeSetKey(a.Properties)
}

func (ObjectPropertyDomain) isAxiom() {}
func (a ObjectPropertyDomain) logicalKey() string {
	return "ObjectPropertyDomain/" + opeKey(a.Property) + "/" + ceKey(a.Domain)
}

func (ObjectPropertyRange) isAxiom() {}
func (a ObjectPropertyRange) logicalKey() string {
	return "ObjectPropertyRange/" + opeKey(a.Property) + "/" + ceKey(a.Range)
}

func (InverseObjectProperties) isAxiom() {}
func (a InverseObjectProperties) logicalKey() string {
	return "InverseObjectProperties/" + opeSetKey([]ObjectPropertyExpression{a.First, a.Second})
}

func (FunctionalObjectProperty) isAxiom() {}
func (a FunctionalObjectProperty) logicalKey() string {
	return "FunctionalObjectProperty/" + opeKey(a.Property)
}

func (InverseFunctionalObjectProperty) isAxiom() {}
func (a InverseFunctionalObjectProperty) logicalKey() string {
	return "InverseFunctionalObjectProperty/" + opeKey(a.Property)
}

func (ReflexiveObjectProperty) isAxiom() {}
func (a ReflexiveObjectProperty) logicalKey() string {
	return "ReflexiveObjectProperty/" + opeKey(a.Property)
}

func (IrreflexiveObjectProperty) isAxiom() {}
func (a IrreflexiveObjectProperty) logicalKey() string {
	return "IrreflexiveObjectProperty/" + opeKey(a.Property)
}

func (SymmetricObjectProperty) isAxiom() {}
func (a SymmetricObjectProperty) logicalKey() string {
	return "SymmetricObjectProperty/" + opeKey(a.Property)
}

func (AsymmetricObjectProperty) isAxiom() {}
func (a AsymmetricObjectProperty) logicalKey() string {
	return "AsymmetricObjectProperty/" + opeKey(a.Property)
}

func (TransitiveObjectProperty) isAxiom() {}
func (a TransitiveObjectProperty) logicalKey() string {
	return "TransitiveObjectProperty/" + opeKey(a.Property)
}

// --- Data property axioms ---

type SubDataPropertyOf struct{ Sub, Super DataPropertyExpression }
type EquivalentDataProperties struct{ Properties []DataPropertyExpression }
type DisjointDataProperties struct{ Properties []DataPropertyExpression }
type DataPropertyDomain struct {
	Property DataPropertyExpression
	Domain   ClassExpression
}
type DataPropertyRange struct {
	Property DataPropertyExpression
	Range    DataRange
}
type FunctionalDataProperty struct{ Property DataPropertyExpression }

func (SubDataPropertyOf) isAxiom() {}
func (a SubDataPropertyOf) logicalKey() string {
	return "SubDataPropertyOf/" + a.Sub.IRI.String() + "/" + a.Super.IRI.String()
}

func (EquivalentDataProperties) isAxiom() {}
func (a EquivalentDataProperties) logicalKey() string {
	return "EquivalentDataProperties/" + dpeSetKey(a.Properties)
}

func (DisjointDataProperties) isAxiom() {}
func (a DisjointDataProperties) logicalKey() string {
	return "DisjointDataProperties/" + dpeSetKey(a.Properties)
}

func (DataPropertyDomain) isAxiom() {}
func (a DataPropertyDomain) logicalKey() string {
	return "DataPropertyDomain/" + a.Property.IRI.String() + "/" + ceKey(a.Domain)
}

func (DataPropertyRange) isAxiom() {}
func (a DataPropertyRange) logicalKey() string {
	return "DataPropertyRange/" + a.Property.IRI.String() + "/" + drKey(a.Range)
}

func (FunctionalDataProperty) isAxiom() {}
func (a FunctionalDataProperty) logicalKey() string {
	return "FunctionalDataProperty/" + a.Property.IRI.String()
}

// --- Annotation axioms ---

type AnnotationAssertion struct {
	Subject    AnnotationSubject
	Annotation Annotation
}
type AnnotationSubject struct {
	IsIRI bool
	IRI   IRI
	Anon  BlankNodeID
}
type SubAnnotationPropertyOf struct{ Sub, Super AnnotationPropertyExpression }
type AnnotationPropertyDomain struct {
	Property AnnotationPropertyExpression
	Domain   IRI
}
type AnnotationPropertyRange struct {
	Property AnnotationPropertyExpression
	Range    IRI
}

func (AnnotationAssertion) isAxiom() {}
func (a AnnotationAssertion) logicalKey() string {
	subj := a.Subject.IRI.String()
	if !a.Subject.IsIRI {
		subj = "_:" + string(a.Subject.Anon)
	}
	return "AnnotationAssertion/" + subj + "/" + annKey(a.Annotation)
}

func (SubAnnotationPropertyOf) isAxiom() {}
func (a SubAnnotationPropertyOf) logicalKey() string {
	return "SubAnnotationPropertyOf/" + a.Sub.IRI.String() + "/" + a.Super.IRI.String()
}

func (AnnotationPropertyDomain) isAxiom() {}
func (a AnnotationPropertyDomain) logicalKey() string {
	return "AnnotationPropertyDomain/" + a.Property.IRI.String() + "/" + a.Domain.String()
}

func (AnnotationPropertyRange) isAxiom() {}
func (a AnnotationPropertyRange) logicalKey() string {
	return "AnnotationPropertyRange/" + a.Property.IRI.String() + "/" + a.Range.String()
}

// --- Supplemented axioms (original_source/reader3.rs, §4.10 of SPEC_FULL.md) ---

type HasKey struct {
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataPropertyExpression
}

func (HasKey) isAxiom() {}
func (a HasKey) logicalKey() string {
	return "HasKey/" + ceKey(a.Class) + "/" + opeSetKeyOrdered(a.ObjectProperties) + "/" + dpeSetKeyOrdered(a.DataProperties)
}

type ClassAssertion struct {
	Class      ClassExpression
	Individual Individual
}
type ObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}
type NegativeObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
}
type DataPropertyAssertion struct {
	Property DataPropertyExpression
	Subject  Individual
	Value    Literal
}
type NegativeDataPropertyAssertion struct {
	Property DataPropertyExpression
	Subject  Individual
	Value    Literal
}
type SameIndividual struct{ Individuals []Individual }
type DifferentIndividuals struct{ Individuals []Individual }

func (ClassAssertion) isAxiom() {}
func (a ClassAssertion) logicalKey() string {
	return "ClassAssertion/" + ceKey(a.Class) + "/" + indKey(a.Individual)
}

func (ObjectPropertyAssertion) isAxiom() {}
func (a ObjectPropertyAssertion) logicalKey() string {
	return "ObjectPropertyAssertion/" + opeKey(a.Property) + "/" + indKey(a.Subject) + "/" + indKey(a.Object)
}

func (NegativeObjectPropertyAssertion) isAxiom() {}
func (a NegativeObjectPropertyAssertion) logicalKey() string {
	return "NegativeObjectPropertyAssertion/" + opeKey(a.Property) + "/" + indKey(a.Subject) + "/" + indKey(a.Object)
}

func (DataPropertyAssertion) isAxiom() {}
func (a DataPropertyAssertion) logicalKey() string {
	return "DataPropertyAssertion/" + a.Property.IRI.String() + "/" + indKey(a.Subject) + "/" + litKey(a.Value)
}

func (NegativeDataPropertyAssertion) isAxiom() {}
func (a NegativeDataPropertyAssertion) logicalKey() string {
	return "NegativeDataPropertyAssertion/" + a.Property.IRI.String() + "/" + indKey(a.Subject) + "/" + litKey(a.Value)
}

func (SameIndividual) isAxiom() {}
func (a SameIndividual) logicalKey() string { return "SameIndividual/" + indSetKey(a.Individuals) }

func (DifferentIndividuals) isAxiom() {}
func (a DifferentIndividuals) logicalKey() string {
	return "DifferentIndividuals/" + indSetKey(a.Individuals)
}
