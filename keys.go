package owlrdf

import "strconv"

// This file renders the logical (annotation-free) part of a class
// expression, data range, property expression, individual or literal into
// a canonical string. AxiomSet.UpdateLogicallyEqual (axiomstore.go),
// reached through Ontology.UpdateLogicallyEqualAxiom (ontology.go), uses
// these keys to decide whether two recognised axioms are the same
// axiom modulo annotations, per spec §3's "update_logically_equal_axiom"
// semantics.

func ceKey(ce ClassExpression) string {
	switch v := ce.(type) {
	case Class:
		return "C:" + v.IRI.String()
	case ObjectIntersectionOf:
		return "And(" + ceListKey(v.Operands) + ")"
	case ObjectUnionOf:
		return "Or(" + ceListKey(v.Operands) + ")"
	case ObjectComplementOf:
		return "Not(" + ceKey(v.Operand) + ")"
	case ObjectOneOf:
		return "OneOf(" + indSetKey(v.Individuals) + ")"
	case ObjectSomeValuesFrom:
		return "ObjSome(" + opeKey(v.Property) + "," + ceKey(v.Filler) + ")"
	case ObjectAllValuesFrom:
		return "ObjAll(" + opeKey(v.Property) + "," + ceKey(v.Filler) + ")"
	case ObjectHasValue:
		return "ObjHasValue(" + opeKey(v.Property) + "," + indKey(v.Value) + ")"
	case ObjectHasSelf:
		return "ObjHasSelf(" + opeKey(v.Property) + ")"
	case ObjectCardinality:
		filler := "Thing"
		if v.Filler != nil {
			filler = ceKey(v.Filler)
		}
		return "ObjCard(" + strconv.Itoa(int(v.Kind)) + "," + strconv.Itoa(v.Cardinality) + "," + opeKey(v.Property) + "," + filler + ")"
	case DataSomeValuesFrom:
		return "DataSome(" + v.Property.IRI.String() + "," + drKey(v.Filler) + ")"
	case DataAllValuesFrom:
		return "DataAll(" + v.Property.IRI.String() + "," + drKey(v.Filler) + ")"
	case DataHasValue:
		return "DataHasValue(" + v.Property.IRI.String() + "," + litKey(v.Value) + ")"
	case DataCardinality:
		filler := "rdfs:Literal"
		if v.Filler != nil {
			filler = drKey(v.Filler)
		}
		return "DataCard(" + strconv.Itoa(int(v.Kind)) + "," + strconv.Itoa(v.Cardinality) + "," + v.Property.IRI.String() + "," + filler + ")"
	default:
		return "?CE"
	}
}

func ceListKey(ces []ClassExpression) string {
	s := ""
	for i, ce := range ces {
		if i > 0 {
			s += "|"
		}
		s += ceKey(ce)
	}
	return s
}

func ceSetKey(ces []ClassExpression) string { return ceListKey(ces) }

func drKey(dr DataRange) string {
	switch v := dr.(type) {
	case Datatype:
		return "D:" + v.IRI.String()
	case DataIntersectionOf:
		return "DAnd(" + drListKey(v.Operands) + ")"
	case DataUnionOf:
		return "DOr(" + drListKey(v.Operands) + ")"
	case DataComplementOf:
		return "DNot(" + drKey(v.Operand) + ")"
	case DataOneOf:
		s := "DOneOf("
		for i, l := range v.Literals {
			if i > 0 {
				s += "|"
			}
			s += litKey(l)
		}
		return s + ")"
	default:
		return "?DR"
	}
}

func drListKey(drs []DataRange) string {
	s := ""
	for i, dr := range drs {
		if i > 0 {
			s += "|"
		}
		s += drKey(dr)
	}
	return s
}

func opeKey(ope ObjectPropertyExpression) string {
	switch v := ope.(type) {
	case ObjectProperty:
		return "P:" + v.IRI.String()
	case ObjectInverseOf:
		return "Inv(" + opeKey(v.Inverse) + ")"
	default:
		return "?OPE"
	}
}

func opeSetKeyOrdered(opes []ObjectPropertyExpression) string {
	s := ""
	for i, o := range opes {
		if i > 0 {
			s += "|"
		}
		s += opeKey(o)
	}
	return s
}

func opeSetKey(opes []ObjectPropertyExpression) string { return opeSetKeyOrdered(opes) }

func dpeSetKeyOrdered(dpes []DataPropertyExpression) string {
	s := ""
	for i, d := range dpes {
		if i > 0 {
			s += "|"
		}
		s += d.IRI.String()
	}
	return s
}

func dpeSetKey(dpes []DataPropertyExpression) string { return dpeSetKeyOrdered(dpes) }

func indKey(ind Individual) string {
	if ind.Named {
		return "I:" + ind.IRI.String()
	}
	return "I:_:" + string(ind.Anon)
}

func indSetKey(inds []Individual) string {
	s := ""
	for i, ind := range inds {
		if i > 0 {
			s += "|"
		}
		s += indKey(ind)
	}
	return s
}

func litKey(l Literal) string {
	return "L:" + l.Lexical + "^^" + l.Datatype.String() + "@" + l.Lang
}

func annValueKey(v AnnotationValue) string {
	if v.IsIRI {
		return "AV:" + v.IRI.String()
	}
	return "AV:" + litKey(v.Literal)
}

func annKey(a Annotation) string {
	return a.Property.IRI.String() + "=" + annValueKey(a.Value)
}
