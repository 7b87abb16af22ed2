package types

import "testing"

func TestEqualsPrimitives(t *testing.T) {
	if !Equals(IntType{}, IntType{}) {
		t.Fatalf("expected int == int")
	}
	if Equals(IntType{}, DoubleType{}) {
		t.Fatalf("expected int != double under Equals")
	}
}

func TestMatchesAppliesWidening(t *testing.T) {
	if !Matches(IntType{}, DoubleType{}) {
		t.Fatalf("expected int to match double via widening")
	}
	if Matches(DoubleType{}, BoolType{}) {
		t.Fatalf("expected double not to match bool")
	}
}

func TestMatchesWideningIsNotSymmetric(t *testing.T) {
	if Matches(DoubleType{}, IntType{}) {
		t.Fatalf("expected double not to match int: widening is int -> double only")
	}
}

func TestMatchesNamedTypeByName(t *testing.T) {
	a := NamedType{Name: "Animal"}
	b := NamedType{Name: "Animal"}
	c := NamedType{Name: "Rock"}
	if !Matches(a, b) {
		t.Fatalf("expected same-named types to match")
	}
	if Matches(a, c) {
		t.Fatalf("expected differently-named types not to match")
	}
}

func TestArrayTypeStructuralEquality(t *testing.T) {
	a := ArrayType{Elem: IntType{}}
	b := ArrayType{Elem: IntType{}}
	c := ArrayType{Elem: DoubleType{}}
	if !Equals(a, b) {
		t.Fatalf("expected int[] == int[]")
	}
	if Equals(a, c) {
		t.Fatalf("expected int[] != double[]")
	}
}

func TestVariableAnnotationMatches(t *testing.T) {
	v1 := VariableAnnotation{Name: "x", Type: IntType{}}
	v2 := VariableAnnotation{Name: "x", Type: DoubleType{}}
	if !v1.Matches(v2) {
		t.Fatalf("expected int var to match double var via widening")
	}
}

func TestMethodAnnotationMatchesSignature(t *testing.T) {
	m1 := MethodAnnotation{Name: "f", ReturnType: IntType{}, FormalTypes: []Type{IntType{}, BoolType{}}}
	m2 := MethodAnnotation{Name: "f", ReturnType: IntType{}, FormalTypes: []Type{IntType{}, BoolType{}}}
	m3 := MethodAnnotation{Name: "f", ReturnType: BoolType{}, FormalTypes: []Type{IntType{}, BoolType{}}}
	if !m1.Matches(m2) {
		t.Fatalf("expected identical signatures to match")
	}
	if m1.Matches(m3) {
		t.Fatalf("expected differing return types not to match")
	}
}

func TestAnnotationKindsNeverMatch(t *testing.T) {
	v := VariableAnnotation{Name: "x", Type: IntType{}}
	m := MethodAnnotation{Name: "x", ReturnType: IntType{}}
	if v.Matches(m) || m.Matches(v) {
		t.Fatalf("expected variable and method annotations never to match")
	}
}
