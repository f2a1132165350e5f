// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

// Operator joins the terms of one expression.
type Operator int

const (
	// OperatorNone marks a plain expression built from a single schema.
	OperatorNone Operator = iota
	// OperatorUnion marks an anyOf/oneOf composition.
	OperatorUnion
	// OperatorIntersection marks an allOf composition.
	OperatorIntersection
)

const (
	unionSeparator        = " | "
	intersectionSeparator = " & "
)

// separator returns the joiner printed between terms. None prints like Union.
func (op Operator) separator() string {
	if op == OperatorIntersection {
		return intersectionSeparator
	}

	return unionSeparator
}

// PrimitiveKind is a target-language primitive type.
type PrimitiveKind int

const (
	PrimitiveString PrimitiveKind = iota
	PrimitiveNumber
	PrimitiveBoolean
	PrimitiveNull
	PrimitiveAny
)

// Term is one alternative inside an expression.
//
// The set of implementations is closed: ObjectTerm, PrimitiveTerm, ReferenceTerm and GroupTerm.
type Term interface {
	// IsArray reports whether the term is rendered with an array suffix.
	IsArray() bool
	isTerm()
}

// ObjectTerm is an inline object literal.
type ObjectTerm struct {
	Properties []ObjectProperty
	Array      bool
}

// ObjectProperty is one member of an object literal.
type ObjectProperty struct {
	Name        string
	Required    bool
	Expressions []Expression
	Description string
	Deprecated  bool
}

// PrimitiveTerm is a primitive type or a set of literal values of that type.
type PrimitiveTerm struct {
	Primitive PrimitiveKind
	// Enum holds display strings; string literals are quoted at render time.
	Enum  []string
	Array bool
}

// ReferenceTerm is a bare named type.
type ReferenceTerm struct {
	Name  string
	Array bool
}

// GroupTerm keeps a nested composition whose operator differs from the enclosing one.
type GroupTerm struct {
	Expression Expression
}

// IsArray implements Term.
func (t ObjectTerm) IsArray() bool { return t.Array }

// IsArray implements Term.
func (t PrimitiveTerm) IsArray() bool { return t.Array }

// IsArray implements Term.
func (t ReferenceTerm) IsArray() bool { return t.Array }

// IsArray implements Term. A group is an array when every inner term is.
func (t GroupTerm) IsArray() bool {
	if len(t.Expression.Terms) == 0 {
		return false
	}

	for _, term := range t.Expression.Terms {
		if !term.IsArray() {
			return false
		}
	}

	return true
}

func (ObjectTerm) isTerm()    {}
func (PrimitiveTerm) isTerm() {}
func (ReferenceTerm) isTerm() {}
func (GroupTerm) isTerm()     {}

// Expression is an ordered list of terms joined by one operator.
type Expression struct {
	Terms    []Term
	Operator Operator
}

// IsArray reports whether the expression holds two or more terms and all of them are
// array-flagged. Such an expression prints one shared `(...)[]` suffix.
func (e Expression) IsArray() bool {
	if len(e.Terms) < 2 {
		return false
	}

	for _, term := range e.Terms {
		if !term.IsArray() {
			return false
		}
	}

	return true
}

// Declaration is one named top-level type declaration.
type Declaration struct {
	Name        string
	Options     Options
	Expressions []Expression
}

// Compile-time checks.
var (
	_ Term = ObjectTerm{}
	_ Term = PrimitiveTerm{}
	_ Term = ReferenceTerm{}
	_ Term = GroupTerm{}
)
