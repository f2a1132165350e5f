// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import "slices"

// SchemaKind identifies the shape variant of a schema node.
type SchemaKind int

const (
	// KindAny is an explicitly unconstrained schema, for example `{}` or `true`.
	KindAny SchemaKind = iota
	// KindUnknown is a schema whose keyword combination is not modeled.
	KindUnknown
	// KindString is a `type: string` schema.
	KindString
	// KindNumber is a `type: number` schema.
	KindNumber
	// KindInteger is a `type: integer` schema.
	KindInteger
	// KindBoolean is a `type: boolean` schema.
	KindBoolean
	// KindNull is a `type: "null"` schema.
	KindNull
	// KindObject is a `type: object` schema.
	KindObject
	// KindArray is a `type: array` schema.
	KindArray
	// KindUnion is an `anyOf` or `oneOf` composition.
	KindUnion
	// KindIntersection is an `allOf` composition.
	KindIntersection
	// KindReference is a `$ref` schema.
	KindReference
)

var schemaKindNames = map[SchemaKind]string{
	KindAny:          "any",
	KindUnknown:      "unknown",
	KindString:       "string",
	KindNumber:       "number",
	KindInteger:      "integer",
	KindBoolean:      "boolean",
	KindNull:         "null",
	KindObject:       "object",
	KindArray:        "array",
	KindUnion:        "union",
	KindIntersection: "intersection",
	KindReference:    "reference",
}

// String returns a lower-case kind name.
func (k SchemaKind) String() string {
	if name, ok := schemaKindNames[k]; ok {
		return name
	}

	return "invalid"
}

// Schema is one immutable schema node.
//
// Only shape-relevant keywords are kept. Which fields are meaningful depends on Kind:
// Enum for primitive kinds, Properties and Required for KindObject, Items for KindArray,
// Members for KindUnion and KindIntersection, Ref for KindReference and Keywords for
// KindUnknown.
type Schema struct {
	Kind        SchemaKind
	Nullable    bool
	Deprecated  bool
	Description string

	// Enum holds literal values typed per kind: string, float64, int64 or bool.
	// A nil entry is treated as absent.
	Enum []any

	// Properties keeps the declared property order.
	Properties []Property
	Required   []string

	// Items is nil for an array of anything.
	Items   *Schema
	Members []*Schema

	Ref string

	// Keywords lists the keywords that made the node unrecognized. For compositions it
	// holds the keyword as written (anyOf, oneOf or allOf).
	Keywords []string
}

// Property is one named object property schema.
type Property struct {
	Name   string
	Schema *Schema
}

// Object builds an object schema from ordered properties.
func Object(properties []Property, required ...string) *Schema {
	return &Schema{Kind: KindObject, Properties: properties, Required: required}
}

// ArrayOf builds an array schema with the given item schema.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Kind: KindArray, Items: items}
}

// OneOf builds a union schema.
func OneOf(members ...*Schema) *Schema {
	return &Schema{Kind: KindUnion, Members: members}
}

// AllOf builds an intersection schema.
func AllOf(members ...*Schema) *Schema {
	return &Schema{Kind: KindIntersection, Members: members}
}

// RefTo builds a reference schema.
func RefTo(ref string) *Schema {
	return &Schema{Kind: KindReference, Ref: ref}
}

// isRequired reports whether property name is in the required set.
func (s *Schema) isRequired(name string) bool {
	return slices.Contains(s.Required, name)
}
