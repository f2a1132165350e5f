// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/woozymasta/schemats/internal/yamlnode"
	"gopkg.in/yaml.v3"
)

const (
	keywordRef         = "$ref"
	keywordType        = "type"
	keywordAnyOf       = "anyOf"
	keywordOneOf       = "oneOf"
	keywordAllOf       = "allOf"
	keywordEnum        = "enum"
	keywordConst       = "const"
	keywordProperties  = "properties"
	keywordRequired    = "required"
	keywordItems       = "items"
	keywordNullable    = "nullable"
	keywordXNullable   = "x-nullable"
	keywordDeprecated  = "deprecated"
	keywordDescription = "description"
)

// shapeKeywords enumerates keywords that constrain a value shape.
// A composition mixed with any of them is not modeled.
var shapeKeywords = map[string]struct{}{
	"type":                 {},
	"enum":                 {},
	"const":                {},
	"format":               {},
	"not":                  {},
	"properties":           {},
	"required":             {},
	"additionalProperties": {},
	"patternProperties":    {},
	"minProperties":        {},
	"maxProperties":        {},
	"items":                {},
	"prefixItems":          {},
	"minItems":             {},
	"maxItems":             {},
	"uniqueItems":          {},
	"minimum":              {},
	"maximum":              {},
	"exclusiveMinimum":     {},
	"exclusiveMaximum":     {},
	"multipleOf":           {},
	"minLength":            {},
	"maxLength":            {},
	"pattern":              {},
}

// compositionKeywords lists composition keywords in classification order.
var compositionKeywords = []string{keywordAllOf, keywordAnyOf, keywordOneOf}

// ParseSchema decodes a JSON or YAML schema document into a schema tree.
//
// The root must be an object or a boolean schema. Unmodeled keyword combinations do not
// fail decoding; they produce KindUnknown nodes with the offending keywords recorded.
func ParseSchema(data []byte) (*Schema, error) {
	root, err := parseYAMLRoot(data)
	if err != nil {
		return nil, err
	}

	if !isSchemaRoot(root) {
		return nil, ErrSchemaRootType
	}

	return DecodeNode(root), nil
}

// DecodeNode converts one decoded YAML node into a schema tree.
//
// It is used by callers that hold a schema embedded in a larger document.
func DecodeNode(node *yaml.Node) *Schema {
	node = yamlnode.ResolveAlias(node)
	if node == nil {
		return &Schema{Kind: KindAny}
	}

	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(yamlnode.New(node))
	case yaml.ScalarNode:
		if node.Tag == "!!bool" {
			if value, err := strconv.ParseBool(node.Value); err == nil && value {
				return &Schema{Kind: KindAny}
			}

			return &Schema{Kind: KindUnknown, Keywords: []string{"false"}}
		}

		if node.Tag == "!!null" {
			return &Schema{Kind: KindAny}
		}
	}

	return &Schema{Kind: KindUnknown}
}

// parseYAMLRoot decodes bytes into the first document root node.
func parseYAMLRoot(data []byte) (*yaml.Node, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecodeSchema)
	}

	return yamlnode.ResolveAlias(document.Content[0]), nil
}

// isSchemaRoot reports whether node can be a schema document root.
func isSchemaRoot(node *yaml.Node) bool {
	if node == nil {
		return false
	}

	if node.Kind == yaml.MappingNode {
		return true
	}

	return node.Kind == yaml.ScalarNode && node.Tag == "!!bool"
}

// decodeMapping classifies one schema object.
func decodeMapping(fields yamlnode.Mapping) *Schema {
	schema := &Schema{
		Description: fields.Scalar(keywordDescription),
		Deprecated:  fields.Bool(keywordDeprecated),
		Nullable:    fields.Bool(keywordNullable) || fields.Bool(keywordXNullable),
	}

	if ref := fields.Scalar(keywordRef); ref != "" {
		schema.Kind = KindReference
		schema.Ref = ref
		return schema
	}

	compositions := fields.Present(compositionKeywords...)

	if typeNode, ok := fields.Get(keywordType); ok {
		if len(compositions) > 0 {
			return unknownSchema(schema, append([]string{keywordType}, compositions...))
		}

		decodeTyped(schema, typeNode, fields)
		return schema
	}

	if len(compositions) > 0 {
		decodeComposition(schema, compositions, fields)
		return schema
	}

	if shapes := presentShapeKeywords(fields); len(shapes) > 0 {
		return unknownSchema(schema, shapes)
	}

	schema.Kind = KindAny
	return schema
}

// decodeTyped fills a schema that declares `type`.
func decodeTyped(schema *Schema, typeNode *yaml.Node, fields yamlnode.Mapping) {
	typeName, nullable, ok := schemaTypeName(typeNode)
	if !ok {
		unknownSchema(schema, []string{keywordType})
		return
	}

	if nullable {
		schema.Nullable = true
	}

	switch typeName {
	case "string":
		schema.Kind = KindString
	case "number":
		schema.Kind = KindNumber
	case "integer":
		schema.Kind = KindInteger
	case "boolean":
		schema.Kind = KindBoolean
	case "null":
		schema.Kind = KindNull
		return
	case "object":
		schema.Kind = KindObject
		schema.Properties = decodeProperties(fields)
		schema.Required = fields.StringList(keywordRequired)
		return
	case "array":
		schema.Kind = KindArray
		if items, ok := fields.Get(keywordItems); ok && items.Kind != yaml.SequenceNode {
			schema.Items = DecodeNode(items)
		}

		return
	default:
		unknownSchema(schema, []string{keywordType})
		return
	}

	schema.Enum = decodeEnum(schema.Kind, fields)
}

// decodeComposition fills a composition schema or marks it unknown when mixed.
func decodeComposition(schema *Schema, compositions []string, fields yamlnode.Mapping) {
	if len(compositions) > 1 {
		unknownSchema(schema, compositions)
		return
	}

	if shapes := presentShapeKeywords(fields); len(shapes) > 0 {
		unknownSchema(schema, append(compositions, shapes...))
		return
	}

	keyword := compositions[0]
	membersNode, ok := fields.Get(keyword)
	if !ok || membersNode.Kind != yaml.SequenceNode || len(membersNode.Content) == 0 {
		unknownSchema(schema, compositions)
		return
	}

	schema.Kind = KindUnion
	if keyword == keywordAllOf {
		schema.Kind = KindIntersection
	}

	schema.Keywords = []string{keyword}
	schema.Members = make([]*Schema, 0, len(membersNode.Content))
	for _, member := range membersNode.Content {
		schema.Members = append(schema.Members, DecodeNode(member))
	}
}

// unknownSchema marks schema as unmodeled, keeping its annotations.
func unknownSchema(schema *Schema, keywords []string) *Schema {
	schema.Kind = KindUnknown
	schema.Keywords = keywords
	return schema
}

// schemaTypeName extracts the single type name. A `null` entry in a type list is folded
// into nullability; any other multi-type list is not modeled.
func schemaTypeName(node *yaml.Node) (name string, nullable bool, ok bool) {
	node = yamlnode.ResolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		return strings.TrimSpace(node.Value), false, node.Value != ""
	case yaml.SequenceNode:
		names := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = yamlnode.ResolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return "", false, false
			}

			if item.Value == "null" {
				nullable = true
				continue
			}

			names = append(names, item.Value)
		}

		switch len(names) {
		case 0:
			return "null", false, nullable
		case 1:
			return names[0], nullable, true
		}
	}

	return "", false, false
}

// decodeProperties decodes property schemas in declared order.
func decodeProperties(fields yamlnode.Mapping) []Property {
	node, ok := fields.Get(keywordProperties)
	if !ok || node.Kind != yaml.MappingNode {
		return nil
	}

	properties := yamlnode.New(node)
	out := make([]Property, 0, properties.Len())
	for _, name := range properties.Keys() {
		value, _ := properties.Get(name)
		out = append(out, Property{Name: name, Schema: DecodeNode(value)})
	}

	return out
}

// decodeEnum decodes `enum` (or a single `const`) literals typed per kind.
func decodeEnum(kind SchemaKind, fields yamlnode.Mapping) []any {
	var values []*yaml.Node
	if node, ok := fields.Get(keywordEnum); ok && node.Kind == yaml.SequenceNode {
		values = node.Content
	} else if node, ok := fields.Get(keywordConst); ok {
		values = []*yaml.Node{node}
	}

	if len(values) == 0 {
		return nil
	}

	out := make([]any, 0, len(values))
	for _, item := range values {
		item = yamlnode.ResolveAlias(item)
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			continue
		}

		if value, ok := enumValue(kind, item.Value); ok {
			out = append(out, value)
		}
	}

	return out
}

// enumValue converts one scalar literal to the Go type used for kind.
func enumValue(kind SchemaKind, text string) (any, bool) {
	switch kind {
	case KindString:
		return text, true
	case KindInteger:
		if value, err := strconv.ParseInt(text, 10, 64); err == nil {
			return value, true
		}

		fallthrough
	case KindNumber:
		value, err := strconv.ParseFloat(text, 64)
		return value, err == nil
	case KindBoolean:
		value, err := strconv.ParseBool(text)
		return value, err == nil
	}

	return nil, false
}

// presentShapeKeywords returns shape keywords present in document order.
func presentShapeKeywords(fields yamlnode.Mapping) []string {
	var out []string
	for _, key := range fields.Keys() {
		if _, ok := shapeKeywords[key]; ok {
			out = append(out, key)
		}
	}

	return out
}
