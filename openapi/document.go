// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/schemats"
	"github.com/woozymasta/schemats/internal/yamlnode"
	"gopkg.in/yaml.v3"
)

// Parameter locations.
const (
	InQuery  = "query"
	InPath   = "path"
	InHeader = "header"
	InCookie = "cookie"
	InBody   = "body"
)

// methods lists operation keys of a path item in output order.
var methods = []string{"get", "put", "post", "delete", "patch", "options", "head", "trace"}

// Document is the subset of an OpenAPI 3.x or Swagger 2.0 document needed for conversion.
// Every list keeps document order.
type Document struct {
	// Version is the `openapi` or `swagger` field value.
	Version string
	// Swagger is set for Swagger 2.0 documents.
	Swagger    bool
	Title      string
	Paths      []PathItem
	Components []NamedSchema
}

// NamedSchema is one schema under `components.schemas` or `definitions`.
type NamedSchema struct {
	Name    string
	Pointer string
	Schema  *schemats.Schema
}

// PathItem is one entry of `paths`.
type PathItem struct {
	Path string
	// Ref is set when the path item is a reference; other fields are empty then.
	Ref        string
	Parameters []Parameter
	Operations []Operation
}

// Operation is one method of a path item.
type Operation struct {
	Method      string
	OperationID string
	Summary     string
	Description string
	// Parameters include path-level parameters not overridden by the operation.
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
}

// Parameter is one operation parameter.
type Parameter struct {
	Name        string
	In          string
	Required    bool
	Deprecated  bool
	Description string
	Ref         string
	Pointer     string
	// Schema is nil when the parameter declares no usable schema.
	Schema *schemats.Schema
}

// RequestBody is an operation request body.
type RequestBody struct {
	Ref     string
	Pointer string
	// Schema is nil when no JSON media type is declared.
	Schema *schemats.Schema
}

// Response is one entry of an operation `responses` map.
type Response struct {
	Status      string
	Description string
	Ref         string
	Pointer     string
	// Schema is nil when no JSON media type is declared.
	Schema *schemats.Schema
}

// ParseDocumentFile reads and decodes one document file.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocumentFile, err)
	}

	return ParseDocument(data)
}

// ParseDocument decodes a JSON or YAML OpenAPI 3.x or Swagger 2.0 document.
func ParseDocument(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecodeDocument)
	}

	top := yamlnode.ResolveAlias(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document root must be an object", ErrDocumentShape)
	}

	fields := yamlnode.New(top)
	doc := &Document{}
	switch {
	case fields.Scalar("openapi") != "":
		doc.Version = fields.Scalar("openapi")
	case fields.Scalar("swagger") != "":
		doc.Version = fields.Scalar("swagger")
		doc.Swagger = true
	default:
		return nil, ErrDocumentVersion
	}

	if info, ok, err := mapping(fields, "info", "/info"); err != nil {
		return nil, err
	} else if ok {
		doc.Title = info.Scalar("title")
	}

	components, err := decodeComponents(fields, doc.Swagger)
	if err != nil {
		return nil, err
	}

	doc.Components = components

	paths, err := decodePaths(fields, doc.Swagger)
	if err != nil {
		return nil, err
	}

	doc.Paths = paths
	return doc, nil
}

// decodeComponents collects named schemas in document order.
func decodeComponents(fields yamlnode.Mapping, swagger bool) ([]NamedSchema, error) {
	var (
		schemas yamlnode.Mapping
		ok      bool
		err     error
		base    string
	)

	if swagger {
		base = "/definitions"
		schemas, ok, err = mapping(fields, "definitions", base)
	} else {
		var components yamlnode.Mapping
		components, ok, err = mapping(fields, "components", "/components")
		if err != nil || !ok {
			return nil, err
		}

		base = "/components/schemas"
		schemas, ok, err = mapping(components, "schemas", base)
	}

	if err != nil || !ok {
		return nil, err
	}

	out := make([]NamedSchema, 0, schemas.Len())
	for _, name := range schemas.Keys() {
		node, _ := schemas.Get(name)
		out = append(out, NamedSchema{
			Name:    name,
			Pointer: yamlnode.AppendPointer(base, name),
			Schema:  schemats.DecodeNode(node),
		})
	}

	return out, nil
}

// decodePaths collects path items in document order.
func decodePaths(fields yamlnode.Mapping, swagger bool) ([]PathItem, error) {
	paths, ok, err := mapping(fields, "paths", "/paths")
	if err != nil || !ok {
		return nil, err
	}

	out := make([]PathItem, 0, paths.Len())
	for _, path := range paths.Keys() {
		pointer := yamlnode.AppendPointer("/paths", path)
		node, ok := paths.Get(path)
		if !ok || node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s must be an object", ErrDocumentShape, pointer)
		}

		item, err := decodePathItem(path, pointer, yamlnode.New(node), swagger)
		if err != nil {
			return nil, err
		}

		out = append(out, item)
	}

	return out, nil
}

// decodePathItem decodes one path item and its operations.
func decodePathItem(path, pointer string, fields yamlnode.Mapping, swagger bool) (PathItem, error) {
	item := PathItem{Path: path}
	if ref := fields.Scalar("$ref"); ref != "" {
		item.Ref = ref
		return item, nil
	}

	shared, err := decodeParameters(fields, yamlnode.AppendPointer(pointer, "parameters"), swagger)
	if err != nil {
		return PathItem{}, err
	}

	item.Parameters = shared
	for _, method := range methods {
		operationPointer := yamlnode.AppendPointer(pointer, method)
		operationFields, ok, err := mapping(fields, method, operationPointer)
		if err != nil {
			return PathItem{}, err
		}

		if !ok {
			continue
		}

		operation, err := decodeOperation(method, operationPointer, operationFields, shared, swagger)
		if err != nil {
			return PathItem{}, err
		}

		item.Operations = append(item.Operations, operation)
	}

	return item, nil
}

// decodeOperation decodes one operation object.
func decodeOperation(method, pointer string, fields yamlnode.Mapping, shared []Parameter, swagger bool) (Operation, error) {
	operation := Operation{
		Method:      method,
		OperationID: fields.Scalar("operationId"),
		Summary:     fields.Scalar("summary"),
		Description: fields.Scalar("description"),
	}

	own, err := decodeParameters(fields, yamlnode.AppendPointer(pointer, "parameters"), swagger)
	if err != nil {
		return Operation{}, err
	}

	parameters := mergeParameters(shared, own)
	if swagger {
		parameters, operation.RequestBody = extractBodyParameter(parameters)
	} else {
		body, err := decodeRequestBody(fields, yamlnode.AppendPointer(pointer, "requestBody"))
		if err != nil {
			return Operation{}, err
		}

		operation.RequestBody = body
	}

	operation.Parameters = parameters

	responses, err := decodeResponses(fields, yamlnode.AppendPointer(pointer, "responses"), swagger)
	if err != nil {
		return Operation{}, err
	}

	operation.Responses = responses
	return operation, nil
}

// decodeParameters decodes a `parameters` sequence.
func decodeParameters(fields yamlnode.Mapping, pointer string, swagger bool) ([]Parameter, error) {
	node, ok := fields.Get("parameters")
	if !ok {
		return nil, nil
	}

	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s must be an array", ErrDocumentShape, pointer)
	}

	out := make([]Parameter, 0, len(node.Content))
	for index, raw := range node.Content {
		itemPointer := yamlnode.AppendPointer(pointer, strconv.Itoa(index))
		raw = yamlnode.ResolveAlias(raw)
		if raw.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s must be an object", ErrDocumentShape, itemPointer)
		}

		out = append(out, decodeParameter(yamlnode.New(raw), raw, itemPointer, swagger))
	}

	return out, nil
}

// decodeParameter decodes one parameter object.
//
// Swagger 2.0 non-body parameters carry type keywords inline; the parameter node itself
// is decoded as the schema then.
func decodeParameter(fields yamlnode.Mapping, node *yaml.Node, pointer string, swagger bool) Parameter {
	parameter := Parameter{
		Name:        fields.Scalar("name"),
		In:          fields.Scalar("in"),
		Required:    fields.Bool("required"),
		Deprecated:  fields.Bool("deprecated"),
		Description: fields.Scalar("description"),
		Ref:         fields.Scalar("$ref"),
		Pointer:     pointer,
	}

	if parameter.Ref != "" {
		return parameter
	}

	if schemaNode, ok := fields.Get("schema"); ok {
		parameter.Pointer = yamlnode.AppendPointer(pointer, "schema")
		parameter.Schema = schemats.DecodeNode(schemaNode)
		return parameter
	}

	if schemaNode, media, ok := jsonMediaSchema(fields); ok {
		parameter.Pointer = yamlnode.AppendPointer(yamlnode.AppendPointer(yamlnode.AppendPointer(pointer, "content"), media), "schema")
		parameter.Schema = schemats.DecodeNode(schemaNode)
		return parameter
	}

	if swagger && fields.Scalar("type") != "" {
		parameter.Schema = schemats.DecodeNode(inlineParameterSchema(node))
	}

	return parameter
}

// inlineParameterSchema copies type keywords of a Swagger 2.0 parameter into a schema node.
func inlineParameterSchema(node *yaml.Node) *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for index := 0; index+1 < len(node.Content); index += 2 {
		key := yamlnode.ResolveAlias(node.Content[index])
		switch key.Value {
		case "name", "in", "required", "description", "deprecated", "allowEmptyValue", "collectionFormat":
			continue
		}

		out.Content = append(out.Content, node.Content[index], node.Content[index+1])
	}

	return out
}

// mergeParameters overlays operation parameters on path-level ones by name and location.
func mergeParameters(shared, own []Parameter) []Parameter {
	if len(shared) == 0 {
		return own
	}

	out := make([]Parameter, 0, len(shared)+len(own))
	used := make([]bool, len(own))
	for _, parameter := range shared {
		for index, candidate := range own {
			if !used[index] && candidate.Ref == "" && parameter.Ref == "" &&
				candidate.Name == parameter.Name && candidate.In == parameter.In {
				parameter = candidate
				used[index] = true
				break
			}
		}

		out = append(out, parameter)
	}

	for index, parameter := range own {
		if !used[index] {
			out = append(out, parameter)
		}
	}

	return out
}

// extractBodyParameter removes the Swagger 2.0 `in: body` parameter and returns it as a request body.
func extractBodyParameter(parameters []Parameter) ([]Parameter, *RequestBody) {
	var body *RequestBody
	out := parameters[:0:0]
	for _, parameter := range parameters {
		if parameter.In == InBody && body == nil {
			body = &RequestBody{Pointer: parameter.Pointer, Schema: parameter.Schema}
			continue
		}

		out = append(out, parameter)
	}

	return out, body
}

// decodeRequestBody decodes an OAS 3.x request body.
func decodeRequestBody(fields yamlnode.Mapping, pointer string) (*RequestBody, error) {
	node, ok := fields.Get("requestBody")
	if !ok {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s must be an object", ErrDocumentShape, pointer)
	}

	body := yamlnode.New(node)
	if ref := body.Scalar("$ref"); ref != "" {
		return &RequestBody{Ref: ref, Pointer: pointer}, nil
	}

	out := &RequestBody{Pointer: pointer}
	if schemaNode, media, ok := jsonMediaSchema(body); ok {
		out.Pointer = yamlnode.AppendPointer(yamlnode.AppendPointer(yamlnode.AppendPointer(pointer, "content"), media), "schema")
		out.Schema = schemats.DecodeNode(schemaNode)
	}

	return out, nil
}

// decodeResponses decodes the `responses` map in document order.
func decodeResponses(fields yamlnode.Mapping, pointer string, swagger bool) ([]Response, error) {
	responses, ok, err := mapping(fields, "responses", pointer)
	if err != nil || !ok {
		return nil, err
	}

	out := make([]Response, 0, responses.Len())
	for _, status := range responses.Keys() {
		responsePointer := yamlnode.AppendPointer(pointer, status)
		node, ok := responses.Get(status)
		if !ok || node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s must be an object", ErrDocumentShape, responsePointer)
		}

		response := yamlnode.New(node)
		item := Response{
			Status:      status,
			Description: response.Scalar("description"),
			Ref:         response.Scalar("$ref"),
			Pointer:     responsePointer,
		}

		if item.Ref == "" {
			if swagger {
				if schemaNode, ok := response.Get("schema"); ok {
					item.Pointer = yamlnode.AppendPointer(responsePointer, "schema")
					item.Schema = schemats.DecodeNode(schemaNode)
				}
			} else if schemaNode, media, ok := jsonMediaSchema(response); ok {
				item.Pointer = yamlnode.AppendPointer(yamlnode.AppendPointer(yamlnode.AppendPointer(responsePointer, "content"), media), "schema")
				item.Schema = schemats.DecodeNode(schemaNode)
			}
		}

		out = append(out, item)
	}

	return out, nil
}

// jsonMediaSchema selects the schema of the JSON media type in a `content` map.
// `application/json` wins; otherwise the first JSON-like media type is used.
func jsonMediaSchema(fields yamlnode.Mapping) (*yaml.Node, string, bool) {
	node, ok := fields.Get("content")
	if !ok || node.Kind != yaml.MappingNode {
		return nil, "", false
	}

	content := yamlnode.New(node)
	media := ""
	if content.Has("application/json") {
		media = "application/json"
	} else {
		for _, candidate := range content.Keys() {
			if isJSONMediaType(candidate) {
				media = candidate
				break
			}
		}
	}

	if media == "" {
		return nil, "", false
	}

	mediaNode, ok := content.Get(media)
	if !ok || mediaNode.Kind != yaml.MappingNode {
		return nil, "", false
	}

	schemaNode, ok := yamlnode.New(mediaNode).Get("schema")
	return schemaNode, media, ok
}

// isJSONMediaType reports whether a media type carries JSON.
func isJSONMediaType(media string) bool {
	media = strings.ToLower(strings.TrimSpace(media))
	if index := strings.IndexByte(media, ';'); index >= 0 {
		media = strings.TrimSpace(media[:index])
	}

	_, subtype, ok := strings.Cut(media, "/")
	if !ok {
		return false
	}

	return subtype == "json" || strings.HasSuffix(subtype, "+json")
}
