// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"errors"

	"github.com/woozymasta/schemats"
)

// OpenAPIToTypes decodes a document and converts it in one call.
func OpenAPIToTypes(data []byte, opt schemats.Options) (*Output, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	return Convert(doc, opt)
}

// Convert renders every named component and every operation of doc.
//
// Path items that cannot be converted are skipped; their *PathError values are joined
// into the returned error together with the partial output.
func Convert(doc *Document, opt schemats.Options) (*Output, error) {
	out := &Output{
		Title:      doc.Title,
		Paths:      make([]PathOutput, 0, len(doc.Paths)),
		Components: make([]ComponentOutput, 0, len(doc.Components)),
	}

	for _, component := range doc.Components {
		out.Components = append(out.Components, ComponentOutput{
			Name:   component.Name,
			TsType: schemats.SchemaToType(component.Name, component.Schema, withPointer(opt, component.Pointer)),
		})
	}

	var errs []error
	for _, item := range doc.Paths {
		paths, err := convertPathItem(item, opt)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		out.Paths = append(out.Paths, paths...)
	}

	return out, errors.Join(errs...)
}

// convertPathItem converts every operation of one path item. Any unsupported
// reference fails the whole item.
func convertPathItem(item PathItem, opt schemats.Options) ([]PathOutput, error) {
	if item.Ref != "" {
		return nil, &PathError{Path: item.Path, Ref: item.Ref, Err: ErrUnsupportedReference}
	}

	out := make([]PathOutput, 0, len(item.Operations))
	for _, operation := range item.Operations {
		converted, err := convertOperation(item.Path, operation, opt)
		if err != nil {
			return nil, err
		}

		out = append(out, converted)
	}

	return out, nil
}

// convertOperation renders the parameter, body and response declarations of one operation.
func convertOperation(path string, operation Operation, opt schemats.Options) (PathOutput, error) {
	name := OperationName(operation.Method, path)
	out := PathOutput{
		Path:        path,
		Method:      operation.Method,
		TypeName:    name,
		OperationID: operation.OperationID,
		Summary:     operation.Summary,
		Description: operation.Description,
		Responses:   make(map[string]ResponseOutput),
	}

	if body := operation.RequestBody; body != nil {
		if body.Ref != "" {
			return PathOutput{}, &PathError{Path: path, Method: operation.Method, Ref: body.Ref, Err: ErrUnsupportedReference}
		}

		if body.Schema != nil {
			out.RequestBody = schemats.SchemaToType(name+SuffixBody, body.Schema, withPointer(opt, body.Pointer))
		}
	}

	for _, response := range operation.Responses {
		if response.Ref != "" {
			return PathOutput{}, &PathError{Path: path, Method: operation.Method, Ref: response.Ref, Err: ErrUnsupportedReference}
		}

		if response.Schema == nil {
			continue
		}

		out.Responses[response.Status] = ResponseOutput{
			Description: response.Description,
			TsType:      schemats.SchemaToType(name+SuffixResponse, response.Schema, withPointer(opt, response.Pointer)),
		}
		out.responseOrder = append(out.responseOrder, response.Status)
	}

	parameters := usableParameters(name, operation.Parameters, opt.Diagnostics)
	if schema := parameterSchema(parameters, InQuery); schema != nil {
		out.QueryTsType = schemats.SchemaToType(name+SuffixQuery, schema, opt)
	}

	if schema := parameterSchema(parameters, InPath); schema != nil {
		out.PathTsType = schemats.SchemaToType(name+SuffixPath, schema, opt)
	}

	return out, nil
}

// usableParameters drops referenced parameters, reporting each one.
func usableParameters(declaration string, parameters []Parameter, diagnostics schemats.DiagnosticHandler) []Parameter {
	out := make([]Parameter, 0, len(parameters))
	for _, parameter := range parameters {
		if parameter.Ref == "" {
			out = append(out, parameter)
			continue
		}

		if diagnostics != nil {
			diagnostics(schemats.Diagnostic{
				Declaration: declaration,
				Pointer:     parameter.Pointer,
				Message:     "parameter reference not supported, parameter skipped",
				Keywords:    []string{"$ref"},
			})
		}
	}

	return out
}

// parameterSchema synthesizes an object schema from parameters of one location.
// It returns nil when the operation has no parameters there.
func parameterSchema(parameters []Parameter, location string) *schemats.Schema {
	var (
		properties []schemats.Property
		required   []string
	)

	for _, parameter := range parameters {
		if parameter.In != location {
			continue
		}

		properties = append(properties, schemats.Property{
			Name:   parameter.Name,
			Schema: parameterPropertySchema(parameter),
		})

		if parameter.Required {
			required = append(required, parameter.Name)
		}
	}

	if len(properties) == 0 {
		return nil
	}

	return schemats.Object(properties, required...)
}

// parameterPropertySchema returns the parameter schema with parameter-level
// description and deprecation copied in when the schema has none.
func parameterPropertySchema(parameter Parameter) *schemats.Schema {
	if parameter.Schema == nil {
		return &schemats.Schema{
			Kind:        schemats.KindAny,
			Description: parameter.Description,
			Deprecated:  parameter.Deprecated,
		}
	}

	needsDescription := parameter.Schema.Description == "" && parameter.Description != ""
	needsDeprecated := !parameter.Schema.Deprecated && parameter.Deprecated
	if !needsDescription && !needsDeprecated {
		return parameter.Schema
	}

	schema := *parameter.Schema
	if needsDescription {
		schema.Description = parameter.Description
	}

	if needsDeprecated {
		schema.Deprecated = true
	}

	return &schema
}

// withPointer scopes diagnostics to a schema location inside the document.
func withPointer(opt schemats.Options, pointer string) schemats.Options {
	opt.Diagnostics = schemats.WithPointerPrefix(opt.Diagnostics, pointer)
	return opt
}
