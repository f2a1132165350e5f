// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

/*
Package openapi converts OpenAPI 3.x and Swagger 2.0 documents into TypeScript declarations.

Every named component becomes one declaration. Every operation produces up to four
kinds of declarations named after the method and path: `<Op>Query` and `<Op>Path`
from parameters, `<Op>Body` from the JSON request body and `<Op>Response` per JSON
response. References to components are kept as type names and are never resolved.

Convert a document and print the JSON report:

	out, err := openapi.OpenAPIToTypes(data, schemats.Options{})
	if err != nil {
		var pathErr *openapi.PathError
		if !errors.As(err, &pathErr) {
			return err
		}
		// out still holds every path that converted
	}

	report, err := out.JSON()
	if err != nil {
		return err
	}

	fmt.Println(string(report))

Render one TypeScript module:

	module, err := out.TypeScript(openapi.BundleOptions{Source: "petstore.yaml"})
	if err != nil {
		return err
	}

	fmt.Print(module)
*/
package openapi
