// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

/*
Package schemats converts JSON Schema and OpenAPI schema objects into TypeScript declarations.

Conversion has two stages. A builder translates a Schema tree into Expressions made of
object, primitive, reference and group terms joined by union or intersection operators.
A renderer prints those expressions as one `export type` or `export interface`
declaration. Both stages are pure and never fail: shapes that cannot be modeled render
as `any` (or `unknown`) and are reported through Options.Diagnostics.

Render from schema bytes (JSON or YAML):

	ts, err := schemats.Render("Config", schemaBytes, schemats.Options{
		PreferInterfaceOverType: true,
		CommentWrapWidth:        80,
	})
	if err != nil {
		return err
	}

	fmt.Println(ts)

Render directly from file:

	ts, err := schemats.RenderFile("Config", "schema.yaml", schemats.Options{})
	if err != nil {
		return err
	}

	fmt.Println(ts)

Build a schema in code and inspect the intermediate declaration:

	schema := schemats.Object([]schemats.Property{
		{Name: "id", Schema: &schemats.Schema{Kind: schemats.KindString}},
		{Name: "tags", Schema: schemats.ArrayOf(&schemats.Schema{Kind: schemats.KindString})},
	}, "id")

	declaration := schemats.Convert("Item", schema, schemats.Options{})
	fmt.Println(len(declaration.Expressions), declaration.String())

Log diagnostics with slog:

	opt := schemats.Options{
		Diagnostics: schemats.LogDiagnostics(slog.Default()),
	}

	fmt.Println(schemats.SchemaToType("Odd", schema, opt))

OpenAPI and Swagger documents are handled by the openapi subpackage.
*/
package schemats
