// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var updateGolden = flag.Bool("update", false, "update golden files")

// goldenCase maps one schema fixture to its declaration name and options.
type goldenCase struct {
	fixture string
	name    string
	opt     Options
}

var convertGoldenCases = []goldenCase{
	{fixture: "empty_object.json", name: "EmptyObject"},
	{fixture: "basic_object.json", name: "Book"},
	{fixture: "object_with_array.json", name: "BookMetadata"},
	{fixture: "object_with_required_properties.json", name: "NewBook"},
	{fixture: "object_with_nullable_properties.json", name: "Review"},
	{fixture: "object_with_string_enum.json", name: "Post"},
	{fixture: "object_with_number_enum.json", name: "Task"},
	{fixture: "object_with_integer_enum.json", name: "Grade"},
	{fixture: "object_with_boolean_enum.json", name: "Config"},
	{fixture: "object_with_invalid_property.json", name: "InvalidObject"},
	{fixture: "object_with_mixed_enums_oneof.json", name: "MixedEnum"},
	{fixture: "object_with_mixed_enums_anyof.json", name: "MixedEnum"},
	{fixture: "object_with_mixed_enums_allof.json", name: "MixedEnumAllOf"},
	{fixture: "object_with_oneof.json", name: "SearchCriteria"},
	{fixture: "object_with_allof.json", name: "BookWithMetadata"},
	{fixture: "object_with_anyof.json", name: "UserInfo"},
	{fixture: "array_with_oneof.json", name: "MixedArray"},
	{fixture: "array_with_allof.json", name: "CombinedArray"},
	{fixture: "array_with_anyof.json", name: "MixedAnyArray"},
	{fixture: "object_with_anyof_array_primitive_object.json", name: "MixedValue"},
	{fixture: "object_with_oneof_array_primitive_object.json", name: "MixedValue"},
	{fixture: "object_with_nested_objects.json", name: "Location"},
	{fixture: "object_with_nested_arrays.json", name: "Product"},
	{fixture: "object_with_complex_nested_arrays.json", name: "Organization"},
	{fixture: "nested_object_with_array_oneof.json", name: "DeepArray"},
	{fixture: "nested_object_with_array_allof.json", name: "DeepArrayAllOf"},
	{fixture: "nested_object_with_array_anyof.json", name: "DeepArrayAny"},
	{fixture: "object_with_deep_array_refs.json", name: "DeepRefArray"},
	{fixture: "object_with_property_descriptions.json", name: "ComplexObject"},
	{fixture: "object_with_deprecated_properties.json", name: "ObjectWithDeprecated"},
	{fixture: "schema_with_any_types.json", name: "SchemaWithAny"},
	{fixture: "schema_with_unknown_types.json", name: "SchemaWithUnknown", opt: Options{PreferUnknownOverAny: true}},
	{fixture: "prefer_interface_simple_object.json", name: "Person", opt: Options{PreferInterfaceOverType: true}},
	{fixture: "prefer_interface_union_type.json", name: "UnionType", opt: Options{PreferInterfaceOverType: true}},
	{fixture: "prefer_interface_nested_object.json", name: "UserConfig", opt: Options{PreferInterfaceOverType: true}},
	{fixture: "mixed_operators.yaml", name: "Ownership"},
	{fixture: "annotated_keys.yaml", name: "Annotated"},
}

func TestRenderGoldenFixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range convertGoldenCases {
		tc := tc
		t.Run(tc.fixture, func(t *testing.T) {
			t.Parallel()

			schemaPath := filepath.Join("testdata", "convert", tc.fixture)
			goldenPath := strings.TrimSuffix(schemaPath, filepath.Ext(schemaPath)) + ".golden.ts"

			got, err := RenderFile(tc.name, schemaPath, tc.opt)
			if err != nil {
				t.Fatalf("RenderFile(%s): %v", tc.fixture, err)
			}

			got += "\n"
			if *updateGolden {
				if err := os.WriteFile(goldenPath, []byte(got), 0o600); err != nil {
					t.Fatalf("write golden: %v", err)
				}
			}

			wantBytes, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("read golden: %v", err)
			}

			if want := string(wantBytes); got != want {
				t.Fatalf("golden mismatch for %s; run `go test . -run TestRenderGolden -update`\n--- got:\n%s--- want:\n%s", tc.fixture, got, want)
			}
		})
	}
}

func TestRenderEmptyDeclaration(t *testing.T) {
	t.Parallel()

	if got := (Declaration{Name: "Nothing"}).String(); got != "" {
		t.Fatalf("empty declaration = %q, want empty string", got)
	}
}

func TestRenderInterfaceRequiresPlainObject(t *testing.T) {
	t.Parallel()

	opt := Options{PreferInterfaceOverType: true}
	item := Object([]Property{{Name: "id", Schema: &Schema{Kind: KindString}}})

	got := SchemaToType("Items", ArrayOf(item), opt)
	want := "export type Items = {\n  id?: string;\n}[];"
	if got != want {
		t.Fatalf("array object = %q, want %q", got, want)
	}

	nullable := Object([]Property{{Name: "id", Schema: &Schema{Kind: KindString}}})
	nullable.Nullable = true
	got = SchemaToType("Maybe", nullable, opt)
	want = "export type Maybe = {\n  id?: string;\n} | null;"
	if got != want {
		t.Fatalf("nullable object = %q, want %q", got, want)
	}

	got = SchemaToType("Empty", Object(nil), opt)
	if got != "export interface Empty {};" {
		t.Fatalf("empty interface = %q", got)
	}
}

func TestRenderEmptyObjectArray(t *testing.T) {
	t.Parallel()

	schema := Object([]Property{
		{Name: "bags", Schema: ArrayOf(Object(nil))},
		{Name: "mixed", Schema: ArrayOf(OneOf(Object(nil), &Schema{Kind: KindString}))},
	})

	got := SchemaToType("Bags", schema, Options{})
	want := "export type Bags = {\n  bags?: {}[];\n  mixed?: ({} | string)[];\n};"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderArrayWithoutItems(t *testing.T) {
	t.Parallel()

	schema := Object([]Property{{Name: "values", Schema: &Schema{Kind: KindArray}}})

	got := SchemaToType("Loose", schema, Options{PreferUnknownOverAny: true})
	assertContains(t, got, "values?: unknown[];")
}

func TestRenderCommentWrapWidth(t *testing.T) {
	t.Parallel()

	schema := Object([]Property{{
		Name: "mode",
		Schema: &Schema{
			Kind:        KindString,
			Description: "Selects how the worker treats incoming records",
			Deprecated:  true,
		},
	}})

	got := SchemaToType("Settings", schema, Options{CommentWrapWidth: 24})
	want := "export type Settings = {\n" +
		"  /**\n" +
		"   * @deprecated Selects how\n" +
		"   * the worker treats\n" +
		"   * incoming records\n" +
		"   */\n" +
		"  mode?: string;\n" +
		"};"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEscapesStringLiterals(t *testing.T) {
	t.Parallel()

	schema := &Schema{Kind: KindString, Enum: []any{"tab\there", "line\nbreak", "bell\a"}}

	got := SchemaToType("Escaped", schema, Options{})
	want := `export type Escaped = "tab\there" | "line\nbreak" | "bell\u0007";`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderSingleTermGroup(t *testing.T) {
	t.Parallel()

	schema := AllOf(RefTo("#/components/schemas/Base"), OneOf(RefTo("#/components/schemas/Only")))

	got := SchemaToType("Single", schema, Options{})
	if got != "export type Single = Base & Only;" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderArrayGroupSharesSuffix(t *testing.T) {
	t.Parallel()

	a := RefTo("#/components/schemas/A")
	b := RefTo("#/components/schemas/B")

	tests := []struct {
		name   string
		schema *Schema
		want   string
	}{
		{
			name:   "Standalone",
			schema: ArrayOf(AllOf(a, b)),
			want:   "export type Standalone = (A & B)[];",
		},
		{
			name:   "UnionMember",
			schema: OneOf(&Schema{Kind: KindString}, ArrayOf(AllOf(a, b))),
			want:   "export type UnionMember = string | (A & B)[];",
		},
		{
			name:   "IntersectionMember",
			schema: AllOf(a, ArrayOf(OneOf(a, b))),
			want:   "export type IntersectionMember = A & (A | B)[];",
		},
		{
			name:   "InsideExpressionArray",
			schema: ArrayOf(AllOf(a, OneOf(a, b))),
			want:   "export type InsideExpressionArray = (A & (A | B))[];",
		},
	}

	for _, tc := range tests {
		if got := SchemaToType(tc.name, tc.schema, Options{}); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

func TestRenderRejectsEmptyName(t *testing.T) {
	t.Parallel()

	_, err := Render(" ", []byte(`{"type":"string"}`), Options{})
	if !errors.Is(err, ErrEmptyDeclarationName) {
		t.Fatalf("expected ErrEmptyDeclarationName, got %v", err)
	}
}

func TestRenderFileMissing(t *testing.T) {
	t.Parallel()

	_, err := RenderFile("Missing", filepath.Join("testdata", "does-not-exist.json"), Options{})
	if !errors.Is(err, ErrReadSchemaFile) {
		t.Fatalf("expected ErrReadSchemaFile, got %v", err)
	}
}

func TestIsIdentifier(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"name":         true,
		"_private":     true,
		"$ref":         true,
		"camelCase2":   true,
		"":             false,
		"2fa":          false,
		"content-type": false,
		"with space":   false,
	}

	for input, want := range cases {
		if got := isIdentifier(input); got != want {
			t.Fatalf("isIdentifier(%q) = %v, want %v", input, got, want)
		}
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
