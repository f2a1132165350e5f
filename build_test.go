// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConvertKeepsPropertyOrderAndRequired(t *testing.T) {
	t.Parallel()

	schema := Object([]Property{
		{Name: "zeta", Schema: &Schema{Kind: KindString}},
		{Name: "alpha", Schema: &Schema{Kind: KindInteger}},
		{Name: "mid", Schema: &Schema{Kind: KindBoolean}},
	}, "mid", "ghost")

	declaration := Convert("Ordered", schema, Options{})
	if len(declaration.Expressions) != 1 {
		t.Fatalf("expressions = %d, want 1", len(declaration.Expressions))
	}

	object, ok := declaration.Expressions[0].Terms[0].(ObjectTerm)
	if !ok {
		t.Fatalf("term is %T, want ObjectTerm", declaration.Expressions[0].Terms[0])
	}

	var names []string
	for _, property := range object.Properties {
		names = append(names, property.Name)
		if property.Required != (property.Name == "mid") {
			t.Fatalf("property %s required = %v", property.Name, property.Required)
		}
	}

	if got := strings.Join(names, ","); got != "zeta,alpha,mid" {
		t.Fatalf("property order = %q", got)
	}
}

func TestConvertIntegerMapsToNumber(t *testing.T) {
	t.Parallel()

	got := SchemaToType("Count", &Schema{Kind: KindInteger, Enum: []any{int64(1), 2.0, nil, 2.5}}, Options{})
	if got != "export type Count = 1 | 2 | 2.5;" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertNullableAppendsOncePerApplication(t *testing.T) {
	t.Parallel()

	inner := &Schema{Kind: KindString, Nullable: true}
	outer := OneOf(inner, &Schema{Kind: KindNull})
	outer.Nullable = true

	got := SchemaToType("Twice", outer, Options{})
	if got != "export type Twice = string | null | null | null;" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertNullableArrayContext(t *testing.T) {
	t.Parallel()

	items := &Schema{Kind: KindNumber, Nullable: true}

	got := SchemaToType("Scores", ArrayOf(items), Options{})
	if got != "export type Scores = (number | null)[];" {
		t.Fatalf("nullable items: got %q", got)
	}

	array := ArrayOf(&Schema{Kind: KindNumber})
	array.Nullable = true

	got = SchemaToType("Scores", array, Options{})
	if got != "export type Scores = number[] | null;" {
		t.Fatalf("nullable array: got %q", got)
	}

	both := ArrayOf(items)
	both.Nullable = true

	got = SchemaToType("Scores", both, Options{})
	if got != "export type Scores = number[] | null[] | null;" {
		t.Fatalf("nullable items and array: got %q", got)
	}
}

func TestConvertReferenceName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#/components/schemas/Pet":   "Pet",
		"#/definitions/Pet~1Owner":   "Pet/Owner",
		"#/definitions/Tilde~0Value": "Tilde~Value",
		"External":                   "External",
	}

	for ref, want := range cases {
		declaration := Convert("Alias", RefTo(ref), Options{})
		term, ok := declaration.Expressions[0].Terms[0].(ReferenceTerm)
		if !ok {
			t.Fatalf("term is %T, want ReferenceTerm", declaration.Expressions[0].Terms[0])
		}

		if term.Name != want {
			t.Fatalf("referenceName(%q) = %q, want %q", ref, term.Name, want)
		}
	}
}

func TestConvertGroupsMixedOperators(t *testing.T) {
	t.Parallel()

	schema := AllOf(
		RefTo("#/components/schemas/Base"),
		OneOf(RefTo("#/components/schemas/Cat"), RefTo("#/components/schemas/Dog")),
		AllOf(RefTo("#/components/schemas/Tagged")),
	)

	declaration := Convert("Pet", schema, Options{})
	terms := declaration.Expressions[0].Terms
	if len(terms) != 3 {
		t.Fatalf("terms = %d, want 3 (Base, group, Tagged)", len(terms))
	}

	if _, ok := terms[1].(GroupTerm); !ok {
		t.Fatalf("second term is %T, want GroupTerm", terms[1])
	}

	if got := declaration.String(); got != "export type Pet = Base & (Cat | Dog) & Tagged;" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertUnknownReportsDiagnostic(t *testing.T) {
	t.Parallel()

	var diagnostics []Diagnostic
	opt := Options{
		Diagnostics: func(d Diagnostic) {
			diagnostics = append(diagnostics, d)
		},
	}

	schema := Object([]Property{
		{Name: "odd/key", Schema: &Schema{Kind: KindUnknown, Keywords: []string{"type", "anyOf"}}},
		{Name: "free", Schema: &Schema{Kind: KindAny}},
	})

	got := SchemaToType("Odd", schema, opt)
	assertContains(t, got, `"odd/key"?: any;`)
	assertContains(t, got, "free?: any;")

	if len(diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1: %+v", len(diagnostics), diagnostics)
	}

	d := diagnostics[0]
	if d.Declaration != "Odd" || d.Pointer != "/properties/odd~1key" {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}

	if strings.Join(d.Keywords, ",") != "type,anyOf" {
		t.Fatalf("keywords = %v", d.Keywords)
	}
}

func TestConvertEmptyCompositionIsAny(t *testing.T) {
	t.Parallel()

	reported := 0
	got := SchemaToType("Nothing", OneOf(), Options{
		Diagnostics: func(Diagnostic) { reported++ },
	})

	if got != "export type Nothing = any;" {
		t.Fatalf("got %q", got)
	}

	if reported != 1 {
		t.Fatalf("reported = %d, want 1", reported)
	}
}

func TestConvertDoesNotMutateSchema(t *testing.T) {
	t.Parallel()

	items := &Schema{Kind: KindString, Enum: []any{"a"}, Nullable: true}
	schema := Object([]Property{{Name: "list", Schema: ArrayOf(items)}}, "list")

	first := SchemaToType("Stable", schema, Options{})
	second := SchemaToType("Stable", schema, Options{})
	if first != second {
		t.Fatalf("repeated conversion differs:\n%s\n%s", first, second)
	}

	if len(items.Enum) != 1 || !items.Nullable {
		t.Fatalf("schema mutated: %+v", items)
	}
}

func TestLogDiagnosticsWritesWarning(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	logger := slog.New(slog.NewTextHandler(&out, nil))

	SchemaToType("Logged", &Schema{Kind: KindUnknown, Keywords: []string{"not"}}, Options{
		Diagnostics: WithPointerPrefix(LogDiagnostics(logger), "/components/schemas/Logged/"),
	})

	text := out.String()
	assertContains(t, text, "level=WARN")
	assertContains(t, text, "declaration=Logged")
	assertContains(t, text, "pointer=/components/schemas/Logged")
	assertContains(t, text, "keywords=not")
	assertNotContains(t, text, "pointer=/components/schemas/Logged/ ")
}

func TestWithPointerPrefixNilHandler(t *testing.T) {
	t.Parallel()

	if WithPointerPrefix(nil, "/x") != nil {
		t.Fatal("expected nil handler")
	}
}
