// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"os"
	"path/filepath"
	"testing"
)

// benchmarkFixture is the deepest nested schema in the conversion fixtures.
var benchmarkFixture = filepath.Join("testdata", "convert", "object_with_complex_nested_arrays.json")

// BenchmarkParseSchema measures schema decoding and classification cost.
func BenchmarkParseSchema(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, benchmarkFixture)

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseSchema(schemaBytes); err != nil {
			b.Fatalf("ParseSchema: %v", err)
		}
	}
}

// BenchmarkConvert measures expression building for a decoded schema.
func BenchmarkConvert(b *testing.B) {
	schema := parseBenchmarkSchema(b)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Convert("Organization", schema, Options{})
	}
}

// BenchmarkDeclarationString measures rendering of a built declaration.
func BenchmarkDeclarationString(b *testing.B) {
	declaration := Convert("Organization", parseBenchmarkSchema(b), Options{})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = declaration.String()
	}
}

// BenchmarkRender measures full in-memory decode, build and render flow.
func BenchmarkRender(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, benchmarkFixture)

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := Render("Organization", schemaBytes, Options{}); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// parseBenchmarkSchema loads and decodes the benchmark fixture.
func parseBenchmarkSchema(b *testing.B) *Schema {
	b.Helper()

	schema, err := ParseSchema(readBenchmarkFile(b, benchmarkFixture))
	if err != nil {
		b.Fatalf("ParseSchema: %v", err)
	}

	return schema
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
