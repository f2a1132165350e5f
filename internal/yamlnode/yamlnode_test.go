// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package yamlnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseMapping(t *testing.T, text string) Mapping {
	t.Helper()

	var document yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &document))
	require.NotEmpty(t, document.Content)

	return New(document.Content[0])
}

func TestNewKeepsOrderAndLaterDuplicates(t *testing.T) {
	t.Parallel()

	fields := parseMapping(t, "zeta: 1\nalpha: 2\nzeta: 3\n")

	assert.Equal(t, []string{"zeta", "alpha"}, fields.Keys())
	assert.Equal(t, 2, fields.Len())
	assert.Equal(t, "3", fields.Scalar("zeta"))
}

func TestNewResolvesAliases(t *testing.T) {
	t.Parallel()

	fields := parseMapping(t, "base: &shared {type: string}\ncopy: *shared\n")

	node, ok := fields.Get("copy")
	require.True(t, ok)
	assert.Equal(t, yaml.MappingNode, node.Kind)
	assert.Equal(t, "string", New(node).Scalar("type"))
}

func TestNewSkipsComplexKeys(t *testing.T) {
	t.Parallel()

	fields := parseMapping(t, "? [a, b]\n: pair\nplain: ok\n")

	assert.Equal(t, []string{"plain"}, fields.Keys())
}

func TestScalarAccessors(t *testing.T) {
	t.Parallel()

	fields := parseMapping(t, "name: pet\nempty: null\nnested: {a: 1}\nflag: true\nword: yes\nlist: [a, {b: 1}, c]\n")

	assert.Equal(t, "pet", fields.Scalar("name"))
	assert.Empty(t, fields.Scalar("empty"))
	assert.Empty(t, fields.Scalar("nested"))
	assert.Empty(t, fields.Scalar("missing"))
	assert.True(t, fields.Bool("flag"))
	assert.False(t, fields.Bool("word"))
	assert.Equal(t, []string{"a", "c"}, fields.StringList("list"))
	assert.Nil(t, fields.StringList("name"))
}

func TestPresentKeepsArgumentOrder(t *testing.T) {
	t.Parallel()

	fields := parseMapping(t, "oneOf: []\nallOf: []\nempty: null\n")

	assert.Equal(t, []string{"allOf", "oneOf", "empty"}, fields.Present("allOf", "anyOf", "oneOf", "empty"))
	assert.True(t, fields.Has("empty"))
	assert.False(t, fields.Has("anyOf"))
}

func TestZeroMapping(t *testing.T) {
	t.Parallel()

	fields := New(nil)

	_, ok := fields.Get("any")
	assert.False(t, ok)
	assert.Empty(t, fields.Keys())
}

func TestAppendPointerEscapesTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/paths/~1pets~1{id}", AppendPointer("/paths", "/pets/{id}"))
	assert.Equal(t, "/a~0b", AppendPointer("", "a~b"))
}
