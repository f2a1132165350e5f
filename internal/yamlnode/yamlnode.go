// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

// Package yamlnode provides ordered access to decoded YAML mappings and JSON pointer helpers.
package yamlnode

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping is an ordered view over a YAML mapping.
type Mapping struct {
	keys   []string
	values map[string]*yaml.Node
}

// New indexes mapping keys while keeping their order. Later duplicates win.
// Non-scalar keys are skipped.
func New(node *yaml.Node) Mapping {
	node = ResolveAlias(node)
	if node == nil {
		return Mapping{}
	}

	out := Mapping{
		keys:   make([]string, 0, len(node.Content)/2),
		values: make(map[string]*yaml.Node, len(node.Content)/2),
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		key := ResolveAlias(node.Content[index])
		if key == nil || key.Kind != yaml.ScalarNode {
			continue
		}

		if _, exists := out.values[key.Value]; !exists {
			out.keys = append(out.keys, key.Value)
		}

		out.values[key.Value] = ResolveAlias(node.Content[index+1])
	}

	return out
}

// Keys returns mapping keys in document order.
func (m Mapping) Keys() []string {
	return m.keys
}

// Len returns the number of distinct keys.
func (m Mapping) Len() int {
	return len(m.keys)
}

// Get returns one field value with aliases resolved.
func (m Mapping) Get(key string) (*yaml.Node, bool) {
	node, ok := m.values[key]
	return node, ok && node != nil
}

// Has reports whether key exists.
func (m Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Scalar returns a scalar field text or empty string.
func (m Mapping) Scalar(key string) string {
	node, ok := m.Get(key)
	if !ok || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}

	return node.Value
}

// Bool returns a boolean field value; anything else is false.
func (m Mapping) Bool(key string) bool {
	value, err := strconv.ParseBool(m.Scalar(key))
	return err == nil && value
}

// StringList returns the scalar items of a sequence field.
func (m Mapping) StringList(key string) []string {
	node, ok := m.Get(key)
	if !ok || node.Kind != yaml.SequenceNode {
		return nil
	}

	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		item = ResolveAlias(item)
		if item != nil && item.Kind == yaml.ScalarNode {
			out = append(out, item.Value)
		}
	}

	return out
}

// Present returns which of keys exist, in argument order.
func (m Mapping) Present(keys ...string) []string {
	var out []string
	for _, key := range keys {
		if m.Has(key) {
			out = append(out, key)
		}
	}

	return out
}

// ResolveAlias follows YAML alias nodes to their anchors.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	return node
}

// AppendPointer appends one escaped JSON pointer token.
func AppendPointer(base, token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return base + "/" + token
}
