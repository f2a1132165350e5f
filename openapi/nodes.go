// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"fmt"

	"github.com/woozymasta/schemats/internal/yamlnode"
	"gopkg.in/yaml.v3"
)

// mapping returns a nested mapping field. A present field of another node type is a
// shape error reported with pointer.
func mapping(fields yamlnode.Mapping, key, pointer string) (yamlnode.Mapping, bool, error) {
	node, ok := fields.Get(key)
	if !ok || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return yamlnode.Mapping{}, false, nil
	}

	if node.Kind != yaml.MappingNode {
		return yamlnode.Mapping{}, false, fmt.Errorf("%w: %s must be an object", ErrDocumentShape, pointer)
	}

	return yamlnode.New(node), true, nil
}
