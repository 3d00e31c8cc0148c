package nodepool

import "gopkg.in/yaml.v3"

// CatalogFieldUpgradeOptions is the catalog key of the upgrade options block.
const CatalogFieldUpgradeOptions = "upgrade_options"

// catalogStringFields are catalog keys whose values are free text.
var catalogStringFields = map[string]bool{
	CatalogFieldDescription: true,
}

// KeepSourceStrings marks the text fields of every upgrade_options mapping
// under node as strings, so that unquoted values such as 2023-01-01 or 1.50
// decode with their source text instead of a resolved date or number.
func KeepSourceStrings(node *yaml.Node) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			KeepSourceStrings(child)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == CatalogFieldUpgradeOptions && value.Kind == yaml.MappingNode {
				node.Content[i+1] = withSourceStrings(value)
				continue
			}
			KeepSourceStrings(value)
		}
	}
}

// withSourceStrings returns a copy of an upgrade_options mapping whose text
// fields are tagged as strings. The input node is left untouched.
func withSourceStrings(mapping *yaml.Node) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return mapping
	}
	out := *mapping
	out.Content = make([]*yaml.Node, len(mapping.Content))
	copy(out.Content, mapping.Content)
	for i := 0; i+1 < len(out.Content); i += 2 {
		key, value := out.Content[i], out.Content[i+1]
		if !catalogStringFields[key.Value] || value.Kind != yaml.ScalarNode || value.ShortTag() == "!!null" {
			continue
		}
		retagged := *value
		retagged.Tag = "!!str"
		out.Content[i+1] = &retagged
	}
	return &out
}

// decodeCatalogNode decodes an upgrade_options node, or a document holding
// one, into a catalog payload. An empty document or null node yields nil.
func decodeCatalogNode(node *yaml.Node) (map[string]any, error) {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return nil, nil
	}

	var payload map[string]any
	if err := withSourceStrings(node).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
