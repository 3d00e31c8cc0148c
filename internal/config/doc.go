// Package config loads the node pool catalog: the locally authored YAML
// document that declares a cluster's node pools and their management
// settings.
//
// Catalog entries use lower_snake_case keys. Nested records such as the
// node pool upgrade options are converted by their own coercion hooks while
// the document is decoded, so a loaded [Config] only carries parsed values.
package config
