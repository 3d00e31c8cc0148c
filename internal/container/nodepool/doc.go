// Package nodepool holds the data bindings for the management block of a
// GKE node pool.
//
// [UpgradeOptions] is the canonical record for the node pool's auto-upgrade
// options. It is built either from a provider API response, whose keys are
// camelCase, or from a catalog entry authored in local configuration, whose
// keys are lower_snake_case. Both paths produce the same immutable value;
// only the field naming and the field parsers differ.
//
// Records compare field by field in a fixed order. A field that is unset on
// either side does not take part in the comparison, so a partially specified
// catalog entry is equal to an API response that agrees on the fields it
// does specify.
package nodepool
