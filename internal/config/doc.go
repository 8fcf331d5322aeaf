// Package config loads and validates workbench configuration from YAML.
//
// Loading happens in three layers: Load parses the file and expands
// ${VAR} environment references, LoadWithDefaults fills unset optional
// fields, and LoadAndValidate additionally rejects invalid values.
// Binaries should use LoadAndValidate.
package config
