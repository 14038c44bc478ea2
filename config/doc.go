// Package config loads the recognised options of spec §6.4 from a YAML
// file (gopkg.in/yaml.v3), with defaults matching the constructor's.
package config
