package core

import (
	"path/filepath"
	"strings"
)

// StdinName names standard input as a source.
const StdinName = "-"

// ResolveFormat picks the format for source. An explicit format other than
// "auto" wins, then the file extension, then fallback, then json.
func ResolveFormat(source string, explicit string, fallback string) string {
	explicit = strings.ToLower(strings.TrimSpace(explicit))
	if explicit != "" && explicit != "auto" {
		return explicit
	}
	if source != StdinName {
		switch strings.ToLower(filepath.Ext(source)) {
		case ".json", ".ndjson":
			return "json"
		case ".yaml", ".yml":
			return "yaml"
		case ".toml":
			return "toml"
		}
	}
	if fallback != "" {
		return fallback
	}
	return "json"
}

// SourceName returns the name printed in the dump header for source.
func SourceName(source string) string {
	if source == StdinName || source == "" {
		return "stdin"
	}
	return source
}
