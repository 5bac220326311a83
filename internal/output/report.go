package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// GenerateReport resolves the named formatter and writes its output to a
// timestamped file in the working directory.
func GenerateReport(projection *domain.Projection, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return UnsupportedFormatError(format)
	}
	_, err := WriteFormatted(f, projection, extensionFor(f.Name()))
	return err
}

// UnsupportedFormatError builds the descriptive error listing the available
// formats and aliases.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// extensionFor maps a canonical formatter name to its file extension.
func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json":
		return "json"
	case name == "html":
		return "html"
	default:
		return "txt"
	}
}

// SaveConfiguration writes a configuration back out as YAML, used by the
// example-config scaffolding.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
