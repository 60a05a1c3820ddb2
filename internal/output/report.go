package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested format.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// fileExtensions maps canonical formatter names to file extensions.
var fileExtensions = map[string]string{
	"console":      "txt",
	"console-lite": "txt",
	"csv":          "csv",
	"detailed-csv": "csv",
	"html":         "html",
	"json":         "json",
	"pdf":          "pdf",
}

// GenerateReport renders results with the named formatter and writes the
// report into dir. The pseudo-format "all" writes the verbose console report
// plus the detailed CSV. It returns the paths written.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			path, err := WriteFormatted(f, results, dir, fileExtensions[f.Name()])
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	ext, ok := fileExtensions[f.Name()]
	if !ok {
		ext = "txt"
	}
	path, err := WriteFormatted(f, results, dir, ext)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
