package output

import (
	"strings"

	"github.com/drawplan/drawplan/internal/domain"
)

// Formatter renders a simulated plan as a byte slice. Implementations
// should be pure: no side effects besides deterministic formatting.
type Formatter interface {
	Format(results []domain.YearResult) ([]byte, error)
	// Name returns the identifier used to select the formatter.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// NormalizeFormatName maps user-supplied format names onto registered ones.
func NormalizeFormatName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table", "text", "console":
		return "console"
	case "csv":
		return "csv"
	case "json":
		return "json"
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}

// GetFormatterByName fetches a registered formatter, or nil if none match.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}
