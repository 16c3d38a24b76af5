package output

import (
	"encoding/json"

	"github.com/drawplan/drawplan/internal/domain"
)

// JSONFormatter serializes the year-by-year plan as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results []domain.YearResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
