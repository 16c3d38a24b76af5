package config

import (
	"fmt"
	"os"

	"github.com/drawplan/drawplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles loading plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file. A plan that omits tax_policy
// gets the default base-year parameters for its filing status; everything
// else must be supplied. The returned plan has been validated.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates plan YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(plan.TaxPolicy.Brackets) == 0 {
		plan.TaxPolicy = DefaultTaxPolicy(plan.FilingStatus)
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}
