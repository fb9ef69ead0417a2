package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/report.yaml
var defaultReportData []byte

// Report controls what sysargv prints and when.
type Report struct {
	ArgumentsLabel string `json:"arguments_label" validate:"required"`
	MaximumLabel   string `json:"maximum_label" validate:"required"`
	ProgramLabel   string `json:"program_label" validate:"required"`

	// MinLength is the shortest argument vector a report is printed for.
	MinLength int `json:"min_length" validate:"gte=1"`
	// ComparePositions are the vector positions the maximum is taken over.
	ComparePositions []int `json:"compare_positions" validate:"required,min=1,dive,gte=0"`
	// Strict fails before any output if a compared position is missing.
	Strict bool `json:"strict"`
}

// Validate the report for basic semantic errors.
func (r *Report) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(r)
}

// Default returns the built-in report layout.
func Default() *Report {
	out, err := Parse(defaultReportData)
	if err != nil {
		// The embedded layout is tested, so this never happens at runtime.
		panic(err)
	}
	return out
}

// Parse decodes and validates a YAML report layout. Unknown fields are
// rejected.
func Parse(data []byte) (*Report, error) {
	var out Report
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
