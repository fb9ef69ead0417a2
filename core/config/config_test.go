package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinReport(t *testing.T) {
	rawReport := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultReportData, &rawReport))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Report{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawReport[jsonField]; !ok {
			assert.False(t, true, "default report missing field: %q", jsonField)
		}
	}

	for k := range rawReport {
		_, ok := knownFields[k]
		assert.True(t, ok, "default report contains invalid field: %q", k)
	}
}

func TestDefault(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	report := Default()

	assert.Equal(t, &Report{
		ArgumentsLabel:   "Arguments",
		MaximumLabel:     "Maximum number is",
		ProgramLabel:     "argv[0]:",
		MinLength:        2,
		ComparePositions: []int{1, 2, 3},
		Strict:           false,
	}, report)
}

func TestDefaultIsCopy(t *testing.T) {
	first := Default()
	first.ComparePositions[0] = 99
	first.Strict = true

	second := Default()
	assert.Equal(t, 1, second.ComparePositions[0])
	assert.False(t, second.Strict)
}

func TestParse(t *testing.T) {
	valid := `
arguments_label: "Args"
maximum_label: "Max"
program_label: "Prog"
min_length: 1
compare_positions: [0]
strict: true
`

	cases := map[string]struct {
		yaml     string
		badField string
	}{
		"valid": {yaml: valid},
		"unknown field": {
			yaml:     valid + "colour: red\n",
			badField: "colour",
		},
		"missing label": {
			yaml:     strings.Replace(valid, `maximum_label: "Max"`, "", 1),
			badField: "maximum_label",
		},
		"zero min length": {
			yaml:     strings.Replace(valid, "min_length: 1", "min_length: 0", 1),
			badField: "min_length",
		},
		"no positions": {
			yaml:     strings.Replace(valid, "compare_positions: [0]", "compare_positions: []", 1),
			badField: "compare_positions",
		},
		"negative position": {
			yaml:     strings.Replace(valid, "compare_positions: [0]", "compare_positions: [1, -2]", 1),
			badField: "compare_positions[1]",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			report, err := Parse([]byte(tc.yaml))

			if tc.badField == "" {
				require.NoError(t, err)
				assert.Equal(t, "Args", report.ArgumentsLabel)
				assert.True(t, report.Strict)
				return
			}

			require.Error(t, err)
			assert.Nil(t, report)
			assert.Contains(t, err.Error(), tc.badField)
		})
	}
}

func TestValidate_FieldNames(t *testing.T) {
	err := (&Report{}).Validate()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "unexpected error type: %T", err)

	var fields []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{
		"arguments_label",
		"maximum_label",
		"program_label",
		"min_length",
		"compare_positions",
	}, fields)
}
