package conformance

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	decimal "github.com/db47h/decfmt"
	"github.com/db47h/decfmt/numfmt"
)

//go:embed data/rounding.yaml data/cases.schema.json
var dataFS embed.FS

// A Case is a single rounding scenario: format Value with Config (and the
// optional rounding Increment) and compare the output with Want, or with
// WantValue rendered through the canonical formatter.
type Case struct {
	Name      string
	Value     float64
	Config    numfmt.Config
	Increment float64  // 0 if none
	Want      string   // exact expected text, if WantValue is nil
	WantValue *float64 // expected numeric value
}

// Label identifies c in reports.
func (c *Case) Label() string {
	return fmt.Sprintf("%s/%s frac=%d..%d value=%v",
		c.Name, c.Config.RoundingMode.Name(), c.Config.MinFractionDigits, c.Config.MaxFractionDigits, c.Value)
}

// raw YAML layout of a case table.
type caseTable struct {
	Groups []caseGroup `yaml:"groups"`
}

type caseGroup struct {
	Name              string                 `yaml:"name"`
	Modes             []decimal.RoundingMode `yaml:"modes"`
	MinFractionDigits int                    `yaml:"min_fraction_digits"`
	MaxFractionDigits int                    `yaml:"max_fraction_digits"`
	Grouping          bool                   `yaml:"grouping"`
	Increment         float64                `yaml:"increment"`
	Cases             []struct {
		Value     float64  `yaml:"value"`
		Want      string   `yaml:"want"`
		WantValue *float64 `yaml:"want_value"`
	} `yaml:"cases"`
}

var (
	tableSchema *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchema compiles the embedded case table schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := dataFS.ReadFile("data/cases.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read case schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal case schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("cases.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add case schema resource: %w", err)
			return
		}
		tableSchema, err = compiler.Compile("cases.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile case schema: %w", err)
		}
	})
	return compileErr
}

// validateTable validates YAML data against the case table schema.
func validateTable(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	// round trip through JSON to get the value types the validator expects
	js, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("case table is not representable as JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return err
	}
	if err := tableSchema.Validate(inst); err != nil {
		return fmt.Errorf("case table validation failed: %w", err)
	}
	return nil
}

// ParseCases validates and decodes a YAML case table.
func ParseCases(data []byte) ([]Case, error) {
	if err := validateTable(data); err != nil {
		return nil, err
	}
	var t caseTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode case table: %w", err)
	}
	var cases []Case
	for _, g := range t.Groups {
		for _, mode := range g.Modes {
			cfg := numfmt.Config{
				MinFractionDigits: g.MinFractionDigits,
				MaxFractionDigits: g.MaxFractionDigits,
				RoundingMode:      mode,
				Grouping:          g.Grouping,
			}
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("group %q: %w", g.Name, err)
			}
			for _, c := range g.Cases {
				cases = append(cases, Case{
					Name:      g.Name,
					Value:     c.Value,
					Config:    cfg,
					Increment: g.Increment,
					Want:      c.Want,
					WantValue: c.WantValue,
				})
			}
		}
	}
	return cases, nil
}

// ReadCases reads a YAML case table from r.
func ReadCases(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseCases(data)
}

// LoadCases reads a YAML case table from the named file.
func LoadCases(name string) ([]Case, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cases, err := ReadCases(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cases, nil
}

// DefaultCases returns the built-in rounding case table.
func DefaultCases() ([]Case, error) {
	data, err := dataFS.ReadFile("data/rounding.yaml")
	if err != nil {
		return nil, err
	}
	return ParseCases(data)
}
