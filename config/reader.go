package config

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/lowasser/intervaltree/ival"
)

// read parses and validates the configuration from raw YAML bytes.
func read(data []byte) (*Configuration, error) {
	var cfg Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	for i, spec := range cfg.Intervals {
		if _, err := spec.Range(); err != nil {
			return nil, fmt.Errorf("config: intervals[%d]: %w", i, err)
		}
	}
	return &cfg, nil
}

// ReadConfig reads and validates a Configuration from r.
func ReadConfig(r io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	return read(data)
}

// Range builds the ival.Range this spec describes.
func (s IntervalSpec) Range() (ival.Range[ival.Value[int64]], error) {
	lower := ival.AbsentBound[ival.Value[int64]]()
	if s.Lower != nil {
		lower = ival.NewBound(ival.Value[int64](*s.Lower), boundKind(s.LowerKind))
	}
	upper := ival.AbsentBound[ival.Value[int64]]()
	if s.Upper != nil {
		upper = ival.NewBound(ival.Value[int64](*s.Upper), boundKind(s.UpperKind))
	}
	return ival.New(lower, upper)
}

func boundKind(k BoundKind) ival.Kind {
	if k == KindOpen {
		return ival.Open
	}
	return ival.Closed
}
