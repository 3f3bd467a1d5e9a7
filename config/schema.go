// Package config reads the YAML file that seeds an itreectl tree at
// startup: a flat list of integer intervals, plus an optional watch setting
// for reload-on-change. Grounded on the schema/reader split in
// danroc-geoblock's internal/config package.
package config

// BoundKind is the YAML spelling of ival.Kind: "open" or "closed".
type BoundKind string

const (
	KindOpen   BoundKind = "open"
	KindClosed BoundKind = "closed"
)

// IntervalSpec describes one stored interval over int64. A nil Lower or
// Upper means that side is unbounded; LowerKind/UpperKind are ignored in
// that case.
type IntervalSpec struct {
	Label     string    `yaml:"label,omitempty"`
	Lower     *int64    `yaml:"lower,omitempty"`
	LowerKind BoundKind `yaml:"lower_kind,omitempty" validate:"omitempty,oneof=open closed"`
	Upper     *int64    `yaml:"upper,omitempty"`
	UpperKind BoundKind `yaml:"upper_kind,omitempty" validate:"omitempty,oneof=open closed"`
}

// WatchConfig records whether reload-on-change is enabled for the config
// file. It has no reload interval setting.
type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Configuration is the top-level shape of an itreectl config file.
type Configuration struct {
	Intervals []IntervalSpec `yaml:"intervals" validate:"dive"`
	Watch     WatchConfig    `yaml:"watch,omitempty"`
}
