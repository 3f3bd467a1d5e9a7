package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowasser/intervaltree/config"
)

const validConfig = `
intervals:
  - label: small
    lower: 0
    upper: 5
  - label: unbounded above
    lower: 10
`

const invalidBoundKind = `
intervals:
  - lower: 0
    lower_kind: sideways
    upper: 5
`

const emptyInterval = `
intervals:
  - lower: 5
    upper: 0
`

func TestReadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.ReadConfig(strings.NewReader(validConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Intervals, 2)
	assert.Equal(t, "small", cfg.Intervals[0].Label)
	assert.Nil(t, cfg.Intervals[1].Upper)
}

func TestReadConfigRejectsInvalidBoundKind(t *testing.T) {
	t.Parallel()

	_, err := config.ReadConfig(strings.NewReader(invalidBoundKind))
	assert.Error(t, err)
}

func TestReadConfigRejectsEmptyInterval(t *testing.T) {
	t.Parallel()

	_, err := config.ReadConfig(strings.NewReader(emptyInterval))
	assert.Error(t, err)
}
