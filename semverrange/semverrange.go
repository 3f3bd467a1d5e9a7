// Package semverrange adapts semantic-version ranges to package
// intervaltree, so a Tree can answer connected/enclosedBy/enclosing queries
// over version spans, e.g. "which support windows enclose v2.3.1?". The
// endpoint domain is *semver.Version from github.com/Masterminds/semver/v3,
// whose Compare method already has the right shape to satisfy
// ival.Point[*semver.Version] directly — no wrapper type is needed.
package semverrange

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/lowasser/intervaltree/ival"
)

// Window is a half-open-or-closed span of semantic versions, stored as an
// intervaltree.Interval over *semver.Version.
type Window struct {
	Label string
	rng   ival.Range[*semver.Version]
}

// Closed returns the window [lo, hi] (both endpoints inclusive).
func Closed(label, lo, hi string) (Window, error) {
	l, h, err := parsePair(lo, hi)
	if err != nil {
		return Window{}, err
	}
	return Window{Label: label, rng: ival.Closed(l, h)}, nil
}

// ClosedOpen returns the window [lo, hi), the usual shape for "supported
// starting at lo, until the next breaking release hi".
func ClosedOpen(label, lo, hi string) (Window, error) {
	l, h, err := parsePair(lo, hi)
	if err != nil {
		return Window{}, err
	}
	return Window{Label: label, rng: ival.ClosedOpen(l, h)}, nil
}

// AtLeast returns the unbounded-above window [lo, +inf).
func AtLeast(label, lo string) (Window, error) {
	l, err := semver.NewVersion(lo)
	if err != nil {
		return Window{}, fmt.Errorf("semverrange: %w", err)
	}
	return Window{Label: label, rng: ival.AtLeast(l)}, nil
}

func parsePair(lo, hi string) (*semver.Version, *semver.Version, error) {
	l, err := semver.NewVersion(lo)
	if err != nil {
		return nil, nil, fmt.Errorf("semverrange: lower bound: %w", err)
	}
	h, err := semver.NewVersion(hi)
	if err != nil {
		return nil, nil, fmt.Errorf("semverrange: upper bound: %w", err)
	}
	return l, h, nil
}

func (w Window) LowerBound() ival.Bound[*semver.Version] { return w.rng.LowerBound() }
func (w Window) UpperBound() ival.Bound[*semver.Version] { return w.rng.UpperBound() }

func (w Window) Encloses(other Window) bool     { return w.rng.Encloses(other.rng) }
func (w Window) IsConnected(other Window) bool  { return w.rng.IsConnected(other.rng) }
func (w Window) Contains(v *semver.Version) bool { return w.rng.Contains(v) }

func (w Window) String() string {
	if w.Label == "" {
		return w.rng.String()
	}
	return fmt.Sprintf("%s %s", w.Label, w.rng)
}
