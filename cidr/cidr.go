// Package cidr adapts IPv4/IPv6 prefixes to package intervaltree, so a Tree
// can answer connected/enclosedBy/enclosing/containing queries over CIDR
// blocks. It is grounded on the CIDR-as-interval pattern from
// github.com/gaissmai/interval's own example (a netip.Prefix converted to a
// closed address range via github.com/gaissmai/extnetip), adapted here from
// a one-off test helper into a reusable stored-item type.
package cidr

import (
	"fmt"
	"net/netip"

	"github.com/gaissmai/extnetip"

	"github.com/lowasser/intervaltree/ival"
)

// Block wraps a netip.Prefix as an intervaltree.Interval over netip.Addr,
// letting a Tree store and query CIDR blocks directly. netip.Addr already
// satisfies ival.Point on its own (it has a Compare method), so no adapter
// type is needed for the endpoint domain itself.
type Block struct {
	Prefix netip.Prefix
	rng    ival.Range[netip.Addr]
}

// New builds a Block from a CIDR prefix, expanding it to its closed address
// range with extnetip.Range.
func New(prefix netip.Prefix) Block {
	lo, hi := extnetip.Range(prefix.Masked())
	return Block{
		Prefix: prefix.Masked(),
		rng:    ival.Closed(lo, hi),
	}
}

// MustParse parses s as a CIDR prefix and panics on failure; intended for
// package-level variable initialization and tests, mirroring the teacher's
// own mustParse test helper.
func MustParse(s string) Block {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return New(p)
}

func (b Block) LowerBound() ival.Bound[netip.Addr] { return b.rng.LowerBound() }
func (b Block) UpperBound() ival.Bound[netip.Addr] { return b.rng.UpperBound() }

func (b Block) Encloses(other Block) bool    { return b.rng.Encloses(other.rng) }
func (b Block) IsConnected(other Block) bool { return b.rng.IsConnected(other.rng) }
func (b Block) Contains(v netip.Addr) bool   { return b.rng.Contains(v) }

func (b Block) String() string {
	return fmt.Sprintf("%s %s", b.Prefix, b.rng)
}
