package gov

import (
	"bytes"

	"github.com/google/btree"

	governance "github.com/blackbird014/contract-ownership-governance"
)

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// seat is a single governor table entry: an address and the voting power it
// holds.
type seat struct {
	address governance.Address
	power   governance.Weight
}

var _ keyer = seat{}
var _ btree.Item = seat{}

func (s seat) Key() []byte {
	return s.address
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (s seat) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(s.address, cmp) < 0
}

// governorTable holds the power of every governor, ordered by address so
// that iteration is deterministic. A zero power is never stored, holding
// zero power and being absent are the same state.
type governorTable struct {
	bt *btree.BTree
}

func newGovernorTable() *governorTable {
	return &governorTable{
		bt: btree.New(2),
	}
}

// power returns the power held by this address, zero when absent.
func (t *governorTable) power(addr governance.Address) governance.Weight {
	res := t.bt.Get(seat{address: addr})
	if res == nil {
		return 0
	}
	return res.(seat).power
}

// set stores the power held by this address. Setting zero power removes the
// entry.
func (t *governorTable) set(addr governance.Address, power governance.Weight) {
	if power == 0 {
		t.bt.Delete(seat{address: addr})
		return
	}
	t.bt.ReplaceOrInsert(seat{address: addr.Clone(), power: power})
}

// size returns the number of weighted governors.
func (t *governorTable) size() int {
	return t.bt.Len()
}

// snapshot returns every entry, ordered by ascending address.
func (t *governorTable) snapshot() []governance.WeightChange {
	out := make([]governance.WeightChange, 0, t.bt.Len())
	t.bt.Ascend(func(item btree.Item) bool {
		s := item.(seat)
		out = append(out, governance.WeightChange{
			Governor: s.address.Clone(),
			Power:    s.power,
		})
		return true
	})
	return out
}
