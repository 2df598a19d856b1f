package gov

import (
	"sort"
	"testing"

	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/govtest"
	"github.com/blackbird014/contract-ownership-governance/govtest/assert"
)

func TestGovernorTable(t *testing.T) {
	table := newGovernorTable()

	a := govtest.NewCondition().Address()
	b := govtest.NewCondition().Address()

	assert.Equal(t, governance.Weight(0), table.power(a))
	assert.Equal(t, 0, table.size())

	table.set(a, 3)
	table.set(b, 7)
	assert.Equal(t, governance.Weight(3), table.power(a))
	assert.Equal(t, governance.Weight(7), table.power(b))
	assert.Equal(t, 2, table.size())

	// overwrite, not accumulate
	table.set(a, 5)
	assert.Equal(t, governance.Weight(5), table.power(a))
	assert.Equal(t, 2, table.size())

	// zero power means absent
	table.set(a, 0)
	assert.Equal(t, governance.Weight(0), table.power(a))
	assert.Equal(t, 1, table.size())

	// removing an absent entry changes nothing
	table.set(a, 0)
	assert.Equal(t, 1, table.size())
}

func TestGovernorTableSnapshotOrder(t *testing.T) {
	table := newGovernorTable()

	addrs := make([]governance.Address, 10)
	for i := range addrs {
		addrs[i] = govtest.NewCondition().Address()
		table.set(addrs[i], governance.Weight(i+1))
	}

	snapshot := table.snapshot()
	assert.Equal(t, len(addrs), len(snapshot))
	if !sort.SliceIsSorted(snapshot, func(i, j int) bool {
		return string(snapshot[i].Governor) < string(snapshot[j].Governor)
	}) {
		t.Fatal("snapshot not ordered by ascending address")
	}

	// the snapshot holds copies, mutating it must not reach the table
	snapshot[0].Governor[0] ^= 0xFF
	for _, addr := range addrs {
		if table.power(addr) == 0 {
			t.Fatal("table entry lost after snapshot mutation")
		}
	}
}
