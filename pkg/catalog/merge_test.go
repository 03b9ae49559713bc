package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeLocalWinsOverRemote(t *testing.T) {
	local := []Product{
		{ID: 1700000000000, Title: "Local Edit", Price: 25},
	}
	remote := []Product{
		{ID: 1700000000000, Title: "Remote Copy", Price: 99},
		{ID: 2, Title: "Remote Only"},
	}

	merged := Merge(local, remote)

	assert.Len(t, merged, 2)
	assert.Equal(t, "Local Edit", merged[0].Title)
	assert.Equal(t, 25.0, merged[0].Price)
	assert.Equal(t, "Remote Only", merged[1].Title)
}

func TestMergeOrderLocalFirstThenRemote(t *testing.T) {
	local := []Product{
		{ID: 30, Title: "newest"},
		{ID: 20, Title: "older"},
	}
	remote := []Product{
		{ID: 1, Title: "r1"},
		{ID: 2, Title: "r2"},
		{ID: 3, Title: "r3"},
	}

	merged := Merge(local, remote)

	ids := make([]int64, 0, len(merged))
	for _, p := range merged {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{30, 20, 1, 2, 3}, ids)
}

func TestMergeEarlierLocalWins(t *testing.T) {
	// Duplicate IDs inside the local sequence keep the first, i.e. the
	// most recent record.
	local := []Product{
		{ID: 7, Title: "recent"},
		{ID: 7, Title: "stale"},
	}

	merged := Merge(local, nil)

	assert.Len(t, merged, 1)
	assert.Equal(t, "recent", merged[0].Title)
}

func TestMergeExactlyOneRecordPerSharedID(t *testing.T) {
	local := []Product{{ID: 1}, {ID: 2}}
	remote := []Product{{ID: 2}, {ID: 3}, {ID: 1}}

	merged := Merge(local, remote)

	counts := map[int64]int{}
	for _, p := range merged {
		counts[p.ID]++
	}
	for id, n := range counts {
		assert.Equalf(t, 1, n, "id %d appears %d times", id, n)
	}
	assert.Len(t, merged, 3)
}

func TestMergeEmptyRemoteDegradesToLocalOnly(t *testing.T) {
	local := []Product{{ID: 5, Title: "mine"}}

	merged := Merge(local, nil)

	assert.Equal(t, local, merged)
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.NotNil(t, Merge(nil, nil))
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	local := []Product{{ID: 1, Title: "a"}}
	remote := []Product{{ID: 2, Title: "b"}}

	merged := Merge(local, remote)
	merged[0].Title = "changed"

	assert.Equal(t, "a", local[0].Title)
}
