// SPDX-License-Identifier: MIT

package interval_test

import (
	"testing"

	"github.com/katalvlaran/ivtree/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTree_Empty verifies lookups and queries on an empty tree.
func TestTree_Empty(t *testing.T) {
	tr := interval.New[int, string]()

	_, ok := tr.Get(0, 0)
	assert.False(t, ok, "empty tree must not contain [0, 0]")
	assert.Empty(t, tr.FindIntersections(0, 100), "empty tree has no overlaps")
	assert.NotNil(t, tr.FindIntersections(0, 100), "FindIntersections never returns nil")
	_, ok = tr.FindIntersection(0, 100)
	assert.False(t, ok)
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.Delete(0, 0), "deleting from an empty tree is a no-op")
	require.NoError(t, interval.CheckInvariants(tr))
}

// TestTree_ZeroValue verifies that a zero Tree is usable without New.
func TestTree_ZeroValue(t *testing.T) {
	var tr interval.Tree[float64, int]

	require.NoError(t, tr.Put(1.5, 2.5, 7))
	v, ok := tr.Get(1.5, 2.5)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

// TestTree_PutGetRoundTrip checks that Put then Get returns the value and
// Delete then Get returns nothing.
func TestTree_PutGetRoundTrip(t *testing.T) {
	tr := interval.New[int, string]()

	require.NoError(t, tr.Put(5, 8, "B"))
	v, ok := tr.Get(5, 8)
	require.True(t, ok, "stored key must be found")
	assert.Equal(t, "B", v)

	assert.True(t, tr.Delete(5, 8), "stored key must be deleted")
	_, ok = tr.Get(5, 8)
	assert.False(t, ok, "deleted key must be gone")
	assert.True(t, tr.IsEmpty())
}

// TestTree_PutOverwrite checks that re-inserting an identical key replaces
// the value and leaves the node count unchanged.
func TestTree_PutOverwrite(t *testing.T) {
	tr := interval.New[int, string]()
	require.NoError(t, tr.Put(1, 3, "x"))
	require.NoError(t, tr.Put(2, 9, "y"))
	require.NoError(t, tr.Put(4, 4, "v1"))
	before := tr.Len()

	require.NoError(t, tr.Put(4, 4, "v2"))

	v, ok := tr.Get(4, 4)
	require.True(t, ok)
	assert.Equal(t, "v2", v, "second Put wins")
	assert.Equal(t, before, tr.Len(), "overwrite must not add a node")
	require.NoError(t, interval.CheckInvariants(tr))
}

// TestTree_PutInvertedRange ensures lo > hi is rejected and nothing is stored.
func TestTree_PutInvertedRange(t *testing.T) {
	tr := interval.New[int, string]()

	err := tr.Put(9, 3, "bad")
	require.ErrorIs(t, err, interval.ErrInvertedRange)
	assert.Contains(t, err.Error(), "[9, 3]")
	assert.Equal(t, 0, tr.Len())
	_, ok := tr.Get(9, 3)
	assert.False(t, ok)
}

// TestTree_SharedLowBound checks exact lookups and deletes among keys that
// share lo and differ only in hi.
func TestTree_SharedLowBound(t *testing.T) {
	tr := interval.New[int, string]()
	keys := []interval.Interval[int]{{Lo: 5, Hi: 8}, {Lo: 5, Hi: 6}, {Lo: 5, Hi: 10}, {Lo: 5, Hi: 5}, {Lo: 4, Hi: 9}, {Lo: 6, Hi: 7}}
	for _, k := range keys {
		require.NoError(t, tr.Put(k.Lo, k.Hi, k.String()))
	}
	require.Equal(t, len(keys), tr.Len())
	require.NoError(t, interval.CheckInvariants(tr))

	for _, k := range keys {
		v, ok := tr.Get(k.Lo, k.Hi)
		require.True(t, ok, "key %v must be found", k)
		assert.Equal(t, k.String(), v)
	}

	assert.True(t, tr.Delete(5, 6))
	assert.False(t, tr.Contains(5, 6))
	assert.True(t, tr.Contains(5, 8), "sibling with the same lo must survive")
	assert.True(t, tr.Contains(5, 10))
	assert.True(t, tr.Contains(5, 5))
	assert.False(t, tr.Delete(5, 7), "absent hi with a shared lo is a no-op")
	assert.Equal(t, len(keys)-1, tr.Len())
	require.NoError(t, interval.CheckInvariants(tr))
}

// TestTree_DeleteAbsent verifies that deleting a missing key leaves the tree untouched.
func TestTree_DeleteAbsent(t *testing.T) {
	tr := interval.New[int, int]()
	for i := 0; i < 20; i++ {
		require.NoError(t, tr.Put(i, i+3, i))
	}
	height := interval.BlackHeight(tr)

	assert.False(t, tr.Delete(100, 200))
	assert.False(t, tr.Delete(3, 5))
	assert.Equal(t, 20, tr.Len())
	assert.Equal(t, height, interval.BlackHeight(tr))
	require.NoError(t, interval.CheckInvariants(tr))
}

// TestTree_MinMaxDeleteMin checks ordered extremes and draining via DeleteMin.
func TestTree_MinMaxDeleteMin(t *testing.T) {
	tr := interval.New[int, string]()
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)
	_, ok = tr.DeleteMin()
	assert.False(t, ok)

	for _, k := range [][2]int{{21, 24}, {5, 8}, {17, 19}, {4, 8}, {15, 18}, {7, 10}, {16, 22}} {
		require.NoError(t, tr.Put(k[0], k[1], ""))
	}

	lo, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, interval.Interval[int]{Lo: 4, Hi: 8}, lo.Interval)
	hi, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, interval.Interval[int]{Lo: 21, Hi: 24}, hi.Interval)

	var drained []int
	for !tr.IsEmpty() {
		e, ok := tr.DeleteMin()
		require.True(t, ok)
		drained = append(drained, e.Interval.Lo)
		require.NoError(t, interval.CheckInvariants(tr))
	}
	assert.Equal(t, []int{4, 5, 7, 15, 16, 17, 21}, drained)
}

// TestTree_Take verifies the O(1) move leaves the source empty.
func TestTree_Take(t *testing.T) {
	src := interval.New[int, string]()
	require.NoError(t, src.Put(1, 2, "a"))
	require.NoError(t, src.Put(3, 4, "b"))

	dst := src.Take()

	assert.True(t, src.IsEmpty(), "source must be empty after Take")
	assert.Equal(t, 2, dst.Len())
	v, ok := dst.Get(3, 4)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	// The source stays usable and independent.
	require.NoError(t, src.Put(1, 2, "c"))
	v, _ = dst.Get(1, 2)
	assert.Equal(t, "a", v)
}

// TestTree_Clear verifies that Clear empties the tree and it can be refilled.
func TestTree_Clear(t *testing.T) {
	tr := interval.New[int, int]()
	for i := 0; i < 64; i++ {
		require.NoError(t, tr.Put(i, 2*i, i))
	}

	tr.Clear()

	assert.True(t, tr.IsEmpty())
	assert.Empty(t, tr.FindIntersections(0, 1000))
	require.NoError(t, tr.Put(1, 1, 1))
	assert.Equal(t, 1, tr.Len())
}

// TestInterval_Methods covers the Interval helpers.
func TestInterval_Methods(t *testing.T) {
	a := interval.Interval[int]{Lo: 1, Hi: 5}

	assert.True(t, a.Valid())
	assert.False(t, interval.Interval[int]{Lo: 2, Hi: 1}.Valid())
	assert.True(t, a.Overlaps(interval.Interval[int]{Lo: 5, Hi: 9}), "touching endpoints overlap")
	assert.False(t, a.Overlaps(interval.Interval[int]{Lo: 6, Hi: 9}))
	assert.True(t, a.Contains(1))
	assert.False(t, a.Contains(6))
	assert.Equal(t, "[1, 5]", a.String())
}
