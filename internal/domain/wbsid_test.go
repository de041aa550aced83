package domain

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompareWBSID_NumericNotLexicographic(t *testing.T) {
	assert.Equal(t, -1, CompareWBSID("1.2", "1.10"), `"1.2" sorts before "1.10"`)
	assert.Equal(t, -1, CompareWBSID("1.10", "2"))
	assert.Equal(t, 1, CompareWBSID("2", "1.10"))
	assert.Equal(t, 0, CompareWBSID("1.2.3", "1.2.3"))
}

func TestCompareWBSID_PrefixSortsFirst(t *testing.T) {
	// A parent compares before any of its children ("1" vs "1.1").
	assert.Equal(t, -1, CompareWBSID("1", "1.1"))
	assert.Equal(t, 1, CompareWBSID("1.1", "1"))
}

func TestCompareWBSID_MalformedSegmentsAsZero(t *testing.T) {
	// Legacy leniency: non-numeric segments compare as 0.
	assert.Equal(t, -1, CompareWBSID("1.x", "1.1"))
	assert.Equal(t, 0, CompareWBSID("1.x", "1.y"))
	assert.Equal(t, -1, CompareWBSID("", "1"))
}

func TestCompareWBSID_SortOrdering(t *testing.T) {
	ids := []string{"2", "1.10", "1.2", "10", "1", "1.2.1"}
	sort.Slice(ids, func(i, j int) bool { return CompareWBSID(ids[i], ids[j]) < 0 })
	assert.Equal(t, []string{"1", "1.2", "1.2.1", "1.10", "2", "10"}, ids)
}

func genWBSID(t *rapid.T, label string) string {
	segs := rapid.SliceOfN(rapid.IntRange(1, 30), 1, 5).Draw(t, label)
	id := ""
	for i, s := range segs {
		if i > 0 {
			id += "."
		}
		id += fmt.Sprintf("%d", s)
	}
	return id
}

func TestCompareWBSID_StrictTotalOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genWBSID(t, "a")
		b := genWBSID(t, "b")
		c := genWBSID(t, "c")

		// Antisymmetry.
		if CompareWBSID(a, b) == 0 {
			if CompareWBSID(b, a) != 0 {
				t.Fatalf("equal ids must compare equal both ways: %q %q", a, b)
			}
		} else if CompareWBSID(a, b) != -CompareWBSID(b, a) {
			t.Fatalf("comparison not antisymmetric for %q, %q", a, b)
		}

		// Transitivity.
		if CompareWBSID(a, b) <= 0 && CompareWBSID(b, c) <= 0 && CompareWBSID(a, c) > 0 {
			t.Fatalf("comparison not transitive for %q <= %q <= %q", a, b, c)
		}
	})
}

func TestValidateWBSID(t *testing.T) {
	require.NoError(t, ValidateWBSID("1"))
	require.NoError(t, ValidateWBSID("1.2.10"))

	for _, bad := range []string{"", "0", "1.0", "1..2", "1.a", "-1", "1.2."} {
		err := ValidateWBSID(bad)
		require.Error(t, err, "id %q should be rejected", bad)
		assert.Equal(t, KindInvalidIdentifier, KindOf(err))
	}
}

func TestParentWBSID(t *testing.T) {
	assert.Equal(t, "1.2", ParentWBSID("1.2.3"))
	assert.Equal(t, "1", ParentWBSID("1.2"))
	assert.Equal(t, "", ParentWBSID("1"))
}

func TestWBSDepth(t *testing.T) {
	assert.Equal(t, 0, WBSDepth(""))
	assert.Equal(t, 1, WBSDepth("3"))
	assert.Equal(t, 3, WBSDepth("1.2.3"))
}
