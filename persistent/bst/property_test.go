package bst

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultGopterParameters = gopter.DefaultTestParameters()

func keyGen() gopter.Gen {
	return gen.SliceOf(gen.IntRange(-100, 100))
}

func distinct(keys []int) []int {
	seen := make(map[int]bool, len(keys))
	var d []int
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			d = append(d, k)
		}
	}
	return d
}

func TestPropertyRecall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	properties := gopter.NewProperties(defaultGopterParameters)
	properties.Property("first binding of every key is found, others are absent", prop.ForAll(
		func(keys []int, probe int) bool {
			expected := make(map[int]int)
			tree := New[int, int]()
			for i, k := range keys {
				if _, ok := expected[k]; !ok {
					expected[k] = i
				}
				tree = tree.With(k, i)
			}
			for k, v := range expected {
				if found, ok := tree.Find(k); !ok || found != v {
					return false
				}
			}
			v, found := tree.Find(probe)
			want, present := expected[probe]
			return found == present && v == want
		},
		keyGen(),
		gen.IntRange(-200, 200),
	))
	properties.TestingRun(t)
}

func TestPropertyOrderIndependence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	properties := gopter.NewProperties(defaultGopterParameters)
	properties.Property("distinct keys map to the same values in any insertion order", prop.ForAll(
		func(keys []int) bool {
			keys = distinct(keys)
			sorted := append([]int(nil), keys...)
			sort.Ints(sorted)
			a, b, c := New[int, int](), New[int, int](), New[int, int]()
			for i := range keys {
				a = a.With(keys[i], 3*keys[i])
				b = b.With(sorted[i], 3*sorted[i])
				c = c.With(sorted[len(sorted)-1-i], 3*sorted[len(sorted)-1-i])
			}
			for k := -101; k <= 101; k++ {
				va, fa := a.Find(k)
				vb, fb := b.Find(k)
				vc, fc := c.Find(k)
				if fa != fb || fb != fc || va != vb || vb != vc {
					return false
				}
			}
			return true
		},
		keyGen(),
	))
	properties.TestingRun(t)
}

func TestPropertyNonMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	properties := gopter.NewProperties(defaultGopterParameters)
	properties.Property("insert leaves the original tree unchanged", prop.ForAll(
		func(keys []int, extra int) bool {
			tree := New[int, int]()
			for _, k := range keys {
				tree = tree.With(k, k)
			}
			_, wasPresent := tree.Find(extra)
			modified := tree.With(extra, -1)
			for _, k := range keys {
				if v, found := tree.Find(k); !found || v != k {
					return false
				}
			}
			_, stillPresent := tree.Find(extra)
			_, inModified := modified.Find(extra)
			return stillPresent == wasPresent && inModified
		},
		keyGen(),
		gen.IntRange(-150, 150),
	))
	properties.TestingRun(t)
}

func TestPropertyOrderInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	properties := gopter.NewProperties(defaultGopterParameters)
	properties.Property("every incarnation of a tree is ordered", prop.ForAll(
		func(keys []int) bool {
			tree := New[int, int]()
			for _, k := range keys {
				tree = tree.With(k, k)
				if !isOrdered(tree) {
					return false
				}
			}
			return tree.IsEmpty() == (len(keys) == 0)
		},
		keyGen(),
	))
	properties.TestingRun(t)
}

// --- Scenarios -------------------------------------------------------------

func TestScenarioEmpty(t *testing.T) {
	tree := New[int, int]()
	assert.True(t, tree.IsEmpty())
	tree = tree.With(8, 8)
	assert.False(t, tree.IsEmpty())
}

func TestScenarioInsert(t *testing.T) {
	tree := New[int, int]().With(8, 8).With(9, 9)
	v, found := tree.Find(8)
	require.True(t, found)
	assert.Equal(t, 8, v)
	v, found = tree.Find(9)
	require.True(t, found)
	assert.Equal(t, 9, v)
	_, found = tree.Find(1)
	assert.False(t, found)
	assert.True(t, tree.Lookup(1).IsNothing())
}

func TestScenarioCollision(t *testing.T) {
	tree := New[int, int]().With(8, 8).With(8, 99)
	v, found := tree.Find(8)
	require.True(t, found)
	assert.Equal(t, 8, v, "first binding of a key wins")
}

func TestScenarioPointerValues(t *testing.T) {
	boxed := new(int8)
	*boxed = 8
	tree := New[int, *int8]().With(8, boxed)
	v, found := tree.Find(8)
	require.True(t, found)
	assert.Same(t, boxed, v)
}
