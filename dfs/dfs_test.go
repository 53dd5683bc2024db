package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/netcheck/core"
	"github.com/katalvlaran/netcheck/dfs"
	"github.com/katalvlaran/netcheck/islands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build creates a graph from one-way arcs, in order.
func build(t *testing.T, arcs ...[2]int64) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, a := range arcs {
		require.NoError(t, b.AddEdge(a[0], a[1], 1))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// chain builds 1->2->...->n.
func chain(t *testing.T, n int64) *core.Graph {
	t.Helper()
	arcs := make([][2]int64, 0, n)
	for i := int64(1); i < n; i++ {
		arcs = append(arcs, [2]int64{i, i + 1})
	}
	return build(t, arcs...)
}

// diamond: 1->2, 1->3, 2->4, 3->4, 4->5, 4->6.
func diamond(t *testing.T) *core.Graph {
	return build(t, [2]int64{1, 2}, [2]int64{1, 3}, [2]int64{2, 4}, [2]int64{3, 4}, [2]int64{4, 5}, [2]int64{4, 6})
}

func TestDFS_Errors(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	res, err = dfs.DFS(chain(t, 3), 99)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_PostOrder(t *testing.T) {
	g := diamond(t)
	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 6, 4, 2, 3, 1}, res.Order)
	assert.Equal(t, 2, res.Depth[4], "4 is first reached through 2")
	assert.Equal(t, 1, res.Depth[3])

	two, _ := g.Index(2)
	four, _ := g.Index(4)
	one, _ := g.Index(1)
	assert.Equal(t, two, res.Pred[four])
	assert.Equal(t, core.NoPredecessor, res.Pred[one])
}

func TestDFS_DirectedReachability(t *testing.T) {
	res, err := dfs.DFS(chain(t, 4), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3, 2}, res.Order)
	assert.False(t, res.Reached(1))
	assert.True(t, res.Reached(4))
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t, 5)

	res, err := dfs.DFS(g, 1, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, res.Order)

	res, err = dfs.DFS(g, 1, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, res.Order)

	res, err = dfs.DFS(g, 1, dfs.WithFilterArc(func(_, next int64) bool { return next != 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, res.Order)
	assert.Equal(t, 1, res.SkippedArcs)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := chain(t, 4)
	res, err := dfs.DFS(g, 3, dfs.WithFullTraversal())
	require.NoError(t, err)

	assert.Equal(t, []int64{4, 3, 2, 1}, res.Order)
	assert.Equal(t, 0, res.Depth[1], "1 roots a second tree")
	assert.Equal(t, 1, res.Depth[2])
	one, _ := g.Index(1)
	assert.Equal(t, core.NoPredecessor, res.Pred[one])
}

func TestDFS_Hooks(t *testing.T) {
	g := diamond(t)

	var pre, post []int64
	res, err := dfs.DFS(g, 1,
		dfs.WithOnVisit(func(id int64, _ int) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id int64) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4, 5, 6, 3}, pre)
	assert.Equal(t, res.Order, post)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, 1, dfs.WithOnVisit(func(id int64, _ int) error {
		if id == 4 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.DFS(g, 1, dfs.WithOnExit(func(int64) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(chain(t, 10), 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine(t *testing.T) {
	e := dfs.NewEngine()
	assert.ErrorIs(t, e.ComputePath(context.Background(), 1, 2), dfs.ErrNotPrepared)
	assert.ErrorIs(t, e.Prepare(nil), dfs.ErrGraphNil)

	g := chain(t, 3)
	require.NoError(t, e.Prepare(g))
	assert.ErrorIs(t, e.ComputePath(context.Background(), 1, 42), dfs.ErrStartNodeNotFound)

	require.NoError(t, e.ComputePath(context.Background(), 1, 3))
	one, _ := g.Index(1)
	three, _ := g.Index(3)
	pred := e.Predecessors()
	require.Len(t, pred, 3)
	assert.Equal(t, core.NoPredecessor, pred[one])
	assert.NotEqual(t, core.NoPredecessor, pred[three])

	e.Reset()
	assert.Nil(t, e.Predecessors())
}

func TestEngine_Islands(t *testing.T) {
	// Two-way pairs {1,2} and {3,4}.
	g := build(t, [2]int64{1, 2}, [2]int64{2, 1}, [2]int64{3, 4}, [2]int64{4, 3})

	is, err := islands.NewProbeDetector(dfs.NewEngine(dfs.WithFullTraversal())).Detect(context.Background(), g, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, islands.Islands{{1, 2}, {3, 4}}, is)
}
