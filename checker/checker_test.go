package checker_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/checker"
	"github.com/katalvlaran/netcheck/islands"
	"github.com/katalvlaran/netcheck/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodes(ids ...int64) []network.Node {
	out := make([]network.Node, len(ids))
	for i, id := range ids {
		out[i] = network.Node{ID: id}
	}
	return out
}

func build(t *testing.T, s *network.Supply, m network.Mode) *network.ModeNetwork {
	t.Helper()
	n, err := s.Build(m)
	require.NoError(t, err)
	return n
}

func logger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// twoPairs: {1,2} and {3,4}, each joined by a two-way link.
func twoPairs() *network.Supply {
	return &network.Supply{
		Nodes: nodes(1, 2, 3, 4),
		Links: []network.Link{
			{ID: 1, A: 1, B: 2, Length: 1},
			{ID: 2, A: 3, B: 4, Length: 1},
		},
	}
}

func TestCheckWalk_Islands(t *testing.T) {
	var buf bytes.Buffer
	c := checker.New(checker.WithLogger(logger(&buf)), checker.WithNetwork(build(t, twoPairs(), network.ModeWalk)))

	require.NoError(t, c.CheckWalk(context.Background()))
	assert.Equal(t, islands.Islands{{1, 2}, {3, 4}}, c.WalkIslands)
	require.Len(t, c.Errors, 1)
	assert.Equal(t, checker.KindIslands, c.Errors[0].Kind)
	assert.Equal(t, []int64{3, 4}, c.Errors[0].Nodes)
	assert.True(t, c.HasCriticalErrors())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "islands=2")
	assert.Contains(t, buf.String(), "disconnected=2")
}

func TestCheckWalk_FullyConnected(t *testing.T) {
	var buf bytes.Buffer
	s := &network.Supply{
		Nodes: nodes(1, 2, 3),
		Links: []network.Link{
			{ID: 1, A: 1, B: 2, Direction: network.AB, Length: 1},
			{ID: 2, A: 2, B: 3, Direction: network.AB, Length: 1},
		},
	}
	c := checker.New(checker.WithLogger(logger(&buf)), checker.WithNetwork(build(t, s, network.ModeWalk)))

	require.NoError(t, c.CheckWalk(context.Background()))
	assert.Len(t, c.WalkIslands, 1)
	assert.False(t, c.HasCriticalErrors())
	assert.NoError(t, c.Err())
	assert.Contains(t, buf.String(), "network fully connected")
}

func TestCheckAuto_IsolatedNodeTranslated(t *testing.T) {
	s := &network.Supply{
		Nodes: nodes(1, 2, 3, 4, 5),
		Links: []network.Link{
			{ID: 1, A: 1, B: 2, Length: 1},
			{ID: 2, A: 2, B: 3, Length: 1},
			{ID: 3, A: 3, B: 4, Length: 1},
		},
	}
	corr, err := network.NewCorrespondence([]int64{1, 2, 3, 4, 5}, []int64{101, 102, 103, 104, 105})
	require.NoError(t, err)
	s.Correspondence = map[network.Mode]*network.Correspondence{network.ModeAuto: corr}

	c := checker.New(checker.WithNetwork(build(t, s, network.ModeAuto)))
	require.NoError(t, c.CheckAuto(context.Background()))
	assert.Equal(t, islands.Islands{{1, 2, 3, 4}, {5}}, c.AutoIslands)
	require.Len(t, c.Errors, 1)
	assert.Equal(t, []int64{105}, c.Errors[0].Nodes)
}

func TestCheck_EmptyAndMissing(t *testing.T) {
	var buf bytes.Buffer
	empty := &network.Supply{Nodes: nodes(1, 2)}
	c := checker.New(
		checker.WithLogger(logger(&buf)),
		checker.WithNetwork(build(t, empty, network.ModeTransit)),
	)

	require.NoError(t, c.Run(context.Background()))
	assert.NotNil(t, c.TransitIslands)
	assert.Zero(t, c.TransitIslands.Len())
	assert.Nil(t, c.WalkIslands)
	assert.Nil(t, c.AutoIslands)
	assert.False(t, c.HasCriticalErrors())
	assert.Empty(t, buf.String())
}

func TestCheckTransit_StopsOnly(t *testing.T) {
	// 1 -> 2 -> 3 on transit, stops 1 and 3; 5 is a stop on nothing.
	s := &network.Supply{
		Nodes:        nodes(1, 2, 3, 5),
		TransitStops: []int64{1, 3, 5},
		Links: []network.Link{
			{ID: 1, A: 1, B: 2, Length: 1, Modes: []string{"transit"}},
			{ID: 2, A: 2, B: 3, Length: 1, Modes: []string{"transit"}},
		},
	}
	c := checker.New(checker.WithNetwork(build(t, s, network.ModeTransit)))

	require.NoError(t, c.CheckTransit(context.Background()))
	assert.Equal(t, islands.Islands{{1, 3}, {5}}, c.TransitIslands)
	require.Len(t, c.Errors, 1)
	assert.Equal(t, network.ModeTransit, c.Errors[0].Mode)
}

func TestCheckAuto_TurnAware(t *testing.T) {
	// One-way 2 -> 1: node 1 cannot reach 2, node 2 reaches 1.
	s := &network.Supply{
		Nodes: nodes(1, 2),
		Links: []network.Link{{ID: 7, A: 2, B: 1, Direction: network.AB, Length: 1}},
	}
	corr, err := network.NewCorrespondence([]int64{1, 2}, []int64{901, 902})
	require.NoError(t, err)
	s.Correspondence = map[network.Mode]*network.Correspondence{network.ModeAuto: corr}

	c := checker.New(checker.WithTurnRestrictions(), checker.WithNetwork(build(t, s, network.ModeAuto)))
	require.NoError(t, c.CheckAuto(context.Background()))

	require.Contains(t, c.Disconnections, int64(1))
	assert.True(t, c.Disconnections[1].Contains(902))
	assert.NotContains(t, c.Disconnections, int64(2))
	assert.Equal(t, []int64{1}, c.Disconnections.Sources())
	require.Len(t, c.Errors, 1)
	assert.Equal(t, checker.KindUnreachable, c.Errors[0].Kind)
	assert.EqualValues(t, 1, c.Errors[0].From)
	assert.True(t, errors.Is(c.Err(), checker.ErrDisconnected))
}

func TestCheckAuto_TurnAwareWithoutCorrespondence(t *testing.T) {
	// Same one-way 2 -> 1, but node 2 has no net node: nothing to list.
	var buf bytes.Buffer
	s := &network.Supply{
		Nodes: nodes(1, 2),
		Links: []network.Link{{ID: 7, A: 2, B: 1, Direction: network.AB, Length: 1}},
	}
	corr, err := network.NewCorrespondence([]int64{1}, []int64{901})
	require.NoError(t, err)
	s.Correspondence = map[network.Mode]*network.Correspondence{network.ModeAuto: corr}

	c := checker.New(
		checker.WithLogger(logger(&buf)),
		checker.WithTurnRestrictions(),
		checker.WithNetwork(build(t, s, network.ModeAuto)),
	)
	require.NoError(t, c.CheckAuto(context.Background()))

	assert.Empty(t, c.Disconnections)
	assert.Empty(t, c.Errors)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "untranslated=1")
	assert.NotContains(t, buf.String(), "network fully connected")
}

func TestCheckAuto_TurnBanSplitsNetwork(t *testing.T) {
	// 1 -(10)-> 2 -(20)-> 3 -(30)-> 1 with the turn 10→20 banned: from 1,
	// node 3 is lost; from 2 and 3 everything is reachable.
	s := &network.Supply{
		Nodes: nodes(1, 2, 3),
		Links: []network.Link{
			{ID: 10, A: 1, B: 2, Direction: network.AB, Length: 1},
			{ID: 20, A: 2, B: 3, Direction: network.AB, Length: 1},
			{ID: 30, A: 3, B: 1, Direction: network.AB, Length: 1},
		},
		Turns: []network.TurnRestriction{{FromLink: 10, ToLink: 20}},
	}
	auto := build(t, s, network.ModeAuto)

	quick := checker.New(checker.WithNetwork(auto))
	require.NoError(t, quick.CheckAuto(context.Background()))
	assert.False(t, quick.HasCriticalErrors(), "quick mode ignores turns")

	strict := checker.New(checker.WithTurnRestrictions(), checker.WithNetwork(auto))
	require.NoError(t, strict.CheckAuto(context.Background()))
	assert.Equal(t, []int64{1}, strict.Disconnections.Sources())
	assert.ElementsMatch(t, []int64{3}, strict.Disconnections[1].ToSlice())
	assert.Nil(t, strict.AutoIslands)
}

func TestCheckAuto_HighMemory(t *testing.T) {
	c := checker.New(
		checker.WithHighMemory(),
		checker.WithSkimWorkers(2),
		checker.WithNetwork(build(t, twoPairs(), network.ModeAuto)),
	)
	require.NoError(t, c.CheckAuto(context.Background()))
	require.NotNil(t, c.Skim)
	assert.False(t, c.Skim.Connected())
	require.Len(t, c.Errors, 1)
	assert.Equal(t, checker.KindSkim, c.Errors[0].Kind)
	assert.Empty(t, c.Errors[0].Nodes)
	assert.Nil(t, c.AutoIslands)
}

func TestCheck_ClearBeforeReuse(t *testing.T) {
	c := checker.New(checker.WithNetwork(build(t, twoPairs(), network.ModeWalk)))
	require.NoError(t, c.CheckWalk(context.Background()))
	require.NoError(t, c.CheckWalk(context.Background()))

	assert.Len(t, c.WalkIslands, 2, "islands are replaced, not appended")
	assert.Len(t, c.Errors, 2, "findings accumulate")

	c.Clear()
	assert.Nil(t, c.WalkIslands)
	assert.False(t, c.HasCriticalErrors())
}

func TestCheck_StrictIslands(t *testing.T) {
	// 1 -> 2 one-way: the probe sees one island, SCC sees two.
	s := &network.Supply{
		Nodes: nodes(1, 2),
		Links: []network.Link{{ID: 1, A: 1, B: 2, Direction: network.AB, Length: 1}},
	}
	auto := build(t, s, network.ModeAuto)

	probe := checker.New(checker.WithNetwork(auto))
	require.NoError(t, probe.CheckAuto(context.Background()))
	assert.Len(t, probe.AutoIslands, 1)

	scc := checker.New(checker.WithStrictIslands(), checker.WithNetwork(auto))
	require.NoError(t, scc.CheckAuto(context.Background()))
	assert.Len(t, scc.AutoIslands, 2)
}

func TestCheck_NoEngine(t *testing.T) {
	walk := build(t, twoPairs(), network.ModeWalk)

	c := checker.New(checker.WithEngine(nil), checker.WithNetwork(walk))
	assert.ErrorIs(t, c.Run(context.Background()), checker.ErrNoEngine)
	assert.Nil(t, c.WalkIslands)

	auto := build(t, twoPairs(), network.ModeAuto)
	c = checker.New(checker.WithTurnRestrictions(), checker.WithTurnEngine(nil), checker.WithNetwork(auto))
	assert.ErrorIs(t, c.CheckAuto(context.Background()), checker.ErrNoEngine)
}

func TestRun_ModesAndCancel(t *testing.T) {
	walk := build(t, twoPairs(), network.ModeWalk)
	c := checker.New(checker.WithModes(network.ModeAuto), checker.WithNetwork(walk))
	require.NoError(t, c.Run(context.Background()))
	assert.Nil(t, c.WalkIslands, "walk not requested")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c = checker.New(checker.WithNetwork(walk))
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}
