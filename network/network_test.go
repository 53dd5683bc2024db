package network_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/netcheck/core"
	"github.com/katalvlaran/netcheck/network"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
transit_stops = [1, 4]

node {
  id = 1
}
node {
  id = 2
}
node {
  id = 3
}
node {
  id    = 4
  modes = ["transit"]
}

link {
  id        = 10
  a         = 1
  b         = 2
  direction = 1
  length    = 100
}
link {
  id     = 11
  a      = 2
  b      = 3
  length = 50
  type   = "ferry"
}
link {
  id     = 12
  a      = 1
  b      = 4
  length = 10
  modes  = ["transit"]
}

turn {
  from_link = 10
  to_link   = 11
}

correspondence "auto" {
  graph_nodes = [1, 2, 3]
  net_nodes   = [1001, 1002, 1003]
}
`

func load(t *testing.T) *network.Supply {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "supply.hcl", []byte(sample), 0o644))
	s, err := network.LoadHCL(fs, "supply.hcl")
	require.NoError(t, err)

	return s
}

func TestMode(t *testing.T) {
	for _, m := range network.Modes() {
		got, err := network.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := network.ParseMode(" Car ")
	require.NoError(t, err)
	assert.Equal(t, network.ModeAuto, got)

	_, err = network.ParseMode("boat")
	assert.ErrorIs(t, err, network.ErrUnknownMode)

	ms, err := network.ParseModes([]string{"transit", "walk", "transit"})
	require.NoError(t, err)
	assert.Equal(t, []network.Mode{network.ModeTransit, network.ModeWalk}, ms)
}

func TestLoadHCL(t *testing.T) {
	s := load(t)
	assert.Len(t, s.Nodes, 4)
	assert.Len(t, s.Links, 3)
	assert.Equal(t, network.AB, s.Links[0].Direction)
	assert.Equal(t, "ferry", s.Links[1].Type)
	assert.Equal(t, []network.TurnRestriction{{FromLink: 10, ToLink: 11}}, s.Turns)
	assert.Equal(t, []int64{1, 4}, s.TransitStops)
	assert.Equal(t, 3, s.Correspondence[network.ModeAuto].Len())
	assert.Nil(t, s.Correspondence[network.ModeWalk])

	_, err := network.LoadHCL(afero.NewMemMapFs(), "missing.hcl")
	assert.Error(t, err)
}

func TestParseHCL_Errors(t *testing.T) {
	_, err := network.ParseHCL([]byte(`node {`), "bad.hcl")
	assert.ErrorIs(t, err, network.ErrParse)

	_, err = network.ParseHCL([]byte(`link {
  id = 1
  a  = 1
  b  = 2
}`), "dangling.hcl")
	assert.ErrorIs(t, err, network.ErrUnknownNode)

	for _, dir := range []string{"257", "255", "-2"} {
		_, err = network.ParseHCL([]byte(`node {
  id = 1
}
node {
  id = 2
}
link {
  id        = 1
  a         = 1
  b         = 2
  direction = `+dir+`
}`), "direction.hcl")
		assert.ErrorIs(t, err, network.ErrBadDirection, dir)
	}

	_, err = network.ParseHCL([]byte(`correspondence "walk" {
  graph_nodes = [1, 2]
  net_nodes   = [1]
}`), "corr.hcl")
	assert.ErrorIs(t, err, network.ErrCorrespondenceLength)
}

func TestValidate(t *testing.T) {
	s := &network.Supply{Nodes: []network.Node{{ID: 1}, {ID: 1}}}
	assert.ErrorIs(t, s.Validate(), network.ErrDuplicateID)

	s = &network.Supply{
		Nodes: []network.Node{{ID: 1}, {ID: 2}},
		Links: []network.Link{{ID: 5, A: 1, B: 2, Direction: 3}},
	}
	assert.ErrorIs(t, s.Validate(), network.ErrBadDirection)

	s.Links[0].Direction = network.Both
	s.Turns = []network.TurnRestriction{{FromLink: 5, ToLink: 6}}
	assert.ErrorIs(t, s.Validate(), network.ErrUnknownLink)
}

func TestValidate_ReservedLinkID(t *testing.T) {
	// 1 -(0)-> 2 -(20)-> 3 -(30)-> 1 with 0→20 banned: link 0 would lose its ban.
	s := &network.Supply{
		Nodes: []network.Node{{ID: 1}, {ID: 2}, {ID: 3}},
		Links: []network.Link{
			{ID: 0, A: 1, B: 2, Direction: network.AB, Length: 1},
			{ID: 20, A: 2, B: 3, Direction: network.AB, Length: 1},
			{ID: 30, A: 3, B: 1, Direction: network.AB, Length: 1},
		},
		Turns: []network.TurnRestriction{{FromLink: 0, ToLink: 20}},
	}
	assert.ErrorIs(t, s.Validate(), network.ErrReservedLinkID)
	_, err := s.Build(network.ModeAuto)
	assert.ErrorIs(t, err, network.ErrReservedLinkID)

	_, err = network.ParseHCL([]byte(`node {
  id = 1
}
node {
  id = 2
}
link {
  id = 0
  a  = 1
  b  = 2
}`), "zero.hcl")
	assert.ErrorIs(t, err, network.ErrReservedLinkID)
}

func TestBuild_PerMode(t *testing.T) {
	s := load(t)

	walk, err := s.Build(network.ModeWalk)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, walk.Graph.AllNodes())
	assert.Equal(t, 4, walk.Graph.ArcCount(), "walk ignores one-way links")
	assert.False(t, walk.Graph.HasTurnRestrictions())

	auto, err := s.Build(network.ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, 3, auto.Graph.ArcCount())
	assert.True(t, auto.Graph.TurnBanned(10, 11))
	assert.Equal(t, []int64{1001, 1002}, auto.Correspondence.Translate([]int64{1, 2, 99}))

	transit, err := s.Build(network.ModeTransit)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, transit.Graph.AllNodes())
	assert.Equal(t, []int64{1, 4}, transit.Candidates())
	assert.Equal(t, []int64{1, 2, 3}, auto.Candidates())

	_, err = s.Build(network.Mode(9))
	assert.ErrorIs(t, err, network.ErrUnknownMode)
}

func TestBuild_BackwardLink(t *testing.T) {
	s := &network.Supply{
		Nodes: []network.Node{{ID: 1}, {ID: 2}},
		Links: []network.Link{{ID: 7, A: 1, B: 2, Direction: network.BA, Length: 3}},
	}
	n, err := s.Build(network.ModeAuto)
	require.NoError(t, err)
	two, _ := n.Graph.Index(2)
	one, _ := n.Graph.Index(1)
	require.Len(t, n.Graph.Out(two), 1)
	assert.Equal(t, core.Arc{From: two, To: one, Cost: 3, Link: 7}, n.Graph.Out(two)[0])
}

func TestLinkFilter(t *testing.T) {
	s := load(t)

	f, err := network.NewLinkFilter(`link_type != "ferry"`)
	require.NoError(t, err)
	assert.Equal(t, `link_type != "ferry"`, f.String())

	walk, err := s.Build(network.ModeWalk, network.WithLinkFilter(f))
	require.NoError(t, err)
	assert.Equal(t, 2, walk.Graph.ArcCount())
	assert.Equal(t, []int64{1, 2, 3}, walk.Graph.AllNodes(), "nodes survive link filtering")

	f, err = network.NewLinkFilter(`length >= 50.0 && "transit" in modes`)
	require.NoError(t, err)
	ok, err := f.Match(network.Link{ID: 1, Length: 60, Modes: []string{"transit"}})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.Match(network.Link{ID: 2, Length: 60})
	require.NoError(t, err)
	assert.False(t, ok)

	for _, expr := range []string{`true`, `length > 0.0`, `link_type == "" || id > 0`} {
		f, err := network.NewLinkFilter(expr)
		require.NoError(t, err, expr)
		ok, err := f.Match(network.Link{ID: 3, Length: 1})
		require.NoError(t, err, expr)
		assert.True(t, ok, expr)
	}

	_, err = network.NewLinkFilter(`length + 1.0`)
	assert.ErrorIs(t, err, network.ErrBadFilter)
	_, err = network.NewLinkFilter(`nope ==`)
	assert.ErrorIs(t, err, network.ErrBadFilter)
}

func TestCorrespondence(t *testing.T) {
	var identity *network.Correspondence
	assert.Equal(t, []int64{5, 6}, identity.Translate([]int64{5, 6}))
	assert.Zero(t, identity.Len())

	c, err := network.NewCorrespondence([]int64{1, 2}, []int64{10, 20})
	require.NoError(t, err)
	net, ok := c.Lookup(2)
	assert.True(t, ok)
	assert.EqualValues(t, 20, net)
	_, ok = c.Lookup(3)
	assert.False(t, ok)
}

func TestWriteHCL_RoundTrip(t *testing.T) {
	s := load(t)

	var buf bytes.Buffer
	require.NoError(t, network.WriteHCL(&buf, s))
	assert.Contains(t, buf.String(), `correspondence "auto"`)

	back, err := network.ParseHCL(buf.Bytes(), "written.hcl")
	require.NoError(t, err)
	assert.Equal(t, s.Nodes, back.Nodes)
	assert.Equal(t, s.Links, back.Links)
	assert.Equal(t, s.Turns, back.Turns)
	assert.Equal(t, s.TransitStops, back.TransitStops)
	g1, n1 := s.Correspondence[network.ModeAuto].Pairs()
	g2, n2 := back.Correspondence[network.ModeAuto].Pairs()
	assert.Equal(t, g1, g2)
	assert.Equal(t, n1, n2)
}
