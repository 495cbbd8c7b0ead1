package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/core"
	"github.com/lnpathfind/pathfind/lnwire"
)

func node(b byte) lnwire.NodeID {
	var raw [33]byte
	raw[0] = 0x02 // even-Y compressed prefix
	raw[32] = b

	return lnwire.NodeID(raw)
}

type DirectedGraphSuite struct {
	suite.Suite
	g       *core.DirectedGraph
	a, b, c lnwire.NodeID
	descAB  channeldb.ChannelDesc
}

func (s *DirectedGraphSuite) SetupTest() {
	s.g = core.New()
	s.a, s.b, s.c = node(1), node(2), node(3)
	s.descAB = channeldb.ChannelDesc{ChannelID: 100, From: s.a, To: s.b}
}

func (s *DirectedGraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.ContainsVertex(s.a))
	s.g.AddVertex(s.a)
	s.g.AddVertex(s.a)
	require.True(s.g.ContainsVertex(s.a))
	require.Equal(1, s.g.VertexCount())
}

func (s *DirectedGraphSuite) TestAddEdgeCreatesEndpoints() {
	require := require.New(s.T())
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{FeeBase: 1}, 1000)
	require.True(s.g.ContainsVertex(s.a))
	require.True(s.g.ContainsVertex(s.b))
	require.True(s.g.ContainsEdge(s.descAB))
	require.Equal(1, s.g.EdgeCount())
}

func (s *DirectedGraphSuite) TestAddEdgeReplaces() {
	require := require.New(s.T())
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{FeeBase: 1}, 1000)
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{FeeBase: 99}, 1000)
	e, err := s.g.GetEdge(s.descAB)
	require.NoError(err)
	require.EqualValues(99, e.Update.FeeBase)
	require.Equal(1, s.g.EdgeCount(), "same desc must replace, not duplicate")
}

func (s *DirectedGraphSuite) TestParallelEdgesCoexist() {
	require := require.New(s.T())
	descOther := channeldb.ChannelDesc{ChannelID: 200, From: s.a, To: s.b}
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{FeeBase: 1}, 1000)
	s.g.AddEdge(descOther, channeldb.ChannelUpdate{FeeBase: 2}, 1000)
	require.Equal(2, s.g.EdgeCount())
	require.Len(s.g.Outgoing(s.a), 2)
}

func (s *DirectedGraphSuite) TestOutgoingIncoming() {
	require := require.New(s.T())
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{FeeBase: 1}, 1000)
	require.Len(s.g.Outgoing(s.a), 1)
	require.Len(s.g.Incoming(s.b), 1)
	require.Len(s.g.Outgoing(s.b), 0, "directed edge must not appear as outgoing at b")
	require.Len(s.g.Incoming(s.a), 0)
}

func (s *DirectedGraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{}, 1000)
	require.NoError(s.g.RemoveEdge(s.descAB))
	require.False(s.g.ContainsEdge(s.descAB))
	require.True(s.g.ContainsVertex(s.a), "removing an edge must not remove its endpoints")
	require.ErrorIs(s.g.RemoveEdge(s.descAB), core.ErrEdgeNotFound)
}

func (s *DirectedGraphSuite) TestRemoveVertexRequiresDegreeZero() {
	require := require.New(s.T())
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{}, 1000)
	require.ErrorIs(s.g.RemoveVertex(s.a), core.ErrVertexHasEdges)
	require.NoError(s.g.RemoveEdge(s.descAB))
	require.NoError(s.g.RemoveVertex(s.a))
	require.False(s.g.ContainsVertex(s.a))
}

func (s *DirectedGraphSuite) TestVerticesSortedByteLexicographic() {
	require := require.New(s.T())
	s.g.AddVertex(s.c)
	s.g.AddVertex(s.a)
	s.g.AddVertex(s.b)
	got := s.g.Vertices()
	require.True(got[0].Less(got[1]))
	require.True(got[1].Less(got[2]))
}

func (s *DirectedGraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{FeeBase: 1}, 1000)
	clone := s.g.Clone()

	descNew := channeldb.ChannelDesc{ChannelID: 999, From: s.b, To: s.c}
	clone.AddEdge(descNew, channeldb.ChannelUpdate{}, 1000)

	require.False(s.g.ContainsEdge(descNew), "mutating a clone must not mutate the source")
	require.Equal(1, s.g.EdgeCount())
	require.Equal(2, clone.EdgeCount())
}

func (s *DirectedGraphSuite) TestSubgraphKeepsOnlyRequestedEndpoints() {
	require := require.New(s.T())
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{}, 1000)
	s.g.AddEdge(channeldb.ChannelDesc{ChannelID: 2, From: s.b, To: s.c}, channeldb.ChannelUpdate{}, 1000)

	sub := core.Subgraph(s.g, map[lnwire.NodeID]bool{s.a: true, s.b: true})
	require.True(sub.ContainsEdge(s.descAB))
	require.Equal(1, sub.EdgeCount())
	require.False(sub.ContainsVertex(s.c))
}

func (s *DirectedGraphSuite) TestGetIgnoredChannelDescs() {
	require := require.New(s.T())
	descBC := channeldb.ChannelDesc{ChannelID: 2, From: s.b, To: s.c}
	s.g.AddEdge(s.descAB, channeldb.ChannelUpdate{}, 1000)
	s.g.AddEdge(descBC, channeldb.ChannelUpdate{}, 1000)

	ignored := core.GetIgnoredChannelDescs(s.g, map[lnwire.NodeID]struct{}{s.b: {}})
	require.Contains(ignored, s.descAB)
	require.Contains(ignored, descBC)
	require.Len(ignored, 2)
}

func TestDirectedGraphSuite(t *testing.T) {
	suite.Run(t, new(DirectedGraphSuite))
}
