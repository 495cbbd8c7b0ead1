// File: blacklist.go
// Role: GetIgnoredChannelDescs expands a set of ignored nodes into the
// full set of ChannelDescs touching any of them, in either direction, so
// callers avoiding a node that has previously failed can pass a pure edge
// blacklist into a search.
package core

import (
	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
)

// GetIgnoredChannelDescs returns every ChannelDesc in g with either
// endpoint in ignoreNodes.
func GetIgnoredChannelDescs(g *DirectedGraph, ignoreNodes map[lnwire.NodeID]struct{}) map[channeldb.ChannelDesc]struct{} {
	result := make(map[channeldb.ChannelDesc]struct{})
	if len(ignoreNodes) == 0 {
		return result
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for desc := range g.edges {
		if _, ok := ignoreNodes[desc.From]; ok {
			result[desc] = struct{}{}
			continue
		}
		if _, ok := ignoreNodes[desc.To]; ok {
			result[desc] = struct{}{}
		}
	}

	return result
}
