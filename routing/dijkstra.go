// File: dijkstra.go
// Role: the modified, backward-running Dijkstra search: a runner struct
// driving a container/heap priority queue with lazy decrease-key,
// generalized from a single scalar distance to the multi-field RichWeight
// accumulator and run from target to source instead of source to target.
package routing

import (
	"container/heap"
	"context"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/core"
	"github.com/lnpathfind/pathfind/lnwire"
)

// BoundaryPredicate is an optional filter on RichWeight that backwardSearch
// applies to every tentative accumulator, beyond the hard caps already
// enforced by RouteParams. No exported entry point supplies one:
// YenKShortestPaths (and so FindRoute) always searches with a nil predicate.
type BoundaryPredicate func(RichWeight) bool

// searchResult is the internal, edge-sequence form of a found path,
// shared by FindRoute and the Yen enumerator.
type searchResult struct {
	edges   []*channeldb.GraphEdge
	amounts []lnwire.MilliSatoshi
	weight  float64
}

// backwardSearch runs a single-source-target shortest path search from
// target to source. amount is the payment amount to deliver to target.
// boundary may be nil.
func backwardSearch(
	ctx context.Context,
	g *core.DirectedGraph,
	source, target lnwire.NodeID,
	amount lnwire.MilliSatoshi,
	restrictions *Restrictions,
	boundary BoundaryPredicate,
	params *RouteParams,
) (*searchResult, error) {

	if source == target {
		return nil, ErrCannotRouteToSelf
	}

	r := &runner{
		g:            g,
		source:       source,
		target:       target,
		restrictions: restrictions,
		boundary:     boundary,
		params:       params,
		best:         make(map[lnwire.NodeID]RichWeight),
		pred:         make(map[lnwire.NodeID]*channeldb.GraphEdge),
		visited:      make(map[lnwire.NodeID]bool),
	}
	r.init(amount)

	if err := r.process(ctx); err != nil {
		return nil, err
	}
	if !r.visited[source] {
		log.Debugf("no path found from %x to %x for %v msat", source[:4], target[:4], amount)
		return nil, ErrRouteNotFound
	}

	return r.reconstruct(), nil
}

// runner holds the mutable state for a single backward-search execution.
type runner struct {
	g            *core.DirectedGraph
	source       lnwire.NodeID
	target       lnwire.NodeID
	restrictions *Restrictions
	boundary     BoundaryPredicate
	params       *RouteParams

	best    map[lnwire.NodeID]RichWeight
	pred    map[lnwire.NodeID]*channeldb.GraphEdge
	visited map[lnwire.NodeID]bool
	pq      weightPQ
}

func (r *runner) init(amount lnwire.MilliSatoshi) {
	start := RichWeight{Cost: amount, Cltv: 0, Length: 0, Weight: 0}
	r.best[r.target] = start
	heap.Init(&r.pq)
	heap.Push(&r.pq, &weightItem{vertex: r.target, weight: start})
}

// process is the main loop: pop the minimum-weight vertex, relax its
// backward neighbors, repeat until source is reached or the queue empties.
func (r *runner) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ErrCancelled
		default:
		}

		item := heap.Pop(&r.pq).(*weightItem)
		v := item.vertex
		if r.visited[v] {
			continue
		}
		// Stale entry: a better weight for v was already pushed.
		if item.weight.Weight > r.best[v].Weight {
			continue
		}
		r.visited[v] = true
		if v == r.source {
			return nil
		}

		r.relax(v)
	}

	return nil
}

// relax enumerates candidate predecessor edges of v (graph incoming edges
// plus matching extra edges) and attempts to improve best[u] for each
// candidate u.
func (r *runner) relax(v lnwire.NodeID) {
	incoming := r.g.Incoming(v)
	candidates := candidateEdges(incoming, v, r.restrictions)

	accV := r.best[v]
	maxLength := r.params.EffectiveMaxLength()

	for _, e := range candidates {
		desc := e.Desc
		u := desc.From

		if r.restrictions.isRejected(desc) {
			continue
		}
		if !channeldb.EdgeFeasible(e.Update, accV.Cost) {
			continue
		}

		ctx := edgeContext{
			predecessorIsSource: u == r.source,
			currentBlockHeight:  r.params.CurrentBlockHeight,
			ratios:              r.params.Ratios,
		}
		candidate := relax(e, accV, ctx)

		if candidate.Length > maxLength {
			continue
		}
		if r.params.RouteMaxCltv > 0 && candidate.Cltv > r.params.RouteMaxCltv {
			continue
		}
		if r.boundary != nil && !r.boundary(candidate) {
			continue
		}

		prior, known := r.best[u]
		if !known || candidate.Weight < prior.Weight {
			r.best[u] = candidate
			r.pred[u] = e
			heap.Push(&r.pq, &weightItem{vertex: u, weight: candidate})
		}
	}
}

// reconstruct walks pred from source forward to target, yielding edges in
// path order along with the amount each edge forwards (the amount that
// was required at the edge's downstream endpoint when it was relaxed).
func (r *runner) reconstruct() *searchResult {
	edges := make([]*channeldb.GraphEdge, 0, r.best[r.source].Length)
	amounts := make([]lnwire.MilliSatoshi, 0, cap(edges))

	cur := r.source
	for cur != r.target {
		e := r.pred[cur]
		edges = append(edges, e)
		amounts = append(amounts, r.best[e.Desc.To].Cost)
		cur = e.Desc.To
	}

	return &searchResult{
		edges:   edges,
		amounts: amounts,
		weight:  r.best[r.source].Weight,
	}
}

// weightItem is one entry in the search priority queue.
type weightItem struct {
	vertex lnwire.NodeID
	weight RichWeight
}

// weightPQ orders by (Weight asc, Length asc, then a deterministic
// tiebreak on vertex bytes) so that, with params.Randomize == false,
// the search visits vertices in a reproducible order.
type weightPQ []*weightItem

func (pq weightPQ) Len() int { return len(pq) }

func (pq weightPQ) Less(i, j int) bool {
	if pq[i].weight.Weight != pq[j].weight.Weight {
		return pq[i].weight.Weight < pq[j].weight.Weight
	}
	if pq[i].weight.Length != pq[j].weight.Length {
		return pq[i].weight.Length < pq[j].weight.Length
	}

	return pq[i].vertex.Less(pq[j].vertex)
}

func (pq weightPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *weightPQ) Push(x interface{}) { *pq = append(*pq, x.(*weightItem)) }

func (pq *weightPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
