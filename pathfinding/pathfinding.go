// The pathfinding package runs Dijkstra shortest-path queries over the
// waypoint graph. The graph is a dense weight matrix; absent edges carry
// +Inf. Node positions never change during a session, so the matrix is
// built once and queried every frame.
package pathfinding

import (
	"container/heap"
	"math"

	"github.com/albertgoncalves/pathrs/geom"
	"github.com/bloeys/gglm/gglm"
)

type node struct {
	index int
	cost  float32
}

// Min-heap by cost, ties broken by index for determinism.
type nodeHeap []node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {

	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].index < h[j].index
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	out := old[n-1]
	*h = old[:n-1]
	return out
}

// BuildWeights returns the dense n*n weight matrix of the waypoint graph:
// euclidean distance for every edge, +Inf elsewhere. Edges are directed
// index pairs into nodes.
func BuildWeights(nodes []gglm.Vec2, edges [][2]int) []float32 {

	n := len(nodes)
	inf := float32(math.Inf(1))

	weights := make([]float32, n*n)
	for i := range weights {
		weights[i] = inf
	}

	for _, e := range edges {
		weights[e[0]*n+e[1]] = geom.Dist2(nodes[e[0]], nodes[e[1]])
	}

	return weights
}

// ShortestPath returns the node indices from start to end inclusive, and
// the number of nodes popped from the frontier while searching. A nil path
// means end is unreachable from start.
func ShortestPath(weights []float32, n, start, end int) ([]int, int) {

	if start == end {
		return []int{start}, 0
	}

	inf := float32(math.Inf(1))

	costs := make([]float32, n)
	prev := make([]int, n)
	for i := 0; i < n; i++ {
		costs[i] = inf
		prev[i] = n
	}
	costs[start] = 0

	visited := 0

	frontier := &nodeHeap{{index: start, cost: 0}}
	for frontier.Len() > 0 {

		cur := heap.Pop(frontier).(node)
		visited++

		if cur.index == end {
			break
		}

		// Stale entry, a cheaper route was already expanded.
		if costs[cur.index] < cur.cost {
			continue
		}

		for i := 0; i < n; i++ {

			if i == cur.index {
				continue
			}

			weight := weights[cur.index*n+i]
			if math.IsInf(float64(weight), 1) {
				continue
			}

			cost := cur.cost + weight
			if cost < costs[i] {
				costs[i] = cost
				prev[i] = cur.index
				heap.Push(frontier, node{index: i, cost: cost})
			}
		}
	}

	if prev[end] == n {
		return nil, visited
	}

	path := []int{}
	for i := end; i != start; i = prev[i] {
		path = append(path, i)
	}
	path = append(path, start)

	// Reverse into start..end order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, visited
}
