package contract

// auxGraph is the contraction engine's auxiliary multigraph: nodes are
// (diagram index, singular height) pairs, addressed by a dense id.
// Connectivity edges (conn) drive SCC analysis and may include synthetic
// reverse edges added only to force two spanned nodes into one component;
// span edges (spans) are the forward, semantically-real spans used to
// recurse one dimension down and to build the SCC-DAG.
type auxGraph struct {
	offsets []int
	n       int
	conn    [][]int
	owner   []int
	height  []int
	spans   []Span
}

func newAuxGraph(sizes []int) *auxGraph {
	offsets := make([]int, len(sizes))
	total := 0
	for i, s := range sizes {
		offsets[i] = total
		total += s
	}
	owner := make([]int, total)
	height := make([]int, total)
	for i, s := range sizes {
		for h := 0; h < s; h++ {
			owner[offsets[i]+h] = i
			height[offsets[i]+h] = h
		}
	}
	return &auxGraph{offsets: offsets, n: total, conn: make([][]int, total), owner: owner, height: height}
}

func (g *auxGraph) id(i, h int) int { return g.offsets[i] + h }

func (g *auxGraph) addConnEdge(from, to int) { g.conn[from] = append(g.conn[from], to) }

func (g *auxGraph) addSpanEdge(sp Span) { g.spans = append(g.spans, sp) }

// tarjanSCCs computes strongly-connected components of conn. Components
// are returned in the order Tarjan's algorithm closes them off, which is
// reverse-topological; callers that need topological order reverse the
// slice. Iterative with an explicit frame stack, in the same spirit as
// the teacher's iterative union-find find: this graph's depth is bounded
// by diagram size, but recursion depth is not a resource worth risking.
func (g *auxGraph) tarjanSCCs() [][]int {
	const unvisited = -1

	index := make([]int, g.n)
	low := make([]int, g.n)
	onStack := make([]bool, g.n)
	for i := range index {
		index[i] = unvisited
	}
	var stack []int
	var result [][]int
	counter := 0

	type frame struct {
		v        int
		childIdx int
	}

	for start := 0; start < g.n; start++ {
		if index[start] != unvisited {
			continue
		}
		work := []frame{{v: start}}
		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.v
			if top.childIdx == 0 {
				index[v] = counter
				low[v] = counter
				counter++
				stack = append(stack, v)
				onStack[v] = true
			}

			descended := false
			for top.childIdx < len(g.conn[v]) {
				w := g.conn[v][top.childIdx]
				top.childIdx++
				if index[w] == unvisited {
					work = append(work, frame{v: w})
					descended = true
					break
				}
				if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
			}
			if descended {
				continue
			}

			if low[v] == index[v] {
				var comp []int
				for {
					n := len(stack) - 1
					w := stack[n]
					stack = stack[:n]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				result = append(result, comp)
			}

			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}
		}
	}
	return result
}
