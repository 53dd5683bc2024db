package islands

import (
	"context"

	"github.com/katalvlaran/netcheck/core"
)

// SCCDetector groups candidates by strongly connected component of g.
//
// Unlike ProbeDetector its result does not depend on candidate order: two
// candidates share an island iff each reaches the other. Islands appear in
// order of the first candidate that belongs to them; members are listed in
// graph order. Candidates missing from g become singleton islands.
type SCCDetector struct{}

// NewSCCDetector returns an SCCDetector.
func NewSCCDetector() *SCCDetector { return &SCCDetector{} }

// Detect partitions candidates into strongly connected groups.
//
// Complexity: O(V+E) for Tarjan plus O(V) grouping.
func (SCCDetector) Detect(ctx context.Context, g *core.Graph, candidates []int64) (Islands, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	work := dedupe(candidates)
	out := Islands{}
	if len(work) == 0 {
		return out, nil
	}
	comp, err := tarjan(ctx, g)
	if err != nil {
		return nil, err
	}

	wanted := make(map[int64]struct{}, len(work))
	for _, id := range work {
		wanted[id] = struct{}{}
	}
	// members per component, in graph order
	members := make(map[int][]int64)
	for i := 0; i < g.NodeCount(); i++ {
		if _, ok := wanted[g.NodeAt(i)]; ok {
			members[comp[i]] = append(members[comp[i]], g.NodeAt(i))
		}
	}

	emitted := make(map[int]bool)
	for _, id := range work {
		i, ok := g.Index(id)
		if !ok {
			out = append(out, []int64{id})
			continue
		}
		if c := comp[i]; !emitted[c] {
			emitted[c] = true
			out = append(out, members[c])
		}
	}

	return out, nil
}

// tarjan labels every dense index with its component number.
// Iterative, so deep road chains do not grow the goroutine stack.
func tarjan(ctx context.Context, g *core.Graph) ([]int, error) {
	n := g.NodeCount()
	const unvisited = -1
	index := make([]int, n)
	low := make([]int, n)
	comp := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
	}

	type frame struct{ v, next int }
	var (
		stack   []int
		call    []frame
		counter int
		ncomp   int
	)
	for root := 0; root < n; root++ {
		if index[root] != unvisited {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		index[root], low[root] = counter, counter
		counter++
		stack = append(stack, root)
		onStack[root] = true
		lo, _ := g.OutRange(root)
		call = append(call, frame{v: root, next: lo})

		for len(call) > 0 {
			top := &call[len(call)-1]
			v := top.v
			_, hi := g.OutRange(v)
			if top.next < hi {
				w := g.Arc(top.next).To
				top.next++
				switch {
				case index[w] == unvisited:
					index[w], low[w] = counter, counter
					counter++
					stack = append(stack, w)
					onStack[w] = true
					wlo, _ := g.OutRange(w)
					call = append(call, frame{v: w, next: wlo})
				case onStack[w]:
					low[v] = min(low[v], index[w])
				}
				continue
			}

			call = call[:len(call)-1]
			if len(call) > 0 {
				p := call[len(call)-1].v
				low[p] = min(low[p], low[v])
			}
			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = ncomp
					if w == v {
						break
					}
				}
				ncomp++
			}
		}
	}

	return comp, nil
}
