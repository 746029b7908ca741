package linearblock

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathanhack/lincode/linearblock/gf2"
)

//Node is a node of the tanner graph, either a check (row of H) or a variable (column of H)
type Node struct {
	Index int
	Check bool
}

//Cycle is the closed sequence of nodes of a cycle, the last node connects back to the first
type Cycle []Node

//String returns a standard rep of the cycle
func (c Cycle) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, n := range c {
		if n.Check {
			sb.WriteString(fmt.Sprintf("c:%v", n.Index))
		} else {
			sb.WriteString(fmt.Sprintf("v:%v", n.Index))
		}
		if i < len(c)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

//Equal compares two cycles to see if they are equal. To be equal
// the first node must be equal but they could be walked in opposite directions.
func (c Cycle) Equal(c2 Cycle) bool {
	if len(c) != len(c2) {
		return false
	}
	if len(c) == 0 {
		return true
	}
	if c[0] != c2[0] {
		return false
	}

	t1 := c[1:]
	t2 := c2[1:]

	forward := true
	for i, n := range t1 {
		if t2[i] != n {
			forward = false
			break
		}
	}
	if forward {
		return true
	}

	l := len(t1)
	for i, n := range t1 {
		if t2[l-1-i] != n {
			return false
		}
	}
	return true
}

//tanner is the bipartite graph of H. Nodes are numbered checks first then variables.
type tanner struct {
	checks    int
	neighbors [][]int
}

func newTanner(H *gf2.Matrix) tanner {
	checks := H.RowCount()
	neighbors := make([][]int, checks+H.ColumnCount())
	for r, positions := range H.RowPositions() {
		for _, c := range positions {
			neighbors[r] = append(neighbors[r], checks+c)
		}
	}
	for c, positions := range H.ColumnPositions() {
		neighbors[checks+c] = append(neighbors[checks+c], positions...)
	}
	return tanner{checks: checks, neighbors: neighbors}
}

func (t tanner) node(id int) Node {
	if id < t.checks {
		return Node{Index: id, Check: true}
	}
	return Node{Index: id - t.checks}
}

//shortestCycleFrom runs a BFS from the root check and returns the first cycle it closes,
// or nil if there is none of length <= limit (limit <= 0 is unbounded).
func (t tanner) shortestCycleFrom(ctx context.Context, root, limit int) []int {
	if len(t.neighbors[root]) <= 1 {
		//a check with one variable can not be on a cycle
		return nil
	}

	dist := make([]int, len(t.neighbors))
	parent := make([]int, len(t.neighbors))
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	dist[root] = 0
	queue := []int{root}

	for steps := 0; len(queue) > 0; steps++ {
		if steps%256 == 0 && ctx.Err() != nil {
			return nil
		}
		u := queue[0]
		queue = queue[1:]
		if limit > 0 && 2*dist[u] > limit {
			return nil
		}

		for _, w := range t.neighbors[u] {
			if w == parent[u] {
				continue
			}
			if dist[w] == -1 {
				dist[w] = dist[u] + 1
				parent[w] = u
				queue = append(queue, w)
				continue
			}
			if limit > 0 && dist[u]+dist[w]+1 > limit {
				return nil
			}
			return closeCycle(parent, u, w)
		}
	}
	return nil
}

func pathToRoot(parent []int, id int) []int {
	path := make([]int, 0)
	for ; id != -1; id = parent[id] {
		path = append(path, id)
	}
	reverse(path)
	return path
}

//closeCycle joins the tree paths to u and w with the edge u-w, dropping their common prefix
func closeCycle(parent []int, u, w int) []int {
	a := pathToRoot(parent, u)
	b := pathToRoot(parent, w)

	common := 0
	for common < len(a) && common < len(b) && a[common] == b[common] {
		common++
	}

	cycle := append([]int{}, a[common-1:]...)
	tail := append([]int{}, b[common:]...)
	reverse(tail)
	return append(cycle, tail...)
}

func reverse(ids []int) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}

//SmallestCycle returns a shortest cycle of the tanner graph of H, nil if the graph is acyclic.
// The result does not depend on threads.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func SmallestCycle(ctx context.Context, H *gf2.Matrix, threads int) (Cycle, error) {
	t := newTanner(H)
	root, ids, err := t.search(ctx, -1, threads)
	if err != nil || root == -1 {
		return nil, err
	}

	cycle := make(Cycle, len(ids))
	for i, id := range ids {
		cycle[i] = t.node(id)
	}
	return cycle, nil
}
