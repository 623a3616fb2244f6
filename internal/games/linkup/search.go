package linkup

import "container/heap"

// Direction is a unit step on the grid.
type Direction int8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// expansion order for neighbours; fixed so searches are reproducible
var stepOrder = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the row and column offsets of one step.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// directionBetween returns the unit direction from one point to another
// along a row or column. Equal or diagonal points give DirNone.
func directionBetween(from, to PathPoint) Direction {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	switch {
	case dr == 0 && dc > 0:
		return DirRight
	case dr == 0 && dc < 0:
		return DirLeft
	case dc == 0 && dr > 0:
		return DirDown
	case dc == 0 && dr < 0:
		return DirUp
	default:
		return DirNone
	}
}

// searchKey is a search state. Cost depends on the arrival direction, so the
// same cell may be held under up to five keys.
type searchKey struct {
	cell PathPoint
	dir  Direction
}

type searchNode struct {
	key    searchKey
	g      int // cost so far
	f      int // g + heuristic
	seq    int // insertion order, breaks f ties
	parent *searchNode
}

// frontier is a min-heap on (f, seq).
type frontier []*searchNode

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(*searchNode)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

// findRoute runs a turn-penalised best-first search over the padded grid
// from start to goal, both in padded coordinates. It returns the visited
// cells in order, or nil when the goal cannot be reached.
//
// The Manhattan heuristic is admissible for the step cost alone but not once
// turn penalties are added, so the route is short and low-turn rather than
// guaranteed turn-minimal.
func findRoute(grid *SearchGrid, start, goal PathPoint, turnPenalty int, stats *Stats) []PathPoint {
	if !grid.Free(start.Row, start.Col) || !grid.Free(goal.Row, goal.Col) {
		return nil
	}

	best := make(map[searchKey]int)
	open := &frontier{}
	seq := 0

	root := &searchNode{
		key: searchKey{cell: start, dir: DirNone},
		f:   start.Manhattan(goal),
	}
	best[root.key] = 0
	heap.Push(open, root)

	for open.Len() > 0 {
		node := heap.Pop(open).(*searchNode)
		if node.g > best[node.key] {
			continue // superseded by a cheaper arrival
		}
		stats.Expanded++

		if node.key.cell == goal {
			return unwind(node)
		}

		for _, d := range stepOrder {
			dr, dc := d.Delta()
			next := PathPoint{Row: node.key.cell.Row + dr, Col: node.key.cell.Col + dc}
			if !grid.Free(next.Row, next.Col) {
				continue
			}

			cost := node.g + 1
			if node.key.dir != DirNone && node.key.dir != d {
				cost += turnPenalty
			}

			key := searchKey{cell: next, dir: d}
			if known, ok := best[key]; ok && cost >= known {
				continue
			}
			best[key] = cost

			seq++
			heap.Push(open, &searchNode{
				key:    key,
				g:      cost,
				f:      cost + next.Manhattan(goal),
				seq:    seq,
				parent: node,
			})
		}
	}

	return nil
}

// unwind rebuilds the route ending at node.
func unwind(node *searchNode) []PathPoint {
	var route []PathPoint
	for n := node; n != nil; n = n.parent {
		route = append(route, n.key.cell)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// launchPoints returns the free padded neighbours of a tile, in step order.
func launchPoints(grid *SearchGrid, t Tile) []PathPoint {
	origin := toPadded(t.Point())
	points := make([]PathPoint, 0, len(stepOrder))
	for _, d := range stepOrder {
		dr, dc := d.Delta()
		p := PathPoint{Row: origin.Row + dr, Col: origin.Col + dc}
		if grid.Free(p.Row, p.Col) {
			points = append(points, p)
		}
	}
	return points
}
