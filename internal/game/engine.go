package game

import "fmt"

// Rule selects how a requested destination is turned into a landing square.
type Rule int

const (
	// RuleExact lands on the requested square, which must lie on the clear slide path.
	RuleExact Rule = iota
	// RuleFarthest uses the requested square only for direction and slides until blocked.
	RuleFarthest
)

func (r Rule) String() string {
	if r == RuleFarthest {
		return "farthest"
	}
	return "exact"
}

func ParseRule(v string) (Rule, error) {
	switch v {
	case "", "exact":
		return RuleExact, nil
	case "farthest":
		return RuleFarthest, nil
	}
	return RuleExact, fmt.Errorf("unknown slide rule %q", v)
}

// Resolve dispatches to ResolveExactMove or ResolveMove.
func (r Rule) Resolve(b Board, from, to Position, side Side) (Position, bool) {
	if r == RuleFarthest {
		return ResolveMove(b, from, to, side)
	}
	return ResolveExactMove(b, from, to, side)
}

// SlideDestination walks from `from` along d and returns the last in-bounds empty
// square. It returns `from` when the first step is off the board or occupied.
func SlideDestination(b Board, from Position, d Direction) Position {
	if d.DRow == 0 && d.DCol == 0 {
		return from
	}
	cur := from
	for {
		next := cur.Add(d)
		if !next.InBounds() || b[next.Row][next.Col] != Empty {
			return cur
		}
		cur = next
	}
}

// ResolveMove returns the farthest open square in the direction of from→to.
// The caller's `to` is trusted only for direction.
func ResolveMove(b Board, from, to Position, side Side) (Position, bool) {
	d, ok := direction(b, from, to, side)
	if !ok {
		return from, false
	}
	dest := SlideDestination(b, from, d)
	if dest == from {
		return from, false
	}
	return dest, true
}

// ResolveExactMove returns `to` itself when it lies on the clear path between
// `from` (exclusive) and the slide destination (inclusive).
func ResolveExactMove(b Board, from, to Position, side Side) (Position, bool) {
	d, ok := direction(b, from, to, side)
	if !ok {
		return from, false
	}
	limit := SlideDestination(b, from, d)
	for cur := from; cur != limit; {
		cur = cur.Add(d)
		if cur == to {
			return to, true
		}
	}
	return from, false
}

// direction validates ownership and geometry and returns the unit step from→to.
func direction(b Board, from, to Position, side Side) (Direction, bool) {
	if !from.InBounds() || !to.InBounds() {
		return Direction{}, false
	}
	if side == NoSide || b[from.Row][from.Col].Side() != side {
		return Direction{}, false
	}
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr == 0 && dc == 0 {
		return Direction{}, false
	}
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return Direction{}, false
	}
	return Direction{DRow: sign(dr), DCol: sign(dc)}, true
}

// Apply moves the cell at from to to. Callers must only pass a resolved move.
func Apply(b *Board, from, to Position) {
	b[to.Row][to.Col] = b[from.Row][from.Col]
	b[from.Row][from.Col] = Empty
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
