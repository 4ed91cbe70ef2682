package game

// PieceCount counts the cells owned by side, king included.
func PieceCount(b Board, side Side) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c].Side() == side {
				n++
			}
		}
	}
	return n
}

// FindKing returns the position of side's king.
func FindKing(b Board, side Side) (Position, bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c].IsKing() && b[r][c].Side() == side {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// LegalMoves generates every move side can make under rule, scanning the board
// row by row and directions in Directions order.
func LegalMoves(b Board, side Side, rule Rule) []Move {
	if side == NoSide {
		return nil
	}
	var moves []Move

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			from := Position{Row: r, Col: c}
			if b[r][c].Side() != side {
				continue
			}

			for _, d := range Directions {
				dest := SlideDestination(b, from, d)
				if dest == from {
					continue
				}

				// Farthest only ever has one landing square per direction
				if rule == RuleFarthest {
					moves = append(moves, Move{From: from, To: dest})
					continue
				}

				for cur := from; cur != dest; {
					cur = cur.Add(d)
					moves = append(moves, Move{From: from, To: cur})
				}
			}
		}
	}

	return moves
}
