package game

// CheckWin reports the side whose king stands on the center, provided the
// last move landed there. Any other square yields NoSide.
func CheckWin(b Board, lastMovedTo Position) (Side, bool) {
	if lastMovedTo != Center {
		return NoSide, false
	}
	cell := b[Center.Row][Center.Col]
	if !cell.IsKing() {
		return NoSide, false
	}
	return cell.Side(), true
}
