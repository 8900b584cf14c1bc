package game

// Move describes one turn: a placement refills the mover's empty home
// squares and carries no coordinates, while a jump relocates the stone at
// Origin to Target, two squares away across a midpoint. A move with exactly
// one coordinate set fits neither shape; Position.Play accepts it as a
// board-preserving pass.
type Move struct {
	Origin *Square
	Target *Square
}

// Placement returns the stone-generation move.
func Placement() Move {
	return Move{}
}

// Jump returns a move relocating the stone at origin to target.
func Jump(origin, target Square) Move {
	return Move{Origin: &origin, Target: &target}
}

// IsPlacement reports whether the move carries no coordinates.
func (m Move) IsPlacement() bool {
	return m.Origin == nil && m.Target == nil
}

// IsJump reports whether the move carries both coordinates.
func (m Move) IsJump() bool {
	return m.Origin != nil && m.Target != nil
}

// Center derives the floor midpoint of origin and target. It reports false
// for moves that are not jumps. The midpoint is only meaningful when the two
// squares are an even vector apart; Center does not re-validate that.
func (m Move) Center() (Square, bool) {
	if !m.IsJump() {
		return Square{}, false
	}
	return m.Origin.Add(*m.Target).Div(2), true
}

// String renders the move in plain notation: "+" for a placement, "b1-d3"
// for a jump.
func (m Move) String() string {
	switch {
	case m.IsPlacement():
		return "+"
	case m.IsJump():
		return m.Origin.String() + "-" + m.Target.String()
	case m.Origin != nil:
		return m.Origin.String() + "-"
	default:
		return "-" + m.Target.String()
	}
}
