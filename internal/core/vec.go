package core

// P is an integer point on the world or cell lattice.
type P struct {
	X int
	Y int
}

// Pt is shorthand for constructing a point.
func Pt(x, y int) P { return P{X: x, Y: y} }

// Add returns p + q componentwise.
func (p P) Add(q P) P { return P{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q componentwise.
func (p P) Sub(q P) P { return P{p.X - q.X, p.Y - q.Y} }

// Mul scales both components by s.
func (p P) Mul(s int) P { return P{p.X * s, p.Y * s} }

// DivFloor divides both components by s, rounding toward negative infinity.
func (p P) DivFloor(s int) P { return P{FloorDiv(p.X, s), FloorDiv(p.Y, s)} }

// MinP returns the componentwise minimum of a and b.
func MinP(a, b P) P {
	if b.X < a.X {
		a.X = b.X
	}
	if b.Y < a.Y {
		a.Y = b.Y
	}
	return a
}

// MaxP returns the componentwise maximum of a and b.
func MaxP(a, b P) P {
	if b.X > a.X {
		a.X = b.X
	}
	if b.Y > a.Y {
		a.Y = b.Y
	}
	return a
}

// FloorDiv divides a by b rounding toward negative infinity, so coordinates
// just below an origin land on cell -1 instead of aliasing onto cell 0.
// b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Flatten maps p to a linear offset within a res.X by res.Y region. The
// convention is fixed everywhere in the module: X selects a column of res.Y
// cells, Y walks within the column.
func Flatten(p, res P) int { return p.X*res.Y + p.Y }
