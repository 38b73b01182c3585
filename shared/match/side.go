// Package match holds the scoreboard's match state and its countdown clock.
// It must have zero dependencies on ebiten or any graphics library so the
// scoring rules can be exercised headless.
package match

// Side identifies one of the two teams at the table.
type Side int

const (
	Home Side = iota
	Away
)

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == Home || s == Away
}

func (s Side) String() string {
	switch s {
	case Home:
		return "HOME"
	case Away:
		return "AWAY"
	}
	return "UNKNOWN"
}
