package econ

import "fmt"

// Direction is the side of a trade.
type Direction int

const (
	Long Direction = iota
	Short
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "Long"
	case Short:
		return "Short"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "Long" or "Short" (lowercase tolerated for CLI
// convenience; the stored form is always the canonical String()).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "Long", "long":
		return Long, nil
	case "Short", "short":
		return Short, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (want Long or Short)", s)
	}
}
