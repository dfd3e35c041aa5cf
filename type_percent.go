package profit

import "fmt"

// Percent is a display-oriented percentage value (45.2 means 45.2%).
type Percent float64

// Equal compares two percentages with display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
