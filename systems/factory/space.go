package factory

import (
	"math"

	"github.com/solarlune/resolv"
)

// CreateSpace returns a collision space covering a world of the given size.
func CreateSpace(width, height float64, cellSize int) *resolv.Space {
	return resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize)
}
