package fill

import (
	"fmt"

	"mapforge/pkg/core"
)

// Region is a membership predicate over a cell's coordinate vector.
type Region func(coords []int) bool

// Full matches every cell.
func Full() Region {
	return func([]int) bool { return true }
}

// Center matches cells whose Chebyshev distance from the grid centre is at
// most extent. The centre of an axis of length n is (n-1)/2. A negative extent
// is rejected with ErrInvalidGeometry.
func Center(extents []int, extent int) (Region, error) {
	if extent < 0 {
		return nil, fmt.Errorf("center extent %d: %w", extent, core.ErrInvalidGeometry)
	}
	center := make([]int, len(extents))
	for d, n := range extents {
		center[d] = (n - 1) / 2
	}
	return func(coords []int) bool {
		return chebyshev(coords, center) <= extent
	}, nil
}

// Border matches cells within thickness of the near or far edge on at least
// one axis.
func Border(extents []int, thickness int) (Region, error) {
	if thickness <= 0 {
		return nil, fmt.Errorf("border thickness %d: %w", thickness, core.ErrInvalidGeometry)
	}
	return func(coords []int) bool {
		for d, n := range extents {
			if coords[d] < thickness || coords[d] >= n-thickness {
				return true
			}
		}
		return false
	}, nil
}

// Interior matches cells with margin <= coord < length-margin on every axis.
// It is not the exact complement of Border.
func Interior(extents []int, margin int) (Region, error) {
	if margin < 0 {
		return nil, fmt.Errorf("interior margin %d: %w", margin, core.ErrInvalidGeometry)
	}
	return func(coords []int) bool {
		for d, n := range extents {
			if coords[d] < margin || coords[d] >= n-margin {
				return false
			}
		}
		return true
	}, nil
}

// Corner matches the size-wide corner block selected by mask: 0 picks the low
// side of an axis, 1 the high side.
func Corner(extents []int, size int, mask []int) (Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("corner size %d: %w", size, core.ErrInvalidGeometry)
	}
	if len(mask) != len(extents) {
		return nil, fmt.Errorf("corner mask length %d, map has %d dimensions: %w", len(mask), len(extents), core.ErrInvalidGeometry)
	}
	lo := make([]int, len(extents))
	hi := make([]int, len(extents))
	for d, n := range extents {
		switch mask[d] {
		case 0:
			lo[d], hi[d] = 0, min(size, n)-1
		case 1:
			lo[d], hi[d] = max(0, n-size), n-1
		default:
			return nil, fmt.Errorf("corner mask %v: axis %d selector must be 0 or 1: %w", mask, d, core.ErrInvalidGeometry)
		}
	}
	return func(coords []int) bool {
		for d := range extents {
			if coords[d] < lo[d] || coords[d] > hi[d] {
				return false
			}
		}
		return true
	}, nil
}

// Corners matches the union of all 2^dims corner blocks. A cell belongs to
// some corner iff every axis coordinate lies in that axis's low or high band.
func Corners(extents []int, size int) (Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("corners size %d: %w", size, core.ErrInvalidGeometry)
	}
	return func(coords []int) bool {
		for d, n := range extents {
			if coords[d] >= size && coords[d] < n-size {
				return false
			}
		}
		return true
	}, nil
}

// Band matches cells with start <= coords[axis] < start+length. The band must
// fit inside the axis.
func Band(extents []int, axis, start, length int) (Region, error) {
	if axis < 0 || axis >= len(extents) {
		return nil, fmt.Errorf("band axis %d of %d: %w", axis, len(extents), core.ErrInvalidAxis)
	}
	if start < 0 || length <= 0 || start+length > extents[axis] {
		return nil, fmt.Errorf("band [%d, %d) on axis %d of length %d: %w", start, start+length, axis, extents[axis], core.ErrInvalidGeometry)
	}
	end := start + length
	return func(coords []int) bool {
		return coords[axis] >= start && coords[axis] < end
	}, nil
}

// Scatter matches cells pseudo-randomly with probability chance. Each call
// consumes one draw, so results depend on visit order.
func Scatter(chance float64, seed int64) (Region, error) {
	if !(chance >= 0 && chance <= 1) {
		return nil, fmt.Errorf("scatter chance %v not in [0, 1]: %w", chance, core.ErrInvalidGeometry)
	}
	rng := core.NewRNG(seed)
	return func([]int) bool { return rng.Chance(chance) }, nil
}

// Union matches cells matched by any region.
func Union(regions ...Region) Region {
	return func(coords []int) bool {
		for _, r := range regions {
			if r(coords) {
				return true
			}
		}
		return false
	}
}

// Intersect matches cells matched by every region.
func Intersect(regions ...Region) Region {
	return func(coords []int) bool {
		for _, r := range regions {
			if !r(coords) {
				return false
			}
		}
		return true
	}
}

// Not inverts r.
func Not(r Region) Region {
	return func(coords []int) bool { return !r(coords) }
}

func chebyshev(a, b []int) int {
	dist := 0
	for i := range b {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		dist = max(dist, d)
	}
	return dist
}
