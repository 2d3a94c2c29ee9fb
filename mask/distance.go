package mask

import "math"

// Mask values are quantized to this many levels when spreading them
// with distance transforms. Each level costs one transform.
const distanceLevels = 16

// Above this many kernel tap applications, dilations and erosions are
// computed with distance transforms instead of scattering the disc
// kernel. Distance transforms are linear on the mask area regardless
// of the radius, but they quantize partially transparent values.
const maxKernelWork = 1 << 22

func kernelWork(pix []uint8, kernel discKernel) int {
	var nonZero int
	for _, value := range pix {
		if value != 0 { nonZero += 1 }
	}
	if nonZero == 0 { return 0 }
	if len(kernel.taps) > maxKernelWork/nonZero { return maxKernelWork + 1 }
	return nonZero*len(kernel.taps)
}

// Reusable buffers for squared euclidean distance transforms over
// a width x height grid, following Felzenszwalb and Huttenlocher.
type distanceGrid struct {
	width, height int
	dist []float64 // squared distances, row major
	line []float64
	out []float64
	hull []int
	bounds []float64
}

func newDistanceGrid(width, height int) *distanceGrid {
	longest := width
	if height > longest { longest = height }
	return &distanceGrid {
		width: width,
		height: height,
		dist: make([]float64, width*height),
		line: make([]float64, longest),
		out: make([]float64, longest),
		hull: make([]int, longest),
		bounds: make([]float64, longest + 1),
	}
}

// Computes, for each cell, the squared distance to the closest cell
// whose value is at least the given level.
func (self *distanceGrid) transform(values []uint8, level uint8) {
	far := float64(self.width + self.height)
	far *= far
	for i, value := range values {
		if value >= level {
			self.dist[i] = 0
		} else {
			self.dist[i] = far
		}
	}

	for x := 0; x < self.width; x++ {
		for y := 0; y < self.height; y++ {
			self.line[y] = self.dist[y*self.width + x]
		}
		self.transformLine(self.height)
		for y := 0; y < self.height; y++ {
			self.dist[y*self.width + x] = self.out[y]
		}
	}
	for y := 0; y < self.height; y++ {
		row := self.dist[y*self.width : (y + 1)*self.width]
		copy(self.line, row)
		self.transformLine(self.width)
		copy(row, self.out[:self.width])
	}
}

// One dimensional transform from line[:n] into out[:n]. The lower
// envelope of the parabolas rooted at each sample is kept in hull,
// with bounds[k] being the position where parabola k starts.
func (self *distanceGrid) transformLine(n int) {
	f := self.line
	intersect := func(q, p int) float64 {
		fq, fp := f[q] + float64(q*q), f[p] + float64(p*p)
		return (fq - fp)/float64(2*(q - p))
	}

	k := 0
	self.hull[0] = 0
	self.bounds[0] = math.Inf(-1)
	self.bounds[1] = math.Inf(+1)
	for q := 1; q < n; q++ {
		s := intersect(q, self.hull[k])
		for k > 0 && s <= self.bounds[k] {
			k -= 1
			s = intersect(q, self.hull[k])
		}
		k += 1
		self.hull[k] = q
		self.bounds[k] = s
		self.bounds[k + 1] = math.Inf(+1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for self.bounds[k + 1] < float64(q) { k += 1 }
		p := self.hull[k]
		self.out[q] = float64((q - p)*(q - p)) + f[p]
	}
}

// Returns, for each cell, the maximum of the cell's own value and the
// values of all the other cells attenuated by the disc coverage for
// the given radius at their distance. Values of other cells are
// quantized down to [distanceLevels] levels, so for masks without partial
// values the result matches the disc kernel scatter up to rounding.
func spreadByDistance(values []uint8, width, height int, radius float64) []uint8 {
	spread := make([]uint8, len(values))
	copy(spread, values)

	var present [256]bool
	for _, value := range values { present[value] = true }

	reach := (radius + 1)*(radius + 1)
	var grid *distanceGrid
	upper := 256 // exclusive bound of the values quantized to the current level
	for i := distanceLevels; i >= 1; i-- {
		level := (255*i + distanceLevels/2)/distanceLevels
		if !anyPresent(present[level:upper]) {
			upper = level
			continue // same cells as the previous level, which dominates
		}
		upper = level

		if grid == nil { grid = newDistanceGrid(width, height) }
		grid.transform(values, uint8(level))
		for j, sqDist := range grid.dist {
			if sqDist >= reach || int(spread[j]) >= level { continue }
			contrib := mulAlpha(uint8(level), discCoverage(radius, math.Sqrt(sqDist)))
			if contrib > spread[j] { spread[j] = contrib }
		}
	}
	return spread
}

func anyPresent(flags []bool) bool {
	for _, flag := range flags {
		if flag { return true }
	}
	return false
}
