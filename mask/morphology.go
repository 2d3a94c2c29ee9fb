package mask

import "math"
import "image"
import "image/draw"

type kernelTap struct {
	dx, dy int
	weight uint8
}

// Antialiased disc kernel. Taps are sorted by construction from the
// top-left corner, with zero weights omitted.
type discKernel struct {
	radius float64
	pad int
	taps []kernelTap
}

func newDiscKernel(radius float64) discKernel {
	pad := int(math.Ceil(radius))
	kernel := discKernel{ radius: radius, pad: pad }
	for dy := -pad; dy <= pad; dy++ {
		for dx := -pad; dx <= pad; dx++ {
			distance := math.Hypot(float64(dx), float64(dy))
			weight := discCoverage(radius, distance)
			if weight == 0 { continue }
			kernel.taps = append(kernel.taps, kernelTap{ dx: dx, dy: dy, weight: weight })
		}
	}
	return kernel
}

// Returns a new mask where every shape of the source has been grown
// by the given radius, in pixels. The resulting mask bounds are the
// source bounds expanded by ceil(radius) on each side. Non
// positive radiuses return a copy of the source.
func Dilate(src *image.Alpha, radius float64) *image.Alpha {
	if radius <= 0 || math.IsNaN(radius) { return cloneAlpha(src) }
	return dilateWith(src, newDiscKernel(radius))
}

func dilateWith(src *image.Alpha, kernel discKernel) *image.Alpha {
	dst := image.NewAlpha(src.Rect.Inset(-kernel.pad))
	if src.Rect.Empty() { return dst }
	if kernelWork(src.Pix, kernel) > maxKernelWork {
		draw.Draw(dst, src.Rect, src, src.Rect.Min, draw.Src)
		dst.Pix = spreadByDistance(dst.Pix, dst.Rect.Dx(), dst.Rect.Dy(), kernel.radius)
		return dst
	}

	// scatter each source pixel over its neighbourhood; glyph masks
	// are mostly empty, so this beats gathering
	srcWidth := src.Rect.Dx()
	for y := 0; y < src.Rect.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride + srcWidth]
		for x, value := range row {
			if value == 0 { continue }
			baseX, baseY := x + kernel.pad, y + kernel.pad
			for _, tap := range kernel.taps {
				i := (baseY + tap.dy)*dst.Stride + baseX + tap.dx
				contrib := mulAlpha(value, tap.weight)
				if contrib > dst.Pix[i] { dst.Pix[i] = contrib }
			}
		}
	}
	return dst
}

// Returns a new mask with the same bounds as the source where every
// shape has been shrunk by the given radius, in pixels. Everything
// outside the source bounds is considered empty. Non positive radiuses
// return a copy of the source.
func Erode(src *image.Alpha, radius float64) *image.Alpha {
	if radius <= 0 || math.IsNaN(radius) { return cloneAlpha(src) }
	return erodeWith(src, newDiscKernel(radius))
}

func erodeWith(src *image.Alpha, kernel discKernel) *image.Alpha {
	dst := image.NewAlpha(src.Rect)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	if kernelWork(src.Pix, kernel) > maxKernelWork {
		erodeByDistance(dst, src, kernel.radius)
		return dst
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := src.Pix[y*src.Stride + x]
			if value == 0 { continue }

			// erosion is the dilation of the complement
			var hole uint8
			for _, tap := range kernel.taps {
				tx, ty := x + tap.dx, y + tap.dy
				inverse := uint8(255)
				if tx >= 0 && ty >= 0 && tx < width && ty < height {
					inverse = 255 - src.Pix[ty*src.Stride + tx]
				}
				contrib := mulAlpha(inverse, tap.weight)
				if contrib > hole {
					hole = contrib
					if hole == 255 { break }
				}
			}
			if 255 - hole < value { value = 255 - hole }
			dst.Pix[y*dst.Stride + x] = value
		}
	}
	return dst
}

// Returns a ring of the given thickness centered on the boundaries of
// the source shapes, with the same bounds that [Dilate]() would return
// for half the thickness.
func Hollow(src *image.Alpha, thickness float64) *image.Alpha {
	if thickness <= 0 || math.IsNaN(thickness) {
		return image.NewAlpha(src.Rect)
	}

	kernel := newDiscKernel(thickness/2)
	outer := dilateWith(src, kernel)
	padded := image.NewAlpha(outer.Rect)
	draw.Draw(padded, src.Rect, src, src.Rect.Min, draw.Src)
	inner := erodeWith(padded, kernel)
	for i, value := range outer.Pix {
		if inner.Pix[i] >= value {
			outer.Pix[i] = 0
		} else {
			outer.Pix[i] = value - inner.Pix[i]
		}
	}
	return outer
}

// Erosion as the dilation of the complement, where everything outside
// the source counts as empty. A one pixel border is enough to represent
// the outside, as the closest outside pixel is always next to the bounds.
func erodeByDistance(dst, src *image.Alpha, radius float64) {
	width, height := src.Rect.Dx(), src.Rect.Dy()
	gridWidth, gridHeight := width + 2, height + 2
	complement := make([]uint8, gridWidth*gridHeight)
	for i := range complement { complement[i] = 255 }
	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride + width]
		for x, value := range row {
			complement[(y + 1)*gridWidth + x + 1] = 255 - value
		}
	}

	holes := spreadByDistance(complement, gridWidth, gridHeight, radius)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := src.Pix[y*src.Stride + x]
			if limit := 255 - holes[(y + 1)*gridWidth + x + 1]; limit < value { value = limit }
			dst.Pix[y*dst.Stride + x] = value
		}
	}
}

func cloneAlpha(src *image.Alpha) *image.Alpha {
	dst := image.NewAlpha(src.Rect)
	draw.Draw(dst, src.Rect, src, src.Rect.Min, draw.Src)
	return dst
}
