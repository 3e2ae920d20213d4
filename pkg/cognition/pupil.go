package cognition

import (
	"image"
	"math"

	"AcawsGolang/internal/entity"
)

// PupilResult is the pupil centroid in eye-region coordinates, normalized to
// [-1, 1] on each axis with (0, 0) at the region center.
type PupilResult struct {
	X        float64
	Y        float64
	Detected bool
}

const (
	pupilBlurRadius     = 2
	pupilThresholdBlock = 11
	pupilThresholdBias  = 2
	pupilMinArea        = 4
)

// LocatePupil finds the darkest coherent blob inside an eye region. The
// region is blurred, binarized with an adaptive inverse threshold, and the
// largest connected component's centroid is taken as the pupil center.
func LocatePupil(eye *image.Gray) PupilResult {
	if eye == nil {
		return PupilResult{}
	}
	bounds := eye.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < pupilThresholdBlock || h < pupilThresholdBlock {
		return PupilResult{}
	}

	blurred := boxBlur(eye, pupilBlurRadius)
	mask := adaptiveInverseThreshold(blurred, pupilThresholdBlock, pupilThresholdBias)

	area, sumX, sumY := largestComponent(mask, w, h)
	if area < pupilMinArea {
		return PupilResult{}
	}

	cx := float64(sumX) / float64(area)
	cy := float64(sumY) / float64(area)
	return PupilResult{
		X:        (cx - float64(w)/2) / (float64(w) / 2),
		Y:        (cy - float64(h)/2) / (float64(h) / 2),
		Detected: true,
	}
}

func boxBlur(src *image.Gray, radius int) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum, count int
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					sum += int(src.GrayAt(bounds.Min.X+nx, bounds.Min.Y+ny).Y)
					count++
				}
			}
			dst.Pix[y*dst.Stride+x] = uint8(sum / count)
		}
	}
	return dst
}

// adaptiveInverseThreshold marks pixels darker than their local block mean
// minus a bias. Dark pupil pixels come out true.
func adaptiveInverseThreshold(src *image.Gray, block, bias int) []bool {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	mask := make([]bool, w*h)
	half := block / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum, count int
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					sum += int(src.Pix[ny*src.Stride+nx])
					count++
				}
			}
			local := sum / count
			mask[y*w+x] = int(src.Pix[y*src.Stride+x]) < local-bias
		}
	}
	return mask
}

// largestComponent flood-fills the mask and returns the biggest blob's area
// and coordinate sums (4-connectivity).
func largestComponent(mask []bool, w, h int) (area, sumX, sumY int) {
	visited := make([]bool, len(mask))
	var stack []int
	for start := range mask {
		if !mask[start] || visited[start] {
			continue
		}
		var a, sx, sy int
		stack = append(stack[:0], start)
		visited[start] = true
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := idx%w, idx/w
			a++
			sx += x
			sy += y
			for _, n := range [4]int{idx - 1, idx + 1, idx - w, idx + w} {
				if n < 0 || n >= len(mask) || visited[n] || !mask[n] {
					continue
				}
				// no horizontal wrap across rows
				if (n == idx-1 && x == 0) || (n == idx+1 && x == w-1) {
					continue
				}
				visited[n] = true
				stack = append(stack, n)
			}
		}
		if a > area {
			area, sumX, sumY = a, sx, sy
		}
	}
	return area, sumX, sumY
}

// CropEyeRegion cuts the grayscale patch around the left eye, padded by half
// the eye's horizontal span on each side so the sclera frames the pupil.
// Returns nil when the landmarks or the resulting patch are too small to feed
// the pupil detector.
func CropEyeRegion(img *image.Gray, landmarks []entity.Landmark) *image.Gray {
	if img == nil || len(landmarks) < MinLandmarkCount {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, idx := range leftEyeIdx {
		p := landmarks[idx]
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	padX := (maxX - minX) / 2
	padY := math.Max((maxY-minY)/2, padX/2)

	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	rect := image.Rect(
		bounds.Min.X+int((minX-padX)*w),
		bounds.Min.Y+int((minY-padY)*h),
		bounds.Min.X+int((maxX+padX)*w),
		bounds.Min.Y+int((maxY+padY)*h),
	).Intersect(bounds)

	if rect.Dx() < pupilThresholdBlock || rect.Dy() < pupilThresholdBlock {
		return nil
	}
	return img.SubImage(rect).(*image.Gray)
}
