package cognition

import (
	"image"
	"math"
	"testing"

	"AcawsGolang/internal/entity"
)

// eyeImage draws a dark disc on a bright field, mimicking a pupil crop.
func eyeImage(w, h, cx, cy, radius int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(200)
			dx, dy := float64(x-cx), float64(y-cy)
			if math.Hypot(dx, dy) <= float64(radius) {
				v = 20
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

func TestLocatePupil(t *testing.T) {
	t.Run("centered disc", func(t *testing.T) {
		got := LocatePupil(eyeImage(40, 24, 20, 12, 5))
		if !got.Detected {
			t.Fatal("pupil not detected")
		}
		if math.Abs(got.X) > 0.2 || math.Abs(got.Y) > 0.2 {
			t.Errorf("centroid (%v, %v), want near origin", got.X, got.Y)
		}
	})

	t.Run("offset disc", func(t *testing.T) {
		got := LocatePupil(eyeImage(40, 24, 30, 12, 4))
		if !got.Detected {
			t.Fatal("pupil not detected")
		}
		if got.X < 0.2 {
			t.Errorf("centroid X = %v, want clearly positive for a right-shifted pupil", got.X)
		}
	})

	t.Run("flat field", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 40, 24))
		for i := range img.Pix {
			img.Pix[i] = 128
		}
		if got := LocatePupil(img); got.Detected {
			t.Errorf("flat field detected a pupil at (%v, %v)", got.X, got.Y)
		}
	})

	t.Run("nil and undersized input", func(t *testing.T) {
		if got := LocatePupil(nil); got.Detected {
			t.Error("nil image detected a pupil")
		}
		if got := LocatePupil(image.NewGray(image.Rect(0, 0, 4, 4))); got.Detected {
			t.Error("undersized image detected a pupil")
		}
	})
}

func TestCropEyeRegion(t *testing.T) {
	face := syntheticFace(0.5)

	t.Run("nil image", func(t *testing.T) {
		if got := CropEyeRegion(nil, face); got != nil {
			t.Error("CropEyeRegion(nil image) should return nil")
		}
	})

	t.Run("short landmark set", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 200, 200))
		if got := CropEyeRegion(img, face[:10]); got != nil {
			t.Error("CropEyeRegion(short landmarks) should return nil")
		}
	})

	t.Run("tiny frame", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 16, 16))
		if got := CropEyeRegion(img, face); got != nil {
			t.Error("crop below the detector's block size should return nil")
		}
	})

	t.Run("pupil found inside the crop", func(t *testing.T) {
		// The synthetic left eye spans x 0.40-0.46 around y 0.5, which maps
		// to a disc at (86, 100) on a 200x200 frame.
		frame := image.NewGray(image.Rect(0, 0, 200, 200))
		for i := range frame.Pix {
			frame.Pix[i] = 200
		}
		for y := 0; y < 200; y++ {
			for x := 0; x < 200; x++ {
				if math.Hypot(float64(x-86), float64(y-100)) <= 4 {
					frame.Pix[y*frame.Stride+x] = 20
				}
			}
		}

		region := CropEyeRegion(frame, face)
		if region == nil {
			t.Fatal("CropEyeRegion returned nil for a full-size frame")
		}
		got := LocatePupil(region)
		if !got.Detected {
			t.Fatal("pupil not detected inside the cropped eye region")
		}
		if math.Abs(got.X) > 0.5 || math.Abs(got.Y) > 0.5 {
			t.Errorf("centroid (%v, %v), want near the region center", got.X, got.Y)
		}
	})
}

func TestObservePupilFeedsGazeReport(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	a.ObservePupil(eyeImage(40, 24, 20, 12, 5))

	face := syntheticFace(0.5)
	var summary *entity.AnalysisSummary
	for i := 0; i < 20; i++ {
		summary = a.Analyze(face, float64(i)*0.1)
	}
	if summary.Gaze == nil {
		t.Fatal("gaze report missing after steady fixation")
	}
	if !summary.Gaze.PupilDetected {
		t.Error("PupilDetected = false after a successful pupil observation")
	}
}
