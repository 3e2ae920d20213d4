package cognition

import (
	"math"

	"AcawsGolang/internal/entity"
)

// Landmark indices follow the 468-point face-mesh convention of the upstream
// detector. Indices 468/473 are the optional iris points present when the
// detector runs with iris refinement.
const MinLandmarkCount = 468

var (
	leftEyeIdx  = [6]int{33, 160, 158, 133, 153, 144}
	rightEyeIdx = [6]int{362, 385, 387, 263, 373, 380}

	leftEyebrowIdx  = [5]int{70, 63, 105, 66, 107}
	rightEyebrowIdx = [5]int{336, 296, 334, 293, 300}

	faceOvalIdx = []int{
		234, 93, 132, 58, 172, 136, 150, 149, 176, 148, 152, 377, 400, 378,
		379, 365, 397, 288, 361, 323, 454, 356, 389, 251, 284, 332, 297, 338,
	}

	idxUpperLip      = 0
	idxNoseTip       = 1
	idxNoseBridge    = 6
	idxLowerLip      = 17
	idxMouthLeft     = 61
	idxMouthRight    = 291
	idxLeftEyeOuter  = 33
	idxLeftEyeInner  = 133
	idxRightEyeInner = 362
	idxRightEyeOuter = 263
	idxLeftEyeUpper  = 160
	idxRightEyeUpper = 385
	idxLeftIris      = 468
	idxRightIris     = 473
)

// ExtractFeatures derives one FacialFeatures snapshot from a landmark set.
// Returns false when the set is absent or shorter than the minimum index the
// extractors touch; this is the normal no-signal path, not an error.
func ExtractFeatures(landmarks []entity.Landmark) (*entity.FacialFeatures, bool) {
	if len(landmarks) < MinLandmarkCount {
		return nil, false
	}

	f := &entity.FacialFeatures{}

	var leftEye, rightEye [6]entity.Landmark
	for i := 0; i < 6; i++ {
		leftEye[i] = landmarks[leftEyeIdx[i]]
		rightEye[i] = landmarks[rightEyeIdx[i]]
	}
	f.LeftEyeOpenness = EyeAspectRatio(leftEye)
	f.RightEyeOpenness = EyeAspectRatio(rightEye)
	f.EyeAspectRatio = (f.LeftEyeOpenness + f.RightEyeOpenness) / 2

	upperLip := landmarks[idxUpperLip]
	lowerLip := landmarks[idxLowerLip]
	f.MouthOpenness = math.Abs(upperLip.Y - lowerLip.Y)

	leftCorner := landmarks[idxMouthLeft]
	rightCorner := landmarks[idxMouthRight]
	f.MouthWidth = math.Abs(rightCorner.X - leftCorner.X)

	// Smile: mouth corners raised above the nose-tip reference line.
	noseTip := landmarks[idxNoseTip]
	avgCornerY := (leftCorner.Y + rightCorner.Y) / 2
	f.SmileIntensity = math.Max(0, noseTip.Y-avgCornerY)

	leftEyeCenter := landmarks[idxLeftEyeOuter]
	rightEyeCenter := landmarks[idxRightEyeOuter]
	var leftBrowY, rightBrowY float64
	for _, i := range leftEyebrowIdx {
		leftBrowY += landmarks[i].Y
	}
	for _, i := range rightEyebrowIdx {
		rightBrowY += landmarks[i].Y
	}
	leftBrowY /= float64(len(leftEyebrowIdx))
	rightBrowY /= float64(len(rightEyebrowIdx))
	f.EyebrowRaise = ((leftEyeCenter.Y - leftBrowY) + (rightEyeCenter.Y - rightBrowY)) / 2
	// Lowered brows read as a negative raise; report the magnitude as frown.
	f.EyebrowFrown = math.Max(0, -f.EyebrowRaise)

	// Heuristic head pose from bridge-vs-eye-center offsets. Approximate
	// degrees only, no camera intrinsics involved.
	noseBridge := landmarks[idxNoseBridge]
	leftInner := landmarks[idxLeftEyeInner]
	rightInner := landmarks[idxRightEyeInner]
	eyeCenterX := (leftInner.X + rightInner.X) / 2
	eyeCenterY := (leftInner.Y + rightInner.Y) / 2
	f.HeadYaw = (noseBridge.X - eyeCenterX) * 100
	f.HeadPitch = (noseBridge.Y - eyeCenterY) * 100
	f.HeadRoll = (leftInner.Y - rightInner.Y) * 100

	faceLeft, faceRight := 1.0, 0.0
	faceTop, faceBottom := 1.0, 0.0
	for _, i := range faceOvalIdx {
		p := landmarks[i]
		faceLeft = math.Min(faceLeft, p.X)
		faceRight = math.Max(faceRight, p.X)
		faceTop = math.Min(faceTop, p.Y)
		faceBottom = math.Max(faceBottom, p.Y)
	}
	f.FaceSize = (faceRight - faceLeft) * (faceBottom - faceTop)
	f.FacePositionX = (faceLeft + faceRight) / 2
	f.FacePositionY = (faceTop + faceBottom) / 2

	// Gaze from iris offset against the eye midpoint, normalized so 0 is a
	// centered gaze and ±1 touches the corner. Without iris refinement the
	// midpoint stands in and gaze reads centered.
	leftOuter := landmarks[idxLeftEyeOuter]
	rightOuter := landmarks[idxRightEyeOuter]
	leftMid := entity.Landmark{X: (leftInner.X + leftOuter.X) / 2, Y: (leftInner.Y + leftOuter.Y) / 2}
	rightMid := entity.Landmark{X: (rightInner.X + rightOuter.X) / 2, Y: (rightInner.Y + rightOuter.Y) / 2}
	leftIris, rightIris := leftMid, rightMid
	if len(landmarks) > idxLeftIris {
		leftIris = landmarks[idxLeftIris]
	}
	if len(landmarks) > idxRightIris {
		rightIris = landmarks[idxRightIris]
	}

	f.GazeDirectionX = (relativeOffset(leftIris.X, leftMid.X, leftOuter.X) +
		relativeOffset(rightIris.X, rightMid.X, rightOuter.X)) / 2
	f.GazeDirectionY = (relativeOffset(leftIris.Y, leftMid.Y, landmarks[idxLeftEyeUpper].Y) +
		relativeOffset(rightIris.Y, rightMid.Y, landmarks[idxRightEyeUpper].Y)) / 2
	f.GazeConfidence = 0.8

	return f, true
}

func relativeOffset(value, origin, reference float64) float64 {
	span := reference - origin
	if math.Abs(span) < epsilon {
		return 0
	}
	return (value - origin) / span
}
