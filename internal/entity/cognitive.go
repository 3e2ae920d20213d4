package entity

import "time"

// Landmark is one normalized face-mesh point. Coordinates are fractions of the
// frame (0-1), following the 468-point face-mesh indexing convention.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FacialFeatures is the fixed-shape geometric snapshot extracted from one
// landmark set. Built fresh per frame and never mutated afterwards.
type FacialFeatures struct {
	LeftEyeOpenness  float64 `json:"left_eye_openness"`
	RightEyeOpenness float64 `json:"right_eye_openness"`
	EyeAspectRatio   float64 `json:"eye_aspect_ratio"`

	MouthOpenness  float64 `json:"mouth_openness"`
	MouthWidth     float64 `json:"mouth_width"`
	SmileIntensity float64 `json:"smile_intensity"`

	EyebrowRaise float64 `json:"eyebrow_raise"`
	EyebrowFrown float64 `json:"eyebrow_frown"`

	// Heuristic head pose from landmark offsets, not a calibrated PnP solve.
	HeadPitch float64 `json:"head_pitch"`
	HeadYaw   float64 `json:"head_yaw"`
	HeadRoll  float64 `json:"head_roll"`

	GazeDirectionX float64 `json:"gaze_direction_x"`
	GazeDirectionY float64 `json:"gaze_direction_y"`
	GazeConfidence float64 `json:"gaze_confidence"`

	FaceSize      float64 `json:"face_size"`
	FacePositionX float64 `json:"face_position_x"`
	FacePositionY float64 `json:"face_position_y"`
}

// CognitiveState is the fused per-frame result before presentation banding.
// All score fields are 0-100 except EmotionalConfidence and ConfidenceScore
// which stay 0-1.
type CognitiveState struct {
	AttentionScore      float64  `json:"attention_score"`
	CognitiveLoad       float64  `json:"cognitive_load"`
	EngagementLevel     float64  `json:"engagement_level"`
	EmotionalState      string   `json:"emotional_state"`
	EmotionalConfidence float64  `json:"emotional_confidence"`
	DrowsinessLevel     float64  `json:"drowsiness_level"`
	FocusQuality        float64  `json:"focus_quality"`
	StressIndicators    float64  `json:"stress_indicators"`
	LearningReadiness   float64  `json:"learning_readiness"`
	MicroExpressions    []string `json:"micro_expressions"`
	ConfidenceScore     float64  `json:"confidence_score"`
}

// MetricReading is one presentation row of the analysis summary. Current is a
// formatted value ("72%", an emotion label) or the em-dash placeholder when
// there is no signal.
type MetricReading struct {
	Quality  string   `json:"quality"`
	Current  string   `json:"current"`
	RawValue *float64 `json:"raw_value"`
	Trend    string   `json:"trend"`
	Baseline *float64 `json:"baseline,omitempty"`
}

type AnalysisMetrics struct {
	Attention         MetricReading `json:"attention"`
	CognitiveLoad     MetricReading `json:"cognitive_load"`
	Engagement        MetricReading `json:"engagement"`
	EmotionalState    MetricReading `json:"emotional_state"`
	Drowsiness        MetricReading `json:"drowsiness"`
	FocusQuality      MetricReading `json:"focus_quality"`
	StressIndicators  MetricReading `json:"stress_indicators"`
	LearningReadiness MetricReading `json:"learning_readiness"`
}

type AdvancedMetrics struct {
	BlinkRate        float64  `json:"blink_rate"`
	EmotionStability float64  `json:"emotion_stability"`
	MicroExpressions []string `json:"micro_expressions"`
	ConfidenceScore  float64  `json:"confidence_score"`
	TemporalSamples  int      `json:"temporal_samples"`
}

// GazeReport is the optional gaze-segmentation block of a summary, present
// once enough gaze samples have accumulated.
type GazeReport struct {
	PupilDetected bool    `json:"pupil_detected"`
	GazeX         float64 `json:"gaze_x"`
	GazeY         float64 `json:"gaze_y"`
	SaccadeCount  int     `json:"saccade_count"`
	FixationCount int     `json:"fixation_count"`
	AvgFixation   float64 `json:"avg_fixation_duration"`
	Stability     float64 `json:"stability"`
	Coverage      float64 `json:"exploration_rate"`
	Pattern       string  `json:"pattern_type"`
}

// AnalysisSummary is the externally visible result of one analysis call.
type AnalysisSummary struct {
	CameraEnabled   bool            `json:"camera_enabled"`
	Timestamp       float64         `json:"timestamp"`
	Metrics         AnalysisMetrics `json:"metrics"`
	AdvancedMetrics AdvancedMetrics `json:"advanced_metrics"`
	Gaze            *GazeReport     `json:"gaze_analysis,omitempty"`
}

// AnalysisRecord is the persisted form of one analysis summary.
type AnalysisRecord struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	UserID          string    `json:"user_id"`
	Source          string    `json:"source"`
	CameraEnabled   bool      `json:"camera_enabled"`
	AttentionScore  float64   `json:"attention_score"`
	CognitiveLoad   float64   `json:"cognitive_load"`
	EngagementLevel float64   `json:"engagement_level"`
	EmotionalState  string    `json:"emotional_state"`
	DrowsinessLevel float64   `json:"drowsiness_level"`
	LearningReady   float64   `json:"learning_readiness"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}
