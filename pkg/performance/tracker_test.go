package performance

import (
	"testing"

	"AcawsGolang/pkg/cognition"
)

func TestGrade(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name          string
		value         float64
		benchmark     Benchmark
		lowerIsBetter bool
		want          string
	}{
		{"fast response", 0.3, cfg.ResponseTime, true, "excellent"},
		{"slow response", 3.0, cfg.ResponseTime, true, "poor"},
		{"unusable response", 9.0, cfg.ResponseTime, true, "critical"},
		{"high accuracy", 0.97, cfg.Accuracy, false, "excellent"},
		{"middling accuracy", 0.8, cfg.Accuracy, false, "average"},
		{"failing accuracy", 0.4, cfg.Accuracy, false, "critical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grade(tt.value, tt.benchmark, tt.lowerIsBetter)
			if got != tt.want {
				t.Errorf("grade(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRealtimeInsufficientData(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	tr.RecordResponseTime(1.0, 0)
	tr.RecordAccuracy(0.9, 1)

	report := tr.Realtime()
	if report.Status != StatusInsufficient {
		t.Errorf("Status = %q, want %q", report.Status, StatusInsufficient)
	}
	if report.DataPoints != 2 {
		t.Errorf("DataPoints = %d, want 2", report.DataPoints)
	}
}

func TestRealtimeAggregates(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	for i := 0; i < 10; i++ {
		tr.RecordResponseTime(0.4, float64(i))
		tr.RecordAccuracy(0.9, float64(i)+0.5)
	}

	report := tr.Realtime()
	if report.Status != StatusOK {
		t.Fatalf("Status = %q, want %q", report.Status, StatusOK)
	}
	if report.ResponseTime.Grade != "excellent" {
		t.Errorf("response grade = %q, want excellent", report.ResponseTime.Grade)
	}
	if report.Accuracy.Grade != "good" {
		t.Errorf("accuracy grade = %q, want good", report.Accuracy.Grade)
	}
	// 0.4s runs saturate the speed score, so overall is 0.4 + 0.6*accuracy.
	want := 0.4 + 0.6*0.9
	if !almost(report.OverallScore, want) {
		t.Errorf("OverallScore = %v, want %v", report.OverallScore, want)
	}
	if report.DataPoints != 20 {
		t.Errorf("DataPoints = %d, want 20", report.DataPoints)
	}
}

func TestTrendDirections(t *testing.T) {
	t.Run("improving accuracy lifts the trend", func(t *testing.T) {
		tr := NewTracker(DefaultConfig())
		for i := 0; i < 30; i++ {
			tr.RecordResponseTime(1.0, float64(i))
			tr.RecordAccuracy(0.5+float64(i)*0.015, float64(i)+0.5)
		}
		if got := tr.Realtime().Trend; got != cognition.TrendImproving {
			t.Errorf("Trend = %q, want %q", got, cognition.TrendImproving)
		}
	})
	t.Run("flat signal is stable", func(t *testing.T) {
		tr := NewTracker(DefaultConfig())
		for i := 0; i < 30; i++ {
			tr.RecordResponseTime(1.0, float64(i))
			tr.RecordAccuracy(0.8, float64(i)+0.5)
		}
		if got := tr.Realtime().Trend; got != cognition.TrendStable {
			t.Errorf("Trend = %q, want %q", got, cognition.TrendStable)
		}
	})
}

func TestPredict(t *testing.T) {
	t.Run("insufficient data", func(t *testing.T) {
		tr := NewTracker(DefaultConfig())
		p := tr.Predict(1)
		if p.Status != StatusInsufficient {
			t.Errorf("Status = %q, want %q", p.Status, StatusInsufficient)
		}
	})
	t.Run("bounded extrapolation", func(t *testing.T) {
		tr := NewTracker(DefaultConfig())
		for i := 0; i < 40; i++ {
			tr.RecordResponseTime(0.4, float64(i))
			tr.RecordAccuracy(0.5+float64(i)*0.012, float64(i)+0.5)
		}
		p := tr.Predict(10)
		if p.Status != StatusOK {
			t.Fatalf("Status = %q, want %q", p.Status, StatusOK)
		}
		if p.PredictedScore < 0 || p.PredictedScore > 1 {
			t.Errorf("PredictedScore = %v, want within [0, 1]", p.PredictedScore)
		}
		if p.Confidence <= 0 || p.Confidence > 1 {
			t.Errorf("Confidence = %v, want within (0, 1]", p.Confidence)
		}
	})
}

func TestInsightsMatchGrades(t *testing.T) {
	tr := NewTracker(DefaultConfig())
	for i := 0; i < 10; i++ {
		tr.RecordResponseTime(6.0, float64(i)) // critical latency
		tr.RecordAccuracy(0.5, float64(i)+0.5) // critical accuracy
	}

	report := tr.Insights()
	if report.Status != StatusOK {
		t.Fatalf("Status = %q, want %q", report.Status, StatusOK)
	}
	var alerts int
	for _, in := range report.Insights {
		if in.Severity == SeverityAlert {
			alerts++
		}
	}
	if alerts < 2 {
		t.Errorf("alert insights = %d, want at least 2 for critical latency and accuracy", alerts)
	}
	if len(report.Recommendations) == 0 {
		t.Error("no recommendations for a struggling learner")
	}
}

func almost(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
