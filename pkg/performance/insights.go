package performance

// Insight severities.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityAlert   = "alert"
)

// Insight is one human-readable observation about tracked performance.
type Insight struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// InsightsReport pairs observations with concrete suggestions.
type InsightsReport struct {
	Status          string    `json:"status"`
	Insights        []Insight `json:"insights"`
	Recommendations []string  `json:"recommendations"`
	DataPoints      int       `json:"data_points"`
}

// Insights derives observations and recommendations from the current
// aggregates. Gradings drive the wording so the two views never disagree.
func (t *Tracker) Insights() InsightsReport {
	report := t.Realtime()
	if report.Status != StatusOK {
		return InsightsReport{Status: report.Status, DataPoints: report.DataPoints}
	}

	out := InsightsReport{Status: StatusOK, DataPoints: report.DataPoints}

	switch report.ResponseTime.Grade {
	case "excellent", "good":
		out.Insights = append(out.Insights, Insight{
			Category: "response_time",
			Message:  "response times are within the target range",
			Severity: SeverityInfo,
		})
	case "average":
		out.Insights = append(out.Insights, Insight{
			Category: "response_time",
			Message:  "response times are slower than the target range",
			Severity: SeverityWarning,
		})
		out.Recommendations = append(out.Recommendations, "break tasks into smaller steps to reduce per-task latency")
	default:
		out.Insights = append(out.Insights, Insight{
			Category: "response_time",
			Message:  "response times are far above the acceptable range",
			Severity: SeverityAlert,
		})
		out.Recommendations = append(out.Recommendations, "pause and resume with shorter, simpler tasks")
	}

	switch report.Accuracy.Grade {
	case "excellent", "good":
		out.Insights = append(out.Insights, Insight{
			Category: "accuracy",
			Message:  "answer accuracy is strong",
			Severity: SeverityInfo,
		})
	case "average":
		out.Insights = append(out.Insights, Insight{
			Category: "accuracy",
			Message:  "accuracy is drifting below the expected level",
			Severity: SeverityWarning,
		})
		out.Recommendations = append(out.Recommendations, "review recent material before continuing")
	default:
		out.Insights = append(out.Insights, Insight{
			Category: "accuracy",
			Message:  "accuracy has dropped well below the expected level",
			Severity: SeverityAlert,
		})
		out.Recommendations = append(out.Recommendations, "revisit fundamentals; the current difficulty may be too high")
	}

	switch report.CognitiveLoadProxy.Grade {
	case "poor", "critical":
		out.Insights = append(out.Insights, Insight{
			Category: "cognitive_load",
			Message:  "inferred cognitive load is high",
			Severity: SeverityWarning,
		})
		out.Recommendations = append(out.Recommendations, "take a short break to recover focus")
	}

	if report.Trend == "declining" {
		out.Insights = append(out.Insights, Insight{
			Category: "trend",
			Message:  "learning efficiency is trending down",
			Severity: SeverityWarning,
		})
		out.Recommendations = append(out.Recommendations, "consider ending the session soon; returns are diminishing")
	}

	return out
}
