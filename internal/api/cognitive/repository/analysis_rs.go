package cognitiveRepository

import (
	"AcawsGolang/internal/api/cognitive"
	"AcawsGolang/internal/entity"
	contextPkg "AcawsGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type AnalysisSnapshotDB struct {
	ID              sql.NullString  `db:"id"`
	SessionID       sql.NullString  `db:"session_id"`
	UserID          sql.NullString  `db:"user_id"`
	Source          sql.NullString  `db:"source"`
	CameraEnabled   sql.NullBool    `db:"camera_enabled"`
	AttentionScore  sql.NullFloat64 `db:"attention_score"`
	CognitiveLoad   sql.NullFloat64 `db:"cognitive_load"`
	EngagementLevel sql.NullFloat64 `db:"engagement_level"`
	EmotionalState  sql.NullString  `db:"emotional_state"`
	DrowsinessLevel sql.NullFloat64 `db:"drowsiness_level"`
	LearningReady   sql.NullFloat64 `db:"learning_readiness"`
	ConfidenceScore sql.NullFloat64 `db:"confidence_score"`
	CreatedAt       time.Time       `db:"created_at"`
}

func (r *analysisRepository) SaveSnapshot(c context.Context, record entity.AnalysisRecord) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                 record.ID,
		"session_id":         record.SessionID,
		"user_id":            record.UserID,
		"source":             record.Source,
		"camera_enabled":     record.CameraEnabled,
		"attention_score":    record.AttentionScore,
		"cognitive_load":     record.CognitiveLoad,
		"engagement_level":   record.EngagementLevel,
		"emotional_state":    record.EmotionalState,
		"drowsiness_level":   record.DrowsinessLevel,
		"learning_readiness": record.LearningReady,
		"confidence_score":   record.ConfidenceScore,
		"created_at":         time.Now(),
	}

	query, args, err := sqlx.Named(querySaveSnapshot, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SaveSnapshot")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving analysis snapshot")

		return err
	}

	return nil
}

func (r *analysisRepository) GetSnapshotsBySession(c context.Context, sessionID string, limit int) ([]entity.AnalysisRecord, error) {
	requestID := contextPkg.GetRequestID(c)
	var snapshots []AnalysisSnapshotDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
		"limit":      limit,
	}

	query, args, err := sqlx.Named(queryGetSnapshotsBySession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSnapshotsBySession named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &snapshots, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSnapshotsBySession execution err")
		return nil, err
	}

	records := make([]entity.AnalysisRecord, 0, len(snapshots))
	for _, s := range snapshots {
		records = append(records, r.makeAnalysisRecord(s))
	}

	return records, nil
}

func (r *analysisRepository) GetLatestSnapshot(c context.Context, sessionID string) (entity.AnalysisRecord, error) {
	requestID := contextPkg.GetRequestID(c)
	var snapshot AnalysisSnapshotDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryGetLatestSnapshot, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestSnapshot named query preparation err")
		return entity.AnalysisRecord{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&snapshot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetLatestSnapshot no rows found")
			return entity.AnalysisRecord{}, cognitive.ErrSessionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestSnapshot execution err")
		return entity.AnalysisRecord{}, err
	}

	return r.makeAnalysisRecord(snapshot), nil
}

func (r *analysisRepository) DeleteBySession(c context.Context, sessionID string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryDeleteBySession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBySession named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBySession execution err")
		return err
	}

	return nil
}

func (r *analysisRepository) makeAnalysisRecord(s AnalysisSnapshotDB) entity.AnalysisRecord {
	return entity.AnalysisRecord{
		ID:              s.ID.String,
		SessionID:       s.SessionID.String,
		UserID:          s.UserID.String,
		Source:          s.Source.String,
		CameraEnabled:   s.CameraEnabled.Bool,
		AttentionScore:  s.AttentionScore.Float64,
		CognitiveLoad:   s.CognitiveLoad.Float64,
		EngagementLevel: s.EngagementLevel.Float64,
		EmotionalState:  s.EmotionalState.String,
		DrowsinessLevel: s.DrowsinessLevel.Float64,
		LearningReady:   s.LearningReady.Float64,
		ConfidenceScore: s.ConfidenceScore.Float64,
		CreatedAt:       s.CreatedAt,
	}
}
