package performanceRepository

import (
	"AcawsGolang/internal/entity"
	contextPkg "AcawsGolang/pkg/context"
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type PerformanceEventDB struct {
	ID        sql.NullString  `db:"id"`
	SessionID sql.NullString  `db:"session_id"`
	UserID    sql.NullString  `db:"user_id"`
	Type      sql.NullString  `db:"type"`
	Value     sql.NullFloat64 `db:"value"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r *eventRepository) SaveEvent(c context.Context, event entity.PerformanceEvent) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         event.ID,
		"session_id": event.SessionID,
		"user_id":    event.UserID,
		"type":       event.Type,
		"value":      event.Value,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(querySaveEvent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SaveEvent")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving performance event")

		return err
	}

	return nil
}

func (r *eventRepository) GetEventsBySession(c context.Context, sessionID string, limit int) ([]entity.PerformanceEvent, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []PerformanceEventDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
		"limit":      limit,
	}

	query, args, err := sqlx.Named(queryGetEventsBySession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEventsBySession named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEventsBySession execution err")
		return nil, err
	}

	events := make([]entity.PerformanceEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, r.makePerformanceEvent(row))
	}

	return events, nil
}

func (r *eventRepository) makePerformanceEvent(row PerformanceEventDB) entity.PerformanceEvent {
	return entity.PerformanceEvent{
		ID:        row.ID.String,
		SessionID: row.SessionID.String,
		UserID:    row.UserID.String,
		Type:      row.Type.String,
		Value:     row.Value.Float64,
		CreatedAt: row.CreatedAt,
	}
}
