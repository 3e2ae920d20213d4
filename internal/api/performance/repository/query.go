package performanceRepository

const (
	querySaveEvent = `
		INSERT INTO performance_events (
			id,
			session_id,
			user_id,
			type,
			value,
			created_at
		) VALUES (
			:id,
			:session_id,
			:user_id,
			:type,
			:value,
			:created_at
		)
	`

	queryGetEventsBySession = `
		SELECT
			id,
			session_id,
			user_id,
			type,
			value,
			created_at
		FROM performance_events
		WHERE session_id = :session_id
		ORDER BY created_at DESC
		LIMIT :limit
	`
)
