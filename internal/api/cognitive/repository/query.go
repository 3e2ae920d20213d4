package cognitiveRepository

const (
	querySaveSnapshot = `
		INSERT INTO analysis_snapshots (
			id,
			session_id,
			user_id,
			source,
			camera_enabled,
			attention_score,
			cognitive_load,
			engagement_level,
			emotional_state,
			drowsiness_level,
			learning_readiness,
			confidence_score,
			created_at
		) VALUES (
			:id,
			:session_id,
			:user_id,
			:source,
			:camera_enabled,
			:attention_score,
			:cognitive_load,
			:engagement_level,
			:emotional_state,
			:drowsiness_level,
			:learning_readiness,
			:confidence_score,
			:created_at
		)
	`

	queryGetSnapshotsBySession = `
		SELECT
			id,
			session_id,
			user_id,
			source,
			camera_enabled,
			attention_score,
			cognitive_load,
			engagement_level,
			emotional_state,
			drowsiness_level,
			learning_readiness,
			confidence_score,
			created_at
		FROM analysis_snapshots
		WHERE session_id = :session_id
		ORDER BY created_at DESC
		LIMIT :limit
	`

	queryGetLatestSnapshot = `
		SELECT
			id,
			session_id,
			user_id,
			source,
			camera_enabled,
			attention_score,
			cognitive_load,
			engagement_level,
			emotional_state,
			drowsiness_level,
			learning_readiness,
			confidence_score,
			created_at
		FROM analysis_snapshots
		WHERE session_id = :session_id
		ORDER BY created_at DESC
		LIMIT 1
	`

	queryDeleteBySession = `
		DELETE FROM analysis_snapshots
		WHERE session_id = :session_id
	`
)
