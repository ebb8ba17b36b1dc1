package store

// Settings queries
const (
	queryGetSettings = `
		SELECT status_filters, result_limit, updated_at
		FROM settings WHERE id = 1`

	queryUpsertSettings = `
		INSERT INTO settings (id, status_filters, result_limit, updated_at)
		VALUES (1, ?, ?, now())
		ON CONFLICT (id) DO UPDATE SET
			status_filters = EXCLUDED.status_filters,
			result_limit = EXCLUDED.result_limit,
			updated_at = now()`
)

// Connection queries that fall outside the squirrel builders
const (
	queryDeactivateConnections = `UPDATE connections SET active = false WHERE active = true`

	queryActivateConnection = `UPDATE connections SET active = true, updated_at = now() WHERE id = ?`
)
