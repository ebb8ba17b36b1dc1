package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db          *sql.DB
	connections *ConnectionStore
	settings    *SettingsStore
}

func NewStore(db *sql.DB) *Store {
	interceptor := newLoggingDB(db)
	return &Store{
		db:          db,
		connections: NewConnectionStore(interceptor),
		settings:    NewSettingsStore(interceptor),
	}
}

func (s *Store) Connection() *ConnectionStore {
	return s.connections
}

func (s *Store) Settings() *SettingsStore {
	return s.settings
}

func (s *Store) Close() error {
	return s.db.Close()
}
