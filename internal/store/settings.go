package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

// SettingsStore persists the host-configurable provider settings in a
// single-row table.
type SettingsStore struct {
	db QueryInterceptor
}

func NewSettingsStore(db QueryInterceptor) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get retrieves the stored settings.
func (s *SettingsStore) Get(ctx context.Context) (*models.Settings, error) {
	row := s.db.QueryRowContext(ctx, queryGetSettings)

	var settings models.Settings
	err := row.Scan(&settings.StatusFilters, &settings.ResultLimit, &settings.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewSettingsNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save stores or updates the settings.
func (s *SettingsStore) Save(ctx context.Context, settings *models.Settings) error {
	_, err := s.db.ExecContext(ctx, queryUpsertSettings, settings.StatusFilters, settings.ResultLimit)
	return err
}
