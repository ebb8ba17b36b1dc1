package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

// SettingsService manages the host-configurable provider settings.
type SettingsService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewSettingsService(st *store.Store) *SettingsService {
	return &SettingsService{
		store: st,
		log:   zap.S().Named("settings"),
	}
}

// Get returns the stored settings, or the defaults when nothing has been
// saved yet.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.store.Settings().Get(ctx)
	if srvErrors.IsResourceNotFoundError(err) {
		return &models.Settings{
			StatusFilters: models.DefaultStatusFilters,
			ResultLimit:   strconv.Itoa(models.DefaultResultLimit),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Save stores the settings. The result limit is accepted as free text; an
// unparseable value is stored as-is and degrades to the default at use
// time, matching how the host hands configuration over.
func (s *SettingsService) Save(ctx context.Context, settings *models.Settings) error {
	if err := s.store.Settings().Save(ctx, settings); err != nil {
		return err
	}
	s.log.Infow("saved provider settings",
		"statusFilters", settings.StatusFilters,
		"resultLimit", settings.ResultLimit,
	)
	return nil
}
