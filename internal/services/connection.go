package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

// ConnectionService manages the stored HP ALM connection profiles.
type ConnectionService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewConnectionService(st *store.Store) *ConnectionService {
	return &ConnectionService{
		store: st,
		log:   zap.S().Named("connections"),
	}
}

// ConnectionListParams filter and paginate the profile listing.
type ConnectionListParams struct {
	Name   string
	Limit  uint64
	Offset uint64
}

type ConnectionListResult struct {
	Connections []models.Connection
	Total       int
}

func (s *ConnectionService) List(ctx context.Context, params ConnectionListParams) (*ConnectionListResult, error) {
	opts := []store.ListOption{store.ByName(params.Name), store.WithDefaultSort()}
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	connections, err := s.store.Connection().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	total, err := s.store.Connection().Count(ctx, store.ByName(params.Name))
	if err != nil {
		return nil, err
	}

	return &ConnectionListResult{Connections: connections, Total: total}, nil
}

func (s *ConnectionService) Get(ctx context.Context, id string) (*models.Connection, error) {
	return s.store.Connection().Get(ctx, id)
}

// Create validates and stores a new profile. The first profile becomes
// active automatically so the provider is usable right after setup.
func (s *ConnectionService) Create(ctx context.Context, conn *models.Connection) (*models.Connection, error) {
	if err := validateConnection(conn); err != nil {
		return nil, err
	}
	if conn.ID == "" {
		conn.ID = uuid.NewString()
	}
	if conn.Domain == "" {
		conn.Domain = models.DefaultDomain
	}

	total, err := s.store.Connection().Count(ctx)
	if err != nil {
		return nil, err
	}

	makeActive := conn.Active || total == 0
	conn.Active = false
	if err := s.store.Connection().Create(ctx, conn); err != nil {
		return nil, err
	}
	if makeActive {
		if err := s.store.Connection().SetActive(ctx, conn.ID); err != nil {
			return nil, err
		}
	}

	s.log.Infow("created connection profile", "id", conn.ID, "name", conn.Name, "active", makeActive)
	return s.store.Connection().Get(ctx, conn.ID)
}

// Update replaces a profile's fields. Active is move-only: setting it
// activates the profile, clearing it is ignored. Exactly one profile stays
// active at all times, so the flag is cleared by activating another profile,
// never by deactivating this one.
func (s *ConnectionService) Update(ctx context.Context, conn *models.Connection) (*models.Connection, error) {
	if err := validateConnection(conn); err != nil {
		return nil, err
	}
	if conn.Domain == "" {
		conn.Domain = models.DefaultDomain
	}

	if err := s.store.Connection().Update(ctx, conn); err != nil {
		return nil, err
	}
	if conn.Active {
		if err := s.store.Connection().SetActive(ctx, conn.ID); err != nil {
			return nil, err
		}
	}

	s.log.Infow("updated connection profile", "id", conn.ID, "name", conn.Name)
	return s.store.Connection().Get(ctx, conn.ID)
}

func (s *ConnectionService) Delete(ctx context.Context, id string) error {
	if err := s.store.Connection().Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infow("deleted connection profile", "id", id)
	return nil
}

func validateConnection(conn *models.Connection) error {
	if conn.Name == "" {
		return srvErrors.NewValidationError("connection name is required")
	}
	if conn.URL == "" {
		return srvErrors.NewValidationError("connection url is required")
	}
	if conn.Username == "" {
		return srvErrors.NewValidationError("connection username is required")
	}
	return nil
}
