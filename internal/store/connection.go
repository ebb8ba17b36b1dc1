package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

var connectionColumns = []string{
	"id", "name", "url", "username", "password", "use_xsrf", "domain", "active",
	"created_at", "updated_at",
}

// ConnectionStore persists HP ALM connection profiles.
type ConnectionStore struct {
	db QueryInterceptor
}

func NewConnectionStore(db QueryInterceptor) *ConnectionStore {
	return &ConnectionStore{db: db}
}

func (s *ConnectionStore) List(ctx context.Context, opts ...ListOption) ([]models.Connection, error) {
	builder := sq.Select(connectionColumns...).From("connections")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []models.Connection
	for rows.Next() {
		conn, err := scanConnection(rows.Scan)
		if err != nil {
			return nil, err
		}
		connections = append(connections, *conn)
	}

	return connections, rows.Err()
}

func (s *ConnectionStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("connections")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (s *ConnectionStore) Get(ctx context.Context, id string) (*models.Connection, error) {
	query, args, err := sq.Select(connectionColumns...).
		From("connections").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	conn, err := scanConnection(s.db.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewConnectionNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// GetActive returns the profile the provider currently talks through.
func (s *ConnectionStore) GetActive(ctx context.Context) (*models.Connection, error) {
	query, args, err := sq.Select(connectionColumns...).
		From("connections").
		Where(sq.Eq{"active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	conn, err := scanConnection(s.db.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewConnectionNotFoundError("active")
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (s *ConnectionStore) Create(ctx context.Context, conn *models.Connection) error {
	now := time.Now().UTC()
	query, args, err := sq.Insert("connections").
		Columns(connectionColumns...).
		Values(conn.ID, conn.Name, conn.URL, conn.Username, conn.Password,
			conn.UseXSRF, conn.Domain, conn.Active, now, now).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *ConnectionStore) Update(ctx context.Context, conn *models.Connection) error {
	query, args, err := sq.Update("connections").
		Set("name", conn.Name).
		Set("url", conn.URL).
		Set("username", conn.Username).
		Set("password", conn.Password).
		Set("use_xsrf", conn.UseXSRF).
		Set("domain", conn.Domain).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": conn.ID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return srvErrors.NewConnectionNotFoundError(conn.ID)
	}
	return nil
}

func (s *ConnectionStore) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("connections").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return srvErrors.NewConnectionNotFoundError(id)
	}
	return nil
}

// SetActive marks one profile active and clears the flag on every other.
// The host framework serializes provider calls, so the two statements are
// not wrapped in a transaction.
func (s *ConnectionStore) SetActive(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, queryDeactivateConnections); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, queryActivateConnection, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return srvErrors.NewConnectionNotFoundError(id)
	}
	return nil
}

func scanConnection(scan func(dest ...any) error) (*models.Connection, error) {
	var conn models.Connection
	err := scan(
		&conn.ID,
		&conn.Name,
		&conn.URL,
		&conn.Username,
		&conn.Password,
		&conn.UseXSRF,
		&conn.Domain,
		&conn.Active,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByName(name string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if name == "" {
			return b
		}
		return b.Where(sq.Eq{"name": name})
	}
}

func ByActive() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"active": true})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("name", "id")
	}
}
