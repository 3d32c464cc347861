package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

var ErrMissingDSN = errors.New("audit dsn is required")

// Record is one diagnostic entry written when a session ends: the reason
// the platform reported plus the raw request for later inspection. Session
// state itself is never persisted, only this end-of-session trace.
type Record struct {
	bun.BaseModel `bun:"table:skill_interactions"`

	ID          string          `bun:"id,pk"`
	SessionID   string          `bun:"session_id"`
	RequestType string          `bun:"request_type"`
	Reason      string          `bun:"reason"`
	Payload     json.RawMessage `bun:"payload,type:jsonb"`
	CreatedAt   time.Time       `bun:"created_at"`
}

// Store receives end-of-session diagnostics.
type Store interface {
	Insert(ctx context.Context, rec Record) error
}

// Config holds the optional Postgres target. An empty DSN disables the
// audit trail entirely.
type Config struct {
	DSN     string        `envconfig:"DSN"`
	Timeout time.Duration `split_words:"true" default:"5s"`
}

func (c Config) Enabled() bool {
	return strings.TrimSpace(c.DSN) != ""
}

// PGStore persists records to Postgres through bun.
type PGStore struct {
	db *bun.DB
}

func NewPGStore(cfg Config) (*PGStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PGStore{db: db}, nil
}

// Bootstrap creates the interactions table when it does not exist yet.
func (s *PGStore) Bootstrap(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*Record)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *PGStore) Insert(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.NewInsert().Model(&rec).Exec(ctx)
	return err
}

func (s *PGStore) Close() error {
	return s.db.Close()
}

// NopStore is used when no audit DSN is configured.
type NopStore struct{}

func (NopStore) Insert(context.Context, Record) error { return nil }
