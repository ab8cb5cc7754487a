// Package iodb implements store.Store directly on PostgreSQL using
// pgxpool. This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swimroster/memimport/pkg/config"
	"github.com/swimroster/memimport/pkg/member"
	"github.com/swimroster/memimport/pkg/store"
)

// pgStore implements store.Store with a pgxpool connection pool.
type pgStore struct {
	pool  *pgxpool.Pool
	table pgx.Identifier
}

// New creates a PostgreSQL store (without connecting).
func New() store.Store {
	return &pgStore{}
}

// DSN builds a connection URL from the database settings.
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.SSLMode),
	}
	return u.String()
}

// Connect establishes a connection pool to PostgreSQL and verifies it
// with a ping.
func (p *pgStore) Connect(ctx context.Context, cfg *config.Config) error {
	db := cfg.Database
	poolConfig, err := pgxpool.ParseConfig(DSN(db))
	if err != nil {
		return ConnectionError(db.Host, db.Port, db.Database, db.User, err)
	}

	// rows are inserted one at a time
	poolConfig.MaxConns = 2
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(db.Host, db.Port, db.Database, db.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(db.Host, db.Port, db.Database, db.User, err)
	}

	p.pool = pool
	p.table = pgx.Identifier{cfg.Service.Schema, cfg.Import.Table}
	return nil
}

// Probe reads at most one row of the members table.
func (p *pgStore) Probe(ctx context.Context) (store.ProbeResult, error) {
	res := store.ProbeResult{Table: p.tableName()}
	if p.pool == nil {
		return res, NotConnectedError()
	}

	query := fmt.Sprintf("SELECT * FROM %s LIMIT 1", p.table.Sanitize())
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return res, ProbeError(res.Table, err)
	}

	res.Rows, err = pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return res, ProbeError(res.Table, err)
	}
	for _, row := range res.Rows {
		normalize(row)
	}
	return res, nil
}

// Insert adds one record. Birthday is sent as ISO text and cast to date
// by the server; nil pointers become NULL.
func (p *pgStore) Insert(ctx context.Context, rec member.Record) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	query := fmt.Sprintf(`INSERT INTO %s
	(org_id, first_name, last_name, gender, date_of_birth, level)
	VALUES ($1, $2, $3, $4, $5::date, $6)`, p.table.Sanitize())

	_, err := p.pool.Exec(ctx, query,
		rec.OrgID,
		rec.FirstName,
		rec.LastName,
		rec.Gender,
		rec.DateOfBirth,
		rec.Level,
	)
	if err != nil {
		return InsertError(p.tableName(), err)
	}
	return nil
}

// Close releases all database connections.
func (p *pgStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

func (p *pgStore) tableName() string {
	if len(p.table) == 0 {
		return ""
	}
	return p.table[len(p.table)-1]
}

// normalize makes values that pgx decodes into raw forms readable when
// the probe row is printed as JSON.
func normalize(row map[string]any) {
	for k, v := range row {
		switch val := v.(type) {
		case [16]byte:
			row[k] = uuid.UUID(val).String()
		case []byte:
			row[k] = string(val)
		}
	}
}
