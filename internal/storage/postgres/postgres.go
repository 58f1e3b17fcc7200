package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"travel_console/internal/domain"
)

// querier is the subset of pgxpool.Pool the repo needs; pgxmock pools satisfy it too.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db    querier
	close func()
}

// Open connects a pool and verifies it with a ping.
func Open(ctx context.Context, connString string) (*Repo, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, errors.Wrap(err, "parse pg config")
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "connect pg")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping pg")
	}
	return &Repo{db: pool, close: pool.Close}, nil
}

func New(db querier) *Repo { return &Repo{db: db} }

func (r *Repo) Close() {
	if r.close != nil {
		r.close()
	}
}

func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, q := range schemaStmts {
		if _, err := r.db.Exec(ctx, q); err != nil {
			return errors.Wrap(err, "init schema")
		}
	}
	return nil
}

func (r *Repo) CreatePackage(ctx context.Context, p domain.NewPackage) (domain.Package, error) {
	row := r.db.QueryRow(ctx, insertPackageSQL,
		p.Name, p.Destination, p.Duration,
		p.Price, p.OriginalPrice,
		p.Description, p.Highlights, p.Includes,
		p.Category, p.Status, p.Featured, p.Image,
		p.Route, p.Nights, p.Days, p.TripType,
	)
	out, err := scanPackage(row)
	if err != nil {
		return domain.Package{}, storeErr("insert package", err)
	}
	return out, nil
}

func (r *Repo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.Query(ctx, listPackagesSQL)
	if err != nil {
		return nil, storeErr("select packages", err)
	}
	defer rows.Close()

	out := make([]domain.Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, storeErr("scan package", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("select packages", err)
	}
	return out, nil
}

func scanPackage(row pgx.Row) (domain.Package, error) {
	var p domain.Package
	err := row.Scan(
		&p.ID, &p.Name, &p.Destination, &p.Duration,
		&p.Price, &p.OriginalPrice,
		&p.Description, &p.Highlights, &p.Includes,
		&p.Category, &p.Status, &p.Featured, &p.Image,
		&p.Route, &p.Nights, &p.Days, &p.TripType,
		&p.CreatedAt,
	)
	return p, err
}

// storeErr tags err as a store failure, keeping the server's message text
// when postgres reported one.
func storeErr(op string, err error) error {
	se := &domain.StoreError{Op: op, Err: errors.WithStack(err)}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Message = pgErr.Message
	}
	return se
}
