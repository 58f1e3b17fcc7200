package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"travel_console/internal/domain"
)

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// valJSON stores a nil list as NULL and anything else as a JSON array.
func valJSON(v []string) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, q := range schemaStmts {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return errors.Wrap(err, "init schema")
		}
	}
	return nil
}

// CreatePackage inserts the row and reads it back so the caller gets the
// store-assigned id and created_at.
func (r *Repo) CreatePackage(ctx context.Context, p domain.NewPackage) (domain.Package, error) {
	hl, err := valJSON(p.Highlights)
	if err != nil {
		return domain.Package{}, errors.Wrap(err, "encode highlights")
	}
	inc, err := valJSON(p.Includes)
	if err != nil {
		return domain.Package{}, errors.Wrap(err, "encode includes")
	}

	res, err := r.db.ExecContext(ctx, insertPackageSQL,
		p.Name, p.Destination, p.Duration,
		valF64(p.Price), valF64(p.OriginalPrice),
		p.Description, hl, inc,
		p.Category, p.Status, p.Featured, p.Image,
		p.Route, p.Nights, p.Days, p.TripType,
	)
	if err != nil {
		return domain.Package{}, storeErr("insert package", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Package{}, storeErr("insert package", err)
	}

	out, err := scanPackage(r.db.QueryRowContext(ctx, getPackageSQL, id))
	if err != nil {
		return domain.Package{}, storeErr("select package", err)
	}
	return out, nil
}

func (r *Repo) ListPackages(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.QueryContext(ctx, listPackagesSQL)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (domain.Package, error) {
	var p domain.Package
	var price, orig sql.NullFloat64
	var highlights, includes []byte

	if err := row.Scan(
		&p.ID, &p.Name, &p.Destination, &p.Duration,
		&price, &orig,
		&p.Description, &highlights, &includes,
		&p.Category, &p.Status, &p.Featured, &p.Image,
		&p.Route, &p.Nights, &p.Days, &p.TripType,
		&p.CreatedAt,
	); err != nil {
		return domain.Package{}, err
	}

	if price.Valid {
		f := price.Float64
		p.Price = &f
	}
	if orig.Valid {
		f := orig.Float64
		p.OriginalPrice = &f
	}
	if len(highlights) > 0 {
		if err := json.Unmarshal(highlights, &p.Highlights); err != nil {
			return domain.Package{}, errors.Wrap(err, "decode highlights")
		}
	}
	if len(includes) > 0 {
		if err := json.Unmarshal(includes, &p.Includes); err != nil {
			return domain.Package{}, errors.Wrap(err, "decode includes")
		}
	}
	return p, nil
}

// storeErr tags err as a store failure, keeping the server's message text
// when MySQL reported one.
func storeErr(op string, err error) error {
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	se := &domain.StoreError{Op: op, Err: errors.WithStack(err)}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		se.Message = myErr.Message
	}
	return se
}
