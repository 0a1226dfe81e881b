package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectProductColumns = `id, revision, company_id, name, price, deleted, created_at`

func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product
	if err := s.Scan(&p.ID, &p.Revision, &p.CompanyID, &p.Name, &p.Price, &p.Deleted, &p.CreatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (id, revision, company_id, name, price, deleted, created_at)
		VALUES ($1, 1, $2, $3, $4, FALSE, NOW())
		RETURNING revision, created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.ID, p.CompanyID, p.Name, p.Price).
		Scan(&p.Revision, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) AppendRevision(ctx context.Context, p *product.Product) error {
	// The WHERE guard keeps two concurrent edits from writing the same
	// revision number; the loser sees zero rows and reports a conflict.
	query := `
		INSERT INTO products (id, revision, company_id, name, price, deleted, created_at)
		SELECT $1, $2, $3, $4, $5, FALSE, NOW()
		WHERE $2 = (SELECT MAX(revision) + 1 FROM products WHERE id = $1)
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.ID, p.Revision, p.CompanyID, p.Name, p.Price).
		Scan(&p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fault.New(fault.CodeProductNotFound, "product %s changed concurrently", p.ID)
		}

		return fmt.Errorf("appending product revision: %w", err)
	}

	return nil
}

func (s *Store) CurrentRevision(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE id = $1
		ORDER BY revision DESC
		LIMIT 1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodeProductNotFound, "product %s not found", id)
		}

		return nil, fmt.Errorf("getting current revision: %w", err)
	}

	return p, nil
}

func (s *Store) Revision(ctx context.Context, id uuid.UUID, revision int) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1 AND revision = $2`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id, revision))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodeProductNotFound, "product %s@%d not found", id, revision)
		}

		return nil, fmt.Errorf("getting product revision: %w", err)
	}

	return p, nil
}

func (s *Store) MarkDeleted(ctx context.Context, id uuid.UUID, revision int) error {
	res, err := s.db.ExecContext(ctx, `UPDATE products SET deleted = TRUE WHERE id = $1 AND revision = $2`, id, revision)
	if err != nil {
		return fmt.Errorf("marking product deleted: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking product deleted: %w", err)
	}

	if affected == 0 {
		return fault.New(fault.CodeProductNotFound, "product %s@%d not found", id, revision)
	}

	return nil
}

func (s *Store) ListByCompany(ctx context.Context, companyID uuid.UUID, liveOnly bool) ([]*product.Product, error) {
	// One row per id, the highest revision. Liveness is a property of that
	// newest revision, so the filter wraps the DISTINCT ON instead of
	// joining its WHERE clause.
	query := `SELECT ` + selectProductColumns + ` FROM (
			SELECT DISTINCT ON (id) ` + selectProductColumns + `
			FROM products
			WHERE company_id = $1
			ORDER BY id, revision DESC
		) current
		WHERE $2 = FALSE OR deleted = FALSE`

	rows, err := s.db.QueryContext(ctx, query, companyID, liveOnly)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}
