package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/fault"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product

type Repository interface {
	// CreateProduct inserts revision 1 of a new product.
	CreateProduct(ctx context.Context, p *Product) error
	// AppendRevision inserts the next revision for an id, leaving all prior
	// revisions untouched. Returns the stored row.
	AppendRevision(ctx context.Context, p *Product) error
	// CurrentRevision returns the highest revision for an id, deleted or not.
	CurrentRevision(ctx context.Context, id uuid.UUID) (*Product, error)
	// Revision returns one pinned (id, revision) row, deleted or not.
	Revision(ctx context.Context, id uuid.UUID, revision int) (*Product, error)
	// MarkDeleted soft-deletes a specific revision in place.
	MarkDeleted(ctx context.Context, id uuid.UUID, revision int) error
	ListByCompany(ctx context.Context, companyID uuid.UUID, liveOnly bool) ([]*Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a new product at revision 1.
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, name string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, fault.New(fault.CodeBadUserInput, "product name must not be empty")
	}

	if price.IsNegative() {
		return nil, fault.New(fault.CodeBadUserInput, "product price must not be negative")
	}

	p := &Product{
		ID:        uuid.New(),
		Revision:  1,
		CompanyID: companyID,
		Name:      name,
		Price:     price,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Edit issues a new revision with the given fields changed. The prior
// revision stays as-is so receipts pinning it keep their price and name.
func (s *Service) Edit(ctx context.Context, companyID, id uuid.UUID, name *string, price *decimal.Decimal) (*Product, error) {
	if name == nil && price == nil {
		return nil, fault.New(fault.CodeBadUserInput, "nothing to change")
	}

	if name != nil && *name == "" {
		return nil, fault.New(fault.CodeBadUserInput, "product name must not be empty")
	}

	if price != nil && price.IsNegative() {
		return nil, fault.New(fault.CodeBadUserInput, "product price must not be negative")
	}

	current, err := s.liveCurrent(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	next := &Product{
		ID:        id,
		Revision:  current.Revision + 1,
		CompanyID: companyID,
		Name:      current.Name,
		Price:     current.Price,
	}

	if name != nil {
		next.Name = *name
	}

	if price != nil {
		next.Price = *price
	}

	if err := s.repo.AppendRevision(ctx, next); err != nil {
		return nil, err
	}

	return next, nil
}

// Remove soft-deletes the product's current revision. Historical revisions
// referenced by receipts are never removed.
func (s *Service) Remove(ctx context.Context, companyID, id uuid.UUID) error {
	current, err := s.liveCurrent(ctx, companyID, id)
	if err != nil {
		return err
	}

	return s.repo.MarkDeleted(ctx, id, current.Revision)
}

// Get resolves a pinned revision, including deleted ones: a receipt must be
// able to show what was bought no matter what happened to the product since.
func (s *Service) Get(ctx context.Context, id uuid.UUID, revision int) (*Product, error) {
	return s.repo.Revision(ctx, id, revision)
}

// Current returns the newest revision of a product, deleted or not.
func (s *Service) Current(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.CurrentRevision(ctx, id)
}

// List returns a company's products, optionally only sellable ones.
func (s *Service) List(ctx context.Context, companyID uuid.UUID, liveOnly bool) ([]*Product, error) {
	return s.repo.ListByCompany(ctx, companyID, liveOnly)
}

func (s *Service) liveCurrent(ctx context.Context, companyID, id uuid.UUID) (*Product, error) {
	current, err := s.repo.CurrentRevision(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Deleted || current.CompanyID != companyID {
		return nil, fault.New(fault.CodeProductNotFound, "no live product %s for company %s", id, companyID)
	}

	return current, nil
}
