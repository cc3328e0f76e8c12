package cartrepo

import (
	"context"
	"errors"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the buyer's cart.
func (r *GormCartRepository) Get(ctx context.Context, buyer kernel.Email) (*cart.Cart, error) {
	return r.get(ctx, r.db.WithContext(ctx), buyer)
}

// GetForUpdate retrieves the buyer's cart and locks the row until the transaction ends.
func (r *GormCartRepository) GetForUpdate(ctx context.Context, buyer kernel.Email) (*cart.Cart, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), buyer)
}

func (r *GormCartRepository) get(_ context.Context, db *gorm.DB, buyer kernel.Email) (*cart.Cart, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := db.First(&dto, "email = ?", buyer.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", buyer.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add inserts a new cart. A cart that already exists for the buyer is reported
// as errs.ConflictError so the caller can retry against the existing row.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if columns.IsUniqueViolation(err) {
			return errs.NewConflictError("cart", dto.Email, "already exists")
		}
		return err
	}

	r.tracker.TrackAggregate(dto.Email, aggregate)
	return nil
}

// Update replaces the lines and total of an existing cart.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CartDTO{}).
		Where("email = ?", dto.Email).
		Select("lines", "total", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart", dto.Email)
	}

	r.tracker.TrackAggregate(dto.Email, aggregate)
	return nil
}

// Delete removes the buyer's cart. Deleting a missing cart is not an error.
func (r *GormCartRepository) Delete(ctx context.Context, buyer kernel.Email) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&CartDTO{}, "email = ?", buyer.String()).Error
}
