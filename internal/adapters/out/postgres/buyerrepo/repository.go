package buyerrepo

import (
	"context"
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/buyer"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBuyerRepository implements ports.BuyerRepository using GORM.
type GormBuyerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormBuyerRepository creates a new GORM buyer repository.
func NewGormBuyerRepository(db *gorm.DB, tracker aggregateTracker) *GormBuyerRepository {
	return &GormBuyerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a buyer by email.
func (r *GormBuyerRepository) Get(ctx context.Context, email kernel.Email) (*buyer.Buyer, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("buyer", email.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save inserts the buyer or overwrites the stored profile.
func (r *GormBuyerRepository) Save(ctx context.Context, aggregate *buyer.Buyer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.Email, aggregate)
	return nil
}
