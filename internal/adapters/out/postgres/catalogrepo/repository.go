package catalogrepo

import (
	"context"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalog implements ports.Catalog using GORM.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a catalog reader bound to db.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// Resolve looks every ref up by product ID first. Refs without an ID, or whose
// ID is unknown, are matched by case-insensitive name. Anything left is missing.
func (c *GormCatalog) Resolve(ctx context.Context, refs []catalog.Ref) (catalog.Resolution, error) {
	resolution := catalog.NewResolution()
	if len(refs) == 0 {
		return resolution, nil
	}

	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		if ref.ProductID != nil {
			ids = append(ids, ref.ProductID.Bytes())
		}
	}

	byID := make(map[uuid.UUID]catalog.Product, len(ids))
	if len(ids) > 0 {
		var rows []ProductDTO
		if err := c.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return catalog.Resolution{}, err
		}
		for _, row := range rows {
			p, err := productToDomain(row)
			if err != nil {
				return catalog.Resolution{}, err
			}
			byID[row.ID] = p
		}
	}

	pending := make([]catalog.Ref, 0, len(refs))
	for _, ref := range refs {
		if ref.ProductID != nil {
			if p, ok := byID[ref.ProductID.Bytes()]; ok {
				resolution.Add(ref.Name, p)
				continue
			}
		}
		pending = append(pending, ref)
	}
	if len(pending) == 0 {
		return resolution, nil
	}

	names := make([]string, 0, len(pending))
	for _, ref := range pending {
		names = append(names, nameKey(ref.Name))
	}

	var rows []ProductDTO
	if err := c.db.WithContext(ctx).Where("LOWER(name) IN ?", names).Find(&rows).Error; err != nil {
		return catalog.Resolution{}, err
	}

	byName := make(map[string]catalog.Product, len(rows))
	for _, row := range rows {
		p, err := productToDomain(row)
		if err != nil {
			return catalog.Resolution{}, err
		}
		byName[nameKey(row.Name)] = p
	}

	for _, ref := range pending {
		if p, ok := byName[nameKey(ref.Name)]; ok {
			resolution.Add(ref.Name, p)
			continue
		}
		resolution.AddMissing(ref.Name)
	}

	return resolution, nil
}

// Sellers returns the seller details that exist among ids.
func (c *GormCatalog) Sellers(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.Seller, error) {
	sellers := make(map[kernel.UUID]catalog.Seller, len(ids))
	if len(ids) == 0 {
		return sellers, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var rows []SellerDTO
	if err := c.db.WithContext(ctx).Where("seller_id IN ?", raw).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		s, err := sellerToDomain(row)
		if err != nil {
			return nil, err
		}
		sellers[s.ID] = s
	}
	return sellers, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
