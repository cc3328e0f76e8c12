package commands

import (
	"context"
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/services"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

type sheetSources interface {
	BuyerRepoFactory
	CatalogFactory
}

// assembleOrderSheets loads buyer, product and seller detail for orders and builds
// a sheet per order. Products are resolved per order, since two orders may name
// the same item after different products; sellers are fetched once for all of
// them. Missing buyers, products or sellers degrade to nil placeholders.
func assembleOrderSheets(ctx context.Context, uow sheetSources, orders []*order.Order) ([]agent.OrderSheet, error) {
	if len(orders) == 0 {
		return []agent.OrderSheet{}, nil
	}

	planner := services.NewFanOutPlanner()
	builder := services.NewOrderSheetBuilder()

	resolutions := make([]catalog.Resolution, 0, len(orders))
	sellerIDs := make([]kernel.UUID, 0)
	sellerSeen := make(map[kernel.UUID]struct{})
	for _, o := range orders {
		resolution, err := uow.Catalog().Resolve(ctx, planner.Refs(o.Items()))
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, resolution)
		for _, id := range builder.SellerIDs(resolution) {
			if _, ok := sellerSeen[id]; !ok {
				sellerSeen[id] = struct{}{}
				sellerIDs = append(sellerIDs, id)
			}
		}
	}
	sellers, err := uow.Catalog().Sellers(ctx, sellerIDs)
	if err != nil {
		return nil, err
	}

	addresses := make(map[string]*kernel.Address)
	buyers := uow.BuyerRepository()
	for _, o := range orders {
		key := o.Buyer().String()
		if _, seen := addresses[key]; seen {
			continue
		}
		b, getErr := buyers.Get(ctx, o.Buyer())
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			addresses[key] = nil
		case getErr != nil:
			return nil, getErr
		default:
			addresses[key] = b.Address()
		}
	}

	sheets := make([]agent.OrderSheet, 0, len(orders))
	for i, o := range orders {
		sheets = append(sheets, builder.Build(o, addresses[o.Buyer().String()], resolutions[i], sellers))
	}
	return sheets, nil
}
