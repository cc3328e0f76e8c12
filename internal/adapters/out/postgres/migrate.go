package postgres

import (
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/agentrepo"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/buyerrepo"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/cartrepo"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/catalogrepo"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/orderrepo"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/sellerorderrepo"

	"gorm.io/gorm"
)

// Tables lists every table Migrate creates.
var Tables = []string{
	"carts",
	"orders",
	"seller_orders",
	"delivery_agents",
	"buyers",
	"products",
	"seller_details",
}

// Migrate creates or updates the schema. The catalog tables belong to the
// catalog service and are migrated here only for tests and local runs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&cartrepo.CartDTO{},
		&orderrepo.OrderDTO{},
		&sellerorderrepo.SellerOrderDTO{},
		&agentrepo.AgentDTO{},
		&buyerrepo.BuyerDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.SellerDTO{},
	)
}
