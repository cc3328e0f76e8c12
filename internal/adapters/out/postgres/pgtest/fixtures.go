package pgtest

import (
	"time"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/catalogrepo"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MustEmail parses raw or panics.
func MustEmail(raw string) kernel.Email {
	e, err := kernel.NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// MustAddress returns a complete delivery address.
func MustAddress() kernel.Address {
	a, err := kernel.NewAddress(kernel.AddressFields{
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Pincode: "560001",
		Street:  "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
	})
	if err != nil {
		panic(err)
	}
	return a
}

// MustOrder builds a Ready order for buyer with one unit of each named item at 10.00.
func MustOrder(buyer string, placedAt time.Time, names ...string) *order.Order {
	price, err := kernel.MoneyFromString("10.00")
	if err != nil {
		panic(err)
	}

	items := make([]order.Item, 0, len(names))
	total := kernel.ZeroMoney()
	for _, name := range names {
		item, itemErr := order.NewItem(name, 1, price, nil)
		if itemErr != nil {
			panic(itemErr)
		}
		items = append(items, item)
		total = total.Add(price)
	}

	o, err := order.NewOrder(kernel.NewUUID(), MustEmail(buyer), MustAddress(), items, total, placedAt)
	if err != nil {
		panic(err)
	}
	return o
}

// SeedSeller inserts a seller and returns its ID.
func SeedSeller(db *gorm.DB, shopName string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := db.Create(&catalogrepo.SellerDTO{
		SellerID: id.Bytes(),
		ShopName: shopName,
		Phone:    "9000000000",
		Address:  "1 Market Street",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560002",
	}).Error
	return id, err
}

// SeedProduct inserts a product owned by sellerID and returns its ID.
func SeedProduct(db *gorm.DB, name string, sellerID kernel.UUID, price string) (kernel.UUID, error) {
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return kernel.UUID{}, err
	}

	id := kernel.NewUUID()
	err = db.Create(&catalogrepo.ProductDTO{
		ID:       id.Bytes(),
		Name:     name,
		SellerID: sellerID.Bytes(),
		Price:    amount,
		Category: "grocery",
	}).Error
	return id, err
}
