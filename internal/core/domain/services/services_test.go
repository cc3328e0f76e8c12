package services_test

import (
	"testing"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func placedOrder(t *testing.T, items map[string]int) *order.Order {
	t.Helper()
	var list []order.Item
	for _, name := range []string{"Milk", "Bread", "Eggs"} {
		qty, ok := items[name]
		if !ok {
			continue
		}
		it, err := order.NewItem(name, qty, money(t, "10"), nil)
		require.NoError(t, err)
		list = append(list, it)
	}
	buyer, _ := kernel.NewEmail("asha@example.com")
	o, err := order.NewOrder(kernel.NewUUID(), buyer, customer(t).Address, list, money(t, "10"), time.Now())
	require.NoError(t, err)
	return o
}

func customer(t *testing.T) sellerorder.Customer {
	t.Helper()
	email, _ := kernel.NewEmail("asha@example.com")
	addr, err := kernel.NewAddress(kernel.AddressFields{
		Name: "Asha", Phone: "98450", Pincode: "560001", Street: "MG Road", City: "Bengaluru", State: "KA",
	})
	require.NoError(t, err)
	return sellerorder.Customer{Email: email, Address: addr}
}

func product(name string, sellerID kernel.UUID) catalog.Product {
	return catalog.Product{ID: kernel.NewUUID(), Name: name, SellerID: sellerID}
}
