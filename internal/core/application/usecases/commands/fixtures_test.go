package commands_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/product"
	"grocery/internal/core/domain/model/rider"
	"grocery/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/require"
)

func testVendor(t *testing.T) *vendor.Vendor {
	t.Helper()
	v, err := vendor.NewVendor(
		kernel.NewUUID(), "Fresh Market", "12 Market Lane", "https://img/fresh.png", "30-45 min")
	require.NoError(t, err)
	return v
}

func testProduct(t *testing.T, v *vendor.Vendor, name string, priceCents int64) *product.Product {
	t.Helper()
	price, err := kernel.MoneyFromCents(priceCents)
	require.NoError(t, err)
	p, err := product.NewProduct(
		kernel.NewUUID(), name, price, "1L", "Dairy", v.ID(), "")
	require.NoError(t, err)
	return p
}

func testActiveRider(t *testing.T, name string, rating float64) *rider.Rider {
	t.Helper()
	bank, err := rider.NewBankDetails(name, "62012345678", "First National Bank")
	require.NoError(t, err)
	r, err := rider.NewRider(
		kernel.NewUUID(), name, "+27 82 123 4567", "rider@example.com",
		rating, rider.StatusActive, "Motorbike", bank)
	require.NoError(t, err)
	return r
}

// testBasket builds a basket holding 2 × $2.99 milk and 1 × $4.99 eggs
// from the given supermarket, subtotal $10.97.
func testBasket(t *testing.T, v *vendor.Vendor) *basket.Basket {
	t.Helper()
	ref, err := basket.NewVendorRef(v.ID(), v.Name(), v.Address(), v.Image())
	require.NoError(t, err)

	b, err := basket.NewBasket(kernel.NewUUID())
	require.NoError(t, err)

	milk := testProduct(t, v, "Milk", 299)
	eggs := testProduct(t, v, "Eggs", 499)
	for _, item := range []struct {
		p   *product.Product
		qty int
	}{{milk, 2}, {eggs, 1}} {
		line, err := basket.NewLine(item.p.ID(), item.p.Name(), item.p.Price(), item.qty, v.ID())
		require.NoError(t, err)
		require.NoError(t, b.AddLine(line, ref))
	}

	return b
}

func testQuotedBasket(t *testing.T, v *vendor.Vendor) *basket.Basket {
	t.Helper()
	b := testBasket(t, v)
	quote, err := kernel.NewDeliveryQuote("123 Main St", 5.0)
	require.NoError(t, err)
	require.NoError(t, b.AttachQuote(quote))
	return b
}

func testDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	ref, err := order.NewVendorRef(kernel.NewUUID(), "Fresh Market", "12 Market Lane")
	require.NoError(t, err)
	price, err := kernel.MoneyFromCents(299)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Milk", price, 2)
	require.NoError(t, err)
	quote, err := kernel.NewDeliveryQuote("123 Main St", 5.0)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewRandomOrderNumber(), ref, []order.Line{line}, quote, time.Now())
	require.NoError(t, err)
	for !o.Status().IsTerminal() {
		_, err = o.Advance(time.Now().Add(-commandsTestPromptAge))
		require.NoError(t, err)
	}
	return o
}

// commandsTestPromptAge backdates delivery far enough for the verification
// prompt delay to have elapsed.
const commandsTestPromptAge = 10 * time.Second
