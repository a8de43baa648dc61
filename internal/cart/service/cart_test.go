package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emporium/storefront/cart/pkg/request"
	"github.com/emporium/storefront/internal/cart/store"
	catalogService "github.com/emporium/storefront/internal/catalog/service"
	catalogStore "github.com/emporium/storefront/internal/catalog/store"
	"github.com/emporium/storefront/internal/entity"
	inErrors "github.com/emporium/storefront/internal/errors"
)

func setupCartService(t *testing.T, products ...entity.Product) CartService {
	t.Helper()
	catalog := catalogStore.NewCatalogStore()
	for _, product := range products {
		catalog.Append(product)
	}
	catalogSvc := catalogService.NewCatalogService(catalog)
	return NewCartService(store.NewCartStore(), &catalogSvc)
}

func headphones() entity.Product {
	return entity.Product{
		ID:       "1",
		Name:     "Premium Wireless Headphones",
		Category: "Electronics",
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 25,
		Rating:   5,
	}
}

func webcam() entity.Product {
	return entity.Product{
		ID:       "3",
		Name:     "4K Webcam",
		Category: "Electronics",
		Price:    decimal.RequireFromString("199.99"),
		Quantity: 3,
		Rating:   4,
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.AddToCart(context.Background(), request.AddCartItem{
		ProductId: "missing",
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, inErrors.ErrProductNotFound))

	cart, err := svc.GetCart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestAddToCart_ComputesTotals(t *testing.T) {
	svc := setupCartService(t, headphones())

	cart, err := svc.AddToCart(context.Background(), request.AddCartItem{
		ProductId: "1",
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, cart.ItemCount)
	assert.True(t, decimal.RequireFromString("20.00").Equal(cart.Subtotal), "subtotal=%s", cart.Subtotal)
	assert.True(t, decimal.RequireFromString("2.00").Equal(cart.Tax), "tax=%s", cart.Tax)
	assert.True(t, decimal.RequireFromString("22.00").Equal(cart.Total), "total=%s", cart.Total)
}

func TestAddToCart_MergesRepeatedAdds(t *testing.T) {
	svc := setupCartService(t, headphones())

	_, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "1", Quantity: 1})
	require.NoError(t, err)
	cart, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "1", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 4, cart.CartItems[0].Quantity)
}

func TestAddToCart_CoercesQuantityToAtLeastOne(t *testing.T) {
	svc := setupCartService(t, headphones())

	cart, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "1", Quantity: 0})
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 1, cart.CartItems[0].Quantity)
}

func TestAddToCart_ClampsAgainstAvailableStock(t *testing.T) {
	svc := setupCartService(t, webcam())

	cart, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "3", Quantity: 10})
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 3, cart.CartItems[0].Quantity)
}

func TestAddToCart_RejectsOutOfStockProduct(t *testing.T) {
	soldOut := webcam()
	soldOut.Quantity = 0
	svc := setupCartService(t, soldOut)

	_, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "3", Quantity: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, inErrors.ErrOutOfStock))

	cart, err := svc.GetCart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestAddToCart_SnapshotsProductAtAddTime(t *testing.T) {
	product := headphones()
	catalog := catalogStore.NewCatalogStore()
	catalog.Append(product)
	catalogSvc := catalogService.NewCatalogService(catalog)
	svc := NewCartService(store.NewCartStore(), &catalogSvc)

	cart, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "1", Quantity: 1})
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1)
	assert.True(t, product.Price.Equal(cart.CartItems[0].Product.Price))
}

func TestUpdateQuantity_ClampsToOne(t *testing.T) {
	svc := setupCartService(t, headphones())
	_, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "1", Quantity: 5})
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(context.Background(), "1", -2)
	require.NoError(t, err)

	require.Len(t, cart.CartItems, 1, "update must never remove the line")
	assert.Equal(t, 1, cart.CartItems[0].Quantity)
}

func TestRemoveFromCart_AbsentIdIsNoop(t *testing.T) {
	svc := setupCartService(t, headphones())
	_, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "1", Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.RemoveFromCart(context.Background(), "missing")
	require.NoError(t, err)
	assert.Len(t, cart.CartItems, 1)

	cart, err = svc.RemoveFromCart(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestClearCart(t *testing.T) {
	svc := setupCartService(t, headphones(), webcam())
	_, err := svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "1", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), request.AddCartItem{ProductId: "3", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.ClearCart(context.Background())
	require.NoError(t, err)

	assert.Empty(t, cart.CartItems)
	assert.Equal(t, 0, cart.ItemCount)
	assert.True(t, decimal.Zero.Equal(cart.Subtotal))
	assert.True(t, decimal.Zero.Equal(cart.Total))
}
