package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emporium/storefront/catalog/pkg/request"
	"github.com/emporium/storefront/internal/catalog/store"
	inErrors "github.com/emporium/storefront/internal/errors"
)

func setupService(t *testing.T) (*store.CatalogStore, CatalogService) {
	t.Helper()
	catalog := store.NewCatalogStore()
	return catalog, NewCatalogService(catalog)
}

func validRequest() request.AddProduct {
	return request.AddProduct{
		Name:          "Mechanical Keyboard",
		Category:      "Electronics",
		Description:   "Tenkeyless mechanical keyboard with hot-swappable switches",
		Specification: "Brown switches, USB-C, PBT keycaps",
		Image:         "https://example.com/keyboard.jpg",
		Price:         decimal.RequireFromString("89.99"),
		Quantity:      10,
		Rating:        4,
	}
}

func TestAddProduct_AssignsIdAndAppends(t *testing.T) {
	catalog, svc := setupService(t)

	product, err := svc.AddProduct(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Mechanical Keyboard", product.Name)
	assert.Equal(t, 1, catalog.Len())

	stored, ok := catalog.FindById(product.ID)
	require.True(t, ok)
	assert.Equal(t, product, stored)
}

func TestAddProduct_AssignsUniqueIds(t *testing.T) {
	_, svc := setupService(t)

	first, err := svc.AddProduct(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.AddProduct(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddProduct_AggregatesAllFieldErrors(t *testing.T) {
	catalog, svc := setupService(t)

	_, err := svc.AddProduct(context.Background(), request.AddProduct{
		Quantity: -1,
		Rating:   3,
	})
	require.Error(t, err)

	var validationErr *inErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 7)
	assert.Equal(t, "Product name is required", validationErr.Fields["name"])
	assert.Equal(t, "Category is required", validationErr.Fields["category"])
	assert.Equal(t, "Description is required", validationErr.Fields["description"])
	assert.Equal(t, "Specification is required", validationErr.Fields["specification"])
	assert.Equal(t, "Image URL is required", validationErr.Fields["image"])
	assert.Equal(t, "Price must be greater than 0", validationErr.Fields["price"])
	assert.Equal(t, "Quantity cannot be negative", validationErr.Fields["quantity"])

	assert.Equal(t, 0, catalog.Len(), "a rejected product must not be applied")
}

func TestAddProduct_RejectsWhitespaceOnlyFields(t *testing.T) {
	_, svc := setupService(t)

	param := validRequest()
	param.Name = "   "

	_, err := svc.AddProduct(context.Background(), param)
	require.Error(t, err)

	var validationErr *inErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "name")
	assert.Len(t, validationErr.Fields, 1)
}

func TestAddProduct_RejectsNonPositivePrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "given zero price should reject", price: "0"},
		{name: "given negative price should reject", price: "-10.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := setupService(t)

			param := validRequest()
			param.Price = decimal.RequireFromString(tt.price)

			_, err := svc.AddProduct(context.Background(), param)
			require.Error(t, err)

			var validationErr *inErrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, "price")
		})
	}
}

func TestAddProduct_ClampsRatingInsteadOfRejecting(t *testing.T) {
	tests := []struct {
		name     string
		rating   float64
		expected float64
	}{
		{name: "given rating above 5 should clamp to 5", rating: 7, expected: 5},
		{name: "given rating below 1 should clamp to 1", rating: 0, expected: 1},
		{name: "given negative rating should clamp to 1", rating: -3, expected: 1},
		{name: "given in-range rating should keep it", rating: 3.5, expected: 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := setupService(t)

			param := validRequest()
			param.Rating = tt.rating

			product, err := svc.AddProduct(context.Background(), param)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, product.Rating)
		})
	}
}

func TestFindProductById_NotFound(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.FindProductById(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, inErrors.ErrProductNotFound))
}

func TestSeedDefaults(t *testing.T) {
	catalog, svc := setupService(t)

	svc.SeedDefaults(context.Background())
	assert.Equal(t, 3, catalog.Len())

	categories, err := svc.FindCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Electronics", "Clothing"}, categories)

	// Seeding twice must not duplicate the default listing.
	svc.SeedDefaults(context.Background())
	assert.Equal(t, 3, catalog.Len())
}

func TestFindProducts_FilterByCategory(t *testing.T) {
	_, svc := setupService(t)
	svc.SeedDefaults(context.Background())

	all, err := svc.FindProducts(context.Background(), store.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	electronics, err := svc.FindProducts(context.Background(), "Electronics")
	require.NoError(t, err)
	assert.Len(t, electronics, 2)
}
