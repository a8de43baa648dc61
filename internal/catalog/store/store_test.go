package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emporium/storefront/internal/entity"
)

func seededStore() *CatalogStore {
	catalog := NewCatalogStore()
	catalog.Append(entity.Product{
		ID:       "1",
		Name:     "Premium Wireless Headphones",
		Category: "Electronics",
		Price:    decimal.RequireFromString("129.99"),
		Quantity: 8,
	})
	catalog.Append(entity.Product{
		ID:       "2",
		Name:     "Organic Cotton T-Shirt",
		Category: "Clothing",
		Price:    decimal.RequireFromString("34.99"),
		Quantity: 25,
	})
	catalog.Append(entity.Product{
		ID:       "3",
		Name:     "4K Webcam",
		Category: "Electronics",
		Price:    decimal.RequireFromString("199.99"),
		Quantity: 3,
	})
	return catalog
}

func TestCatalogStore_CategoriesFirstSeenOrder(t *testing.T) {
	catalog := seededStore()

	categories := catalog.Categories()

	assert.Equal(t, []string{"All", "Electronics", "Clothing"}, categories)
}

func TestCatalogStore_CategoriesEmptyCatalog(t *testing.T) {
	catalog := NewCatalogStore()

	assert.Equal(t, []string{"All"}, catalog.Categories())
}

func TestCatalogStore_FilterByCategory(t *testing.T) {
	catalog := seededStore()

	tests := []struct {
		name     string
		category string
		expected int
	}{
		{name: "given All should return every product", category: CategoryAll, expected: 3},
		{name: "given empty category should return every product", category: "", expected: 3},
		{name: "given Electronics should return 2 products", category: "Electronics", expected: 2},
		{name: "given Clothing should return 1 product", category: "Clothing", expected: 1},
		{name: "given unknown category should return no products", category: "Books", expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := catalog.FilterByCategory(tt.category)
			assert.Len(t, products, tt.expected)
			for _, product := range products {
				if tt.category != CategoryAll && tt.category != "" {
					assert.Equal(t, tt.category, product.Category)
				}
			}
		})
	}
}

func TestCatalogStore_AppendAndFindById(t *testing.T) {
	catalog := seededStore()

	product, ok := catalog.FindById("2")
	require.True(t, ok)
	assert.Equal(t, "Organic Cotton T-Shirt", product.Name)

	_, ok = catalog.FindById("missing")
	assert.False(t, ok)
}

func TestCatalogStore_ProductsPreserveInsertionOrder(t *testing.T) {
	catalog := seededStore()

	products := catalog.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[1].ID)
	assert.Equal(t, "3", products[2].ID)
}
