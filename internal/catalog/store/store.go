package store

import (
	"sync"

	"github.com/emporium/storefront/internal/entity"
)

// CategoryAll is the sentinel category meaning "no filter".
const CategoryAll = "All"

// CatalogStore holds the canonical product list in memory. Products are only
// ever appended, so insertion order is stable for the lifetime of the session.
type CatalogStore struct {
	mu       sync.RWMutex
	products []entity.Product
	index    map[string]int // product id -> position in products
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		products: []entity.Product{},
		index:    map[string]int{},
	}
}

// Append adds a product to the end of the catalog. The caller is responsible
// for validation and for assigning a unique id.
func (s *CatalogStore) Append(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index[product.ID] = len(s.products)
	s.products = append(s.products, product)
}

func (s *CatalogStore) FindById(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return entity.Product{}, false
	}
	return s.products[i], true
}

func (s *CatalogStore) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]entity.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Categories returns CategoryAll followed by the distinct categories in
// first-seen order across the product list.
func (s *CatalogStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := []string{CategoryAll}
	seen := map[string]struct{}{}
	for _, product := range s.products {
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		categories = append(categories, product.Category)
	}
	return categories
}

// FilterByCategory returns the products whose category exactly equals the
// given value. CategoryAll and the empty string return every product.
func (s *CatalogStore) FilterByCategory(category string) []entity.Product {
	if category == CategoryAll || category == "" {
		return s.Products()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := []entity.Product{}
	for _, product := range s.products {
		if product.Category == category {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
