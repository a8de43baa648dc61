package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/emporium/storefront/internal/entity"
)

// taxRate is the flat 10% tax applied to the cart subtotal. Fixed policy, not
// configurable.
var taxRate = decimal.RequireFromString("0.1")

// Tax computes the tax owed on the given subtotal.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxRate)
}

// CartStore holds the cart line items in insertion order, first-added first.
// It is the single source of truth for what is in the cart right now.
type CartStore struct {
	mu    sync.RWMutex
	items []entity.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{items: []entity.CartItem{}}
}

// Add merges quantity into the existing line for the product, or appends a new
// line. quantity is expected to be at least 1; clamping against available
// stock is the caller's concern.
func (s *CartStore) Add(product entity.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity += quantity
			return
		}
	}
	s.items = append(s.items, entity.CartItem{
		ID:       product.ID,
		Product:  product,
		Quantity: quantity,
	})
}

// UpdateQuantity sets the line's quantity to max(1, quantity). It never
// removes the line; removal is only done through Remove. Unknown ids are a
// no-op.
func (s *CartStore) UpdateQuantity(itemId string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.items {
		if s.items[i].ID == itemId {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line with the matching id. Removing an absent id is a
// no-op, so re-clicking remove on an already-removed line cannot fail.
func (s *CartStore) Remove(itemId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == itemId {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []entity.CartItem{}
}

func (s *CartStore) Items() []entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entity.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Subtotal sums price times quantity across all lines, using each line's
// product snapshot.
func (s *CartStore) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

func (s *CartStore) Total() decimal.Decimal {
	subtotal := s.Subtotal()
	return subtotal.Add(Tax(subtotal))
}

// ItemCount is the number of distinct lines, not the summed quantities. The
// cart badge renders this count.
func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
