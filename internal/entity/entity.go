package entity

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price must be positive, Quantity is the stock
// still available for purchase and Rating is kept within [1,5].
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Specification string          `json:"specification"`
	Image         string          `json:"image"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Rating        float64         `json:"rating"`
}

// CartItem is one line in the cart. ID equals the referenced product's id,
// which keeps at most one line per product. Product is a snapshot taken when
// the line was created; later catalog price changes do not reprice it.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
