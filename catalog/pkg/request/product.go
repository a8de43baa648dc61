package request

import (
	"github.com/shopspring/decimal"
)

type AddProduct struct {
	Name          string          `validate:"required" json:"name"`
	Category      string          `validate:"required" json:"category"`
	Description   string          `validate:"required" json:"description"`
	Specification string          `validate:"required" json:"specification"`
	Image         string          `validate:"required" json:"image"`
	Price         decimal.Decimal `validate:"gt=0"     json:"price"`
	Quantity      int             `validate:"gte=0"    json:"quantity"`
	Rating        float64         `json:"rating"`
}
