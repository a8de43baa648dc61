package response

import (
	"github.com/shopspring/decimal"

	"github.com/emporium/storefront/internal/entity"
)

type Cart struct {
	CartItems []entity.CartItem `json:"cart_items"`
	ItemCount int               `json:"item_count"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	Tax       decimal.Decimal   `json:"tax"`
	Total     decimal.Decimal   `json:"total"`
}
