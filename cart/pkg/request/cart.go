package request

type AddCartItem struct {
	ProductId string `validate:"required" json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItem struct {
	Quantity int `json:"quantity"`
}
