package constants

const (
	APP_STOREFRONT      = "storefront"
	APP_CATALOG_SERVICE = "catalog-service"
	APP_CART_SERVICE    = "cart-service"
)
