package log

const (
	KEY_APP_NAME       = "app"
	KEY_TAG            = "tag"
	KEY_PROCESS        = "process"
	KEY_CONFIG         = "config"
	KEY_REQUEST_ID     = "requestId"
	KEY_REQUEST        = "request"
	KEY_REQUEST_HOST   = "host"
	KEY_REQUEST_IP     = "requesterIP"
	KEY_REQUEST_METHOD = "requestMethod"
	KEY_REQUEST_URI    = "requestURI"
	KEY_REQUEST_URL    = "requestURL"
	KEY_HEADER         = "header"
	KEY_BODY           = "body"

	KEY_PRODUCT       = "product"
	KEY_PRODUCT_ID    = "productId"
	KEY_CATEGORY      = "category"
	KEY_CART_ITEM_ID  = "cartItemId"
	KEY_CART_ITEMS    = "cartItems"
	KEY_QUANTITY      = "quantity"
	KEY_SUBTOTAL      = "subtotal"
	KEY_TAX           = "tax"
	KEY_TOTAL         = "total"
	KEY_ITEM_COUNT    = "itemCount"
	KEY_PRODUCT_COUNT = "productCount"
)
