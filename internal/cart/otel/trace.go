package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/emporium/storefront/internal/constants"
)

var Tracer = otel.Tracer(constants.APP_CART_SERVICE)
