package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emporium/storefront/cart/pkg/request"
	"github.com/emporium/storefront/cart/pkg/response"
	"github.com/emporium/storefront/internal/cart/otel"
	"github.com/emporium/storefront/internal/cart/store"
	catalogService "github.com/emporium/storefront/internal/catalog/service"
	inErrors "github.com/emporium/storefront/internal/errors"
	"github.com/emporium/storefront/internal/log"
	inOtel "github.com/emporium/storefront/internal/otel"
)

type CartService struct {
	cart    *store.CartStore
	catalog *catalogService.CatalogService
}

func NewCartService(
	cart *store.CartStore,
	catalog *catalogService.CatalogService,
) CartService {
	return CartService{cart: cart, catalog: catalog}
}

func (svc CartService) AddToCart(
	c context.Context,
	param request.AddCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddToCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService AddToCart").
		Str(log.KEY_PRODUCT_ID, param.ProductId).
		Int(log.KEY_QUANTITY, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "finding product in catalog").Logger()
	logger.Trace().Msg("finding product in catalog")
	c = logger.WithContext(c)
	product, err := svc.catalog.FindProductById(c, param.ProductId)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%s with error=%w", param.ProductId, err)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("found product in catalog")

	if product.Quantity <= 0 {
		err = fmt.Errorf(
			"failed adding productId=%s to cart with error=%w",
			param.ProductId,
			inErrors.ErrOutOfStock,
		)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}

	quantity := param.Quantity
	if quantity < 1 {
		quantity = 1
	}
	// Clamp the requested quantity against available stock before the store
	// sees it; the store itself does not enforce stock.
	if quantity > product.Quantity {
		logger.Info().
			Msgf("clamping requested quantity=%d to available stock=%d", quantity, product.Quantity)
		quantity = product.Quantity
	}

	logger = logger.With().Str(log.KEY_PROCESS, "adding product to cart").Logger()
	logger.Info().Msg("adding product to cart")
	span.AddEvent("adding product to cart")
	svc.cart.Add(product, quantity)
	logger.Info().Msg("added product to cart")
	span.AddEvent("added product to cart")

	return svc.summary(), nil
}

func (svc CartService) UpdateQuantity(
	c context.Context,
	itemId string,
	quantity int,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService UpdateQuantity").
		Str(log.KEY_CART_ITEM_ID, itemId).
		Int(log.KEY_QUANTITY, quantity).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "updating cart item quantity").Logger()
	logger.Info().Msg("updating cart item quantity")
	span.AddEvent("updating cart item quantity")
	svc.cart.UpdateQuantity(itemId, quantity)
	logger.Info().Msg("updated cart item quantity")
	span.AddEvent("updated cart item quantity")

	return svc.summary(), nil
}

func (svc CartService) RemoveFromCart(
	c context.Context,
	itemId string,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveFromCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService RemoveFromCart").
		Str(log.KEY_CART_ITEM_ID, itemId).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "removing cart item").Logger()
	logger.Info().Msg("removing cart item")
	span.AddEvent("removing cart item")
	svc.cart.Remove(itemId)
	logger.Info().Msg("removed cart item")
	span.AddEvent("removed cart item")

	return svc.summary(), nil
}

func (svc CartService) ClearCart(c context.Context) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService ClearCart").
		Str(log.KEY_PROCESS, "clearing cart").
		Logger()

	logger.Info().Msg("clearing cart")
	span.AddEvent("clearing cart")
	svc.cart.Clear()
	logger.Info().Msg("cleared cart")
	span.AddEvent("cleared cart")

	return svc.summary(), nil
}

func (svc CartService) GetCart(c context.Context) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService GetCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService GetCart").
		Str(log.KEY_PROCESS, "getting cart").
		Logger()

	summary := svc.summary()
	logger.Info().
		Int(log.KEY_ITEM_COUNT, summary.ItemCount).
		Str(log.KEY_SUBTOTAL, summary.Subtotal.String()).
		Str(log.KEY_TOTAL, summary.Total.String()).
		Msg("got cart")

	return summary, nil
}

// summary recomputes the derived totals from current cart state. Derived
// values are never cached; cart sizes stay small enough that recomputation on
// every read is fine.
func (svc CartService) summary() response.Cart {
	subtotal := svc.cart.Subtotal()
	tax := store.Tax(subtotal)
	return response.Cart{
		CartItems: svc.cart.Items(),
		ItemCount: svc.cart.ItemCount(),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
	}
}
