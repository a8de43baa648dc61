package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/emporium/storefront/cart/pkg/request"
	"github.com/emporium/storefront/internal/cart/otel"
	"github.com/emporium/storefront/internal/cart/service"
	inErrors "github.com/emporium/storefront/internal/errors"
	inHttp "github.com/emporium/storefront/internal/http"
	"github.com/emporium/storefront/internal/log"
	inOtel "github.com/emporium/storefront/internal/otel"
)

type CartController struct {
	service  *service.CartService
	validate *validator.Validate
}

func AttachCartController(router *mux.Router, service *service.CartService) {
	controller := CartController{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	cartRouter := router.PathPrefix("/carts").Subrouter()
	cartRouter.HandleFunc("", controller.GetCart).Methods(http.MethodGet)
	cartRouter.HandleFunc("", controller.ClearCart).Methods(http.MethodDelete)
	cartRouter.HandleFunc("/items", controller.AddToCart).Methods(http.MethodPost)
	cartRouter.HandleFunc("/items/{itemId}", controller.UpdateQuantity).Methods(http.MethodPut)
	cartRouter.HandleFunc("/items/{itemId}", controller.RemoveFromCart).Methods(http.MethodDelete)
}

func (ctrl CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController GetCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartController GetCart").
		Str(log.KEY_PROCESS, "getting cart").
		Logger()

	logger.Info().Msg("getting cart")
	c = logger.WithContext(c)
	cart, err := ctrl.service.GetCart(c)
	if err != nil {
		err = fmt.Errorf("failed getting cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("got cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully got cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (ctrl CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddToCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartController AddToCart").
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	reqBody := request.AddCartItem{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KEY_PROCESS, "validating request body").Logger()
	logger.Trace().Msg("validating request body")
	if err := ctrl.validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Trace().Msg("validated request body")

	logger = logger.With().
		Str(log.KEY_PROCESS, "adding product to cart").
		Str(log.KEY_PRODUCT_ID, reqBody.ProductId).
		Int(log.KEY_QUANTITY, reqBody.Quantity).
		Logger()
	logger.Info().Msg("adding product to cart")
	c = logger.WithContext(c)
	cart, err := ctrl.service.AddToCart(c, reqBody)
	if err != nil {
		if errors.Is(err, inErrors.ErrProductNotFound) {
			logger.Info().Err(err).Msg(err.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusNotFound,
				"message":    err.Error(),
			})
			return
		}
		if errors.Is(err, inErrors.ErrOutOfStock) {
			logger.Info().Err(err).Msg(err.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusConflict,
				"message":    err.Error(),
			})
			return
		}
		err = fmt.Errorf("failed adding product to cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("added product to cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully added product to cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (ctrl CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController UpdateQuantity")
	defer span.End()

	itemId := mux.Vars(r)["itemId"]

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartController UpdateQuantity").
		Str(log.KEY_CART_ITEM_ID, itemId).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	reqBody := request.UpdateCartItem{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		// Unparseable quantities are coerced to 1, matching the cart page's
		// quantity input behavior, instead of failing the request.
		logger.Info().Err(err).Msg("failed decoding request body, coercing quantity to 1")
		reqBody.Quantity = 1
	}
	logger.Trace().Msg("decoded request body")

	logger = logger.With().
		Str(log.KEY_PROCESS, "updating cart item quantity").
		Int(log.KEY_QUANTITY, reqBody.Quantity).
		Logger()
	logger.Info().Msg("updating cart item quantity")
	c = logger.WithContext(c)
	cart, err := ctrl.service.UpdateQuantity(c, itemId, reqBody.Quantity)
	if err != nil {
		err = fmt.Errorf("failed updating cart item quantity with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("updated cart item quantity")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully updated cart item quantity",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (ctrl CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController RemoveFromCart")
	defer span.End()

	itemId := mux.Vars(r)["itemId"]

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartController RemoveFromCart").
		Str(log.KEY_CART_ITEM_ID, itemId).
		Str(log.KEY_PROCESS, "removing cart item").
		Logger()

	logger.Info().Msg("removing cart item")
	c = logger.WithContext(c)
	cart, err := ctrl.service.RemoveFromCart(c, itemId)
	if err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("removed cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully removed cart item",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (ctrl CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartController ClearCart").
		Str(log.KEY_PROCESS, "clearing cart").
		Logger()

	logger.Info().Msg("clearing cart")
	c = logger.WithContext(c)
	cart, err := ctrl.service.ClearCart(c)
	if err != nil {
		err = fmt.Errorf("failed clearing cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("cleared cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully cleared cart",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}
