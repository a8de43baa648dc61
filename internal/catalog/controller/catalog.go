package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/emporium/storefront/catalog/pkg/request"
	"github.com/emporium/storefront/internal/catalog/otel"
	"github.com/emporium/storefront/internal/catalog/service"
	"github.com/emporium/storefront/internal/catalog/store"
	inErrors "github.com/emporium/storefront/internal/errors"
	inHttp "github.com/emporium/storefront/internal/http"
	"github.com/emporium/storefront/internal/log"
	inOtel "github.com/emporium/storefront/internal/otel"
)

type CatalogController struct {
	service *service.CatalogService
}

func AttachCatalogController(router *mux.Router, service *service.CatalogService) {
	controller := CatalogController{service: service}

	productRouter := router.PathPrefix("/products").Subrouter()
	productRouter.HandleFunc("", controller.GetProducts).Methods(http.MethodGet)
	productRouter.HandleFunc("", controller.AddProduct).Methods(http.MethodPost)
	productRouter.HandleFunc("/categories", controller.GetCategories).Methods(http.MethodGet)
	productRouter.HandleFunc("/{productId}", controller.FindProductById).Methods(http.MethodGet)
}

func (ctrl CatalogController) GetProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogController GetProducts").
		Logger()

	category := r.URL.Query().Get("category")
	if category == "" {
		category = store.CategoryAll
	}

	logger = logger.With().
		Str(log.KEY_PROCESS, "finding products").
		Str(log.KEY_CATEGORY, category).
		Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	products, err := ctrl.service.FindProducts(c, category)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found products")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully found products",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}

func (ctrl CatalogController) GetCategories(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogController GetCategories").
		Str(log.KEY_PROCESS, "finding categories").
		Logger()

	logger.Info().Msg("finding categories")
	c = logger.WithContext(c)
	categories, err := ctrl.service.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found categories")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully found categories",
		"data": map[string]interface{}{
			"categories": categories,
		},
	})
}

func (ctrl CatalogController) FindProductById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProductById")
	defer span.End()

	productId := mux.Vars(r)["productId"]

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogController FindProductById").
		Str(log.KEY_PRODUCT_ID, productId).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "finding product by id").Logger()
	logger.Info().Msg("finding product by id")
	c = logger.WithContext(c)
	product, err := ctrl.service.FindProductById(c, productId)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%s with error=%w", productId, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found product by id")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully found product",
		"data": map[string]interface{}{
			"product": product,
		},
	})
}

func (ctrl CatalogController) AddProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController AddProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogController AddProduct").
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	reqBody := request.AddProduct{}
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

	logger = logger.With().Str(log.KEY_PROCESS, "adding product").Logger()
	logger.Info().Msg("adding product")
	c = logger.WithContext(c)
	product, err := ctrl.service.AddProduct(c, reqBody)
	if err != nil {
		var validationErr *inErrors.ValidationError
		if errors.As(err, &validationErr) {
			logger.Info().Err(err).Msg(err.Error())
			inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusBadRequest,
				"message":    validationErr.Error(),
				"errors":     validationErr.Fields,
			})
			return
		}
		err = fmt.Errorf("failed adding product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("added product")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "successfully added product",
		"data": map[string]interface{}{
			"product": product,
		},
	})
}
