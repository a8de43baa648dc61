package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/emporium/storefront/catalog/pkg/request"
	"github.com/emporium/storefront/internal/catalog/otel"
	"github.com/emporium/storefront/internal/catalog/store"
	"github.com/emporium/storefront/internal/entity"
	inErrors "github.com/emporium/storefront/internal/errors"
	"github.com/emporium/storefront/internal/log"
	inOtel "github.com/emporium/storefront/internal/otel"
	"github.com/emporium/storefront/internal/validate"
)

type CatalogService struct {
	store    *store.CatalogStore
	validate *validator.Validate
}

func NewCatalogService(catalogStore *store.CatalogStore) CatalogService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(validate.DecimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return CatalogService{store: catalogStore, validate: v}
}

func (svc CatalogService) AddProduct(
	c context.Context,
	param request.AddProduct,
) (entity.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService AddProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogService AddProduct").
		Logger()

	param.Name = strings.TrimSpace(param.Name)
	param.Category = strings.TrimSpace(param.Category)
	param.Description = strings.TrimSpace(param.Description)
	param.Specification = strings.TrimSpace(param.Specification)
	param.Image = strings.TrimSpace(param.Image)

	logger = logger.With().Str(log.KEY_PROCESS, "validating product").Logger()
	logger.Trace().Msg("validating product")
	span.AddEvent("validating product")
	if err := svc.validate.StructCtx(c, param); err != nil {
		validationErr := inErrors.NewValidationError()
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			err = fmt.Errorf("failed validating product with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return entity.Product{}, err
		}
		for _, fieldError := range fieldErrors {
			validationErr.Add(fieldError.Field(), messageFor(fieldError.Field()))
		}
		inOtel.RecordError(validationErr, span)
		logger.Info().Err(validationErr).Msg(validationErr.Error())
		return entity.Product{}, validationErr
	}
	span.AddEvent("validated product")
	logger.Info().Msg("validated product")

	// Out-of-range ratings are clamped into [1,5] rather than rejected.
	rating := math.Min(5, math.Max(1, param.Rating))

	product := entity.Product{
		ID:            uuid.NewString(),
		Name:          param.Name,
		Category:      param.Category,
		Description:   param.Description,
		Specification: param.Specification,
		Image:         param.Image,
		Price:         param.Price,
		Quantity:      param.Quantity,
		Rating:        rating,
	}

	logger = logger.With().
		Str(log.KEY_PROCESS, "appending product to catalog").
		Str(log.KEY_PRODUCT_ID, product.ID).
		Logger()
	logger.Info().Msg("appending product to catalog")
	span.AddEvent("appending product to catalog")
	svc.store.Append(product)
	logger = logger.With().Any(log.KEY_PRODUCT, product).Logger()
	logger.Info().Msg("appended product to catalog")
	span.AddEvent("appended product to catalog")

	return product, nil
}

func (svc CatalogService) FindProducts(
	c context.Context,
	category string,
) ([]entity.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogService FindProducts").
		Str(log.KEY_CATEGORY, category).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "filtering products by category").Logger()
	logger.Trace().Msg("filtering products by category")
	products := svc.store.FilterByCategory(category)
	logger = logger.With().Int(log.KEY_PRODUCT_COUNT, len(products)).Logger()
	logger.Info().Msgf("found %d products", len(products))

	return products, nil
}

func (svc CatalogService) FindProductById(
	c context.Context,
	productId string,
) (entity.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogService FindProductById").
		Str(log.KEY_PRODUCT_ID, productId).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "finding product by id").Logger()
	logger.Trace().Msg("finding product by id")
	product, ok := svc.store.FindById(productId)
	if !ok {
		err := fmt.Errorf("failed finding productId=%s with error=%w", productId, inErrors.ErrProductNotFound)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return entity.Product{}, err
	}
	logger.Info().Msg("found product by id")

	return product, nil
}

func (svc CatalogService) FindCategories(c context.Context) ([]string, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogService FindCategories").
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "listing categories").Logger()
	logger.Trace().Msg("listing categories")
	categories := svc.store.Categories()
	logger.Info().Msgf("found %d categories", len(categories))

	return categories, nil
}

func messageFor(field string) string {
	switch field {
	case "name":
		return "Product name is required"
	case "category":
		return "Category is required"
	case "description":
		return "Description is required"
	case "specification":
		return "Specification is required"
	case "price":
		return "Price must be greater than 0"
	case "quantity":
		return "Quantity cannot be negative"
	case "image":
		return "Image URL is required"
	}
	return fmt.Sprintf("%s is invalid", field)
}
