package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/emporium/storefront/internal/catalog/otel"
	"github.com/emporium/storefront/internal/entity"
	"github.com/emporium/storefront/internal/log"
)

func defaultProducts() []entity.Product {
	return []entity.Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Category:      "Electronics",
			Description:   "High-quality wireless headphones with noise cancellation and 30-hour battery life",
			Specification: "Bluetooth 5.0, 40mm drivers, 20Hz-20kHz frequency response",
			Image:         "/wireless-headphones-premium-audio.jpg",
			Price:         decimal.RequireFromString("129.99"),
			Quantity:      8,
			Rating:        5,
		},
		{
			ID:            "2",
			Name:          "Organic Cotton T-Shirt",
			Category:      "Clothing",
			Description:   "Comfortable and eco-friendly organic cotton t-shirt for everyday wear",
			Specification: "100% organic cotton, machine washable, available in multiple colors",
			Image:         "/organic-cotton-t-shirt.jpg",
			Price:         decimal.RequireFromString("34.99"),
			Quantity:      25,
			Rating:        4,
		},
		{
			ID:            "3",
			Name:          "4K Webcam",
			Category:      "Electronics",
			Description:   "Ultra HD webcam perfect for streaming and video conferencing",
			Specification: "4K UHD 2160p, Auto-focus, Built-in microphone, USB 3.0",
			Image:         "/4k-webcam-professional.jpg",
			Price:         decimal.RequireFromString("199.99"),
			Quantity:      3,
			Rating:        4,
		},
	}
}

// SeedDefaults loads the default product listing into an empty catalog.
func (svc CatalogService) SeedDefaults(c context.Context) {
	c, span := otel.Tracer.Start(c, "CatalogService SeedDefaults")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CatalogService SeedDefaults").
		Str(log.KEY_PROCESS, "seeding default products").
		Logger()

	if svc.store.Len() > 0 {
		logger.Info().Msg("catalog is not empty, skipping seed")
		return
	}

	logger.Info().Msg("seeding default products")
	for _, product := range defaultProducts() {
		svc.store.Append(product)
	}
	logger.Info().Msgf("seeded %d default products", svc.store.Len())
}
