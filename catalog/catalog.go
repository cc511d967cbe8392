// Package catalog holds the product lists compiled into the binary. They are
// what shoppers see whenever the products table cannot be read or is empty.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"storefront/models"
)

//go:embed fallback.yaml
var fallbackYAML []byte

type entry struct {
	ID            int64    `yaml:"id"`
	ModelName     string   `yaml:"model_name"`
	Price         string   `yaml:"price"`
	Category      string   `yaml:"category"`
	ImageURL      string   `yaml:"image_url"`
	Description   string   `yaml:"description"`
	Color         string   `yaml:"color"`
	StarRating    *float64 `yaml:"star_rating"`
	StockQuantity *int     `yaml:"stock_quantity"`
	Sizes         []string `yaml:"sizes_available"`
}

func (e entry) product() models.Product {
	return models.Product{
		ID:             models.IntID(e.ID),
		ModelName:      e.ModelName,
		Price:          models.TextPrice(e.Price),
		Category:       e.Category,
		ImageURL:       e.ImageURL,
		Description:    e.Description,
		Color:          e.Color,
		StarRating:     e.StarRating,
		StockQuantity:  e.StockQuantity,
		SizesAvailable: e.Sizes,
	}
}

type document struct {
	Featured    []entry             `yaml:"featured"`
	Shop        []entry             `yaml:"shop"`
	Collections []models.Collection `yaml:"collections"`
}

var fallback = mustParse(fallbackYAML)

func mustParse(data []byte) document {
	doc, err := parse(data)
	if err != nil {
		panic(err)
	}
	return doc
}

func parse(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse fallback catalog: %w", err)
	}
	if len(doc.Featured) == 0 || len(doc.Shop) == 0 {
		return document{}, fmt.Errorf("parse fallback catalog: featured and shop lists must not be empty")
	}
	return doc, nil
}

func products(entries []entry) []models.Product {
	out := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		p := e.product()
		// Pointers and slices are copied so callers can never reach the shared document.
		if p.StarRating != nil {
			v := *p.StarRating
			p.StarRating = &v
		}
		if p.StockQuantity != nil {
			v := *p.StockQuantity
			p.StockQuantity = &v
		}
		p.SizesAvailable = slices.Clone(p.SizesAvailable)
		out = append(out, p)
	}
	return out
}

// Featured returns the landing page shoes, in display order.
func Featured() []models.Product {
	return products(fallback.Featured)
}

// Shop returns the product listing used by the shop page.
func Shop() []models.Product {
	return products(fallback.Shop)
}

func Collections() []models.Collection {
	return slices.Clone(fallback.Collections)
}
