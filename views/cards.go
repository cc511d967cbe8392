package views

import (
	"strconv"

	"storefront/models"
)

const (
	PlaceholderImage = "/static/placeholder.svg"
	untitled         = "Untitled"
	priceOnRequest   = "Price on request"
)

// Card is what one product tile needs. Missing record fields are replaced by
// placeholders so an incomplete row still renders.
type Card struct {
	ID          string
	Name        string
	Price       string
	Category    string
	ImageURL    string
	Description string
	Rating      string
	LowStock    bool
	StockLeft   int
	Sizes       []string
	Incomplete  bool
}

// DisplayPrice shows strings verbatim and bare amounts as dollars, with the
// amount exactly as stored. The card price is also posted with the order.
func DisplayPrice(p models.Price) string {
	switch {
	case p.Numeric:
		return "$" + p.String()
	case p.Text != "":
		return p.Text
	default:
		return priceOnRequest
	}
}

func NewCard(p models.Product, index int) Card {
	c := Card{
		ID:          p.ID.String(),
		Name:        p.ModelName,
		Price:       DisplayPrice(p.Price),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		LowStock:    p.LowStock(),
		Sizes:       p.SizesAvailable,
		Incomplete:  len(p.Missing()) > 0,
	}
	if c.ID == "" {
		c.ID = "item-" + strconv.Itoa(index)
	}
	if c.Name == "" {
		c.Name = untitled
	}
	if c.ImageURL == "" {
		c.ImageURL = PlaceholderImage
	}
	if p.StarRating != nil && *p.StarRating != 0 {
		c.Rating = strconv.FormatFloat(*p.StarRating, 'f', -1, 64)
	}
	if p.StockQuantity != nil {
		c.StockLeft = *p.StockQuantity
	}
	return c
}

func Cards(products []models.Product) []Card {
	cards := make([]Card, 0, len(products))
	for i, p := range products {
		cards = append(cards, NewCard(p, i))
	}
	return cards
}
