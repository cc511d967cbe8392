package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LowStockThreshold is the stock level under which a product is flagged as running out.
const LowStockThreshold = 5

// ID is a product identifier as the remote table returns it: either a JSON
// string or a JSON number. The original form is kept so the record can be
// written back out unchanged.
type ID struct {
	Value   string
	Numeric bool
}

func IntID(v int64) ID {
	return ID{Value: strconv.FormatInt(v, 10), Numeric: true}
}

func StringID(v string) ID {
	return ID{Value: v}
}

func (id ID) IsZero() bool {
	return id.Value == ""
}

func (id ID) String() string {
	return id.Value
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.Numeric {
		return []byte(id.Value), nil
	}
	return json.Marshal(id.Value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ID{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = StringID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id must be a string or a number: %w", err)
		}
		*id = ID{Value: n.String(), Numeric: true}
	}
	return nil
}

// Price is either a pre-formatted currency string ("$240") or a bare amount.
type Price struct {
	Text    string
	Amount  float64
	Numeric bool
}

func NumericPrice(amount float64) Price {
	return Price{Amount: amount, Numeric: true}
}

func TextPrice(text string) Price {
	return Price{Text: text}
}

func (p Price) IsZero() bool {
	return !p.Numeric && p.Text == ""
}

// String returns the price as stored, without any currency decoration.
func (p Price) String() string {
	if p.Numeric {
		return strconv.FormatFloat(p.Amount, 'f', -1, 64)
	}
	return p.Text
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return []byte("null"), nil
	}
	if p.Numeric {
		return []byte(p.String()), nil
	}
	return json.Marshal(p.Text)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = Price{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("price: %w", err)
		}
		*p = TextPrice(s)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("price must be a string or a number: %w", err)
		}
		*p = NumericPrice(f)
	}
	return nil
}

// Product is one row of the products table.
type Product struct {
	ID             ID       `json:"id"`
	ModelName      string   `json:"model_name"`
	Price          Price    `json:"price"`
	Category       string   `json:"category,omitempty"`
	ImageURL       string   `json:"image_url"`
	Description    string   `json:"description,omitempty"`
	Color          string   `json:"color,omitempty"`
	StarRating     *float64 `json:"star_rating,omitempty"`
	StockQuantity  *int     `json:"stock_quantity,omitempty"`
	SizesAvailable []string `json:"sizes_available,omitempty"`
}

// Missing lists the fields a card needs that the record does not carry.
func (p Product) Missing() []string {
	var missing []string
	if p.ID.IsZero() {
		missing = append(missing, "id")
	}
	if p.ModelName == "" {
		missing = append(missing, "model_name")
	}
	if p.Price.IsZero() {
		missing = append(missing, "price")
	}
	if p.ImageURL == "" {
		missing = append(missing, "image_url")
	}
	return missing
}

func (p Product) LowStock() bool {
	return p.StockQuantity != nil && *p.StockQuantity < LowStockThreshold
}
