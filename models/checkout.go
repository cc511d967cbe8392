package models

// CheckoutForm is what the order modal posts: the buyer's contact fields and
// the product they picked.
type CheckoutForm struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`

	ProductName string `json:"model_name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

type Collection struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ImageURL string `json:"image_url" yaml:"image_url"`
}
