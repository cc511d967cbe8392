// Package handoff turns a checkout form into a pre-filled WhatsApp message
// link. Nothing is sent from the server: the shopper's device opens the link
// and nobody learns whether the message was delivered.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/models"
)

const greeting = "Hello POSH, I would like to order:"

// Message renders the order as newline separated plain text.
func Message(form models.CheckoutForm) string {
	var b strings.Builder
	b.WriteString(greeting)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Product: %s\n", form.ProductName)
	fmt.Fprintf(&b, "Price: %s\n", form.Price)
	fmt.Fprintf(&b, "Category: %s\n", form.Category)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Name: %s\n", form.Name)
	fmt.Fprintf(&b, "Phone: %s\n", form.Phone)
	fmt.Fprintf(&b, "Address: %s\n", form.Address)
	fmt.Fprintf(&b, "Postal code: %s", form.PostalCode)
	return b.String()
}

// Escape percent-encodes text for a query value the way browsers'
// encodeURIComponent does, so spaces become %20 rather than '+'.
func Escape(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Link builds base + number + "?text=" + the escaped message. An empty number
// lets the messaging app ask the shopper to pick a contact.
func Link(baseURL, number, message string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + number + "?text=" + Escape(message)
}

type Builder struct {
	BaseURL string
	Number  string
}

func (b Builder) Link(form models.CheckoutForm) string {
	return Link(b.BaseURL, b.Number, Message(form))
}
