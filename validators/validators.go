package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"storefront/models"
)

const (
	maxFieldLen   = 200
	maxAddressLen = 500
)

func ValidateString(field, val string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(val)
	if length < minLen || length > maxLen {
		return fmt.Errorf("%s must be between %d and %d characters", field, minLen, maxLen)
	}
	return nil
}

func ValidateRequired(field, val string, maxLen int) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return ValidateString(field, val, 1, maxLen)
}

// NormalizeCheckout trims surrounding whitespace from every field and puts it
// in NFC form, so length limits count what the shopper sees.
func NormalizeCheckout(form *models.CheckoutForm) {
	for _, f := range []*string{
		&form.Name, &form.Phone, &form.Address, &form.PostalCode,
		&form.ProductName, &form.Price, &form.Category,
	} {
		*f = norm.NFC.String(strings.TrimSpace(*f))
	}
}

// ValidateCheckout only checks presence and size, like the form's required
// attributes. Product fields may be blank when the card itself was incomplete.
func ValidateCheckout(form *models.CheckoutForm) error {
	if err := ValidateRequired("name", form.Name, maxFieldLen); err != nil {
		return err
	}
	if err := ValidateRequired("phone", form.Phone, maxFieldLen); err != nil {
		return err
	}
	if err := ValidateRequired("address", form.Address, maxAddressLen); err != nil {
		return err
	}
	if err := ValidateRequired("postal_code", form.PostalCode, maxFieldLen); err != nil {
		return err
	}
	for _, f := range []struct{ name, val string }{
		{"model_name", form.ProductName},
		{"price", form.Price},
		{"category", form.Category},
	} {
		if err := ValidateString(f.name, f.val, 0, maxFieldLen); err != nil {
			return err
		}
	}
	return nil
}
