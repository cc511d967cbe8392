package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func validForm() models.CheckoutForm {
	return models.CheckoutForm{
		Name:        "Anu",
		Phone:       "98765 43210",
		Address:     "12 MG Road",
		PostalCode:  "682001",
		ProductName: "Posh One",
		Price:       "$240",
		Category:    "Performance",
	}
}

func TestValidateCheckout(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CheckoutForm)
		wantErr string
	}{
		{name: "valid", mutate: func(*models.CheckoutForm) {}},
		{name: "missing name", mutate: func(f *models.CheckoutForm) { f.Name = "  " }, wantErr: "name is required"},
		{name: "missing phone", mutate: func(f *models.CheckoutForm) { f.Phone = "" }, wantErr: "phone is required"},
		{name: "missing address", mutate: func(f *models.CheckoutForm) { f.Address = "" }, wantErr: "address is required"},
		{name: "missing postal code", mutate: func(f *models.CheckoutForm) { f.PostalCode = "" }, wantErr: "postal_code is required"},
		{name: "long address", mutate: func(f *models.CheckoutForm) { f.Address = strings.Repeat("a", 501) }, wantErr: "address must be between"},
		{name: "blank product", mutate: func(f *models.CheckoutForm) { f.ProductName, f.Price, f.Category = "", "", "" }},
		{name: "huge category", mutate: func(f *models.CheckoutForm) { f.Category = strings.Repeat("x", 201) }, wantErr: "category must be between"},
		{name: "several long product fields", mutate: func(f *models.CheckoutForm) {
			f.ProductName, f.Price, f.Category = strings.Repeat("x", 201), strings.Repeat("x", 201), strings.Repeat("x", 201)
		}, wantErr: "model_name must be between"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			err := ValidateCheckout(&form)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeCheckout(t *testing.T) {
	form := models.CheckoutForm{Name: "  Anu ", PostalCode: "\t682001\n"}
	NormalizeCheckout(&form)
	assert.Equal(t, "Anu", form.Name)
	assert.Equal(t, "682001", form.PostalCode)
}

func TestValidateCheckoutReportsFirstLongField(t *testing.T) {
	form := validForm()
	form.Price = strings.Repeat("9", 201)
	form.Category = strings.Repeat("x", 201)
	for range 20 {
		err := ValidateCheckout(&form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price must be between")
	}
}

func TestNormalizeCheckoutComposes(t *testing.T) {
	form := models.CheckoutForm{Name: "Jose\u0301"}
	NormalizeCheckout(&form)
	assert.Equal(t, "Jos\u00e9", form.Name)
	assert.NoError(t, ValidateString("name", form.Name, 1, 4))
}

func TestValidateStringCountsRunes(t *testing.T) {
	assert.NoError(t, ValidateString("name", "Ñandú", 1, 5))
	assert.Error(t, ValidateString("name", "Ñandús", 1, 5))
}
