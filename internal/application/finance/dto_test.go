package finance

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestCreateCategoryRequest_DescriptionLimit(t *testing.T) {
	v := bindingValidator()

	// the binding limit must match the 500-character domain limit
	ok := CreateCategoryRequest{
		Name:            "Operasional",
		TransactionType: "expense",
		Description:     strings.Repeat("a", 500),
	}
	assert.NoError(t, v.Struct(ok))

	tooLong := ok
	tooLong.Description = strings.Repeat("a", 501)
	assert.Error(t, v.Struct(tooLong))
}

func TestUpdateTransactionRequest_PaymentMethodLimit(t *testing.T) {
	v := bindingValidator()

	method := strings.Repeat("a", 100)
	assert.NoError(t, v.Struct(UpdateTransactionRequest{PaymentMethod: &method}))

	long := strings.Repeat("a", 101)
	assert.Error(t, v.Struct(UpdateTransactionRequest{PaymentMethod: &long}))
}
