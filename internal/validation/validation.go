// Package validation checks incoming product and order payloads. It fails on
// the first violation with a human-readable message so that clients receive a
// single actionable error rather than a field map.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/apierror"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	productNameRe  = regexp.MustCompile(`^[a-zA-Z0-9\s\-\_]+$`)
	customerNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Register decimal.Decimal as a numeric type so that tags like gt=0 work
	// without panicking ("Bad field type decimal.Decimal").
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("prodname", func(fl validator.FieldLevel) bool {
		return productNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("custname", func(fl validator.FieldLevel) bool {
		return customerNameRe.MatchString(fl.Field().String())
	})
	return v
}

// messages maps "Field.tag" of the first violation to the message the client
// sees. Every tag used in the DTOs must have an entry here.
var messages = map[string]string{
	"Name.min":              "Product name must be at least 2 characters",
	"Name.prodname":         "Product name contains invalid characters",
	"Unit.oneof":            "Invalid unit. Must be kg, litre, piece, grams, or ml",
	"Price.gt":              "Price must be positive",
	"Stock.min":             "Stock cannot be negative",
	"CustomerName.min":      "Customer name must be at least 2 characters",
	"CustomerName.custname": "Customer name contains invalid characters",
	"Items.min":             "At least one item is required",
	"ProductName.required":  "Product name is required for all items",
	"Quantity.gt":           "Quantity must be positive",
}

func firstViolation(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apierror.NewValidation("Invalid request data")
	}
	fe := verrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return apierror.NewValidation(msg)
	}
	return apierror.NewValidation("Invalid value for " + fe.Field())
}

// Product validates and normalises a product payload in place. Name is
// trimmed before the rules run.
func Product(req *dto.SaveProductRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Unit = strings.TrimSpace(req.Unit)
	return firstViolation(validate.Struct(req))
}

// Order validates and normalises an order payload in place. Customer and
// product names are trimmed before the rules run.
func Order(req *dto.CreateOrderRequest) error {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	for i := range req.Items {
		req.Items[i].ProductName = strings.TrimSpace(req.Items[i].ProductName)
	}
	return firstViolation(validate.Struct(req))
}
