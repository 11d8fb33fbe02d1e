package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// ConfirmationRequest is the body Cashea's checkout posts once a down
// payment is approved. Field order matters: validation reports the first
// failing field, and the checks run id, amount, items, customer.
type ConfirmationRequest struct {
	IDNumber        ProviderOrderID `json:"idNumber" validate:"required"`
	Amount          Amount          `json:"amount" validate:"gt=0"`
	LineItems       []LineItem      `json:"lineItems" validate:"required,min=1"`
	Customer        *Customer       `json:"customer" validate:"required"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
	BillingAddress  *Address        `json:"billingAddress,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Note            string          `json:"note,omitempty"`
}

type Customer struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country,omitempty"`
	Zip       string `json:"zip,omitempty"`
}

type LineItem struct {
	Title     string `json:"title"`
	Price     Amount `json:"price"`
	Quantity  int    `json:"quantity"`
	SKU       string `json:"sku,omitempty"`
	VariantID *int64 `json:"variant_id,omitempty"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone,omitempty"`
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if a, ok := field.Interface().(Amount); ok {
			return a.InexactFloat64()
		}
		return nil
	}, Amount{})

	return v
}

// Validate checks the request before anything leaves the process. The
// returned *DomainError carries the first failing rule as its code and
// every violation in Fields.
func (r *ConfirmationRequest) Validate() error {
	r.normalize()

	err := requestValidator.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fields := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldViolation{
			Field: trimRoot(fe.Namespace()),
			Rule:  fe.Tag(),
		})
	}

	return NewValidationError(codeFor(verrs[0]), fields)
}

func (r *ConfirmationRequest) normalize() {
	r.IDNumber = ProviderOrderID(strings.TrimSpace(string(r.IDNumber)))
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Customer != nil {
		r.Customer.FirstName = strings.TrimSpace(r.Customer.FirstName)
		r.Customer.LastName = strings.TrimSpace(r.Customer.LastName)
	}
}

func codeFor(fe validator.FieldError) string {
	switch strings.Split(trimRoot(fe.StructNamespace()), ".")[0] {
	case "IDNumber":
		return ErrCodeMissingOrderID
	case "Amount":
		return ErrCodeInvalidAmount
	case "LineItems":
		return ErrCodeMissingItems
	default:
		return ErrCodeMissingCustomerData
	}
}

func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// CustomerName is used for log lines only.
func (r *ConfirmationRequest) CustomerName() string {
	if r.Customer == nil {
		return ""
	}
	return r.Customer.FirstName + " " + r.Customer.LastName
}
