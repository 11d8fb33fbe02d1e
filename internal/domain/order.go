package domain

import (
	"fmt"
	"strings"
)

const (
	// PaymentChannel tags orders and names the transaction gateway.
	PaymentChannel = "Cashea"
	// DefaultCountry is used when neither an address nor the customer
	// carries a country code.
	DefaultCountry = "VE"

	financialStatusPending = "pending"
	transactionKindSale    = "sale"
	transactionPending     = "pending"
)

// CommerceOrder is the Shopify order created for a confirmed down payment.
// It is never stored here; Shopify is the system of record.
type CommerceOrder struct {
	LineItems         []OrderLineItem    `json:"line_items"`
	Customer          OrderCustomer      `json:"customer"`
	BillingAddress    Address            `json:"billing_address"`
	ShippingAddress   Address            `json:"shipping_address"`
	FinancialStatus   string             `json:"financial_status"`
	FulfillmentStatus *string            `json:"fulfillment_status"`
	Note              string             `json:"note"`
	Tags              string             `json:"tags"`
	Transactions      []OrderTransaction `json:"transactions"`
}

type OrderLineItem struct {
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	SKU       string `json:"sku"`
	VariantID *int64 `json:"variant_id"`
}

type OrderCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type OrderTransaction struct {
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Amount  string `json:"amount"`
	Gateway string `json:"gateway"`
}

// PlatformOrder is the subset of Shopify's created order the relay reports
// back to the caller.
type PlatformOrder struct {
	ID                int64  `json:"id"`
	OrderNumber       int64  `json:"order_number"`
	Name              string `json:"name,omitempty"`
	TotalPrice        string `json:"total_price,omitempty"`
	AdminGraphQLAPIID string `json:"admin_graphql_api_id,omitempty"`
}

// ProviderConfirmation is Cashea's answer to the down-payment call. Body is
// the decoded JSON, or an empty object when Cashea sent nothing parseable.
type ProviderConfirmation struct {
	StatusCode int
	Body       any
	Raw        string
}

// Confirmed reports whether Cashea accepted the down payment.
func (p *ProviderConfirmation) Confirmed() bool {
	return p.StatusCode == 200 || p.StatusCode == 201
}

// BuildCommerceOrder derives the Shopify order from a validated request.
// Billing mirrors shipping unless the caller sent a separate billing
// address.
func BuildCommerceOrder(req *ConfirmationRequest) CommerceOrder {
	items := make([]OrderLineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		items = append(items, OrderLineItem{
			Title:     item.Title,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
			SKU:       item.SKU,
			VariantID: item.VariantID,
		})
	}

	customer := req.Customer
	shipping := defaultAddress(customer)
	if req.ShippingAddress != nil {
		shipping = *req.ShippingAddress
	}

	billing := shipping
	if req.BillingAddress != nil {
		billing = *req.BillingAddress
	}

	note := fmt.Sprintf("Orden creada desde Cashea. ID: %s", req.IDNumber)
	if extra := strings.TrimSpace(req.Note); extra != "" {
		note += "\n" + extra
	}

	return CommerceOrder{
		LineItems: items,
		Customer: OrderCustomer{
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     firstNonEmpty(req.Email, customer.Email),
			Phone:     firstNonEmpty(req.Phone, customer.Phone),
		},
		BillingAddress:  billing,
		ShippingAddress: shipping,
		FinancialStatus: financialStatusPending,
		Note:            note,
		Tags:            PaymentChannel,
		Transactions: []OrderTransaction{
			{
				Kind:    transactionKindSale,
				Status:  transactionPending,
				Amount:  req.Amount.String(),
				Gateway: PaymentChannel,
			},
		},
	}
}

func defaultAddress(c *Customer) Address {
	return Address{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address1:  c.Address1,
		Address2:  c.Address2,
		City:      c.City,
		Province:  c.Province,
		Country:   firstNonEmpty(c.Country, DefaultCountry),
		Zip:       c.Zip,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
