package order

import (
	"time"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

// Step is the customer's position in the order flow.
type Step string

const (
	StepConfiguring     Step = "CONFIGURING"
	StepCheckingOut     Step = "CHECKING_OUT"
	StepAwaitingPayment Step = "AWAITING_PAYMENT"
	StepConfirmed       Step = "CONFIRMED"
)

// CartLine is one window added to the order. UnitPrice is frozen at add
// time and never recomputed, so the invoice total always matches what the
// customer saw while configuring, even across price-list changes.
type CartLine struct {
	ID        string               `json:"id"`
	Config    catalog.WindowConfig `json:"config"`
	UnitPrice float64              `json:"unit_price"`
}

// ContactInfo is the checkout form. Every field is required.
type ContactInfo struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"delivery_address"`
}

// Order is the immutable record built at checkout.
type Order struct {
	OrderNumber     string     `json:"order_number"`
	OrderDate       string     `json:"order_date"`
	CustomerName    string     `json:"customer_name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	DeliveryAddress string     `json:"delivery_address"`
	Lines           []CartLine `json:"lines"`
	Subtotal        float64    `json:"subtotal"`
	VATAmount       float64    `json:"vat_amount"`
	TotalCost       float64    `json:"total_cost"`

	ProofURL    string     `json:"proof_url,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

// PaymentInstructions is the bank-transfer block printed on the invoice.
type PaymentInstructions struct {
	Holder  string `json:"holder"`
	IBAN    string `json:"iban"`
	Bank    string `json:"bank"`
	Concept string `json:"concept"`
}

func InstructionsFor(orderNumber string) PaymentInstructions {
	return PaymentInstructions{
		Holder:  "Ventanas Perfectas S.L.",
		IBAN:    "ES00 1234 5678 9012 3456 7890",
		Bank:    "Banco Ficticio S.A.",
		Concept: "Pedido " + orderNumber,
	}
}
