package order

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/pricing"
)

// GuardError marks a transition the current step does not allow, or one
// whose precondition failed. It is always recoverable: the lifecycle is
// left exactly as it was.
type GuardError struct {
	Reason string
}

func (e *GuardError) Error() string { return e.Reason }

func guardf(format string, args ...any) error {
	return &GuardError{Reason: fmt.Sprintf(format, args...)}
}

// IsGuard reports whether err is a guard violation.
func IsGuard(err error) bool {
	_, ok := err.(*GuardError)
	return ok
}

// Lifecycle is the per-session order flow: a draft configuration and a cart
// while configuring, then an immutable order once checkout completes. One
// logical actor drives all transitions, so there is no internal locking;
// the session registry serializes access.
type Lifecycle struct {
	step    Step
	draft   catalog.WindowConfig
	cart    []CartLine
	order   *Order
	tables  pricing.Tables
	vatRate float64

	newLineID      func() string
	newOrderNumber func() string
	now            func() time.Time
}

func NewLifecycle(tables pricing.Tables, vatRate float64) *Lifecycle {
	return &Lifecycle{
		step:           StepConfiguring,
		draft:          catalog.DefaultConfig(),
		tables:         tables,
		vatRate:        vatRate,
		newLineID:      uuid.NewString,
		newOrderNumber: newOrderNumber,
		now:            time.Now,
	}
}

// newOrderNumber mirrors the historical VP-series numbering: a 4-digit
// random suffix. Collisions across sessions are accepted; switch to a
// sequential scheme if order numbers ever become a lookup key.
func newOrderNumber() string {
	return fmt.Sprintf("VP-%04d", 1000+rand.Intn(9000))
}

func (l *Lifecycle) Step() Step { return l.step }

func (l *Lifecycle) Draft() catalog.WindowConfig { return l.draft }

// Cart returns a copy of the cart lines.
func (l *Lifecycle) Cart() []CartLine {
	lines := make([]CartLine, len(l.cart))
	copy(lines, l.cart)
	return lines
}

// Order returns the frozen order, or nil before checkout.
func (l *Lifecycle) Order() *Order { return l.order }

// CartTotal is the VAT-inclusive sum of the frozen line prices.
func (l *Lifecycle) CartTotal() float64 {
	var total float64
	for _, line := range l.cart {
		total += line.UnitPrice
	}
	return total
}

// DraftQuote prices the current draft configuration.
func (l *Lifecycle) DraftQuote() float64 {
	return pricing.Quote(l.draft, l.tables, l.vatRate)
}

// UpdateDraft replaces the draft configuration.
func (l *Lifecycle) UpdateDraft(cfg catalog.WindowConfig) error {
	if l.step != StepConfiguring {
		return guardf("la configuración solo puede editarse durante el paso de configuración")
	}
	l.draft = cfg
	return nil
}

// MergeDraft overlays an AI-extracted partial configuration on the draft
// and returns the result.
func (l *Lifecycle) MergeDraft(partial catalog.PartialConfig) (catalog.WindowConfig, error) {
	if l.step != StepConfiguring {
		return catalog.WindowConfig{}, guardf("la configuración solo puede editarse durante el paso de configuración")
	}
	l.draft = partial.Merge(l.draft)
	return l.draft, nil
}

// AddToCart freezes cfg at today's price and appends it as a new line.
func (l *Lifecycle) AddToCart(cfg catalog.WindowConfig) (CartLine, error) {
	if l.step != StepConfiguring {
		return CartLine{}, guardf("el carrito solo puede modificarse durante el paso de configuración")
	}
	line := CartLine{
		ID:        l.newLineID(),
		Config:    cfg,
		UnitPrice: pricing.Quote(cfg, l.tables, l.vatRate),
	}
	l.cart = append(l.cart, line)
	return line, nil
}

// RemoveFromCart drops the line with the given id. Removing an unknown id
// is a no-op, not an error.
func (l *Lifecycle) RemoveFromCart(id string) error {
	if l.step != StepConfiguring {
		return guardf("el carrito solo puede modificarse durante el paso de configuración")
	}
	for i, line := range l.cart {
		if line.ID == id {
			l.cart = append(l.cart[:i], l.cart[i+1:]...)
			return nil
		}
	}
	return nil
}

// ProceedToCheckout moves to the contact form. Guard: the cart must not be
// empty.
func (l *Lifecycle) ProceedToCheckout() error {
	if l.step != StepConfiguring {
		return guardf("no se puede continuar al checkout desde el paso %s", l.step)
	}
	if len(l.cart) == 0 {
		return guardf("añade al menos una ventana a tu pedido para continuar")
	}
	l.step = StepCheckingOut
	return nil
}

// Back returns from the contact form to the configurator.
func (l *Lifecycle) Back() error {
	if l.step != StepCheckingOut {
		return guardf("no se puede volver atrás desde el paso %s", l.step)
	}
	l.step = StepConfiguring
	return nil
}

// PlaceOrder freezes the cart into an immutable order. Guard: every contact
// field must be non-blank.
//
// The total is the sum of the already VAT-inclusive line prices, not a
// fresh repricing; subtotal and VAT are decomposed from it so the invoice
// always reconciles with the configurator.
func (l *Lifecycle) PlaceOrder(contact ContactInfo) (*Order, error) {
	if l.step != StepCheckingOut {
		return nil, guardf("no se puede realizar el pedido desde el paso %s", l.step)
	}
	for field, value := range map[string]string{
		"customer_name":    contact.CustomerName,
		"email":            contact.Email,
		"phone":            contact.Phone,
		"delivery_address": contact.DeliveryAddress,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, guardf("el campo %s es obligatorio", field)
		}
	}

	total := l.CartTotal()
	subtotal := total / (1 + l.vatRate)

	l.order = &Order{
		OrderNumber:     l.newOrderNumber(),
		OrderDate:       l.now().Format("02/01/2006"),
		CustomerName:    contact.CustomerName,
		Email:           contact.Email,
		Phone:           contact.Phone,
		DeliveryAddress: contact.DeliveryAddress,
		Lines:           l.Cart(),
		Subtotal:        subtotal,
		VATAmount:       total - subtotal,
		TotalCost:       total,
	}
	l.step = StepAwaitingPayment
	return l.order, nil
}

// ConfirmPayment records the proof-of-payment reference and completes the
// order. Guard: a proof must be present.
func (l *Lifecycle) ConfirmPayment(proofURL string) error {
	if l.step != StepAwaitingPayment {
		return guardf("no se puede confirmar el pago desde el paso %s", l.step)
	}
	if strings.TrimSpace(proofURL) == "" {
		return guardf("el comprobante de pago es obligatorio")
	}
	now := l.now()
	l.order.ProofURL = proofURL
	l.order.ConfirmedAt = &now
	l.step = StepConfirmed
	return nil
}

// StartNewOrder discards the confirmed order and resets the session.
func (l *Lifecycle) StartNewOrder() error {
	if l.step != StepConfirmed {
		return guardf("solo se puede iniciar un nuevo pedido tras la confirmación")
	}
	l.cart = nil
	l.order = nil
	l.draft = catalog.DefaultConfig()
	l.step = StepConfiguring
	return nil
}
