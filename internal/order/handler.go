package order

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/pricing"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/storage"
)

// MaxProofSize caps proof-of-payment uploads at 10 MB.
const MaxProofSize = 10 << 20

type Handler struct {
	sessions *SessionRepository
	uploader storage.Uploader
	onReset  func(sessionID string)
}

func NewHandler(sessions *SessionRepository, uploader storage.Uploader) *Handler {
	return &Handler{sessions: sessions, uploader: uploader}
}

// OnReset registers a hook invoked after a session starts a new order,
// so collaborators (the chat transcript, for one) can drop their state.
func (h *Handler) OnReset(fn func(sessionID string)) {
	h.onReset = fn
}

// CreateSession opens a fresh session with the default draft configuration.
func (h *Handler) CreateSession(c *gin.Context) {
	id := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

// GetSession returns the full session snapshot.
func (h *Handler) GetSession(c *gin.Context) {
	h.withSession(c, func(lc *Lifecycle) error {
		c.JSON(http.StatusOK, snapshot(lc))
		return nil
	})
}

// UpdateConfig replaces the draft configuration and returns the live quote.
func (h *Handler) UpdateConfig(c *gin.Context) {
	var cfg catalog.WindowConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "configuración inválida"})
		return
	}

	h.withSession(c, func(lc *Lifecycle) error {
		if err := lc.UpdateDraft(cfg); err != nil {
			return err
		}
		c.JSON(http.StatusOK, gin.H{
			"config": lc.Draft(),
			"price":  pricing.Round2(lc.DraftQuote()),
		})
		return nil
	})
}

// AddToCart freezes the session draft (or a posted configuration) into a
// new cart line.
func (h *Handler) AddToCart(c *gin.Context) {
	var cfg *catalog.WindowConfig
	if c.Request.ContentLength > 0 {
		cfg = new(catalog.WindowConfig)
		if err := c.ShouldBindJSON(cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "configuración inválida"})
			return
		}
	}

	h.withSession(c, func(lc *Lifecycle) error {
		add := lc.Draft()
		if cfg != nil {
			add = *cfg
		}
		line, err := lc.AddToCart(add)
		if err != nil {
			return err
		}
		c.JSON(http.StatusCreated, gin.H{
			"line":       lineView(line),
			"cart_total": pricing.Round2(lc.CartTotal()),
		})
		return nil
	})
}

// RemoveFromCart drops a cart line. Unknown ids are a no-op.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	lineID := c.Param("lineID")

	h.withSession(c, func(lc *Lifecycle) error {
		if err := lc.RemoveFromCart(lineID); err != nil {
			return err
		}
		c.JSON(http.StatusOK, gin.H{
			"cart":       cartView(lc.Cart()),
			"cart_total": pricing.Round2(lc.CartTotal()),
		})
		return nil
	})
}

// Checkout advances to the contact form.
func (h *Handler) Checkout(c *gin.Context) {
	h.withSession(c, func(lc *Lifecycle) error {
		if err := lc.ProceedToCheckout(); err != nil {
			return err
		}
		c.JSON(http.StatusOK, gin.H{"step": lc.Step()})
		return nil
	})
}

// Back returns from the contact form to the configurator.
func (h *Handler) Back(c *gin.Context) {
	h.withSession(c, func(lc *Lifecycle) error {
		if err := lc.Back(); err != nil {
			return err
		}
		c.JSON(http.StatusOK, gin.H{"step": lc.Step()})
		return nil
	})
}

// PlaceOrder builds the immutable order and returns the invoice payload.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var contact ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos de contacto inválidos"})
		return
	}

	h.withSession(c, func(lc *Lifecycle) error {
		ord, err := lc.PlaceOrder(contact)
		if err != nil {
			return err
		}
		c.JSON(http.StatusCreated, invoiceView(ord))
		return nil
	})
}

// UploadProof stores the proof-of-payment file and confirms the order.
func (h *Handler) UploadProof(c *gin.Context) {
	file, header, err := c.Request.FormFile("proof_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proof_file es obligatorio"})
		return
	}
	defer file.Close()

	if header.Size > MaxProofSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el archivo supera el límite de 10MB"})
		return
	}
	if err := validateProofExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Resolve the pending order first, then run the transfer without
	// holding the session registry: one slow upload must not stall every
	// other customer's session.
	var orderNumber string
	if err := h.sessions.With(c.Param("id"), func(lc *Lifecycle) error {
		if lc.Order() == nil || lc.Step() != StepAwaitingPayment {
			return guardf("no hay ningún pedido pendiente de pago")
		}
		orderNumber = lc.Order().OrderNumber
		return nil
	}); err != nil {
		respondLifecycleError(c, err)
		return
	}

	key := "proofs/" + orderNumber + "/" + uuid.NewString() + filepath.Ext(header.Filename)
	url, err := h.uploader.Upload(c.Request.Context(), key, file, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "no se pudo guardar el comprobante"})
		return
	}

	h.withSession(c, func(lc *Lifecycle) error {
		if err := lc.ConfirmPayment(url); err != nil {
			return err
		}
		c.JSON(http.StatusOK, gin.H{
			"step":         lc.Step(),
			"order_number": orderNumber,
			"message":      "Hemos recibido tu comprobante. El plazo de fabricación estimado es de 15 días laborables.",
		})
		return nil
	})
}

// Reset discards the confirmed order and starts over.
func (h *Handler) Reset(c *gin.Context) {
	h.withSession(c, func(lc *Lifecycle) error {
		if err := lc.StartNewOrder(); err != nil {
			return err
		}
		if h.onReset != nil {
			h.onReset(c.Param("id"))
		}
		c.JSON(http.StatusOK, snapshot(lc))
		return nil
	})
}

func validateProofExtension(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".pdf":
		return nil
	}
	return errors.New("formato no admitido: usa PNG, JPG o PDF")
}

// withSession resolves the :id session and translates lifecycle errors to
// HTTP. Guard violations are 409 and never change session state.
func (h *Handler) withSession(c *gin.Context, fn func(*Lifecycle) error) {
	if err := h.sessions.With(c.Param("id"), fn); err != nil {
		respondLifecycleError(c, err)
	}
}

func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "sesión no encontrada"})
	case IsGuard(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func snapshot(lc *Lifecycle) gin.H {
	out := gin.H{
		"step":       lc.Step(),
		"config":     lc.Draft(),
		"price":      pricing.Round2(lc.DraftQuote()),
		"cart":       cartView(lc.Cart()),
		"cart_total": pricing.Round2(lc.CartTotal()),
	}
	if ord := lc.Order(); ord != nil {
		out["order"] = invoiceView(ord)
	}
	return out
}

func lineView(line CartLine) gin.H {
	return gin.H{
		"id":         line.ID,
		"config":     line.Config,
		"unit_price": pricing.Round2(line.UnitPrice),
	}
}

func cartView(lines []CartLine) []gin.H {
	views := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		views = append(views, lineView(line))
	}
	return views
}

func invoiceView(ord *Order) gin.H {
	out := gin.H{
		"order_number":     ord.OrderNumber,
		"order_date":       ord.OrderDate,
		"customer_name":    ord.CustomerName,
		"email":            ord.Email,
		"phone":            ord.Phone,
		"delivery_address": ord.DeliveryAddress,
		"lines":            cartView(ord.Lines),
		"subtotal":         pricing.Round2(ord.Subtotal),
		"vat_amount":       pricing.Round2(ord.VATAmount),
		"total_cost":       pricing.Round2(ord.TotalCost),
		"payment":          InstructionsFor(ord.OrderNumber),
	}
	if ord.ProofURL != "" {
		out["proof_url"] = ord.ProofURL
	}
	return out
}
