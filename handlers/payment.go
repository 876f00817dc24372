package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"examgen_client/gateway"
	"examgen_client/middleware"
	"examgen_client/models"
)

type PaymentHandler struct {
	gw *gateway.Client
}

func NewPaymentHandler(gw *gateway.Client) *PaymentHandler {
	return &PaymentHandler{gw: gw}
}

type premiumData struct {
	Page
	Status models.SubscriptionStatus
}

func (h *PaymentHandler) ShowPremium(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	data := premiumData{Page: pageFor(c, "Premium")}

	status, err := h.gw.GetSubscriptionStatus(c.Request.Context(), sess.Token)
	if err != nil {
		// The plan cards are still useful without the status.
		log.Printf("Subscription status load failed: %v", err)
	} else {
		data.Status = status
	}
	c.HTML(http.StatusOK, "premium.tmpl", data)
}

// Checkout opens a Stripe session and hands the browser over to it. From
// there the flow only comes back through the success/cancel routes.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req models.CreateCheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		data := premiumData{Page: pageFor(c, "Premium")}
		data.Error = "Wybierz plan miesięczny lub roczny."
		c.HTML(http.StatusBadRequest, "premium.tmpl", data)
		return
	}

	resp, err := h.gw.CreateCheckout(c.Request.Context(), sess.Token, req.PlanType)
	if err != nil || resp.CheckoutUrl == "" {
		log.Printf("Checkout creation failed: %v", err)
		data := premiumData{Page: pageFor(c, "Premium")}
		data.Error = gateway.Message(err, "Nie udało się utworzyć sesji płatności")
		c.HTML(http.StatusBadGateway, "premium.tmpl", data)
		return
	}
	c.Redirect(http.StatusSeeOther, resp.CheckoutUrl)
}

// Success and Cancel are the one-shot terminal views Stripe redirects back
// to. They render without the app chrome and lead back to the root, which
// re-selects the initial view.
func (h *PaymentHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "payment_success.tmpl", Page{Title: "Płatność zakończona"})
}

func (h *PaymentHandler) Cancel(c *gin.Context) {
	c.HTML(http.StatusOK, "payment_cancel.tmpl", Page{Title: "Płatność anulowana"})
}
