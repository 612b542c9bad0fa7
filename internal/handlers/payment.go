package handlers

import (
	"errors"
	"net/http"

	"paywall/internal/service"

	"github.com/gin-gonic/gin"
)

// paymentCallback is the gateway's success callback, posted by the
// browser after checkout. Field names are the gateway's.
type paymentCallback struct {
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// @Summary      Create a fixed-fee payment order
// @Tags         payment
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "gateway order"
// @Failure      500  {object}  map[string]string
// @Router       /create-order [post]
func (h *Handler) createOrder(c *gin.Context) {
	order, err := h.services.CreateOrder(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "could not create order", "order_create_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// @Summary      Confirm a payment callback
// @Description  Verifies the gateway signature, then marks the session's user as paid
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body   paymentCallback  true  "Gateway callback"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /payment-success [post]
// @Security     BearerAuth
func (h *Handler) paymentSuccess(c *gin.Context) {
	sess, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	var input paymentCallback
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Confirm(c.Request.Context(), sess.UserID, input.OrderID, input.PaymentID, input.Signature)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			if h.log != nil {
				h.log.Infow("payment_signature_rejected", "user_id", sess.UserID, "order_id", input.OrderID)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidSignature.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "could not record payment", "payment_persist_failed", err, "user_id", sess.UserID)
		return
	}

	// Store write succeeded; refresh the session so has_paid travels with
	// the client from here on.
	token, err := h.services.IssueSession(sess.UserID, true)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "could not refresh session", "session_refresh_failed", err, "user_id", sess.UserID)
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}
