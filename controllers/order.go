// controllers/order.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"go-breakfast/middleware"
	"go-breakfast/models"

	"github.com/sirupsen/logrus"
)

// OrderController handles order submission
type OrderController struct {
	Logger logrus.FieldLogger
	Now    func() time.Time
}

// NewOrderController creates a new OrderController
func NewOrderController(logger logrus.FieldLogger) *OrderController {
	return &OrderController{
		Logger: logger,
		Now:    time.Now,
	}
}

// SubmitOrder confirms the session's order. The cart is kept as is and nothing is sent
// anywhere.
func (oc *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	confirmation, err := session.Submit(oc.Now())
	if errors.Is(err, models.ErrEmptyCart) {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to submit order", http.StatusInternalServerError)
		return
	}

	oc.Logger.WithFields(logrus.Fields{
		"session_id":  session.ID,
		"lines":       len(confirmation.Lines),
		"grand_total": confirmation.GrandTotal,
	}).Info("order submitted")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submitted":    true,
		"message":      confirmation.Message,
		"grand_total":  confirmation.GrandTotal,
		"lines":        newLineViews(confirmation.Lines),
		"submitted_at": confirmation.SubmittedAt.UTC().Format(time.RFC3339),
	})
}
