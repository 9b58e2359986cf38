package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go-breakfast/middleware"
	"go-breakfast/models"

	"github.com/sirupsen/logrus"
)

const emptyCartMessage = "cart empty"

// maxQuantity bounds one line so subtotals stay far from int overflow
const maxQuantity = 99

// CartController handles cart-related requests
type CartController struct {
	Catalog *models.Catalog
	Logger  logrus.FieldLogger
}

// NewCartController creates a new CartController
func NewCartController(catalog *models.Catalog, logger logrus.FieldLogger) *CartController {
	return &CartController{
		Catalog: catalog,
		Logger:  logger,
	}
}

type addLineRequest struct {
	ItemID      string   `json:"item_id"`
	ItemName    string   `json:"item_name"`
	ModifierIDs []string `json:"modifier_ids"`
	Quantity    *int     `json:"quantity"`
}

// LineView is how a cart line is displayed
type LineView struct {
	ItemID    string   `json:"item_id"`
	Name      string   `json:"name"`
	Modifiers []string `json:"modifiers"`
	Quantity  int      `json:"quantity"`
	Subtotal  int      `json:"subtotal"`
}

func newLineViews(lines []models.OrderLine) []LineView {
	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, LineView{
			ItemID:    line.Item.ID,
			Name:      line.Item.Name,
			Modifiers: line.ModifierNames(),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
	}
	return views
}

// AddToCart adds a menu item with its chosen modifiers to the session's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 || quantity > maxQuantity {
		http.Error(w, fmt.Sprintf("Quantity must be between 1 and %d", maxQuantity), http.StatusBadRequest)
		return
	}

	item, err := cc.resolveItem(req)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	modifiers, err := cc.resolveModifiers(item, req.ModifierIDs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	line, total := session.AddLine(item, modifiers, quantity)
	cc.Logger.WithFields(logrus.Fields{
		"session_id": session.ID,
		"item_id":    item.ID,
		"quantity":   quantity,
		"subtotal":   line.Subtotal(),
	}).Info("item added to cart")

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     fmt.Sprintf("Added %s", item.Name),
		"line":        newLineViews([]models.OrderLine{line})[0],
		"grand_total": total,
	})
}

// GetCart retrieves the session's cart and its running total
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lines, total := session.Snapshot()
	resp := map[string]interface{}{
		"lines":       newLineViews(lines),
		"grand_total": total,
		"empty":       len(lines) == 0,
	}
	if len(lines) == 0 {
		resp["message"] = emptyCartMessage
	}
	writeJSON(w, http.StatusOK, resp)
}

func (cc *CartController) resolveItem(req addLineRequest) (models.MenuItem, error) {
	switch {
	case req.ItemID != "":
		return cc.Catalog.FindItemByID(req.ItemID)
	case req.ItemName != "":
		return cc.Catalog.FindItemByName(req.ItemName)
	default:
		return models.MenuItem{}, errors.New("item_id or item_name is required")
	}
}

// resolveModifiers rejects ids outside the item's allowed list and skips allowed ids
// that have no modifier definition.
func (cc *CartController) resolveModifiers(item models.MenuItem, ids []string) ([]models.Modifier, error) {
	seen := make(map[string]bool, len(ids))
	var modifiers []models.Modifier
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if !item.Allows(id) {
			return nil, fmt.Errorf("modifier %q is not available for %s", id, item.Name)
		}
		if mod, ok := cc.Catalog.FindModifierByID(id); ok {
			modifiers = append(modifiers, mod)
		}
	}
	return modifiers, nil
}
