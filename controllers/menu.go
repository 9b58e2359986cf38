package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-breakfast/models"

	"github.com/gorilla/mux"
)

// MenuController handles menu browsing requests
type MenuController struct {
	Catalog *models.Catalog
}

// NewMenuController creates a new MenuController
func NewMenuController(catalog *models.Catalog) *MenuController {
	return &MenuController{Catalog: catalog}
}

type menuItemDetail struct {
	models.MenuItem
	Modifiers []models.Modifier `json:"modifiers"`
}

// GetMenu lists every menu item in display order
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": mc.Catalog.Categories(),
		"items":      mc.Catalog.Items(),
	})
}

// GetMenuItem retrieves a single item by id together with its resolved modifiers
func (mc *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	item, err := mc.Catalog.FindItemByID(params["id"])
	if err != nil {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	mc.writeDetail(w, item)
}

// LookupMenuItem resolves a display name selected from the menu
func (mc *MenuController) LookupMenuItem(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "Query parameter name is required", http.StatusBadRequest)
		return
	}

	item, err := mc.Catalog.FindItemByName(name)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error looking up menu item", http.StatusInternalServerError)
		return
	}
	mc.writeDetail(w, item)
}

func (mc *MenuController) writeDetail(w http.ResponseWriter, item models.MenuItem) {
	writeJSON(w, http.StatusOK, menuItemDetail{
		MenuItem:  item,
		Modifiers: mc.Catalog.AllowedModifiers(item),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
