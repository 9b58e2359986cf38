// routes/routes.go
package routes

import (
	"encoding/json"
	"net/http"

	"go-breakfast/controllers"

	"github.com/gorilla/mux"
)

// Controllers groups the handlers served by the router
type Controllers struct {
	Menu    *controllers.MenuController
	Session *controllers.SessionController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers, sessionAuth mux.MiddlewareFunc) {
	// Public routes
	router.HandleFunc("/health", health).Methods("GET")
	router.HandleFunc("/menu", c.Menu.GetMenu).Methods("GET")
	router.HandleFunc("/menu/lookup", c.Menu.LookupMenuItem).Methods("GET")
	router.HandleFunc("/menu/items/{id}", c.Menu.GetMenuItem).Methods("GET")
	router.HandleFunc("/session", c.Session.CreateSession).Methods("POST")

	// Session routes
	protected := router.NewRoute().Subrouter()
	protected.Use(sessionAuth)
	protected.HandleFunc("/cart", c.Cart.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	protected.HandleFunc("/order", c.Order.SubmitOrder).Methods("POST")
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
