package handlers

import (
	"github.com/gorilla/mux"
)

// SetupRoutes wires all handlers into the router.
func SetupRoutes(wsHandler *WebSocketHandler, docHandler *DocumentHandler, staticHandler *StaticHandler) *mux.Router {
	router := mux.NewRouter()

	// WebSocket command/display stream
	router.HandleFunc("/ws", wsHandler.HandleWebSocket)

	// Document API
	router.HandleFunc("/api/document", docHandler.GetInfo).Methods("GET")
	router.HandleFunc("/api/document/fit", docHandler.GetFit).Methods("GET")
	router.HandleFunc("/document.pdf", docHandler.ServeFile).Methods("GET")

	// Display surfaces
	router.HandleFunc("/audience", staticHandler.ServeAudience).Methods("GET")
	router.HandleFunc("/presenter", staticHandler.ServePresenter).Methods("GET")
	router.HandleFunc("/", staticHandler.ServeIndex).Methods("GET")
	router.PathPrefix("/static/").Handler(staticHandler.ServeAssets())

	return router
}
