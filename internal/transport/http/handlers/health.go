package handlers

import "net/http"

// Ping — GET /api/health/ping. Литеральный "pong": сервер жив и отвечает.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "pong")
}
