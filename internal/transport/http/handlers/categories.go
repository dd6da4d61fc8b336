package handlers

import "net/http"

// Categories — GET /api/categories.
// Человекочитаемые метки всех категорий в порядке объявления.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Categories())
}
