package handlers

import (
	"net/http"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/interfaces/rest"
)

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
