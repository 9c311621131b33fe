package handlers

import (
	"net/http"

	"github.com/crucial707/postboard/internal/render"
)

type HomeHandler struct {
	Base
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "index.html", render.Page{})
}
