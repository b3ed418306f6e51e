package http

import (
	"net/http"

	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/utils"
	"github.com/bookvault/bookvault/web"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "Hello World!", http.StatusOK)
}

// dummyLogin serves the federated sign-in test page with the provider's
// browser-facing configuration rendered in.
func (h *Handler) dummyLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.DummyLoginTemplate.Execute(w, h.page); err != nil {
		log.Err(err).Msg("rendering dummy login page failed")
	}
}
