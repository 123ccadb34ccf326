package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter mounts the checklist handlers on a gorilla/mux router under the
// page path.
func NewRouter(h *Handlers) *mux.Router {
	page := h.pagePath()
	r := mux.NewRouter()
	r.HandleFunc(page, h.HandlePage).Methods(http.MethodGet)
	r.HandleFunc(page+"/section.json", h.HandleSection).Methods(http.MethodGet)
	r.HandleFunc(page+"/summary.json", h.HandleSummary).Methods(http.MethodGet)
	r.HandleFunc(page+"/toggle", h.HandleToggle).Methods(http.MethodPost)
	r.HandleFunc(page+"/notes", h.HandleNote).Methods(http.MethodPost)
	r.HandleFunc(page+"/goals", h.HandleGoals).Methods(http.MethodPost)
	r.HandleFunc(page+"/session", h.HandleEndSession).Methods(http.MethodDelete)
	r.HandleFunc(page+"/session/end", h.HandleEndSession).Methods(http.MethodPost)
	if page != "/" {
		r.Handle("/", http.RedirectHandler(page, http.StatusFound)).Methods(http.MethodGet)
	}
	return r
}
