// Package http provides http transport for word lookups
package http

import (
	stdhttp "net/http"

	"wordbound/internal/modkit/httpkit"
	"wordbound/internal/services/api/words/domain"
)

// Register mounts words endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// single position lookups
	httpkit.PostJSON[domain.PositionInput](r, "/at", h.at)
	httpkit.PostJSON[domain.PositionInput](r, "/before", h.before)
	httpkit.PostJSON[domain.PositionInput](r, "/after", h.after)

	httpkit.PostJSON[domain.TextInput](r, "/edges", h.edges)

	// cursor documents
	httpkit.PostJSON[domain.CursorInput](r, "/cursor", h.cursor)
	httpkit.PostJSON[domain.ReplaceInput](r, "/replace", h.replace)

	httpkit.Get(r, "/presets", h.presets)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /words/at Words wordsAt
// @Summary Word straddling a position
// @Tags Words
// @Accept json
// @Produce json
// @Param payload body domain.PositionInput true "Query"
// @Success 200 {object} domain.WordResult "ok"
// @Router /words/at [post]
func (h *handlers) at(r *stdhttp.Request, in domain.PositionInput) (any, error) {
	return h.svc.At(r.Context(), in)
}

// @Router /words/before [post]
func (h *handlers) before(r *stdhttp.Request, in domain.PositionInput) (any, error) {
	return h.svc.Before(r.Context(), in)
}

// @Router /words/after [post]
func (h *handlers) after(r *stdhttp.Request, in domain.PositionInput) (any, error) {
	return h.svc.After(r.Context(), in)
}

// swagger:route POST /words/edges Words wordsEdges
// @Summary Leading and trailing fragments
// @Tags Words
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Query"
// @Success 200 {object} domain.EdgesResult "ok"
// @Router /words/edges [post]
func (h *handlers) edges(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Edges(r.Context(), in)
}

// @Router /words/cursor [post]
func (h *handlers) cursor(r *stdhttp.Request, in domain.CursorInput) (any, error) {
	return h.svc.Cursor(r.Context(), in)
}

// swagger:route POST /words/replace Words wordsReplace
// @Summary Replace the word at the cursor
// @Tags Words
// @Accept json
// @Produce json
// @Param payload body domain.ReplaceInput true "Replacement"
// @Success 200 {object} domain.ReplaceResult "ok"
// @Router /words/replace [post]
func (h *handlers) replace(r *stdhttp.Request, in domain.ReplaceInput) (any, error) {
	return h.svc.Replace(r.Context(), in)
}

// @Router /words/presets [get]
func (h *handlers) presets(r *stdhttp.Request) (any, error) {
	return h.svc.Presets(r.Context())
}
