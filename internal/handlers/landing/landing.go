package landing

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"NeonSkills/internal/catalog"
	"NeonSkills/internal/disclosure"
	"NeonSkills/internal/errx"
	"NeonSkills/internal/middleware"
	"NeonSkills/web/templates/pages/landing"
)

// Handler serves the landing page. The menu state of the page view comes
// from the request URL and lives only for the duration of the request.
type Handler struct {
	catalog *catalog.Catalog
	log     zerolog.Logger
}

func New(cat *catalog.Catalog, log zerolog.Logger) *Handler {
	return &Handler{catalog: cat, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	menu := disclosure.Restore(disclosure.ParseState(r.URL.Query().Get(disclosure.QueryKey)))

	page := landing.Page(landing.Props{Catalog: h.catalog, Menu: menu.State()})
	templ.Handler(page, templ.WithErrorHandler(h.renderError)).ServeHTTP(w, r)
}

func (h *Handler) renderError(r *http.Request, err error) http.Handler {
	err = errx.WrapRender(err)
	h.log.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFrom(r.Context())).
		Msg("landing page render failed")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errx.Write(w, err)
	})
}
