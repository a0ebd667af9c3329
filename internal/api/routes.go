package api

import (
	"net/http"

	"newsdesk/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Articles.Handler().Routes(),
		domain.Reviews.Handler().Routes(),
		domain.Editorial.Handler().Routes(),
	)
}
