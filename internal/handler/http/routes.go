// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes for the logged-in user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Post("/api/user/logout", h.logout)

			r.Get("/api/invoice/", h.getInvoice)
			r.Post("/api/invoice/validate", h.validate)
			r.Put("/api/invoice/fields/{field}", h.setField)
			r.Put("/api/invoice/section", h.setSection)
			r.Post("/api/invoice/draft", h.saveDraft)
			r.Post("/api/invoice/submit", h.submit)
			r.Post("/api/invoice/reset", h.reset)
			r.Post("/api/invoice/sample", h.loadSample)
			r.Post("/api/invoice/extraction", h.extract)
			r.Post("/api/invoice/attachment", h.attach)
			r.Delete("/api/invoice/attachment", h.detach)
			r.Get("/api/invoice/submissions", h.listSubmissions)
		})

		// pdf bytes are served as is
		r.Get("/blob/{id}", h.getBlob)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
