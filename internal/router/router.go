// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"imoguru/internal/handlers"
	"imoguru/internal/middleware"
	"imoguru/internal/session"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Auth       *handlers.Auth
	Properties *handlers.Properties
	Media      *handlers.Media
	Templates  *handlers.Templates
	Share      *handlers.Share
	Dashboard  *handlers.Dashboard
	Settings   *handlers.Settings
	Users      *handlers.Users
}

// New builds the chi router with the full middleware stack and API routes.
func New(h Handlers, sessions *session.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)

			// The TOTP step needs a session but runs before Require2FA.
			r.Post("/2fa/setup", h.Auth.TwoFASetup)
			r.Post("/2fa/verify", h.Auth.TwoFAVerify)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth, middleware.Require2FA)
				r.Get("/me", h.Auth.Me)
			})
		})

		// Everything below requires a fully authenticated session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth, middleware.Require2FA)

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", h.Properties.List)
				r.Post("/", h.Properties.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Properties.Get)
					r.Put("/", h.Properties.Update)
					r.Delete("/", h.Properties.Delete)

					r.Get("/images", h.Media.ListImages)
					r.Post("/images", h.Media.UploadImage)
					r.Post("/images/reorder", h.Media.ReorderImages)
					r.Put("/images/{imageID}/cover", h.Media.SetCover)
					r.Delete("/images/{imageID}", h.Media.DeleteImage)

					r.Get("/documents", h.Media.ListDocuments)
					r.Post("/documents", h.Media.UploadDocument)
					r.Get("/documents/{docID}/url", h.Media.DocumentURL)
					r.Delete("/documents/{docID}", h.Media.DeleteDocument)

					r.Post("/share", h.Share.Dispatch)
					r.Post("/export", h.Share.Export)
					r.Get("/shares", h.Dashboard.PropertyShares)
				})
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", h.Templates.List)
				r.Post("/", h.Templates.Create)
				r.Post("/preview", h.Templates.Preview)
				r.Get("/{id}", h.Templates.Get)
				r.Put("/{id}", h.Templates.Update)
				r.Delete("/{id}", h.Templates.Archive)
			})

			r.Get("/dashboard", h.Dashboard.Overview)

			r.Get("/settings", h.Settings.Get)
			r.Get("/company", h.Settings.Company)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Put("/settings", h.Settings.Update)
				r.Put("/company", h.Settings.UpdateCompany)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.Users.List)
					r.Post("/", h.Users.Create)
					r.Post("/{id}/reset-2fa", h.Users.Reset2FA)
					r.Delete("/{id}", h.Users.Delete)
				})
			})
		})
	})

	return r
}
