package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/dashboard/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Get("/", h.Home)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/session", h.Session)
		})

		r.Route("/{role}", func(r chi.Router) {
			r.Use(mw.RequireRole)

			r.Get("/", h.Dashboard)
			r.Get("/dokumen", h.Folders)
			r.Get("/dokumen/{folder}", h.FolderFiles)
			r.Post("/dokumen/{folder}/files", h.UploadFile)
			r.Delete("/dokumen/{folder}/files/{id}", h.RemoveFile)
			r.Get("/dokumen/{folder}/files/{id}/content", h.FileContent)
		})
	})

	return router
}
