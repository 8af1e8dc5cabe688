package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/items", func(r chi.Router) {
			r.Post("/", h.saveItem)
			r.Get("/uncategorized", h.listUncategorizedItems)
			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/", h.getItem)
				r.Get("/collections", h.listItemCollections)
				r.Patch("/", h.updateItem)
				r.Delete("/", h.deleteItem)
				r.Delete("/purge", h.purgeItem)
				r.Post("/archive", h.archiveItem)
				r.Post("/restore", h.restoreItem)
			})
		})

		r.Route("/api/collections", func(r chi.Router) {
			r.Post("/", h.createCollection)
			r.Get("/", h.listCollections)
			r.Route("/{collectionID}", func(r chi.Router) {
				r.Get("/", h.getCollection)
				r.Delete("/", h.deleteCollection)
				r.Get("/items", h.listCollectionItems)
				r.Put("/items/{itemID}", h.attachItem)
				r.Delete("/items/{itemID}", h.detachItem)
				r.Post("/members", h.shareCollection)
			})
		})

		r.Route("/api/reminders", func(r chi.Router) {
			r.Post("/", h.createReminder)
			r.Get("/items", h.listReminderItems)
			r.Post("/{reminderID}/complete", h.completeReminder)
		})

		r.Route("/api/profile", func(r chi.Router) {
			r.Get("/", h.getProfile)
			r.Post("/complete", h.completeProfile)
		})

		// RPC endpoints kept verb-shaped for compatibility with the
		// pre-rewrite clients: one POST per procedure.
		r.Route("/api/rpc", func(r chi.Router) {
			r.Post("/list_accessible_collections_for_user", h.rpcListAccessibleCollections)
			r.Post("/is_username_available", h.rpcIsUsernameAvailable)
			r.Post("/create_interest_collections", h.rpcCreateInterestCollections)
		})

		r.Route("/api/functions", func(r chi.Router) {
			r.Post("/quick-save", h.fnQuickSave)
			r.Post("/fetch-metadata", h.fnFetchMetadata)
			r.Post("/create-reminder", h.fnCreateReminder)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
