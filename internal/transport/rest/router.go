package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/loader"
	"github.com/heartmarshall/storefront-backend/internal/transport/middleware"
	"github.com/heartmarshall/storefront-backend/pkg/ctxutil"
)

// RouterDeps holds everything the router mounts.
type RouterDeps struct {
	Health     *HealthHandler
	Roadmap    *RoadmapHandler
	Forum      *ForumHandler
	Storefront *StorefrontHandler
	Page       *PageHandler
	Live       http.Handler // WebSocket live sessions; nil disables the route

	Loaders *loader.Repos // nil leaves profile batching to the services
	Changes changeNotifier

	// SubmitLimit throttles suggestion and reply submission; nil disables it.
	SubmitLimit middleware.Middleware
}

// NewRouter builds the HTTP routes. Request-wide middleware (request id,
// recovery, logging, CORS, auth) is applied by the caller around it.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	submitLimit := d.SubmitLimit
	if submitLimit == nil {
		submitLimit = func(next http.Handler) http.Handler { return next }
	}
	loaders := func(next http.Handler) http.Handler { return next }
	if d.Loaders != nil {
		loaders = loader.Middleware(d.Loaders)
	}
	ownerChanged := notifyChanged(d.Changes, callerAsCreator)
	creatorChanged := notifyChanged(d.Changes, creatorFromPath)

	r.Route("/api", func(r chi.Router) {
		r.Use(loaders)

		r.Get("/themes", d.Storefront.Themes)
		r.Put("/page", d.Storefront.SavePage)

		r.Route("/creators/{creatorID}", func(r chi.Router) {
			r.Get("/page", d.Storefront.GetPage)
			r.Get("/roadmap", d.Roadmap.Get)
			r.Get("/roadmap/style", d.Storefront.RoadmapStyle)
			r.With(creatorChanged).Put("/roadmap/items/{itemID}/vote", d.Roadmap.Vote)
			r.With(creatorChanged).Delete("/roadmap/items/{itemID}/vote", d.Roadmap.Vote)
			r.Get("/suggestions", d.Forum.List)
			r.With(submitLimit, creatorChanged).Post("/suggestions", d.Forum.Submit)
		})

		r.Route("/roadmap", func(r chi.Router) {
			r.Use(ownerChanged)
			r.Post("/versions", d.Roadmap.AddVersion)
			r.Patch("/versions/{versionID}", d.Roadmap.UpdateVersionDescription)
			r.Put("/versions/{versionID}/status", d.Roadmap.SetVersionStatus)
			r.Delete("/versions/{versionID}", d.Roadmap.DeleteVersion)
			r.Post("/versions/{versionID}/items", d.Roadmap.AddItem)
			r.Patch("/items/{itemID}", d.Roadmap.UpdateTask)
			r.Put("/items/{itemID}/status", d.Roadmap.SetItemStatus)
			r.Delete("/items/{itemID}", d.Roadmap.DeleteItem)
		})

		r.Route("/suggestions/{suggestionID}", func(r chi.Router) {
			r.Put("/upvote", d.Forum.Upvote)
			r.Delete("/upvote", d.Forum.Upvote)
			r.Get("/replies", d.Forum.Replies)
			r.With(submitLimit).Post("/replies", d.Forum.Reply)
			r.With(ownerChanged).Put("/status", d.Forum.SetStatus)
			r.With(ownerChanged).Delete("/", d.Forum.Delete)
		})
	})

	r.Route("/s/{creatorID}/roadmap", func(r chi.Router) {
		r.Use(loaders)
		r.Get("/", d.Page.Page)
		r.Post("/actions", d.Page.Action)
		if d.Live != nil {
			r.Get("/live", d.Live.ServeHTTP)
		}
	})

	return r
}

// callerAsCreator is used on owner-only routes, where the caller is the
// creator whose roadmap changes.
func callerAsCreator(r *http.Request) (uuid.UUID, bool) {
	return ctxutil.UserIDFromCtx(r.Context())
}

func creatorFromPath(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "creatorID"))
	return id, err == nil
}

// notifyChanged tells live sessions about a roadmap change after a
// mutating request succeeded.
func notifyChanged(changes changeNotifier, creator func(*http.Request) (uuid.UUID, bool)) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		if changes == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			if rec.status >= 300 {
				return
			}
			if id, ok := creator(r); ok {
				changes.Changed(id)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
