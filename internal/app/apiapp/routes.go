package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	pgrepo "github.com/Ihebmsaed/Artygen/internal/repo/postgres"
	artworksvc "github.com/Ihebmsaed/Artygen/internal/services/artworks"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	categorysvc "github.com/Ihebmsaed/Artygen/internal/services/categories"
	commentsvc "github.com/Ihebmsaed/Artygen/internal/services/comments"
	eventsvc "github.com/Ihebmsaed/Artygen/internal/services/events"
	modsvc "github.com/Ihebmsaed/Artygen/internal/services/moderation"
	postsvc "github.com/Ihebmsaed/Artygen/internal/services/posts"
	profilesvc "github.com/Ihebmsaed/Artygen/internal/services/profiles"
	"github.com/Ihebmsaed/Artygen/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService       *authsvc.Service
	ProfileService    *profilesvc.Service
	PostService       *postsvc.Service
	CommentService    *commentsvc.Service
	EventService      *eventsvc.Service
	CategoryService   *categorysvc.Service
	ArtworkService    *artworksvc.Service
	ModerationService *modsvc.Service
	NotificationRepo  *pgrepo.NotificationRepo
	Logger            *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	if deps.ProfileService != nil {
		authHandler.AttachBioGeneration(deps.ProfileService, deps.NotificationRepo)
	}
	profileHandler := handlers.NewProfileHandler(deps.ProfileService)
	postsHandler := handlers.NewPostsHandler(deps.PostService)
	commentsHandler := handlers.NewCommentsHandler(deps.CommentService)
	eventsHandler := handlers.NewEventsHandler(deps.EventService)
	categoriesHandler := handlers.NewCategoriesHandler(deps.CategoryService)
	artworksHandler := handlers.NewArtworksHandler(deps.ArtworkService)
	moderationHandler := handlers.NewModerationHandler(deps.ModerationService)
	notificationsHandler := handlers.NewNotificationsHandler(deps.NotificationRepo)

	authMW := AuthMiddleware(deps.AuthService, deps.Logger)
	adminMW := RequireRole("admin")

	r.Get("/healthz", healthHandler.Handle)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.With(authMW).Post("/logout", authHandler.Logout)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Use(authMW)
		r.Get("/", profileHandler.Get)
		r.Put("/", profileHandler.Update)
		r.Post("/bio/generate", profileHandler.GenerateBio)
		r.Post("/bio/regenerate", profileHandler.RegenerateBio)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postsHandler.List)
		r.Get("/{id}", postsHandler.Get)
		r.Get("/{id}/translations", postsHandler.Translations)
		r.Get("/{id}/comments", commentsHandler.ListByPost)
		r.With(authMW).Post("/", postsHandler.Create)
		r.With(authMW).Post("/{id}/like", postsHandler.Like)
		r.With(authMW).Post("/{id}/reanalyze", postsHandler.Reanalyze)
		r.With(authMW).Post("/{id}/translate", postsHandler.Translate)
		r.With(authMW).Post("/{id}/comments", commentsHandler.Create)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventsHandler.List)
		r.Get("/{id}", eventsHandler.Get)
		r.With(authMW).Post("/", eventsHandler.Create)
		r.With(authMW).Put("/{id}", eventsHandler.Update)
		r.With(authMW).Delete("/{id}", eventsHandler.Delete)
		r.With(authMW).Post("/description/generate", eventsHandler.GenerateDescription)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoriesHandler.List)
		r.Get("/{id}/subcategories", categoriesHandler.ListSubcategories)
		r.With(authMW).Post("/", categoriesHandler.Create)
		r.With(authMW).Post("/{id}/subcategories/suggest", categoriesHandler.Suggest)
	})

	r.Route("/artworks", func(r chi.Router) {
		r.Get("/", artworksHandler.List)
		r.With(authMW).Post("/", artworksHandler.Save)
		r.With(authMW).Post("/generate", artworksHandler.Generate)
		r.With(authMW).Delete("/{id}", artworksHandler.Delete)
	})

	r.Route("/moderation", func(r chi.Router) {
		r.Use(authMW, adminMW)
		r.Get("/flagged", moderationHandler.Flagged)
		r.Post("/{kind}/{id}/approve", moderationHandler.Approve)
	})

	r.With(authMW).Get("/notifications", notificationsHandler.List)
}
