package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Ihebmsaed/Artygen/internal/ai"
	"github.com/Ihebmsaed/Artygen/internal/ai/gemini"
	"github.com/Ihebmsaed/Artygen/internal/ai/hugging"
	"github.com/Ihebmsaed/Artygen/internal/config"
	"github.com/Ihebmsaed/Artygen/internal/infra/httpclient"
	s3infra "github.com/Ihebmsaed/Artygen/internal/infra/s3"
	pgrepo "github.com/Ihebmsaed/Artygen/internal/repo/postgres"
	redrepo "github.com/Ihebmsaed/Artygen/internal/repo/redis"
	analysissvc "github.com/Ihebmsaed/Artygen/internal/services/analysis"
	artworksvc "github.com/Ihebmsaed/Artygen/internal/services/artworks"
	authsvc "github.com/Ihebmsaed/Artygen/internal/services/auth"
	categorysvc "github.com/Ihebmsaed/Artygen/internal/services/categories"
	commentsvc "github.com/Ihebmsaed/Artygen/internal/services/comments"
	eventsvc "github.com/Ihebmsaed/Artygen/internal/services/events"
	mediasvc "github.com/Ihebmsaed/Artygen/internal/services/media"
	modsvc "github.com/Ihebmsaed/Artygen/internal/services/moderation"
	postsvc "github.com/Ihebmsaed/Artygen/internal/services/posts"
	profilesvc "github.com/Ihebmsaed/Artygen/internal/services/profiles"
	ratesvc "github.com/Ihebmsaed/Artygen/internal/services/rate"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	httpRouter http.Handler
}

// New wires the whole application. Missing infrastructure (database,
// object storage, AI credentials) is logged and the app starts in a
// degraded mode instead of refusing to boot.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	sessionRepo := redrepo.NewSessionRepo(redisClient)
	rateRepo := redrepo.NewRateRepo(redisClient)

	userRepo := pgrepo.NewUserRepo(pool)
	profileRepo := pgrepo.NewProfileRepo(pool)
	postRepo := pgrepo.NewPostRepo(pool)
	commentRepo := pgrepo.NewCommentRepo(pool)
	eventRepo := pgrepo.NewEventRepo(pool)
	categoryRepo := pgrepo.NewCategoryRepo(pool)
	artworkRepo := pgrepo.NewArtworkRepo(pool)
	notificationRepo := pgrepo.NewNotificationRepo(pool)

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, continuing in degraded mode", zap.Error(err))
	} else {
		s3Client = c
	}
	mediaStorage := mediasvc.NewS3Storage(s3Client, cfg.S3.Bucket)

	aiHTTPClient := httpclient.New(cfg.AI.Timeout)

	var textGen ai.TextGenerator = ai.DisabledGateway{}
	if gc, err := gemini.NewClient(aiHTTPClient, gemini.Config{
		BaseURL: cfg.AI.GeminiBaseURL,
		Model:   cfg.AI.GeminiModel,
		APIKey:  cfg.AI.GeminiAPIKey,
		Params: gemini.GenerationConfig{
			Temperature:     cfg.AI.Temperature,
			TopP:            cfg.AI.TopP,
			TopK:            cfg.AI.TopK,
			MaxOutputTokens: cfg.AI.MaxOutputTokens,
		},
	}); err != nil {
		log.Warn("text gateway disabled", zap.Error(err))
	} else {
		textGen = gc
	}

	var imageGen ai.ImageGenerator = ai.DisabledGateway{}
	if hc, err := hugging.NewClient(aiHTTPClient, hugging.Config{
		ModelURL: cfg.AI.HFModelURL,
		Token:    cfg.AI.HFToken,
	}); err != nil {
		log.Warn("image gateway disabled", zap.Error(err))
	} else {
		imageGen = hc
	}

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	authService := authsvc.NewService(jwtManager, sessionRepo, userRepo, cfg.Auth.RefreshTTL)

	analysisService := analysissvc.NewService(textGen, cfg.AI.ModerationFailOpen, log)
	rateLimiter := ratesvc.NewLimiter(rateRepo, cfg.AI.GeneratePerMinute, cfg.AI.GeneratePer10Sec)

	profileService := profilesvc.NewService(profileRepo, userRepo, textGen, log)
	postService := postsvc.NewService(postRepo, analysisService, textGen, notificationRepo, log)
	commentService := commentsvc.NewService(commentRepo, postRepo, analysisService, log)
	eventService := eventsvc.NewService(eventRepo, textGen, log)
	categoryService := categorysvc.NewService(categoryRepo, textGen, log)
	artworkService := artworksvc.NewService(artworkRepo, imageGen, mediaStorage, rateLimiter, log)
	artworkService.AttachCategories(categoryRepo)
	moderationService := modsvc.NewService(postRepo, commentRepo, log)

	RegisterRoutes(r, Dependencies{
		AuthService:       authService,
		ProfileService:    profileService,
		PostService:       postService,
		CommentService:    commentService,
		EventService:      eventService,
		CategoryService:   categoryService,
		ArtworkService:    artworkService,
		ModerationService: moderationService,
		NotificationRepo:  notificationRepo,
		Logger:            log,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
