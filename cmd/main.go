package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-identity/docs"
	"github.com/sbilibin2017/gw-identity/internal/config"
	"github.com/sbilibin2017/gw-identity/internal/facades"
	"github.com/sbilibin2017/gw-identity/internal/handlers"
	"github.com/sbilibin2017/gw-identity/internal/jwt"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/repositories"
	"github.com/sbilibin2017/gw-identity/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// healthCheckInterval is how often store readiness is reported to the gRPC health service.
const healthCheckInterval = 10 * time.Second

// @title gw-identity API
// @version 1.0
// @description Identity and credential service: signup with email verification, password and OAuth sign-in, token refresh.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newTokens loads the signing key of every token kind.
func newTokens(cfg *config.Config) (*jwt.JWT, error) {
	kinds := []struct {
		kind jwt.Kind
		tc   config.TokenConfig
	}{
		{jwt.KindAccess, cfg.AccessToken},
		{jwt.KindRefresh, cfg.RefreshToken},
		{jwt.KindEmailVerification, cfg.EmailVerificationToken},
	}

	opts := make([]jwt.Opt, 0, len(kinds))
	for _, k := range kinds {
		key, err := jwt.LoadKey(k.tc.Algorithm, k.tc.Secret, k.tc.PrivateKeyFile, k.tc.PublicKeyFile, k.tc.TTL)
		if err != nil {
			return nil, fmt.Errorf("%s token key: %w", k.kind, err)
		}
		opts = append(opts, jwt.WithKey(k.kind, key))
	}
	return jwt.New(opts...), nil
}

// newProviders builds clients for the providers that have credentials configured.
func newProviders(cfg *config.Config) map[models.Provider]services.OAuthProvider {
	client := &http.Client{Timeout: cfg.ProviderTimeout}

	providers := make(map[models.Provider]services.OAuthProvider, 3)
	if cfg.Google.Enabled() {
		providers[models.ProviderGoogle] = facades.NewGoogleProvider(cfg.Google, client)
	}
	if cfg.Kakao.Enabled() {
		providers[models.ProviderKakao] = facades.NewKakaoProvider(cfg.Kakao, client)
	}
	if cfg.Naver.Enabled() {
		providers[models.ProviderNaver] = facades.NewNaverProvider(cfg.Naver, client)
	}
	return providers
}

// newRouter mounts the HTTP adapter of the identity service.
func newRouter(identity *services.IdentityService, tokener middlewares.Tokener, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/auth/local", func(r chi.Router) {
		r.Post("/signup", handlers.NewSignupHandler(identity))
		r.Post("/resend", handlers.NewResendHandler(identity))
		r.Get("/verify", handlers.NewVerifyHandler(identity))
		r.Post("/signin", handlers.NewSignInHandler(identity))
	})

	r.Route("/auth/oauth/{provider}", func(r chi.Router) {
		r.Get("/url", handlers.NewAuthorizationURLHandler(identity))
		r.Get("/callback", handlers.NewOAuthCallbackHandler(identity))
		r.Post("/token", handlers.NewOAuthTokenHandler(identity))
	})

	r.Get("/issue", handlers.NewIssueHandler(identity))
	r.Post("/token/refresh", handlers.NewRefreshHandler(identity))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Delete("/users/me", handlers.NewDeleteUserHandler(identity))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// watchStore reports store readiness to the gRPC health service until ctx ends.
func watchStore(ctx context.Context, db *sqlx.DB, rdb redis.Cmdable, hs *health.Server) {
	check := func() {
		status := healthpb.HealthCheckResponse_SERVING
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			logger.Log.Warnw("postgres not ready", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		} else if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Log.Warnw("redis not ready", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		hs.SetServingStatus("", status)
	}

	check()
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

// run initializes the logger, Postgres, Redis, Kafka, the gRPC health server
// and the HTTP server. It blocks until ctx is cancelled or a signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.Development); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(ctx, db.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connect: %w", err)
	}

	// Kafka
	mailer := facades.NewKafkaMailDispatcher(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
		Topic:                  cfg.Kafka.MailTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
	defer mailer.Close()

	tokens, err := newTokens(cfg)
	if err != nil {
		return err
	}

	// Repositories
	txManager := repositories.NewTxManager(db, cfg.StoreTxRetries)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	pendingReadRepo := repositories.NewPendingReadRepository(db)
	pendingWriteRepo := repositories.NewPendingWriteRepository(db)
	oauthAccountRepo := repositories.NewOAuthAccountRepository(db)
	issueCodeRepo := repositories.NewIssueCodeRepository(rdb, cfg.IssueCodeTTL)

	// Services
	hasher := services.NewBcryptHasher(0)
	pendingService := services.NewPendingRegistrationService(
		txManager, userReadRepo, userWriteRepo, pendingReadRepo, pendingWriteRepo, hasher, tokens,
		services.PendingOptions{
			ResendMinDelay:    cfg.Registration.ResendMinDelay,
			ResendMaxAttempts: cfg.Registration.ResendMaxAttempts,
		},
	)
	linker := services.NewOAuthLinker(txManager, userWriteRepo, oauthAccountRepo)
	providers := newProviders(cfg)
	identityService := services.NewIdentityService(
		pendingService, linker, userReadRepo, userWriteRepo, hasher, tokens, issueCodeRepo, mailer, providers,
		services.IdentityOptions{
			LocalSignup:     cfg.Status.LocalSignup,
			LocalSignin:     cfg.Status.LocalSignin,
			ConfirmEmailURL: cfg.Registration.ConfirmEmailURL,
			ProviderTimeout: cfg.ProviderTimeout,
		},
	)
	logger.Log.Infow("identity service ready",
		"providers", len(providers),
		"local_signup", cfg.Status.LocalSignup,
		"local_signin", cfg.Status.LocalSignin,
	)

	// HTTP
	addr := net.JoinHostPort(cfg.App.Host, cfg.App.Port)
	docs.SwaggerInfo.Host = addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(identityService, tokens, fmt.Sprintf("http://%s/swagger/doc.json", addr)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC health
	grpcListener, err := net.Listen("tcp", net.JoinHostPort(cfg.App.Host, cfg.App.GRPCPort))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	go watchStore(ctx, db, rdb, healthServer)

	errChan := make(chan error, 2)

	go func() {
		logger.Log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcListener.Addr())
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}
