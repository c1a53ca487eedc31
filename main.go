package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medstore/config"
	"medstore/controllers"
	"medstore/middleware"
	"medstore/models"
	"medstore/routes"
	"medstore/services"
	"medstore/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()
	closers := make([]func() error, 0, 3)
	defer func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				logger.Warn("close error", slog.String("error", err.Error()))
			}
		}
	}()

	client, st, err := config.ConnectDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	closers = append(closers, func() error { return client.Disconnect(context.Background()) })

	svc := services.New(st,
		services.WithLogger(logger),
		services.WithMetrics(services.NewMetrics(prometheus.DefaultRegisterer)))

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := svc.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
	}

	var denylist utils.TokenDenylist = utils.NewMemoryDenylist()
	if cfg.RedisAddr != "" {
		redisDenylist := utils.NewRedisDenylist(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisDenylist.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, revoked tokens are kept in memory", slog.String("error", err.Error()))
		} else {
			denylist = redisDenylist
			closers = append(closers, redisDenylist.Close)
			logger.Info("token denylist: redis")
		}
	}

	var uploader controllers.Uploader
	if cfg.S3Enabled() {
		storage, err := utils.NewMinioStorage(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
		if err != nil {
			return err
		}
		uploader = utils.NewPrescriptionUploader(storage, cfg.PublicBaseURL())
	} else {
		logger.Info("prescription uploads disabled, S3 is not configured")
	}

	if cfg.AlertsEnabled() {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		mailer := utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
		scheduler, err := utils.StartDailyJob(loc, cfg.AlertTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := svc.SendAlertDigest(jobCtx, mailer, cfg.AlertRecipients); err != nil {
				logger.Error("alert digest failed", slog.String("error", err.Error()))
			}
		})
		if err != nil {
			return err
		}
		closers = append(closers, func() error { scheduler.Stop(); return nil })
		logger.Info("alert digest scheduled", slog.String("at", cfg.AlertTime), slog.String("timezone", cfg.Timezone))
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	h := controllers.New(controllers.Deps{
		Service:      svc,
		Tokens:       tokens,
		Denylist:     denylist,
		Uploader:     uploader,
		QueryTimeout: cfg.QueryTimeout,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMiddleware(middleware.InitMetrics(prometheus.DefaultRegisterer)))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	routes.InitializeRoutes(r, h,
		middleware.AuthMiddleware(tokens, denylist),
		middleware.AuthMiddleware(tokens, denylist, string(models.RoleAdmin)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("medstore listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case s := <-sig:
		logger.Info("shutting down", slog.String("signal", s.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
