package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raushankrgupta/skincare-storefront/api"
	"github.com/raushankrgupta/skincare-storefront/checkout"
	"github.com/raushankrgupta/skincare-storefront/config"
	"github.com/raushankrgupta/skincare-storefront/events"
	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/notify"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/raushankrgupta/skincare-storefront/stores/auth"
	"github.com/raushankrgupta/skincare-storefront/upload"
	"github.com/raushankrgupta/skincare-storefront/utils"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	logx.Init(logx.LoggerOpts{Environment: config.Env})

	ctx := context.Background()
	cfg := config.Current

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open storage")
	}
	defer closeStore()

	sink, err := openSink(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("sink", cfg.UploadSink).Msg("failed to open upload sink")
	}
	uploads := upload.NewService(sink)

	// Checkout posts proofs to a separate upload service when one is configured.
	var uploader upload.Uploader = uploads
	if cfg.UploadEndpoint != "" {
		uploader = upload.NewClient(cfg.UploadEndpoint)
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
	}

	var matcher auth.PasswordMatcher = auth.PlainMatcher{}
	if cfg.AuthHashPasswords {
		matcher = auth.BcryptMatcher{Cost: bcrypt.DefaultCost}
	}

	sessions := session.NewManager(store, session.Options{
		AuthDelay:         config.Duration(cfg.AuthDelay, auth.DefaultDelay),
		Matcher:           matcher,
		StrictTransitions: cfg.OrderStrictTransitions,
		Publisher:         publisher,
	})

	evictCtx, stopEviction := context.WithCancel(ctx)
	defer stopEviction()
	idle := config.Duration(cfg.SessionIdleTimeout, 2*time.Hour)
	go sessions.RunEviction(evictCtx, idle, idle/4)

	mailer := &notify.Mailer{
		APIKey:    cfg.SendGridAPIKey,
		FromName:  cfg.MailFromName,
		FromEmail: cfg.MailFromEmail,
	}
	checkouts := checkout.NewService(uploader,
		checkout.WithMailer(mailer),
		checkout.WithPaymentWindow(config.Duration(cfg.PaymentWindow, checkout.DefaultPaymentTime)),
	)

	h := &api.Handler{
		Sessions:   sessions,
		Checkout:   checkouts,
		Uploads:    uploads,
		SessionTTL: config.Duration(cfg.SessionTTL, 30*24*time.Hour),
	}
	if cfg.UploadSink == "local" {
		h.UploadDir = cfg.UploadDir
	}

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           api.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().Str("port", config.Port).Str("storage", cfg.StorageBackend).Msg("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	}
	logx.Info().Msg("storefront stopped")
}

// openStorage selects the persisted storage backend and returns its cleanup.
func openStorage(ctx context.Context, cfg config.Config) (storage.Storage, func(), error) {
	switch cfg.StorageBackend {
	case "memory", "":
		return storage.NewMemoryStorage(), func() {}, nil

	case "redis":
		rc := &storage.RedisConfig{
			URL:          cfg.RedisURL,
			ReadTimeout:  cfg.RedisReadTimeout,
			WriteTimeout: cfg.RedisWriteTimeout,
			DialTimeout:  cfg.RedisDialTimeout,
		}
		rdb, err := rc.New()
		if err != nil {
			return nil, nil, err
		}
		ttl := config.Duration(cfg.RedisTTL, 0)
		return storage.NewRedisStorage(rdb, ttl), func() { rdb.Close() }, nil

	case "mongo":
		if err := utils.ConnectMongo(cfg.MongoURI); err != nil {
			return nil, nil, err
		}
		coll, err := utils.GetCollection(cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewMongoStorage(coll), func() {
			dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			utils.DisconnectMongo(dctx)
		}, nil

	case "sqlite":
		db, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func openSink(ctx context.Context, cfg config.Config) (upload.Sink, error) {
	switch cfg.UploadSink {
	case "local", "":
		return upload.NewLocalSink(cfg.UploadDir), nil
	case "s3":
		return upload.NewS3Sink(ctx, cfg.AWSRegion, cfg.AWSBucketName)
	}
	return nil, fmt.Errorf("unknown upload sink %q", cfg.UploadSink)
}
