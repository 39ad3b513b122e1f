package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mbolis/survey-editor/app"
	"github.com/mbolis/survey-editor/config"
	"github.com/mbolis/survey-editor/database"
	"github.com/mbolis/survey-editor/gql"
	"github.com/mbolis/survey-editor/gqlclient"
	"github.com/mbolis/survey-editor/httpx"
	"github.com/mbolis/survey-editor/log"
	"github.com/mbolis/survey-editor/metrics"
	"github.com/mbolis/survey-editor/routes"
	"github.com/mbolis/survey-editor/session"
	"github.com/mbolis/survey-editor/views"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	credentials := httpx.NewCredentials(db, cfg.RefreshTTL)
	if purged, err := credentials.PurgeExpired(context.Background()); err != nil {
		log.Warn("main.db.purge_tokens:", err)
	} else if purged > 0 {
		log.Debugf("main.db.purge_tokens: %d expired refresh tokens", purged)
	}
	if username, password, ok := cfg.BootstrapCredentials(); ok {
		err = credentials.UpsertUser(context.Background(), username, username, password)
		if err != nil {
			log.Fatal("main.bootstrap_user:", err)
		}
		log.Infof("bootstrap user %q ready", username)
	}

	registry, err := gql.Default()
	if err != nil {
		log.Fatal("main.graphql.registry:", err)
	}
	log.Infof("GraphQL operations: %s", strings.Join(gql.Names(gql.Operations...), ", "))

	promRegistry := prometheus.NewRegistry()
	m := metrics.New(promRegistry)

	pages, err := views.New()
	if err != nil {
		log.Fatal("main.views:", err)
	}

	app := app.App{
		DB:          db,
		Config:      cfg,
		Tokens:      session.NewIssuer(cfg.TokenSecret, cfg.TokenTTL),
		Credentials: credentials,
		Sessions:    session.JWTResolver{},
		GraphQL: gqlclient.New(cfg.GraphQLUrl, registry,
			gqlclient.WithTimeout(cfg.GraphQLTimeout),
			gqlclient.WithMetrics(m),
		),
		Views:   pages,
		Metrics: m,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		sig := <-quit
		log.WithFields(log.Fields{"signal": sig.String()}).Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("main.server.shutdown:", err)
		}
	}()

	log.Info("Listening on " + cfg.Url())
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-drained
	}
	return err
}
