package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain/services"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/data"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/queries/get_product"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/queries/list_menu"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/checkout"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/clear_cart"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/commit_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/configure_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/create_session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/decrement_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/increment_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/remove_item"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/select_product"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/set_search"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/toggle_cart"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/config"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/clock"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/handoff"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/logging"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/transport/http/storefront"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.App.Debug)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received")
		cancel()
	}()

	logger.Info("starting", zap.String("app", cfg.App.Name), zap.Bool("debug", cfg.App.Debug))

	menu, err := data.Load(cfg.Catalog.BeverageCategory)
	if err != nil {
		logger.Fatal("load menu", zap.Error(err))
	}
	logger.Info("menu loaded",
		zap.Int("categories", len(menu.Categories())),
		zap.Int("products", len(menu.Products())),
		zap.Int("add_ons", len(menu.AddOns())),
	)

	store := session.NewStore(clock.RealClock{}, cfg.Session.TTL)
	reducer := session.NewReducer(menu)
	formatter := services.NewOrderFormatter(cfg.Order.Title, cfg.Order.Closing)
	link := handoff.NewWhatsApp(cfg.Handoff.BaseURL, cfg.Handoff.Phone)

	// CQRS wiring
	cmds := storefront.Commands{
		CreateSession: create_session.NewInteractor(store),
		SetSearch:     set_search.NewInteractor(store, reducer),
		SelectProduct: select_product.NewInteractor(store, reducer),
		Configure:     configure_item.NewInteractor(store, reducer),
		Commit:        commit_item.NewInteractor(store, reducer),
		Increment:     increment_item.NewInteractor(store, reducer),
		Decrement:     decrement_item.NewInteractor(store, reducer),
		Remove:        remove_item.NewInteractor(store, reducer),
		Clear:         clear_cart.NewInteractor(store, reducer),
		ToggleCart:    toggle_cart.NewInteractor(store, reducer),
		Checkout:      checkout.NewInteractor(store, formatter, link, logger, cfg.Order.ClearOnCheckout),
	}
	qrys := storefront.Queries{
		Product:  get_product.NewHandler(menu),
		Menu:     list_menu.NewHandler(menu),
		Sessions: store,
	}
	h := storefront.NewHandler(cmds, qrys, logger)

	go sweepSessions(ctx, store, cfg.Session.SweepInterval, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      storefront.NewRouter(h, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown timed out", zap.Error(err))
		_ = srv.Close()
	}

	logger.Info("server stopped")
}

// sweepSessions drops expired sessions every interval until ctx is done.
func sweepSessions(ctx context.Context, store *session.Store, interval time.Duration, logger *zap.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := store.Sweep(); n > 0 {
				logger.Debug("expired sessions dropped", zap.Int("count", n), zap.Int("remaining", store.Len()))
			}
		}
	}
}
