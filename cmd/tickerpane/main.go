package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"TickerPane/internal/api"
	"TickerPane/internal/api/handler"
	"TickerPane/internal/collector"
	"TickerPane/internal/config"
	"TickerPane/internal/notifier"
	"TickerPane/internal/prefs"
	"TickerPane/internal/scheduler"
	"TickerPane/internal/search"
	"TickerPane/internal/store"
	"TickerPane/internal/widget"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TickerPane starting...")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Preferences
	st := store.OpenOrMemory(cfg.Store.Backend, cfg.StorePath())
	defer st.Close()
	favorites := prefs.NewFavorites(st)
	keys := prefs.NewKeyStore(st)

	// Data sources
	httpClient := collector.NewHTTPClient(cfg.Proxy, cfg.DataSource.Timeout)
	transport := collector.NewTransport(httpClient, cfg.DataSource.RelayURL)
	history := collector.NewStooqFetcher(cfg.DataSource.HistoryURL, transport)
	metadata := collector.NewFMPClient(
		collector.WithBaseURL(cfg.DataSource.MetadataURL),
		collector.WithTransport(transport),
	)
	col := collector.NewCollector(history, metadata, keys)
	log.Printf("[INFO] data sources: %s, %s", history.Name(), metadata.Name())

	w := widget.New(col, favorites, keys, cfg.Widget.DefaultSymbol)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial symbol: first argument, then INITIAL_SYMBOL, then the default.
	initial := cfg.Widget.DefaultSymbol
	if v := os.Getenv("INITIAL_SYMBOL"); v != "" {
		initial = v
	}
	if len(os.Args) > 1 && os.Args[1] != "" {
		initial = os.Args[1]
	}
	go func() {
		if _, err := w.Load(ctx, initial); err != nil {
			log.Printf("[WARN] initial load of %q: %s", initial, widget.StatusMessage(err))
		}
	}()

	// Scheduler
	sched := scheduler.NewScheduler(ctx, w)
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Telegram
	if cfg.TelegramEnabled() {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		go tn.StartPolling(ctx, w.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// HTTP API
	gin.SetMode(gin.ReleaseMode)
	hd := handler.NewHandler(w, search.NewSessions(cfg.Widget.Debounce))
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(hd, cfg.Server.RequestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("[INFO] HTTP API listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] TickerPane is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] TickerPane stopped")
}
