// HTTP API - операции начисления/корректировки баллов и проверки промокодов
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/pharmakart/loyalty/internal/api"
	db "github.com/pharmakart/loyalty/internal/db"
	rabbit "github.com/pharmakart/loyalty/internal/external/rabbitmq"
	interf "github.com/pharmakart/loyalty/internal/interfaces"
	services "github.com/pharmakart/loyalty/internal/services"
	observ "github.com/pharmakart/loyalty/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("LOYALTY_PORT")
	if port == "" {
		panic("env LOYALTY_PORT is not set")
	}

	// tracing
	ctx := context.Background()
	shutdownTracer := observ.InitTracer(ctx)
	defer shutdownTracer()

	// database
	store, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	// справочник уровней и настроек
	ref, err := db.NewReferenceDB()
	if err != nil {
		panic(err)
	}

	// cache - без кэша работаем напрямую со справочником
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// notifications - best effort
	var notify interf.Notifier
	notify, err = rabbit.NewNotifyPublisher()
	if err != nil {
		logger.Error(err.Error())
		notify = nil
	}

	// services
	loyalty := services.NewLoyaltyService(logger, store, store, ref, cache, notify)
	promo := services.NewPromoService(logger, store, store)

	// api handlers
	handler := api.NewHandler(loyalty, promo, logger)
	srv := &http.Server{
		Handler:      api.MiddlewareLog()(otelhttp.NewHandler(handler, "loyalty-api")),
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
