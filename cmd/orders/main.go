// Job - обработка завершенных заказов
// Опрос Kafka -> начисление баллов по заказу
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/pharmakart/loyalty/internal/db"
	kafka "github.com/pharmakart/loyalty/internal/external/kafka"
	rabbit "github.com/pharmakart/loyalty/internal/external/rabbitmq"
	interf "github.com/pharmakart/loyalty/internal/interfaces"
	services "github.com/pharmakart/loyalty/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.NewOrderReader("orders")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

	// database
	store, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	ref, err := db.NewReferenceDB()
	if err != nil {
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// notifications
	var notify interf.Notifier
	notify, err = rabbit.NewNotifyPublisher()
	if err != nil {
		logger.Error(err.Error())
		notify = nil
	}

	// services
	serv := services.NewLoyaltyService(logger, store, store, ref, cache, notify)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("LOYALTY_ORDERS_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			order, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				return
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(order string) {
				defer wg.Done()
				defer func() { <-semaphore }()

				event := &kafka.OrderEvent{}
				err := json.Unmarshal([]byte(order), event)
				if err != nil {
					logger.Error("invalid order event", zap.Error(err))
					return
				}
				_, err = serv.Award(ctx, event.AccountID, event.OrderID, event.OrderNumber, event.OrderTotal)
				if err != nil {
					logger.Error("award",
						zap.String("order", event.OrderID),
						zap.Error(err),
					)
					return
				}
			}(order)
		}
	}
	wg.Wait()
}
