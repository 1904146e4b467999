// Job - обработка изменений заказов
// RabbitMQ -> корректировка начисленных баллов, подтверждение в очередь ответов
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

	// rabbitmq
	reader, err := rabbit.NewEditsConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	store, err := db.NewLoyaltyDB(logger)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer store.Close()

	ref, err := db.NewReferenceDB()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// services
	serv := services.NewLoyaltyService(logger, store, store, ref, cache, nil)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("LOYALTY_EDITS_COUNT")
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

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.LoyaltyService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.EditsConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, ok := <-reader.Msg
			if !ok {
				return
			}

			event := &rabbit.OrderEditEvent{}
			err := json.Unmarshal(msg.Body, event)
			if err != nil {
				logger.Error("invalid order edit event", zap.Error(err))
				continue
			}

			result, err := serv.Adjust(ctx, event.AccountID, event.OrderID, event.OrderNumber, event.OldTotal, event.NewTotal)
			if err != nil {
				logger.Error("adjust",
					zap.String("order", event.OrderID),
					zap.Error(err),
				)
				_ = reader.Processed(ctx, event.OrderID, false, result)
				continue
			}
			err = reader.Processed(ctx, event.OrderID, true, result)
			if err != nil {
				logger.Error(err.Error())
				continue
			}
		}
	}
}
