package interfaces

import (
	"context"
	"time"

	model "github.com/pharmakart/loyalty/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_loyalty_test.go -package=services . AccountStorage,LedgerStorage,ReferenceStorage,CacheStorage,OfferStorage,OrderStorage,Notifier

type AccountStorage interface {
	GetAccount(ctx context.Context, userID string) (model.Account, error)
	// Атомарное обновление счета + запись начисления, с защитой от двойного начисления по заказу
	ApplyAward(ctx context.Context, upd model.AccountUpdate, entry model.LedgerEntry) error
	// Атомарное обновление счета + запись корректировки
	ApplyAdjustment(ctx context.Context, upd model.AccountUpdate, entry model.LedgerEntry) error
}

type LedgerStorage interface {
	GetEarnEntry(ctx context.Context, orderID string) (model.LedgerEntry, error)
	GetEntries(ctx context.Context, userID string, from time.Time, to time.Time) ([]model.LedgerEntry, error)
}

type ReferenceStorage interface {
	GetTiers(ctx context.Context) ([]model.Tier, error)
	GetConfig(ctx context.Context) (model.ProgramConfig, error)
}

type CacheStorage interface {
	GetTiers(ctx context.Context) ([]model.Tier, error)
	SetTiers(ctx context.Context, tiers []model.Tier) error
	InvalidateTiers(ctx context.Context) error
}

type OfferStorage interface {
	GetByCode(ctx context.Context, code string) (model.Offer, error)
	// Условный инкремент счетчиков, false - лимит использований исчерпан
	CommitUsage(ctx context.Context, offerID uuid.UUID, discount float64) (bool, error)
}

type OrderStorage interface {
	CountCompletedOrders(ctx context.Context, userID string) (int64, error)
}

type Notifier interface {
	Send(ctx context.Context, msg model.Notification) error
}
