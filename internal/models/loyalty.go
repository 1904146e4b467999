package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrConfiguration = errors.New("configuration error")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("concurrent update conflict")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrPersistence   = errors.New("persistence error")
)

// Вид записи в леджере
type EntryKind string

const (
	KindEarn   EntryKind = "earn"
	KindAdjust EntryKind = "adjust"
	KindRedeem EntryKind = "redeem"
)

// Тип ссылки на документ-основание
type ReferenceType string

const (
	RefOrder      ReferenceType = "order"
	RefOrderEdit  ReferenceType = "order_edit"
	RefRedemption ReferenceType = "redemption"
)

// Счет баллов
type Account struct {
	UUID      uuid.UUID `json:"uuid"`
	UserID    string    `json:"userId"` // внешний ID пользователя
	Spendable int64     `json:"spendablePoints"`
	Lifetime  int64     `json:"lifetimePoints"` // только растет
	TierName  string    `json:"tierName"`       // денормализованный кэш уровня
	Version   int64     `json:"-"`              // оптимистическая блокировка
}

// Уровень лояльности
type Tier struct {
	Name       string   `bson:"name" json:"name"`
	MinPoints  int64    `bson:"minpoints" json:"minPoints"`
	Multiplier float64  `bson:"multiplier" json:"multiplier"`
	Benefits   []string `bson:"benefits" json:"benefits"`
}

// Настройки программы лояльности
type ProgramConfig struct {
	Enabled       bool    `bson:"enabled" json:"enabled"`
	PointsPerUnit float64 `bson:"points_per_unit" json:"pointsPerUnit"`
}

// Запись леджера, append-only
type LedgerEntry struct {
	UUID          uuid.UUID     `json:"uuid"`
	Account       uuid.UUID     `json:"account"`
	Points        int64         `json:"points"` // положительное - начисление, отрицательное - уменьшение
	Kind          EntryKind     `json:"kind"`
	Description   string        `json:"description"`
	ReferenceType ReferenceType `json:"referenceType"`
	ReferenceID   string        `json:"referenceId"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Обновление счета с проверкой версии
type AccountUpdate struct {
	UUID      uuid.UUID
	Spendable int64
	Lifetime  int64
	TierName  string
	Version   int64 // ожидаемая версия строки
}

type AwardResult struct {
	Success          bool   `json:"success"`
	Earned           int64  `json:"earned"`
	NewBalance       int64  `json:"newBalance"`
	OldTier          string `json:"oldTier,omitempty"`
	NewTier          string `json:"newTier,omitempty"`
	NextTier         string `json:"nextTier,omitempty"`
	PointsToNextTier int64  `json:"pointsToNextTier,omitempty"`
	TierUpgrade      bool   `json:"tierUpgrade"`
	Reason           string `json:"reason,omitempty"`
}

type AdjustmentType string

const (
	AdjustIncrease AdjustmentType = "increase"
	AdjustDecrease AdjustmentType = "decrease"
	AdjustNone     AdjustmentType = "none"
)

type AdjustResult struct {
	PointsAdjusted int64          `json:"pointsAdjusted"`
	AdjustmentType AdjustmentType `json:"adjustmentType"`
}

// Уведомление, доставка не гарантируется
type Notification struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
