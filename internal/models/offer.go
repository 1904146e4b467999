package models

import (
	"time"

	"github.com/google/uuid"
)

// Тип скидки
type OfferType string

const (
	OfferPercentage   OfferType = "percentage"
	OfferFlat         OfferType = "flat"
	OfferFreeShipping OfferType = "free_shipping"
)

// Область действия акции
type Applicability string

const (
	ApplyAll        Applicability = "all"
	ApplyFirstOrder Applicability = "first_order"
	ApplyUserGroup  Applicability = "user_group"
	ApplyProduct    Applicability = "product"
	ApplyCategory   Applicability = "category"
)

// Акция / промокод
type Offer struct {
	UUID           uuid.UUID     `json:"uuid"`
	PromoCode      string        `json:"promoCode"` // пустой код - акция применяется автоматически
	OfferType      OfferType     `json:"offerType"`
	DiscountValue  float64       `json:"discountValue"`
	MaxDiscount    *float64      `json:"maxDiscountAmount,omitempty"`
	MinOrderAmount *float64      `json:"minOrderAmount,omitempty"`
	UsageLimit     *int64        `json:"usageLimit,omitempty"`
	UsedCount      int64         `json:"usedCount"`
	IsActive       bool          `json:"isActive"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        time.Time     `json:"endDate"`
	ApplicableTo   Applicability `json:"applicableTo"`
	ApplicableIDs  []string      `json:"applicableIds,omitempty"` // продукты или категории, зависит от ApplicableTo
	UserGroups     []string      `json:"userGroups,omitempty"`
	TotalDiscount  float64       `json:"totalDiscount"` // накопленная сумма скидок
	TotalOrders    int64         `json:"totalOrders"`
}

// Позиция корзины, не персистится
type CartLine struct {
	ProductID  string  `json:"productId"`
	CategoryID string  `json:"categoryId,omitempty"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int64   `json:"quantity"`
}

func (c CartLine) Subtotal() float64 {
	return c.UnitPrice * float64(c.Quantity)
}

// Результат проверки промокода. Отказ по бизнес-правилу - не ошибка,
// Message показывается пользователю как есть.
type ValidationResult struct {
	Valid              bool      `json:"valid"`
	OfferID            uuid.UUID `json:"offerId,omitempty"`
	DiscountType       OfferType `json:"discountType,omitempty"`
	CalculatedDiscount float64   `json:"calculatedDiscount"`
	ScopeAmount        float64   `json:"scopeAmount"`
	FreeShipping       bool      `json:"freeShipping"`
	Message            string    `json:"message"`
}
