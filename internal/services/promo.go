package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	interf "github.com/pharmakart/loyalty/internal/interfaces"
	model "github.com/pharmakart/loyalty/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PromoService struct {
	logger *zap.Logger
	offers interf.OfferStorage
	orders interf.OrderStorage
}

func NewPromoService(logger *zap.Logger, offers interf.OfferStorage, orders interf.OrderStorage) *PromoService {
	return &PromoService{logger, offers, orders}
}

// Подитог корзины, на который распространяется акция.
// 0 для ограниченной области = акция неприменима, а не бесплатная скидка.
func ScopeSubtotal(cart []model.CartLine, applicableTo model.Applicability, applicableIDs []string) float64 {
	var total float64
	switch applicableTo {
	case model.ApplyProduct:
		ids := idSet(applicableIDs)
		for _, line := range cart {
			if ids[line.ProductID] {
				total += line.Subtotal()
			}
		}
	case model.ApplyCategory:
		ids := idSet(applicableIDs)
		for _, line := range cart {
			if line.CategoryID != "" && ids[line.CategoryID] {
				total += line.Subtotal()
			}
		}
	default:
		for _, line := range cart {
			total += line.Subtotal()
		}
	}
	return total
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Проверка промокода. Последовательные проверки, каждая со своим сообщением,
// первая сработавшая завершает проверку. Отказ возвращается значением, не ошибкой.
func (p *PromoService) Validate(ctx context.Context, code string, orderTotal float64, cart []model.CartLine, userID, userType string) (model.ValidationResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return reject("Promo code is required"), nil
	}
	if orderTotal < 0 {
		return model.ValidationResult{}, fmt.Errorf("order total is negative: %w", model.ErrInvalidInput)
	}

	offer, err := p.offers.GetByCode(ctx, code)
	if errors.Is(err, model.ErrNotFound) {
		return reject("Invalid promo code"), nil
	}
	if err != nil {
		return model.ValidationResult{}, err
	}
	if !offer.IsActive {
		return reject("This promo code is no longer active"), nil
	}

	now := time.Now()
	if now.Before(offer.StartDate) {
		return reject("This promo code is not active yet"), nil
	}
	if now.After(offer.EndDate) {
		return reject("This promo code has expired"), nil
	}

	if offer.UsageLimit != nil && offer.UsedCount >= *offer.UsageLimit {
		return reject("This promo code has reached its usage limit"), nil
	}

	if offer.MinOrderAmount != nil && orderTotal < *offer.MinOrderAmount {
		return reject(fmt.Sprintf("Minimum order amount is $%.2f", *offer.MinOrderAmount)), nil
	}

	if offer.ApplicableTo == model.ApplyFirstOrder {
		count, err := p.orders.CountCompletedOrders(ctx, userID)
		if err != nil {
			return model.ValidationResult{}, err
		}
		if count > 0 {
			return reject("This promo code is only valid on your first order"), nil
		}
	}

	if offer.ApplicableTo == model.ApplyUserGroup && !contains(offer.UserGroups, userType) {
		return reject("This promo code is not available for your account"), nil
	}

	scopeAmount := ScopeSubtotal(cart, offer.ApplicableTo, offer.ApplicableIDs)
	if offer.ApplicableTo == model.ApplyProduct || offer.ApplicableTo == model.ApplyCategory {
		if scopeAmount <= 0 {
			return reject("This promo code does not apply to the items in your cart"), nil
		}
	}

	result := model.ValidationResult{
		Valid:        true,
		OfferID:      offer.UUID,
		DiscountType: offer.OfferType,
		ScopeAmount:  scopeAmount,
		Message:      "Promo code applied",
	}
	switch offer.OfferType {
	case model.OfferPercentage:
		discount := scopeAmount * offer.DiscountValue / 100
		if offer.MaxDiscount != nil && discount > *offer.MaxDiscount {
			discount = *offer.MaxDiscount
		}
		result.CalculatedDiscount = discount
	case model.OfferFlat:
		// плоская скидка не превышает подитог своей области
		result.CalculatedDiscount = math.Min(offer.DiscountValue, scopeAmount)
	case model.OfferFreeShipping:
		result.FreeShipping = true
	}
	return result, nil
}

// Распределение скидки по позициям пропорционально их доле в подитоге области.
// Остаток округления уходит в последнюю подходящую позицию, сумма долей
// сходится со скидкой копейка в копейку.
func ApportionDiscount(cart []model.CartLine, offer model.Offer, totalDiscount float64) map[string]float64 {
	shares := make(map[string]float64, len(cart))
	scopeAmount := ScopeSubtotal(cart, offer.ApplicableTo, offer.ApplicableIDs)

	var matched []int
	restricted := offer.ApplicableTo == model.ApplyProduct || offer.ApplicableTo == model.ApplyCategory
	ids := idSet(offer.ApplicableIDs)
	for i, line := range cart {
		shares[line.ProductID] = 0
		if !restricted ||
			(offer.ApplicableTo == model.ApplyProduct && ids[line.ProductID]) ||
			(offer.ApplicableTo == model.ApplyCategory && line.CategoryID != "" && ids[line.CategoryID]) {
			matched = append(matched, i)
		}
	}
	if len(matched) == 0 || scopeAmount <= 0 || totalDiscount <= 0 {
		return shares
	}

	var distributed float64
	for n, i := range matched {
		line := cart[i]
		if n == len(matched)-1 {
			shares[line.ProductID] += roundCents(totalDiscount - distributed)
			break
		}
		amount := roundCents(totalDiscount * line.Subtotal() / scopeAmount)
		shares[line.ProductID] += amount
		distributed += amount
	}
	return shares
}

func (p *PromoService) OfferByCode(ctx context.Context, code string) (model.Offer, error) {
	return p.offers.GetByCode(ctx, strings.TrimSpace(code))
}

// Фиксация применения промокода после размещения заказа.
// Не идемпотентно: каждый вызов - одно использование.
func (p *PromoService) Commit(ctx context.Context, offerID uuid.UUID, discount float64) (bool, error) {
	ok, err := p.offers.CommitUsage(ctx, offerID, discount)
	if err != nil {
		return false, err
	}
	if !ok {
		p.logger.Warn("promo usage limit reached at commit",
			zap.String("offer", offerID.String()),
		)
	}
	return ok, nil
}

func reject(message string) model.ValidationResult {
	return model.ValidationResult{Valid: false, Message: message}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
