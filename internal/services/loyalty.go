package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/pharmakart/loyalty/internal/interfaces"
	model "github.com/pharmakart/loyalty/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type LoyaltyService struct {
	logger   *zap.Logger
	accounts interf.AccountStorage
	ledger   interf.LedgerStorage
	ref      interf.ReferenceStorage
	cache    interf.CacheStorage
	notify   interf.Notifier
}

func NewLoyaltyService(logger *zap.Logger, accounts interf.AccountStorage, ledger interf.LedgerStorage, ref interf.ReferenceStorage, cache interf.CacheStorage, notify interf.Notifier) *LoyaltyService {
	return &LoyaltyService{logger, accounts, ledger, ref, cache, notify}
}

// Уровни: сначала кэш, потом справочник
func (s *LoyaltyService) Tiers(ctx context.Context) (tiers []model.Tier, err error) {
	if s.cache != nil {
		tiers, err = s.cache.GetTiers(ctx)
		if err == nil {
			return tiers, nil
		}
	}
	tiers, err = s.ref.GetTiers(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		err = s.cache.SetTiers(ctx, tiers)
		if err != nil {
			s.logger.Error("tiers cache set", zap.Error(err))
		}
	}
	return tiers, nil
}

// Начисление баллов за завершенный заказ.
// Идемпотентно по orderId: повторный вызов не создает вторую запись начисления.
func (s *LoyaltyService) Award(ctx context.Context, accountID, orderID, orderNumber string, orderTotal float64) (model.AwardResult, error) {
	if orderTotal < 0 {
		return model.AwardResult{}, fmt.Errorf("order total is negative: %w", model.ErrInvalidInput)
	}

	var cfg model.ProgramConfig
	var tiers []model.Tier
	var account model.Account

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cfg, err = s.ref.GetConfig(gctx)
		return err
	})
	g.Go(func() (err error) {
		tiers, err = s.Tiers(gctx)
		return err
	})
	g.Go(func() (err error) {
		account, err = s.accounts.GetAccount(gctx, accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.AwardResult{}, err
	}

	// программа выключена - не ошибка
	if !cfg.Enabled {
		return model.AwardResult{Reason: "loyalty program is disabled"}, nil
	}

	// баллы по заказу уже начислялись
	_, err := s.ledger.GetEarnEntry(ctx, orderID)
	if err == nil {
		return model.AwardResult{Reason: "points already awarded for this order"}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.AwardResult{}, err
	}

	result, err := s.award(ctx, account, orderID, orderNumber, orderTotal, cfg, tiers)
	if errors.Is(err, model.ErrConflict) {
		// параллельное обновление счета - перечитать и повторить один раз
		account, err = s.accounts.GetAccount(ctx, accountID)
		if err != nil {
			return model.AwardResult{}, err
		}
		result, err = s.award(ctx, account, orderID, orderNumber, orderTotal, cfg, tiers)
		if errors.Is(err, model.ErrConflict) {
			return model.AwardResult{}, fmt.Errorf("award retry exhausted: %w", model.ErrPersistence)
		}
	}
	if errors.Is(err, model.ErrDuplicate) {
		return model.AwardResult{Reason: "points already awarded for this order"}, nil
	}
	if err != nil {
		return model.AwardResult{}, err
	}

	// уведомление - best effort, ошибка не отменяет начисление
	if s.notify != nil {
		err = s.notify.Send(ctx, awardNotification(account.UserID, orderNumber, result))
		if err != nil {
			s.logger.Error("award notification",
				zap.String("account", account.UserID),
				zap.String("order", orderID),
				zap.Error(err),
			)
		}
	}
	return result, nil
}

func (s *LoyaltyService) award(ctx context.Context, account model.Account, orderID, orderNumber string, orderTotal float64, cfg model.ProgramConfig, tiers []model.Tier) (model.AwardResult, error) {
	oldTier, _, err := ResolveTier(account.Spendable, tiers)
	if err != nil {
		return model.AwardResult{}, err
	}
	earned, err := ComputeEarnedPoints(orderTotal, cfg.PointsPerUnit, oldTier.Multiplier)
	if err != nil {
		return model.AwardResult{}, err
	}

	newBalance := account.Spendable + earned
	newTier, nextTier, err := ResolveTier(newBalance, tiers)
	if err != nil {
		return model.AwardResult{}, err
	}

	upd := model.AccountUpdate{
		UUID:      account.UUID,
		Spendable: newBalance,
		Lifetime:  account.Lifetime + earned,
		TierName:  newTier.Name,
		Version:   account.Version,
	}
	entry := model.LedgerEntry{
		Account:       account.UUID,
		Points:        earned,
		Kind:          model.KindEarn,
		Description:   fmt.Sprintf("Earned %d points for order %s", earned, orderNumber),
		ReferenceType: model.RefOrder,
		ReferenceID:   orderID,
		CreatedAt:     time.Now(),
	}
	err = s.accounts.ApplyAward(ctx, upd, entry)
	if err != nil {
		return model.AwardResult{}, err
	}

	result := model.AwardResult{
		Success:     true,
		Earned:      earned,
		NewBalance:  newBalance,
		OldTier:     oldTier.Name,
		NewTier:     newTier.Name,
		TierUpgrade: newTier.Name != oldTier.Name,
	}
	if nextTier != nil {
		result.NextTier = nextTier.Name
		result.PointsToNextTier = nextTier.MinPoints - newBalance
	}
	return result, nil
}

// Корректировка баллов после изменения суммы заказа.
// Дельта считается только по базовой ставке: множитель уровня зафиксирован
// на момент исходного начисления и повторно не применяется.
// Lifetime не уменьшается, Spendable не уходит ниже нуля.
func (s *LoyaltyService) Adjust(ctx context.Context, accountID, orderID, orderNumber string, oldTotal, newTotal float64) (model.AdjustResult, error) {
	if oldTotal < 0 || newTotal < 0 {
		return model.AdjustResult{}, fmt.Errorf("order total is negative: %w", model.ErrInvalidInput)
	}

	cfg, err := s.ref.GetConfig(ctx)
	if err != nil {
		return model.AdjustResult{}, err
	}
	if !cfg.Enabled {
		return model.AdjustResult{AdjustmentType: model.AdjustNone}, nil
	}

	// корректируются только заказы, за которые начислялись баллы
	_, err = s.ledger.GetEarnEntry(ctx, orderID)
	if errors.Is(err, model.ErrNotFound) {
		return model.AdjustResult{AdjustmentType: model.AdjustNone}, nil
	}
	if err != nil {
		return model.AdjustResult{}, err
	}

	delta := basePoints(newTotal, cfg.PointsPerUnit) - basePoints(oldTotal, cfg.PointsPerUnit)
	if delta == 0 {
		return model.AdjustResult{AdjustmentType: model.AdjustNone}, nil
	}

	tiers, err := s.Tiers(ctx)
	if err != nil {
		return model.AdjustResult{}, err
	}
	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return model.AdjustResult{}, err
	}

	err = s.adjust(ctx, account, orderID, orderNumber, delta, tiers)
	if errors.Is(err, model.ErrConflict) {
		account, err = s.accounts.GetAccount(ctx, accountID)
		if err != nil {
			return model.AdjustResult{}, err
		}
		err = s.adjust(ctx, account, orderID, orderNumber, delta, tiers)
		if errors.Is(err, model.ErrConflict) {
			return model.AdjustResult{}, fmt.Errorf("adjustment retry exhausted: %w", model.ErrPersistence)
		}
	}
	if err != nil {
		return model.AdjustResult{}, err
	}

	result := model.AdjustResult{PointsAdjusted: delta, AdjustmentType: model.AdjustIncrease}
	if delta < 0 {
		result.AdjustmentType = model.AdjustDecrease
	}
	return result, nil
}

func (s *LoyaltyService) adjust(ctx context.Context, account model.Account, orderID, orderNumber string, delta int64, tiers []model.Tier) error {
	newBalance := account.Spendable + delta
	if newBalance < 0 {
		newBalance = 0
	}
	newLifetime := account.Lifetime
	if delta > 0 {
		newLifetime += delta
	}
	newTier, _, err := ResolveTier(newBalance, tiers)
	if err != nil {
		return err
	}

	upd := model.AccountUpdate{
		UUID:      account.UUID,
		Spendable: newBalance,
		Lifetime:  newLifetime,
		TierName:  newTier.Name,
		Version:   account.Version,
	}
	entry := model.LedgerEntry{
		Account:       account.UUID,
		Points:        delta,
		Kind:          model.KindAdjust,
		Description:   fmt.Sprintf("Points adjusted for edited order %s", orderNumber),
		ReferenceType: model.RefOrderEdit,
		ReferenceID:   orderID,
		CreatedAt:     time.Now(),
	}
	return s.accounts.ApplyAdjustment(ctx, upd, entry)
}

// История леджера
func (s *LoyaltyService) History(ctx context.Context, accountID string, from, to time.Time) ([]model.LedgerEntry, error) {
	return s.ledger.GetEntries(ctx, accountID, from, to)
}

func awardNotification(userID, orderNumber string, result model.AwardResult) model.Notification {
	body := fmt.Sprintf("You earned %d points for order %s. Your balance is now %d points (%s tier).",
		result.Earned, orderNumber, result.NewBalance, result.NewTier)
	if result.TierUpgrade {
		body += fmt.Sprintf(" Congratulations, you reached the %s tier!", result.NewTier)
	}
	if result.NextTier != "" {
		body += fmt.Sprintf(" %d more points to reach %s.", result.PointsToNextTier, result.NextTier)
	}
	return model.Notification{
		Recipient: userID,
		Subject:   fmt.Sprintf("You earned %d loyalty points", result.Earned),
		Body:      body,
	}
}
