package services

import (
	"fmt"
	"math"

	model "github.com/pharmakart/loyalty/internal/models"
)

// Определение уровня по балансу. tiers отсортированы по MinPoints по возрастанию.
// next == nil для максимального уровня.
func ResolveTier(points int64, tiers []model.Tier) (current model.Tier, next *model.Tier, err error) {
	if len(tiers) == 0 {
		return model.Tier{}, nil, fmt.Errorf("no tiers defined: %w", model.ErrConfiguration)
	}

	// сверху вниз: первый уровень с порогом <= баланса
	idx := 0
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].MinPoints <= points {
			idx = i
			break
		}
	}

	current = tiers[idx]
	if idx < len(tiers)-1 {
		n := tiers[idx+1]
		next = &n
	}
	return current, next, nil
}

// Расчет баллов за заказ: base = floor(total * rate), earned = floor(base * multiplier).
// Порядок округлений менять нельзя, он влияет на результат на границах уровней.
func ComputeEarnedPoints(orderTotal, pointsPerUnit, multiplier float64) (int64, error) {
	if orderTotal < 0 {
		return 0, fmt.Errorf("order total is negative: %w", model.ErrInvalidInput)
	}
	base := math.Floor(orderTotal * pointsPerUnit)
	return int64(math.Floor(base * multiplier)), nil
}

// Базовые баллы без множителя уровня, используется при корректировках
func basePoints(orderTotal, pointsPerUnit float64) int64 {
	return int64(math.Floor(orderTotal * pointsPerUnit))
}
