package db

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	model "github.com/pharmakart/loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Акция по промокоду, регистр кода не важен
func (p *LoyaltyDB) GetByCode(ctx context.Context, code string) (offer model.Offer, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Offer{}, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "promocode", "offertype", "discountvalue", "maxdiscount",
		"minorderamount", "usagelimit", "usedcount", "isactive", "startdate", "enddate",
		"applicableto", "applicableids", "usergroups", "totaldiscount", "totalorders").
		From("offers").
		Where(sq.Expr("LOWER(promocode) = LOWER(?)", code)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return model.Offer{}, err
	}

	var id pgtype.UUID
	var promoCode pgtype.Text // NULL - акция применяется без кода
	var maxDiscount, minOrder pgtype.Float8
	var usageLimit pgtype.Int8
	row := conn.QueryRow(ctx, sql, args...)
	err = row.Scan(&id, &promoCode, &offer.OfferType, &offer.DiscountValue, &maxDiscount,
		&minOrder, &usageLimit, &offer.UsedCount, &offer.IsActive, &offer.StartDate, &offer.EndDate,
		&offer.ApplicableTo, &offer.ApplicableIDs, &offer.UserGroups, &offer.TotalDiscount, &offer.TotalOrders)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Offer{}, fmt.Errorf("offer %s %w", code, model.ErrNotFound)
		}
		return model.Offer{}, err
	}
	offer.UUID, _ = uuid.FromBytes(id.Bytes[:])
	offer.PromoCode = promoCode.String
	if maxDiscount.Status == pgtype.Present {
		offer.MaxDiscount = &maxDiscount.Float
	}
	if minOrder.Status == pgtype.Present {
		offer.MinOrderAmount = &minOrder.Float
	}
	if usageLimit.Status == pgtype.Present {
		offer.UsageLimit = &usageLimit.Int
	}
	return offer, nil
}

/// Фиксация использования. Инкремент счетчиков в SQL, а не чтение-запись из памяти:
// два покупателя могут одновременно забирать последнее использование.
// false - лимит уже исчерпан, счетчики не изменены.
func (p *LoyaltyDB) CommitUsage(ctx context.Context, offerID uuid.UUID, discount float64) (ok bool, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		`UPDATE offers
		 SET usedcount = usedcount + 1,
		     totaldiscount = totaldiscount + $2,
		     totalorders = totalorders + 1
		 WHERE id = $1
		   AND (usagelimit IS NULL OR usedcount < usagelimit)`,
		offerID, discount)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// различаем исчерпанный лимит и отсутствующую акцию
	var exists bool
	row := conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM offers WHERE id = $1)", offerID)
	err = row.Scan(&exists)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("offer %s %w", offerID, model.ErrNotFound)
	}
	return false, nil
}
