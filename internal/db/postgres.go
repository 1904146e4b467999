package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/pharmakart/loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LoyaltyDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewLoyaltyDB(logger *zap.Logger) (db *LoyaltyDB, err error) {
	// config
	purl := os.Getenv("LOYALTY_DB")
	if purl == "" {
		return nil, fmt.Errorf("env LOYALTY_DB is not set")
	}
	port := os.Getenv("LOYALTY_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PORT is not set")
	}
	user := os.Getenv("LOYALTY_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_USER is not set")
	}
	password := os.Getenv("LOYALTY_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PASSWORD is not set")
	}
	database := os.Getenv("LOYALTY_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &LoyaltyDB{pool, logger}, err
}

func (p *LoyaltyDB) Close() {
	p.pool.Close()
}

// Получить счет по внешнему ID пользователя
func (p *LoyaltyDB) GetAccount(ctx context.Context, userID string) (account model.Account, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.Account{}, err
	}
	defer conn.Release()

	var pguuid pgtype.UUID
	row := conn.QueryRow(ctx,
		"SELECT uuid, spendable, lifetime, tiername, version FROM accounts WHERE userid = $1", userID)
	err = row.Scan(&pguuid, &account.Spendable, &account.Lifetime, &account.TierName, &account.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, fmt.Errorf("account %s %w", userID, model.ErrNotFound)
		}
		return model.Account{}, err
	}
	account.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	account.UserID = userID
	return account, nil
}

// Начисление: обновление счета + запись леджера одной транзакцией.
// Защита от двойного начисления - проверка существующей записи earn по заказу
// внутри транзакции.
func (p *LoyaltyDB) ApplyAward(ctx context.Context, upd model.AccountUpdate, entry model.LedgerEntry) (err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	var exists bool
	row := tx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM ledger WHERE refid = $1 AND reftype = $2 AND kind = $3)",
		entry.ReferenceID, model.RefOrder, model.KindEarn)
	err = row.Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		err = fmt.Errorf("earn entry for order %s: %w", entry.ReferenceID, model.ErrDuplicate)
		return err
	}

	err = p.applyUpdate(ctx, tx, upd)
	if err != nil {
		return err
	}
	err = p.insertEntry(ctx, tx, entry)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Корректировка: обновление счета + запись леджера одной транзакцией
func (p *LoyaltyDB) ApplyAdjustment(ctx context.Context, upd model.AccountUpdate, entry model.LedgerEntry) (err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	err = p.applyUpdate(ctx, tx, upd)
	if err != nil {
		return err
	}
	err = p.insertEntry(ctx, tx, entry)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Обновление счета с проверкой версии, 0 строк = параллельное изменение
func (p *LoyaltyDB) applyUpdate(ctx context.Context, tx pgx.Tx, upd model.AccountUpdate) error {
	sql, args, err := sq.Update("accounts").
		Set("spendable", upd.Spendable).
		Set("lifetime", upd.Lifetime).
		Set("tiername", upd.TierName).
		Set("version", upd.Version+1).
		Where(sq.Eq{"uuid": upd.UUID}).
		Where(sq.Eq{"version": upd.Version}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s version %d: %w", upd.UUID, upd.Version, model.ErrConflict)
	}
	return nil
}

func (p *LoyaltyDB) insertEntry(ctx context.Context, tx pgx.Tx, entry model.LedgerEntry) error {
	sql, args, err := sq.Insert("ledger").
		Columns("id", "account", "points", "kind", "description", "reftype", "refid", "createdat").
		Values(uuid.New(), entry.Account, entry.Points, entry.Kind, entry.Description, entry.ReferenceType, entry.ReferenceID, entry.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// Запись начисления по заказу, якорь для корректировок
func (p *LoyaltyDB) GetEarnEntry(ctx context.Context, orderID string) (entry model.LedgerEntry, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return model.LedgerEntry{}, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "account", "points", "kind", "description", "reftype", "refid", "createdat").
		From("ledger").
		Where(sq.Eq{"refid": orderID}).
		Where(sq.Eq{"reftype": model.RefOrder}).
		Where(sq.Eq{"kind": model.KindEarn}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.LedgerEntry{}, err
	}

	row := conn.QueryRow(ctx, sql, args...)
	entry, err = scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LedgerEntry{}, fmt.Errorf("earn entry for order %s %w", orderID, model.ErrNotFound)
		}
		return model.LedgerEntry{}, err
	}
	return entry, nil
}

// История леджера по пользователю за период
func (p *LoyaltyDB) GetEntries(ctx context.Context, userID string, from time.Time, to time.Time) (entries []model.LedgerEntry, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var pguuid pgtype.UUID
	row := conn.QueryRow(ctx, "SELECT uuid FROM accounts WHERE userid = $1", userID)
	err = row.Scan(&pguuid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s %w", userID, model.ErrNotFound)
		}
		return nil, err
	}
	account, _ := uuid.FromBytes(pguuid.Bytes[:])

	sql, args, err := sq.Select("id", "account", "points", "kind", "description", "reftype", "refid", "createdat").
		From("ledger").
		Where(sq.Eq{"account": account}).
		Where(sq.GtOrEq{"createdat": from}).
		Where(sq.LtOrEq{"createdat": to}).
		OrderBy("createdat DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Заказы пользователя без отмененных, для проверки "первый заказ"
func (p *LoyaltyDB) CountCompletedOrders(ctx context.Context, userID string) (count int64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM orders WHERE userid = $1 AND status <> 'cancelled'", userID)
	err = row.Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func scanEntry(row pgx.Row) (entry model.LedgerEntry, err error) {
	var id, account pgtype.UUID
	err = row.Scan(&id, &account, &entry.Points, &entry.Kind, &entry.Description, &entry.ReferenceType, &entry.ReferenceID, &entry.CreatedAt)
	if err != nil {
		return model.LedgerEntry{}, err
	}
	entry.UUID, _ = uuid.FromBytes(id.Bytes[:])
	entry.Account, _ = uuid.FromBytes(account.Bytes[:])
	return entry, nil
}
