package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

const holdingColumns = `id, user_id, name, symbol, quantity, purchase_price,
				current_price, price_change_24h, last_updated`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHolding(row rowScanner) (models.Holding, error) {
	var h models.Holding
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Symbol, &h.Quantity, &h.PurchasePrice,
		&h.CurrentPrice, &h.PriceChange24h, &h.LastUpdated)
	return h, err
}

// ListHoldings возвращает все активы пользователя в порядке добавления.
func (s *Storage) ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error) {
	const op = "storage.ListHoldings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + holdingColumns + `
			  FROM crypto
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	holdings := make([]models.Holding, 0)
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return holdings, nil
}

// GetHoldingBySymbol возвращает актив пользователя по символу.
func (s *Storage) GetHoldingBySymbol(ctx context.Context, userID int64, symbol string) (*models.Holding, error) {
	const op = "storage.GetHoldingBySymbol"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + holdingColumns + `
			  FROM crypto
			  WHERE user_id = $1 AND symbol = $2
			  ORDER BY id
			  LIMIT 1`
	h, err := scanHolding(s.DB.QueryRowContext(ctx, query, userID, symbol))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &h, nil
}

// GetHolding возвращает актив по id, если он принадлежит пользователю.
func (s *Storage) GetHolding(ctx context.Context, userID, id int64) (*models.Holding, error) {
	const op = "storage.GetHolding"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + holdingColumns + `
			  FROM crypto
			  WHERE id = $1 AND user_id = $2`
	h, err := scanHolding(s.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &h, nil
}

// CreateHolding вставляет новый актив и возвращает его с назначенным id.
func (s *Storage) CreateHolding(ctx context.Context, h models.Holding) (*models.Holding, error) {
	const op = "storage.CreateHolding"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO crypto (user_id, name, symbol, quantity, purchase_price,
			      current_price, price_change_24h, last_updated)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	created := h
	err := s.DB.QueryRowContext(ctx, query, h.UserID, h.Name, h.Symbol, h.Quantity, h.PurchasePrice,
		h.CurrentPrice, h.PriceChange24h, h.LastUpdated).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &created, nil
}

// UpdateHolding сохраняет количество, цены и время обновления актива пользователя.
func (s *Storage) UpdateHolding(ctx context.Context, h models.Holding) error {
	const op = "storage.UpdateHolding"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE crypto
			  SET quantity = $1, purchase_price = $2, current_price = $3,
			      price_change_24h = $4, last_updated = $5
			  WHERE id = $6 AND user_id = $7`
	result, err := s.DB.ExecContext(ctx, query, h.Quantity, h.PurchasePrice, h.CurrentPrice,
		h.PriceChange24h, h.LastUpdated, h.ID, h.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}

// DeleteHolding удаляет актив, если он принадлежит пользователю.
func (s *Storage) DeleteHolding(ctx context.Context, userID, id int64) error {
	const op = "storage.DeleteHolding"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM crypto WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}

// UpdatePricesBySymbol записывает котировку во все активы с данным символом
// и возвращает число обновлённых строк.
func (s *Storage) UpdatePricesBySymbol(ctx context.Context, symbol string, quote models.Quote, at time.Time) (int64, error) {
	const op = "storage.UpdatePricesBySymbol"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE crypto
			  SET current_price = $1, price_change_24h = $2, last_updated = $3
			  WHERE symbol = $4`
	result, err := s.DB.ExecContext(ctx, query, quote.Price, quote.Change24h.Round(4), at, symbol)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

// ListTrackedSymbols возвращает различные символы, которые есть хотя бы у одного пользователя.
func (s *Storage) ListTrackedSymbols(ctx context.Context) ([]string, error) {
	const op = "storage.ListTrackedSymbols"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT DISTINCT symbol FROM crypto ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		symbols = append(symbols, symbol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return symbols, nil
}
