package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists the document in a local SQLite database. It honors the
// same whole-document contract as FileStore: Load reads everything, Save
// replaces everything in one transaction. The seq column preserves insertion
// order across round trips.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() (Document, error) {
	var doc Document

	rows, err := s.db.Query(`
		SELECT id, symbol, side, date, gross, commission, exchange_fee,
		       quantity, net, duration, notes, images, source
		FROM trades
		ORDER BY seq ASC`)
	if err != nil {
		return Document{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var t Trade
		var side string
		var images []byte
		if err := rows.Scan(
			&t.ID,
			&t.Symbol,
			&side,
			&t.Date,
			&t.Gross,
			&t.Commission,
			&t.ExchangeFee,
			&t.Quantity,
			&t.Net,
			&t.Duration,
			&t.Notes,
			&images,
			&t.Source,
		); err != nil {
			return Document{}, err
		}
		t.Side = Side(side)
		if len(images) > 0 {
			if err := json.Unmarshal(images, &t.Images); err != nil {
				return Document{}, fmt.Errorf("trade %q images: %w", t.ID, err)
			}
		}
		doc.Trades = append(doc.Trades, t)
	}
	if err := rows.Err(); err != nil {
		return Document{}, err
	}

	err = s.db.QueryRow(`
		SELECT monthly_pnl_target, max_daily_loss_limit, max_trades_per_day, min_win_rate_pct
		FROM goals WHERE id = 1`).Scan(
		&doc.Goals.MonthlyPnLTarget,
		&doc.Goals.MaxDailyLossLimit,
		&doc.Goals.MaxTradesPerDayLimit,
		&doc.Goals.MinWinRatePct,
	)
	if err != nil && err != sql.ErrNoRows {
		return Document{}, err
	}
	return doc, nil
}

func (s *SQLiteStore) Save(doc Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return saveErr(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return saveErr(err)
	}
	for i, t := range doc.Trades {
		var images []byte
		if len(t.Images) > 0 {
			images, err = json.Marshal(t.Images)
			if err != nil {
				return fmt.Errorf("trade %q images: %w", t.ID, err)
			}
		}
		_, err = tx.Exec(`
			INSERT INTO trades
			(id, seq, symbol, side, date, gross, commission, exchange_fee,
			 quantity, net, duration, notes, images, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Symbol, string(t.Side), t.Date, t.Gross, t.Commission,
			t.ExchangeFee, t.Quantity, t.Net, t.Duration, t.Notes, images, t.Source,
		)
		if err != nil {
			return saveErr(err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO goals (id, monthly_pnl_target, max_daily_loss_limit, max_trades_per_day, min_win_rate_pct)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			monthly_pnl_target = excluded.monthly_pnl_target,
			max_daily_loss_limit = excluded.max_daily_loss_limit,
			max_trades_per_day = excluded.max_trades_per_day,
			min_win_rate_pct = excluded.min_win_rate_pct`,
		doc.Goals.MonthlyPnLTarget,
		doc.Goals.MaxDailyLossLimit,
		doc.Goals.MaxTradesPerDayLimit,
		doc.Goals.MinWinRatePct,
	)
	if err != nil {
		return saveErr(err)
	}

	if err := tx.Commit(); err != nil {
		return saveErr(err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
