package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type LocaleRepo struct {
	db *pgxpool.Pool
}

func NewLocaleRepository(db *pgxpool.Pool) *LocaleRepo {
	return &LocaleRepo{db: db}
}

func (r *LocaleRepo) ListCurrencies(ctx context.Context, onlyActive bool) ([]domain.Currency, error) {
	query := `SELECT id, code, name, symbol, exchange_rate_to_usd::float8, active, created_at, updated_at
		FROM currency_settings`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapError("error al listar las monedas", err)
	}
	defer rows.Close()

	currencies := make([]domain.Currency, 0)
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.ExchangeRateToUSD, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, wrapError("error al leer la moneda", err)
		}
		currencies = append(currencies, c)
	}

	return currencies, wrapError("error al listar las monedas", rows.Err())
}

const languageColumns = `id, code, name, is_default, active, created_at, updated_at`

func scanLanguage(row rowScanner) (*domain.Language, error) {
	var l domain.Language
	if err := row.Scan(&l.ID, &l.Code, &l.Name, &l.IsDefault, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LocaleRepo) ListLanguages(ctx context.Context, onlyActive bool) ([]domain.Language, error) {
	query := `SELECT ` + languageColumns + ` FROM language_settings`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY is_default DESC, code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapError("error al listar los idiomas", err)
	}
	defer rows.Close()

	languages := make([]domain.Language, 0)
	for rows.Next() {
		l, err := scanLanguage(rows)
		if err != nil {
			return nil, wrapError("error al leer el idioma", err)
		}
		languages = append(languages, *l)
	}

	return languages, wrapError("error al listar los idiomas", rows.Err())
}

func (r *LocaleRepo) DefaultLanguage(ctx context.Context) (*domain.Language, error) {
	query := `SELECT ` + languageColumns + ` FROM language_settings
		WHERE is_default = TRUE AND active = TRUE ORDER BY code LIMIT 1`

	l, err := scanLanguage(r.db.QueryRow(ctx, query))
	if err != nil {
		return nil, wrapError("error al obtener el idioma por defecto", err)
	}
	return l, nil
}

func (r *LocaleRepo) UpsertCurrency(ctx context.Context, c domain.Currency) error {
	query := `
		INSERT INTO currency_settings (code, name, symbol, exchange_rate_to_usd, active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			symbol = EXCLUDED.symbol,
			exchange_rate_to_usd = EXCLUDED.exchange_rate_to_usd,
			active = EXCLUDED.active,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, c.Code, c.Name, c.Symbol, c.ExchangeRateToUSD, c.Active)
	return wrapError("error al guardar la moneda", err)
}

// UpsertLanguage stores l; marking it default clears the flag elsewhere.
func (r *LocaleRepo) UpsertLanguage(ctx context.Context, l domain.Language) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapError("error al iniciar la transacción", err)
	}
	defer tx.Rollback(ctx)

	if l.IsDefault {
		if _, err := tx.Exec(ctx, `UPDATE language_settings SET is_default = FALSE WHERE code <> $1`, l.Code); err != nil {
			return wrapError("error al actualizar el idioma por defecto", err)
		}
	}

	query := `
		INSERT INTO language_settings (code, name, is_default, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			is_default = EXCLUDED.is_default,
			active = EXCLUDED.active,
			updated_at = NOW()
	`
	if _, err := tx.Exec(ctx, query, l.Code, l.Name, l.IsDefault, l.Active); err != nil {
		return wrapError("error al guardar el idioma", err)
	}

	return wrapError("error al confirmar la transacción", tx.Commit(ctx))
}
