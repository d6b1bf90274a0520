package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"barbershop/internal/domain"
	"barbershop/pkg/database"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// wrapError maps driver errors to domain errors and adds op as context.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	switch database.ErrorCode(err) {
	case database.CodeUniqueViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
	case database.CodeForeignKeyViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrServiceNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// setBuilder accumulates "column = $n" fragments for partial updates.
type setBuilder struct {
	sets []string
	args []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) addRaw(fragment string) {
	b.sets = append(b.sets, fragment)
}

func (b *setBuilder) empty() bool {
	return len(b.sets) == 0
}

// query renders an UPDATE that also bumps updated_at and returns columns.
func (b *setBuilder) query(table, where string, whereArg any, returning string) (string, []any) {
	args := append(b.args, whereArg)
	sets := append(b.sets, "updated_at = NOW()")
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		table, strings.Join(sets, ", "), where, len(args), returning)
	return q, args
}

func text(t domain.LocalizedText) domain.LocalizedText {
	if t == nil {
		return domain.LocalizedText{}
	}
	return t
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
