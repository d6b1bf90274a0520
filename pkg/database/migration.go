package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type MigrationRecord struct {
	Version   string
	Name      string
	AppliedAt time.Time
}

type migrationFile struct {
	version string
	name    string
	file    string
}

// RunMigrations applies every "<version>_<name>.sql" file in migrationsDir
// that is not yet recorded in the migrations table, in lexical order, each
// in its own transaction.
func RunMigrations(ctx context.Context, db *pgxpool.Pool, migrationsDir string, logger *zap.Logger) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("error al crear la tabla de migraciones: %w", err)
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	files, err := listMigrationFiles(migrationsDir, logger)
	if err != nil {
		return err
	}

	for _, m := range files {
		if applied[m.version] {
			logger.Debug("migración ya aplicada", zap.String("version", m.version), zap.String("name", m.name))
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, m.file))
		if err != nil {
			return fmt.Errorf("error al leer la migración %s: %w", m.file, err)
		}

		logger.Info("aplicando migración", zap.String("version", m.version), zap.String("name", m.name))

		tx, err := db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("error al iniciar la transacción: %w", err)
		}

		if _, err = tx.Exec(ctx, string(content)); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("error al aplicar la migración %s: %w", m.file, err)
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO migrations (version, name, applied_at) VALUES ($1, $2, $3)",
			m.version, m.name, time.Now(),
		)
		if err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("error al registrar la migración %s: %w", m.file, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("error al confirmar la transacción: %w", err)
		}

		logger.Info("migración aplicada", zap.String("version", m.version), zap.String("name", m.name))
	}

	return nil
}

func appliedMigrations(ctx context.Context, db *pgxpool.Pool) (map[string]bool, error) {
	rows, err := db.Query(ctx, "SELECT version, name, applied_at FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("error al obtener las migraciones aplicadas: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var record MigrationRecord
		if err := rows.Scan(&record.Version, &record.Name, &record.AppliedAt); err != nil {
			return nil, fmt.Errorf("error al leer el registro de migración: %w", err)
		}
		applied[record.Version] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al procesar las migraciones aplicadas: %w", err)
	}

	return applied, nil
}

func listMigrationFiles(dir string, logger *zap.Logger) ([]migrationFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error al leer el directorio de migraciones: %w", err)
	}

	var files []migrationFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		parts := strings.SplitN(entry.Name(), "_", 2)
		if len(parts) != 2 {
			logger.Warn("nombre de archivo de migración inválido", zap.String("file", entry.Name()))
			continue
		}

		files = append(files, migrationFile{
			version: parts[0],
			name:    strings.TrimSuffix(parts[1], ".sql"),
			file:    entry.Name(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].file < files[j].file })
	return files, nil
}
