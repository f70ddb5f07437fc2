package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/database/postgres"
)

//go:embed sql/*.up.sql
var scripts embed.FS

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Files lista os scripts em ordem de aplicação
func Files() ([]string, error) {
	names, err := fs.Glob(scripts, "sql/*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Apply executa os scripts ainda não aplicados, cada um na sua transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	if _, err := conn.ExecContext(ctx, createVersionsTable); err != nil {
		return fmt.Errorf("erro ao criar schema_migrations: %w", err)
	}

	files, err := Files()
	if err != nil {
		return err
	}

	for _, name := range files {
		version := strings.TrimSuffix(strings.TrimPrefix(name, "sql/"), ".up.sql")

		var applied bool
		err := conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("erro ao verificar migração %s: %w", version, err)
		}
		if applied {
			logrus.WithField("version", version).Debug("migration: já aplicada")
			continue
		}

		if err := applyFile(ctx, conn, name, version); err != nil {
			return err
		}
	}

	return nil
}

func applyFile(ctx context.Context, conn postgres.Conn, name, version string) error {
	content, err := scripts.ReadFile(name)
	if err != nil {
		return err
	}

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("erro ao aplicar migração %s: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("erro ao registrar migração %s: %w", version, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"version":     version,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("migration: aplicada")

	return nil
}
