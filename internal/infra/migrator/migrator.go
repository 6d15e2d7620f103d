package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Migrator обёртка над goose со встроенными миграциями
type Migrator struct {
	db  *sql.DB
	fs  fs.FS
	log Logger
}

// New создает мигратор; migrations - FS с *.sql в корне
func New(db *sql.DB, migrations fs.FS, log Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("migrator: set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: log})

	return &Migrator{db: db, fs: migrations, log: log}, nil
}

// Up применяет все pending миграции
func (m *Migrator) Up(ctx context.Context) error {
	m.log.Info("Applying database migrations...")

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migrator: apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("migrator: get version: %w", err)
	}

	m.log.Info("Migrations applied, schema version=%d", version)
	return nil
}

// gooseLogger адаптер логгера сервиса под goose.Logger
type gooseLogger struct {
	log Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(format, v...)
}
