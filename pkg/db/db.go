// Package db opens the SQL database backing persistent side tables and
// applies the embedded schema migrations.
package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// SQL bundles the connection pool with a statement builder using the
// placeholder format of its dialect.
type SQL struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType
	Dialect string
}

// New opens url and migrates it to the latest schema. postgres:// and
// postgresql:// URLs use pgx; anything else is a sqlite path, with an
// optional sqlite:// scheme. An empty url opens a private in-memory sqlite.
func New(url string) (*SQL, error) {
	dialect, driverName, dsn := parseURL(url)

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db - open: %w", err)
	}

	s := &SQL{DB: conn, Dialect: dialect, Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)}

	if dialect == DialectPostgres {
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	} else {
		// sqlite in-memory databases live per connection
		conn.SetMaxOpenConns(1)
	}

	if err := s.migrate(); err != nil {
		conn.Close()

		return nil, err
	}

	return s, nil
}

func parseURL(url string) (dialect, driverName, dsn string) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DialectPostgres, "pgx", url
	case url == "":
		return DialectSQLite, "sqlite", ":memory:"
	default:
		return DialectSQLite, "sqlite", strings.TrimPrefix(url, "sqlite://")
	}
}

func (s *SQL) migrate() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("db - migrations source: %w", err)
	}

	var driver database.Driver

	if s.Dialect == DialectPostgres {
		driver, err = pgxmigrate.WithInstance(s.DB, &pgxmigrate.Config{})
	} else {
		driver, err = sqlitemigrate.WithInstance(s.DB, &sqlitemigrate.Config{})
	}

	if err != nil {
		return fmt.Errorf("db - migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, s.Dialect, driver)
	if err != nil {
		return fmt.Errorf("db - migrate init: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("db - migrate up: %w", err)
	}

	return nil
}

// Close -.
func (s *SQL) Close() error {
	return s.DB.Close()
}
