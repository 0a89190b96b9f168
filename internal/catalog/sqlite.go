package catalog

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteCatalog reads products from a sqlite database seeded by the embedded
// migrations.
type SQLiteCatalog struct {
	db *sql.DB
}

func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteCatalog{db: db}, nil
}

func (s *SQLiteCatalog) RunMigrations() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteCatalog) All(ctx context.Context) ([]domain.Product, error) {
	return s.query(ctx, `
		SELECT id, name, price, price_label, description
		FROM products
		ORDER BY id
	`)
}

func (s *SQLiteCatalog) Get(ctx context.Context, id int64) (domain.Product, error) {
	products, err := s.query(ctx, `
		SELECT id, name, price, price_label, description
		FROM products
		WHERE id = ?
	`, id)
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, ErrProductNotFound
	}
	return products[0], nil
}

func (s *SQLiteCatalog) Search(ctx context.Context, query string) ([]domain.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.All(ctx)
	}
	return s.query(ctx, `
		SELECT id, name, price, price_label, description
		FROM products
		WHERE lower(name) LIKE '%' || lower(?) || '%' ESCAPE '\'
		ORDER BY id
	`, escapeLike(q))
}

func (s *SQLiteCatalog) Close() error {
	return s.db.Close()
}

func (s *SQLiteCatalog) query(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.PriceLabel, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	for i := range products {
		if err := s.loadExtras(ctx, &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (s *SQLiteCatalog) loadExtras(ctx context.Context, p *domain.Product) error {
	images, err := s.column(ctx, `SELECT ref FROM product_images WHERE product_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to load images of product %d: %w", p.ID, err)
	}
	details, err := s.column(ctx, `SELECT detail FROM product_details WHERE product_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to load details of product %d: %w", p.ID, err)
	}
	p.Images = images
	p.Details = details
	return nil
}

func (s *SQLiteCatalog) column(ctx context.Context, query string, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
