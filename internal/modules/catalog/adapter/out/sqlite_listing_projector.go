package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
	catalogout "github.com/Nickgiresse/aurastyle/internal/modules/catalog/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteListingProjector struct {
	db *sql.DB
}

func NewSQLiteListingProjector(dbPath string) (catalogout.ListingProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteListingProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteListingProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price REAL NOT NULL,
  category TEXT,
  image TEXT,
  badge TEXT,
  sub_title TEXT,
  sizes TEXT,
  stock INTEGER NOT NULL,
  is_active INTEGER NOT NULL,
  projected_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}

// Replace swaps the projected listing for the given one.
func (s *SQLiteListingProjector) Replace(ctx context.Context, products []domain.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin listing swap: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("reset products: %w", err)
	}
	const stmt = `
INSERT INTO products (id, name, price, category, image, badge, sub_title, sizes, stock, is_active, projected_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	now := time.Now().UTC().Format(time.RFC3339)
	for _, product := range products {
		sizes, err := json.Marshal(product.Sizes)
		if err != nil {
			return fmt.Errorf("encode sizes: %w", err)
		}
		active := 0
		if product.IsActive {
			active = 1
		}
		if _, err := tx.ExecContext(ctx, stmt,
			product.ID,
			product.Name,
			product.Price,
			product.Category,
			product.Image,
			product.Badge,
			product.SubTitle,
			string(sizes),
			product.Stock,
			active,
			now,
		); err != nil {
			return fmt.Errorf("project product %s: %w", product.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit listing swap: %w", err)
	}
	return nil
}

func (s *SQLiteListingProjector) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, price, category, image, badge, sub_title, sizes, stock, is_active
FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query projected products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		var sizes string
		var active int
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Category,
			&product.Image,
			&product.Badge,
			&product.SubTitle,
			&sizes,
			&product.Stock,
			&active,
		); err != nil {
			return nil, fmt.Errorf("scan projected product: %w", err)
		}
		if sizes != "" {
			_ = json.Unmarshal([]byte(sizes), &product.Sizes)
		}
		product.IsActive = active == 1
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projected products: %w", err)
	}
	return products, nil
}
