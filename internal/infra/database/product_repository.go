package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductRepositoryImpl struct {
	uow *UnitOfWorkImpl
}

type productRow struct {
	id          string
	name        string
	price       decimal.Decimal
	description sql.NullString
	stock       int
	createdAt   time.Time
	updatedAt   time.Time
}

func (r productRow) toEntity() *entity.Product {
	return entity.RestoreProduct(r.id, r.name, r.price, r.description.String, r.stock, r.createdAt, r.updatedAt)
}

const productColumns = "id, name, price, description, stock, created_at, updated_at"

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.uow.executor().QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)

	var p productRow
	err := row.Scan(&p.id, &p.name, &p.price, &p.description, &p.stock, &p.createdAt, &p.updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return p.toEntity(), nil
}

// FindByIDs batch-fetches the given ids in one round trip. Ids with no row
// are silently absent from the result.
func (r *ProductRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.uow.executor().QueryContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.uow.executor().QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var p productRow
		if err := rows.Scan(&p.id, &p.name, &p.price, &p.description, &p.stock, &p.createdAt, &p.updatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p.toEntity())
	}
	return products, rows.Err()
}

func (r *ProductRepositoryImpl) Insert(ctx context.Context, product *entity.Product) error {
	_, err := r.uow.executor().ExecContext(ctx,
		`INSERT INTO products (id, name, price, description, stock, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		product.ID(), product.Name(), product.Price(), nullString(product.Description()),
		product.Stock(), product.CreatedAt(), product.UpdatedAt())
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.uow.executor().ExecContext(ctx,
		`UPDATE products SET name = $2, price = $3, description = $4, stock = $5, updated_at = $6
		 WHERE id = $1`,
		product.ID(), product.Name(), product.Price(), nullString(product.Description()),
		product.Stock(), product.UpdatedAt())
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return requireAffected(res, entity.ErrProductNotFound)
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	res, err := r.uow.executor().ExecContext(ctx,
		"DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return requireAffected(res, entity.ErrProductNotFound)
}
