package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
)

type CustomerRepositoryImpl struct {
	uow *UnitOfWorkImpl
}

type customerRow struct {
	id        string
	name      string
	email     string
	phone     sql.NullString
	createdAt time.Time
	updatedAt time.Time
}

func (r customerRow) toEntity() *entity.Customer {
	return entity.RestoreCustomer(r.id, r.name, r.email, r.phone.String, r.createdAt, r.updatedAt)
}

const customerColumns = "id, name, email, phone, created_at, updated_at"

func scanCustomer(row *sql.Row) (*entity.Customer, error) {
	var c customerRow
	if err := row.Scan(&c.id, &c.name, &c.email, &c.phone, &c.createdAt, &c.updatedAt); err != nil {
		return nil, err
	}
	return c.toEntity(), nil
}

func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	row := r.uow.executor().QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1", id)

	found, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("id %s: %w", id, entity.ErrCustomerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return found, nil
}

func (r *CustomerRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	row := r.uow.executor().QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE email = $1", email)

	found, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return found, nil
}

func (r *CustomerRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.uow.executor().QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("customer exists: %w", err)
	}
	return exists, nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.uow.executor().QueryContext(ctx,
		"SELECT "+customerColumns+" FROM customers ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c customerRow
		if err := rows.Scan(&c.id, &c.name, &c.email, &c.phone, &c.createdAt, &c.updatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c.toEntity())
	}
	return customers, rows.Err()
}

func (r *CustomerRepositoryImpl) Insert(ctx context.Context, customer *entity.Customer) error {
	_, err := r.uow.executor().ExecContext(ctx,
		`INSERT INTO customers (id, name, email, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		customer.ID(), customer.Name(), customer.Email(), nullString(customer.Phone()),
		customer.CreatedAt(), customer.UpdatedAt())
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	res, err := r.uow.executor().ExecContext(ctx,
		`UPDATE customers SET name = $2, email = $3, phone = $4, updated_at = $5
		 WHERE id = $1`,
		customer.ID(), customer.Name(), customer.Email(), nullString(customer.Phone()),
		customer.UpdatedAt())
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return requireAffected(res, entity.ErrCustomerNotFound)
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id string) error {
	res, err := r.uow.executor().ExecContext(ctx,
		"DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return requireAffected(res, entity.ErrCustomerNotFound)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// requireAffected turns a zero-row write into the domain's not-found error.
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
