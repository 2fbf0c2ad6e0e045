package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DioGolang/GoCommerce/internal/application/port/outbound"
)

// DBTX is the executor surface shared by *sql.DB and *sql.Tx. Repositories
// resolve their executor through the unit of work on every call, so the same
// repository instance works in autocommit mode and inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txState int

const (
	stateIdle txState = iota
	stateActive
	stateCommitted
	stateRolledBack
)

func (s txState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateActive:
		return "active"
	case stateCommitted:
		return "committed"
	case stateRolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}

// UnitOfWorkImpl binds the three repositories to a single *sql.DB pool and,
// once Begin is called, to a single *sql.Tx. Not safe for concurrent use;
// the factory hands out one instance per request.
type UnitOfWorkImpl struct {
	db    *sql.DB
	tx    *sql.Tx
	state txState
}

func NewUnitOfWork(db *sql.DB) *UnitOfWorkImpl {
	return &UnitOfWorkImpl{db: db, state: stateIdle}
}

func (u *UnitOfWorkImpl) Customers() outbound.CustomerRepository {
	return &CustomerRepositoryImpl{uow: u}
}

func (u *UnitOfWorkImpl) Products() outbound.ProductRepository {
	return &ProductRepositoryImpl{uow: u}
}

func (u *UnitOfWorkImpl) Orders() outbound.OrderRepository {
	return &OrderRepositoryImpl{uow: u}
}

// executor returns the active transaction when there is one, otherwise the
// pool.
func (u *UnitOfWorkImpl) executor() DBTX {
	if u.state == stateActive {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	switch u.state {
	case stateActive:
		return nil
	case stateCommitted, stateRolledBack:
		return fmt.Errorf("begin: unit of work already %s", u.state)
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	u.tx = tx
	u.state = stateActive
	return nil
}

func (u *UnitOfWorkImpl) Commit(_ context.Context) error {
	if u.state != stateActive {
		return fmt.Errorf("commit: unit of work is %s, not active", u.state)
	}

	// terminal either way; the driver releases the tx on a failed commit
	u.state = stateCommitted
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (u *UnitOfWorkImpl) Rollback(_ context.Context) error {
	if u.state != stateActive {
		return fmt.Errorf("rollback: unit of work is %s, not active", u.state)
	}

	u.state = stateRolledBack
	if err := u.tx.Rollback(); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

type UnitOfWorkFactoryImpl struct {
	db *sql.DB
}

func NewUnitOfWorkFactory(db *sql.DB) *UnitOfWorkFactoryImpl {
	return &UnitOfWorkFactoryImpl{db: db}
}

func (f *UnitOfWorkFactoryImpl) New() outbound.UnitOfWork {
	return NewUnitOfWork(f.db)
}
