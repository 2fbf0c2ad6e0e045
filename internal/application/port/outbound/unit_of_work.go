package outbound

import (
	"context"
)

// UnitOfWork scopes repository access and the transaction boundary for one
// logical operation. Its transaction is an explicit state machine:
//
//	Idle -> Active        (Begin)
//	Active -> Active      (Begin again is a no-op)
//	Active -> Committed   (Commit)
//	Active -> RolledBack  (Rollback)
//
// Commit and Rollback are valid only from Active and release the underlying
// transaction exactly once; calls from a terminal state return an error.
// While no transaction is active, repository calls run in autocommit mode.
type UnitOfWork interface {
	Customers() CustomerRepository
	Products() ProductRepository
	Orders() OrderRepository

	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory mints a fresh unit of work per request. Units are not
// safe for concurrent use; they are never shared across goroutines.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
