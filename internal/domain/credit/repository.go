package credit

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error
	Save(ctx context.Context, r *Record) error
	// GetApprovedForUpdate locks the pair's active row (SELECT ... FOR
	// UPDATE) so the approve/pay upsert cannot race a concurrent writer.
	GetApprovedForUpdate(ctx context.Context, borrowerID, lenderID string) (*Record, error)
	// ListByBorrower returns rows newest first.
	ListByBorrower(ctx context.Context, borrowerID string) ([]Record, error)
}
