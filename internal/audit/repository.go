package audit

import "context"

type Repository interface {
	Insert(ctx context.Context, s Submission) error
	ListByCanteen(ctx context.Context, canteenID, limit int) ([]Submission, error)
}
