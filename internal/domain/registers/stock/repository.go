package stock

import "context"

// Repository is the remote API surface for the movement register.
type Repository interface {
	GetReport(ctx context.Context, filter Filter) (*Report, error)
}
