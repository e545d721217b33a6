package outbound

import "context"

// UserValidation is the answer of the Users slice about a user referenced elsewhere.
type UserValidation struct {
	IsValid bool
	Reason  string
}

// UserDirectory is how other slices ask the Users slice about a user. Implementations
// translate transport faults into apperr DependencyUnavailable errors.
type UserDirectory interface {
	ValidateUser(ctx context.Context, userID string) (UserValidation, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}
