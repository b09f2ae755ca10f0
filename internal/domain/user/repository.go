package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Save(ctx context.Context, u *User) error
	// SoftDelete marks the row deleted and records the acting admin.
	SoftDelete(ctx context.Context, userID, deletedBy string) error
}
