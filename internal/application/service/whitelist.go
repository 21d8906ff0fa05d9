package service

import "context"

// WhitelistService manages the emails that get premium features for free.
type WhitelistService interface {
	Add(ctx context.Context, email string) error
	Remove(ctx context.Context, email string) error
	List(ctx context.Context) ([]string, error)
	// Contains matches case-insensitively.
	Contains(ctx context.Context, email string) (bool, error)
	// Seed adds every email in the list and skips blanks.
	Seed(ctx context.Context, emails []string) error
}
