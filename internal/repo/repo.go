// Package repo defines the capability the app uses to create a remote
// repository on a hosting provider. Concrete providers live in subpackages.
package repo

import "context"

// RepositoryCreator creates a repository on a hosting provider.
type RepositoryCreator interface {
	Create(ctx context.Context) error
}

// Factory builds a RepositoryCreator bound to a provider address.
type Factory func(address string) RepositoryCreator

// CreatorFunc adapts an ordinary function to the RepositoryCreator interface.
type CreatorFunc func(ctx context.Context) error

// Create calls f(ctx).
func (f CreatorFunc) Create(ctx context.Context) error {
	return f(ctx)
}
