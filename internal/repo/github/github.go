// Package github provides the GitHub repository creator.
package github

import (
	"context"

	"github.com/vk/we/internal/ctxlog"
	"github.com/vk/we/internal/repo"
)

// Client creates repositories on the GitHub instance found at Address.
type Client struct {
	Address string
}

// New returns a Client bound to address.
func New(address string) *Client {
	return &Client{Address: address}
}

// NewCreator satisfies repo.Factory.
func NewCreator(address string) repo.RepositoryCreator {
	return New(address)
}

// Create requests a new repository.
//
// TODO: call the repository creation endpoint once an authentication flow
// is available; until then this only records the request.
func (c *Client) Create(ctx context.Context) error {
	ctxlog.FromContext(ctx).Debug("GitHub repository creation requested.", "address", c.Address)
	return nil
}
