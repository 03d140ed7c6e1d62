package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreatorFunc(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	var creator RepositoryCreator = CreatorFunc(func(ctx context.Context) error {
		calls++
		return boom
	})

	err := creator.Create(context.Background())

	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}
