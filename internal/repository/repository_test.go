package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inventory-api/internal/paging"
)

func TestOrderBy(t *testing.T) {
	t.Parallel()

	allowed := map[string]string{
		"email":    "u.email",
		"fullName": "u.full_name",
	}

	t.Run("whitelisted field maps to its column", func(t *testing.T) {
		got := orderBy(allowed, paging.Params{SortField: "email"}, "u.id")
		require.Equal(t, "u.email ASC", got)
	})

	t.Run("descending direction", func(t *testing.T) {
		got := orderBy(allowed, paging.Params{SortField: "fullName", SortDesc: true}, "u.id")
		require.Equal(t, "u.full_name DESC", got)
	})

	t.Run("unknown field falls back to the default column", func(t *testing.T) {
		got := orderBy(allowed, paging.Params{SortField: "password_hash; DROP TABLE users"}, "u.id")
		require.Equal(t, "u.id ASC", got)
	})

	t.Run("empty field falls back to the default column", func(t *testing.T) {
		got := orderBy(allowed, paging.Params{}, "u.id")
		require.Equal(t, "u.id ASC", got)
	})
}
