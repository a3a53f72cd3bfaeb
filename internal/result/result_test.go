package result

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"inventory-api/internal/paging"
)

func TestStatusHTTPMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status Status
		want   int
	}{
		{StatusSuccess, http.StatusOK},
		{StatusNoContent, http.StatusNoContent},
		{StatusBadRequest, http.StatusBadRequest},
		{StatusUnauthenticated, http.StatusUnauthorized},
		{StatusUnauthorized, http.StatusForbidden},
		{StatusNotFound, http.StatusNotFound},
		{StatusAlreadyExist, http.StatusConflict},
		{StatusInternalError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.status.HTTPStatus())
	}

	t.Run("unknown statuses fall back to their numeric value", func(t *testing.T) {
		require.Equal(t, 429, Status(429).HTTPStatus())
		require.Equal(t, 418, Status(418).HTTPStatus())
	})
}

func TestEnvelopeConstruction(t *testing.T) {
	t.Parallel()

	t.Run("new envelope starts unset with version and timestamp", func(t *testing.T) {
		res := New[string]()

		require.Equal(t, Version, res.Version)
		require.False(t, res.Timestamp.IsZero())
		require.Equal(t, Status(0), res.Status)
		require.Empty(t, res.ErrorMessages)
		require.Empty(t, res.Data)
	})

	t.Run("fail keeps the payload at its zero value", func(t *testing.T) {
		res := New[string]().Fail(StatusNotFound, "Warehouse not found.")

		require.Equal(t, StatusNotFound, res.Status)
		require.Equal(t, []string{"Warehouse not found."}, res.ErrorMessages)
		require.Empty(t, res.Data)
		require.False(t, res.OK())
	})

	t.Run("fail preserves message order", func(t *testing.T) {
		res := New[string]().Fail(StatusBadRequest, "first", "second")

		require.Equal(t, []string{"first", "second"}, res.ErrorMessages)
	})

	t.Run("succeed sets payload and message", func(t *testing.T) {
		res := New[string]().Succeed("payload", "done")

		require.Equal(t, StatusSuccess, res.Status)
		require.Equal(t, "payload", res.Data)
		require.Equal(t, "done", res.SuccessMessage)
		require.Empty(t, res.ErrorMessages)
		require.True(t, res.OK())
	})

	t.Run("paging metadata attaches to list responses", func(t *testing.T) {
		info := paging.NewPageInfo(paging.Params{PageIndex: 1, PageSize: 10}, 25)
		res := New[[]int]().Succeed([]int{1, 2}, "").WithPaging(info)

		require.NotNil(t, res.Paging)
		require.Equal(t, 25, res.Paging.TotalCount)
		require.Equal(t, 3, res.Paging.TotalPages)
	})
}
