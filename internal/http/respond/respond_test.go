package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/http/respond"
)

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		code   fault.Code
		status int
	}{
		{fault.CodeBadUserInput, http.StatusBadRequest},
		{fault.CodeInvalidPassword, http.StatusUnauthorized},
		{fault.CodePermissionDenied, http.StatusForbidden},
		{fault.CodeUserNotFound, http.StatusNotFound},
		{fault.CodeTransactionNotFound, http.StatusNotFound},
		{fault.CodeChangeTransactionNotFound, http.StatusNotFound},
		{fault.CodeBalanceTooLow, http.StatusConflict},
		{fault.CodeWorktimeAlreadyPaid, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Error(rec, fault.New(tc.code, "boom"))

			assert.Equal(t, tc.status, rec.Code)

			var body struct {
				Code fault.Code `json:"code"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestError_UncodedIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
