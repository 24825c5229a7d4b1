package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

func TestStatusOf(t *testing.T) {
	badParams := mines.GameParams{Width: 1, Height: 1, MineCount: 1}.Validate()
	require.Error(t, badParams)

	tests := []struct {
		name string
		err  error
		code int
		sent error
	}{
		{"not found", fmt.Errorf("lookup: %w", sessions.ErrNotFound), http.StatusNotFound, nil},
		{"config", badParams, http.StatusBadRequest, nil},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, errInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, sent := statusOf(test.err)
			assert.Equal(t, test.code, code)
			if test.sent == nil {
				assert.Equal(t, test.err, sent)
			} else {
				assert.Equal(t, test.sent, sent)
			}
		})
	}
}

func TestSendJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	_, err := SendJSON(rec, http.StatusCreated, map[string]int{"width": 9})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"width":9}`, rec.Body.String())

	rec = httptest.NewRecorder()
	_, err = SendJSON(rec, http.StatusOK, make(chan int))
	assert.Error(t, err)
}
