package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "transport", err: errors.New("dial tcp: refused"), want: ErrUnavailable},
		{name: "not found", err: &googleapi.Error{Code: http.StatusNotFound}, want: ErrNotFound},
		{name: "missing worksheet", err: &googleapi.Error{Code: http.StatusBadRequest, Message: "Unable to parse range: 'Players'!A1:A"}, want: ErrNotFound},
		{name: "duplicate title", err: &googleapi.Error{Code: http.StatusBadRequest, Message: "A sheet with the name \"Players\" already exists."}, want: ErrAlreadyExists},
		{name: "bad request", err: &googleapi.Error{Code: http.StatusBadRequest, Message: "Invalid value"}, want: ErrUnexpectedShape},
		{name: "forbidden", err: &googleapi.Error{Code: http.StatusForbidden}, want: ErrUnavailable},
		{name: "server", err: &googleapi.Error{Code: http.StatusBadGateway}, want: ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGridRange(t *testing.T) {
	gr := gridRange(7, Row("Game", 6, 2, 4))
	assert.Equal(t, int64(7), gr.SheetId)
	assert.Equal(t, int64(5), gr.StartRowIndex)
	assert.Equal(t, int64(6), gr.EndRowIndex)
	assert.Equal(t, int64(1), gr.StartColumnIndex)
	assert.Equal(t, int64(4), gr.EndColumnIndex)

	col := gridRange(0, Column("Players", 1))
	assert.Equal(t, int64(0), col.EndRowIndex)
	assert.Contains(t, col.ForceSendFields, "SheetId")
}

func TestGoogleGetValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "missing") {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found."}}`))
			return
		}
		w.Write([]byte(`{"range":"Players!A1:A3","majorDimension":"ROWS","values":[["Player Name"],["Alice"],["Bob"]]}`))
	}))
	defer server.Close()

	client, err := NewGoogle(context.Background(), &GoogleConfig{
		HTTPClient: server.Client(),
		Endpoint:   server.URL + "/",
	})
	require.NoError(t, err)

	values, err := client.GetValues(context.Background(), "sheet-id", Column("Players", 1))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Player Name"}, {"Alice"}, {"Bob"}}, values)

	_, err = client.GetValues(context.Background(), "missing", Column("Players", 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewGoogleWithoutCredentials(t *testing.T) {
	_, err := NewGoogle(context.Background(), &GoogleConfig{CredentialsFile: "does-not-exist.json"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewGoogle(context.Background(), nil)
	assert.Error(t, err)
}
