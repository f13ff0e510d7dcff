package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	var got GenericMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/PNID/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Token: "tok", PhoneNumberID: "PNID", HTTP: srv.Client()}
	id, err := c.SendText(context.Background(), "050-123-4567", "hello")
	require.NoError(t, err)

	assert.Equal(t, "wamid.1", id)
	assert.Equal(t, "972501234567", got.To)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "hello", got.Text.Body)
}

func TestSendTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad number"}}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, PhoneNumberID: "PNID", HTTP: srv.Client()}
	_, err := c.SendText(context.Background(), "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad number")
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "972501234567", NormalizePhone("0501234567"))
	assert.Equal(t, "972501234567", NormalizePhone("+972 50-123-4567"))
	assert.Equal(t, "12025550100", NormalizePhone("+1 (202) 555-0100"))
	assert.Equal(t, "", NormalizePhone(""))
}
