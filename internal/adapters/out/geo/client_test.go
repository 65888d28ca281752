package geo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mealorder/internal/adapters/out/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ResolveAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "123 Main St":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"street": "123 Main St",
				"city": "Springfield",
				"state": "IL",
				"zip": "62701",
				"latitude": 39.78,
				"longitude": -89.65
			}`))
		case "nowhere":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := geo.NewClient(server.URL, 5*time.Second)

	t.Run("known address resolves", func(t *testing.T) {
		address, err := client.ResolveAddress(t.Context(), "123 Main St")

		require.NoError(t, err)
		require.NotNil(t, address)
		assert.Equal(t, "123 Main St", address.Street())
		assert.Equal(t, "Springfield", address.City())
		assert.InEpsilon(t, 39.78, address.Latitude(), 1e-9)
	})

	t.Run("unknown address yields nil without error", func(t *testing.T) {
		address, err := client.ResolveAddress(t.Context(), "nowhere")

		require.NoError(t, err)
		assert.Nil(t, address)
	})

	t.Run("service failure is an error", func(t *testing.T) {
		_, err := client.ResolveAddress(t.Context(), "boom")

		require.Error(t, err)
	})
}
