package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestGenerateLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payments", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var in LinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "IW-ABC123", in.TxRef)
		require.Equal(t, "190", in.Amount)

		json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "Hosted Link",
			"data":    map[string]any{"link": "https://pay.example.com/abc"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test")
	resp, err := client.GenerateLink(LinkRequest{
		TxRef:    "IW-ABC123",
		Amount:   "190",
		Currency: "NGN",
		Customer: Customer{Email: "ada@example.com"},
	})
	require.NoError(t, err)
	require.Equal(t, "success", resp.Status)
	require.Equal(t, "https://pay.example.com/abc", resp.Data.Link)
}

func TestGenerateLinkFailureEnvelopePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "Invalid currency",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test")
	resp, err := client.GenerateLink(LinkRequest{TxRef: "IW-ABC123"})
	require.NoError(t, err)
	require.Equal(t, "error", resp.Status)
	require.Equal(t, "Invalid currency", resp.Message)
}

func TestVerifyPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/transactions/verify_by_reference", r.URL.Path)
		require.Equal(t, "IW-ABC 123", r.URL.Query().Get("tx_ref"))
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "Transaction fetched",
			"data": map[string]any{
				"id": 7231, "tx_ref": "IW-ABC 123", "amount": 190.0,
				"currency": "NGN", "status": "successful",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test")
	resp, err := client.VerifyPayment("IW-ABC 123")
	require.NoError(t, err)
	require.Equal(t, "successful", resp.Data.Status)
	require.Equal(t, 190.0, resp.Data.Amount)
}

func TestTransportFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, "sk-test")

	_, err := client.GenerateLink(LinkRequest{TxRef: "IW-ABC123"})
	require.True(t, domain.IsUpstream(err), "expected upstream error, got %v", err)

	_, err = client.VerifyPayment("IW-ABC123")
	require.True(t, domain.IsUpstream(err), "expected upstream error, got %v", err)
}

func TestMalformedBodyIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test")
	_, err := client.GenerateLink(LinkRequest{TxRef: "IW-ABC123"})
	require.True(t, domain.IsUpstream(err), "expected upstream error, got %v", err)
}
