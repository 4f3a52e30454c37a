package tara

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successCallback() CallbackResult {
	return CallbackResult{
		Succeeded: true,
		Result:    "0",
		Token:     "P1",
		OrderID:   12345,
	}
}

func TestVerify_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/authenticate", authHandler(t, "T2"))
	mux.HandleFunc("/api/purchaseVerify", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T2", r.Header.Get("Authorization"))

		var req verifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "10.0.0.1", req.IP)
		assert.Equal(t, "P1", req.Token)

		json.NewEncoder(w).Encode(map[string]string{
			"result": "0",
			"token":  "P1",
			"rrn":    "RRN-777",
			"type":   "PURCHASE",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)
	result := client.Verify(context.Background(), testAccount(), successCallback())

	assert.Equal(t, VerifySucceeded, result.Status)
	assert.Equal(t, "RRN-777", result.TransactionRef)
	assert.Equal(t, DefaultMessages().PaymentSucceeded, result.Message)
	assert.Equal(t, map[string]string{"token": "P1", "type": "PURCHASE"}, result.AdditionalData)
}

func TestVerify_DuplicateTokenCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/authenticate", authHandler(t, "T2"))
	mux.HandleFunc("/api/purchaseVerify", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"result": "8"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result := testClient(server.URL).Verify(context.Background(), testAccount(), successCallback())

	assert.Equal(t, VerifyFailed, result.Status)
	assert.Equal(t, "توکن تکراری است", result.Message)
}

func TestVerify_EmptyResultIsFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/authenticate", authHandler(t, "T2"))
	mux.HandleFunc("/api/purchaseVerify", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "P1"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result := testClient(server.URL).Verify(context.Background(), testAccount(), successCallback())

	assert.Equal(t, VerifyFailed, result.Status)
	assert.Equal(t, DefaultMessages().PaymentFailed, result.Message)
}

func TestVerify_HTTPFailureKeepsRawBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/authenticate", authHandler(t, "T2"))
	mux.HandleFunc("/api/purchaseVerify", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result := testClient(server.URL).Verify(context.Background(), testAccount(), successCallback())

	assert.Equal(t, VerifyFailed, result.Status)
	assert.Equal(t, "upstream unavailable", result.Message)
}

func TestVerify_AuthenticationFailureNeverPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"result": "1"})
	}))
	defer server.Close()

	result := testClient(server.URL).Verify(context.Background(), testAccount(), successCallback())

	assert.Equal(t, VerifyFailed, result.Status)
	assert.Contains(t, result.Message, "authentication failed")
}
