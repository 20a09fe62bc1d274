package veria

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// screenHandler serves canned results keyed by input, defaulting to a clean
// low-risk wallet.
func screenHandler(t *testing.T, canned map[string]ScreenResult) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var body screenRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		result, ok := canned[body.Input]
		if !ok {
			result = ScreenResult{
				Score:    5,
				Risk:     RiskLow,
				Chain:    "ethereum",
				Resolved: body.Input,
				Details:  ScreenDetails{CheckedLists: []string{"OFAC_SDN"}, AddressType: AddressTypeWallet},
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func TestScreenBatch(t *testing.T) {
	canned := map[string]ScreenResult{
		"0xbad": {
			Score:    92,
			Risk:     RiskCritical,
			Chain:    "ethereum",
			Resolved: "0xbad",
			Details:  ScreenDetails{SanctionsHit: true, AddressType: AddressTypeMixer},
		},
	}
	server := httptest.NewServer(screenHandler(t, canned))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "veria_live_test", BaseURL: server.URL})
	require.NoError(t, err)
	defer client.Close()

	inputs := []string{"vitalik.eth", "0xbad", "", "0xgood"}
	results := client.ScreenBatch(context.Background(), inputs)

	require.Len(t, results, len(inputs))
	for i, r := range results {
		assert.Equal(t, inputs[i], r.Input, "results must preserve input order")
	}

	require.NoError(t, results[0].Err)
	assert.False(t, results[0].Result.ShouldBlock())

	require.NoError(t, results[1].Err)
	assert.True(t, results[1].Result.ShouldBlock())

	require.Error(t, results[2].Err)
	assert.Nil(t, results[2].Result)
	var verr *Error
	require.ErrorAs(t, results[2].Err, &verr)
	assert.Equal(t, CodeInvalidInput, verr.Code)

	require.NoError(t, results[3].Err)
}

func TestScreenBatchEmpty(t *testing.T) {
	client, err := NewClient(Config{APIKey: "veria_live_test"})
	require.NoError(t, err)
	defer client.Close()

	results := client.ScreenBatch(context.Background(), nil)
	assert.Empty(t, results)
}

func TestScreenBatchConcurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		screenHandler(t, nil)(w, r)
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "veria_live_test", BaseURL: server.URL})
	require.NoError(t, err)
	defer client.Close()

	inputs := make([]string, 2*batchLimit)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("0x%040d", i)
	}

	start := time.Now()
	results := client.ScreenBatch(context.Background(), inputs)
	elapsed := time.Since(start)

	require.Len(t, results, len(inputs))
	for _, r := range results {
		require.NoError(t, r.Err)
	}

	// Serial execution would take at least len(inputs) * 20ms.
	assert.Less(t, elapsed, time.Duration(len(inputs))*20*time.Millisecond,
		"batch should overlap requests")
}
