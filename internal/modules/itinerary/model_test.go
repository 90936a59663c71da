package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripRequestJSONAcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		budget     NumericText
		travellers NumericText
	}{
		{"numbers", `{"budget": 20000, "travellers": 2}`, "20000", "2"},
		{"strings", `{"budget": "20000", "travellers": "2"}`, "20000", "2"},
		{"decimal budget", `{"budget": 1500.50, "travellers": 1}`, "1500.50", "1"},
		{"null", `{"budget": null, "travellers": null}`, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req TripRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.budget, req.Budget)
			assert.Equal(t, tc.travellers, req.Travellers)
		})
	}
}

func TestTripRequestJSONNumberKeepsPromptText(t *testing.T) {
	var req TripRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"from": "Delhi", "to": "Goa", "start_date": "2025-01-10", "end_date": "2025-01-15",
		"budget": 20000, "traveltheme": "beach", "travellers": 2}`), &req))

	prompt := BuildPrompt(req, nil)
	assert.Contains(t, prompt, "2 traveller(s)")
	assert.Contains(t, prompt, "20000 INR")
}

func TestTripRequestJSONWrongTypeNamesField(t *testing.T) {
	var req TripRequest
	err := json.Unmarshal([]byte(`{"travellers": true}`), &req)
	require.Error(t, err)
	assert.Equal(t, FieldErrors{"travellers": "Travellers must be a number."}, FieldErrorsFrom(err))

	err = json.Unmarshal([]byte(`{"from": 5}`), &req)
	require.Error(t, err)
	assert.Equal(t, FieldErrors{"from": "Origin must be text."}, FieldErrorsFrom(err))
}
