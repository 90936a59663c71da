package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/modules/itinerary"
)

func TestCheckRequest(t *testing.T) {
	valid := itinerary.TripRequest{
		Origin: "Delhi", Destination: "Goa", StartDate: "2025-01-10", EndDate: "2025-01-15",
		Budget: "20000", Theme: "beach", Travellers: "2",
	}
	assert.NoError(t, checkRequest(valid))

	bad := valid
	bad.StartDate = "10/01/2025"
	bad.Destination = ""
	err := checkRequest(bad)
	require.Error(t, err)

	var fe itinerary.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "start_date")
	assert.Contains(t, fe, "to")
}

func TestPlanPromptOnly(t *testing.T) {
	t.Cleanup(func() {
		planReq = itinerary.TripRequest{}
		planPromptOnly = false
	})
	rootCmd.AddCommand(planCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"plan", "--prompt-only",
		"--from", "Delhi", "--to", "Goa", "--start", "2025-01-10", "--end", "2025-01-15",
		"--budget", "20000", "--theme", "beach", "--travellers", "2"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Plan a trip from Delhi to Goa starting on 2025-01-10 and ending on 2025-01-15")
	assert.Contains(t, out.String(), "## Budget Breakdown")
}
