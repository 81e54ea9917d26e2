package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slaDef(responseMin, resolutionMin int, ratio float64) SLADefinition {
	return SLADefinition{
		Name:              "standard",
		ResponseMinutes:   responseMin,
		ResolutionMinutes: resolutionMin,
		AtRiskRatio:       ratio,
	}
}

func TestClassifySLA_OnTrack(t *testing.T) {
	opened := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	now := opened.Add(10 * time.Minute)

	result := ClassifySLA(ClassifyInput{
		Now:        now,
		OpenedAt:   opened,
		Definition: slaDef(60, 240, 0.8),
	})

	assert.Equal(t, SLAStatusOnTrack, result.Status)
	assert.False(t, result.ResponseBreached)
	assert.False(t, result.ResolutionBreached)
	assert.Equal(t, now, result.EvaluatedAt)
}

func TestClassifySLA_AtRisk_Response(t *testing.T) {
	opened := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	// 80% of a 60 minute response window is 48 minutes.
	now := opened.Add(50 * time.Minute)

	result := ClassifySLA(ClassifyInput{
		Now:        now,
		OpenedAt:   opened,
		Definition: slaDef(60, 600, 0.8),
	})

	assert.Equal(t, SLAStatusAtRisk, result.Status)
	assert.False(t, result.ResponseBreached)
}

func TestClassifySLA_BreachedResponse(t *testing.T) {
	opened := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	now := opened.Add(90 * time.Minute)

	result := ClassifySLA(ClassifyInput{
		Now:        now,
		OpenedAt:   opened,
		Definition: slaDef(60, 600, 0.8),
	})

	assert.Equal(t, SLAStatusBreached, result.Status)
	assert.True(t, result.ResponseBreached)
	assert.False(t, result.ResolutionBreached)
	assert.Equal(t, []BreachKind{BreachKindResponse}, result.BreachKinds())
}

func TestClassifySLA_BreachedBoth(t *testing.T) {
	opened := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	now := opened.Add(11 * time.Hour)

	result := ClassifySLA(ClassifyInput{
		Now:        now,
		OpenedAt:   opened,
		Definition: slaDef(60, 600, 0.8),
	})

	assert.Equal(t, SLAStatusBreached, result.Status)
	assert.Equal(t, []BreachKind{BreachKindResponse, BreachKindResolution}, result.BreachKinds())
}

func TestClassifySLA_TimelyResponseStopsResponseClock(t *testing.T) {
	opened := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	responded := opened.Add(30 * time.Minute)
	now := opened.Add(3 * time.Hour)

	result := ClassifySLA(ClassifyInput{
		Now:             now,
		OpenedAt:        opened,
		FirstResponseAt: &responded,
		Definition:      slaDef(60, 600, 0.8),
	})

	// Response was met on time; only the resolution clock is still running.
	assert.False(t, result.ResponseBreached)
	assert.Equal(t, SLAStatusOnTrack, result.Status)
}

func TestClassifySLA_LateResponseStillCounts(t *testing.T) {
	opened := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	responded := opened.Add(2 * time.Hour)
	now := opened.Add(3 * time.Hour)

	result := ClassifySLA(ClassifyInput{
		Now:             now,
		OpenedAt:        opened,
		FirstResponseAt: &responded,
		Definition:      slaDef(60, 600, 0.8),
	})

	assert.True(t, result.ResponseBreached)
	assert.Equal(t, SLAStatusBreached, result.Status)
}

func TestClassifySLA_DefaultRatioWhenUnset(t *testing.T) {
	opened := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	// 85% of the 60 minute response window; default ratio 0.8 applies when unset.
	now := opened.Add(51 * time.Minute)

	result := ClassifySLA(ClassifyInput{
		Now:        now,
		OpenedAt:   opened,
		Definition: slaDef(60, 600, 0),
	})

	assert.Equal(t, SLAStatusAtRisk, result.Status)
}

func TestCreateSLADefinitionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateSLADefinitionRequest
		wantErr bool
	}{
		{"valid", CreateSLADefinitionRequest{Name: "gold", ResponseMinutes: 30, ResolutionMinutes: 240, AtRiskRatio: 0.75}, false},
		{"valid zero ratio", CreateSLADefinitionRequest{Name: "gold", ResponseMinutes: 30, ResolutionMinutes: 240}, false},
		{"empty name", CreateSLADefinitionRequest{ResponseMinutes: 30, ResolutionMinutes: 240}, true},
		{"zero response", CreateSLADefinitionRequest{Name: "gold", ResolutionMinutes: 240}, true},
		{"resolution below response", CreateSLADefinitionRequest{Name: "gold", ResponseMinutes: 300, ResolutionMinutes: 240}, true},
		{"ratio out of range", CreateSLADefinitionRequest{Name: "gold", ResponseMinutes: 30, ResolutionMinutes: 240, AtRiskRatio: 1.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
