package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductionPipelineIsValid(t *testing.T) {
	assert.Len(t, ProductionPipeline, 17, "pipeline should list every production status once")

	seen := map[string]bool{}
	for _, status := range ProductionPipeline {
		assert.True(t, IsValidStatus(KindProductionOrder, status), "pipeline status %q should be in the catalog", status)
		assert.False(t, seen[status], "pipeline status %q should appear only once", status)
		seen[status] = true
	}
}

func TestOnlyCompletedIsTerminalForProduction(t *testing.T) {
	for _, status := range ProductionPipeline {
		if status == StatusCompleted {
			assert.True(t, IsTerminal(KindProductionOrder, status))
		} else {
			assert.False(t, IsTerminal(KindProductionOrder, status), "status %q should not be terminal", status)
		}
	}
}

func TestTerminalStatusesPerKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     EntityKind
		status   string
		terminal bool
	}{
		{"work order completed", KindWorkOrder, WorkStatusCompleted, true},
		{"work order cancelled", KindWorkOrder, WorkStatusCancelled, true},
		{"work order paused", KindWorkOrder, WorkStatusPaused, false},
		{"maintenance completed", KindMaintenance, MaintStatusCompleted, true},
		{"maintenance overdue", KindMaintenance, MaintStatusOverdue, false},
		{"training completed", KindTraining, TrainStatusCompleted, true},
		{"training expired", KindTraining, TrainStatusExpired, true},
		{"training scheduled", KindTraining, TrainStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.terminal, IsTerminal(tt.kind, tt.status))
		})
	}
}

func TestDeprecatedAliasResolution(t *testing.T) {
	tests := []struct {
		alias     string
		canonical string
		label     string
	}{
		{"on_cabin", StatusOnPaintCabin, "On Paint Cabin"},
		{"laminating", StatusOnLaminating, "On Laminating Machine"},
		{"on_oven", StatusOnSchmelzOven, "On Schmelz Oven"},
		{"laminated", StatusOnLaminating, "Laminated"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			assert.Equal(t, tt.canonical, Canonical(KindProductionOrder, tt.alias))
			assert.Equal(t, tt.label, LabelFor(KindProductionOrder, tt.alias))
			assert.Equal(t, ColorFor(KindProductionOrder, tt.canonical), ColorFor(KindProductionOrder, tt.alias),
				"alias should carry its canonical color")
		})
	}
}

func TestAliasesAreNotValidWriteTargets(t *testing.T) {
	for _, alias := range []string{"on_cabin", "laminating", "laminated", "on_oven"} {
		assert.False(t, IsValidStatus(KindProductionOrder, alias), "alias %q must be rejected on write", alias)
	}
}

func TestUnknownStatusDegradesGracefully(t *testing.T) {
	assert.Equal(t, "some_legacy_value", LabelFor(KindProductionOrder, "some_legacy_value"))
	assert.Equal(t, ColorNeutral, ColorFor(KindProductionOrder, "some_legacy_value"))
	assert.False(t, IsTerminal(KindProductionOrder, "some_legacy_value"))
	assert.Equal(t, "some_legacy_value", Canonical(KindProductionOrder, "some_legacy_value"))
}

func TestCanonicalPassesCurrentValuesThrough(t *testing.T) {
	for _, status := range ProductionPipeline {
		assert.Equal(t, status, Canonical(KindProductionOrder, status))
	}
}
