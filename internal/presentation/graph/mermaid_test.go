package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/trackline/internal/presentation/graph"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		transitions []domain.Transition
		overlay     *graph.GraphOverlay
		contains    []string
		excludes    []string
	}{
		{
			name:        "Shapes",
			transitions: []domain.Transition{{From: domain.StepGreeting, To: domain.StepAwaitHasTracking}, {From: domain.StepAwaitHasTracking, To: domain.StepDone}},
			contains: []string{
				`greeting(("greeting"))`,
				`await_has_tracking[/"await_has_tracking"/]`,
				`done((("done")))`,
			},
		},
		{
			name:        "Conditions",
			transitions: []domain.Transition{{From: domain.StepAwaitHasTracking, To: domain.StepAwaitAlternateID, Condition: `say "no"`}},
			contains: []string{
				`await_has_tracking -- "say 'no'" --> await_alternate_id`,
			},
		},
		{
			name:        "Unconditional",
			transitions: []domain.Transition{{From: domain.StepAwaitHumanHandoff, To: domain.StepDone}},
			contains:    []string{"await_human_handoff --> done"},
		},
		{
			name:        "Overlay",
			transitions: domain.Graph(),
			overlay: &graph.GraphOverlay{
				VisitedSteps: []domain.Step{domain.StepGreeting, domain.StepAwaitHasTracking, domain.StepGreeting, domain.StepAwaitTrackingNumber},
				CurrentStep:  domain.StepAwaitTrackingNumber,
			},
			contains: []string{
				"classDef current",
				"class greeting visited;",
				"class await_has_tracking visited;",
				"class await_tracking_number current;",
			},
			excludes: []string{"class await_tracking_number visited;"},
		},
		{
			name:        "No Overlay",
			transitions: domain.Graph(),
			excludes:    []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.transitions, tt.overlay)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
			if tt.overlay != nil {
				assert.Equal(t, 1, strings.Count(got, "class greeting visited;"))
			}
		})
	}
}

func TestGenerateMermaid_FullGraphListsEveryStep(t *testing.T) {
	got := graph.GenerateMermaid(domain.Graph(), nil)
	for _, s := range domain.Steps {
		assert.Contains(t, got, `"`+string(s)+`"`)
	}
}
