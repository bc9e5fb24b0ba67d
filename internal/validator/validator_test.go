package validator

import (
	"testing"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGraph_Dialogue(t *testing.T) {
	assert.NoError(t, ValidateGraph(domain.Graph(), domain.StepGreeting))
}

func TestValidateGraph_Unreachable(t *testing.T) {
	var edges []domain.Transition
	for _, tr := range domain.Graph() {
		if tr.To != domain.StepAwaitAlternateID {
			edges = append(edges, tr)
		}
	}

	err := ValidateGraph(edges, domain.StepGreeting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'await_alternate_id' is unreachable")
}

func TestValidateGraph_DeadEnd(t *testing.T) {
	var edges []domain.Transition
	for _, tr := range domain.Graph() {
		if tr.From != domain.StepAwaitHumanHandoff {
			edges = append(edges, tr)
		}
	}

	err := ValidateGraph(edges, domain.StepGreeting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'await_human_handoff' cannot reach a terminal step")
}

func TestValidateGraph_UnknownStep(t *testing.T) {
	edges := append(domain.Graph(), domain.Transition{From: domain.StepDone, To: "limbo"})

	err := ValidateGraph(edges, domain.StepGreeting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step 'limbo'")
}
