package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/trackline/internal/presentation/graph"
	"github.com/aretw0/trackline/internal/validator"
	"github.com/aretw0/trackline/pkg/domain"
)

// RenderGraph validates the dialogue graph and writes it as Mermaid.
// A non-empty current step is highlighted.
func RenderGraph(w io.Writer, current string) error {
	transitions := domain.Graph()
	if err := validator.ValidateGraph(transitions, domain.StepGreeting); err != nil {
		return fmt.Errorf("invalid dialogue graph: %w", err)
	}

	var overlay *graph.GraphOverlay
	if current != "" {
		var step domain.Step
		if err := step.UnmarshalText([]byte(current)); err != nil {
			return err
		}
		overlay = &graph.GraphOverlay{CurrentStep: step}
	}

	_, err := io.WriteString(w, graph.GenerateMermaid(transitions, overlay))
	return err
}
