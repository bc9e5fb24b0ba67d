package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/trackline/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedSteps []domain.Step
	CurrentStep  domain.Step
}

// GenerateMermaid produces a Mermaid flowchart from the dialogue transitions.
// It applies semantic styling:
// - Greeting: ((Circle))
// - Done: (((Double circle)))
// - Steps waiting for the user: [/Parallelogram/]
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(transitions []domain.Transition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, step := range stepsOf(transitions) {
		opener, closer := "[/", "/]"
		switch step {
		case domain.StepGreeting:
			opener, closer = "((", "))"
		case domain.StepDone:
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(step), opener, step, closer)
	}

	for _, t := range transitions {
		arrow := "-->"
		if t.Condition != "" {
			// Escape double quotes in condition for Mermaid label
			arrow = fmt.Sprintf("-- \"%s\" -->", strings.ReplaceAll(t.Condition, "\"", "'"))
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(t.From), arrow, sanitizeMermaidID(t.To))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.Step]bool)
		for _, step := range overlay.VisitedSteps {
			if step == "" || seen[step] || step == overlay.CurrentStep {
				continue
			}
			seen[step] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", sanitizeMermaidID(step))
		}

		if overlay.CurrentStep != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentStep))
		}
	}

	return sb.String()
}

// stepsOf lists the steps touched by transitions, in first-seen order.
func stepsOf(transitions []domain.Transition) []domain.Step {
	seen := make(map[domain.Step]bool)
	var out []domain.Step
	for _, t := range transitions {
		for _, s := range []domain.Step{t.From, t.To} {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func sanitizeMermaidID(step domain.Step) string {
	s := strings.ReplaceAll(string(step), ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
