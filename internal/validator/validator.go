// Package validator checks the structure of the dialogue graph.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/trackline/pkg/domain"
)

// ValidateGraph checks for unknown steps, steps unreachable from start, and
// steps from which no terminal step can be reached.
func ValidateGraph(transitions []domain.Transition, start domain.Step) error {
	forward := make(map[domain.Step][]domain.Step)
	backward := make(map[domain.Step][]domain.Step)

	var errors []string
	for _, t := range transitions {
		for _, s := range []domain.Step{t.From, t.To} {
			if !s.Valid() {
				errors = append(errors, fmt.Sprintf("unknown step '%s' in %s -> %s", s, t.From, t.To))
			}
		}
		forward[t.From] = append(forward[t.From], t.To)
		backward[t.To] = append(backward[t.To], t.From)
	}

	reachable := crawl(forward, start)
	var terminals []domain.Step
	for _, s := range domain.Steps {
		if s.IsTerminal() {
			terminals = append(terminals, s)
		}
	}
	canFinish := crawl(backward, terminals...)

	for _, s := range domain.Steps {
		if !reachable[s] {
			errors = append(errors, fmt.Sprintf("step '%s' is unreachable from '%s'", s, start))
		}
		if !canFinish[s] {
			errors = append(errors, fmt.Sprintf("step '%s' cannot reach a terminal step", s))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

// crawl returns every step reachable from the roots along edges (BFS).
func crawl(edges map[domain.Step][]domain.Step, roots ...domain.Step) map[domain.Step]bool {
	visited := make(map[domain.Step]bool)
	queue := append([]domain.Step(nil), roots...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range edges[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}
	return visited
}
