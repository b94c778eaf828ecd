package entities

import (
	"fmt"
	"strings"
)

// Step is one externally visible action of a provisioning run: the phase it
// belongs to, a human description, and the command line it issues (empty for
// steps performed in-process, such as archive extraction).
type Step struct {
	Phase       string
	Description string
	Command     []string
}

// Plan is the ordered list of steps a provisioning run would execute.
type Plan struct {
	Steps []Step
}

// Add appends a step to the plan.
func (p *Plan) Add(phase, description string, command ...string) {
	p.Steps = append(p.Steps, Step{
		Phase:       phase,
		Description: description,
		Command:     command,
	})
}

// Append merges another plan's steps onto this one.
func (p *Plan) Append(other Plan) {
	p.Steps = append(p.Steps, other.Steps...)
}

// Render formats the plan for console output, one numbered step per line.
func (p Plan) Render() string {
	var sb strings.Builder
	currentPhase := ""
	for i, step := range p.Steps {
		if step.Phase != currentPhase {
			currentPhase = step.Phase
			sb.WriteString(currentPhase + ":\n")
		}
		sb.WriteString(fmt.Sprintf("  %-4s%s", fmt.Sprintf("%d.", i+1), step.Description))
		if len(step.Command) > 0 {
			sb.WriteString("\n       $ ")
			sb.WriteString(strings.Join(step.Command, " "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
