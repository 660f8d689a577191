// Package steps provides step definitions and dependency validation
// for the summarization pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Step names
const (
	StepNormalize = "normalize"
	StepReason    = "reason"
	StepVerify    = "verify"
	StepSimplify  = "simplify"
	StepCritique  = "critique"
	StepRefine    = "refine"
)

// Step categories
const (
	CategoryInput  = "input"
	CategoryAgent  = "agent"
	CategoryOutput = "output"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Description  string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepNormalize: {
		Name:         StepNormalize,
		Category:     CategoryInput,
		Description:  "input_processor",
		Dependencies: []string{},
	},
	StepReason: {
		Name:         StepReason,
		Category:     CategoryAgent,
		Description:  "reasoning_agent",
		Dependencies: []string{StepNormalize},
	},
	StepVerify: {
		Name:         StepVerify,
		Category:     CategoryAgent,
		Description:  "verification_agent",
		Dependencies: []string{StepNormalize, StepReason},
	},
	StepSimplify: {
		Name:         StepSimplify,
		Category:     CategoryAgent,
		Description:  "simplification_agent",
		Dependencies: []string{StepReason},
	},
	StepCritique: {
		Name:         StepCritique,
		Category:     CategoryAgent,
		Description:  "critique_agent",
		Dependencies: []string{StepNormalize, StepReason},
	},
	StepRefine: {
		Name:         StepRefine,
		Category:     CategoryOutput,
		Description:  "output_refiner",
		Dependencies: []string{StepReason, StepVerify, StepSimplify, StepCritique},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every required dependency of stepName is in completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// GetAvailableSteps returns steps not yet completed whose dependencies are met, sorted by name
func GetAvailableSteps(completed map[string]bool) []string {
	var available []string
	for name := range StepRegistry {
		if completed[name] {
			continue
		}
		if err := ValidateDependencies(completed, name); err != nil {
			continue
		}
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

// ExecutionOrder returns the steps grouped into stages; steps within a stage are independent.
func ExecutionOrder() ([][]string, error) {
	completed := make(map[string]bool, len(StepRegistry))

	var stages [][]string
	for len(completed) < len(StepRegistry) {
		stage := GetAvailableSteps(completed)
		if len(stage) == 0 {
			return nil, fmt.Errorf("step registry has a dependency cycle")
		}
		for _, name := range stage {
			completed[name] = true
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

// Names returns every registered step name sorted alphabetically
func Names() []string {
	names := make([]string, 0, len(StepRegistry))
	for name := range StepRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
