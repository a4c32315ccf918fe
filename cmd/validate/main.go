package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/jwebster45206/mathbrain/integration/runner"
	"github.com/jwebster45206/mathbrain/pkg/scenario"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <case.json> [case.json...]\n", os.Args[0])
		os.Exit(1)
	}

	validator := NewCaseValidator()
	failed := false
	for _, filename := range os.Args[1:] {
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}

	fmt.Println("Case files are valid!")
}

// CaseValidator checks integration dialogue files against the skill's scenarios
// and intents, so a typo fails here instead of as a confusing step failure.
type CaseValidator struct {
	scenarios []string
	intents   []string
	errors    []string
}

func NewCaseValidator() *CaseValidator {
	v := &CaseValidator{intents: scenario.Intents()}
	for _, id := range scenario.NewRegistry().IDs() {
		v.scenarios = append(v.scenarios, string(id))
	}
	return v
}

func (v *CaseValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("case file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidCaseFilename(nameWithoutExt) {
		return fmt.Errorf("case filename '%s' must be lowercase snake_case (e.g., my_case.json, not my-case.json or MyCase.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var suite runner.TestSuite
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&suite); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateSuite(&suite)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *CaseValidator) validateSuite(s *runner.TestSuite) {
	if s.Name == "" {
		v.addError("suite has no name")
	}

	if s.IsSequence() {
		if len(s.Steps) > 0 {
			v.addError("a sequence lists cases and cannot have steps of its own")
		}
		for _, c := range s.Cases {
			if !strings.HasSuffix(c, ".json") {
				v.addError(fmt.Sprintf("case reference '%s' should be a .json file", c))
			}
		}
		return
	}

	if len(s.Steps) == 0 {
		v.addError("suite has no steps")
	}

	if raw, ok := s.SeedState["scenario"]; ok {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			v.addError("seed_state scenario must be a string")
		} else {
			v.validateScenario("seed_state scenario", id)
		}
	}

	for i, step := range s.Steps {
		v.validateStep(i, &step)
	}
}

func (v *CaseValidator) validateStep(i int, step *runner.TestStep) {
	where := fmt.Sprintf("step %d (%s)", i, step.Name)

	if step.Utterance == runner.ResetSessionPrompt {
		if len(step.Intents) > 0 || len(step.Slots) > 0 || step.Answer != nil {
			v.addError(where + " resets the session and should carry nothing else")
		}
		return
	}

	for _, name := range step.Intents {
		if !slices.Contains(v.intents, name) && !isValidID(name) {
			v.addError(fmt.Sprintf("%s has unknown intent '%s'", where, name))
		}
	}

	for _, slot := range step.Slots {
		if !slices.Contains(v.intents, slot.Intent) {
			v.addError(fmt.Sprintf("%s fills a slot of unknown intent '%s'", where, slot.Intent))
		}
		if len(slot.Value) == 0 {
			v.addError(fmt.Sprintf("%s has slot %s without a value", where, slot.Slot))
		}
	}

	if step.Expectations.Scenario != nil {
		v.validateScenario(where+" expected scenario", *step.Expectations.Scenario)
	}

	if step.Expectations.ResponseRegex != "" {
		if _, err := regexp.Compile(step.Expectations.ResponseRegex); err != nil {
			v.addError(fmt.Sprintf("%s has invalid response_regex: %v", where, err))
		}
	}
}

func (v *CaseValidator) validateScenario(fieldName, id string) {
	if !slices.Contains(v.scenarios, id) {
		v.addError(fmt.Sprintf("%s '%s' is not a scenario (known: %s)", fieldName, id, strings.Join(v.scenarios, ", ")))
	}
}

func (v *CaseValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

// isValidID accepts intents the skill ignores, as long as they look like intent names.
func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidCaseFilename(name string) bool {
	return validFilenameRegex.MatchString(name)
}
