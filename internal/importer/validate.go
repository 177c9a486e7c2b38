package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateSyllabus(&schema.Syllabus)...)

	phaseRefs := make(map[string]bool)
	errs = append(errs, validatePhases(schema.Phases, phaseRefs)...)
	errs = append(errs, validateEvents(schema.Events, phaseRefs)...)
	errs = append(errs, validateMinuteMap("requirements", schema.Requirements)...)

	return errs
}

func validateSyllabus(s *SyllabusImport) []error {
	var errs []error

	code := domain.Syllabus{Code: strings.ToUpper(s.Code)}
	if err := code.ValidateCode(); err != nil {
		errs = append(errs, fmt.Errorf("syllabus.code: %w", err))
	}
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, fmt.Errorf("syllabus.name is required"))
	}

	return errs
}

func validatePhases(phases []PhaseImport, phaseRefs map[string]bool) []error {
	var errs []error

	for i, p := range phases {
		prefix := fmt.Sprintf("phases[%d]", i)
		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if phaseRefs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref %q is duplicated", prefix, p.Ref))
		} else {
			phaseRefs[p.Ref] = true
		}
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
	}

	return errs
}

func validateEvents(events []EventImport, phaseRefs map[string]bool) []error {
	var errs []error
	eventRefs := make(map[string]bool)

	for i, e := range events {
		prefix := fmt.Sprintf("events[%d]", i)
		if e.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if eventRefs[e.Ref] || phaseRefs[e.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref %q is duplicated", prefix, e.Ref))
		} else {
			eventRefs[e.Ref] = true
		}
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if e.PhaseRef == "" {
			errs = append(errs, fmt.Errorf("%s.phase_ref is required", prefix))
		} else if !phaseRefs[e.PhaseRef] {
			errs = append(errs, fmt.Errorf("%s.phase_ref %q does not match any phase", prefix, e.PhaseRef))
		}
		errs = append(errs, validateMinuteMap(prefix+".minutes", e.Minutes)...)
	}

	return errs
}

func validateMinuteMap(prefix string, m map[string]MinuteValue) []error {
	var errs []error
	for key, v := range m {
		if !domain.ValidCategories[key] {
			errs = append(errs, fmt.Errorf("%s: %w: %q", prefix, domain.ErrUnknownCategory, key))
			continue
		}
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be non-negative, got %d", prefix, key, v))
		}
	}
	return errs
}
