package config

import (
	"fmt"
	"sort"
	"strings"

	gomirror "github.com/jdginn/go-mirror-studio/mirror"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateAngle(field string, angle float64) []ValidationError {
	if angle < -360 || angle > 360 {
		return []ValidationError{{
			Field:   field,
			Message: "angle must be between -360 and 360 degrees",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by config section for display
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}

	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	for _, category := range names {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(category))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			fmt.Fprintf(&b, "  - %s: %s\n", field, err.Message)
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Objects.Validate()...)
	errors = append(errors, c.Viewer.Validate()...)
	errors = append(errors, c.Simulation.Validate()...)
	return errors
}

func (o *Objects) Validate() []ValidationError {
	var errors []ValidationError

	if len(o.Inline) == 0 && o.FromFile == "" {
		errors = append(errors, ValidationError{
			Field:   "objects",
			Message: "either inline or from_file must be specified",
		})
		return errors
	}

	if o.FromFile != "" && !NewPathResolver(".").FileExists(o.FromFile) {
		errors = append(errors, ValidationError{
			Field:   "objects.from_file",
			Message: fmt.Sprintf("file %s does not exist", o.FromFile),
		})
	}

	seen := map[string]bool{}
	for i, obj := range o.Inline {
		section, index := "inline", i
		if o.isFromFile(i) {
			section, index = "from_file", i-(len(o.Inline)-o.fromFileCount)
		}
		prefix := fmt.Sprintf("objects.%s[%d]", section, index)
		if obj.ID == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".id",
				Message: "id is required",
			})
		} else {
			prefix = fmt.Sprintf("objects.%s.%s", section, obj.ID)
			if seen[obj.ID] {
				errors = append(errors, ValidationError{
					Field:   prefix + ".id",
					Message: "duplicate id",
				})
			}
			seen[obj.ID] = true
		}

		kind, err := gomirror.ParseObjectKind(obj.Kind)
		if err != nil {
			errors = append(errors, ValidationError{
				Field:   prefix + ".kind",
				Message: err.Error(),
			})
		} else if kind.Collides() {
			errors = append(errors, validatePositive(prefix+".width", obj.Width)...)
		}
		errors = append(errors, validateNonNegative(prefix+".depth", obj.Depth)...)
		errors = append(errors, validateAngle(prefix+".angle", obj.Angle)...)
	}

	return errors
}

func (v *Viewer) Validate() []ValidationError {
	return validateAngle("viewer.heading", v.Heading)
}

func (s *Simulation) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateNonNegative("simulation.max_length", s.MaxLength)...)
	errors = append(errors, validateNonNegative("simulation.max_bounces", float64(s.MaxBounces))...)
	errors = append(errors, validateNonNegative("simulation.escape_length", s.EscapeLength)...)
	errors = append(errors, validateNonNegative("simulation.hit_epsilon", s.HitEpsilon)...)
	errors = append(errors, validateNonNegative("simulation.sweep.count", float64(s.Sweep.Count))...)
	errors = append(errors, validateInRange("simulation.sweep.half_angle", s.Sweep.HalfAngle, 0, 180)...)
	errors = append(errors, validateNonNegative("simulation.sweep.workers", float64(s.Sweep.Workers))...)

	return errors
}
