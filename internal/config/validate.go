package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Line     int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.Line, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
	}
	if e.FilePath != "" {
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
	return e.Message
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax.
// Returns nil if valid, or a ValidationError with line information if invalid.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Missing file is not an error - defaults apply
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	// Empty file is valid - defaults apply
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			return &ValidationError{
				FilePath: filePath,
				Message:  strings.Join(typeError.Errors, "; "),
			}
		}
		return &ValidationError{
			FilePath: filePath,
			Line:     extractLine(err.Error()),
			Message:  err.Error(),
		}
	}

	return nil
}

// lineInfo extracts the line number yaml.v3 embeds in its error messages.
var lineInfo = regexp.MustCompile(`line (\d+)`)

func extractLine(msg string) int {
	m := lineInfo.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	line, _ := strconv.Atoi(m[1])
	return line
}

// ValidateConfigValues checks the loaded configuration against the struct's
// validate tags (non-negative counts, sane wrap width).
func ValidateConfigValues(cfg *Configuration) error {
	validate := validator.New()
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("validating config: %w", err)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:   configKey(fe.StructField()),
			Message: fmt.Sprintf("value %v fails constraint '%s'", fe.Value(), fe.Tag()),
		}
	}

	return err
}

// configKey maps a struct field name to its koanf key.
func configKey(field string) string {
	switch field {
	case "ChangesFile":
		return "changes_file"
	case "MetadataFile":
		return "metadata_file"
	case "Commits":
		return "commits"
	case "Skip":
		return "skip"
	case "Author":
		return "author"
	case "WrapWidth":
		return "wrap_width"
	default:
		return field
	}
}
