package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError reports a config file that cannot be parsed or a setting
// whose value is out of range.
type ValidationError struct {
	// Source is the file path, or "config" for the merged settings.
	Source string
	// Line is the 1-based line of a YAML syntax error, 0 otherwise.
	Line int
	// Key is the offending setting, e.g. "max_tags".
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Message)
	case e.Key != "":
		return fmt.Sprintf("%s: %s %s", e.Source, e.Key, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Source, e.Message)
	}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// yaml.v3 reports syntax errors as "yaml: line N: message".
var yamlLinePattern = regexp.MustCompile(`^yaml: line (\d+): (.+)$`)

// CheckYAMLFile checks the config file at path. A missing file is fine.
func CheckYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &ValidationError{Source: path, Message: err.Error()}
	}
	return CheckYAML(data, path)
}

// CheckYAML checks that data is empty or a YAML mapping of known settings.
func CheckYAML(data []byte, source string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		ve := &ValidationError{Source: source, Message: strings.TrimPrefix(err.Error(), "yaml: ")}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			ve.Line, _ = strconv.Atoi(m[1])
			ve.Message = m[2]
		}
		return ve
	}

	// Empty or comment-only files have no content node.
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return &ValidationError{Source: source, Line: root.Line, Message: "expected a mapping of settings"}
	}

	known := Keys()
	for i := 0; i < len(root.Content); i += 2 {
		key := root.Content[i]
		if !slices.Contains(known, key.Value) {
			return &ValidationError{
				Source:  source,
				Line:    key.Line,
				Message: fmt.Sprintf("unknown setting %q (known: %s)", key.Value, strings.Join(known, ", ")),
			}
		}
	}
	return nil
}

// Keys returns the setting names accepted in config files, in field order.
func Keys() []string {
	t := reflect.TypeOf(Configuration{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, koanfKey(t.Field(i)))
	}
	return keys
}

func koanfKey(fld reflect.StructField) string {
	if name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ","); name != "" {
		return name
	}
	return fld.Name
}

// validateValues checks the merged settings against their validate tags.
// Only the first failing setting is reported.
func validateValues(cfg *Configuration) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(koanfKey)

	err := validate.Struct(cfg)
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		return &ValidationError{Source: "config", Key: fieldErrs[0].Field(), Message: describeRule(fieldErrs[0])}
	case err != nil:
		return &ValidationError{Source: "config", Message: err.Error()}
	}

	// validator's url rule accepts any scheme; links need a web URL
	if !strings.HasPrefix(cfg.RepoURL, "http://") && !strings.HasPrefix(cfg.RepoURL, "https://") {
		return &ValidationError{Source: "config", Key: "repo_url", Message: "must be an http(s) URL"}
	}
	return nil
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	}
	return "fails the " + fe.Tag() + " rule"
}
