package gcode

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrAmbiguousSource is returned when discovery finds more than one file.
	ErrAmbiguousSource = errors.New("ambiguous gcode source")
	// ErrMissingSource is returned when no file is found or the descriptor
	// lacks a required field.
	ErrMissingSource = errors.New("missing gcode source")
)

const (
	// DefaultPattern is the glob used when no descriptor is supplied.
	DefaultPattern = "*.gcode"
	// DescriptorExtension is appended to Descriptor.FileName.
	DescriptorExtension = ".Gcode"
)

// Descriptor names a Gcode file by directory and base name, without extension.
type Descriptor struct {
	FilePath string `json:"filePath" yaml:"file_path" toml:"file_path" validate:"required"`
	FileName string `json:"fileName" yaml:"file_name" toml:"file_name" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that both fields are set. The error wraps ErrMissingSource.
func (d Descriptor) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrMissingSource, err)
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("%w: descriptor is missing %s", ErrMissingSource, strings.Join(missing, ", "))
}

// Locator resolves the single file a table is built from.
type Locator interface {
	Locate() (string, error)
}

// NewLocator returns a DescriptorLocator when desc is set and a GlobLocator
// over dir otherwise.
func NewLocator(desc *Descriptor, dir string) Locator {
	if desc == nil {
		return GlobLocator{Dir: dir}
	}
	return DescriptorLocator{Descriptor: *desc}
}

// GlobLocator finds exactly one file matching Pattern in Dir.
type GlobLocator struct {
	Dir     string
	Pattern string
}

func (l GlobLocator) Locate() (string, error) {
	pattern := l.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := filepath.Glob(filepath.Join(l.Dir, pattern))
	if err != nil {
		return "", fmt.Errorf("failed to search for %s: %w", pattern, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no file matches %s", ErrMissingSource, pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %d files match %s", ErrAmbiguousSource, len(matches), pattern)
	}
}

// DescriptorLocator builds FilePath/FileName.Gcode.
type DescriptorLocator struct {
	Descriptor Descriptor
}

func (l DescriptorLocator) Locate() (string, error) {
	if err := l.Descriptor.Validate(); err != nil {
		return "", err
	}
	return filepath.Join(l.Descriptor.FilePath, l.Descriptor.FileName+DescriptorExtension), nil
}
