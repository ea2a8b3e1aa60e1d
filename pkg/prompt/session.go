// Package prompt walks the controls of a form in a terminal, writing each
// answer back into the control and re-running its constraint chain until
// the field is valid.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formvalidator/pkg/constraints"
	"github.com/goliatone/go-formvalidator/pkg/form"
	"github.com/goliatone/go-formvalidator/pkg/validator"
)

// Session edits the controls of one form.
type Session struct {
	form        *form.Static
	validator   *validator.FormValidator
	driver      Driver
	maxAttempts int
}

// Option configures a Session.
type Option func(*Session)

// WithDriver overrides the survey driver.
func WithDriver(driver Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithMaxAttempts bounds how often an invalid field is asked again. Zero
// means no limit.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithValidator reuses v instead of creating a validator for the form. v must
// wrap the same form.
func WithValidator(v *validator.FormValidator) Option {
	return func(s *Session) {
		if v != nil {
			s.validator = v
		}
	}
}

// NewSession prepares a session for f.
func NewSession(f *form.Static, options ...Option) (*Session, error) {
	if f == nil {
		return nil, ErrNilForm
	}
	s := &Session{form: f}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.validator == nil {
		v, err := validator.New(f)
		if err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
		s.validator = v
	}
	return s, nil
}

// Validator returns the validator the session applies chains on.
func (s *Session) Validator() *validator.FormValidator {
	return s.validator
}

// Run prompts for every field in document order and returns once each one
// passes its constraints.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("prompt: context is required")
	}
	for _, name := range constraints.FieldNames(s.form) {
		if err := s.promptField(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptField(ctx context.Context, name string) error {
	controls := s.form.Controls(name)
	if len(controls) == 0 {
		return nil
	}
	ask := s.askerFor(controls)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ask(ctx); err != nil {
			return err
		}

		fv, err := constraints.ApplyField(s.validator, name)
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		errs := fv.Errors()
		if len(errs) == 0 {
			return nil
		}
		_ = s.driver.Info(ctx, fmt.Sprintf("Invalid %s: %s", label(controls[0]), strings.Join(errs, "; ")))
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, name)
		}
	}
}

type asker func(ctx context.Context) error

func (s *Session) askerFor(controls []*form.Control) asker {
	first := controls[0]
	switch {
	case form.IsCheckbox(first) && len(controls) == 1:
		return func(ctx context.Context) error { return s.askConfirm(ctx, first) }
	case form.IsCheckbox(first):
		return func(ctx context.Context) error { return s.askMultiSelect(ctx, controls) }
	case len(controls) > 1:
		return func(ctx context.Context) error { return s.askSelect(ctx, controls) }
	case strings.EqualFold(first.Type(), form.TypePassword):
		return func(ctx context.Context) error { return s.askPassword(ctx, first) }
	case strings.EqualFold(first.Type(), form.TypeTextArea):
		return func(ctx context.Context) error { return s.askTextArea(ctx, first) }
	default:
		return func(ctx context.Context) error { return s.askInput(ctx, first) }
	}
}

func (s *Session) askInput(ctx context.Context, control *form.Control) error {
	value, err := s.driver.Input(ctx, InputConfig{
		Message: label(control),
		Default: control.Value(),
		Help:    help(control),
	})
	if err != nil {
		return err
	}
	control.SetValue(value)
	return nil
}

func (s *Session) askPassword(ctx context.Context, control *form.Control) error {
	value, err := s.driver.Password(ctx, InputConfig{
		Message: label(control),
		Default: control.Value(),
		Help:    help(control),
	})
	if err != nil {
		return err
	}
	control.SetValue(value)
	return nil
}

func (s *Session) askTextArea(ctx context.Context, control *form.Control) error {
	value, err := s.driver.TextArea(ctx, TextAreaConfig{
		Message: label(control),
		Default: control.Value(),
		Help:    help(control),
	})
	if err != nil {
		return err
	}
	control.SetValue(value)
	return nil
}

func (s *Session) askConfirm(ctx context.Context, control *form.Control) error {
	checked, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: label(control),
		Default: control.Checked(),
		Help:    help(control),
	})
	if err != nil {
		return err
	}
	control.SetChecked(checked)
	return nil
}

func (s *Session) askSelect(ctx context.Context, controls []*form.Control) error {
	options, current := optionsOf(controls)
	defaultIdx := -1
	if len(current) > 0 {
		defaultIdx = current[0]
	}
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      label(controls[0]),
			Options:      options,
			DefaultIndex: defaultIdx,
			Help:         help(controls[0]),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			_ = s.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", controls[0].Name()))
			continue
		}
		for i, control := range controls {
			control.SetChecked(i == idx)
		}
		return nil
	}
}

func (s *Session) askMultiSelect(ctx context.Context, controls []*form.Control) error {
	options, current := optionsOf(controls)
	indices, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  label(controls[0]),
		Options:  options,
		Defaults: current,
		Help:     help(controls[0]),
	})
	if err != nil {
		return err
	}
	selected := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		selected[idx] = struct{}{}
	}
	for i, control := range controls {
		_, ok := selected[i]
		control.SetChecked(ok)
	}
	return nil
}

// optionsOf lists the member values of a group and the indices currently
// checked.
func optionsOf(controls []*form.Control) ([]string, []int) {
	options := make([]string, len(controls))
	var checked []int
	for i, control := range controls {
		options[i] = control.Value()
		if control.Checked() {
			checked = append(checked, i)
		}
	}
	return options, checked
}

func label(control *form.Control) string {
	if value, ok := control.Attr(form.AttrLabel); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return control.Name()
}

func help(control *form.Control) string {
	var hints []string
	if control.Required() {
		hints = append(hints, "required")
	}
	if value, ok := control.Attr(form.AttrMinLength); ok {
		hints = append(hints, "min length "+value)
	}
	if value, ok := control.Attr(form.AttrMaxLength); ok {
		hints = append(hints, "max length "+value)
	}
	if value, ok := control.Attr(form.AttrMin); ok {
		hints = append(hints, "min "+value)
	}
	if value, ok := control.Attr(form.AttrMax); ok {
		hints = append(hints, "max "+value)
	}
	return strings.Join(hints, ", ")
}
