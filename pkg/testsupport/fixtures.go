// Package testsupport holds fixtures and comparison helpers shared by the
// package tests.
package testsupport

import (
	"context"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formvalidator/pkg/form"
)

// SignupControls exposes the controls of SignupForm so tests can change
// values between validation passes.
type SignupControls struct {
	Name          *form.Control
	Email         *form.Control
	Age           *form.Control
	About         *form.Control
	InterestMusic *form.Control
	InterestArt   *form.Control
}

// SignupForm returns a fresh form with a required text name, an optional
// text email, a required number age, a textarea about and a two-member
// interests checkbox group.
func SignupForm() (*form.Static, SignupControls) {
	controls := SignupControls{
		Name:          form.NewControl("name", form.TypeText, form.WithRequired()),
		Email:         form.NewControl("email", form.TypeText),
		Age:           form.NewControl("age", form.TypeNumber, form.WithRequired()),
		About:         form.NewControl("about", form.TypeTextArea),
		InterestMusic: form.NewControl("interests", form.TypeCheckbox, form.WithValue("music")),
		InterestArt:   form.NewControl("interests", form.TypeCheckbox, form.WithValue("art")),
	}

	static := form.New("signup",
		controls.Name,
		controls.Email,
		controls.Age,
		controls.About,
		controls.InterestMusic,
		controls.InterestArt,
	)
	return static, controls
}

// Diff returns a go-cmp diff string if the values differ.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
