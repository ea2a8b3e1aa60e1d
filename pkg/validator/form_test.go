package validator_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formvalidator/pkg/form"
	"github.com/goliatone/go-formvalidator/pkg/testsupport"
	"github.com/goliatone/go-formvalidator/pkg/validator"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg any, _ ...any) {
	l.messages = append(l.messages, msg.(string))
}

func newSignupValidator(t *testing.T) (*validator.FormValidator, testsupport.SignupControls) {
	t.Helper()

	static, controls := testsupport.SignupForm()
	v, err := validator.New(static)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v, controls
}

func mustField[T validator.FieldValidator](t *testing.T, v *validator.FormValidator, name string) T {
	t.Helper()

	fv, err := validator.FieldAs[T](v, name)
	if err != nil {
		t.Fatalf("field %q: %v", name, err)
	}
	return fv
}

func TestNewRejectsNilForm(t *testing.T) {
	t.Parallel()

	if _, err := validator.New(nil); !errors.Is(err, validator.ErrNilForm) {
		t.Fatalf("expected ErrNilForm, got %v", err)
	}
}

func TestElementsSnapshot(t *testing.T) {
	t.Parallel()

	v, controls := newSignupValidator(t)
	controls.About.SetValue("changed later")

	want := []validator.ElementAttributes{
		{Name: "name", Type: "text", Required: true},
		{Name: "email", Type: "text"},
		{Name: "age", Type: "number", Required: true},
		{Name: "about", Type: "textarea"},
		{Name: "interests", Type: "checkbox"},
		{Name: "interests", Type: "checkbox"},
	}
	if diff := cmp.Diff(want, v.Elements()); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldDispatchesByElementShape(t *testing.T) {
	t.Parallel()

	v, _ := newSignupValidator(t)
	cases := map[string]validator.Kind{
		"name":      validator.KindString,
		"email":     validator.KindString,
		"age":       validator.KindNumber,
		"about":     validator.KindString,
		"interests": validator.KindGroup,
	}
	for name, want := range cases {
		fv, err := v.Field(name)
		if err != nil {
			t.Fatalf("field %q: %v", name, err)
		}
		if fv.Kind() != want {
			t.Fatalf("field %q: expected kind %s, got %s", name, want, fv.Kind())
		}
		if fv.Name() != name {
			t.Fatalf("field %q: bound to %q", name, fv.Name())
		}
	}
}

func TestFieldIsMemoized(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	static, _ := testsupport.SignupForm()
	v, err := validator.New(static, validator.WithLogger(logger))
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	first, _ := v.Field("name")
	second, _ := v.Field("name")
	if first != second {
		t.Fatalf("expected the same validator instance on repeated Field calls")
	}
	if diff := cmp.Diff([]string{"field materialized"}, logger.messages); diff != "" {
		t.Fatalf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldNotFound(t *testing.T) {
	t.Parallel()

	v, _ := newSignupValidator(t)
	_, err := v.Field("unknown")
	if !errors.Is(err, validator.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	var notFound *validator.FieldNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "unknown" {
		t.Fatalf("expected FieldNotFoundError for unknown, got %#v", err)
	}
	if _, ok := v.ValidateField("unknown"); ok {
		t.Fatalf("unknown field must not be materialized")
	}
}

func TestFieldAsKindMismatch(t *testing.T) {
	t.Parallel()

	v, _ := newSignupValidator(t)
	if _, err := validator.FieldAs[*validator.NumberValidator](v, "name"); !errors.Is(err, validator.ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
}

func TestValidateAggregatesMaterializedFields(t *testing.T) {
	t.Parallel()

	v, controls := newSignupValidator(t)
	name := mustField[*validator.StringValidator](t, v, "name")
	age := mustField[*validator.NumberValidator](t, v, "age")
	interests := mustField[*validator.GroupValidator](t, v, "interests")

	controls.Name.SetValue("")
	controls.Age.SetValue("15")

	name.AsString().Required("Name is required")
	age.AsNumber().Required("Age is required").Min(18, "Too young")
	interests.AsString().Required("Pick an interest")

	if v.Validate() {
		t.Fatalf("expected form to be invalid")
	}
	ageValidity, ok := v.ValidateField("age")
	if !ok {
		t.Fatalf("expected age snapshot")
	}
	if ageValidity.IsValid || !cmp.Equal([]string{"Too young"}, ageValidity.Errors) {
		t.Fatalf("unexpected age snapshot: %#v", ageValidity)
	}
	if ageValidity.Value != "15" || ageValidity.Element != controls.Age {
		t.Fatalf("expected live value and bound element, got %#v", ageValidity)
	}

	controls.Name.SetValue("Bob")
	controls.Age.SetValue("22")
	controls.InterestMusic.SetChecked(true)

	// Changing values alone does not refresh the cached errors.
	if v.Validate() {
		t.Fatalf("expected stale errors to keep the form invalid until rules re-run")
	}

	name.AsString().Required().MinLength(2)
	age.AsNumber().Required().Min(18).Positive()
	interests.AsString().Required()

	if !v.Validate() {
		t.Fatalf("expected form to be valid")
	}
	for _, validity := range v.AllValidity() {
		if !validity.IsValid {
			t.Fatalf("expected %q to be valid, got %v", validity.Name, validity.Errors)
		}
	}
}

func TestValidateIgnoresUntouchedFields(t *testing.T) {
	t.Parallel()

	v, controls := newSignupValidator(t)
	controls.Email.SetValue("broken")

	mustField[*validator.StringValidator](t, v, "name").AsString().Required()
	mustField[*validator.NumberValidator](t, v, "age").AsNumber().Required()

	if v.Validate() {
		t.Fatalf("expected invalid form")
	}
	all := v.AllValidity()
	if len(all) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(all))
	}
	if _, ok := v.ValidateField("email"); ok {
		t.Fatalf("email was never requested and must not have a snapshot")
	}

	fresh, _ := newSignupValidator(t)
	if !fresh.Validate() {
		t.Fatalf("a validator with no materialized fields is valid")
	}
}

func TestAllValidityKeepsFirstAccessOrder(t *testing.T) {
	t.Parallel()

	v, controls := newSignupValidator(t)
	controls.InterestArt.SetChecked(true)

	for _, name := range []string{"interests", "name", "email", "name"} {
		if _, err := v.Field(name); err != nil {
			t.Fatalf("field %q: %v", name, err)
		}
	}
	_, _ = v.Field("unknown")

	var names []string
	for _, validity := range v.AllValidity() {
		names = append(names, validity.Name)
	}
	if diff := cmp.Diff([]string{"interests", "name", "email"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	group, _ := v.ValidateField("interests")
	if diff := cmp.Diff([]string{"art"}, group.Values); diff != "" {
		t.Fatalf("group values mismatch (-want +got):\n%s", diff)
	}
	if group.Value != "music" {
		t.Fatalf("expected group value to be the first member value, got %q", group.Value)
	}
}

func TestKindSwitchReturnsDetachedValidator(t *testing.T) {
	t.Parallel()

	v, controls := newSignupValidator(t)
	controls.Name.SetValue("abc")

	cached := mustField[*validator.StringValidator](t, v, "name")
	cached.AsString().MinLength(5, "short")

	switched := cached.AsNumber().Integer("not a number")
	if diff := cmp.Diff([]string{"not a number"}, switched.Errors()); diff != "" {
		t.Fatalf("switched errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"short"}, cached.Errors()); diff != "" {
		t.Fatalf("cached errors must be untouched (-want +got):\n%s", diff)
	}

	again, _ := v.Field("name")
	if again != validator.FieldValidator(cached) {
		t.Fatalf("kind switch must not replace the cached validator")
	}
	snapshot, _ := v.ValidateField("name")
	if diff := cmp.Diff([]string{"short"}, snapshot.Errors); diff != "" {
		t.Fatalf("snapshot errors mismatch (-want +got):\n%s", diff)
	}

	back := switched.AsString()
	if len(back.Errors()) != 0 || back == cached {
		t.Fatalf("AsString on a number validator must return a fresh string validator")
	}
}

func TestRadioListMaterializesAsString(t *testing.T) {
	t.Parallel()

	free := form.NewControl("plan", form.TypeRadio, form.WithValue("free"))
	pro := form.NewControl("plan", form.TypeRadio, form.WithValue("pro"))
	v, err := validator.New(form.New("billing", free, pro))
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	plan := mustField[*validator.StringValidator](t, v, "plan")
	plan.AsString().Required("Choose a plan")
	if diff := cmp.Diff([]string{"Choose a plan"}, plan.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	pro.SetChecked(true)
	plan.AsString().Required("Choose a plan").Custom(func(value string) bool { return value == "pro" }, "pro only")
	if len(plan.Errors()) != 0 || plan.Value() != "pro" {
		t.Fatalf("expected checked radio value to validate, got %q %v", plan.Value(), plan.Errors())
	}
}

func TestScenarioEveryFieldFailsOnItsOwnRule(t *testing.T) {
	t.Parallel()

	v, controls := newSignupValidator(t)
	name := mustField[*validator.StringValidator](t, v, "name")
	email := mustField[*validator.StringValidator](t, v, "email")
	age := mustField[*validator.NumberValidator](t, v, "age")
	interests := mustField[*validator.GroupValidator](t, v, "interests")

	controls.Name.SetValue(" ")
	controls.Email.SetValue("broken")
	controls.Age.SetValue("-1")

	name.AsString().Required("Name needed")
	email.AsString().Email("Bad email")
	age.AsNumber().Required("Age needed").Positive("Must be > 0").Integer("Whole").Min(10, "Too low")
	interests.AsString().Required("No interests")

	if v.Validate() {
		t.Fatalf("expected invalid form")
	}
	want := map[string][]string{
		"name":      {"Name needed"},
		"email":     {"Bad email"},
		"age":       {"Must be > 0", "Too low"},
		"interests": {"No interests"},
	}
	got := make(map[string][]string)
	for _, validity := range v.AllValidity() {
		got[validity.Name] = validity.Errors
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioHappyPath(t *testing.T) {
	t.Parallel()

	v, controls := newSignupValidator(t)
	controls.Name.SetValue("Charlie")
	controls.Email.SetValue("charlie@test.io")
	controls.Age.SetValue("25")
	controls.InterestMusic.SetChecked(true)

	mustField[*validator.StringValidator](t, v, "name").AsString().Required().MinLength(2)
	mustField[*validator.StringValidator](t, v, "email").AsString().Email()
	mustField[*validator.NumberValidator](t, v, "age").AsNumber().Required().Positive().Integer().Min(18).Max(30)
	mustField[*validator.GroupValidator](t, v, "interests").AsString().Required()

	if !v.Validate() {
		t.Fatalf("expected valid form")
	}
	if got := len(v.AllValidity()); got != 4 {
		t.Fatalf("expected 4 snapshots, got %d", got)
	}
}
