package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorgram/enquiry_bot/internal/validation"
)

type fieldError struct {
	fields map[string]string
}

func (e *fieldError) Error() string                  { return "validation failed" }
func (e *fieldError) FieldErrors() map[string]string { return e.fields }

func noopSubmit(ctx context.Context, v validation.Values) error { return nil }

func registrationSteps(now time.Time) []Step {
	return []Step{
		{Name: "Account", Validate: validation.RegisterAccountStep},
		{Name: "Profile", Validate: validation.RegisterProfileStep(now)},
		{Name: "Address", Validate: validation.RegisterAddressStep},
	}
}

func fillAccount(w *Wizard) {
	w.SetField("username", "nikhh")
	w.SetField("email", "a@b.com")
	w.SetField("password", "123456")
	w.SetField("confirm_password", "123456")
}

func fillProfile(w *Wizard) {
	w.SetField("mobile_number", "9876543210")
	w.SetField("date_of_birth", "2005-03-14")
	w.SetField("student_class", "10")
}

func fillAddress(w *Wizard) {
	w.SetField("street", "12 MG Road")
	w.SetField("city", "Mumbai")
	w.SetField("state", "Maharashtra")
	w.SetField("pin_code", "400001")
	w.SetField("country", "India")
}

func TestWizard_NextBlockedByValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	w := New(registrationSteps(now), noopSubmit)

	done, err := w.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, w.Current(), "invalid step does not advance")
	assert.Contains(t, w.Errors(), "username")
	assert.Contains(t, w.Errors(), "email")

	fillAccount(w)
	done, err = w.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 2, w.Current())
	assert.Empty(t, w.Errors(), "errors are cleared after a passing step")
}

func TestWizard_EndToEnd(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	var submitted validation.Values
	submit := func(ctx context.Context, v validation.Values) error {
		submitted = v
		return nil
	}
	w := New(registrationSteps(now), submit)

	fillAccount(w)
	done, err := w.Next(context.Background())
	require.NoError(t, err)
	require.False(t, done)

	fillProfile(w)
	done, err = w.Next(context.Background())
	require.NoError(t, err)
	require.False(t, done)

	fillAddress(w)
	done, err = w.Next(context.Background())
	require.NoError(t, err)
	assert.True(t, done)

	assert.Equal(t, "nikhh", submitted.Fields["username"])
	assert.Equal(t, "a@b.com", submitted.Fields["email"])
	assert.Equal(t, "9876543210", submitted.Fields["mobile_number"])

	// Успешная отправка сбрасывает мастер
	assert.Equal(t, 1, w.Current())
	assert.Empty(t, w.Values().Fields)
	assert.Empty(t, w.Errors())
}

func TestWizard_PreviousIsUnconditional(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	w := New(registrationSteps(now), noopSubmit)

	fillAccount(w)
	_, err := w.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, w.Current())

	// Назад можно даже с невалидным текущим шагом
	w.SetField("mobile_number", "garbage")
	w.Previous()
	assert.Equal(t, 1, w.Current())

	w.Previous()
	assert.Equal(t, 1, w.Current(), "previous on the first step is a no-op")
}

func TestWizard_SubmitFailureKeepsValues(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	serverErr := &fieldError{fields: map[string]string{"username": "Username already exists"}}
	w := New(registrationSteps(now), func(ctx context.Context, v validation.Values) error {
		return serverErr
	})

	fillAccount(w)
	_, err := w.Next(context.Background())
	require.NoError(t, err)
	fillProfile(w)
	_, err = w.Next(context.Background())
	require.NoError(t, err)
	fillAddress(w)

	done, err := w.Next(context.Background())
	assert.False(t, done)
	require.Error(t, err)
	assert.True(t, errors.Is(err, error(serverErr)))

	assert.Equal(t, 3, w.Current(), "failed submit stays on the last step")
	assert.Equal(t, "nikhh", w.Values().Fields["username"], "entered values survive a failed submit")
	assert.Equal(t, "Username already exists", w.Errors()["username"], "server field errors surface")
}

func TestWizard_ToggleListValue(t *testing.T) {
	w := New([]Step{{Name: "Only"}}, noopSubmit)

	w.ToggleListValue("subjects", "maths")
	w.ToggleListValue("subjects", "physics")
	assert.Equal(t, []string{"maths", "physics"}, w.Values().Lists["subjects"])

	w.ToggleListValue("subjects", "maths")
	assert.Equal(t, []string{"physics"}, w.Values().Lists["subjects"])
}

func TestWizard_StepWithoutValidatorAdvances(t *testing.T) {
	w := New([]Step{{Name: "Free"}, {Name: "Also free"}}, noopSubmit)

	done, err := w.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 2, w.Current())
}
