package wizard

import (
	"context"
	"errors"

	"github.com/tutorgram/enquiry_bot/internal/validation"
)

// Step один шаг мастера. Validate может быть nil для шага без проверок.
type Step struct {
	Name     string
	Validate validation.StepValidator
}

// SubmitFunc отправляет накопленные значения во внешний API
type SubmitFunc func(ctx context.Context, v validation.Values) error

// FieldErrorer ошибка отправки, несущая карту поле -> сообщение
// (серверная валидация). Мастер раскладывает её обратно в Errors.
type FieldErrorer interface {
	FieldErrors() map[string]string
}

// Wizard контроллер многошаговой формы. Вперёд - только через
// валидацию текущего шага, назад - всегда без перепроверки.
// Политика единая для всех флоу: каждый шаг валидируется на Next.
type Wizard struct {
	steps      []Step
	current    int // 1-based
	values     validation.Values
	errors     map[string]string
	submit     SubmitFunc
	submitting bool
}

func New(steps []Step, submit SubmitFunc) *Wizard {
	return &Wizard{
		steps:   steps,
		current: 1,
		values:  validation.NewValues(),
		errors:  make(map[string]string),
		submit:  submit,
	}
}

// Current номер текущего шага, в границах [1, StepCount]
func (w *Wizard) Current() int { return w.current }

func (w *Wizard) StepCount() int { return len(w.steps) }

func (w *Wizard) StepName() string { return w.steps[w.current-1].Name }

func (w *Wizard) Submitting() bool { return w.submitting }

// Values накопленные значения формы
func (w *Wizard) Values() validation.Values { return w.values }

// Errors ошибки последней проверки или отправки
func (w *Wizard) Errors() map[string]string { return w.errors }

func (w *Wizard) SetField(name, value string) {
	w.values.Fields[name] = value
}

func (w *Wizard) SetList(name string, values []string) {
	w.values.Lists[name] = values
}

// ToggleListValue добавляет или убирает значение спискового поля
func (w *Wizard) ToggleListValue(name, value string) {
	current := w.values.Lists[name]
	for i, v := range current {
		if v == value {
			w.values.Lists[name] = append(current[:i], current[i+1:]...)
			return
		}
	}
	w.values.Lists[name] = append(current, value)
}

// Next валидирует текущий шаг. При ошибках остаётся на месте и
// заполняет Errors. На последнем шаге запускает отправку; успешная
// отправка сбрасывает мастер, неуспешная сохраняет введённые
// значения и поднимает серверные ошибки полей в Errors.
// Возвращает true, когда форма успешно отправлена.
func (w *Wizard) Next(ctx context.Context) (bool, error) {
	if w.submitting {
		return false, nil
	}
	step := w.steps[w.current-1]
	if step.Validate != nil {
		if errs := step.Validate(w.values); len(errs) > 0 {
			w.errors = errs
			return false, nil
		}
	}
	w.errors = make(map[string]string)

	if w.current < len(w.steps) {
		w.current++
		return false, nil
	}
	if err := w.doSubmit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (w *Wizard) doSubmit(ctx context.Context) error {
	w.submitting = true
	defer func() { w.submitting = false }()

	err := w.submit(ctx, w.values)
	if err == nil {
		w.Reset()
		return nil
	}
	var fe FieldErrorer
	if errors.As(err, &fe) {
		w.errors = fe.FieldErrors()
	}
	return err
}

// Previous шаг назад без перепроверки; на первом шаге ничего не делает
func (w *Wizard) Previous() {
	if w.current > 1 {
		w.current--
	}
}

// Reset возвращает мастер в исходное состояние
func (w *Wizard) Reset() {
	w.current = 1
	w.values = validation.NewValues()
	w.errors = make(map[string]string)
}
