package state

// UserState состояние диалога одного чата
type UserState string

const (
	StateNone UserState = ""

	// Логин
	StateLoginUsername UserState = "login_username"
	StateLoginPassword UserState = "login_password"

	// Мастера: ввод значения поля текущего шага. Какой именно мастер
	// и какое поле - в данных состояния.
	StateWizardField UserState = "wizard_field"

	// Планирование демо
	StateDemoDate    UserState = "demo_date"
	StateDemoTime    UserState = "demo_time"
	StateDemoMessage UserState = "demo_message"

	// Редактирование профиля
	StateProfileMobile  UserState = "profile_mobile"
	StateProfileAddress UserState = "profile_address"
)

// UserData состояние и временные данные диалога
type UserData struct {
	State UserState
	Data  map[string]any
}
