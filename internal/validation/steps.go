package validation

import "time"

// Values накопленные значения формы мастера. Списковые поля
// (доски, классы, предметы) хранятся отдельно от строковых.
type Values struct {
	Fields map[string]string
	Lists  map[string][]string
}

func NewValues() Values {
	return Values{
		Fields: make(map[string]string),
		Lists:  make(map[string][]string),
	}
}

// StepValidator проверяет один шаг мастера и возвращает карту
// поле -> сообщение. Пустая карта означает что шаг пройден.
type StepValidator func(v Values) map[string]string

// BookingPersonalStep шаг 1 мастера офлайн-заявки: контактные данные
func BookingPersonalStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "username", ValidateUsername(v.Fields["username"]))
	putError(errs, "email", ValidateEmail(v.Fields["email"]))
	putError(errs, "mobile_number", ValidateMobileNumber(v.Fields["mobile_number"]))
	putError(errs, "home_address", ValidateRequired(v.Fields["home_address"], "Address is required"))
	return errs
}

// BookingRequirementsStep шаг 2: что и на каком языке учить
func BookingRequirementsStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "board", ValidateMultiSelect(v.Lists["board"], "board", 1, 0))
	putError(errs, "classes", ValidateMultiSelect(v.Lists["classes"], "class", 1, 0))
	putError(errs, "subjects", ValidateMultiSelect(v.Lists["subjects"], "subject", 1, 10))
	putError(errs, "teaching_language", ValidateRequired(v.Fields["teaching_language"], "Please select teaching language"))
	putError(errs, "teaching_section", ValidateRequired(v.Fields["teaching_section"], "Please select teaching section"))
	return errs
}

// BookingScheduleStep шаг 3: время и бюджет. Ошибка диапазона
// приписывается второму полю пары, как у confirm_password.
func BookingScheduleStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "teaching_starttime", ValidateTime(v.Fields["teaching_starttime"]))
	putError(errs, "teaching_endtime", ValidateTime(v.Fields["teaching_endtime"]))
	if errs["teaching_starttime"] == "" && errs["teaching_endtime"] == "" {
		putError(errs, "teaching_endtime", ValidateTimeRange(v.Fields["teaching_starttime"], v.Fields["teaching_endtime"]))
	}
	putError(errs, "minimum_price", ValidatePrice(v.Fields["minimum_price"]))
	putError(errs, "maximum_price", ValidatePrice(v.Fields["maximum_price"]))
	if errs["minimum_price"] == "" && errs["maximum_price"] == "" {
		putError(errs, "maximum_price", ValidatePriceRange(v.Fields["minimum_price"], v.Fields["maximum_price"]))
	}
	return errs
}

// RegisterAccountStep шаг 1 регистрации: учётные данные
func RegisterAccountStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "username", ValidateUsername(v.Fields["username"]))
	putError(errs, "email", ValidateEmail(v.Fields["email"]))
	putError(errs, "password", ValidatePassword(v.Fields["password"]))
	putError(errs, "confirm_password", ValidateConfirmPassword(v.Fields["password"], v.Fields["confirm_password"]))
	return errs
}

// RegisterProfileStep шаг 2 регистрации студента: профиль
func RegisterProfileStep(now time.Time) StepValidator {
	return func(v Values) map[string]string {
		errs := make(map[string]string)
		putError(errs, "mobile_number", ValidateIndianMobile(v.Fields["mobile_number"]))
		putError(errs, "date_of_birth", ValidateDateOfBirth(v.Fields["date_of_birth"], now))
		putError(errs, "student_class", ValidateStudentClass(v.Fields["student_class"]))
		return errs
	}
}

// RegisterAddressStep шаг 3 регистрации: адрес
func RegisterAddressStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "street", ValidateStreet(v.Fields["street"]))
	putError(errs, "city", ValidateCity(v.Fields["city"]))
	putError(errs, "state", ValidateState(v.Fields["state"]))
	putError(errs, "pin_code", ValidatePinCode(v.Fields["pin_code"]))
	putError(errs, "country", ValidateCountry(v.Fields["country"]))
	return errs
}

// TutorQualificationsStep шаг 2 регистрации репетитора
func TutorQualificationsStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "mobile_number", ValidateIndianMobile(v.Fields["mobile_number"]))
	putError(errs, "subjects", ValidateMultiSelect(v.Lists["subjects"], "subject", 1, 10))
	putError(errs, "experience", ValidateExperience(v.Fields["experience"]))
	putError(errs, "price", ValidatePrice(v.Fields["price"]))
	return errs
}

// TutorAvailabilityStep шаг 3 регистрации репетитора: слоты доступности
func TutorAvailabilityStep(slots func(v Values) []Slot) StepValidator {
	return func(v Values) map[string]string {
		errs := make(map[string]string)
		putError(errs, "availability", ValidateSlots(slots(v)))
		return errs
	}
}

// DemoContactStep шаг 1 прямой записи на демо: контакты
func DemoContactStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "contact_name", ValidateRequired(v.Fields["contact_name"], "Contact name is required"))
	putError(errs, "contact_email", ValidateEmail(v.Fields["contact_email"]))
	putError(errs, "contact_mobile", ValidateMobileNumber(v.Fields["contact_mobile"]))
	return errs
}

// DemoScheduleStep шаг 2 прямой записи: репетитор, дата и место
func DemoScheduleStep(v Values) map[string]string {
	errs := make(map[string]string)
	putError(errs, "tutor_id", ValidateNumericID(v.Fields["tutor_id"], "Tutor id"))
	putError(errs, "demo_date", ValidateDate(v.Fields["demo_date"]))
	putError(errs, "demo_time", ValidateTime(v.Fields["demo_time"]))
	putError(errs, "address", ValidateRequired(v.Fields["address"], "Address is required"))
	return errs
}

func putError(errs map[string]string, field, msg string) {
	if msg != "" {
		errs[field] = msg
	}
}
