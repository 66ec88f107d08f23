package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex    = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	mobileRegex      = regexp.MustCompile(`^[0-9]{10}$`)
	indianPhoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigitRegex    = regexp.MustCompile(`\D`)
	lettersRegex     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	pinCodeRegex     = regexp.MustCompile(`^\d{6}$`)
	timeRegex        = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// Границы цены за занятие в рупиях
const (
	MinPrice = 50
	MaxPrice = 10000
)

// ValidateUsername 3-20 символов, латиница, цифры и подчёркивание
func ValidateUsername(username string) string {
	if username == "" {
		return "Username is required"
	}
	if len(username) < 3 {
		return "Username must be at least 3 characters"
	}
	if len(username) > 20 {
		return "Username must be at most 20 characters"
	}
	if !usernameRegex.MatchString(username) {
		return "Username can only contain letters, numbers, and underscores"
	}
	return ""
}

func ValidateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return "Invalid email format"
	}
	return ""
}

// ValidateMobileNumber 10 цифр после удаления нецифровых символов
func ValidateMobileNumber(mobile string) string {
	if mobile == "" {
		return "Mobile number is required"
	}
	if !mobileRegex.MatchString(nonDigitRegex.ReplaceAllString(mobile, "")) {
		return "Mobile number must be 10 digits"
	}
	return ""
}

// ValidateIndianMobile строгий вариант: первая цифра 6-9
func ValidateIndianMobile(mobile string) string {
	if mobile == "" {
		return "Mobile number is required"
	}
	if !indianPhoneRegex.MatchString(nonDigitRegex.ReplaceAllString(mobile, "")) {
		return "Mobile number must be a valid 10-digit Indian number (start with 6-9)"
	}
	return ""
}

// ValidatePassword мягкая политика: минимум 6 символов.
// Строгая схема (верхний+нижний регистр, цифра, спецсимвол, минимум 8)
// в исходном продукте была отключена, здесь не реализуется.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

func ValidateConfirmPassword(password, confirm string) string {
	if confirm == "" {
		return "Confirm password is required"
	}
	if password != confirm {
		return "Passwords do not match"
	}
	return ""
}

// ValidateDateOfBirth дата в формате YYYY-MM-DD, не в будущем,
// возраст от 5 до 100 лет включительно. Возраст считается полными
// годами: если день рождения в этом году ещё не наступил, год не засчитан.
func ValidateDateOfBirth(dob string, now time.Time) string {
	if dob == "" {
		return "Date of birth is required"
	}
	date, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return "Invalid date format"
	}
	if date.After(now) {
		return "Date of birth cannot be in the future"
	}
	age := Age(date, now)
	if age < 5 {
		return "You must be at least 5 years old"
	}
	if age > 100 {
		return "Invalid date of birth"
	}
	return ""
}

// Age полных лет между датой рождения и now
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// ValidatePrice неотрицательное число в пределах [MinPrice, MaxPrice]
func ValidatePrice(value string) string {
	if value == "" {
		return "Price is required"
	}
	price, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || price < 0 {
		return "Price must be a non-negative number"
	}
	if price < MinPrice || price > MaxPrice {
		return fmt.Sprintf("Price must be between ₹%d and ₹%d", MinPrice, MaxPrice)
	}
	return ""
}

// ValidatePriceRange min не больше max, оба валидны
func ValidatePriceRange(minValue, maxValue string) string {
	if msg := ValidatePrice(minValue); msg != "" {
		return msg
	}
	if msg := ValidatePrice(maxValue); msg != "" {
		return msg
	}
	minPrice, _ := strconv.Atoi(strings.TrimSpace(minValue))
	maxPrice, _ := strconv.Atoi(strings.TrimSpace(maxValue))
	if minPrice > maxPrice {
		return "Minimum price cannot exceed maximum price"
	}
	return ""
}

// ValidateExperience неотрицательное целое число лет
func ValidateExperience(value string) string {
	if value == "" {
		return "Experience is required"
	}
	years, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || years < 0 {
		return "Experience must be a non-negative number"
	}
	return ""
}

// ValidateNumericID положительное целое
func ValidateNumericID(value, label string) string {
	if value == "" {
		return label + " is required"
	}
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return label + " must be a positive number"
	}
	return ""
}

// ValidateDate дата в формате YYYY-MM-DD
func ValidateDate(value string) string {
	if value == "" {
		return "Date is required"
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "Date must be in YYYY-MM-DD format"
	}
	return ""
}

// ValidateTime время в 24-часовом формате HH:MM
func ValidateTime(value string) string {
	if value == "" {
		return "Time is required"
	}
	if !timeRegex.MatchString(value) {
		return "Time must be in HH:MM format"
	}
	return ""
}

// ValidateTimeRange конец строго позже начала
func ValidateTimeRange(start, end string) string {
	if msg := ValidateTime(start); msg != "" {
		return msg
	}
	if msg := ValidateTime(end); msg != "" {
		return msg
	}
	if !timeBefore(start, end) {
		return "End time must be after start time"
	}
	return ""
}

func timeBefore(a, b string) bool {
	ta, _ := time.Parse("15:04", normalizeTime(a))
	tb, _ := time.Parse("15:04", normalizeTime(b))
	return ta.Before(tb)
}

// normalizeTime приводит "9:30" к "09:30" для time.Parse
func normalizeTime(v string) string {
	if len(v) == 4 {
		return "0" + v
	}
	return v
}

func ValidateStudentClass(class string) string {
	if class == "" {
		return "Student class is required"
	}
	return ""
}

func ValidateStreet(street string) string {
	if street == "" {
		return "Street address is required"
	}
	if len(street) < 5 {
		return "Street address must be at least 5 characters"
	}
	if len(street) > 100 {
		return "Street address must not exceed 100 characters"
	}
	return ""
}

func ValidateCity(city string) string {
	return validatePlaceName(city, "City")
}

func ValidateState(state string) string {
	return validatePlaceName(state, "State")
}

func ValidateCountry(country string) string {
	if country == "" {
		return "Country is required"
	}
	if len(country) < 2 || len(country) > 50 {
		return "Country name must be between 2 and 50 characters"
	}
	return ""
}

func validatePlaceName(value, label string) string {
	if value == "" {
		return label + " is required"
	}
	if len(value) < 2 || len(value) > 50 {
		return label + " name must be between 2 and 50 characters"
	}
	if !lettersRegex.MatchString(value) {
		return label + " must contain only letters"
	}
	return ""
}

func ValidatePinCode(pin string) string {
	if pin == "" {
		return "Pin code is required"
	}
	if !pinCodeRegex.MatchString(pin) {
		return "Pin code must be 6 digits"
	}
	return ""
}

// ValidateMultiSelect минимум min и максимум max выбранных значений.
// max <= 0 означает без верхней границы.
func ValidateMultiSelect(values []string, label string, min, max int) string {
	if len(values) < min {
		return fmt.Sprintf("Please select at least %d %s", min, label)
	}
	if max > 0 && len(values) > max {
		return fmt.Sprintf("Maximum %d %s allowed", max, label)
	}
	return ""
}

func ValidateRequired(value, message string) string {
	if strings.TrimSpace(value) == "" {
		return message
	}
	return ""
}
