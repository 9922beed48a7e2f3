package utils

import (
	"regexp"
)

// Egyptian mobile numbers: 11 digits, starting 010/011/012/015.
var egyptianPhoneRegex = regexp.MustCompile(`^(01)(0|1|2|5)\d{8}$`)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEgyptianPhone(phone string) bool {
	return egyptianPhoneRegex.MatchString(phone)
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
