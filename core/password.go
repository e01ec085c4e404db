package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const MinPasswordLen = 8

var commonPasswords = map[string]struct{}{
	"123456789": {}, "12345678": {}, "password": {}, "password1": {}, "password123": {},
	"qwertyuiop": {}, "qwerty123": {}, "iloveyou": {}, "sunshine": {}, "princess": {},
	"football": {}, "baseball": {}, "superman": {}, "trustno1": {}, "letmein1": {},
	"welcome1": {}, "passw0rd": {}, "abc12345": {}, "11111111": {}, "00000000": {},
	"1q2w3e4r": {}, "zaq12wsx": {}, "starwars": {}, "whatever": {}, "computer": {},
	"michelle": {}, "jennifer": {}, "master123": {}, "dragon123": {}, "monkey123": {},
}

// CheckPassword returns a list of reasons why the password is too weak.
// The attributes (username, email, names) must not be contained in the password or contain it.
func CheckPassword(password string, attributes ...string) []string {

	var problems []string

	if utf8.RuneCountInString(password) < MinPasswordLen {
		problems = append(problems, "This password is too short. It must contain at least 8 characters.")
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		problems = append(problems, "This password is too common.")
	}

	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		problems = append(problems, "This password is entirely numeric.")
	}

	var lower = strings.ToLower(password)
	for _, attr := range attributes {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if i := strings.IndexByte(attr, '@'); i > 0 {
			attr = attr[:i] // local part of email address
		}
		if len(attr) < 3 || lower == "" {
			continue
		}
		if strings.Contains(lower, attr) || strings.Contains(attr, lower) {
			problems = append(problems, "The password is too similar to your personal information.")
			break
		}
	}

	return problems
}
