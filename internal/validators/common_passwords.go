package validators

import "strings"

// commonPasswords holds the most frequently breached password values.
// The list is a pruned copy of the well-known "top passwords" corpora;
// lookups are case-insensitive.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"passw0rd":    {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"sunshine":    {},
	"princess":    {},
	"football":    {},
	"baseball":    {},
	"superman":    {},
	"trustno1":    {},
	"welcome1":    {},
	"admin123":    {},
	"letmein1":    {},
	"dragon123":   {},
	"monkey123":   {},
	"shadow123":   {},
	"master123":   {},
	"abc12345":    {},
	"11111111":    {},
	"00000000":    {},
}

func isCommonPassword(password string) bool {
	_, found := commonPasswords[strings.ToLower(password)]
	return found
}
