package billing

import "regexp"

// Minimum charge amounts in major units.
const (
	minCardAmount        = 0.5
	minMobileMoneyAmount = 1.0
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
	phonePattern    = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)
)

func validCurrency(code string) bool {
	return currencyPattern.MatchString(code)
}

func validPhone(number string) bool {
	return number != "" && phonePattern.MatchString(number)
}

func validCustomerName(name string) bool {
	return len(name) >= 2 && len(name) <= 100
}
