package appeal

import (
	"errors"
	"regexp"
	"time"
)

// Validators check format only. Presence of required fields is enforced
// separately by the wizard, so every validator accepts its job as "given
// a non-trivial string, does it look right".

var (
	npiPattern   = regexp.MustCompile(`^\d{10}$`)
	taxIDPattern = regexp.MustCompile(`^\d{2}-?\d{7}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)
)

// ValidateNPI checks that the value is exactly 10 decimal digits.
func ValidateNPI(npi string) error {
	if !npiPattern.MatchString(npi) {
		return errors.New("NPI must be 10 digits")
	}
	return nil
}

// ValidateTaxID checks the XX-XXXXXXX employer tax ID shape. The hyphen
// is optional.
func ValidateTaxID(taxID string) error {
	if !taxIDPattern.MatchString(taxID) {
		return errors.New("Tax ID must be in XX-XXXXXXX format")
	}
	return nil
}

// ValidateEmail checks a basic local@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePhone checks a US 3-3-4 phone shape with optional parentheses
// around the area code and optional space, hyphen, or dot separators.
// Used for both phone and fax numbers.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return errors.New("invalid phone number format")
	}
	return nil
}

// ValidateState checks that the value is a recognized two-letter US
// state code.
func ValidateState(code string) error {
	for _, s := range USStates {
		if s == code {
			return nil
		}
	}
	return errors.New("must be a two-letter US state code")
}

// ValidateDate checks the YYYY-MM-DD calendar date shape.
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
