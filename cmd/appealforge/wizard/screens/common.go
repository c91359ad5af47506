// Package screens contains one screen per wizard step. Each screen owns
// a huh form bound to its slice of the session and reports its outcome
// through Done/Back/Cancelled, in the manner of a tea.Model.
package screens

import "fmt"

// required rejects empty input. Presence is checked here, before any
// format validator runs, so an empty field reports "is required" rather
// than a format error.
func required(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// requiredWith chains the presence check with a format validator.
func requiredWith(name string, check func(string) error) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return check(s)
	}
}
