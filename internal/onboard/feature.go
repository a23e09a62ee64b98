package onboard

import "strings"

// Feature is a capability the user can set up. Features are supplied by the
// caller and are unique by Name.
type Feature struct {
	Name        string
	Text        string
	Description string
	Icon        string
	Color       string
	IsComplete  bool
}

// User is the signed-in user. Only a display name is derived from it.
type User struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// fallbackDisplayName is used when a user carries no identifying field.
const fallbackDisplayName = "there"

// DisplayName returns the name shown in greetings: the full name when any
// part is set, then the username, then the email address.
func DisplayName(u User) string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	switch {
	case full != "":
		return full
	case strings.TrimSpace(u.Username) != "":
		return strings.TrimSpace(u.Username)
	case strings.TrimSpace(u.Email) != "":
		return strings.TrimSpace(u.Email)
	default:
		return fallbackDisplayName
	}
}

// CountComplete returns how many features are marked complete.
func CountComplete(features []Feature) int {
	n := 0
	for _, f := range features {
		if f.IsComplete {
			n++
		}
	}
	return n
}

// FindFeature returns the feature with the given name.
func FindFeature(features []Feature, name string) (Feature, bool) {
	for _, f := range features {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
