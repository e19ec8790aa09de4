package utils

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"first.last@example.co.uk",
		"user+tag@domain.io",
	}
	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("%q should be valid", email)
		}
	}

	invalid := []string{
		"",
		"plain",
		"a@b",
		"@domain.com",
		"user@",
		"two@@b.com",
		"has space@b.com",
		"a@b .com",
	}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("%q should be invalid", email)
		}
	}
}
