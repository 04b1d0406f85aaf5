package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{
		"ops@stockkeep.io",
		"first.last+tag@sub.example.co",
		"UPPER@EXAMPLE.COM",
		"user_name%x@host-name.org",
	}
	for _, addr := range valid {
		if !Email(addr) {
			t.Errorf("expected %q to be valid", addr)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@",
		"user@host",
		"user@host.c",
		"user name@example.com",
	}
	for _, addr := range invalid {
		if Email(addr) {
			t.Errorf("expected %q to be invalid", addr)
		}
	}
}
