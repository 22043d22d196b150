package helper

import "testing"

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"+628123456789", true},
		{"08123456789", true},
		{"123456789", true},     // 9 digit, minimum
		{"+12345678901234567", false}, // lewat 15 digit
		{"12345678", false},     // kurang dari 9 digit
		{"+62-812-345", false},  // karakter non-digit
		{"abc123456789", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidPhone(c.phone); got != c.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", c.phone, got, c.want)
		}
	}
}

func TestValidatePhoneTag(t *testing.T) {
	type payload struct {
		Phone string `validate:"required,phone"`
	}

	if err := Validate.Struct(&payload{Phone: "+628123456789"}); err != nil {
		t.Errorf("nomor valid ditolak: %v", err)
	}
	if err := Validate.Struct(&payload{Phone: "not-a-phone"}); err == nil {
		t.Error("nomor invalid lolos validasi")
	}
}
