package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"alcina@ajusteponto.local", "luiz-henrique@ajusteponto.local", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // v7 uppercase
		"123e4567-e89b-42d3-a456-426614174000", // v4
	}
	invalid := []string{
		"123e4567-e89b-02d3-a456-426614174000", // version 0
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidPIN(t *testing.T) {
	valid := []string{"1234", "000000", "123456789012"}
	invalid := []string{"123", "1234567890123", "12a4", "", " 1234"}
	for _, pin := range valid {
		if !IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = false, want true", pin)
		}
	}
	for _, pin := range invalid {
		if IsValidPIN(pin) {
			t.Errorf("IsValidPIN(%q) = true, want false", pin)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:10", "23:59"}
	invalid := []string{"8:10", "24:00", "12:60", "12:00:00", "noon", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestRequiredClockTime(t *testing.T) {
	var errs ValidationErrors
	errs = RequiredClockTime(errs, "entry_time", "")
	errs = RequiredClockTime(errs, "exit_time", "6pm")
	errs = RequiredClockTime(errs, "other_time", "18:00")

	if len(errs) != 2 {
		t.Fatalf("RequiredClockTime produced %d errors, want 2", len(errs))
	}
	got := errs.ToMap()
	if got["entry_time"] != "entry_time is required" {
		t.Errorf("entry_time message = %q", got["entry_time"])
	}
	if got["exit_time"] != "exit_time must be in HH:MM format" {
		t.Errorf("exit_time message = %q", got["exit_time"])
	}
}

func TestOptionalClockTime(t *testing.T) {
	empty := ""
	bad := "12h30"
	var errs ValidationErrors
	errs = OptionalClockTime(errs, "a", nil)
	errs = OptionalClockTime(errs, "b", &empty)
	if len(errs) != 0 {
		t.Fatalf("OptionalClockTime flagged absent values: %v", errs)
	}
	errs = OptionalClockTime(errs, "c", &bad)
	if len(errs) != 1 || errs[0].Field != "c" {
		t.Errorf("OptionalClockTime(%q) = %v, want one error on c", bad, errs)
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "entry_time", Message: "invalid"},
		{Field: "reason", Message: "required"},
	}
	got := errs.Error()
	want := "entry_time: invalid; reason: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "entry_time", Message: "invalid"},
		{Field: "reason", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"entry_time": "invalid", "reason": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
