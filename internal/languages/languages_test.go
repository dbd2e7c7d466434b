package languages

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"fr", "French"},
		{"de", "German"},
		{"zh", "Chinese"},
		{"xx", "xx"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Name(tt.code); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"en", true},
		{"de", true},
		{"ja", true},
		{"", false},
		{"xx", false},
		{"english", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsValid(tt.code); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, want %v", tt.code, got, tt.valid)
			}
		})
	}
}

func TestAll_HasDisplayNames(t *testing.T) {
	langs := All()
	if len(langs) < 99 {
		t.Errorf("expected at least 99 languages, got %d", len(langs))
	}
	for _, l := range langs {
		if l.Code == "" || l.Name == "" {
			t.Errorf("language with empty code or name: %+v", l)
		}
	}
}
