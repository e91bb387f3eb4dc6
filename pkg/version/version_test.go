package version

import "testing"

func TestVersion_String(t *testing.T) {
	v := Version{14, 2, 1}
	if v.String() != "14.2.1" {
		t.Errorf("String() = %q, want %q", v.String(), "14.2.1")
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"14.4.0", Version{14, 4, 0}},
		{"v14.4.0\n", Version{14, 4, 0}},
		{"6.14.13\n", Version{6, 14, 13}},
		{"Docker Compose version v2.17.3", Version{2, 17, 3}},
		{"git version 2.36.1", Version{2, 36, 1}},
		{"ImageMagick, version 7.0.11-13", Version{7, 0, 11}},
		{"Python 3.9.5", Version{3, 9, 5}},
		{"noise before 1.2.3 and after 4.5.6", Version{1, 2, 3}},
	}

	for _, tt := range tests {
		got, err := Extract(tt.input)
		if err != nil {
			t.Errorf("Extract(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExtract_Failures(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"1.2",
		"version 18",
		"command not found",
	}

	for _, input := range inputs {
		if _, err := Extract(input); err == nil {
			t.Errorf("Extract(%q) should fail", input)
		}
	}
}
