package mtatracker

import "testing"

func TestValidateStopID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain id", "G22", "G22", false},
		{"directional id", "G22S", "G22S", false},
		{"lowercase normalized", "g22n", "G22N", false},
		{"surrounding space trimmed", " G22 ", "G22", false},
		{"empty rejected", "", "", true},
		{"blank rejected", "   ", "", true},
		{"punctuation rejected", "G22;drop", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateStopID(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("validateStopID(%q) should fail", tt.in)
				}
				if _, ok := err.(*QueryError); !ok {
					t.Errorf("error type = %T, want *QueryError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateStopID(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("validateStopID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
