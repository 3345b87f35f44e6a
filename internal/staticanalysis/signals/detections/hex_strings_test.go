package detections

import (
	"reflect"
	"testing"
)

func TestFindHexSubstrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "not hex",
			input: "abcdefghijklmnop",
			want:  nil,
		},
		{
			name:  "too short",
			input: "6673",
			want:  nil,
		},
		{
			name:  "two hex",
			input: "72657175697265, 09acb8921308bac4",
			want:  []string{"72657175697265", "09acb8921308bac4"},
		},
		{
			name:  "hex with prefix and non-hex suffix",
			input: "0xabcdefabcdef1234b09acb8921308bac4@02345",
			want:  []string{"abcdefabcdef1234b09acb8921308bac4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindHexSubstrings(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindHexSubstrings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSafeHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"digits only", "1234", true},
		{"hex letters only", "deadbeef", true},
		{"hex letters upper case", "ABCDEF", true},
		{"hex alphabet", "0123456789abcdef", true},
		{"hex alphabet inside", "ff0123456789ff", true},
		{"encoded require", "72657175697265", false},
		{"encoded spawn upper case", "737061776E", false},
		{"encoded child_process", "6368696c645f70726f63657373", false},
		{"encoded eval inside alphabet", "0123456789" + "6576616c", false},
		{"arbitrary word", "6e6f74616d6f64756c65", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSafeHex(tt.input); got != tt.want {
				t.Errorf("IsSafeHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
