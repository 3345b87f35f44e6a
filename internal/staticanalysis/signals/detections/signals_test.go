package detections

import (
	"reflect"
	"testing"

	"github.com/ossf/sourcerisk/pkg/api/staticanalysis/token"
)

func TestFindBase64Substrings(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output []string
	}{
		{"empty", "", nil},
		{"16 lowercase chars", "abcdefghijklmnop", nil},
		{"16 digits", "1234123412341234", nil},
		{"16 chars uppercase hex", "0XABCDEF12345678", nil},
		{"no padding", "dGhpcyBpcyBhbiBvcmFuZ2UK", []string{"dGhpcyBpcyBhbiBvcmFuZ2UK"}},
		{"2 padding", "dGhpcyBpcyBhbiBhcHBsZQ==", []string{"dGhpcyBpcyBhbiBhcHBsZQ=="}},
		{"bad padding", "dGhpcyBpcyBhIHBlYX=", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindBase64Substrings(tt.input); !reflect.DeepEqual(got, tt.output) {
				t.Errorf("FindBase64Substrings() = %v, want %v", got, tt.output)
			}
		})
	}
}

func TestFindURLs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"none", "hello world", nil},
		{"single", "see https://example.com/a?b=c now", []string{"https://example.com/a?b=c"}},
		{"ipv4 with port", "http://142.42.1.1:8080/", []string{"http://142.42.1.1:8080/"}},
		{"upper case scheme", "HTTPS://GITHUB.COM/", []string{"HTTPS://GITHUB.COM/"}},
		{"two", "http://evil-site.xyz ftp://foo.bar/baz", []string{"http://evil-site.xyz", "ftp://foo.bar/baz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindURLs(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindURLs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindIPAddresses(t *testing.T) {
	got := FindIPAddresses("connect to 10.0.0.1 and 2001:db8::1 at 12:30:45")
	want := []string{"10.0.0.1", "2001:db8::1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindIPAddresses() = %v, want %v", got, want)
	}
}

func TestIsHighlyEscaped(t *testing.T) {
	tests := []struct {
		name    string
		literal token.String
		want    bool
	}{
		{
			name:    "empty",
			literal: token.String{},
			want:    false,
		},
		{
			name:    "non escaped",
			literal: token.String{Value: "the quick brown fox", Raw: `"the quick brown fox"`},
			want:    false,
		},
		{
			name:    "hex escapes",
			literal: token.String{Value: "fs", Raw: `"\x66\x73"`},
			want:    true,
		},
		{
			name:    "octal with readable chars",
			literal: token.String{Value: "©SSTT", Raw: `"\251\123\123\124\124"`},
			want:    true,
		},
		{
			name:    "code points",
			literal: token.String{Value: "ফে", Raw: `"\u{09ab}\u{09c7}"`},
			want:    true,
		},
		{
			name:    "one escape in long text",
			literal: token.String{Value: "a long line of text\n", Raw: `"a long line of text\n"`},
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHighlyEscaped(tt.literal, 8, 0.25); got != tt.want {
				t.Errorf("IsHighlyEscaped() = %v, want %v", got, tt.want)
			}
		})
	}
}
