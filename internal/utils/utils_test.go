package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestCommaSeparatedFlags(t *testing.T) {
	f := CommaSeparatedFlags("extensions", []string{".js"}, "")
	if got := f.String(); got != ".js" {
		t.Errorf("default String() = %q, want .js", got)
	}

	if err := f.Set(" .mjs, .cjs,,"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if want := []string{".mjs", ".cjs"}; !reflect.DeepEqual(f.Values, want) {
		t.Errorf("Values = %v, want %v", f.Values, want)
	}
	if got := f.String(); got != ".mjs,.cjs" {
		t.Errorf("String() = %q, want .mjs,.cjs", got)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	got := RemoveDuplicates([]string{"b", "a", "b", "c", "a"})
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveDuplicates() = %v, want %v", got, want)
	}
	if got := RemoveDuplicates([]int(nil)); got != nil {
		t.Errorf("RemoveDuplicates(nil) = %v, want nil", got)
	}
}

func TestTransform(t *testing.T) {
	got := Transform([]string{"fs", "net"}, strings.ToUpper)
	if want := []string{"FS", "NET"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}
