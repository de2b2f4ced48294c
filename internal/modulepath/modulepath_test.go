package modulepath

import "testing"

func TestFromSegments(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{[]string{"A", "B", "C"}, "a/b/c"},
		{[]string{"Animals"}, "animals"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FromSegments(tt.segments); got != tt.want {
			t.Errorf("FromSegments(%v) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func TestResolveLeavesNonRelativePathsAlone(t *testing.T) {
	if got := Resolve("lib", "hello/world"); got != "hello/world" {
		t.Errorf("Resolve should leave a non-dot-prefixed path untouched, got %q", got)
	}
}

func TestResolveJoinsRelativePaths(t *testing.T) {
	got := Resolve("lib", "./helper")
	want := "lib/helper"
	if got != want {
		t.Errorf("Resolve(lib, ./helper) = %q, want %q", got, want)
	}
}

func TestDirJoinsRootAndSegments(t *testing.T) {
	got := Dir("out", []string{"Animals", "Dog"})
	want := "out/animals/dog"
	if got != want {
		t.Errorf("Dir(out, [Animals Dog]) = %q, want %q", got, want)
	}
}
