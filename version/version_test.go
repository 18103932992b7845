package version

import (
	"strings"
	"testing"
)

func TestIsValidBuild(t *testing.T) {
	tests := []struct {
		build    string
		expected bool
	}{
		{"", false},
		{"abc-123", true},
		{"RC1", true},
		{"with space", false},
		{"dot.ted", false},
	}
	for _, test := range tests {
		if isValidBuild(test.build) != test.expected {
			t.Fatalf("isValidBuild(%q): expected %t", test.build, test.expected)
		}
	}
}

func TestVersion(t *testing.T) {
	if !strings.HasPrefix(Version(), "0.3.0") {
		t.Fatalf("TestVersion: unexpected version %s", Version())
	}
}
