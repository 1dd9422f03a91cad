package path

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/", "/"},
		{"/a/b/c", "/a/b/c"},
		{"/a//b///c", "/a/b/c"},
		{"/a/./b/.", "/a/b"},
		{"/a/b/../c", "/a/c"},
		{"/..", "/"},
		{"/../../a", "/a"},
		{"a/../b", "b"},
		{"../a", "../a"},
		{"a/..", "."},
		{".", "."},
	}
	for _, test := range tests {
		if got := Normalize(test.input); got != test.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestGetDirectoryName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/a/b/c", "/a/b"},
		{"a", ""},
		{"/a", ""},
		{"a/b", "a"},
	}
	for _, test := range tests {
		if got := GetDirectoryName(test.input); got != test.expected {
			t.Errorf("GetDirectoryName(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestGetBaseName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/a/b/c", "c"},
		{"a", "a"},
		{"/a", "a"},
		{"a/b/", ""},
	}
	for _, test := range tests {
		if got := GetBaseName(test.input); got != test.expected {
			t.Errorf("GetBaseName(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestIsAbsolute(t *testing.T) {
	if IsAbsolute("") {
		t.Error("empty path considered absolute")
	}
	if IsAbsolute("a/b") {
		t.Error("relative path considered absolute")
	}
	if !IsAbsolute("/a/b") {
		t.Error("absolute path not considered absolute")
	}
}

func TestJoin(t *testing.T) {
	if got := Join("/a", "b", "../c"); got != "/a/c" {
		t.Errorf("Join returned %q", got)
	}
}
