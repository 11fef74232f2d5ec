package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseHeaderArgs(t *testing.T) {
	got := ParseHeaderArgs([]string{"Cookie: foo=bar", "X-Token:abc", "garbage", "A: b: c"})
	want := map[string]string{
		"Cookie":  "foo=bar",
		"X-Token": "abc",
		"A":       "b: c",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseHeaderArgs = %v, want %v", got, want)
	}
}

func TestParseTypes(t *testing.T) {
	got := ParseTypes("js, CSS ,png,")
	want := map[string]struct{}{"js": {}, "css": {}, "png": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTypes = %v, want %v", got, want)
	}
	if _, ok := ParseTypes("*")["*"]; !ok {
		t.Error("ParseTypes(\"*\") should contain the wildcard")
	}
}

func TestReadURLListText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://x/a.js\n\n# comment\nhttps://x/b.css\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadURLList(path)
	if err != nil {
		t.Fatalf("ReadURLList: %v", err)
	}
	want := []string{"https://x/a.js", "https://x/b.css"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadURLList = %v, want %v", got, want)
	}
}

func TestReadURLListYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"strings", "- https://x/a.js\n- https://x/b.css\n"},
		{"entries", "- link: https://x/a.js\n- link: https://x/b.css\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "urls.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := ReadURLList(path)
			if err != nil {
				t.Fatalf("ReadURLList: %v", err)
			}
			want := []string{"https://x/a.js", "https://x/b.css"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ReadURLList = %v, want %v", got, want)
			}
		})
	}
}

func TestReadURLListMissing(t *testing.T) {
	if _, err := ReadURLList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
