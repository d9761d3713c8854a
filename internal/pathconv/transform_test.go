package pathconv

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/ccpath/internal/convention"
)

func TestConvertBasename(t *testing.T) {
	tests := []struct {
		name string
		path string
		req  Request
		want string
	}{
		{
			"only final segment changes",
			"/An Absolute/Path To/Some File.jpg",
			Request{To: convention.Camel},
			"/An Absolute/Path To/someFile.jpg",
		},
		{
			"explicit source convention",
			"/An Absolute/Path To/SOME_FILE.jpg",
			Request{From: convention.UpperSnake, To: convention.Kebab},
			"/An Absolute/Path To/some-file.jpg",
		},
		{
			"bare filename",
			"Some File.jpg",
			Request{To: convention.Snake},
			"some_file.jpg",
		},
		{
			"relative path",
			"a dir/Some File.jpg",
			Request{To: convention.Snake},
			"a dir/some_file.jpg",
		},
		{
			"root unchanged",
			"/",
			Request{To: convention.Snake},
			"/",
		},
		{
			"dot-dot unchanged",
			"..",
			Request{To: convention.Snake},
			"..",
		},
		{
			"dot unchanged",
			".",
			Request{To: convention.Snake},
			".",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertBasename(tt.path, tt.req)
			if err != nil {
				t.Fatalf("ConvertBasename(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ConvertBasename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestConvertBasename_ParentNeverModified(t *testing.T) {
	paths := []string{
		"/Weird Parent/UPPER_DIR/Some File.txt",
		"mixed-case dir/someFile",
		"/a/b/c/d/E F G.tar.gz",
	}
	for _, p := range paths {
		got, err := ConvertBasename(p, Request{To: convention.Snake})
		if err != nil {
			t.Fatalf("ConvertBasename(%q): %v", p, err)
		}
		wantParent := filepath.Dir(p)
		if filepath.Dir(got) != wantParent {
			t.Errorf("ConvertBasename(%q) parent = %q, want %q", p, filepath.Dir(got), wantParent)
		}
	}
}

func TestConvertFull(t *testing.T) {
	tests := []struct {
		name string
		path string
		req  Request
		want string
	}{
		{
			"absolute camel to snake",
			"/anAbsolute/pathTo/someFile.jpg",
			Request{To: convention.Snake},
			"/an_absolute/path_to/some_file.jpg",
		},
		{
			"mixed conventions to upper snake",
			"/An Absolute/path-to/someFile.jpg",
			Request{To: convention.UpperSnake},
			"/AN_ABSOLUTE/PATH_TO/SOME_FILE.jpg",
		},
		{
			"relative path",
			"pathTo/someFile",
			Request{To: convention.Kebab},
			"path-to/some-file",
		},
		{
			"dot and dot-dot pass through",
			"../pathTo/./someFile",
			Request{To: convention.Snake},
			"../path_to/./some_file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertFull(tt.path, tt.req)
			if err != nil {
				t.Fatalf("ConvertFull(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ConvertFull(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// Converting a joined path equals joining the independently converted
// segments: segment conversion never depends on neighbors.
func TestConvertFull_ComponentWiseIndependence(t *testing.T) {
	req := Request{To: convention.Snake}
	segments := []string{"An Absolute", "pathTo", "Some File.jpg"}

	var converted []string
	for _, seg := range segments {
		got, err := ConvertComponent(seg, req)
		if err != nil {
			t.Fatalf("ConvertComponent(%q): %v", seg, err)
		}
		converted = append(converted, got)
	}

	whole, err := ConvertFull(strings.Join(segments, "/"), req)
	if err != nil {
		t.Fatalf("ConvertFull: %v", err)
	}
	if want := strings.Join(converted, "/"); whole != want {
		t.Errorf("ConvertFull = %q, want per-segment result %q", whole, want)
	}
}

func TestConvertFull_FirstFailureAborts(t *testing.T) {
	_, err := ConvertFull("/ok/bad\xff/also ok", Request{To: convention.Snake})
	if !errors.Is(err, ErrNotUTF8) {
		t.Errorf("ConvertFull error = %v, want ErrNotUTF8", err)
	}
}

func TestConvertFullExceptPrefix(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		want   string
	}{
		{
			"matching prefix left untouched",
			"/some-path/prefix/and-a/child",
			"/some-path/prefix",
			"/some-path/prefix/AND_A/CHILD",
		},
		{
			"non-matching prefix is inert",
			"/some-path/prefix/and-a/child",
			"/a/different/prefix",
			"/SOME_PATH/PREFIX/AND_A/CHILD",
		},
		{
			"partial component does not match",
			"/some-path/prefixed/child",
			"/some-path/prefix",
			"/SOME_PATH/PREFIXED/CHILD",
		},
		{
			"prefix equal to path",
			"/some-path/prefix",
			"/some-path/prefix",
			"/some-path/prefix",
		},
		{
			"trailing slash on prefix",
			"/some-path/prefix/and-a/child",
			"/some-path/prefix/",
			"/some-path/prefix/AND_A/CHILD",
		},
	}
	req := Request{To: convention.UpperSnake}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertFullExceptPrefix(tt.path, tt.prefix, req)
			if err != nil {
				t.Fatalf("ConvertFullExceptPrefix(%q, %q) unexpected error: %v", tt.path, tt.prefix, err)
			}
			if got != tt.want {
				t.Errorf("ConvertFullExceptPrefix(%q, %q) = %q, want %q", tt.path, tt.prefix, got, tt.want)
			}
		})
	}
}

// When the prefix matches, the result equals prefix + ConvertFull(remainder).
func TestConvertFullExceptPrefix_EqualsStripConvertRejoin(t *testing.T) {
	req := Request{To: convention.Snake}
	path := "/Mount Point/Sub Tree/Some File.txt"
	prefix := "/Mount Point"

	rel, err := ConvertFull("Sub Tree/Some File.txt", req)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(prefix, rel)

	got, err := ConvertFullExceptPrefix(path, prefix, req)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("ConvertFullExceptPrefix = %q, want %q", got, want)
	}
}
