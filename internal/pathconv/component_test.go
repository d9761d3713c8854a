package pathconv

import (
	"errors"
	"testing"

	"github.com/backmassage/ccpath/internal/convention"
)

func TestSplitStemExt(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantStem string
		wantExt  string
	}{
		{"stem and extension", "some_file.jpg", "some_file", "jpg"},
		{"stem only", "some_file", "some_file", ""},
		{"dotfile is extension-only", ".gitignore", "", "gitignore"},
		{"double extension splits at last dot", "archive.tar.gz", "archive.tar", "gz"},
		{"dotfile with extension", ".config.yaml", ".config", "yaml"},
		{"trailing dot", "name.", "name", ""},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitStemExt(tt.in)
			if stem != tt.wantStem || ext != tt.wantExt {
				t.Errorf("SplitStemExt(%q) = (%q, %q), want (%q, %q)",
					tt.in, stem, ext, tt.wantStem, tt.wantExt)
			}
		})
	}
}

func TestConvertComponent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		req  Request
		want string
	}{
		{
			"heuristic split to snake",
			"Some File.jpg",
			Request{To: convention.Snake},
			"some_file.jpg",
		},
		{
			"explicit source to flat",
			"SomeFile.jpg",
			Request{From: convention.UpperCamel, To: convention.Flat},
			"somefile.jpg",
		},
		{
			"kebab to snake without source",
			"some-file.jpg",
			Request{To: convention.Snake},
			"some_file.jpg",
		},
		{
			"extension never converted",
			"Some File.JPG",
			Request{To: convention.Snake},
			"some_file.JPG",
		},
		{
			"no extension",
			"Some Directory",
			Request{To: convention.Kebab},
			"some-directory",
		},
		{
			"single word changes case only",
			"Child",
			Request{To: convention.UpperSnake},
			"CHILD",
		},
		{
			"dotfile preserved verbatim",
			".gitignore",
			Request{To: convention.Snake},
			".gitignore",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertComponent(tt.in, tt.req)
			if err != nil {
				t.Fatalf("ConvertComponent(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ConvertComponent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertComponent_EmptyComponent(t *testing.T) {
	_, err := ConvertComponent("", Request{To: convention.Snake})
	if !errors.Is(err, ErrEmptyComponent) {
		t.Errorf("ConvertComponent(\"\") error = %v, want ErrEmptyComponent", err)
	}
}

func TestConvertComponent_InvalidUTF8(t *testing.T) {
	_, err := ConvertComponent("bad\xff name", Request{To: convention.Snake})
	if !errors.Is(err, ErrNotUTF8) {
		t.Errorf("ConvertComponent(invalid utf-8) error = %v, want ErrNotUTF8", err)
	}
}
