package counter

import "testing"

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"adds missing dot", []string{"txt"}, []string{".txt"}},
		{"lowercases", []string{".TXT"}, []string{".txt"}},
		{"collapses duplicates across spellings", []string{"TXT", ".txt", "txt"}, []string{".txt"}},
		{"collapses extra leading dots", []string{"..log"}, []string{".log"}},
		{"drops blanks", []string{"", " ", "."}, nil},
		{"empty input", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NormalizeExtensions(tt.input)
			if len(set) != len(tt.expected) {
				t.Fatalf("Expected %d extensions, got %d: %v", len(tt.expected), len(set), set)
			}
			for _, ext := range tt.expected {
				if _, ok := set[ext]; !ok {
					t.Errorf("Expected %q in set %v", ext, set)
				}
			}
		})
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"report.TXT", ".txt"},
		{"archive.tar.gz", ".gz"},
		{"Makefile", ""},
		{".bashrc", ""},
		{"noise.", ""},
		{"..gitignore", ".gitignore"},
		{"a.bashrc", ".bashrc"},
	}

	for _, tt := range tests {
		if got := Ext(tt.filename); got != tt.expected {
			t.Errorf("Ext(%q) = %q, expected %q", tt.filename, got, tt.expected)
		}
	}
}

func TestMatches(t *testing.T) {
	t.Run("empty set matches everything", func(t *testing.T) {
		for _, name := range []string{"a.txt", "Makefile", "", "weird.ZZZ"} {
			if !Matches(name, nil) {
				t.Errorf("Expected %q to match the empty set", name)
			}
		}
	})

	t.Run("membership is case-insensitive on the filename", func(t *testing.T) {
		exts := NormalizeExtensions([]string{".txt"})

		if !Matches("NOTES.TXT", exts) {
			t.Error("Expected NOTES.TXT to match .txt")
		}
		if Matches("script.py", exts) {
			t.Error("Expected script.py not to match .txt")
		}
	})

	t.Run("files without a suffix never match a non-empty set", func(t *testing.T) {
		exts := NormalizeExtensions([]string{".txt"})
		if Matches("Makefile", exts) {
			t.Error("Expected Makefile not to match")
		}
	})

	t.Run("dotfiles have no suffix to match", func(t *testing.T) {
		exts := NormalizeExtensions([]string{".bashrc"})
		if Matches(".bashrc", exts) {
			t.Error("Expected the dotfile .bashrc not to match")
		}
		if !Matches("backup.bashrc", exts) {
			t.Error("Expected backup.bashrc to match .bashrc")
		}
	})
}
