package valueobject

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWordlist_IsCommon(t *testing.T) {
	wordlist := NewWordlist()

	for _, word := range []string{"password", "123456", "letmein", "qazwsx"} {
		if !wordlist.IsCommon(word) {
			t.Errorf("expected %q to be a common password", word)
		}
	}

	if wordlist.IsCommon("Tr7$Kxvloq2@") {
		t.Error("did not expect a random string to be common")
	}
}

func TestWordlist_ExtraWords(t *testing.T) {
	wordlist := NewWordlist("  CompanyName ", "", "hunter2")

	if !wordlist.IsCommon("companyname") {
		t.Error("expected extra words to be lowercased and trimmed")
	}
	if !wordlist.IsCommon("hunter2") {
		t.Error("expected extra word to be common")
	}

	found := false
	for _, word := range wordlist.Dictionary() {
		if word == "companyname" {
			found = true
		}
	}
	if !found {
		t.Error("expected extra word in the dictionary")
	}
}

func TestNewWordlistFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	content := "# comment\nfalcon\n\n  Heron  \n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write wordlist file: %v", err)
	}

	wordlist, err := NewWordlistFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !wordlist.IsCommon("falcon") || !wordlist.IsCommon("heron") {
		t.Error("expected file words to be loaded")
	}
	if wordlist.IsCommon("# comment") {
		t.Error("expected comment lines to be skipped")
	}
}

func TestNewWordlistFromFile_Missing(t *testing.T) {
	if _, err := NewWordlistFromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestUnleet(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"p4$$w0rd", "password"},
		{"13375p34k", "leetspeak"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := Unleet(tt.in); got != tt.want {
			t.Errorf("Unleet(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
