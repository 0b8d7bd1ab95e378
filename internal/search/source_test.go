package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func drain(t *testing.T, src Source) []Candidate {
	t.Helper()
	var out []Candidate
	for {
		c, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func TestCrossProduct_Order(t *testing.T) {
	src := NewCrossProduct(2, 3, "AB")

	got := drain(t, src)
	want := []Candidate{"000A", "000B", "001A", "001B"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Exhausted source stays exhausted.
	if _, ok := src.Next(); ok {
		t.Error("exhausted source yielded another candidate")
	}
}

func TestCrossProduct_Size(t *testing.T) {
	src := NewCrossProduct(1000, 3, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if src.Size() != 26000 {
		t.Errorf("size = %d, want 26000", src.Size())
	}
}

func TestCrossProduct_EmptyAlphabet(t *testing.T) {
	src := NewCrossProduct(10, 3, "")
	if _, ok := src.Next(); ok {
		t.Error("empty alphabet should yield nothing")
	}
}

func TestSlice_Order(t *testing.T) {
	src := NewSlice("AAA", "AAB")
	got := drain(t, src)
	if len(got) != 2 || got[0] != "AAA" || got[1] != "AAB" {
		t.Errorf("got %v, want [AAA AAB]", got)
	}
}

func TestWordlist_SkipsBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "hunter2\n\n  \npassword\nletmein\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	wl, err := OpenWordlist(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wl.Close()

	got := drain(t, wl)
	want := []Candidate{"hunter2", "password", "letmein"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
	if wl.Err() != nil {
		t.Errorf("unexpected read error: %v", wl.Err())
	}
}

func TestWordlist_MissingFile(t *testing.T) {
	if _, err := OpenWordlist(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestWordlist_ReadErrorSurfaced verifies a mid-file read failure is
// exposed through Err rather than looking like clean exhaustion.  An
// oversized line trips the scanner's token limit partway through.
func TestWordlist_ReadErrorSurfaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "alpha\n" + strings.Repeat("a", 128*1024) + "\nbeta\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	wl, err := OpenWordlist(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wl.Close()

	got := drain(t, wl)
	if len(got) != 1 || got[0] != "alpha" {
		t.Fatalf("got %v, want only the candidates before the bad line", got)
	}
	if wl.Err() == nil {
		t.Fatal("truncated enumeration must surface a read error")
	}
}
