package scan

import "testing"

func TestNextSplitsRecords(t *testing.T) {
	sc := New([]byte("one\ntwo\n\nfour\n"))

	want := []string{"one", "two", "", "four"}
	for i, w := range want {
		got, ok := sc.Next()
		if !ok {
			t.Fatalf("Next() ended early at record %d", i+1)
		}
		if got != w {
			t.Errorf("record %d = %q, want %q", i+1, got, w)
		}
		if sc.Line() != i+1 {
			t.Errorf("Line() = %d, want %d", sc.Line(), i+1)
		}
	}
	if _, ok := sc.Next(); ok {
		t.Error("Next() returned a record past the end")
	}
}

func TestNextFinalRecordWithoutNewline(t *testing.T) {
	sc := New([]byte("a\nb"))
	sc.Next()
	got, ok := sc.Next()
	if !ok || got != "b" {
		t.Errorf("final record = %q, %v; want %q, true", got, ok, "b")
	}
	if sc.Line() != 2 {
		t.Errorf("Line() = %d, want 2", sc.Line())
	}
}

func TestNextEmptyBuffer(t *testing.T) {
	sc := New(nil)
	if _, ok := sc.Next(); ok {
		t.Error("Next() on empty buffer returned a record")
	}
	if sc.Line() != 0 {
		t.Errorf("Line() = %d, want 0", sc.Line())
	}
}
