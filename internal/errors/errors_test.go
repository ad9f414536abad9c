package errors

import (
	stderrors "errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	err := stderrors.New("boom")
	if got := Format(err); got != "Error: boom" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed after %d tries", 3)
	want := "Error: failed after 3 tries"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}
