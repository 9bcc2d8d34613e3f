package logging

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()

	var got string
	SetLogger(func(format string, v ...any) { got = fmt.Sprintf(format, v...) })
	Logf("loaded %d cells", 4)
	if got != "loaded 4 cells" {
		t.Fatalf("got %q", got)
	}

	SetLogger(nil)
	Logf("dropped")
	if got != "loaded 4 cells" {
		t.Fatalf("nil logger should be a no-op, got %q", got)
	}
}
