package renderer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/neuroline/eegstream/pkg/internal/renderer"
	"github.com/neuroline/eegstream/pkg/internal/types"
)

func newTestConsole() (*renderer.Console, *bytes.Buffer) {
	var buf bytes.Buffer
	return renderer.NewConsole(&buf, termenv.WithProfile(termenv.Ascii)), &buf
}

func TestHeader(t *testing.T) {
	c, buf := newTestConsole()
	c.Header()
	if got := buf.String(); got != "Time \t \t Patient \t Event \n" {
		t.Errorf("header = %q", got)
	}
}

func TestRenderSeizure(t *testing.T) {
	c, buf := newTestConsole()
	at := time.Date(2026, 8, 29, 14, 5, 9, 0, time.UTC)
	c.Render(at, "patient-7", types.Outcome{Kind: types.OutcomeSeizure, Label: "pres"})

	want := "02:05:09 PM \t patient-7 \t !!seizure in 10~15 min!!\n"
	if got := buf.String(); got != want {
		t.Errorf("seizure line = %q, want %q", got, want)
	}
}

func TestRenderBackground(t *testing.T) {
	c, buf := newTestConsole()
	at := time.Date(2026, 8, 29, 3, 4, 5, 0, time.UTC)
	c.Render(at, "patient-7", types.Outcome{Kind: types.OutcomeBackground, Label: "bckg"})

	want := "03:04:05 AM \t patient-7 \t looks all good\n"
	if got := buf.String(); got != want {
		t.Errorf("background line = %q, want %q", got, want)
	}
}

func TestRenderUnknown(t *testing.T) {
	c, buf := newTestConsole()
	at := time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)
	c.Render(at, "patient-7", types.Outcome{Kind: types.OutcomeUnknown, Label: "xyz"})

	got := buf.String()
	if !strings.Contains(got, "UNKNOWN: xyz not recognized") {
		t.Errorf("unknown line = %q", got)
	}
	if !strings.HasPrefix(got, "11:59:59 PM ") {
		t.Errorf("unknown line time prefix = %q", got)
	}
}

func TestNilWriterDefaultsToStdout(t *testing.T) {
	// Construction must not panic; rendering to real stdout is not asserted.
	_ = renderer.NewConsole(nil)
}
