package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/filter"
)

func TestParseIndex(t *testing.T) {
	if i, err := ParseIndex(" 3 "); err != nil || i != 3 {
		t.Fatalf("ParseIndex = %d, %v", i, err)
	}
	for _, bad := range []string{"", "x", "-1", "1.5"} {
		if _, err := ParseIndex(bad); err == nil {
			t.Errorf("ParseIndex(%q) should fail", bad)
		}
	}
}

func TestFilterFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	fo := &FilterOptions{}
	AddFilterArg(cmd, fo)
	if fo.Filter != filter.All() {
		t.Fatalf("default = %s", fo.Filter)
	}
	if err := cmd.Flags().Parse([]string{"--filter", "search:cat"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fo.Filter != filter.Search("cat") {
		t.Fatalf("filter = %+v", fo.Filter)
	}
	if err := cmd.Flags().Parse([]string{"-f", "bogus"}); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	lo := &LoggingOptions{Level: "info"}
	logger, err := lo.Logger(&buf)
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("output = %q", buf.String())
	}
	if _, err := (&LoggingOptions{Level: "loud"}).Logger(&buf); err == nil {
		t.Fatalf("expected error for bad level")
	}
}

func TestFormatValidate(t *testing.T) {
	for _, ok := range []string{"pretty", "JSON", "yaml"} {
		if err := (&FormatOptions{Output: ok}).Validate(); err != nil {
			t.Errorf("%s: %v", ok, err)
		}
	}
	if err := (&FormatOptions{Output: "xml"}).Validate(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("Wrap = %q", got)
	}
}

func TestHandleError(t *testing.T) {
	boom := errors.New("boom")

	plain := &OutputOptions{}
	if err := plain.HandleError(boom); err != boom {
		t.Fatalf("without --json the error passes through, got %v", err)
	}
	if err := plain.HandleError(nil); err != nil {
		t.Fatalf("nil error = %v", err)
	}

	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	err := o.HandleError(boom)
	var reported *ReportedError
	if !errors.As(err, &reported) || !errors.Is(err, boom) {
		t.Fatalf("expected a reported error wrapping boom, got %#v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"error":"boom"}` {
		t.Fatalf("json output = %q", got)
	}
}
