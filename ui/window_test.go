package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fuelflow/meal-analyzer/llm"
)

// mockReader yields the queued lines, then io.EOF
type mockReader struct {
	lines []string
}

func (m *mockReader) Readline() (string, error) {
	if len(m.lines) == 0 {
		return "", io.EOF
	}
	line := m.lines[0]
	m.lines = m.lines[1:]
	return line, nil
}

func runWindow(t *testing.T, analyzer Analyzer, lines ...string) (*TerminalSurface, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	surface := NewTerminalSurface(&out, 40)
	app := NewApp(surface, analyzer)

	if err := NewWindow(app, surface, &mockReader{lines: lines}).Run(context.Background()); err != nil {
		t.Fatalf("Expected window to close cleanly, got %v", err)
	}
	return surface, &out
}

func TestWindowAnalyzeShowsResult(t *testing.T) {
	analyzer := &mockAnalyzer{results: []llm.Result{llm.Success("Good source of protein")}}
	surface, out := runWindow(t, analyzer, "")

	if surface.Text() != "Good source of protein" {
		t.Errorf("Expected result text, got %q", surface.Text())
	}
	if !strings.Contains(out.String(), "Good source of protein") {
		t.Errorf("Expected result in output:\n%s", out.String())
	}
}

func TestWindowFailureOpensDialog(t *testing.T) {
	analyzer := &mockAnalyzer{results: []llm.Result{llm.Failure(errors.New("401 unauthorized"))}}
	surface, _ := runWindow(t, analyzer, "analyze")

	if !surface.DialogOpen() {
		t.Fatal("Expected error dialog to be open")
	}
	if !strings.Contains(surface.DialogMessage(), "401 unauthorized") {
		t.Errorf("Expected error in dialog, got %q", surface.DialogMessage())
	}
	if surface.Text() != PlaceholderText {
		t.Errorf("Expected placeholder to remain, got %q", surface.Text())
	}
}

func TestWindowQuitWithoutAnalysis(t *testing.T) {
	analyzer := &mockAnalyzer{}
	surface, _ := runWindow(t, analyzer, "q", "a")

	if analyzer.calls != 0 {
		t.Errorf("Expected no analysis, got %d", analyzer.calls)
	}
	if surface.Text() != PlaceholderText {
		t.Errorf("Expected placeholder text, got %q", surface.Text())
	}
}

func TestWindowUnknownCommandShowsHint(t *testing.T) {
	analyzer := &mockAnalyzer{}
	_, out := runWindow(t, analyzer, "help")

	if analyzer.calls != 0 {
		t.Errorf("Expected no analysis, got %d", analyzer.calls)
	}
	if !strings.Contains(out.String(), "Press Enter to analyze") {
		t.Errorf("Expected usage hint in output:\n%s", out.String())
	}
}

func TestWindowCancelledContext(t *testing.T) {
	var out bytes.Buffer
	surface := NewTerminalSurface(&out, 40)
	app := NewApp(surface, &mockAnalyzer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocking := &blockingReader{release: make(chan struct{})}
	defer close(blocking.release)

	if err := NewWindow(app, surface, blocking).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

type blockingReader struct {
	release chan struct{}
}

func (b *blockingReader) Readline() (string, error) {
	<-b.release
	return "", io.EOF
}
