package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lms/internal/policy"
)

func newTestConsole(input string, opts ...Option) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, opts...), &out
}

func TestReadLine_TrimsLineEndingsAndReportsEOF(t *testing.T) {
	c, _ := newTestConsole("first\r\nlast")

	got, err := c.ReadLine()
	if err != nil || got != "first" {
		t.Fatalf("ReadLine = %q, %v, want first", got, err)
	}
	got, err = c.ReadLine()
	if err != nil || got != "last" {
		t.Fatalf("ReadLine = %q, %v, want last", got, err)
	}
	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadLine error = %v, want io.EOF", err)
	}
}

func TestPromptLine_CancelKeyIgnoresCase(t *testing.T) {
	for _, input := range []string{"E\n", "e\n", "  e \n"} {
		c, _ := newTestConsole(input)
		res, err := c.PromptLine("Reason:")
		if err != nil {
			t.Fatalf("PromptLine returned error: %v", err)
		}
		if !res.Cancelled {
			t.Fatalf("PromptLine(%q) not cancelled", input)
		}
	}
}

func TestPromptDefault_BlankUsesDefault(t *testing.T) {
	c, out := newTestConsole("\nnew@example.com\n")

	res, err := c.PromptDefault("Email", "old@example.com")
	if err != nil || res.Value != "old@example.com" {
		t.Fatalf("PromptDefault = %#v, %v, want default", res, err)
	}
	if !strings.Contains(out.String(), "Email [old@example.com]:") {
		t.Fatalf("prompt = %q, want default shown", out.String())
	}
	res, err = c.PromptDefault("Email", "old@example.com")
	if err != nil || res.Value != "new@example.com" {
		t.Fatalf("PromptDefault = %#v, %v, want typed value", res, err)
	}
}

func TestPromptRequired_RepeatsOnBlank(t *testing.T) {
	c, out := newTestConsole("\n   \nfamily trip\n")

	res, err := c.PromptRequired("Reason:")
	if err != nil {
		t.Fatalf("PromptRequired returned error: %v", err)
	}
	if res.Value != "family trip" {
		t.Fatalf("Value = %q, want family trip", res.Value)
	}
	if n := strings.Count(out.String(), "A value is required."); n != 2 {
		t.Fatalf("saw %d blank warnings, want 2", n)
	}
}

func TestPromptDate_RepeatsOnMalformed(t *testing.T) {
	c, out := newTestConsole("tomorrow\n2024-13-01\n2024-02-29\n")

	res, err := c.PromptDate("Start date:")
	if err != nil {
		t.Fatalf("PromptDate returned error: %v", err)
	}
	if want := policy.Date(2024, time.February, 29); !res.Value.Equal(want) {
		t.Fatalf("Value = %v, want %v", res.Value, want)
	}
	if n := strings.Count(out.String(), "Invalid date format"); n != 2 {
		t.Fatalf("saw %d format errors, want 2", n)
	}
}

func TestPromptDate_CancelAndEOF(t *testing.T) {
	c, _ := newTestConsole("bad\nE\n")
	res, err := c.PromptDate("Start date:")
	if err != nil || !res.Cancelled {
		t.Fatalf("PromptDate = %#v, %v, want cancelled", res, err)
	}
	if _, err := c.PromptDate("Start date:"); !errors.Is(err, io.EOF) {
		t.Fatalf("PromptDate error = %v, want io.EOF", err)
	}
}

func TestPromptChoice_RejectsOutOfRange(t *testing.T) {
	c, out := newTestConsole("abc\n0\n5\n3\n")

	res, err := c.PromptChoice("Choice:", 4)
	if err != nil {
		t.Fatalf("PromptChoice returned error: %v", err)
	}
	if res.Value != 3 {
		t.Fatalf("Value = %d, want 3", res.Value)
	}
	text := out.String()
	if strings.Count(text, "Invalid input") != 1 || strings.Count(text, "between 1 and 4") != 2 {
		t.Fatalf("unexpected error output: %q", text)
	}
}

func TestMenu_ListsItems(t *testing.T) {
	c, out := newTestConsole("2\n")

	res, err := c.Menu("Main Menu", "Employee Login", "Manager Login", "Exit")
	if err != nil || res.Value != 2 {
		t.Fatalf("Menu = %#v, %v, want 2", res, err)
	}
	for _, want := range []string{"Main Menu", "1. Employee Login", "2. Manager Login", "3. Exit"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("menu output missing %q: %q", want, out.String())
		}
	}
}

func TestPromptSecret_UsesSecretReader(t *testing.T) {
	var gotLabel string
	c, _ := newTestConsole("", WithSecretReader(func(label string) (string, bool, error) {
		gotLabel = label
		return "hunter2", false, nil
	}))

	res, err := c.PromptSecret("Password:")
	if err != nil || res.Value != "hunter2" {
		t.Fatalf("PromptSecret = %#v, %v, want hunter2", res, err)
	}
	if gotLabel != "Password:" {
		t.Fatalf("label = %q, want Password:", gotLabel)
	}

	c, _ = newTestConsole("", WithSecretReader(func(string) (string, bool, error) {
		return "", true, nil
	}))
	res, err = c.PromptSecret("Password:")
	if err != nil || !res.Cancelled {
		t.Fatalf("PromptSecret = %#v, %v, want cancelled on abort", res, err)
	}
}

func TestPromptSecret_FallsBackToLineWithoutTerminal(t *testing.T) {
	c, _ := newTestConsole("s3cret\n")

	res, err := c.PromptSecret("Password:")
	if err != nil || res.Value != "s3cret" {
		t.Fatalf("PromptSecret = %#v, %v, want s3cret", res, err)
	}
}

func TestSecretModel_MasksAndSubmits(t *testing.T) {
	m := newSecretModel("Password:")

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter returned nil cmd, want quit")
	}

	got := model.(secretModel)
	if !got.done || got.aborted {
		t.Fatalf("state = done:%v aborted:%v, want done", got.done, got.aborted)
	}
	if got.input.Value() != "abc" {
		t.Fatalf("Value = %q, want abc", got.input.Value())
	}
	if view := got.View(); strings.Contains(view, "abc") || !strings.Contains(view, "***") {
		t.Fatalf("View = %q, want masked value", view)
	}
}

func TestSecretModel_EscAborts(t *testing.T) {
	var model tea.Model = newSecretModel("Password:")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !model.(secretModel).aborted {
		t.Fatalf("aborted = false, want true")
	}
}

func TestRenderTable_AlignsColumnsAndTitlesStatus(t *testing.T) {
	c, _ := newTestConsole("")

	out := c.RenderTable(
		[]string{"Leave ID", "Leave Type", "Status"},
		[][]string{
			{"1", "CasualLeave", "pending"},
			{"12", "SickLeave", "APPROVED"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 5 {
		t.Fatalf("table has %d lines, want at least 5:\n%s", len(lines), out)
	}
	width := len(lines[0])
	for _, line := range lines {
		if len(line) != width {
			t.Fatalf("line %q has width %d, want %d:\n%s", line, len(line), width, out)
		}
	}
	if !strings.HasPrefix(lines[0], "+") || !strings.Contains(lines[0], "-") {
		t.Fatalf("top border = %q, want ASCII border", lines[0])
	}
	for _, want := range []string{"Leave ID", "| Pending", "| Approved", "CasualLeave"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTable_ShortRowsArePadded(t *testing.T) {
	c, _ := newTestConsole("")

	out := c.RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	if !strings.Contains(out, "only") {
		t.Fatalf("table missing cell:\n%s", out)
	}
}

func TestStatusLabel(t *testing.T) {
	tests := map[string]string{
		"pending":  "Pending",
		"REJECTED": "Rejected",
		"  ":       "-",
	}
	for in, want := range tests {
		if got := StatusLabel(in); got != want {
			t.Fatalf("StatusLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme_FallsBackToDefault(t *testing.T) {
	if got := GetTheme("slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(slate) = %q, want Slate", got)
	}
	if got := GetTheme("Dracula").Name; got != DefaultTheme {
		t.Fatalf("GetTheme(unknown) = %q, want %q", got, DefaultTheme)
	}
}
