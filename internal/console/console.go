// Package console reads line-oriented input and prints styled text and tables.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console reads line input and writes styled output.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   Styles

	// secret reads a masked line; nil means plain ReadLine.
	secret func(label string) (string, bool, error)
}

// Option configures a Console.
type Option func(*Console)

// WithTheme selects the color theme.
func WithTheme(t Theme) Option {
	return func(c *Console) {
		c.styles = t.Styles(c.renderer)
	}
}

// WithSecretReader replaces the masked password reader. The reader returns
// the entered value and whether input was aborted.
func WithSecretReader(fn func(label string) (string, bool, error)) Option {
	return func(c *Console) {
		c.secret = fn
	}
}

// New returns a Console over in and out. When in is a terminal, passwords are
// read with a masked input field.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
	c.styles = GetTheme(DefaultTheme).Styles(c.renderer)
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		c.secret = func(label string) (string, bool, error) {
			return readMasked(f, out, label)
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ReadLine returns the next input line without its line ending. At end of
// input it returns io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes text as-is.
func (c *Console) Print(text string) {
	_, _ = io.WriteString(c.out, text)
}

// Println writes text followed by a newline.
func (c *Console) Println(text string) {
	_, _ = io.WriteString(c.out, text+"\n")
}

// Title writes a heading.
func (c *Console) Title(text string) {
	c.Println("")
	c.Println(c.styles.Title.Render(text))
}

// Info writes a formatted informational line.
func (c *Console) Info(format string, args ...any) {
	c.Println(c.styles.InfoText.Render(fmt.Sprintf(format, args...)))
}

// Warn writes a formatted line in the warning color.
func (c *Console) Warn(format string, args ...any) {
	c.Println(c.styles.WarningText.Render(fmt.Sprintf(format, args...)))
}

// Error writes a formatted line in the danger color.
func (c *Console) Error(format string, args ...any) {
	c.Println(c.styles.DangerText.Render(fmt.Sprintf(format, args...)))
}

// Success writes a formatted confirmation line.
func (c *Console) Success(format string, args ...any) {
	c.Println(c.styles.SuccessText.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) prompt(label string) {
	c.Print(c.styles.Text.Render(label) + " ")
}
