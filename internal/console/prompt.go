package console

import (
	"strconv"
	"strings"
	"time"

	"github.com/five82/lms/internal/policy"
)

// CancelKey aborts the workflow in progress when entered at any prompt.
const CancelKey = "E"

// Result is the outcome of a prompt: either a value or a cancellation.
type Result[T any] struct {
	Value     T
	Cancelled bool
}

// Value wraps v as a completed Result.
func Value[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Cancelled returns a cancelled Result.
func Cancelled[T any]() Result[T] {
	return Result[T]{Cancelled: true}
}

func isCancel(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), CancelKey)
}

// PromptLine reads one trimmed line.
func (c *Console) PromptLine(label string) (Result[string], error) {
	c.prompt(label)
	line, err := c.ReadLine()
	if err != nil {
		return Result[string]{}, err
	}
	if isCancel(line) {
		return Cancelled[string](), nil
	}
	return Value(strings.TrimSpace(line)), nil
}

// PromptDefault reads one line, returning def when the line is blank.
func (c *Console) PromptDefault(label, def string) (Result[string], error) {
	if def != "" {
		label = label + " [" + def + "]"
	}
	res, err := c.PromptLine(label + ":")
	if err != nil || res.Cancelled {
		return res, err
	}
	if res.Value == "" {
		res.Value = def
	}
	return res, nil
}

// PromptRequired repeats until a non-blank line is entered.
func (c *Console) PromptRequired(label string) (Result[string], error) {
	for {
		res, err := c.PromptLine(label)
		if err != nil || res.Cancelled {
			return res, err
		}
		if res.Value != "" {
			return res, nil
		}
		c.Error("A value is required.")
	}
}

// PromptDate repeats until a yyyy-MM-dd date is entered.
func (c *Console) PromptDate(label string) (Result[time.Time], error) {
	for {
		res, err := c.PromptLine(label)
		if err != nil {
			return Result[time.Time]{}, err
		}
		if res.Cancelled {
			return Cancelled[time.Time](), nil
		}
		day, err := policy.ParseDate(res.Value)
		if err == nil {
			return Value(day), nil
		}
		c.Error("Invalid date format. Please enter the date in yyyy-MM-dd format.")
	}
}

// PromptInt repeats until a whole number is entered.
func (c *Console) PromptInt(label string) (Result[int], error) {
	for {
		res, err := c.PromptLine(label)
		if err != nil {
			return Result[int]{}, err
		}
		if res.Cancelled {
			return Cancelled[int](), nil
		}
		n, err := strconv.Atoi(res.Value)
		if err == nil {
			return Value(n), nil
		}
		c.Error("Invalid input. Please enter a number.")
	}
}

// PromptChoice repeats until a number between 1 and max is entered.
func (c *Console) PromptChoice(label string, max int) (Result[int], error) {
	for {
		res, err := c.PromptInt(label)
		if err != nil || res.Cancelled {
			return res, err
		}
		if res.Value >= 1 && res.Value <= max {
			return res, nil
		}
		c.Error("Invalid choice. Please enter a number between 1 and %d.", max)
	}
}

// Menu prints a numbered list of items and returns the chosen 1-based index.
func (c *Console) Menu(title string, items ...string) (Result[int], error) {
	c.Title(title)
	for i, item := range items {
		c.Println(c.styles.MutedText.Render(strconv.Itoa(i+1)+".") + " " + item)
	}
	return c.PromptChoice("Enter your choice:", len(items))
}

// PromptSecret reads a password. On a terminal the input is masked.
func (c *Console) PromptSecret(label string) (Result[string], error) {
	if c.secret == nil {
		return c.PromptLine(label)
	}
	value, aborted, err := c.secret(label)
	if err != nil {
		return Result[string]{}, err
	}
	if aborted || isCancel(value) {
		return Cancelled[string](), nil
	}
	return Value(value), nil
}
