package ui

import "fmt"

// Status symbols prefix one-line messages. Color is never used for status.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolInfo    = "ℹ"
)

func status(symbol, msg string) string {
	return symbol + " " + msg
}

// Success prefixes msg with a check mark.
func Success(msg string) string { return status(SymbolSuccess, msg) }

// Successf is Success with formatting.
func Successf(format string, args ...any) string { return Success(fmt.Sprintf(format, args...)) }

// Error prefixes msg with a cross.
func Error(msg string) string { return status(SymbolError, msg) }

// Info prefixes msg with an info sign.
func Info(msg string) string { return status(SymbolInfo, msg) }

// Infof is Info with formatting.
func Infof(format string, args ...any) string { return Info(fmt.Sprintf(format, args...)) }

// Header renders a section title.
func Header(msg string) string { return Bold.Render(msg) }

// FilePath renders a path in the accent color.
func FilePath(path string) string { return Accent.Render(path) }

// Hint renders secondary text.
func Hint(msg string) string { return Muted.Render(msg) }

// Count returns n followed by the singular or plural noun, e.g. "3 notes".
func Count(n int, singular, plural string) string {
	noun := plural
	if n == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", n, noun)
}
