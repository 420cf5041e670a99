// Where: ec2-starter/internal/ui/console.go
// What: Console output helpers for the operator CLI.
// Why: Keep CLI output consistent between success and failure paths.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out, EmojiEnabled: true}
}

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// Block prints a header followed by indented key/value rows.
// Rows with empty values are skipped.
func (c *Console) Block(emoji, title string, rows []KeyValue) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
	for _, kv := range rows {
		if isEmpty(kv.Value) {
			continue
		}
		c.Item(kv.Key, kv.Value)
	}
}

// Item prints a key-value item with indentation.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-16s %v\n", key+":", value)
}

func (c *Console) Warn(msg string) {
	c.line("⚠️", "[warn] ", msg)
}

func (c *Console) Failure(msg string) {
	c.line("✗", "[error] ", msg)
}

func (c *Console) line(emoji, fallback, msg string) {
	prefix := c.emojiPrefix(emoji)
	if prefix == "" {
		prefix = fallback
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}
