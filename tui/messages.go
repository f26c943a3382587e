package tui

import "fmt"

// message is one log entry. Repeats of the same text collapse into a count.
type message struct {
	text  string
	kind  lineKind
	count int
}

// MessageLog is a bounded buffer of game messages; the oldest entry is
// dropped once max is exceeded.
type MessageLog struct {
	entries []message
	max     int
}

// NewMessageLog creates a log holding at most max entries.
func NewMessageLog(max int) *MessageLog {
	return &MessageLog{
		entries: make([]message, 0, max),
		max:     max,
	}
}

// Push appends a line. A line equal to the newest entry bumps its count instead.
func (l *MessageLog) Push(text string, kind lineKind) {
	if n := len(l.entries); n > 0 && l.entries[n-1].text == text {
		l.entries[n-1].count++
		return
	}
	l.entries = append(l.entries, message{text: text, kind: kind, count: 1})
	if len(l.entries) > l.max {
		l.entries = l.entries[1:]
	}
}

// Len returns the number of entries.
func (l *MessageLog) Len() int {
	return len(l.entries)
}

// Lines returns the entries oldest first, with repeat counts appended.
func (l *MessageLog) Lines() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.display()
	}
	return out
}

func (e message) display() string {
	if e.count > 1 {
		return fmt.Sprintf("%s (x%d)", e.text, e.count)
	}
	return e.text
}
