package domain

import "github.com/samber/lo"

// History is an ordered list of messages, oldest first.
type History []Message

// Tail returns the last n messages, or the whole history when shorter.
func (h History) Tail(n int) History {
	if n <= 0 || len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}

// Append returns a new history with msg added at the end.
func (h History) Append(msg Message) History {
	out := make(History, 0, len(h)+1)
	out = append(out, h...)
	return append(out, msg)
}

// UserContents returns the content of every user message, in order.
func (h History) UserContents() []string {
	users := lo.Filter(h, func(m Message, _ int) bool { return m.Role == RoleUser })
	return lo.Map(users, func(m Message, _ int) string { return m.Content })
}

// LastAssistant returns the most recent assistant message, if any.
func (h History) LastAssistant() (Message, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Role == RoleAssistant {
			return h[i], true
		}
	}
	return Message{}, false
}
