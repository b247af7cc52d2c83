package assist

import "sync"

// Message is one turn in a session's conversation history.
type Message struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// History stores per-session conversation history with an explicit trim
// policy: at most maxExchanges prompt/response pairs are retained, oldest
// dropped first. Safe for concurrent use.
type History struct {
	mu           sync.Mutex
	maxExchanges int
	sessions     map[string][]Message
}

// NewHistory builds a History retaining up to maxExchanges exchanges per
// session. Non-positive values fall back to 10.
func NewHistory(maxExchanges int) *History {
	if maxExchanges <= 0 {
		maxExchanges = 10
	}
	return &History{
		maxExchanges: maxExchanges,
		sessions:     make(map[string][]Message),
	}
}

// Append records one prompt/response exchange for a session, trimming the
// retained history to the configured cap.
func (h *History) Append(sessionID, prompt, response string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msgs := append(h.sessions[sessionID],
		Message{Role: "user", Content: prompt},
		Message{Role: "assistant", Content: response},
	)

	if max := h.maxExchanges * 2; len(msgs) > max {
		msgs = msgs[len(msgs)-max:]
	}
	h.sessions[sessionID] = msgs
}

// Get returns a copy of the retained history for a session.
func (h *History) Get(sessionID string) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	msgs := h.sessions[sessionID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// Clear drops all history for a session.
func (h *History) Clear(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, sessionID)
}
