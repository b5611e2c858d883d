// Transcript operations.
//
// A Transcript is an append-ordered sequence of messages. The only mutation
// besides appending is ReplaceByID, which removes the message carrying a given
// id and appends a replacement. Both are plain functions over slices so the
// placeholder lifecycle can be tested without an orchestrator.
package domain

import "time"

// Message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ThinkingContent is the sentinel body of a transient placeholder message
// shown while a turn is being resolved. It must never survive resolution.
const ThinkingContent = "Thinking..."

// Message is a single transcript entry. Content may embed structured markup
// (the UI renders it as rich text). A message is immutable once finalized;
// placeholders are removed and replaced wholesale, never edited.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Image     string    `json:"image,omitempty"`
}

// IsPlaceholder reports whether the message is an unresolved thinking marker.
func (m Message) IsPlaceholder() bool {
	return m.Sender == SenderAssistant && m.Content == ThinkingContent
}

// Transcript is the ordered conversation history of one session.
type Transcript []Message

// Append returns the transcript with msg added at the end.
func Append(t Transcript, msg Message) Transcript {
	return append(t, msg)
}

// ReplaceByID removes the message whose ID equals id and appends newMsg.
// When id is not present the transcript is returned unchanged and newMsg is
// NOT appended: a turn that was already resolved (or whose placeholder was
// removed by a concurrent resolution) must not produce a second reply.
func ReplaceByID(t Transcript, id string, newMsg Message) Transcript {
	idx := -1
	for i, m := range t {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return t
	}
	out := make(Transcript, 0, len(t))
	out = append(out, t[:idx]...)
	out = append(out, t[idx+1:]...)
	return append(out, newMsg)
}
