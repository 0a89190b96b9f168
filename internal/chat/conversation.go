package chat

import (
	"encoding/json"
	"time"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// Position is where the chat window was dragged to on desktop.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Conversation is the append-only transcript of one session plus the chat
// window state. It is not safe for concurrent use.
type Conversation struct {
	messages  []domain.ChatMessage
	open      bool
	minimized bool
	position  *Position
	lastID    int64

	now func() time.Time
}

// NewConversation starts a transcript holding only the greeting.
func NewConversation(greeting Response) *Conversation {
	c := &Conversation{now: time.Now}
	c.AppendBot(greeting)
	return c
}

func (c *Conversation) AppendUser(text string) domain.ChatMessage {
	return c.append(domain.ChatMessage{Text: text})
}

func (c *Conversation) AppendBot(r Response) domain.ChatMessage {
	replies := make([]domain.QuickReply, len(r.QuickReplies))
	copy(replies, r.QuickReplies)
	return c.append(domain.ChatMessage{Text: r.Text, IsBot: true, QuickReplies: replies})
}

func (c *Conversation) append(m domain.ChatMessage) domain.ChatMessage {
	m.ID = c.nextID()
	c.messages = append(c.messages, m)
	return m
}

// nextID derives ids from the clock in milliseconds and bumps past the last
// id when two messages land in the same millisecond.
func (c *Conversation) nextID() int64 {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	id := now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

func (c *Conversation) Messages() []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int { return len(c.messages) }

func (c *Conversation) Open() {
	c.open = true
}

// Close hides the window and forgets where it was dragged to.
func (c *Conversation) Close() {
	c.open = false
	c.minimized = false
	c.position = nil
}

func (c *Conversation) IsOpen() bool { return c.open }

func (c *Conversation) SetMinimized(minimized bool) {
	c.minimized = minimized
}

func (c *Conversation) Minimized() bool { return c.minimized }

func (c *Conversation) SetPosition(p *Position) {
	if p == nil {
		c.position = nil
		return
	}
	pos := *p
	c.position = &pos
}

func (c *Conversation) Position() *Position {
	if c.position == nil {
		return nil
	}
	pos := *c.position
	return &pos
}

type conversationJSON struct {
	Messages  []domain.ChatMessage `json:"messages"`
	Open      bool                 `json:"open"`
	Minimized bool                 `json:"minimized"`
	Position  *Position            `json:"position,omitempty"`
}

func (c *Conversation) MarshalJSON() ([]byte, error) {
	msgs := c.messages
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return json.Marshal(conversationJSON{
		Messages:  msgs,
		Open:      c.open,
		Minimized: c.minimized,
		Position:  c.position,
	})
}

func (c *Conversation) UnmarshalJSON(data []byte) error {
	var v conversationJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c.messages = v.Messages
	c.open = v.Open
	c.minimized = v.Minimized
	c.position = v.Position
	c.lastID = 0
	for _, m := range v.Messages {
		if m.ID > c.lastID {
			c.lastID = m.ID
		}
	}
	if c.now == nil {
		c.now = time.Now
	}
	return nil
}
