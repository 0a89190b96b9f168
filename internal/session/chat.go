package session

import (
	"context"
	"time"

	"github.com/fjod/go_cart/storefront/internal/chat"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/sanitize"
)

// Outcome describes what a chat trigger did right away and what is still to
// come. Message is the user line appended to the transcript, nil when the
// trigger leaves none.
type Outcome struct {
	Message  *domain.ChatMessage `json:"message,omitempty"`
	Effect   chat.Effect         `json:"effect"`
	ReplyIn  time.Duration       `json:"-"`
	EffectIn time.Duration       `json:"-"`
}

// SendText handles text typed into the chat box. Blank text is ignored.
func (m *Manager) SendText(ctx context.Context, id, text string) (Outcome, error) {
	clean := sanitize.Text(text)
	if clean == "" {
		if _, err := m.View(ctx, id); err != nil {
			return Outcome{}, err
		}
		return Outcome{}, nil
	}
	return m.play(ctx, id, m.dispatcher.Reply(clean))
}

// PressAction handles a quick-reply button.
func (m *Manager) PressAction(ctx context.Context, id string, action domain.Action) (Outcome, error) {
	return m.play(ctx, id, m.dispatcher.Press(action))
}

// play appends the user line now, then schedules the bot reply and the
// effect. The user line always lands before its reply.
func (m *Manager) play(ctx context.Context, id string, turn chat.Turn) (Outcome, error) {
	var out Outcome
	_, err := m.Update(ctx, id, func(st *State) error {
		if turn.UserText != "" {
			msg := st.Conversation.AppendUser(turn.UserText)
			out.Message = &msg
		}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	reply := turn.Reply
	m.Schedule(id, m.opts.ReplyDelay, func(st *State) {
		st.Conversation.AppendBot(reply)
	})
	out.ReplyIn = m.opts.ReplyDelay

	if !turn.Effect.IsZero() {
		effect := turn.Effect
		m.Schedule(id, m.opts.EffectDelay, func(st *State) {
			m.applyEffect(st, effect)
		})
		out.Effect = effect
		out.EffectIn = m.opts.EffectDelay
	}
	return out, nil
}

// applyEffect performs the server-side half of an effect. Opening links and
// navigating happen in the client.
func (m *Manager) applyEffect(st *State, effect chat.Effect) {
	switch effect.Kind {
	case chat.EffectOpenCart:
		st.Cart.SetOpen(true)
	case chat.EffectOpenLink, chat.EffectNavigation, chat.EffectNone:
	}
	if effect.CloseChat {
		m.closeChat(st)
	}
}

func (m *Manager) closeChat(st *State) {
	st.Conversation.Close()
	if m.opts.CancelOnClose {
		m.cancelPending(st.ID)
	}
}

// WindowState is a partial update of the chat window. Nil fields are left
// alone; ClearPosition forgets a dragged position.
type WindowState struct {
	Open          *bool          `json:"open,omitempty"`
	Minimized     *bool          `json:"minimized,omitempty"`
	Position      *chat.Position `json:"position,omitempty"`
	ClearPosition bool           `json:"clear_position,omitempty"`
}

func (m *Manager) SetWindow(ctx context.Context, id string, w WindowState) (*State, error) {
	return m.Update(ctx, id, func(st *State) error {
		conv := st.Conversation
		if w.Open != nil {
			if *w.Open {
				conv.Open()
			} else {
				m.closeChat(st)
			}
		}
		if w.Minimized != nil {
			conv.SetMinimized(*w.Minimized)
		}
		if w.ClearPosition {
			conv.SetPosition(nil)
		} else if w.Position != nil {
			conv.SetPosition(w.Position)
		}
		return nil
	})
}
