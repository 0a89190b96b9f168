package domain

import (
	"encoding/json"
	"fmt"
)

// Action is the closed set of quick-reply actions the chat widget knows.
type Action int

const (
	ActionFallback Action = iota
	ActionBirthday
	ActionAnniversary
	ActionCustom
	ActionCart
	ActionWhatsApp
	ActionInstagram
	ActionEmail
	ActionNavigateCustom
	ActionShopping
	ActionHelp
)

var actionNames = [...]string{
	ActionFallback:       "fallback",
	ActionBirthday:       "birthday",
	ActionAnniversary:    "anniversary",
	ActionCustom:         "custom",
	ActionCart:           "cart",
	ActionWhatsApp:       "whatsapp",
	ActionInstagram:      "instagram",
	ActionEmail:          "email",
	ActionNavigateCustom: "navigate_custom",
	ActionShopping:       "shopping",
	ActionHelp:           "help",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range actionNames {
		out[i] = Action(i)
	}
	return out
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a wire tag to an Action. Unknown tags yield
// ActionFallback and false.
func ParseAction(tag string) (Action, bool) {
	for i, name := range actionNames {
		if name == tag {
			return Action(i), true
		}
	}
	return ActionFallback, false
}

func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("action must be a string: %w", err)
	}
	*a, _ = ParseAction(tag)
	return nil
}

type QuickReply struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Action Action `json:"action"`
}

// ChatMessage is one transcript entry. Quick replies are only attached to
// bot messages.
type ChatMessage struct {
	ID           int64        `json:"id"`
	Text         string       `json:"text"`
	IsBot        bool         `json:"is_bot"`
	QuickReplies []QuickReply `json:"quick_replies,omitempty"`
}
