package chat

import (
	"strings"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

type EffectKind string

const (
	EffectNone       EffectKind = ""
	EffectOpenCart   EffectKind = "open_cart"
	EffectOpenLink   EffectKind = "open_link"
	EffectNavigation EffectKind = "navigate"
)

// Effect is a side effect caused by a turn. It fires after the same short
// delay as the bot reply. Link effects are fire-and-forget: the caller opens
// URL and nobody learns whether that worked.
type Effect struct {
	Kind EffectKind `json:"kind"`
	URL  string     `json:"url,omitempty"`
	Path string     `json:"path,omitempty"`
	// CloseChat is set when the chat window closes as part of the effect.
	CloseChat bool `json:"close_chat,omitempty"`
}

func (e Effect) IsZero() bool { return e.Kind == EffectNone }

// CustomOrderPath is where the navigate_custom action sends the visitor.
const CustomOrderPath = "/custom-order"

// Turn is the dispatcher's answer to one trigger. UserText is empty when the
// trigger leaves no user line in the transcript.
type Turn struct {
	UserText string
	Reply    Response
	Effect   Effect
}

// Links builds the outbound URLs used by link effects.
type Links interface {
	WhatsApp(text string) string
	Instagram() string
	Email(subject string) string
}

// GreetingText is prefilled in the WhatsApp chat opened from the widget.
const GreetingText = "Hi Artisiannest, I'm interested in your handmade gifts."

const emailSubject = "Hello from the Artisiannest website"

type rule struct {
	keywords []string
	action   domain.Action
	prices   bool
	delivery bool
}

// keywordRules are checked in order and the first hit wins, so "birthday
// cart" resolves to the birthday reply.
var keywordRules = []rule{
	{keywords: []string{"birthday", "bday"}, action: domain.ActionBirthday},
	{keywords: []string{"anniversary", "anniv"}, action: domain.ActionAnniversary},
	{keywords: []string{"custom", "personalize"}, action: domain.ActionCustom},
	{keywords: []string{"price", "cost", "how much"}, prices: true},
	{keywords: []string{"delivery", "shipping", "ship"}, delivery: true},
	{keywords: []string{"help", "hi", "hello"}, action: domain.ActionHelp},
	{keywords: []string{"cart"}, action: domain.ActionCart},
	{keywords: []string{"whatsapp", "chat"}, action: domain.ActionWhatsApp},
}

// Dispatcher maps quick-reply actions and free text to canned replies. It
// holds no per-conversation state and is safe for concurrent use.
type Dispatcher struct {
	responses Responses
	links     Links
}

func NewDispatcher(responses Responses, links Links) *Dispatcher {
	return &Dispatcher{responses: responses, links: links}
}

func (d *Dispatcher) Greeting() Response {
	return d.responses.Greeting
}

// Press handles a quick-reply button.
func (d *Dispatcher) Press(action domain.Action) Turn {
	r := d.responses
	switch action {
	case domain.ActionBirthday:
		return Turn{UserText: replyBirthday.Label, Reply: r.Birthday}
	case domain.ActionAnniversary:
		return Turn{UserText: replyAnniversary.Label, Reply: r.Anniversary}
	case domain.ActionCustom:
		return Turn{UserText: replyCustom.Label, Reply: r.Custom}
	case domain.ActionCart:
		return Turn{UserText: replyMyCart.Label, Reply: r.Cart, Effect: Effect{Kind: EffectOpenCart}}
	case domain.ActionWhatsApp:
		return Turn{UserText: replyWhatsApp.Label, Reply: r.WhatsApp, Effect: d.whatsApp()}
	case domain.ActionInstagram:
		return Turn{UserText: replyInstagram.Label, Reply: r.Instagram, Effect: Effect{Kind: EffectOpenLink, URL: d.links.Instagram()}}
	case domain.ActionEmail:
		return Turn{UserText: replyEmail.Label, Reply: r.Email, Effect: Effect{Kind: EffectOpenLink, URL: d.links.Email(emailSubject)}}
	case domain.ActionNavigateCustom:
		return Turn{
			UserText: replyNavigateCustom.Label,
			Reply:    r.NavigateCustom,
			Effect:   Effect{Kind: EffectNavigation, Path: CustomOrderPath, CloseChat: true},
		}
	case domain.ActionShopping:
		return Turn{UserText: replyShopping.Label, Reply: r.Shopping}
	case domain.ActionHelp:
		return Turn{UserText: replyHelp.Label, Reply: r.Help}
	case domain.ActionFallback:
		return Turn{Reply: r.Fallback}
	}
	return Turn{Reply: r.Fallback}
}

// Reply handles typed text. The visitor's own words become the user line.
func (d *Dispatcher) Reply(text string) Turn {
	turn := d.match(strings.ToLower(text))
	turn.UserText = text
	return turn
}

func (d *Dispatcher) match(lower string) Turn {
	for _, rl := range keywordRules {
		if !containsAny(lower, rl.keywords) {
			continue
		}
		switch {
		case rl.prices:
			return Turn{Reply: d.responses.Prices}
		case rl.delivery:
			return Turn{Reply: d.responses.Delivery}
		default:
			return d.Press(rl.action)
		}
	}
	return Turn{Reply: d.responses.Fallback}
}

func (d *Dispatcher) whatsApp() Effect {
	return Effect{Kind: EffectOpenLink, URL: d.links.WhatsApp(GreetingText)}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
