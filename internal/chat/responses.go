package chat

import "github.com/fjod/go_cart/storefront/internal/domain"

// Response is a canned bot reply together with the quick replies offered
// after it.
type Response struct {
	Text         string              `json:"text"`
	QuickReplies []domain.QuickReply `json:"quick_replies,omitempty"`
}

var (
	replyBirthday       = domain.QuickReply{Label: "🎂 Birthday Surprise", Icon: "🎂", Action: domain.ActionBirthday}
	replyAnniversary    = domain.QuickReply{Label: "💕 Anniversary Love", Icon: "💕", Action: domain.ActionAnniversary}
	replyCustom         = domain.QuickReply{Label: "✨ Make it Custom", Icon: "✨", Action: domain.ActionCustom}
	replyMyCart         = domain.QuickReply{Label: "🛒 My Cart", Icon: "🛒", Action: domain.ActionCart}
	replyAddToCart      = domain.QuickReply{Label: "🛒 Add to Cart", Icon: "🛒", Action: domain.ActionCart}
	replyViewCart       = domain.QuickReply{Label: "🛒 View Cart", Icon: "🛒", Action: domain.ActionCart}
	replyWhatsApp       = domain.QuickReply{Label: "💬 Chat on WhatsApp", Icon: "💬", Action: domain.ActionWhatsApp}
	replyNavigateCustom = domain.QuickReply{Label: "📝 Go to Custom Order", Icon: "📝", Action: domain.ActionNavigateCustom}
	replyShopping       = domain.QuickReply{Label: "🎁 Back to Shopping", Icon: "🎁", Action: domain.ActionShopping}
	replyHelp           = domain.QuickReply{Label: "💬 Need Help?", Icon: "💬", Action: domain.ActionHelp}
	replyInstagram      = domain.QuickReply{Label: "📸 Follow on Instagram", Icon: "📸", Action: domain.ActionInstagram}
	replyEmail          = domain.QuickReply{Label: "📧 Email Us", Icon: "📧", Action: domain.ActionEmail}
)

// RootMenu is the quick-reply menu attached to the greeting and to every
// reply that sends the visitor back to the start.
func RootMenu() []domain.QuickReply {
	return []domain.QuickReply{replyBirthday, replyAnniversary, replyCustom, replyMyCart, replyWhatsApp}
}

func replies(r ...domain.QuickReply) []domain.QuickReply { return r }

// Responses is the full canned reply table.
type Responses struct {
	Greeting       Response
	Birthday       Response
	Anniversary    Response
	Custom         Response
	Cart           Response
	WhatsApp       Response
	Instagram      Response
	Email          Response
	NavigateCustom Response
	Prices         Response
	Delivery       Response
	Help           Response
	Shopping       Response
	Fallback       Response
}

// DefaultResponses returns the shop's reply table. Every call builds fresh
// slices so callers may not alias each other's menus.
func DefaultResponses() Responses {
	return Responses{
		Greeting: Response{
			Text:         "Hieeee 👋🌸\n\nI'm your little gift buddy!\n\nTell me who you're shopping for and I'll help you find something special 💝",
			QuickReplies: RootMenu(),
		},
		Birthday: Response{
			Text:         "Aww, birthdays are the best! 🎂✨\n\nWe have some amazing birthday hampers starting from ₹599!\n\nOur Handmade Birthday Hamper (₹1299) is super popular - it comes with personalized goodies!\n\nWant to see more or create something custom? 💖",
			QuickReplies: replies(replyCustom, replyAddToCart, replyWhatsApp),
		},
		Anniversary: Response{
			Text:         "Aww, that's so sweet! 💕\n\nAnniversaries deserve something extra special!\n\nOur Anniversary Gift Set (₹1499) includes everything to make the moment unforgettable.\n\nOr I can help you create a completely custom gift! What do you think? 🌹",
			QuickReplies: replies(replyCustom, replyViewCart, replyWhatsApp),
		},
		Custom: Response{
			Text:         "Custom gifts make moments extra special! ✨\n\nYou can choose:\n• Your budget\n• The occasion\n• A personal message\n• Special preferences\n\nI'll take you to our custom order page where you can share all the details! 🎁",
			QuickReplies: replies(replyNavigateCustom, replyWhatsApp),
		},
		Cart: Response{
			Text:         "Let me open your cart for you! 🛒\n\nYou can see all your selected goodies there. Take your time choosing! 🧡",
			QuickReplies: replies(replyShopping, replyHelp),
		},
		WhatsApp: Response{
			Text:         "Sure thing! 💚\n\nI'm opening WhatsApp for you now. Our team loves chatting and will help you find the perfect gift!\n\nTalk soon! 🌸",
			QuickReplies: RootMenu(),
		},
		Instagram: Response{
			Text:         "Yay! 📸\n\nI'm opening our Instagram for you. Peek at our latest handmade creations and happy customers!\n\nSee you there! 🌸",
			QuickReplies: RootMenu(),
		},
		Email: Response{
			Text:         "Of course! 📧\n\nI'm opening your email app so you can write to us. We usually reply within a day!\n\nTalk soon! 💌",
			QuickReplies: RootMenu(),
		},
		NavigateCustom: Response{
			Text:         "Taking you there now! ✨",
			QuickReplies: RootMenu(),
		},
		Prices: Response{
			Text:         "Here are our lovely options! 🏷️\n\n🎁 Mini Gift Hamper - ₹599\n🎨 Hand Painted Mug - ₹299\n💌 Greeting Cards (Set of 3) - ₹399\n🎂 Birthday Hamper - ₹1299\n💕 Anniversary Set - ₹1499\n🌸 Custom Flowers - ₹350\n\nAnything catch your eye? 😊",
			QuickReplies: RootMenu(),
		},
		Delivery: Response{
			Text:         "Great question! 📦\n\nWe deliver all over India! Most orders are shipped within 2-3 days.\n\nFor exact delivery times to your location, just message us on WhatsApp! 💚",
			QuickReplies: replies(replyWhatsApp, replyMyCart),
		},
		Help: Response{
			Text:         "I'm here to help! 🤗\n\nYou can ask me about:\n• 🎁 Gift suggestions\n• 💰 Prices\n• 📦 Delivery\n• ✨ Custom orders\n\nOr we can chat on WhatsApp anytime! 💚",
			QuickReplies: append(RootMenu(), replyInstagram, replyEmail),
		},
		Shopping: Response{
			Text:         "Happy shopping! 🛍️✨\n\nJust scroll through our beautiful handmade gifts and tap 'Add to Cart' when something catches your eye!\n\nI'm here if you need any help! 🧡",
			QuickReplies: RootMenu(),
		},
		Fallback: Response{
			Text:         "Oopsieee 😅 I didn't quite get that.\n\nBut don't worry! You can ask me about gifts, prices, or custom orders 💖\n\nOr tap one of the buttons below!",
			QuickReplies: RootMenu(),
		},
	}
}
