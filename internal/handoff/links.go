package handoff

import (
	"net/url"
	"strings"
)

// Links builds the shop's outbound contact URLs.
type Links struct {
	WhatsAppPhone string
	InstagramURL  string
	EmailAddress  string
}

// WhatsApp returns a wa.me link with text pre-filled.
func (l Links) WhatsApp(text string) string {
	phone := strings.TrimPrefix(l.WhatsAppPhone, "+")
	return "https://wa.me/" + phone + "?text=" + encodeComponent(text)
}

func (l Links) Instagram() string {
	return l.InstagramURL
}

// Email returns a mailto link with the subject pre-filled.
func (l Links) Email(subject string) string {
	return "mailto:" + l.EmailAddress + "?subject=" + encodeComponent(subject)
}

// componentUnescaper turns QueryEscape output into encodeURIComponent
// output: spaces are %20 and the marks !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
