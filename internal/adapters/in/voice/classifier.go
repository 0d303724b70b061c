// Package voice turns spoken driver commands into calls on the driver core.
//
// Recognition is split in two steps. A Classifier resolves a free-text
// utterance to a Token by keyword; a Dispatcher executes a Token against the
// command and query handlers. The core never sees the utterance itself.
package voice

import (
	"errors"
	"strings"
)

// ErrUnrecognized is returned when no keyword matches the utterance.
var ErrUnrecognized = errors.New(
	"command not understood, try saying 'accept order', 'picked up', 'delivered' or 'go online'")

// Token is a normalized voice command.
type Token string

const (
	AcceptOrder   Token = "accept_order"
	DeclineOrder  Token = "decline_order"
	MarkPickedUp  Token = "mark_picked_up"
	MarkInTransit Token = "mark_in_transit"
	MarkDelivered Token = "mark_delivered"
	GoOnline      Token = "go_online"
	GoOffline     Token = "go_offline"
	ShowEarnings  Token = "show_earnings"
	ShowOrders    Token = "show_orders"
	SOS           Token = "sos"
)

// Tokens lists every token the dispatcher understands.
func Tokens() []Token {
	return []Token{
		AcceptOrder, DeclineOrder, MarkPickedUp, MarkInTransit, MarkDelivered,
		GoOnline, GoOffline, ShowEarnings, ShowOrders, SOS,
	}
}

func (t Token) String() string {
	return string(t)
}

// Rule binds a token to the phrases that trigger it.
type Rule struct {
	Token   Token
	Phrases []string
}

// DefaultRules is the keyword table used by NewClassifier.
// Rules are tried in order and the first phrase contained in the utterance wins.
func DefaultRules() []Rule {
	return []Rule{
		{AcceptOrder, []string{"accept order", "accept delivery"}},
		{DeclineOrder, []string{"decline order", "reject order"}},
		{MarkPickedUp, []string{"picked up", "package collected"}},
		{MarkInTransit, []string{"in transit", "on my way"}},
		{MarkDelivered, []string{"delivered", "delivery complete"}},
		{GoOnline, []string{"go online", "start working"}},
		{GoOffline, []string{"go offline", "stop working"}},
		{ShowEarnings, []string{"show earnings", "my earnings"}},
		{ShowOrders, []string{"show orders", "my orders"}},
		{SOS, []string{"sos", "emergency"}},
	}
}

// Classifier resolves utterances to tokens by case-insensitive substring match.
type Classifier struct {
	rules []Rule
}

func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules())
}

func NewClassifierWithRules(rules []Rule) *Classifier {
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		phrases := make([]string, 0, len(r.Phrases))
		for _, p := range r.Phrases {
			if p = normalize(p); p != "" {
				phrases = append(phrases, p)
			}
		}
		normalized = append(normalized, Rule{Token: r.Token, Phrases: phrases})
	}
	return &Classifier{rules: normalized}
}

// Classify returns the token of the first rule matching the utterance,
// or ErrUnrecognized.
func (c *Classifier) Classify(utterance string) (Token, error) {
	text := normalize(utterance)
	if text == "" {
		return "", ErrUnrecognized
	}

	for _, r := range c.rules {
		for _, p := range r.Phrases {
			if strings.Contains(text, p) {
				return r.Token, nil
			}
		}
	}
	return "", ErrUnrecognized
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
