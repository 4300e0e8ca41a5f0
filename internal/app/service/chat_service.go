package service

import (
	"fmt"
	"strings"
)

// ChatService answers the portal's chat widget with fixed keyword rules.
// No state, no model; rules are checked in order and the first match wins.
type ChatService struct{}

func NewChatService() *ChatService {
	return &ChatService{}
}

func (s *ChatService) Reply(message string) string {
	text := strings.ToLower(strings.TrimSpace(message))
	switch {
	case text == "":
		return "Please type something so I can help!"
	case containsAny(text, "hi", "hello", "hii"):
		return "Hi! I'm Idento, your friendly assistant. How can I help you today?"
	case containsAny(text, "help", "assist"):
		return "Tell me what you need: account help, portfolio, login issues, or admin info."
	case containsAny(text, "contact", "support", "customer"):
		return "You can reach support at support@idento.com."
	case strings.Contains(text, "admin"):
		return "Admin features are available under the Admin Dashboard (login required). Only admins can create or delete users."
	case strings.Contains(text, "portfolio"):
		return "Visit /portfolio to see the portfolio page."
	default:
		return fmt.Sprintf("Sorry, I don't fully understand yet. You said: '%s'. Try asking for 'help' or 'contact'.", text)
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
