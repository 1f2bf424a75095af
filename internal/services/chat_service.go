package services

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const defaultReply = "That's a great question. Always listen to your body first."

// cannedReplies maps message keywords to the assistant's stock answers.
// First match wins, checked in order.
var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"pain", "back"},
		reply:    "Back pain is common. Try the 'Lower Back Ease' session in the Exercises tab. If pain is sharp, please consult your doctor.",
	},
	{
		keywords: []string{"tired", "sleep"},
		reply:    "Rest is productive! Your body is working hard growing a life. Try the 'Bedtime Breathing' exercise to help you unwind.",
	},
	{
		keywords: []string{"plan", "routine"},
		reply:    "Consistency over intensity. Check your Planner tab for today's suggested gentle activity.",
	},
}

// ChatService answers wellness questions. Without an OpenAI key it serves
// the canned keyword replies; with one it asks the model and falls back to
// the canned reply on any API failure.
type ChatService struct {
	client *openai.Client
}

// NewChatService creates a ChatService. An empty apiKey disables the
// OpenAI path entirely.
func NewChatService(apiKey string) *ChatService {
	s := &ChatService{}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// CannedReply returns the stock answer for the message using lowercase
// keyword containment.
func CannedReply(message string) string {
	lower := strings.ToLower(message)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.reply
			}
		}
	}
	return defaultReply
}

// Reply produces the assistant's answer to a single user message.
func (s *ChatService) Reply(ctx context.Context, message string) string {
	if s.client == nil {
		return CannedReply(message)
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a gentle prenatal wellness companion. Answer briefly and kindly, remind the user to consult a doctor for anything medical.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil || len(resp.Choices) == 0 {
		return CannedReply(message)
	}

	return resp.Choices[0].Message.Content
}
