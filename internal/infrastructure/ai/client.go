// Package ai wraps the remote chat-completion API used to personalize
// reminders for premium users. Every call degrades to local content.
package ai

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"time"

	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/quote"
	"rudereminder/internal/pkg/logger"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `You write short reminder messages for a productivity app whose voice is rude but motivating.
Generate fresh, non-repetitive reminder phrasing. Never repeat a sentence structure twice.
Reply with a numbered list only, one message per line, no commentary.`

const quoteSystemPrompt = `You pick a single short motivational quote that fits the user's task.
Reply with the quote text only, no attribution, no quotation marks.`

// PromptContext is what the model is told about the reminder and its owner.
type PromptContext struct {
	Task      string
	Category  constant.Category
	Rudeness  int
	TimeOfDay string
	Gender    string // Empty unless the user opted in
	Culture   string // Empty unless the user opted in
}

// Client generates reminder copy through an OpenAI-compatible chat endpoint.
type Client struct {
	client *openai.Client
	model  string
	apiKey string
	log    logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Client. An empty apiKey disables remote calls.
func New(apiKey, baseURL, model string, log logger.Logger) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	seed := uint64(time.Now().UnixNano())

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
		apiKey: apiKey,
		log:    log,
		rng:    rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

// Enabled reports whether remote calls will be attempted.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GenerateResponses returns exactly count messages. Remote failures are logged
// and answered with local fallbacks; only context cancellation is an error.
func (c *Client) GenerateResponses(ctx context.Context, pc PromptContext, count int) ([]string, error) {
	if count <= 0 {
		count = 1
	}
	if !c.Enabled() {
		return FallbackResponses(pc), nil
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(pc, count)},
		},
		Temperature: 0.9,
		MaxTokens:   400,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.log.Error("AI response generation failed, using fallback", err, "task", pc.Task)
		return FallbackResponses(pc), nil
	}
	if len(resp.Choices) == 0 {
		c.log.Warn("AI returned no choices, using fallback", "task", pc.Task)
		return FallbackResponses(pc), nil
	}

	parsed := parseNumberedList(resp.Choices[0].Message.Content)
	if len(parsed) == 0 {
		c.log.Warn("AI output had no usable lines, using fallback", "task", pc.Task)
		return FallbackResponses(pc), nil
	}
	return padTo(parsed, count), nil
}

// GenerateQuote returns one motivational quote, falling back to the local
// culture, category and generic pools in that order.
func (c *Client) GenerateQuote(ctx context.Context, pc PromptContext) (string, error) {
	if c.Enabled() {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: quoteSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: buildQuotePrompt(pc)},
			},
			Temperature: 0.8,
			MaxTokens:   80,
		})
		switch {
		case err != nil && ctx.Err() != nil:
			return "", ctx.Err()
		case err != nil:
			c.log.Error("AI quote generation failed, using local quote", err, "task", pc.Task)
		case len(resp.Choices) > 0:
			if q := cleanLine(resp.Choices[0].Message.Content); q != "" {
				return q, nil
			}
		}
	}
	return c.LocalQuote(pc.Category, pc.Culture), nil
}

// LocalQuote draws from the static pools without touching the network.
func (c *Client) LocalQuote(category constant.Category, culture string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return quote.Local(c.rng, category, culture)
}

// ToneLabel describes a rudeness level for the prompt.
func ToneLabel(level int) string {
	switch level {
	case 1:
		return "gentle and encouraging"
	case 2:
		return "lightly teasing"
	case 4:
		return "blunt and savage"
	case 5:
		return "harshly motivating and unfiltered"
	default:
		return "sarcastic but supportive"
	}
}

func buildPrompt(pc PromptContext, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d different reminder messages for the task %q.\n", count, pc.Task)
	fmt.Fprintf(&b, "Category: %s\n", pc.Category)
	fmt.Fprintf(&b, "Tone: %s (rudeness %d of 5)\n", ToneLabel(pc.Rudeness), pc.Rudeness)
	if pc.TimeOfDay != "" {
		fmt.Fprintf(&b, "It is currently %s.\n", pc.TimeOfDay)
	}
	if pc.Gender != "" {
		fmt.Fprintf(&b, "The user identifies as %s; you may reflect that naturally.\n", pc.Gender)
	}
	if pc.Culture != "" {
		fmt.Fprintf(&b, "The user's cultural background is %s; culturally resonant references are welcome.\n", pc.Culture)
	}
	b.WriteString("Each message must mention the task and stay under 200 characters.")
	return b.String()
}

func buildQuotePrompt(pc PromptContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\nCategory: %s\n", pc.Task, pc.Category)
	if pc.Gender != "" {
		fmt.Fprintf(&b, "Gender: %s\n", pc.Gender)
	}
	if pc.Culture != "" {
		fmt.Fprintf(&b, "Cultural background: %s\n", pc.Culture)
	}
	return b.String()
}

var numberedLine = regexp.MustCompile(`^\s*\d+\s*[.):-]\s*(.+)$`)

func parseNumberedList(text string) []string {
	var numbered, plain []string
	for _, line := range strings.Split(text, "\n") {
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			if s := cleanLine(m[1]); s != "" {
				numbered = append(numbered, s)
			}
			continue
		}
		if s := cleanLine(line); s != "" {
			plain = append(plain, s)
		}
	}
	if len(numbered) > 0 {
		return numbered
	}
	return plain
}

func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"“”*`)
	return strings.TrimSpace(s)
}

var padPrefixes = []string{"Seriously, ", "Listen up: ", "One more time: ", "Last warning: "}

// padTo trims or extends list to n entries. New entries are the last parsed
// message with a different leading phrase.
func padTo(list []string, n int) []string {
	if len(list) >= n {
		return list[:n]
	}
	last := stripPadPrefix(list[len(list)-1])
	for i := 0; len(list) < n; i++ {
		list = append(list, padPrefixes[i%len(padPrefixes)]+lowerFirst(last))
	}
	return list
}

func stripPadPrefix(s string) string {
	for _, p := range padPrefixes {
		if strings.HasPrefix(s, p) {
			return strings.TrimPrefix(s, p)
		}
	}
	return s
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// FallbackResponses is the local answer when the remote API is unavailable.
func FallbackResponses(pc PromptContext) []string {
	out := []string{
		fmt.Sprintf("Time to %s. No more excuses.", pc.Task),
		fmt.Sprintf("Still haven't done \"%s\"? Get moving.", pc.Task),
		fmt.Sprintf("You set this reminder for a reason: %s.", pc.Task),
		fmt.Sprintf("Stop scrolling and %s.", pc.Task),
	}
	if pc.Rudeness >= 4 {
		out = append(out,
			fmt.Sprintf("Seriously? \"%s\" is still waiting on you?", pc.Task),
			fmt.Sprintf("Do it now: %s. Procrastination is not a personality.", pc.Task),
		)
	}
	return out
}
