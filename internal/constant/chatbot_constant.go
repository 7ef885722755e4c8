package constant

const (
	ChatReplyGreeting = "Hello! How can I assist you today?"
	ChatReplyPricing  = "Our products start at $10."
	ChatReplyHelp     = "Try asking about our products or say hello!"

	// ChatReplyEchoFormat is the fallback when no keyword matches.
	// The original (untouched) message is substituted in.
	ChatReplyEchoFormat = "You said: %s"
)

type ChatKeywordRule struct {
	Keyword string
	Reply   string
}

// ChatKeywordRules is evaluated in order against the lowercased message;
// the first matching keyword wins.
var ChatKeywordRules = []ChatKeywordRule{
	{Keyword: "hello", Reply: ChatReplyGreeting},
	{Keyword: "price", Reply: ChatReplyPricing},
	{Keyword: "help", Reply: ChatReplyHelp},
}
