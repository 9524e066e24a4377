package slack

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables the client reads its credentials from.
const (
	EnvBotToken  = "SLACK_BOT_TOKEN"
	EnvUserToken = "SLACK_USER_TOKEN"
)

// Client drives the Slack Web API. It holds two long-lived bearer
// credentials and is otherwise stateless between calls, so a single
// instance is safe for concurrent use.
type Client struct {
	http      *http.Client
	botToken  string
	userToken string
	policy    Policy
	logger    func(format string, args ...interface{})
}

// NewClient constructs a client from explicit credentials. The bot
// token is mandatory; the user token may be empty and is only checked
// by the operations that need it. A nil policy selects DefaultPolicy,
// a nil logger disables logging.
func NewClient(botToken, userToken string, policy *Policy, logger func(format string, args ...interface{})) (*Client, error) {
	if botToken == "" {
		return nil, &ConfigError{Variable: EnvBotToken}
	}
	if policy == nil {
		defaults := DefaultPolicy()
		policy = &defaults
	}
	if logger == nil {
		logger = func(format string, args ...interface{}) {}
	}
	return &Client{
		http:      &http.Client{Timeout: policy.Timeout},
		botToken:  botToken,
		userToken: userToken,
		policy:    *policy,
		logger:    logger,
	}, nil
}

// NewClientFromEnv constructs a client from SLACK_BOT_TOKEN and
// SLACK_USER_TOKEN, loading a .env file first when one is present.
func NewClientFromEnv(policy *Policy, logger func(format string, args ...interface{})) (*Client, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	return NewClient(os.Getenv(EnvBotToken), os.Getenv(EnvUserToken), policy, logger)
}

// Policy returns a copy of the request constants this client was
// configured with.
func (c *Client) Policy() Policy {
	return c.policy
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger(format, args...)
	}
}
