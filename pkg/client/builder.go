package client

import "net/http"

// DefaultBaseURL is the production lichess API root.
const DefaultBaseURL = "https://lichess.org/api"

// Builder assembles a BotClient. The zero value is not usable; start from
// NewBuilder and chain the With methods.
type Builder struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewBuilder returns a builder targeting the production API.
func NewBuilder() *Builder {
	return &Builder{baseURL: DefaultBaseURL}
}

// WithToken sets the personal API token used as the bearer credential.
func (b *Builder) WithToken(token string) *Builder {
	b.token = token
	return b
}

// WithBaseURL points the client at a different API root, typically a test
// server.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.baseURL = baseURL
	return b
}

// WithHTTPClient substitutes the underlying HTTP client. The default client
// has no timeout because event streams stay open indefinitely.
func (b *Builder) WithHTTPClient(httpClient *http.Client) *Builder {
	b.httpClient = httpClient
	return b
}

// Build validates the configuration and returns the client. A missing token
// fails with ErrNoToken; a token with bytes illegal in a header value fails
// with *InvalidTokenError.
func (b *Builder) Build() (*BotClient, error) {
	if b.token == "" {
		return nil, ErrNoToken
	}
	if !validHeaderValue(b.token) {
		return nil, &InvalidTokenError{Token: b.token}
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &BotClient{
		httpClient:    httpClient,
		baseURL:       b.baseURL,
		authorization: "Bearer " + b.token,
	}, nil
}

// validHeaderValue reports whether s can be carried verbatim in an HTTP
// header value: horizontal tab or any byte from space up, except DEL.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\t' {
			continue
		}
		if b < ' ' || b == 0x7f {
			return false
		}
	}
	return true
}
