package elevenlabs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.elevenlabs.io"

	// DefaultTimeout bounds a whole request when no custom HTTP client is
	// supplied. Synthesis of long passages can take tens of seconds.
	DefaultTimeout = 60 * time.Second
)

// Client talks to the text-to-speech API. The zero value is not usable;
// construct one with NewClient. A Client is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	defaultVoiceSettings *VoiceSettings
	defaultBodyParams    map[string]any
}

type ClientOption func(*Client)

// WithBaseURL points the client at another endpoint, such as a regional
// deployment or a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides DefaultTimeout. Ignored when WithHTTPClient is also
// given, since the supplied client owns its own timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient swaps in a custom HTTP client, for proxies, custom
// transports, or test doubles.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDefaultVoiceSettings applies the settings to every request that does
// not carry its own.
func WithDefaultVoiceSettings(settings VoiceSettings) ClientOption {
	return func(c *Client) {
		c.defaultVoiceSettings = &settings
	}
}

// WithDefaultBodyParams fills the params into every request body for keys
// the request left absent. Request fields and ExtraBody both win over them.
func WithDefaultBodyParams(params map[string]any) ClientOption {
	return func(c *Client) {
		c.defaultBodyParams = params
	}
}

// NewClient constructs a client for the given API key. The key is only
// checked at dispatch time, so a client for a not-yet-known key can be
// constructed eagerly.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// DoSpeech validates and dispatches a fully assembled request. Most callers
// use the Synthesize builder instead.
func (c *Client) DoSpeech(ctx context.Context, req SpeechRequest) (*SpeechResponse, error) {
	req.Model = lo.CoalesceOrEmpty(req.Model, DefaultModel)
	req.Voice = lo.CoalesceOrEmpty(req.Voice, DefaultVoice)
	req.OutputFormat = lo.CoalesceOrEmpty(req.OutputFormat, DefaultAudioFormat)

	if req.VoiceSettings == nil {
		req.VoiceSettings = c.defaultVoiceSettings
	}

	if err := c.validateSpeechRequest(req); err != nil {
		return nil, err
	}

	bs, err := req.marshalBody(c.defaultBodyParams)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newSpeechHTTPRequest(ctx, req, bs)
	if err != nil {
		return nil, err
	}

	callID := uuid.New().String()
	c.logger.Debug("dispatching text to speech request",
		slog.String("call_id", callID),
		slog.String("url", httpReq.URL.String()),
		slog.String("model", req.Model.String()),
		slog.String("voice", req.Voice.String()),
		slog.String("output_format", req.OutputFormat.String()),
		slog.Int("text_length", len(req.Text)),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := parseAPIError(c.logger, resp, body)

		c.logger.Debug("text to speech request rejected",
			slog.String("call_id", callID),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)

		return nil, apiErr
	}

	speechResp := newSpeechResponseFromHTTP(resp, req.OutputFormat, body)

	c.logger.Debug("text to speech request succeeded",
		slog.String("call_id", callID),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", speechResp.RequestID),
		slog.Int("audio_bytes", len(speechResp.Audio)),
	)

	return speechResp, nil
}

// validateSpeechRequest runs the preflight checks in a fixed order: input
// text first, then voice settings, then seed, then credentials. The request
// must already have its defaults resolved.
func (c *Client) validateSpeechRequest(req SpeechRequest) error {
	if req.Text == "" {
		return ErrMissingInput
	}

	if len(req.Text) > MaxInputLength {
		return &InputTooLongError{Length: len(req.Text)}
	}

	if err := req.VoiceSettings.Validate(); err != nil {
		return err
	}

	if req.Seed != nil && (*req.Seed < 0 || *req.Seed > maxSeed) {
		return &InvalidSeedError{Seed: *req.Seed}
	}

	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	return nil
}

func (c *Client) newSpeechHTTPRequest(ctx context.Context, req SpeechRequest, body []byte) (*http.Request, error) {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	reqURL := parsed.JoinPath("v1", "text-to-speech", req.Voice.ID())

	query := reqURL.Query()
	query.Set("output_format", req.OutputFormat.String())
	reqURL.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewBuffer(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	httpReq.Header.Set("Xi-Api-Key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
