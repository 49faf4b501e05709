package elevenlabs

import (
	"context"

	"github.com/samber/lo"
)

// SpeechRequestBuilder accumulates parameters for a single request and
// dispatches it through the client that created it. It is not safe for
// concurrent use; build one per request.
type SpeechRequestBuilder struct {
	client  *Client
	request SpeechRequest
}

// Synthesize starts a new speech request against the client.
func (c *Client) Synthesize() *SpeechRequestBuilder {
	return &SpeechRequestBuilder{client: c}
}

// Text sets the input text to synthesize.
func (b *SpeechRequestBuilder) Text(text string) *SpeechRequestBuilder {
	b.request.Text = text
	return b
}

// Input is an alias for Text.
func (b *SpeechRequestBuilder) Input(text string) *SpeechRequestBuilder {
	return b.Text(text)
}

// Model selects the synthesis model.
func (b *SpeechRequestBuilder) Model(model Model) *SpeechRequestBuilder {
	b.request.Model = model
	return b
}

// Voice selects the voice.
func (b *SpeechRequestBuilder) Voice(voice Voice) *SpeechRequestBuilder {
	b.request.Voice = voice
	return b
}

// VoiceSettings replaces the voice settings wholesale. Individual knobs set
// earlier through Stability and friends are discarded.
func (b *SpeechRequestBuilder) VoiceSettings(settings VoiceSettings) *SpeechRequestBuilder {
	b.request.VoiceSettings = &settings
	return b
}

func (b *SpeechRequestBuilder) settings() *VoiceSettings {
	if b.request.VoiceSettings == nil {
		b.request.VoiceSettings = &VoiceSettings{}
	}

	return b.request.VoiceSettings
}

// Stability sets the stability knob on the voice settings.
func (b *SpeechRequestBuilder) Stability(value float64) *SpeechRequestBuilder {
	b.settings().Stability = lo.ToPtr(value)
	return b
}

// SimilarityBoost sets the similarity boost knob on the voice settings.
func (b *SpeechRequestBuilder) SimilarityBoost(value float64) *SpeechRequestBuilder {
	b.settings().SimilarityBoost = lo.ToPtr(value)
	return b
}

// Style sets the style exaggeration knob on the voice settings.
func (b *SpeechRequestBuilder) Style(value float64) *SpeechRequestBuilder {
	b.settings().Style = lo.ToPtr(value)
	return b
}

// UseSpeakerBoost toggles speaker boost on the voice settings.
func (b *SpeechRequestBuilder) UseSpeakerBoost(enabled bool) *SpeechRequestBuilder {
	b.settings().UseSpeakerBoost = lo.ToPtr(enabled)
	return b
}

// OutputFormat selects the audio output format.
func (b *SpeechRequestBuilder) OutputFormat(format AudioFormat) *SpeechRequestBuilder {
	b.request.OutputFormat = format
	return b
}

// ResponseFormat is an alias for OutputFormat.
func (b *SpeechRequestBuilder) ResponseFormat(format AudioFormat) *SpeechRequestBuilder {
	return b.OutputFormat(format)
}

// LanguageCode sets an ISO 639-1 language hint.
func (b *SpeechRequestBuilder) LanguageCode(code string) *SpeechRequestBuilder {
	b.request.LanguageCode = lo.ToPtr(code)
	return b
}

// Seed requests deterministic sampling. Best effort on the server side.
func (b *SpeechRequestBuilder) Seed(seed int64) *SpeechRequestBuilder {
	b.request.Seed = lo.ToPtr(seed)
	return b
}

// PreviousText supplies the text that came before this utterance, used to
// keep prosody continuous across stitched requests.
func (b *SpeechRequestBuilder) PreviousText(text string) *SpeechRequestBuilder {
	b.request.PreviousText = lo.ToPtr(text)
	return b
}

// NextText supplies the text that comes after this utterance.
func (b *SpeechRequestBuilder) NextText(text string) *SpeechRequestBuilder {
	b.request.NextText = lo.ToPtr(text)
	return b
}

// PreviousRequestIDs lists earlier requests this utterance continues from.
func (b *SpeechRequestBuilder) PreviousRequestIDs(ids ...string) *SpeechRequestBuilder {
	b.request.PreviousRequestIDs = ids
	return b
}

// NextRequestIDs lists later requests this utterance leads into.
func (b *SpeechRequestBuilder) NextRequestIDs(ids ...string) *SpeechRequestBuilder {
	b.request.NextRequestIDs = ids
	return b
}

// ApplyTextNormalization controls server-side text normalization.
func (b *SpeechRequestBuilder) ApplyTextNormalization(mode TextNormalization) *SpeechRequestBuilder {
	b.request.ApplyTextNormalization = lo.ToPtr(mode)
	return b
}

// ApplyLanguageTextNormalization toggles language-aware text normalization.
func (b *SpeechRequestBuilder) ApplyLanguageTextNormalization(enabled bool) *SpeechRequestBuilder {
	b.request.ApplyLanguageTextNormalization = lo.ToPtr(enabled)
	return b
}

// ExtraBody merges additional fields into the JSON body after every typed
// field is serialized; colliding keys are overridden.
func (b *SpeechRequestBuilder) ExtraBody(extra map[string]any) *SpeechRequestBuilder {
	b.request.ExtraBody = extra
	return b
}

// Build returns the accumulated request without dispatching it.
func (b *SpeechRequestBuilder) Build() SpeechRequest {
	return b.request
}

// Execute validates the accumulated request and dispatches it.
func (b *SpeechRequestBuilder) Execute(ctx context.Context) (*SpeechResponse, error) {
	return b.client.DoSpeech(ctx, b.request)
}
