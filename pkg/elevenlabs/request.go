package elevenlabs

import (
	"encoding/json"
	"math"

	"voxway.dev/pkg/utils"
)

// MaxInputLength is the longest input text the API accepts, in characters.
const MaxInputLength = 5000

const maxSeed int64 = math.MaxUint32

// SpeechRequest carries everything needed for one text-to-speech call.
// Zero values for Model, Voice and OutputFormat mean the client defaults
// apply at dispatch time; nil optional fields are omitted from the body.
type SpeechRequest struct {
	Text         string
	Model        Model
	Voice        Voice
	OutputFormat AudioFormat

	VoiceSettings                  *VoiceSettings
	LanguageCode                   *string
	Seed                           *int64
	PreviousText                   *string
	NextText                       *string
	PreviousRequestIDs             []string
	NextRequestIDs                 []string
	ApplyTextNormalization         *TextNormalization
	ApplyLanguageTextNormalization *bool

	// ExtraBody entries are merged into the JSON body last and override
	// any field with the same key.
	ExtraBody map[string]any
}

// speechRequestBody is the JSON shape posted to the API. Voice and output
// format travel on the URL path and query string instead, so the struct
// mirrors the documented body fields only.
type speechRequestBody struct {
	Text                           string             `json:"text"`
	ModelID                        string             `json:"model_id"`
	LanguageCode                   *string            `json:"language_code,omitempty"`
	VoiceSettings                  *VoiceSettings     `json:"voice_settings,omitempty"`
	Seed                           *int64             `json:"seed,omitempty"`
	PreviousText                   *string            `json:"previous_text,omitempty"`
	NextText                       *string            `json:"next_text,omitempty"`
	PreviousRequestIDs             []string           `json:"previous_request_ids,omitempty"`
	NextRequestIDs                 []string           `json:"next_request_ids,omitempty"`
	ApplyTextNormalization         *TextNormalization `json:"apply_text_normalization,omitempty"`
	ApplyLanguageTextNormalization *bool              `json:"apply_language_text_normalization,omitempty"`
}

// marshalBody serializes the request, fills client-level default params for
// keys the request left absent, then lets ExtraBody override the result.
func (r SpeechRequest) marshalBody(defaults map[string]any) ([]byte, error) {
	body := speechRequestBody{
		Text:                           r.Text,
		ModelID:                        r.Model.String(),
		LanguageCode:                   r.LanguageCode,
		VoiceSettings:                  r.VoiceSettings,
		Seed:                           r.Seed,
		PreviousText:                   r.PreviousText,
		NextText:                       r.NextText,
		PreviousRequestIDs:             r.PreviousRequestIDs,
		NextRequestIDs:                 r.NextRequestIDs,
		ApplyTextNormalization:         r.ApplyTextNormalization,
		ApplyLanguageTextNormalization: r.ApplyLanguageTextNormalization,
	}

	bs, err := json.Marshal(body)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	if len(defaults) > 0 {
		bs, err = utils.FillAbsentBodyParams(bs, defaults)
		if err != nil {
			return nil, &EncodeError{Err: err}
		}
	}

	if len(r.ExtraBody) > 0 {
		bs, err = utils.OverrideBodyParams(bs, r.ExtraBody)
		if err != nil {
			return nil, &EncodeError{Err: err}
		}
	}

	return bs, nil
}
