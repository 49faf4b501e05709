package elevenlabs

import (
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Model identifies a speech synthesis model.
type Model string

const (
	ModelElevenV3             Model = "eleven_v3"
	ModelElevenMultilingualV2 Model = "eleven_multilingual_v2"
	ModelElevenFlashV25       Model = "eleven_flash_v2_5"
	ModelElevenTurboV25       Model = "eleven_turbo_v2_5"
)

// DefaultModel is used when a request does not name a model.
const DefaultModel = ModelElevenMultilingualV2

var models = []Model{
	ModelElevenV3,
	ModelElevenMultilingualV2,
	ModelElevenFlashV25,
	ModelElevenTurboV25,
}

func (m Model) String() string {
	return string(m)
}

// ParseModel maps a model identifier string to a known Model.
func ParseModel(s string) mo.Option[Model] {
	if lo.Contains(models, Model(s)) {
		return mo.Some(Model(s))
	}

	return mo.None[Model]()
}

// Voice names a prebuilt voice.
type Voice string

const (
	VoiceRachel Voice = "Rachel"
	VoiceDrew   Voice = "Drew"
	VoiceClyde  Voice = "Clyde"
	VoicePaul   Voice = "Paul"
	VoiceAria   Voice = "Aria"
	VoiceDomi   Voice = "Domi"
	VoiceDave   Voice = "Dave"
	VoiceRoger  Voice = "Roger"
	VoiceFin    Voice = "Fin"
	VoiceSarah  Voice = "Sarah"
)

// DefaultVoice is used when a request does not name a voice.
const DefaultVoice = VoiceRachel

// Prebuilt voice IDs from the public voice catalog, current as of 2025-09.
var voiceIDs = map[Voice]string{
	VoiceRachel: "21m00Tcm4TlvDq8ikWAM",
	VoiceDrew:   "29vD33N1CtxCmqQRPOHJ",
	VoiceClyde:  "2EiwWnXFnvU5JabPnv8n",
	VoicePaul:   "5Q0t7uMcjvnagumLfvZi",
	VoiceAria:   "9BWtsMINqrJLrRacOk9x",
	VoiceDomi:   "AZnzlk1XvdvUeBnXmlld",
	VoiceDave:   "CYw3kZ02Hs0563khs1Fj",
	VoiceRoger:  "CwhRBWXzGAHq8TQ4Fs17",
	VoiceFin:    "D38z5RcWu1voky8WS1ja",
	VoiceSarah:  "EXAVITQu4vr4xnSDxMaL",
}

func (v Voice) String() string {
	return string(v)
}

// ID returns the voice ID sent on the request path, or an empty string for
// an unknown voice.
func (v Voice) ID() string {
	return voiceIDs[v]
}

// ParseVoice maps a voice name to a known Voice.
func ParseVoice(s string) mo.Option[Voice] {
	if _, ok := voiceIDs[Voice(s)]; ok {
		return mo.Some(Voice(s))
	}

	return mo.None[Voice]()
}

// VoiceByID maps a voice ID back to a known Voice.
func VoiceByID(id string) mo.Option[Voice] {
	for voice, voiceID := range voiceIDs {
		if voiceID == id {
			return mo.Some(voice)
		}
	}

	return mo.None[Voice]()
}

// Voices lists every known voice sorted by name.
func Voices() []Voice {
	voices := lo.Keys(voiceIDs)
	slices.Sort(voices)

	return voices
}

// AudioFormat selects the encoding, sample rate and bitrate of the
// synthesized audio.
type AudioFormat string

const (
	FormatMP3_22050_32  AudioFormat = "mp3_22050_32"
	FormatMP3_44100_32  AudioFormat = "mp3_44100_32"
	FormatMP3_44100_64  AudioFormat = "mp3_44100_64"
	FormatMP3_44100_96  AudioFormat = "mp3_44100_96"
	FormatMP3_44100_128 AudioFormat = "mp3_44100_128"
	FormatMP3_44100_192 AudioFormat = "mp3_44100_192"
	FormatPCM_16000     AudioFormat = "pcm_16000"
	FormatPCM_22050     AudioFormat = "pcm_22050"
	FormatPCM_24000     AudioFormat = "pcm_24000"
	FormatPCM_44100     AudioFormat = "pcm_44100"
	FormatULaw_8000     AudioFormat = "ulaw_8000"
)

// DefaultAudioFormat is used when a request does not name an output format.
const DefaultAudioFormat = FormatMP3_44100_128

var audioFormats = []AudioFormat{
	FormatMP3_22050_32,
	FormatMP3_44100_32,
	FormatMP3_44100_64,
	FormatMP3_44100_96,
	FormatMP3_44100_128,
	FormatMP3_44100_192,
	FormatPCM_16000,
	FormatPCM_22050,
	FormatPCM_24000,
	FormatPCM_44100,
	FormatULaw_8000,
}

func (f AudioFormat) String() string {
	return string(f)
}

// SampleRate returns the sample rate in Hz, or 0 for an unknown format.
func (f AudioFormat) SampleRate() int {
	switch f {
	case FormatULaw_8000:
		return 8000
	case FormatPCM_16000:
		return 16000
	case FormatMP3_22050_32, FormatPCM_22050:
		return 22050
	case FormatPCM_24000:
		return 24000
	case FormatMP3_44100_32, FormatMP3_44100_64, FormatMP3_44100_96,
		FormatMP3_44100_128, FormatMP3_44100_192, FormatPCM_44100:
		return 44100
	}

	return 0
}

// MIMEType returns the content type of audio in this format.
func (f AudioFormat) MIMEType() string {
	switch f {
	case FormatPCM_16000, FormatPCM_22050, FormatPCM_24000, FormatPCM_44100:
		return "audio/l16"
	case FormatULaw_8000:
		return "audio/basic"
	}

	return "audio/mpeg"
}

// ParseAudioFormat maps an output format string to a known AudioFormat.
func ParseAudioFormat(s string) mo.Option[AudioFormat] {
	if lo.Contains(audioFormats, AudioFormat(s)) {
		return mo.Some(AudioFormat(s))
	}

	return mo.None[AudioFormat]()
}

// TextNormalization controls whether the server normalizes the input text
// before synthesis.
type TextNormalization string

const (
	TextNormalizationAuto TextNormalization = "auto"
	TextNormalizationOn   TextNormalization = "on"
	TextNormalizationOff  TextNormalization = "off"
)

var textNormalizations = []TextNormalization{
	TextNormalizationAuto,
	TextNormalizationOn,
	TextNormalizationOff,
}

func (n TextNormalization) String() string {
	return string(n)
}

// ParseTextNormalization maps a normalization mode string to a known
// TextNormalization.
func ParseTextNormalization(s string) mo.Option[TextNormalization] {
	if lo.Contains(textNormalizations, TextNormalization(s)) {
		return mo.Some(TextNormalization(s))
	}

	return mo.None[TextNormalization]()
}

const (
	minVoiceSetting = 0.0
	maxVoiceSetting = 1.0
)

// VoiceSettings tunes voice delivery. Nil fields are omitted from the
// request body and the server applies its own defaults for them.
type VoiceSettings struct {
	Stability       *float64 `json:"stability,omitempty"`
	SimilarityBoost *float64 `json:"similarity_boost,omitempty"`
	Style           *float64 `json:"style,omitempty"`
	UseSpeakerBoost *bool    `json:"use_speaker_boost,omitempty"`
}

// DefaultVoiceSettings returns settings that work well for most prebuilt
// voices.
func DefaultVoiceSettings() VoiceSettings {
	return VoiceSettings{
		Stability:       lo.ToPtr(0.5),
		SimilarityBoost: lo.ToPtr(0.75),
		Style:           lo.ToPtr(0.0),
		UseSpeakerBoost: lo.ToPtr(true),
	}
}

// Validate checks every set numeric field against the [0.0, 1.0] range and
// reports all violations at once.
func (s *VoiceSettings) Validate() error {
	if s == nil {
		return nil
	}

	mulErrs := &multierror.Error{}

	for _, setting := range []struct {
		field string
		value *float64
	}{
		{field: "stability", value: s.Stability},
		{field: "similarity_boost", value: s.SimilarityBoost},
		{field: "style", value: s.Style},
	} {
		if setting.value == nil {
			continue
		}

		if *setting.value < minVoiceSetting || *setting.value > maxVoiceSetting {
			mulErrs = multierror.Append(mulErrs, &VoiceSettingError{
				Field: setting.field,
				Value: *setting.value,
			})
		}
	}

	return mulErrs.ErrorOrNil()
}
