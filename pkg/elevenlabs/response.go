package elevenlabs

import (
	"io"
	"net/http"

	"github.com/samber/lo"
)

var _ io.WriterTo = (*SpeechResponse)(nil)

// SpeechResponse is the synthesized audio returned by a successful request.
type SpeechResponse struct {
	// Audio is the raw encoded audio body.
	Audio []byte
	// Format is the output format the audio was requested in.
	Format AudioFormat
	// RequestID is the provider-side request ID, when the response carried
	// one.
	RequestID string
	// ContentType is the Content-Type header of the response, falling back
	// to the MIME type of Format when the header was absent.
	ContentType string
}

func newSpeechResponseFromHTTP(resp *http.Response, format AudioFormat, body []byte) *SpeechResponse {
	return &SpeechResponse{
		Audio:  body,
		Format: format,
		RequestID: lo.CoalesceOrEmpty(
			resp.Header.Get("Request-Id"),
			resp.Header.Get("X-Request-Id"),
		),
		ContentType: lo.CoalesceOrEmpty(resp.Header.Get("Content-Type"), format.MIMEType()),
	}
}

// WriteTo copies the audio into w, implementing io.WriterTo.
func (r *SpeechResponse) WriteTo(w io.Writer) (int64, error) {
	if r == nil || len(r.Audio) == 0 {
		return 0, nil
	}

	n, err := w.Write(r.Audio)

	return int64(n), err
}
