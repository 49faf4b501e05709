// Package elevenlabs is a typed client for the ElevenLabs text-to-speech
// HTTP API.
//
// Requests are assembled through a fluent builder and dispatched with a
// context. The zero configuration talks to the production endpoint with the
// Rachel voice, the eleven_multilingual_v2 model and 128 kbps MP3 output:
//
//	client := elevenlabs.NewClient(os.Getenv("ELEVENLABS_API_KEY"))
//
//	resp, err := client.Synthesize().
//		Text("Never gonna give you up.").
//		Voice(elevenlabs.VoiceClyde).
//		OutputFormat(elevenlabs.FormatMP3_44100_192).
//		Stability(0.4).
//		Execute(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = os.WriteFile("out.mp3", resp.Audio, 0o644)
//
// Validation failures, transport failures and upstream API rejections are
// reported as distinct error types; see ErrMissingInput, TransportError and
// APIError.
package elevenlabs
