// AngelaMos | 2026
// service_test.go

package diagnosis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator answers detection prompts with detectLang and every
// other prompt with reply (or err).
type stubGenerator struct {
	detectLang string
	reply      string
	err        error
	prompts    []string
}

func (g *stubGenerator) GenerateText(
	_ context.Context,
	prompt string,
) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if strings.HasPrefix(prompt, "Detect the language") {
		return g.detectLang, nil
	}
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func (g *stubGenerator) GenerateFromImage(
	_ context.Context,
	_ []byte,
	_, prompt string,
) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type stubVideos struct {
	url     string
	queries []string
}

func (v *stubVideos) FirstVideoURL(_ context.Context, query string) string {
	v.queries = append(v.queries, query)
	return v.url
}

func TestChatRespondsInDetectedLanguage(t *testing.T) {
	gen := &stubGenerator{detectLang: "kn", reply: "**ಉತ್ತರ**\nಎರಡನೇ ಸಾಲು"}
	svc := NewService(gen, &stubVideos{url: "unused"})

	result, err := svc.Chat(context.Background(), "ಬೆಳೆ ಪ್ರಶ್ನೆ", "none")
	require.NoError(t, err)

	assert.Equal(t, "kn", result.DetectedLanguage)
	assert.Equal(t, "kn", result.ResponseLanguage)
	assert.Equal(t, "none", result.ResetLanguageTo)
	assert.Equal(t, "ಉತ್ತರ<br>ಎರಡನೇ ಸಾಲು", result.Response)

	require.Len(t, gen.prompts, 2)
	assert.Contains(t, gen.prompts[1], "Respond only in Kannada")
}

func TestChatExplicitLanguageOverridesDetection(t *testing.T) {
	gen := &stubGenerator{detectLang: "kn", reply: "Answer"}
	svc := NewService(gen, &stubVideos{url: "unused"})

	result, err := svc.Chat(context.Background(), "crop question", "hi")
	require.NoError(t, err)

	assert.Equal(t, "kn", result.DetectedLanguage)
	assert.Equal(t, "hi", result.ResponseLanguage)
	assert.Contains(t, gen.prompts[1], "Respond only in Hindi")
}

func TestChatGenerationFailure(t *testing.T) {
	gen := &stubGenerator{detectLang: "en", err: errors.New("quota exceeded")}
	svc := NewService(gen, &stubVideos{url: "unused"})

	_, err := svc.Chat(context.Background(), "crop question", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDiagnoseImageAppendsVideoLink(t *testing.T) {
	gen := &stubGenerator{reply: "Leaf Rust\nCaused by fungus.\nApply fungicide."}
	videos := &stubVideos{url: "https://www.youtube.com/watch?v=abc123"}
	svc := NewService(gen, videos)

	result := svc.DiagnoseImage(
		context.Background(), []byte{0xFF, 0xD8}, "image/jpeg", "en")

	assert.True(t, strings.HasPrefix(result, "Leaf Rust<br>"))
	assert.Contains(t, result,
		"📺 Watch this video: "+
			"<a href='https://www.youtube.com/watch?v=abc123' target='_blank'>")

	require.Len(t, videos.queries, 1)
	assert.Equal(t, "Leaf Rust disease treatment", videos.queries[0])
}

func TestDiagnoseImageFailureBecomesUserFacingString(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	svc := NewService(gen, &stubVideos{url: "unused"})

	result := svc.DiagnoseImage(
		context.Background(), []byte{0x01}, "image/png", "en")

	assert.True(t, strings.HasPrefix(result, "Error processing image:"))
	assert.Contains(t, result, "model unavailable")
}

func TestDiagnoseDescriptionAutoLanguage(t *testing.T) {
	gen := &stubGenerator{detectLang: "te", reply: "diagnosis text"}
	videos := &stubVideos{url: "https://www.youtube.com/watch?v=xyz"}
	svc := NewService(gen, videos)

	result := svc.DiagnoseDescription(
		context.Background(), "leaves turning yellow", "au")

	assert.Contains(t, result, "diagnosis text")
	require.Len(t, gen.prompts, 2)
	assert.Contains(t, gen.prompts[1], "Respond only in Telugu")
}

func TestDiagnoseDescriptionFailureBecomesUserFacingString(t *testing.T) {
	gen := &stubGenerator{detectLang: "en"}
	svc := NewService(gen, &stubVideos{url: "unused"})
	gen.err = errors.New("timeout")

	result := svc.DiagnoseDescription(
		context.Background(), "wilting stems", "en")

	assert.True(t, strings.HasPrefix(result, "Error processing description:"))
}
