// AngelaMos | 2026
// service.go

// Package diagnosis covers the AI-facing user features: the agriculture
// chatbot and plant disease detection from images or descriptions.
package diagnosis

import (
	"context"
	"fmt"
	"strings"

	"github.com/RajathRavikumar/SmartAgri/internal/advisor"
)

// Generator is the subset of the Gemini client the diagnosis flows use.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateFromImage(
		ctx context.Context,
		imageData []byte,
		mimeType, prompt string,
	) (string, error)
}

// VideoFinder resolves a search query to a watch URL or a user-facing
// fallback string.
type VideoFinder interface {
	FirstVideoURL(ctx context.Context, query string) string
}

type Service struct {
	ai     Generator
	videos VideoFinder
}

func NewService(ai Generator, videos VideoFinder) *Service {
	return &Service{ai: ai, videos: videos}
}

// DetectLanguage classifies the language of a text, falling back to
// English when the model fails or answers nothing.
func (s *Service) DetectLanguage(ctx context.Context, text string) string {
	raw, err := s.ai.GenerateText(ctx, advisor.DetectLanguagePrompt(text))
	if err != nil {
		return "en"
	}

	detected := strings.TrimSpace(raw)
	if detected == "" {
		return "en"
	}
	return detected
}

// ChatResult carries the chatbot answer plus the language bookkeeping
// the frontend uses to reset its selector.
type ChatResult struct {
	Response         string `json:"response"`
	DetectedLanguage string `json:"detected_language"`
	ResponseLanguage string `json:"response_language"`
	ResetLanguageTo  string `json:"reset_language_to"`
}

// Chat answers a farming question in the resolved language.
func (s *Service) Chat(
	ctx context.Context,
	query, selectedLang string,
) (*ChatResult, error) {
	detected := s.DetectLanguage(ctx, query)
	responseLang := advisor.ResolveLanguage(selectedLang, detected)

	raw, err := s.ai.GenerateText(ctx, advisor.ChatPrompt(query, responseLang))
	if err != nil {
		return nil, fmt.Errorf("chat generation: %w", err)
	}
	if raw == "" {
		raw = "No response from AI in " + advisor.LanguageName(responseLang) + "."
	}

	return &ChatResult{
		Response:         advisor.CleanText(raw),
		DetectedLanguage: detected,
		ResponseLanguage: responseLang,
		ResetLanguageTo:  "none",
	}, nil
}

// withVideo appends a treatment video link derived from the first line
// of the cleaned diagnosis.
func (s *Service) withVideo(ctx context.Context, cleaned string) string {
	query := advisor.FirstLine(cleaned) + " disease treatment"
	videoURL := s.videos.FirstVideoURL(ctx, query)
	return cleaned + fmt.Sprintf(
		"<br><br>📺 Watch this video: <a href='%s' target='_blank'>%s</a>",
		videoURL, videoURL,
	)
}

// DiagnoseImage identifies a plant disease from an uploaded photo. AI
// failures come back as a user-facing string rather than an error so the
// upload flow always answers.
func (s *Service) DiagnoseImage(
	ctx context.Context,
	imageData []byte,
	mimeType, selectedLang string,
) string {
	prompt := advisor.DiseaseImagePrompt(selectedLang)

	raw, err := s.ai.GenerateFromImage(ctx, imageData, mimeType, prompt)
	if err != nil {
		return fmt.Sprintf("Error processing image: %v", err)
	}
	if raw == "" {
		raw = "No response from AI."
	}

	return s.withVideo(ctx, advisor.CleanText(raw))
}

// DiagnoseDescription identifies a plant disease from a written symptom
// description, detecting its language first so Auto mode can answer in
// kind.
func (s *Service) DiagnoseDescription(
	ctx context.Context,
	description, selectedLang string,
) string {
	detected := s.DetectLanguage(ctx, description)
	responseLang := advisor.ResolveLanguage(selectedLang, detected)

	prompt := advisor.DiseaseDescriptionPrompt(description, responseLang)
	raw, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error processing description: %v", err)
	}
	if raw == "" {
		raw = "No response from AI in " +
			advisor.LanguageName(responseLang) + "."
	}

	return s.withVideo(ctx, advisor.CleanText(raw))
}
