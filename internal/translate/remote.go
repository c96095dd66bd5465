package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Remote translates free text through a LibreTranslate-compatible endpoint.
// It is strictly best-effort: any failure (no endpoint configured, transport
// error, bad status, malformed response) returns the input unchanged.
type Remote struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

// NewRemote creates a remote translator. An empty endpoint disables it.
func NewRemote(endpoint string, timeout time.Duration, log *zap.Logger) *Remote {
	return &Remote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Text translates Dutch text to English, returning the original text when
// translation is unavailable or fails.
func (r *Remote) Text(ctx context.Context, text string) string {
	if r.endpoint == "" || text == "" {
		return text
	}

	translated, err := r.request(ctx, text)
	if err != nil {
		r.log.Warn("translation failed, keeping original text", zap.Error(err))
		return text
	}
	return translated
}

func (r *Remote) request(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(translateRequest{Q: text, Source: "nl", Target: "en", Format: "text"})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling translation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var parsed translateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if parsed.TranslatedText == "" {
		return "", fmt.Errorf("empty translation in response")
	}
	return parsed.TranslatedText, nil
}
