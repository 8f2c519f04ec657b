package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Dharshan0025/neural-resq/internal/config"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

// HTTPDetector - клиент внешнего классификатора аудио. Для ядра это
// непрозрачный скорер: на вход байты записи, на выход метки с уверенностью.
type HTTPDetector struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewHTTPDetector создает клиент классификатора
func NewHTTPDetector(cfg *config.Config) *HTTPDetector {
	return &HTTPDetector{
		url:   cfg.DetectorURL,
		token: cfg.DetectorToken,
		httpClient: &http.Client{
			Timeout: cfg.NotifyTimeout,
		},
	}
}

// Classify отправляет аудио классификатору и возвращает предсказания
func (d *HTTPDetector) Classify(ctx context.Context, audio []byte) ([]models.Prediction, error) {
	if d.url == "" {
		return nil, fmt.Errorf("detector URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", d.url, bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("failed to create detector request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call detector: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("detector returned status %d: %s", resp.StatusCode, body)
	}

	var predictions []models.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&predictions); err != nil {
		return nil, fmt.Errorf("failed to decode detector response: %w", err)
	}
	return predictions, nil
}
