package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Dharshan0025/neural-resq/internal/config"
)

// SMSClient отправляет SMS через внешний HTTP-шлюз. Каждый вызов ограничен
// таймаутом клиента: зависшая доставка одному контакту не задерживает
// остальных. Возврат false означает неподтвержденную доставку.
type SMSClient struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

// NewSMSClient создает клиент SMS-шлюза
func NewSMSClient(cfg *config.Config, logger *logrus.Logger) *SMSClient {
	return &SMSClient{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.NotifyTimeout,
		},
	}
}

type smsPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendSMS отправляет сообщение на номер. Best-effort: любая ошибка
// логируется и сворачивается в false, наружу не распространяется.
func (c *SMSClient) SendSMS(ctx context.Context, phone, message string) bool {
	log := c.logger.WithField("component", "sms").WithField("phone", phone)

	if c.cfg.SMSGatewayURL == "" {
		log.Warn("SMS gateway URL is not configured. Skipping SMS delivery.")
		return false
	}

	payload, err := json.Marshal(smsPayload{To: phone, Message: message})
	if err != nil {
		log.WithError(err).Error("Failed to marshal SMS payload")
		return false
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.SMSGatewayURL, bytes.NewBuffer(payload))
	if err != nil {
		log.WithError(err).Error("Failed to create SMS request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	if c.cfg.SMSGatewaySecret != "" {
		req.Header.Set("X-Notification-Signature", GenerateHMACSHA256(string(payload), c.cfg.SMSGatewaySecret))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Failed to send SMS")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnf("SMS delivery failed with status code %d", resp.StatusCode)
		return false
	}

	log.Info("SMS delivered successfully")
	return true
}
