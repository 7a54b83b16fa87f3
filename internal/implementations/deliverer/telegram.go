package deliverer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"medreminder/internal/core/domain/notification"
	"net/http"
	"net/url"
	"time"
)

type telegramMessage struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Telegram sends fired reminders to a single chat through the Bot API.
type Telegram struct {
	httpClient http.Client
	baseURL    url.URL
	token      string
	chatID     int64
}

func NewTelegram(baseURL url.URL, token string, chatID int64, timeout time.Duration) *Telegram {
	return &Telegram{
		baseURL:    baseURL,
		token:      token,
		chatID:     chatID,
		httpClient: http.Client{Timeout: timeout},
	}
}

func (t *Telegram) Deliver(ctx context.Context, n notification.Notification) error {
	url := t.baseURL.JoinPath(fmt.Sprintf("bot%s", t.token), "sendMessage")
	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	err := encoder.Encode(telegramMessage{ChatID: t.chatID, Text: fmt.Sprintf("%s\n%s", n.Title, n.Body)})
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), &body)
	if err != nil {
		return err
	}
	request.Header.Add("content-type", "application/json")
	resp, err := t.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("got unsuccessful response from Telegram: %s", string(body))
	}
	return nil
}
