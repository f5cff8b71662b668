package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the Telegram Bot API over HTTPS.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(botToken string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: fmt.Sprintf("https://api.telegram.org/bot%s", botToken),
	}
}

// SetWebhook registers the webhook URL for receiving updates. The secret
// token, when set, is echoed back by Telegram in the
// X-Telegram-Bot-Api-Secret-Token header and verified by the webhook
// controller.
func (c *Client) SetWebhook(webhookURL, secret string) error {
	body := map[string]any{
		"url": webhookURL,
	}
	if secret != "" {
		body["secret_token"] = secret
	}
	return c.makeRequest(fmt.Sprintf("%s/setWebhook", c.baseURL), body)
}

// DeleteWebhook removes the webhook registration.
func (c *Client) DeleteWebhook() error {
	return c.makeRequest(fmt.Sprintf("%s/deleteWebhook", c.baseURL), nil)
}

// SendMessage sends a plain text message to a chat.
func (c *Client) SendMessage(chatID int64, text string) error {
	body := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	return c.makeRequest(fmt.Sprintf("%s/sendMessage", c.baseURL), body)
}

func (c *Client) makeRequest(url string, body map[string]any) error {
	var req *http.Request
	var err error

	if body != nil {
		jsonBody, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("failed to marshal request body: %w", merr)
		}
		req, err = http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequest(http.MethodPost, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}
	return nil
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}
