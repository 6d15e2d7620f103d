package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего Identity & Directory сервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Identity-сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Reauthenticate подтверждает текущий пароль пользователя
func (c *Client) Reauthenticate(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/v1/sessions:reauthenticate", "",
		reauthenticateRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	if session.SessionToken == "" {
		return nil, fmt.Errorf("%w: empty session token", ErrInvalidResponse)
	}
	return &session, nil
}

// UpdatePassword меняет пароль; sessionToken получен из Reauthenticate
func (c *Client) UpdatePassword(ctx context.Context, userID, sessionToken, newPassword string) error {
	path := fmt.Sprintf("/v1/users/%s/password", url.PathEscape(userID))
	return c.do(ctx, http.MethodPost, path, sessionToken, updatePasswordRequest{NewPassword: newPassword}, nil)
}

// SendEmailVerification отправляет письмо со ссылкой подтверждения
func (c *Client) SendEmailVerification(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/v1/users/%s/verification-email", url.PathEscape(userID))
	return c.do(ctx, http.MethodPost, path, "", nil, nil)
}

// ConfirmEmailVerification применяет код из письма и возвращает ID пользователя
func (c *Client) ConfirmEmailVerification(ctx context.Context, code string) (string, error) {
	var resp confirmVerificationResponse
	if err := c.do(ctx, http.MethodPost, "/v1/verification:confirm", "", confirmVerificationRequest{Code: code}, &resp); err != nil {
		return "", err
	}
	if resp.UserID == "" {
		return "", fmt.Errorf("%w: empty user id", ErrInvalidResponse)
	}
	return resp.UserID, nil
}

// GetVerificationState возвращает профиль и флаг подтверждения email
func (c *Client) GetVerificationState(ctx context.Context, userID string) (*VerificationState, error) {
	path := fmt.Sprintf("/v1/users/%s/verification", url.PathEscape(userID))

	var state VerificationState
	if err := c.do(ctx, http.MethodGet, path, "", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Identity request %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp, bearer != "")
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// decodeError переводит ответ с ошибкой в sentinel-ошибку клиента.
// 401 без кода на запросе с сессией означает, что сессия устарела.
func (c *Client) decodeError(resp *http.Response, withSession bool) error {
	raw, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	_ = json.Unmarshal(raw, &errResp)

	switch errResp.Code {
	case codeInvalidPassword:
		return ErrInvalidCredentials
	case codeRequiresRecentLogin:
		return ErrRequiresRecentLogin
	case codeInvalidCode:
		return ErrInvalidCode
	case codeWeakPassword:
		return fmt.Errorf("%w: %s", ErrWeakPassword, errResp.Message)
	case codeUserNotFound:
		return ErrUserNotFound
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrUserNotFound
	case http.StatusUnauthorized:
		if withSession {
			return ErrRequiresRecentLogin
		}
		return ErrInvalidCredentials
	default:
		c.log.Warn("Identity unexpected status %d: %s", resp.StatusCode, string(raw))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}
