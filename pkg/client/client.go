// Package client is a Go client for the event-booking API. It keeps a
// session alongside the HTTP client, attaches the bearer token to every
// request, and clears the session whenever the server answers 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eventbook/event-booking-api/pkg/session"
)

// ErrSessionExpired is returned when the stored token has lapsed or the
// server rejected it; the session has already been cleared and the
// caller should send the user back to login.
var ErrSessionExpired = errors.New("session expired")

// APIError carries a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
}

// New builds a client against baseURL. A nil session gets an in-memory
// one. CheckExpiry runs here so a stale stored token is cleared before
// the first protected call, mirroring the web client's startup check.
func New(baseURL string, sess *session.Session) *Client {
	if sess == nil {
		sess = session.New(nil)
	}
	sess.CheckExpiry()
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		session:    sess,
	}
}

func (c *Client) Session() *session.Session {
	return c.session
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, password, role, name string) error {
	body := map[string]string{
		"username": username,
		"password": password,
		"role":     role,
		"name":     name,
	}
	return c.do(ctx, http.MethodPost, "/register", body, nil, false)
}

// Login authenticates and stores the returned token and profile.
func (c *Client) Login(ctx context.Context, username, password string) (*session.Profile, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Token string          `json:"token"`
		User  session.Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out, false); err != nil {
		return nil, err
	}
	c.session.SetCredentials(out.Token, out.User)
	profile := out.User
	return &profile, nil
}

// Logout only clears local state; the token stays valid server-side
// until it expires.
func (c *Client) Logout() {
	c.session.Clear()
}

// ListEvents returns the public view when all is true, otherwise the
// caller's own events.
func (c *Client) ListEvents(ctx context.Context, all bool) ([]Event, error) {
	path := "/events"
	if all {
		path += "?all=true"
	}
	var events []Event
	if err := c.do(ctx, http.MethodGet, path, nil, &events, !all); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, draft EventDraft) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodPost, "/events", draft, &event, true); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id uint, patch EventPatch) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), patch, &event, true); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil, true)
}

// RegisterForEvent books tickets for an event. No login needed.
func (c *Client) RegisterForEvent(ctx context.Context, eventID uint, name, email string, tickets int) (*Registration, error) {
	body := map[string]any{
		"eventId": eventID,
		"name":    name,
		"email":   email,
	}
	if tickets > 0 {
		body["tickets"] = tickets
	}
	var registration Registration
	if err := c.do(ctx, http.MethodPost, "/registrations", body, &registration, false); err != nil {
		return nil, err
	}
	return &registration, nil
}

// MyEventRegistrations returns every registration across the caller's
// events, annotated with the parent event.
func (c *Client) MyEventRegistrations(ctx context.Context) ([]OwnerRegistration, error) {
	var registrations []OwnerRegistration
	if err := c.do(ctx, http.MethodGet, "/registrations/my-events", nil, &registrations, true); err != nil {
		return nil, err
	}
	return registrations, nil
}

func (c *Client) EventRegistrations(ctx context.Context, eventID uint) ([]Registration, error) {
	var registrations []Registration
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/registrations/event/%d", eventID), nil, &registrations, true); err != nil {
		return nil, err
	}
	return registrations, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	if authed && c.session.CheckExpiry() {
		return ErrSessionExpired
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && authed {
		// The server is the authority: whatever we thought locally,
		// this session is over.
		c.session.Clear()
		return ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// errorMessage pulls the human-readable detail out of an error body.
func errorMessage(body io.Reader) string {
	var payload struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Title
}
