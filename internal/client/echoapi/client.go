// Package echoapi habla con el server HTTP de echo-journal.
package echoapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"echo-journal/internal/domain/events"
	"echo-journal/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client
}

func New(baseURL, token string, timeout time.Duration) (*Client, error) {
	c, err := httpclient.New(baseURL, timeout, httpclient.WithToken(token))
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

type createEventRequest struct {
	Text      string           `json:"text"`
	Type      events.EventType `json:"type,omitempty"`
	AudioURL  string           `json:"audioUrl,omitempty"`
	AudioText string           `json:"audioText,omitempty"`
}

type updateEventRequest struct {
	Text             *string               `json:"text,omitempty"`
	AudioURL         *string               `json:"audioUrl,omitempty"`
	AudioText        *string               `json:"audioText,omitempty"`
	InterviewHistory *[]events.InterviewQA `json:"interviewHistory,omitempty"`
}

func (c *Client) Events(ctx context.Context) ([]events.Event, error) {
	var out []events.Event
	err := c.http.DoJSON(ctx, http.MethodGet, "/events", nil, &out)
	return out, err
}

func (c *Client) TodayEvents(ctx context.Context) ([]events.Event, error) {
	var out []events.Event
	err := c.http.DoJSON(ctx, http.MethodGet, "/events/today", nil, &out)
	return out, err
}

func (c *Client) EventsByDate(ctx context.Context, date string) ([]events.Event, error) {
	var out []events.Event
	err := c.http.DoJSON(ctx, http.MethodGet, "/events?date="+url.QueryEscape(date), nil, &out)
	return out, err
}

func (c *Client) AddEvent(ctx context.Context, in events.CreateInput) (events.Event, error) {
	var out events.Event
	err := c.http.DoJSON(ctx, http.MethodPost, "/events", createEventRequest{
		Text:      in.Text,
		Type:      in.Type,
		AudioURL:  in.AudioURL,
		AudioText: in.AudioText,
	}, &out)
	return out, err
}

// UpdateEvent devuelve ok=false (sin error) si el server responde 404.
func (c *Client) UpdateEvent(ctx context.Context, id string, in events.UpdateInput) (events.Event, bool, error) {
	var out events.Event
	err := c.http.DoJSON(ctx, http.MethodPatch, "/events/"+url.PathEscape(id), updateEventRequest{
		Text:             in.Text,
		AudioURL:         in.AudioURL,
		AudioText:        in.AudioText,
		InterviewHistory: in.InterviewHistory,
	}, &out)
	return found(out, err)
}

func (c *Client) GetEvent(ctx context.Context, id string) (events.Event, bool, error) {
	var out events.Event
	err := c.http.DoJSON(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &out)
	return found(out, err)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) (bool, error) {
	err := c.http.DoJSON(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil)
	_, ok, err := found(struct{}{}, err)
	return ok, err
}

func (c *Client) ClearTodayEvents(ctx context.Context) error {
	return c.http.DoJSON(ctx, http.MethodDelete, "/events/today", nil, nil)
}

// Export baja un día ya serializado; date vacío = hoy.
func (c *Client) Export(ctx context.Context, date, format string) ([]byte, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if format != "" {
		q.Set("format", format)
	}
	path := "/export"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.http.Get(ctx, path)
}

func found[T any](v T, err error) (T, bool, error) {
	var zero T
	if err == nil {
		return v, true, nil
	}
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return zero, false, nil
	}
	return zero, false, err
}
