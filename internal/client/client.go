// Package client talks to a digit matrix from the tracker side.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	base *url.URL
	http *http.Client
}

// New accepts "host", "host:port" or a full http:// URL.
func New(addr string, timeout time.Duration) (*Client, error) {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("parse device address: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("device address %q has no host", addr)
	}
	u.Path = "/"
	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// URL is the request Show would send.
func (c *Client) URL(digit int, color string) string {
	q := "num=" + strconv.Itoa(digit)
	if color != "" {
		q += "&color=" + url.QueryEscape(color)
	}
	u := *c.base
	u.RawQuery = q
	return u.String()
}

// Show asks the device to display digit. Anything but 200 is an error.
func (c *Client) Show(ctx context.Context, digit int, color string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(digit, color), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to device: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return fmt.Errorf("read device reply: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("device returned status: %s", resp.Status)
	}
	// out-of-range digits come back as the HTML page, still with 200
	if strings.TrimSpace(string(body)) != "OK" {
		return fmt.Errorf("device rejected digit %d", digit)
	}
	return nil
}

// ColorForSide maps a tracker side to the color shown for it.
func ColorForSide(side int) string {
	switch side {
	case 1, 2, 3:
		return "green"
	case 4, 5, 6:
		return "red"
	default:
		return "white"
	}
}
