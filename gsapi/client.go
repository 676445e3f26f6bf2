// Package gsapi is the client for the downstream completion service. The
// service receives a normalized conversation and returns a generated reply
// plus per-party note summaries; everything behind that boundary is opaque to
// this process.
package gsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GS-Software-Solutions/TeddyServer/siteinfo"
)

const defaultRequestTimeout = 60 * time.Second

type Client struct {
	APIURL           string
	APIKey           string
	ExtensionVersion string
	HTTP             *http.Client
}

type Config struct {
	APIURL           string
	APIKey           string
	ExtensionVersion string
	RequestTimeout   time.Duration
}

func New(cfg Config) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		APIURL:           strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/"),
		APIKey:           strings.TrimSpace(cfg.APIKey),
		ExtensionVersion: strings.TrimSpace(cfg.ExtensionVersion),
		HTTP:             &http.Client{Timeout: timeout},
	}
}

// Response is the completion service's answer: the generated reply text, a
// prompt classification tag, an optional alert, and updated note summaries
// for both parties.
type Response struct {
	ResText    string  `json:"resText"`
	PromptType string  `json:"promptType"`
	Alert      string  `json:"alert"`
	Summary    Summary `json:"summary"`
}

type Summary struct {
	User      siteinfo.UserNotes `json:"user"`
	Assistant siteinfo.UserNotes `json:"assistant"`
}

type chatCompletionRequest struct {
	SiteInfos sitePayload `json:"siteInfos"`
}

// sitePayload flattens the conversation model and rides the client-version
// tag along with it, matching the wire shape the service expects.
type sitePayload struct {
	*siteinfo.SiteInfos
	ExtensionVersion string `json:"extensionVersion"`
}

// ChatCompletion forwards one normalized conversation and decodes the
// structured response.
func (c *Client) ChatCompletion(ctx context.Context, infos *siteinfo.SiteInfos) (*Response, error) {
	if infos == nil {
		return nil, fmt.Errorf("gsapi: nil site infos")
	}

	body := chatCompletionRequest{
		SiteInfos: sitePayload{
			SiteInfos:        infos,
			ExtensionVersion: c.ExtensionVersion,
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL+"/chatcompletion", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gsapi http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("gsapi: decode response: %w", err)
	}
	return &out, nil
}
