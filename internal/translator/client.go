// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package translator fetches translations from the Google Translate mobile page.
// It builds the request, extracts the rendered result from the returned HTML,
// unescapes it and wraps it to the configured width.
package translator

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/pterm/pterm"
	"golang.org/x/net/html"

	"gtranslate/plugin/internal/config"
	perrors "gtranslate/plugin/internal/errors"
	"gtranslate/plugin/internal/logging"
)

// Client implements the reachability probe and the translation fetch over HTTP.
type Client struct {
	cfg       config.Config
	extractor Extractor
	client    *http.Client
	logger    *pterm.Logger
}

// New creates a Client using the extractor named in cfg and cfg's timeout.
func New(cfg config.Config, logger *pterm.Logger) *Client {
	return NewWithExtractor(cfg, NewExtractor(cfg.Extractor), logger)
}

// NewWithExtractor creates a Client with an explicit extractor.
func NewWithExtractor(cfg config.Config, x Extractor, logger *pterm.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		cfg:       cfg,
		extractor: x,
		client:    &http.Client{Timeout: time.Duration(cfg.Timeout)},
		logger:    logger,
	}
}

// Probe issues a GET against the check URL. Any transport failure or non-2xx
// status is reported as ConnectivityFailed.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.CheckURL, nil)
	if err != nil {
		return perrors.Wrap(perrors.ConnectivityFailed, "build probe request", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return perrors.Wrap(perrors.ConnectivityFailed, "reach "+c.cfg.CheckURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return perrors.New(perrors.ConnectivityFailed, fmt.Sprintf("%s returned status %d", c.cfg.CheckURL, resp.StatusCode))
	}
	return nil
}

// RequestURL builds the translation URL for text.
func (c *Client) RequestURL(text, to, from string) (string, error) {
	u, err := url.Parse(c.cfg.TranslateURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("tl", to)
	q.Set("sl", from)
	q.Set("q", text)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Translate fetches the translation of text. Empty to/from fall back to the
// configured defaults. The result is HTML-unescaped and wrapped to the
// configured width.
//
// A page without a result container yields "" unless StrictExtraction is set,
// in which case an ExtractionFailed error is returned.
func (c *Client) Translate(ctx context.Context, text, to, from string) (string, error) {
	if to == "" {
		to = c.cfg.DefaultTo
	}
	if from == "" {
		from = c.cfg.DefaultFrom
	}

	target, err := c.RequestURL(text, to, from)
	if err != nil {
		return "", perrors.Wrap(perrors.FetchFailed, "build request URL", err)
	}

	body, err := c.fetch(ctx, target)
	if err != nil {
		return "", err
	}

	raw, err := c.extractor.Extract(body)
	if err != nil {
		if !errors.Is(err, ErrNoMatch) || c.cfg.StrictExtraction {
			return "", perrors.Wrap(perrors.ExtractionFailed, "extract translation", err)
		}
		c.logger.Warn("no result container in response", c.logger.Args("url", logging.Mask(target), "bytes", len(body)))
		raw = ""
	}

	return Wrap(html.UnescapeString(raw), c.cfg.WrapLength), nil
}

func (c *Client) fetch(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", perrors.Wrap(perrors.FetchFailed, "create request", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept-Encoding", "gzip, br")

	c.logger.Debug("fetching translation", c.logger.Args("url", logging.Mask(target)))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", perrors.Wrap(perrors.FetchFailed, "request translation", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", perrors.New(perrors.FetchFailed, fmt.Sprintf("server returned status %d", resp.StatusCode))
	}

	r, err := decodeBody(resp)
	if err != nil {
		return "", perrors.Wrap(perrors.FetchFailed, "decode response", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", perrors.Wrap(perrors.FetchFailed, "read response", err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

// decodeBody unwraps the Content-Encoding we asked for. Setting Accept-Encoding
// by hand turns off the transport's transparent gzip handling.
func decodeBody(resp *http.Response) (io.Reader, error) {
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "gzip":
		return gzip.NewReader(resp.Body)
	default:
		return resp.Body, nil
	}
}
