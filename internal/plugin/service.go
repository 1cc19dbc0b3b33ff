// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package plugin implements the two launcher entry points, query and copy, on top
// of the parser, the translator and the clipboard. Service holds no state that
// changes between calls; each call is independent.
package plugin

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"gtranslate/plugin/internal/clipboard"
	"gtranslate/plugin/internal/config"
	perrors "gtranslate/plugin/internal/errors"
	"gtranslate/plugin/internal/httperrors"
	"gtranslate/plugin/internal/logging"
	"gtranslate/plugin/internal/notation"
	"gtranslate/plugin/internal/translator"
)

// Fixed result texts.
const (
	HintTitle     = "Text to translate"
	HintSubTitle  = "input only | from:to text | :to text"
	ErrorTitle    = "Invalid notation or no internet connection"
	ErrorSubTitle = "Please verify and try again"
	FailedTitle   = "Translation failed"
	CopiedTitle   = "Copied to clipboard"

	// ContextData is passed through the launcher untouched.
	ContextData = "ctxData"
	// CopyMethod is the action method invoked when a result is selected.
	CopyMethod = "copy"

	copiedPreviewLen = 80
)

// Prober checks that the translation site is reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

// Fetcher translates text from one language to another.
type Fetcher interface {
	Translate(ctx context.Context, text, to, from string) (string, error)
}

// Service answers launcher queries and copy actions.
type Service struct {
	cfg     config.Config
	prober  Prober
	fetcher Fetcher
	sink    clipboard.Sink
	logger  *pterm.Logger
}

// NewService wires a Service from its collaborators. A nil logger discards.
func NewService(cfg config.Config, prober Prober, fetcher Fetcher, sink clipboard.Sink, logger *pterm.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{cfg: cfg, prober: prober, fetcher: fetcher, sink: sink, logger: logger}
}

// New wires a Service against the real endpoint and the given clipboard.
func New(cfg config.Config, sink clipboard.Sink, logger *pterm.Logger) *Service {
	c := translator.New(cfg, logger)
	return NewService(cfg, c, c, sink, logger)
}

// Query answers a launcher query with exactly one result item.
func (s *Service) Query(ctx context.Context, raw string) []Result {
	if err := s.prober.Probe(ctx); err != nil {
		s.logger.Warn("connectivity probe failed", s.logger.Args("error", logging.PresentError("probe", err)))
		return []Result{s.item(ErrorTitle, ErrorSubTitle, nil)}
	}

	if strings.TrimSpace(raw) == "" {
		return []Result{s.hint()}
	}

	req := notation.Parse(raw, notation.Defaults{From: s.cfg.DefaultFrom, To: s.cfg.DefaultTo})
	if req.Empty() {
		return []Result{s.hint()}
	}

	translation, err := s.fetcher.Translate(ctx, req.Text, req.To, req.From)
	if err != nil {
		s.logger.Error("translation failed", s.logger.Args(
			"kind", string(perrors.KindOf(err)),
			"from", req.From,
			"to", req.To,
			"error", logging.PresentError("translate", err),
		))
		return []Result{s.item(FailedTitle, httperrors.Describe(err, httperrors.ExtractHostFromURL(s.cfg.TranslateURL)), nil)}
	}

	s.logger.Debug("translated", s.logger.Args("from", req.From, "to", req.To, "chars", len(translation)))

	return []Result{s.item(
		fmt.Sprintf("%s: %s", req.To, translation),
		fmt.Sprintf("%s: %s", req.From, req.Text),
		&Action{Method: CopyMethod, Parameters: []any{translation}},
	)}
}

// Copy writes translation to the clipboard and returns the confirmation the
// launcher should display. Clipboard failures are returned unchanged.
func (s *Service) Copy(ctx context.Context, translation string) (*ShowMsg, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.sink.Copy(translation); err != nil {
		s.logger.Error("clipboard write failed", s.logger.Args("error", logging.PresentError("copy", err)))
		return nil, err
	}
	copied := strings.TrimSpace(translation)
	return NewShowMsg(CopiedTitle, logging.Truncate(copied, copiedPreviewLen), s.cfg.IconPath), nil
}

func (s *Service) hint() Result {
	return s.item(HintTitle, HintSubTitle, nil)
}

func (s *Service) item(title, subTitle string, action *Action) Result {
	return Result{
		Title:         title,
		SubTitle:      subTitle,
		IcoPath:       s.cfg.IconPath,
		ContextData:   ContextData,
		JsonRPCAction: action,
	}
}
