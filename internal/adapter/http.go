// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
	"github.com/MKhiriev/invoice-entry/internal/utils"
	"github.com/MKhiriev/invoice-entry/models"
)

const extractPath = "/api/extract"

type httpExtractor struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPExtractor constructs an HTTP/REST implementation of
// [ExtractionProvider]. The document is sent as the multipart field "file" to
// POST {ExtractionURL}/api/extract and the JSON response is decoded as a
// [models.ExtractionPayload].
//
// Returns an error if adapterCfg.ExtractionURL cannot be parsed as a URL.
func NewHTTPExtractor(adapterCfg config.Adapter, log *logger.Logger) (ExtractionProvider, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ExtractionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid extraction url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpExtractor{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpExtractor) Extract(ctx context.Context, file models.PdfFile) (models.ExtractionPayload, error) {
	log := logger.FromContextOr(ctx, h.logger)

	contentType := file.ContentType
	if contentType == "" {
		contentType = models.PDFContentType
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetMultipartField("file", file.Name, contentType, bytes.NewReader(file.Content)).
		Post(extractPath)
	if err != nil {
		log.Err(err).Str("func", "*httpExtractor.Extract").Str("file", file.Name).Msg("extraction request failed")
		return models.ExtractionPayload{}, fmt.Errorf("%w: extraction request: %w", ErrExtractionFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpExtractor.Extract").Int("status", resp.StatusCode()).Msg("extraction service returned an error")
		return models.ExtractionPayload{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	var payload models.ExtractionPayload
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).Str("func", "*httpExtractor.Extract").Msg("error decoding extraction response")
		return models.ExtractionPayload{}, fmt.Errorf("%w: decode extraction response: %w", ErrExtractionFailed, err)
	}

	return payload, nil
}
