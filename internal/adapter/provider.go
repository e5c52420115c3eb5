// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/invoice-entry/internal/config"
	"github.com/MKhiriev/invoice-entry/internal/logger"
)

// NewExtractionProvider returns the HTTP provider when an extraction URL is
// configured and the simulated provider otherwise.
func NewExtractionProvider(adapterCfg config.Adapter, log *logger.Logger) (ExtractionProvider, error) {
	if adapterCfg.ExtractionURL == "" {
		log.Info().Dur("delay", adapterCfg.ExtractionDelay).Msg("using simulated extraction provider")
		return NewSimulatedExtractor(adapterCfg.ExtractionDelay, log), nil
	}

	log.Info().Str("url", adapterCfg.ExtractionURL).Msg("using remote extraction provider")
	return NewHTTPExtractor(adapterCfg, log)
}
