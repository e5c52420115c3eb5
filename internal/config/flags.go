// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-session-ttl session lifetime (e.g., "24h")
//	-hash-passwords store argon2id password hashes instead of plaintext
//	-request-timeout inbound request timeout (e.g., "30s")
//	-extraction-url base URL of a remote extraction service
//	-extraction-delay latency of the simulated extractor (e.g., "2s")
//	-extraction-timeout remote extraction request timeout
//	-autosave-interval draft autosave period (e.g., "5s")
//	-log-level zerolog level name
//	-log-file client log file path
//	-version application version
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("invoice-entry", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var sessionTTL time.Duration
	var hashPasswords bool
	var requestTimeout time.Duration
	var extractionURL string
	var extractionDelay time.Duration
	var extractionTimeout time.Duration
	var autosaveInterval time.Duration
	var logLevel string
	var logFile string
	var version string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.BoolVar(&hashPasswords, "hash-passwords", false, "Store argon2id password hashes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&extractionURL, "extraction-url", "", "Remote extraction service URL")
	fs.DurationVar(&extractionDelay, "extraction-delay", 0, "Simulated extraction delay (e.g., 2s)")
	fs.DurationVar(&extractionTimeout, "extraction-timeout", 0, "Remote extraction request timeout")
	fs.DurationVar(&autosaveInterval, "autosave-interval", 0, "Draft autosave interval (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionTTL:    sessionTTL,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			HashPasswords: hashPasswords,
			Version:       version,
			LogLevel:      logLevel,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ExtractionURL:   extractionURL,
			ExtractionDelay: extractionDelay,
			RequestTimeout:  extractionTimeout,
		},
		Workers: Workers{
			AutosaveInterval: autosaveInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
