package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-sessions-dir badger session directory
//	-sessions-in-memory run the session store in memory
//	-c/-config json file path with configs
//	-token-hash-key remember and reset token hash key
//	-log-level zerolog level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-trust-proxy honor X-Forwarded-* headers
//	-mail-relay mail relay URL
//	-base-url public base URL for links in mails
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var sessionsDir string
	var sessionsInMemory bool
	var jsonConfigPath string
	var tokenHashKey string
	var logLevel string
	var requestTimeout time.Duration
	var trustProxy bool
	var mailRelayURL string
	var baseURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&sessionsDir, "sessions-dir", "", "Session store directory")
	fs.BoolVar(&sessionsInMemory, "sessions-in-memory", false, "Keep sessions in memory only")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenHashKey, "token-hash-key", "", "Remember and reset token hash key")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Honor X-Forwarded-* headers")
	fs.StringVar(&mailRelayURL, "mail-relay", "", "Mail relay URL")
	fs.StringVar(&baseURL, "base-url", "", "Public base URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:     logLevel,
			TokenHashKey: tokenHashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Sessions: Sessions{
				Dir:      sessionsDir,
				InMemory: sessionsInMemory,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			TrustProxy:     trustProxy,
		},
		Adapter: Adapter{
			MailRelayURL: mailRelayURL,
			BaseURL:      baseURL,
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
// An empty host listens on all interfaces. Any other host must be
// "localhost" or an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
