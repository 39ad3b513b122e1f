package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	DBUrl          string
	TokenSecret    string
	TokenTTL       time.Duration
	RefreshTTL     time.Duration
	GraphQLUrl     string
	GraphQLTimeout time.Duration
	DefaultLocale  string
	BootstrapUser  string
	Debug          bool
}

// LoadEnv reads .env files from the working directory, if present, into the
// process environment. Variables already set are overridden, so a local .env
// wins over the shell.
func LoadEnv() (loaded []string) {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			continue
		}
		loaded = append(loaded, file)
	}
	return
}

func ParseFlags() (cfg Config, err error) {
	LoadEnv()
	return Parse(flag.CommandLine, os.Args[1:])
}

// Parse registers the service flags on fs and parses args. Every flag takes
// its default from the matching SURVEY_EDITOR_* environment variable.
func Parse(fs *flag.FlagSet, args []string) (cfg Config, err error) {
	var host string
	fs.StringVar(&host, "host", getEnv("HOST", "0.0.0.0"), "listen host name")
	var port uint
	fs.UintVar(&port, "port", uint(getEnvInt("PORT", 80)), "listen port number")
	fs.StringVar(&cfg.DBUrl, "db-url", getEnv("DB_URL", "survey-editor.sqlite"), "path to SQLite3 DB file")
	fs.StringVar(&cfg.TokenSecret, "token-secret", getEnv("TOKEN_SECRET", ""), "secret key for signing session tokens")
	var ttl uint
	fs.UintVar(&ttl, "token-ttl", uint(getEnvInt("TOKEN_TTL", 3600)), "session token TTL in seconds")
	var refreshTTL uint
	fs.UintVar(&refreshTTL, "refresh-ttl", uint(getEnvInt("REFRESH_TTL", 30*24*3600)), "refresh token TTL in seconds")
	fs.StringVar(&cfg.GraphQLUrl, "graphql-url", getEnv("GRAPHQL_URL", "http://localhost:8000/graphql"), "URL of the GraphQL API")
	var timeout uint
	fs.UintVar(&timeout, "graphql-timeout", uint(getEnvInt("GRAPHQL_TIMEOUT", 10)), "GraphQL request timeout in seconds")
	fs.StringVar(&cfg.DefaultLocale, "default-locale", getEnv("DEFAULT_LOCALE", "en"), "UI locale used when none matches")
	fs.StringVar(&cfg.BootstrapUser, "bootstrap-user", getEnv("BOOTSTRAP_USER", ""), "create or update a user at startup (name:password)")
	fs.BoolVar(&cfg.Debug, "debug", getEnvBool("DEBUG", false), "log at DEBUG level")
	err = fs.Parse(args)
	if err != nil {
		return
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second
	cfg.RefreshTTL = time.Duration(refreshTTL) * time.Second
	cfg.GraphQLTimeout = time.Duration(timeout) * time.Second

	switch {
	case cfg.TokenSecret == "":
		err = errors.New("missing parameter -token-secret")
	case cfg.GraphQLUrl == "":
		err = errors.New("missing parameter -graphql-url")
	case cfg.BootstrapUser != "" && !strings.Contains(cfg.BootstrapUser, ":"):
		err = errors.New("parameter -bootstrap-user must be name:password")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

// BootstrapCredentials splits -bootstrap-user into its name and password.
func (cfg Config) BootstrapCredentials() (username, password string, ok bool) {
	username, password, ok = strings.Cut(cfg.BootstrapUser, ":")
	ok = ok && username != "" && password != ""
	return
}

const envPrefix = "SURVEY_EDITOR_"

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
