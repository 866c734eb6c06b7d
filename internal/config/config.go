package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionSecretEnvKey = "SESSION_SECRET"
	sessionTTLEnvKey    = "SESSION_TTL_HOURS"
	uploadDirEnvKey     = "UPLOAD_DIR"
	smtpAddrEnvKey      = "SMTP_ADDR"
	smtpFromEnvKey      = "SMTP_FROM"
)

const defaultSessionTTL = 24 * time.Hour

type App struct {
	Port            string
	DBConnectionURL string
	SessionSecret   string
	SessionTTL      time.Duration
	UploadDir       string
	SMTPAddr        string
	SMTPFrom        string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	sessionTTL := defaultSessionTTL
	if ttlStr, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		hours, err := strconv.Atoi(ttlStr)
		if err != nil || hours <= 0 {
			return App{}, fmt.Errorf("invalid %s value: %q", sessionTTLEnvKey, ttlStr)
		}
		sessionTTL = time.Duration(hours) * time.Hour
	}

	uploadDir, ok := os.LookupEnv(uploadDirEnvKey)
	if !ok {
		uploadDir = "uploads"
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		SessionSecret:   sessionSecret,
		SessionTTL:      sessionTTL,
		UploadDir:       uploadDir,
		SMTPAddr:        os.Getenv(smtpAddrEnvKey),
		SMTPFrom:        os.Getenv(smtpFromEnvKey),
	}, nil
}
