package bootstrap

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"

	"github.com/learnhub/admin-console/config"
)

// NewHTTPClient builds the transport shared by every backend call.
func NewHTTPClient(cfg config.APIConfig) (*http.Client, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	if !cfg.CookieJar {
		return client, nil
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	client.Jar = jar
	return client, nil
}
