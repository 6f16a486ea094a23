// Package catalog resolves the Minecraft and Skript version lists offered by
// the wizard. Every list is fetched once, best-effort, and replaced by a
// fixed fallback when the fetch or the parse fails.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/tacogips/skadd/internal/debug"
)

// Source abstracts one upstream version list.
type Source interface {
	// Name returns the source name (e.g., "minecraft", "skript").
	Name() string

	// Fetch loads the version list, newest first.
	Fetch(ctx context.Context) ([]string, error)

	// Fallback returns the fixed list used when Fetch fails.
	Fallback() []string
}

// Default endpoints and fallbacks.
const (
	DefaultMinecraftURL = "https://api.papermc.io/v2/projects/paper"
	DefaultSkriptURL    = "https://api.github.com/repos/SkriptLang/Skript/releases"
	DefaultTimeout      = 10 * time.Second
)

// MinecraftFallback returns the built-in Minecraft version list.
func MinecraftFallback() []string {
	return []string{"1.20.4", "1.20.2", "1.19.4", "1.18.2"}
}

// SkriptFallback returns the built-in Skript version list.
func SkriptFallback() []string {
	return []string{"2.7.3", "2.7.2", "2.7.1"}
}

// Options configures the HTTP sources.
type Options struct {
	// HTTPClient is the client used for requests. A client with Timeout is
	// created when nil.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// IncludePrereleases keeps semver pre-release versions in the list.
	IncludePrereleases bool
	// Token is an optional GitHub token for the releases API.
	Token string
}

func (o Options) client() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getBody performs a GET request and returns the body of a 200 response.
func getBody(ctx context.Context, client *http.Client, source, url string, headers map[string]string) ([]byte, error) {
	debug.Debug("[catalog] GET %s (source: %s)", url, source)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newFetchError(FetchFailed, source, url, "failed to build request", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, newFetchError(FetchFailed, source, url, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newFetchError(FetchBadStatus, source, url,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newFetchError(FetchFailed, source, url, "failed to read response body", err)
	}
	debug.Debug("[catalog] %s answered %d bytes", source, len(body))
	return body, nil
}

// normalize trims entries, drops empty and duplicate ones and, unless
// prereleases are wanted, semver pre-release versions. Versions that are not
// semver are kept. Order is preserved.
func normalize(versions []string, includePrereleases bool) []string {
	seen := make(map[string]bool, len(versions))
	out := make([]string, 0, len(versions))
	for _, v := range versions {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		if !includePrereleases && isPrerelease(v) {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func isPrerelease(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() != ""
}
