package catalog

import (
	"context"
	"encoding/json"
	"strings"
)

// GitHubReleasesSource loads versions from the release list of a GitHub
// repository. Each release's tag_name, minus a leading "v", is one version.
type GitHubReleasesSource struct {
	// URL is the releases endpoint, e.g.
	// https://api.github.com/repos/SkriptLang/Skript/releases.
	URL string

	opts Options
}

// NewSkriptSource creates a Skript version source.
func NewSkriptSource(url string, opts Options) *GitHubReleasesSource {
	if url == "" {
		url = DefaultSkriptURL
	}
	return &GitHubReleasesSource{URL: url, opts: opts}
}

// Name returns the source name.
func (s *GitHubReleasesSource) Name() string {
	return "skript"
}

// Fallback returns the built-in Skript versions.
func (s *GitHubReleasesSource) Fallback() []string {
	return SkriptFallback()
}

type release struct {
	TagName string `json:"tag_name"`
}

// Fetch loads the release tags in publish order (newest first).
func (s *GitHubReleasesSource) Fetch(ctx context.Context) ([]string, error) {
	headers := map[string]string{
		"Accept": "application/vnd.github.v3+json",
	}
	if s.opts.Token != "" {
		headers["Authorization"] = "token " + s.opts.Token
	}

	body, err := getBody(ctx, s.opts.client(), s.Name(), s.URL, headers)
	if err != nil {
		return nil, err
	}

	if err := checkShape(releasesSchema, body); err != nil {
		return nil, newFetchError(FetchParseFailed, s.Name(), s.URL, "unexpected response shape", err)
	}

	var releases []release
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, newFetchError(FetchParseFailed, s.Name(), s.URL, "failed to decode response", err)
	}

	versions := make([]string, 0, len(releases))
	for _, r := range releases {
		versions = append(versions, strings.TrimPrefix(r.TagName, "v"))
	}
	versions = normalize(versions, s.opts.IncludePrereleases)
	if len(versions) == 0 {
		return nil, newFetchError(FetchEmpty, s.Name(), s.URL, "no releases listed", nil)
	}
	return versions, nil
}
