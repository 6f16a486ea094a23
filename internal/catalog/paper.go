package catalog

import (
	"context"
	"encoding/json"
	"slices"
)

// PaperSource loads Minecraft versions from the PaperMC project API.
type PaperSource struct {
	// URL is the project endpoint, e.g. https://api.papermc.io/v2/projects/paper.
	URL string

	opts Options
}

// NewPaperSource creates a Minecraft version source.
func NewPaperSource(url string, opts Options) *PaperSource {
	if url == "" {
		url = DefaultMinecraftURL
	}
	return &PaperSource{URL: url, opts: opts}
}

// Name returns the source name.
func (s *PaperSource) Name() string {
	return "minecraft"
}

// Fallback returns the built-in Minecraft versions.
func (s *PaperSource) Fallback() []string {
	return MinecraftFallback()
}

type paperProject struct {
	Versions []string `json:"versions"`
}

// Fetch loads the versions. Paper lists them oldest first; the result is
// newest first.
func (s *PaperSource) Fetch(ctx context.Context) ([]string, error) {
	body, err := getBody(ctx, s.opts.client(), s.Name(), s.URL, map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return nil, err
	}

	if err := checkShape(paperSchema, body); err != nil {
		return nil, newFetchError(FetchParseFailed, s.Name(), s.URL, "unexpected response shape", err)
	}

	var project paperProject
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, newFetchError(FetchParseFailed, s.Name(), s.URL, "failed to decode response", err)
	}

	versions := slices.Clone(project.Versions)
	slices.Reverse(versions)
	versions = normalize(versions, s.opts.IncludePrereleases)
	if len(versions) == 0 {
		return nil, newFetchError(FetchEmpty, s.Name(), s.URL, "no versions listed", nil)
	}
	return versions, nil
}
