package app

import (
	"context"
	"net/http"

	"github.com/tacogips/skadd/internal/catalog"
	"github.com/tacogips/skadd/internal/config"
	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/project"
)

// ResolveCatalog fetches both version catalogs using the tool
// configuration. It never fails; fallbacks are reported in the result.
// A nil client gets one bounded by cfg.Catalog.Timeout.
func ResolveCatalog(ctx context.Context, cfg *config.Config, client *http.Client) catalog.Catalog {
	debug.DebugSection("[app] Resolve catalog")

	opts := catalog.Options{
		HTTPClient:         client,
		Timeout:            cfg.Catalog.Timeout,
		IncludePrereleases: cfg.Catalog.IncludePrereleases,
		Token:              cfg.Catalog.GitHubToken,
	}
	return catalog.ResolveAll(ctx,
		catalog.NewPaperSource(cfg.Catalog.MinecraftURL, opts),
		catalog.NewSkriptSource(cfg.Catalog.SkriptURL, opts),
	)
}

// Versions returns the version lists a record may reference.
func Versions(cat catalog.Catalog) project.Versions {
	return project.Versions{
		Minecraft: cat.Minecraft.Versions,
		Skript:    cat.Skript.Versions,
	}
}
