package catalog

import (
	"context"
	"slices"

	"github.com/tacogips/skadd/internal/debug"
	"golang.org/x/sync/errgroup"
)

// Resolution is the outcome of resolving one source: either the live list
// or the source's fallback, never empty.
type Resolution struct {
	// Source is the source name.
	Source string
	// Versions is the ordered list offered to the operator, newest first.
	Versions []string
	// Fallback is true when Versions is the built-in list.
	Fallback bool
	// Err is the fetch error that triggered the fallback, if any.
	Err error
}

// Catalog holds both resolved version lists. It is read-only once built.
type Catalog struct {
	Minecraft Resolution
	Skript    Resolution
}

// Resolve fetches the versions of src, substituting its fallback on any
// error. It never fails.
func Resolve(ctx context.Context, src Source) Resolution {
	versions, err := src.Fetch(ctx)
	if err == nil && len(versions) == 0 {
		err = newFetchError(FetchEmpty, src.Name(), "", "no versions returned", nil)
	}
	if err != nil {
		debug.Debug("[catalog] %s: using fallback: %v", src.Name(), err)
		return Resolution{
			Source:   src.Name(),
			Versions: slices.Clone(src.Fallback()),
			Fallback: true,
			Err:      err,
		}
	}
	debug.DebugValue("catalog."+src.Name(), len(versions))
	return Resolution{
		Source:   src.Name(),
		Versions: versions,
	}
}

// ResolveAll resolves the Minecraft and Skript sources concurrently.
func ResolveAll(ctx context.Context, minecraft, skript Source) Catalog {
	var cat Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cat.Minecraft = Resolve(gctx, minecraft)
		return nil
	})
	g.Go(func() error {
		cat.Skript = Resolve(gctx, skript)
		return nil
	})
	// Resolve never fails, so Wait only acts as the join point.
	_ = g.Wait()
	return cat
}

// Fallbacks returns the catalogs that fell back, in a stable order.
func (c Catalog) Fallbacks() []Resolution {
	var out []Resolution
	for _, r := range []Resolution{c.Minecraft, c.Skript} {
		if r.Fallback {
			out = append(out, r)
		}
	}
	return out
}
