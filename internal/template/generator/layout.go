package generator

import (
	"cmp"
	"path/filepath"
	"slices"

	"github.com/tacogips/skadd/internal/project"
	"github.com/tacogips/skadd/internal/template/render"
)

// Layout maps artifact kinds to their place in the scaffold tree.
type Layout struct {
	// Root is the scaffold root, <output>/<AddonName>.
	Root string

	rel map[render.Kind]string
}

// NewLayout computes the layout for cfg under outputDir. Package segments
// become nested directories below src/main/java.
func NewLayout(outputDir string, cfg project.Config) Layout {
	javaDir := filepath.Join(append([]string{"src", "main", "java"}, cfg.PackagePath()...)...)
	elementsDir := filepath.Join(javaDir, "elements")
	resourcesDir := filepath.Join("src", "main", "resources")

	return Layout{
		Root: filepath.Join(outputDir, cfg.AddonName),
		rel: map[render.Kind]string{
			render.Settings:          "settings.gradle",
			render.BuildScript:       "build.gradle",
			render.Readme:            "README.md",
			render.Manifest:          filepath.Join(resourcesDir, "plugin.yml"),
			render.MainClass:         filepath.Join(javaDir, cfg.AddonName+".java"),
			render.Logger:            filepath.Join(javaDir, project.LoggerClass+".java"),
			render.ColorUtils:        filepath.Join(javaDir, project.ColorUtilsClass+".java"),
			render.EffectExample:     filepath.Join(elementsDir, "EffExample.java"),
			render.ConditionExample:  filepath.Join(elementsDir, "CondExample.java"),
			render.ExpressionExample: filepath.Join(elementsDir, "ExprExample.java"),
		},
	}
}

// Rel returns the path of kind relative to Root.
func (l Layout) Rel(kind render.Kind) (string, bool) {
	p, ok := l.rel[kind]
	return p, ok
}

// Path returns the full path of kind.
func (l Layout) Path(kind render.Kind) (string, bool) {
	p, ok := l.rel[kind]
	if !ok {
		return "", false
	}
	return filepath.Join(l.Root, p), true
}

// Dirs returns every directory holding an artifact, including Root,
// parents before children.
func (l Layout) Dirs() []string {
	seen := map[string]bool{l.Root: true}
	dirs := []string{l.Root}
	for _, rel := range l.rel {
		for dir := filepath.Dir(rel); dir != "."; dir = filepath.Dir(dir) {
			full := filepath.Join(l.Root, dir)
			if !seen[full] {
				seen[full] = true
				dirs = append(dirs, full)
			}
		}
	}
	sortPaths(dirs)
	return dirs
}

// sortPaths orders paths by depth, then lexicographically.
func sortPaths(paths []string) {
	slices.SortFunc(paths, func(a, b string) int {
		if da, db := pathDepth(a), pathDepth(b); da != db {
			return da - db
		}
		return cmp.Compare(a, b)
	})
}

// pathDepth returns the depth of a path (number of path separators).
func pathDepth(path string) int {
	clean := filepath.Clean(path)
	if clean == "." || clean == string(filepath.Separator) {
		return 0
	}
	depth := 0
	for _, c := range clean {
		if c == filepath.Separator {
			depth++
		}
	}
	return depth
}
