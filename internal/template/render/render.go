// Package render turns a project.Config into the text of every scaffold
// artifact. Rendering is pure: the same record always yields the same bytes.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Kind identifies one generated artifact.
type Kind int

const (
	Manifest Kind = iota
	BuildScript
	Settings
	MainClass
	Logger
	ColorUtils
	EffectExample
	ConditionExample
	ExpressionExample
	Readme
)

// String returns the artifact name.
func (k Kind) String() string {
	switch k {
	case Manifest:
		return "manifest"
	case BuildScript:
		return "build-script"
	case Settings:
		return "settings"
	case MainClass:
		return "main-class"
	case Logger:
		return "logger"
	case ColorUtils:
		return "color-utils"
	case EffectExample:
		return "effect-example"
	case ConditionExample:
		return "condition-example"
	case ExpressionExample:
		return "expression-example"
	case Readme:
		return "readme"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// AllKinds returns every artifact kind exactly once, in generation order.
func AllKinds() []Kind {
	return []Kind{
		Manifest,
		BuildScript,
		Settings,
		MainClass,
		Logger,
		ColorUtils,
		EffectExample,
		ConditionExample,
		ExpressionExample,
		Readme,
	}
}

// Artifact is one rendered file body.
type Artifact struct {
	Kind    Kind
	Content []byte
}

type renderFunc func(d values) ([]byte, error)

// registry maps each kind to its renderer.
var registry = map[Kind]renderFunc{
	Manifest:          renderManifest,
	BuildScript:       fromTemplate("build.gradle.tmpl"),
	Settings:          fromTemplate("settings.gradle.tmpl"),
	MainClass:         fromTemplate("main_class.java.tmpl"),
	Logger:            fromTemplate("logger.java.tmpl"),
	ColorUtils:        fromTemplate("color_utils.java.tmpl"),
	EffectExample:     fromTemplate("effect.java.tmpl"),
	ConditionExample:  fromTemplate("condition.java.tmpl"),
	ExpressionExample: fromTemplate("expression.java.tmpl"),
	Readme:            fromTemplate("readme.md.tmpl"),
}

var templates = template.Must(
	template.New("artifacts").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

// values is the substitution set shared by every artifact. All derived
// strings are computed once here so artifacts cannot disagree.
type values struct {
	AddonName       string
	PackageName     string
	MainClass       string
	ElementsPackage string
	Implementation  string
	JavaVersion     string
	MCVersion       string
	SkriptVersion   string
	RepoSlug        string
}

func newValues(cfg project.Config) values {
	return values{
		AddonName:       cfg.AddonName,
		PackageName:     cfg.PackageName,
		MainClass:       cfg.MainClass(),
		ElementsPackage: cfg.ElementsPackage(),
		Implementation:  string(cfg.Implementation),
		JavaVersion:     string(cfg.JavaVersion),
		MCVersion:       cfg.MCVersion,
		SkriptVersion:   cfg.SkriptVersion,
		RepoSlug:        cfg.RepoSlug(),
	}
}

// Render produces one artifact.
func Render(cfg project.Config, kind Kind) ([]byte, error) {
	fn, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("no renderer registered for %s", kind)
	}
	out, err := fn(newValues(cfg))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	return out, nil
}

// RenderAll produces every artifact in AllKinds order.
func RenderAll(cfg project.Config) ([]Artifact, error) {
	debug.DebugSection("Render")

	kinds := AllKinds()
	artifacts := make([]Artifact, 0, len(kinds))
	for _, kind := range kinds {
		content, err := Render(cfg, kind)
		if err != nil {
			return nil, err
		}
		debug.Debug("[render] %s: %d bytes", kind, len(content))
		artifacts = append(artifacts, Artifact{Kind: kind, Content: content})
	}
	return artifacts, nil
}

func fromTemplate(name string) renderFunc {
	return func(d values) ([]byte, error) {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// pluginManifest is the plugin.yml document.
type pluginManifest struct {
	Name       string   `yaml:"name"`
	Version    string   `yaml:"version"`
	Main       string   `yaml:"main"`
	APIVersion string   `yaml:"api-version"`
	Depend     []string `yaml:"depend,flow"`
}

func renderManifest(d values) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(pluginManifest{
		Name:       d.AddonName,
		Version:    "1.0.0",
		Main:       d.MainClass,
		APIVersion: d.MCVersion,
		Depend:     []string{"Skript"},
	})
	if err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
