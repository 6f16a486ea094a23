package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tacogips/skadd/internal/app"
	"github.com/tacogips/skadd/internal/catalog"
	"github.com/tacogips/skadd/internal/config"
	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/gitrepo"
	"github.com/tacogips/skadd/internal/project"
)

// newOptions holds the flags of the new command.
type newOptions struct {
	output  string
	answers string
	dryRun  bool
}

func addNewFlags(cmd *cobra.Command, o *newOptions) {
	cmd.Flags().StringVarP(&o.output, FlagOutput, "o", "", DescOutput)
	cmd.Flags().StringVarP(&o.answers, FlagAnswers, "a", "", DescAnswers)
	cmd.Flags().BoolVar(&o.dryRun, FlagDryRun, false, DescDryRun)
}

func newNewCmd(g *globalOptions) *cobra.Command {
	o := &newOptions{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new Skript addon project",
		Long: `Create a new Skript addon project.

Examples:
  skadd new
  skadd new -o ~/projects
  skadd new --answers addon.yaml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, g, o)
		},
	}
	addNewFlags(cmd, o)
	return cmd
}

func runNew(cmd *cobra.Command, g *globalOptions, o *newOptions) error {
	ctx := cmd.Context()

	cfg, err := loadToolConfig(g)
	if err != nil {
		return err
	}
	printer := g.printer(cmd.OutOrStdout(), cfg)

	printer.Header("Skript Addon Creator")
	printer.Muted("Create a new Skript addon for Minecraft")
	printer.Plain("")

	cfg.Catalog.GitHubToken = resolveGitHubToken(cfg.Catalog.GitHubToken)
	cat := app.ResolveCatalog(ctx, cfg, nil)
	reportFallbacks(printer, cat)

	rec, err := collectRecord(ctx, o, printer, cat)
	if err != nil {
		return err
	}

	outDir := o.output
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	outDir, err = config.ExpandPath(outDir)
	if err != nil {
		return err
	}

	res, err := app.Scaffold(ctx, rec, app.ScaffoldOptions{
		OutputDir:     outDir,
		DryRun:        o.dryRun,
		CommitMessage: cfg.Git.CommitMessage,
		GitRunner:     gitrepo.ExecRunner{Binary: cfg.Git.Binary},
	})
	if err != nil {
		return err
	}

	printSummary(printer, rec, res)
	return nil
}

func collectRecord(ctx context.Context, o *newOptions, printer *Printer, cat catalog.Catalog) (project.Config, error) {
	if o.answers != "" {
		printer.Info("Reading answers from " + o.answers)
		return app.LoadAnswers(o.answers, cat)
	}
	return app.Collect(ctx, NewSurveyPrompter(printer), cat)
}

func reportFallbacks(printer *Printer, cat catalog.Catalog) {
	for _, fb := range cat.Fallbacks() {
		printer.Warning(fmt.Sprintf("Error loading %s versions. Using default versions.", sourceTitle(fb.Source)))
		debug.Debug("[cli] %s fallback cause: %v", fb.Source, fb.Err)
	}
}

// sourceTitle turns a catalog source name into a display label.
func sourceTitle(source string) string {
	return cases.Title(language.English).String(source)
}

func printSummary(p *Printer, rec project.Config, res *app.ScaffoldResult) {
	files := res.Files
	root := files.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	if files.DryRun {
		p.Info(fmt.Sprintf("Dry run: %d files (%s) would be written to %s",
			len(files.Files), formatBytes(files.Bytes), root))
		for _, f := range files.Files {
			p.Muted("  " + f)
		}
		if files.FilesOverwritten > 0 {
			p.Warning(fmt.Sprintf("%d existing files would be overwritten", files.FilesOverwritten))
		}
		return
	}

	if res.GitRequested {
		p.Plain("")
		if res.GitErr == nil {
			p.Success("Git repository successfully initialized")
			p.Plain("- Primary branch: " + string(rec.PrimaryBranch))
			if rec.GitURL != "" {
				p.Plain("- Remote origin: " + rec.GitURL)
			}
			if rec.InitNewRepo {
				p.Plain("")
				p.Warning("To complete new repository initialization:")
				p.Plain(fmt.Sprintf("1. Create a new repository named %s on GitHub", rec.RepoSlug()))
				p.Plain("2. Run the following command:")
				p.Plain("   git push -u origin " + string(rec.PrimaryBranch))
			}
		} else {
			p.Warning("Git repository was not initialized: " + res.GitErr.Error())
			if len(res.GitSteps) > 0 {
				steps := make([]string, len(res.GitSteps))
				for i, s := range res.GitSteps {
					steps[i] = string(s)
				}
				p.Muted("  completed steps: " + strings.Join(steps, ", "))
			}
		}
	}

	p.Plain("")
	p.Success(fmt.Sprintf("Addon '%s' was successfully created in: %s", rec.AddonName, root))
	p.Muted(fmt.Sprintf("  %d files, %s", len(files.Files), formatBytes(files.Bytes)))
	if files.FilesOverwritten > 0 {
		p.Warning(fmt.Sprintf("%d existing files were overwritten", files.FilesOverwritten))
	}

	p.Plain("")
	p.Warning("Next steps:")
	p.Plain("1. Open the project in your IDE")
	p.Plain("2. Run 'gradle build' to build the addon")
	p.Plain("3. Find the built addon in the 'build/libs' directory")

	if res.GitRequested && res.GitErr == nil {
		p.Plain("")
		p.Info("Git commands:")
		p.Plain("1. Add changes:")
		p.Plain("   git add .")
		p.Plain("2. Commit changes:")
		p.Plain(`   git commit -m "Message"`)
		p.Plain("3. Push changes:")
		p.Plain("   git push -u origin " + string(rec.PrimaryBranch))
	}

	p.Plain("")
	p.Info("Creating a release:")
	p.Plain("1. Set GITHUB_TOKEN and GITHUB_REPOSITORY environment variables")
	p.Plain("2. Create a release description file (e.g. 1.0.0.md)")
	p.Plain("3. Run the command:")
	p.Plain(`   ./gradlew release -Pversion="1.0.0" -Pdescription="1.0.0.md" -Pprerelease=false`)
}
