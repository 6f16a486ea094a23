package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/skadd/internal/app"
	"github.com/tacogips/skadd/internal/catalog"
)

// catalogJSON is the --json form of one resolved catalog.
type catalogJSON struct {
	Versions []string `json:"versions"`
	Fallback bool     `json:"fallback"`
	Error    string   `json:"error,omitempty"`
}

func newVersionsCmd(g *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List the Minecraft and Skript versions offered by the wizard",
		Long: `Resolve both version catalogs and print them, newest first.

Examples:
  skadd versions
  skadd versions --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolConfig(g)
			if err != nil {
				return err
			}
			cfg.Catalog.GitHubToken = resolveGitHubToken(cfg.Catalog.GitHubToken)
			cat := app.ResolveCatalog(cmd.Context(), cfg, nil)

			if asJSON {
				data, err := json.MarshalIndent(map[string]catalogJSON{
					"minecraft": toCatalogJSON(cat.Minecraft),
					"skript":    toCatalogJSON(cat.Skript),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal versions: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			printer := g.printer(cmd.OutOrStdout(), cfg)
			reportFallbacks(printer, cat)
			for _, r := range []catalog.Resolution{cat.Minecraft, cat.Skript} {
				title := sourceTitle(r.Source) + " versions"
				if r.Fallback {
					title += " (defaults)"
				}
				printer.Header(title)
				for _, v := range r.Versions {
					printer.Plain(v)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, FlagJSON, false, "Output as JSON")
	return cmd
}

func toCatalogJSON(r catalog.Resolution) catalogJSON {
	out := catalogJSON{Versions: r.Versions, Fallback: r.Fallback}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}
