package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/forgeui/internal/catalog"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
)

type frameworksListing struct {
	Frameworks    []emitter.Info         `json:"frameworks"`
	CSSFrameworks []catalog.CSSFramework `json:"cssFrameworks"`
}

func newFrameworksCmd(root *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "frameworks",
		Short: "List output frameworks and CSS frameworks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "warn")
			if err != nil {
				return err
			}

			listing := frameworksListing{
				Frameworks:    app.Exporter.Frameworks(),
				CSSFrameworks: app.Catalog.CSSFrameworks(),
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tEXTENSION\tLANGUAGE")
			for _, info := range listing.Frameworks {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Title, info.Extension, info.Language)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "CSS\tNAME\tPACKAGE\tVERSION")
			for _, css := range listing.CSSFrameworks {
				pkg, ver := css.Package, css.Version
				if pkg == "" {
					pkg, ver = "-", "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", css.ID, css.Name, pkg, ver)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
