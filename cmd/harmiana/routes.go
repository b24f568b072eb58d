package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/admin-harmiana/Website/internal/router"
)

func newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes [path...]",
		Short: "List every page path, or show how the given paths resolve",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = router.Paths()
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tLOCALE\tPAGE\tREDIRECT")
			for _, p := range paths {
				res := router.Match(p)
				if res.IsRedirect() {
					fmt.Fprintf(w, "%s\t-\t-\t%s\n", p, res.Redirect)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t-\n", res.Route.Path, res.Route.Locale, res.Route.Page)
			}
			return w.Flush()
		},
	}
	// Resolving paths needs no config.
	cmd.PersistentPreRunE = noHook
	cmd.PersistentPostRunE = noHook
	return cmd
}

func noHook(*cobra.Command, []string) error { return nil }
