package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/store"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in the skills root",
	Long: `List every well-formed skill folder under the skills root.

A folder counts as a skill when it holds a parseable plugin.json with the
required metadata keys and its declared entrypoint file exists. Anything
else is skipped without complaint.

Use --json for machine-readable output.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := openStore(cfg, false).List()
	if err != nil {
		return fmt.Errorf("listing skills: %w", err)
	}

	if listJSON {
		return outputListJSON(cmd, entries)
	}
	return outputListText(cmd, entries)
}

func outputListJSON(cmd *cobra.Command, entries []store.Entry) error {
	if entries == nil {
		entries = []store.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputListText(cmd *cobra.Command, entries []store.Entry) error {
	out := cmd.OutOrStdout()

	if len(entries) == 0 {
		fmt.Fprintln(out, "No skills found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HUBID\tNAME\tVERSION\tACTIVE")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", e.HubID, e.Name, e.Version, e.Active)
	}

	return w.Flush()
}
