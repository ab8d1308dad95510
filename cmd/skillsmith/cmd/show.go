package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/skill"
)

var showFields bool

var showCmd = &cobra.Command{
	Use:   "show <hubId>",
	Short: "Show a skill's manifest",
	Long: `Print the plugin.json of an installed skill.

Use --fields to see the flat form-field view instead, exactly as the
modify form would prefill it.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: skillNameCompletion,
	RunE:              runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showFields, "fields", false, "show the flat form fields instead of the manifest")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rec, err := openStore(cfg, false).Load(args[0])
	if err != nil {
		return err
	}

	if showFields {
		return outputShowFields(cmd, rec)
	}

	data, err := rec.Manifest().Encode()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func outputShowFields(cmd *cobra.Command, rec *skill.Record) error {
	fields := rec.Fields()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, f := range skill.RequiredFields {
		fmt.Fprintf(w, "%s\t%s\n", f.Key, fields[f.Key])
	}
	return w.Flush()
}
