package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dirCreate bool

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the skills root folder",
	Long: `Print the skills root folder, resolved from --skills-dir or the
configured default_skill_output_path. With --create the folder is created
if missing, so the path can be opened or cd'd into directly.`,
	RunE: runDir,
}

func init() {
	dirCmd.Flags().BoolVar(&dirCreate, "create", false, "create the folder if it does not exist")
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := skillsRoot(cfg)
	if dirCreate {
		if err := os.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("creating skills root: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), root)
	return nil
}
