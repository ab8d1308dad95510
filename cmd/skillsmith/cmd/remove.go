package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/ui"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <hubId>",
	Short: "Delete a skill",
	Long: `Delete a skill folder and everything inside it.

Asks for confirmation first; pass --yes to skip the prompt (required when
not running on a terminal).

Examples:
  skillsmith remove reverse-text
  skillsmith remove reverse-text --yes`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: skillNameCompletion,
	RunE:              runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	hubID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	audit, closeAudit := openAudit(cfg)
	defer closeAudit()

	st := openStore(cfg, false)
	if !st.Exists(hubID) {
		return fmt.Errorf("skill %q not found in %s", hubID, st.Root())
	}

	if !removeYes {
		ok, err := confirmRemove(hubID)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	done := audit.Event("delete_skill", hubID)
	err = st.Delete(hubID)
	done(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed skill %q\n", hubID)
	return nil
}

// confirmRemove asks before deleting: a styled dialog on a terminal, a
// plain y/N prompt when stdin is piped.
func confirmRemove(hubID string) (bool, error) {
	if stdinIsTerminal() {
		return ui.Confirm(fmt.Sprintf("Delete skill %q and all its files?", hubID))
	}

	fmt.Printf("Delete skill %q and all its files? [y/N] ", hubID)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading response: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
