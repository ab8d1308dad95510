package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/skill"
)

var (
	editFieldFlags = map[string]*string{}
	editNoInput    bool
)

var editCmd = &cobra.Command{
	Use:   "edit <hubId>",
	Short: "Modify an existing skill",
	Long: `Modify an existing skill. The current plugin.json is loaded, the
given field flags (or the interactive form) are applied, the result is
re-validated and plugin.json is overwritten in full. The handler script is
not touched.

The hubId cannot change: it names the folder. Delete and re-create the
skill to rename it.

Examples:
  skillsmith edit reverse-text --description "Reverses any string"
  skillsmith edit reverse-text    # interactive form`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: skillNameCompletion,
	RunE:              runEdit,
}

func init() {
	registerFieldFlags(editCmd, editFieldFlags)
	editCmd.Flags().BoolVar(&editNoInput, "no-input", false, "never open an interactive form")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	hubID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	audit, closeAudit := openAudit(cfg)
	defer closeAudit()

	st := openStore(cfg, false)
	current, err := st.Load(hubID)
	if err != nil {
		return err
	}

	fields, explicit := collectFields(cmd, cfg, editFieldFlags, current.Fields())

	if fields[skill.FieldHubID] != hubID {
		return fmt.Errorf("hubId cannot change (folder is %q); delete and re-create the skill instead", hubID)
	}

	// Interactive unless the caller changed at least one field via flags.
	if len(explicit) == 0 && !editNoInput && stdinIsTerminal() {
		fields, err = runSkillForm(fmt.Sprintf("Modify Skill: %s", hubID), cfg, fields, explicit,
			map[string]bool{skill.FieldHubID: true}, false)
		if err != nil {
			return err
		}
	}

	rec, result := skill.FromFields(fields)
	if result.HasErrors() {
		return reportValidation(cmd, result)
	}

	// Editing must never silently flip the active state.
	rec.Active = current.Active

	done := audit.Event("modify_skill", hubID, "skill", rec.Fields())
	err = st.Update(rec)
	done(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated skill %q\n", hubID)
	return nil
}
