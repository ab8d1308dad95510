package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/config"
	"github.com/anything-stack/skillsmith/internal/skill"
	"github.com/anything-stack/skillsmith/internal/ui"
)

var (
	addFieldFlags  = map[string]*string{}
	addHandlerPath string
	addForce       bool
	addNoInput     bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new skill",
	Long: `Create a new skill folder under the skills root.

All eight skill fields are required. Fields not given as flags fall back
to the configured defaults; anything still missing is collected through an
interactive form when running on a terminal. The folder is named after the
hubId and receives the plugin.json manifest plus the handler script
(generated boilerplate unless --handler points at a file).

Examples:
  # Fully scripted
  skillsmith add --name "Reverse Text" --hub-id reverse-text \
    --description "Reverses a string" \
    --params '{"text": {"description": "Text to reverse", "type": "string"}}' \
    --output "The reversed string."

  # Interactive form
  skillsmith add

  # Replace an existing skill
  skillsmith add --hub-id reverse-text ... --force`,
	RunE: runAdd,
}

// fieldFlagNames maps form-field keys to their CLI flag spellings.
var fieldFlagNames = map[string]string{
	skill.FieldName:              "name",
	skill.FieldHubID:             "hub-id",
	skill.FieldDescription:       "description",
	skill.FieldEntrypointFile:    "entrypoint-file",
	skill.FieldEntrypointParams:  "params",
	skill.FieldOutputDescription: "output",
	skill.FieldVersion:           "skill-version",
	skill.FieldSchema:            "schema",
}

func init() {
	registerFieldFlags(addCmd, addFieldFlags)
	addCmd.Flags().StringVar(&addHandlerPath, "handler", "", "path to a handler script to copy instead of the boilerplate")
	addCmd.Flags().BoolVar(&addForce, "force", false, "overwrite an existing skill folder")
	addCmd.Flags().BoolVar(&addNoInput, "no-input", false, "never open an interactive form")
	rootCmd.AddCommand(addCmd)
}

// registerFieldFlags declares one string flag per skill field, reusing the
// field catalog's tooltip texts as flag usage.
func registerFieldFlags(cmd *cobra.Command, dest map[string]*string) {
	for _, f := range skill.RequiredFields {
		v := new(string)
		dest[f.Key] = v
		cmd.Flags().StringVar(v, fieldFlagNames[f.Key], "", f.Tooltip)
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	audit, closeAudit := openAudit(cfg)
	defer closeAudit()

	fields, explicit := collectFields(cmd, cfg, addFieldFlags, nil)

	rec, result := skill.FromFields(fields)
	if result.HasErrors() && !addNoInput && stdinIsTerminal() {
		fields, err = runSkillForm("Add New Skill", cfg, fields, explicit, nil, true)
		if err != nil {
			return err
		}
		rec, result = skill.FromFields(fields)
	}
	if result.HasErrors() {
		return reportValidation(cmd, result)
	}

	var handlerJS string
	if addHandlerPath != "" {
		data, err := os.ReadFile(addHandlerPath)
		if err != nil {
			return fmt.Errorf("reading handler script: %w", err)
		}
		handlerJS = string(data)
	}

	st := openStore(cfg, addForce)
	done := audit.Event("add_skill", rec.HubID, "skill", rec.Fields())
	err = st.Create(rec, handlerJS)
	done(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created skill %q in %s\n", rec.HubID, st.Path(rec.HubID))
	return nil
}

// collectFields merges, in order of precedence: explicit field flags, the
// seed mapping (for modify), then configured defaults. It also returns the
// set of flag-provided fields.
func collectFields(cmd *cobra.Command, cfg *config.Config, flagVals map[string]*string, seed map[string]string) (map[string]string, map[string]bool) {
	fields := make(map[string]string, len(skill.RequiredFields))
	explicit := make(map[string]bool)

	for _, f := range skill.RequiredFields {
		switch {
		case cmd.Flags().Changed(fieldFlagNames[f.Key]):
			fields[f.Key] = *flagVals[f.Key]
			explicit[f.Key] = true
		case seed != nil && seed[f.Key] != "":
			fields[f.Key] = seed[f.Key]
		default:
			fields[f.Key] = cfg.FieldDefaults[f.Key]
		}
	}

	return fields, explicit
}

// runSkillForm opens the interactive form over the current field values.
// When lockDefaults is set and the configuration asks for it, fields that
// hold a configured default are locked unless the user explicitly flagged
// them. alwaysLocked fields (the hubId during modify) are locked
// regardless.
func runSkillForm(title string, cfg *config.Config, fields map[string]string, explicit map[string]bool, alwaysLocked map[string]bool, lockDefaults bool) (map[string]string, error) {
	locked := make(map[string]bool)
	for key := range alwaysLocked {
		locked[key] = true
	}
	if lockDefaults && cfg.LockFieldsByDefault {
		for key, def := range cfg.FieldDefaults {
			if def != "" && !explicit[key] && !locked[key] {
				locked[key] = true
			}
		}
	}

	values := ui.NewFormValues(fields)
	form := ui.SkillForm(title, values, locked, cfg.ShowFieldTooltips)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return values.Map(), nil
}

// reportValidation prints every validation message and fails the command.
func reportValidation(cmd *cobra.Command, result *skill.ValidationResult) error {
	for _, msg := range result.Messages() {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", msg)
	}
	return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
}
