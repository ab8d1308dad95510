package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/config"
	"github.com/anything-stack/skillsmith/internal/logging"
	"github.com/anything-stack/skillsmith/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change editor settings",
	Long: `Inspect and change the editor settings.

Settings live in ~/.config/skillsmith/config.json; every save also writes
an INI mirror (config.ini) beside it. Keys:

  log_level                  debug, info, warn or error
  default_skill_output_path  the skills root folder
  lock_fields_by_default     keep default-valued form fields read-only
  show_field_tooltips        per-field help text in the forms
  allow_skill_overwrite      let add replace an existing skill folder
  field_defaults.<field>     default value for one form field`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configShowJSON bool

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runConfigShow,
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON")
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if configShowJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, item := range cfg.Items() {
		fmt.Fprintf(w, "%s\t%s\n", item[0], item[1])
	}
	return w.Flush()
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting and save",
	Long: `Change one setting and persist the configuration (JSON plus INI
mirror).

Examples:
  skillsmith config set allow_skill_overwrite true
  skillsmith config set field_defaults.version 2.0.0`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	audit, closeAudit := openAudit(cfg)
	defer closeAudit()

	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}

	if err := saveConfig(cfg, audit); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
	return nil
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the per-field default values interactively",
	Long: `Open the field-defaults form: the same eight skill fields the add
form shows, but the submitted values become the configured defaults for
future skills rather than a skill of their own.`,
	RunE: runConfigEdit,
}

func init() {
	configCmd.AddCommand(configEditCmd)
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("config edit needs a terminal; use `config set` instead")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	audit, closeAudit := openAudit(cfg)
	defer closeAudit()

	values := ui.NewFormValues(cfg.FieldDefaults)
	form := ui.SkillForm("Default Configuration", values, nil, cfg.ShowFieldTooltips)
	if err := form.Run(); err != nil {
		return err
	}

	defaults := values.Map()
	if errs := config.ValidateFieldDefaults(defaults); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", e.Message)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}
	cfg.FieldDefaults = defaults

	if err := saveConfig(cfg, audit); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved.")
	return nil
}

// saveConfig persists the config and records the save in the audit log.
func saveConfig(cfg *config.Config, audit *logging.Audit) error {
	if err := cfg.Save(cfgPath); err != nil {
		return err
	}

	data, err := json.Marshal(cfg)
	if err == nil {
		audit.Line("Config saved: %s", data)
	}
	return nil
}
