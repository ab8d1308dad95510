package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/anything-stack/skillsmith/internal/config"
	"github.com/anything-stack/skillsmith/internal/logging"
	"github.com/anything-stack/skillsmith/internal/store"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	cfgPath   string
	skillsDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "skillsmith",
	Short: "Editor for AnythingLLM custom skills",
	Long: `skillsmith creates, inspects, modifies and deletes AnythingLLM custom
skills: folders holding a plugin.json manifest and a JavaScript handler.

Every mutating command validates its input first (all eight skill fields
are required) and records the outcome in the standard and verbose audit
logs. Run a command without its field flags on a terminal to get an
interactive form instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: ~/.config/skillsmith/config.json)")
	rootCmd.PersistentFlags().StringVarP(&skillsDir, "skills-dir", "d", "", "skills root folder (default: from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log everything to the verbose audit log")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("skillsmith {{.Version}}\n")
}

// loadConfig reads the configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgPath)
}

// skillsRoot resolves the skills root: the --skills-dir flag wins over the
// configured default_skill_output_path.
func skillsRoot(cfg *config.Config) string {
	if skillsDir != "" {
		return config.ExpandPath(skillsDir)
	}
	return cfg.SkillsRoot()
}

// openStore builds the persistence gateway for the resolved root.
// forceOverwrite widens the configured overwrite policy, never narrows it.
func openStore(cfg *config.Config, forceOverwrite bool) *store.Store {
	return store.New(skillsRoot(cfg), cfg.AllowSkillOverwrite || forceOverwrite)
}

// openAudit opens the audit logs. Callers must invoke the returned closer.
// When the logs cannot be opened the editor still works, silently.
func openAudit(cfg *config.Config) (*logging.Audit, func()) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	audit, err := logging.Open("", level)
	if err != nil {
		return logging.NewForTest(), func() {}
	}
	return audit, func() { audit.Close() }
}

// skillNameCompletion completes a <hubId> argument from the skills root.
func skillNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := openStore(cfg, false).Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// stdinIsTerminal reports whether interactive forms can be shown.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
