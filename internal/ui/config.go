package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/config"
	"github.com/javiermolinar/routine/internal/dateutil"
	"github.com/javiermolinar/routine/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  routine config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(os.Stdout, cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.Schedule.Correction = promptValue(reader, "Auto-correction (e.g. 1h30m)", cfg.Schedule.Correction)
	cfg.Schedule.DefaultDays = promptSlice(reader, "Default days (comma-separated)", cfg.Schedule.DefaultDays)
	cfg.Schedule.WeekStart = promptValue(reader, "Week start (sunday/monday)", cfg.Schedule.WeekStart)
	cfg.Format.TimePattern = promptValue(reader, "Time pattern (strftime)", cfg.Format.TimePattern)
	cfg.Format.DatePattern = promptValue(reader, "Date pattern (strftime)", cfg.Format.DatePattern)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	now := time.Now()
	_, _ = fmt.Fprintln(w, "Current configuration:")
	_, _ = fmt.Fprintln(w, "──────────────────────")
	_, _ = fmt.Fprintln(w, "[schedule]")
	_, _ = fmt.Fprintf(w, "  correction   = %s\n", cfg.Schedule.Correction)
	_, _ = fmt.Fprintf(w, "  default_days = %s\n", strings.Join(cfg.Schedule.DefaultDays, ", "))
	_, _ = fmt.Fprintf(w, "  week_start   = %s\n", cfg.Schedule.WeekStart)
	_, _ = fmt.Fprintln(w, "\n[format]")
	_, _ = fmt.Fprintf(w, "  time_pattern = %s  %s\n", cfg.Format.TimePattern, formatMuted("("+dateutil.Print(cfg.Format.TimePattern, now)+")"))
	_, _ = fmt.Fprintf(w, "  date_pattern = %s  %s\n", cfg.Format.DatePattern, formatMuted("("+dateutil.Print(cfg.Format.DatePattern, now)+")"))
	_, _ = fmt.Fprintln(w, "\n[storage]")
	_, _ = fmt.Fprintf(w, "  db_path      = %s\n", cfg.Storage.DBPath)
	_, _ = fmt.Fprintln(w, "\n[ui]")
	_, _ = fmt.Fprintf(w, "  theme        = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptSlice(reader *bufio.Reader, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Printf("  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
