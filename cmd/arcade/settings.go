package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/settings"
)

var (
	flagHaptics string
	flagSound   string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change haptics and sound",
	Long: `Show the persisted feedback settings, or change them.

Both can also be toggled in game with H (haptics) and M (sound).

Examples:
  arcade settings
  arcade settings --sound off
  arcade settings --haptics on --sound on`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagHaptics, "haptics", "", "Turn haptics on or off")
	settingsCmd.Flags().StringVar(&flagSound, "sound", "", "Turn sound on or off")
}

func runSettings(_ *cobra.Command, _ []string) error {
	prefs := settings.Open(newLogger(io.Discard, "arcade"))

	if flagHaptics != "" {
		on, err := parseSwitch(flagHaptics)
		if err != nil {
			return fmt.Errorf("--haptics: %w", err)
		}
		prefs.SetHaptics(on)
	}
	if flagSound != "" {
		on, err := parseSwitch(flagSound)
		if err != nil {
			return fmt.Errorf("--sound: %w", err)
		}
		prefs.SetSound(on)
	}

	s := prefs.Get()
	fmt.Printf("Haptics: %s\n", onOff(s.HapticsEnabled))
	fmt.Printf("Sound:   %s\n", onOff(s.SoundEnabled))
	if !prefs.Persistent() {
		fmt.Fprintln(os.Stderr, "Warning: settings storage unavailable; changes last for this run only.")
	}
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch v {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", v)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
