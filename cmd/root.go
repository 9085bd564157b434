/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SvenDH/ward/config"
)

var (
	cfg config.Config

	deckPath string
	noSound  bool
	scale    float64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ward",
	Short: "A card game about treating patients",
	Long: `Ward is a card game played on a hospital ward. Cards are dealt into a
hand along the bottom of the screen and dragged onto patients.

Settings are read from WARD_* environment variables and can be
overridden with flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("deck") {
			cfg.DeckPath = deckPath
		}
		if flags.Changed("mute") {
			cfg.Sound = !noSound
		}
		if flags.Changed("scale") {
			cfg.CameraScale = scale
		}
		return cfg.Validate()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&deckPath, "deck", "d", "", "Deck file to deal from (default: built-in starter deck)")
	rootCmd.PersistentFlags().BoolVar(&noSound, "mute", false, "Disable sound cues")
	rootCmd.PersistentFlags().Float64Var(&scale, "scale", 1, "World units per screen pixel")
}
