/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SvenDH/ward/deck"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck [deck_file]",
	Short: "Check a deck file and list its cards",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DeckPath
		if len(args) > 0 {
			path = args[0]
		}
		d, err := deck.Load(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, e := range d.Entries {
			fmt.Fprintf(out, "%3d x %s\n", e.Count, e.Name())
		}
		fmt.Fprintf(out, "%d cards\n", d.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deckCmd)
}
