/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/SvenDH/ward/audio/speaker"
	"github.com/SvenDH/ward/deck"
	"github.com/SvenDH/ward/game"
	"github.com/SvenDH/ward/ui"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window on the start menu.

Controls:
  Left mouse  - Pick up and drop cards, press buttons
  ESC         - Back to the start menu
  F3          - Toggle TPS/FPS overlay`,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := deck.Load(cfg.DeckPath)
		if err != nil {
			log.Fatal(err)
		}

		g := game.New(cfg)
		g.StartingHand = d.Labels()
		g.Pointer = ui.CursorPointer{Width: cfg.WindowWidth, Height: cfg.WindowHeight}
		if cfg.Sound {
			s, err := speaker.New(cfg.SampleRate, cfg.Volume)
			if err != nil {
				log.Printf("sound disabled: %v", err)
			} else {
				defer s.Close()
				g.Cues = s
			}
		}

		ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
		ebiten.SetWindowTitle("Ward")
		if err := ebiten.RunGame(ui.NewProgram(g, d.Labels())); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
