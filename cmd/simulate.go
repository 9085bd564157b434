/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"

	"github.com/SvenDH/ward/deck"
	"github.com/SvenDH/ward/game"
)

var (
	simFrames  int
	simCard    int
	simPress   int
	simRelease int
	simX, simY float64
	simTPS     int
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the hand without a window and print card positions",
	Long: `Run the treatment screen headless. The starting hand is dealt, one card
is picked up, carried to a screen position and dropped again, and the
position of every card is printed after each frame.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.Load(cfg.DeckPath)
		if err != nil {
			return err
		}
		g := game.New(cfg)
		g.StartingHand = d.Labels()
		g.Drop = game.DropFunc(func(g *game.Game, card donburi.Entity, at mgl64.Vec3) {
			g.Logger.Printf("card %q dropped at %.1f,%.1f", g.LabelOf(card), at.X(), at.Y())
		})
		return simulate(cmd.OutOrStdout(), g)
	},
}

func simulate(out io.Writer, g *game.Game) error {
	if simTPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", simTPS)
	}
	pointer := &game.FixedPointer{}
	g.Pointer = pointer
	dt := time.Second / time.Duration(simTPS)

	g.RequestState(game.StateTreatment)
	g.Update(0)
	cards := g.Hand.Cards()
	if simCard < 0 || simCard >= len(cards) {
		return fmt.Errorf("card %d not in a hand of %d", simCard, len(cards))
	}
	target := cards[simCard]

	for frame := 1; frame <= simFrames; frame++ {
		switch frame {
		case simPress:
			pointer.MoveTo(simX, simY)
			g.Press(target)
		case simRelease:
			g.Release(target)
		}
		g.Update(dt)

		var line strings.Builder
		fmt.Fprintf(&line, "%4d", frame)
		for _, e := range g.Hand.Cards() {
			pos, _ := g.Position(e)
			mark := ""
			if g.IsHeld(e) {
				mark = "*"
			}
			fmt.Fprintf(&line, "  %s%s(%.1f,%.1f)", mark, g.LabelOf(e), pos.X(), pos.Y())
		}
		fmt.Fprintln(out, line.String())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simFrames, "frames", "n", 120, "Number of frames to run")
	simulateCmd.Flags().IntVarP(&simCard, "card", "c", 0, "Hand slot of the card to pick up")
	simulateCmd.Flags().IntVar(&simPress, "press", 30, "Frame on which the card is picked up")
	simulateCmd.Flags().IntVar(&simRelease, "release", 60, "Frame on which the card is dropped")
	simulateCmd.Flags().Float64VarP(&simX, "x", "x", 640, "Screen x the card is carried to")
	simulateCmd.Flags().Float64VarP(&simY, "y", "y", 300, "Screen y the card is carried to")
	simulateCmd.Flags().IntVar(&simTPS, "tps", 60, "Simulated ticks per second")
}
