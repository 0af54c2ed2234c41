package main

import (
	"flag"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/bmiles/minesweeper-agent/internal/game"
	"github.com/bmiles/minesweeper-agent/internal/play"
	"github.com/bmiles/minesweeper-agent/internal/solver"
)

var log = logrus.New()

var (
	height  = flag.Int("height", 8, "field height")
	width   = flag.Int("width", 8, "field width")
	mines   = flag.Int("mines", 8, "number of mines")
	games   = flag.Int("games", 1, "number of games to play")
	seed    = flag.Uint64("seed", 0, "rng seed (0 picks one at random)")
	verbose = flag.Bool("v", false, "print the field after every move")
)

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var rnd *rand.Rand
	if *seed != 0 {
		rnd = rand.New(rand.NewPCG(*seed, 0))
	} else {
		rnd = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}

	won := 0
	for i := range *games {
		g, err := game.New(*height, *width, *mines, rnd)
		if err != nil {
			log.Fatal("unable to create game: ", err)
		}
		agent := solver.NewAgent(*height, *width, rnd)
		session := play.NewSession(g, agent)

		for {
			move, ok := session.Step()
			if !ok {
				break
			}
			kind := "safe"
			if move.Random {
				kind = "random"
			}
			log.Debugf("game %d: %s move %s", i+1, kind, move.Cell)
			if *verbose {
				log.Debug("\n" + session.Field())
			}
		}

		stats := session.Stats()
		if stats.Status == play.Won {
			won++
		}
		log.WithFields(logrus.Fields{
			"status":      stats.Status.String(),
			"moves":       stats.Moves,
			"randomMoves": stats.Random,
			"knownMines":  stats.KnownMines,
		}).Infof("game %d finished", i+1)
	}

	log.Infof("won %d of %d games", won, *games)
}
