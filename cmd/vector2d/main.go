package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/koteyur/vector2d/math2d"
	"github.com/koteyur/vector2d/physics"
)

const (
	screenWidth  = 1200
	screenHeight = 720

	// pixelsPerUnit maps world units to screen pixels.
	pixelsPerUnit = 10.0
)

func main() {
	seed := flag.Int64("seed", 0, "Random seed for spawned shapes (0 = time based)")
	debug := flag.Bool("debug", false, "Log scene events and draw contact points")
	iterations := flag.Int("iterations", 10, "Impulse iterations per step")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	logger := physics.NewDefaultLogger("vector2d", *debug)
	logger.Infof("seed %d", *seed)

	cfg := physics.DefaultConfig()
	cfg.Iterations = *iterations
	scene := physics.NewScene(cfg, physics.WithLogger(logger), physics.WithRand(rng))

	// Static floor slightly tilted, like a ramp.
	floor, err := scene.Add(physics.NewBox(50, 2), screenWidth/pixelsPerUnit/2, screenHeight/pixelsPerUnit*0.9)
	if err != nil {
		log.Fatal(err)
	}
	floor.SetStatic()
	floor.SetOrient(math2d.Pi / 180 * 3)

	g := &Game{scene: scene, rng: rng, log: logger, showContacts: *debug}
	for i := 0; i < 3; i++ {
		g.spawnCircle(math2d.V(float64(30+30*i), 10))
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("vector2d demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
