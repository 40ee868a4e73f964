package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"snake-classic/api"
	"snake-classic/game"
	"snake-classic/ui"

	"git.sr.ht/~sircmpwn/getopt"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

type options struct {
	cfg        game.Config
	listenAddr string
	headless   bool
	seed       uint64
}

func parseOptions(args []string) (options, error) {
	o := options{cfg: game.DefaultConfig()}

	opts, _, err := getopt.Getopts(args, "W:H:x:y:t:ol:ns:")
	if err != nil {
		return o, err
	}
	for _, opt := range opts {
		var n int
		switch opt.Option {
		case 'W', 'H', 'x', 'y', 't':
			if n, err = strconv.Atoi(opt.Value); err != nil {
				return o, err
			}
		}
		switch opt.Option {
		case 'W':
			o.cfg.Width = n
		case 'H':
			o.cfg.Height = n
		case 'x':
			o.cfg.Start.X = n
		case 'y':
			o.cfg.Start.Y = n
		case 't':
			o.cfg.TickRate = time.Duration(n) * time.Millisecond
		case 'o':
			o.cfg.FoodOverlap = true
		case 'l':
			o.listenAddr = opt.Value
		case 'n':
			o.headless = true
		case 's':
			if o.seed, err = strconv.ParseUint(opt.Value, 10, 64); err != nil {
				return o, err
			}
		}
	}
	return o, o.cfg.Validate()
}

func main() {
	o, err := parseOptions(os.Args)
	if err != nil {
		log.Fatal(err)
	}

	var gameOpts []game.Option
	if o.seed != 0 {
		gameOpts = append(gameOpts, game.WithRand(rand.New(rand.NewSource(o.seed))))
	}
	g, err := game.NewGame(o.cfg, gameOpts...)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("game %s: %dx%d board, tick %v", g.UUID, g.Grid.Width, g.Grid.Height, g.TickRate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := api.NewHub()
	if o.listenAddr != "" {
		server := api.NewServer(g, hub, o.listenAddr)
		serve(server.Start, stop)
		defer shutdownServer(server)
	}

	driver := NewDriver(g, hub)
	if o.headless {
		driver.RunHeadless(ctx)
		return
	}

	runWindow(ctx, g, driver)
}

// serve runs start in the background. A failure is logged, stops the game
// loop through stop and is reported on the returned channel, which carries
// exactly one value once start returns.
func serve(start func() error, stop context.CancelFunc) <-chan error {
	serverErr := make(chan error, 1)
	go func() {
		err := start()
		if err != nil {
			log.Printf("api server: %v", err)
			stop()
		}
		serverErr <- err
	}()
	return serverErr
}

func shutdownServer(server *api.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("api shutdown: %v", err)
	}
}

// runWindow owns the raylib thread: input, ticks and drawing all happen
// in this one loop. It returns when the window closes or ctx is done.
func runWindow(ctx context.Context, g *game.Game, driver *Driver) {
	rl.InitWindow(900, 660, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if ui.PollInput(g) {
			break
		}
		driver.Step(time.Now())
		renderer.Draw(g.Snapshot())
	}
}
