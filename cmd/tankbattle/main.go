package main

import (
	"flag"
	"log"

	"github.com/dfsfdfse/tank-war/internal/config"
	"github.com/dfsfdfse/tank-war/internal/game"
	"github.com/dfsfdfse/tank-war/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		configPath string
		logPath    string
		debug      bool
	)
	flag.StringVar(&configPath, "config", "", "path to resource.json (default: user config dir)")
	flag.StringVar(&logPath, "log", "tank-war.log", "log file path")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger := logging.New(logPath, debug)
	defer logging.Sync(logger)

	g := game.New(game.Options{
		Load: func() (*config.GameConfig, error) {
			cfg, path, err := config.LoadResolved(configPath)
			if err != nil {
				return nil, err
			}
			logger.Infow("using config", "path", path)
			return cfg, nil
		},
		Log:    logger,
		Audio:  game.NewAudioManager(""),
		Resize: ebiten.SetWindowSize,
	})
	ebiten.SetWindowTitle("坦克大战 (Go + Ebiten)")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorw("game stopped", "error", err)
		logging.Sync(logger)
		log.Fatal(err)
	}
}
