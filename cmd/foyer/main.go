// Package main provides the foyer binary: a text-adventure engine played on
// the local console by default, or served over Telnet.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/tmcfarlane/foyer/internal/config"
	"github.com/tmcfarlane/foyer/internal/content"
	"github.com/tmcfarlane/foyer/internal/frontend/console"
	"github.com/tmcfarlane/foyer/internal/frontend/telnet"
	"github.com/tmcfarlane/foyer/internal/game/engine"
	"github.com/tmcfarlane/foyer/internal/game/state"
	"github.com/tmcfarlane/foyer/internal/narration"
	"github.com/tmcfarlane/foyer/internal/observability"
	"github.com/tmcfarlane/foyer/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	dataDir := flag.String("data", "", "override content.dir")
	startRoom := flag.String("room", "", "override content.start_room")
	telnetMode := flag.Bool("telnet", false, "serve sessions over Telnet instead of the console")
	flag.Parse()

	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *dataDir != "" {
		cfg.Content.Dir = *dataDir
	}
	if *startRoom != "" {
		cfg.Content.StartRoom = *startRoom
	}
	if *telnetMode {
		cfg.Telnet.Enabled = true
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	store, err := content.NewFSStore(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("opening content store", zap.Error(err))
	}

	eng := engine.New(store, state.NewStore(), logger)

	if cfg.Telnet.Enabled {
		runTelnet(ctx, cfg, eng, logger)
		return
	}
	runConsole(ctx, cfg, eng, logger)
}

// runConsole plays a single session on stdin/stdout, narrated when the TTS
// relay is configured.
func runConsole(ctx context.Context, cfg config.Config, eng *engine.Engine, logger *zap.Logger) {
	var speaker *narration.Speaker
	if cfg.Narration.Enabled {
		relay := narration.NewRelayClient(cfg.Narration.RelayURL, cfg.Narration.Timeout)
		speaker = narration.NewSpeaker(relay, narration.DiscardPlayer{}, logger)
		defer speaker.Close()
	}

	runner := console.NewRunner(eng, cfg.Content.StartRoom, os.Stdin, os.Stdout, speaker, logger)
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("console session failed", zap.Error(err))
	}
}

// runTelnet serves any number of concurrent sessions over TCP until
// interrupted.
func runTelnet(ctx context.Context, cfg config.Config, eng *engine.Engine, logger *zap.Logger) {
	handler := telnet.NewGameHandler(eng, cfg.Content.StartRoom, logger)
	acceptor := telnet.NewAcceptor(cfg.Telnet, handler, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("telnet", acceptorService{acceptor})

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("lifecycle failed", zap.Error(err))
	}
}

// acceptorService adapts the Telnet acceptor to the lifecycle Service
// interface.
type acceptorService struct {
	acceptor *telnet.Acceptor
}

func (s acceptorService) Start() error { return s.acceptor.ListenAndServe() }
func (s acceptorService) Stop()        { s.acceptor.Stop() }
