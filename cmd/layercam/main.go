// Command layercam runs the layered camera control console
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/layercam/audio"
	"github.com/lixenwraith/layercam/config"
	"github.com/lixenwraith/layercam/input"
	"github.com/lixenwraith/layercam/terminal"
)

// options holds parsed command-line flags
type options struct {
	configPath     string
	debug          bool
	sound          bool
	keymap         string
	headlessFrames int
	script         string

	// set records flags given explicitly; only those override config
	set map[string]bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("layercam", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&o.configPath, "config", "", "Path to TOML config file")
	fs.BoolVar(&o.debug, "debug", false, "Write debug log to logs/layercam.log")
	fs.BoolVar(&o.sound, "sound", false, "Enable audio feedback cues")
	fs.StringVar(&o.keymap, "keymap", "", "Path to TOML keymap overrides")
	fs.IntVar(&o.headlessFrames, "headless-frames", 0, "Run N frames without a terminal, printing status lines to stdout")
	fs.StringVar(&o.script, "script", "", "Headless key script: whitespace-separated frames of keys, '.' for an empty frame")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// headless reports whether the session runs without a terminal
func (o options) headless() bool {
	return o.headlessFrames > 0 || o.script != ""
}

// apply overlays explicitly set flags onto cfg
func (o options) apply(cfg *config.Config) {
	if o.set["debug"] {
		cfg.Log.Debug = o.debug
	}
	if o.set["sound"] {
		cfg.Audio.Enabled = o.sound
	}
	if o.set["keymap"] {
		cfg.Input.Keymap = o.keymap
	}
}

func loadKeyTable(path string) (*input.KeyTable, error) {
	if path == "" {
		return input.DefaultKeyTable(), nil
	}
	return input.LoadKeyConfigFile(path)
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	opts.apply(&cfg)

	logFile, logger := setupLogging(cfg.Log.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	kt, err := loadKeyTable(cfg.Input.Keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keymap: %v\n", err)
		os.Exit(1)
	}

	player := audio.NewPlayer(cfg.Audio.Enabled)
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
			cfg.Audio.Enabled = false
		}
	}
	defer player.Close()

	a := newApp(cfg, kt, player, logger)
	logger.Info("layercam started", "headless", opts.headless(), "audio", player.Enabled())

	if opts.headless() {
		a.runScript(os.Stdout, parseScript(opts.script, kt), opts.headlessFrames)
		return
	}

	con, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			con.Close()
			fmt.Fprintf(os.Stderr, "\nlayercam crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	a.runConsole(con)
	con.Close()
	logger.Info("layercam stopped")
}
