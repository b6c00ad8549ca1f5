package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gordonklaus/portaudio"
	"github.com/spf13/cobra"

	"go-beatbox/audio"
	"go-beatbox/config"
	"go-beatbox/control"
	"go-beatbox/debug"
	"go-beatbox/engine"
	"go-beatbox/tui"
)

const sampleRate = 48000

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		debugFlag  bool
	)

	cmd := &cobra.Command{
		Use:           "go-beatbox",
		Short:         "A four-voice drum machine with a step sequencer and switchable kits",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, debugFlag)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.json (default ~/.config/go-beatbox/config.json)")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "write diagnostics to ~/.config/go-beatbox/debug.log")

	cmd.AddCommand(listDevicesCmd(), versionCmd())
	return cmd
}

func listDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-devices",
		Short: "List available audio devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := portaudio.Initialize(); err != nil {
				return fmt.Errorf("can't init portaudio: %w", err)
			}
			defer portaudio.Terminate()
			lines, err := audio.ListDevices()
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Println(l)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("go-beatbox", version)
		},
	}
}

// buildOptions maps the file config onto the stream/engine options.
func buildOptions(cfg *config.Config) audio.Options {
	opts := engine.DefaultOptions()
	if cfg.Engine.HiHat == config.HiHatBeat {
		opts.HiHat = engine.HiHatBeat
	}
	opts.ClickInPreset = !cfg.Engine.MuteClickInPreset
	opts.Pattern = cfg.Engine.Pattern

	return audio.Options{
		Engine: opts,
		Delay: audio.DelayOptions{
			Enabled:  cfg.Delay.Enabled,
			Time:     cfg.Delay.TimeSeconds,
			Feedback: cfg.Delay.Feedback,
			Mix:      cfg.Delay.Mix,
			LFORate:  cfg.Delay.LFORateHz,
			LFODepth: cfg.Delay.LFODepth,
		},
		SoftClip: cfg.SoftClip,
	}
}

func run(configPath string, debugFlag bool) error {
	if debugFlag {
		if err := debug.Enable(); err != nil {
			return fmt.Errorf("can't enable debug log: %w", err)
		}
		defer debug.Disable()
	}

	if configPath == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		configPath = p
	}

	// Write defaults on first run so the watcher has a file to follow
	// and users have something to edit.
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return fmt.Errorf("can't write default config: %w", err)
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("can't init portaudio: %w", err)
	}
	defer portaudio.Terminate()

	surface := control.NewSurface(cfg.TempoKnob, cfg.VolumeKnob)
	stream := audio.New(sampleRate, surface, buildOptions(cfg), cfg.Passthrough)
	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Close()

	done := make(chan struct{})
	defer close(done)

	if cfg.Watch {
		configs := make(chan *config.Config)
		errs := make(chan error)
		if err := config.Watch(configPath, configs, errs, done); err != nil {
			return fmt.Errorf("can't watch config: %w", err)
		}
		go func() {
			for {
				select {
				case c := <-configs:
					debug.Log("config", "reloaded %s", configPath)
					stream.UpdateOptions(buildOptions(c))
				case err := <-errs:
					debug.Log("config", "watch error: %v", err)
				case <-done:
					return
				}
			}
		}()
	}

	p := tea.NewProgram(tui.NewModel(stream, surface), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
