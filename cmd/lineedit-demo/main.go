// Command lineedit-demo is an interactive prompt built on the lineedit
// buffer. It prints the accepted text on exit.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lineedit"
	"github.com/iw2rmb/lineedit/internal/config"
	"github.com/iw2rmb/lineedit/internal/logging"
	"github.com/iw2rmb/lineedit/killring"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lineedit-demo", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("LINEEDIT_CONFIG"), "path to a TOML, YAML or JSON config file")
	text := fs.String("text", "", "initial text")
	multiline := fs.Bool("multiline", false, "enter inserts a newline; alt+enter accepts")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Println("lineedit-demo", lineedit.VersionTag())
		return nil
	}

	loader := config.NewLoader(*configPath)
	defer loader.Close()
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	clip := systemClipboard{}
	ring := killring.New(cfg.KillRingSize, killring.WithClipboard(clip))
	m := newModel(cfg, *text, *multiline, ring, clip, logger, lipgloss.NewRenderer(os.Stdout))

	p := tea.NewProgram(m)

	if *configPath != "" {
		loader.OnChange(func(c *config.Config) { p.Send(configMsg{cfg: c}) })
		if err := loader.Watch(); err != nil {
			logger.Warn("config watch disabled", "err", err)
		}
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case err := <-loader.Errors():
				p.Send(reloadErrMsg{err: err})
			case <-done:
				return
			}
		}
	}()

	logger.Info("starting", "max_len", cfg.MaxLen, "word", cfg.Word, "multiline", *multiline)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.accepted {
		fmt.Println(fm.buf.Text())
	}
	return nil
}
