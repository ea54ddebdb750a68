package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrNoImage is returned when a recipe has no image to open
var ErrNoImage = errors.New("recipe has no image")

// Launcher opens recipe image URLs in an external viewer
type Launcher struct {
	command string   // configured viewer command, empty for system default
	args    []string // additional arguments for the viewer
	goos    string
	logger  *slog.Logger

	// start runs the command without waiting for it
	start func(*exec.Cmd) error
}

// NewLauncher creates a Launcher for the configured viewer
func NewLauncher(cfg ViewerConfig, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: cfg.Command,
		args:    cfg.Args,
		goos:    runtime.GOOS,
		logger:  logger,
		start:   (*exec.Cmd).Start,
	}
}

// Open launches the viewer for rawURL. Only absolute http(s) URLs are accepted.
func (l *Launcher) Open(rawURL string) error {
	if rawURL == "" {
		return ErrNoImage
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", rawURL)
	}

	cmd := l.buildCommand(u.String())
	l.logger.Info("opening image", "command", cmd.Path, "args", cmd.Args[1:])
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to launch viewer: %w", err)
	}
	return nil
}

func (l *Launcher) buildCommand(target string) *exec.Cmd {
	// Tier 1: User configured a specific viewer
	if l.command != "" {
		args := append([]string{}, l.args...)

		// On macOS, launch GUI apps with 'open -a' if command not in PATH
		if l.goos == "darwin" {
			if _, err := exec.LookPath(l.command); err != nil {
				cmdArgs := []string{"-a", l.command}
				if len(args) > 0 {
					cmdArgs = append(cmdArgs, "--args")
					cmdArgs = append(cmdArgs, args...)
				}
				return exec.Command("open", append(cmdArgs, target)...)
			}
		}
		return exec.Command(l.command, append(args, target)...)
	}

	// Tier 2: System default handler
	switch l.goos {
	case "darwin":
		return exec.Command("open", target)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target)
	default:
		// Linux and other Unix-like systems
		return exec.Command("xdg-open", target)
	}
}
