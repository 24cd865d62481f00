// Package player hands trailers off to an external video player.
package player

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Waddenn/streamflix/internal/config"
)

// ArgsEnv holds extra player arguments, split on whitespace.
const ArgsEnv = "STREAMFLIX_PLAYER_ARGS"

// EmbedURL is the autoplaying, chrome-free embed address for a video key.
func EmbedURL(key string, muted bool) string {
	mute := "0"
	if muted {
		mute = "1"
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&mute=%s&controls=0&showinfo=0&rel=0&modestbranding=1",
		url.PathEscape(key), mute)
}

// WatchURL is the regular watch page for a video key.
func WatchURL(key string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(key)
}

// Args builds the player command line for one video.
func Args(title, key string, muted bool) []string {
	mute := "no"
	if muted {
		mute = "yes"
	}
	args := []string{
		"--force-window=yes",
		"--msg-level=all=warn",
		fmt.Sprintf("--title=%s", title),
		fmt.Sprintf("--mute=%s", mute),
	}
	if override := os.Getenv(ArgsEnv); override != "" {
		args = append(args, strings.Fields(override)...)
	}
	return append(args, WatchURL(key))
}

// Open starts the configured player without waiting for it. The process is
// reaped in the background and its exit is logged.
func Open(cfg config.Player, title, key string, muted bool, logger zerolog.Logger) error {
	if key == "" {
		return fmt.Errorf("open player: no video selected")
	}
	command := cfg.Command
	if command == "" {
		command = "mpv"
	}
	bin, err := exec.LookPath(command)
	if err != nil {
		return fmt.Errorf("open player: %w", err)
	}

	cmd := exec.Command(bin, Args(title, key, muted)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open player: %w", err)
	}

	log := logger.With().Str("component", "player").Str("key", key).Int("pid", cmd.Process.Pid).Logger()
	log.Info().Str("title", title).Bool("muted", muted).Msg("player started")
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warn().Err(err).Msg("player exited")
			return
		}
		log.Debug().Msg("player exited")
	}()
	return nil
}
