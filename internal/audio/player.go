package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/akyairhashvil/meditimer/internal/config"
)

// Player plays audio assets.
//
//go:generate mockgen -source=player.go -destination=../mocks/mock_player.go -package=mocks
type Player interface {
	Play(ctx context.Context, asset string, loop bool, volume float64) error
	Stop() error
}

// PlaybackError reports that an asset could not be started.
type PlaybackError struct {
	Asset string
	Err   error
}

func (e *PlaybackError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("play %s: %v", e.Asset, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }

// ExecPlayer plays through an external command such as ffplay.
// Only one process runs at a time; Play replaces the previous one.
type ExecPlayer struct {
	cfg      config.AudioConfig
	lookPath func(string) (string, error)

	mu  sync.Mutex
	cmd *exec.Cmd
}

func NewExecPlayer(cfg config.AudioConfig) *ExecPlayer {
	return &ExecPlayer{cfg: cfg, lookPath: exec.LookPath}
}

// Play starts asset; ctx bounds the lifetime of the player process.
func (p *ExecPlayer) Play(ctx context.Context, asset string, loop bool, volume float64) error {
	if err := p.Stop(); err != nil {
		return &PlaybackError{Asset: asset, Err: err}
	}
	bin, err := p.lookPath(p.cfg.Command)
	if err != nil {
		return &PlaybackError{Asset: asset, Err: err}
	}
	path := filepath.Join(p.cfg.AssetsDir, asset)
	if _, err := os.Stat(path); err != nil {
		return &PlaybackError{Asset: asset, Err: err}
	}

	cmd := exec.CommandContext(ctx, bin, p.args(path, loop, volume)...)
	if err := cmd.Start(); err != nil {
		return &PlaybackError{Asset: asset, Err: err}
	}
	p.mu.Lock()
	p.cmd = cmd
	p.mu.Unlock()
	go func() { _ = cmd.Wait() }()
	return nil
}

func (p *ExecPlayer) args(path string, loop bool, volume float64) []string {
	args := append([]string{}, p.cfg.Args...)
	if loop {
		args = append(args, p.cfg.LoopArgs...)
	}
	if p.cfg.VolumeArg != "" {
		args = append(args, p.cfg.VolumeArg, fmt.Sprintf("%d", int(volume*100+0.5)))
	}
	return append(args, path)
}

func (p *ExecPlayer) Stop() error {
	p.mu.Lock()
	cmd := p.cmd
	p.cmd = nil
	p.mu.Unlock()
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
