package audio

import (
	"os/exec"

	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
)

// Player plays the start and stop cues. Cues are best-effort: a missing
// player or sound file must never fail a toggle.
type Player interface {
	PlayStart()
	PlayStop()
}

type execPlayer struct {
	player string
	start  string
	stop   string
	logger logging.Logger
}

// NewPlayer builds the cue player from configuration. Without a configured
// player command the cues are silent.
func NewPlayer(conf *config.Config, logger logging.Logger) Player {
	if conf.Audio.Player == "" {
		return &noopPlayer{}
	}
	return &execPlayer{
		player: conf.Audio.Player,
		start:  conf.Audio.StartSound,
		stop:   conf.Audio.StopSound,
		logger: logger,
	}
}

func (p *execPlayer) PlayStart() {
	p.play(p.start)
}

func (p *execPlayer) PlayStop() {
	p.play(p.stop)
}

func (p *execPlayer) play(file string) {
	if file == "" {
		return
	}

	cmd := exec.Command(p.player, file)
	if err := cmd.Start(); err != nil {
		p.logger.Debugf("audio cue %s failed: %v", file, err)
		return
	}

	// Reap the player so a long-running server never accumulates zombies.
	go func() { _ = cmd.Wait() }()
}

type noopPlayer struct{}

func (n *noopPlayer) PlayStart() {}
func (n *noopPlayer) PlayStop()  {}
