package audio

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
)

type recordingLogger struct {
	mu     sync.Mutex
	debugs []string
}

func (r *recordingLogger) Debugf(format string, _ ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugs = append(r.debugs, format)
}
func (r *recordingLogger) Infof(_ string, _ ...interface{})  {}
func (r *recordingLogger) Warnf(_ string, _ ...interface{})  {}
func (r *recordingLogger) Errorf(_ string, _ ...interface{}) {}
func (r *recordingLogger) Close()                            {}

func (r *recordingLogger) debugCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.debugs)
}

func audioConfig(player, start, stop string) *config.Config {
	return &config.Config{
		Audio: config.AudioConfig{
			Player:     player,
			StartSound: start,
			StopSound:  stop,
		},
	}
}

func TestNewPlayer_NoPlayerConfigured(t *testing.T) {
	p := NewPlayer(audioConfig("", "start.oga", "stop.oga"), logging.NewNopLogger())
	_, ok := p.(*noopPlayer)
	assert.True(t, ok, "should return noopPlayer without a player command")

	// Must be silent no-ops.
	p.PlayStart()
	p.PlayStop()
}

func TestExecPlayer_MissingPlayerIsSwallowed(t *testing.T) {
	logger := &recordingLogger{}
	p := NewPlayer(audioConfig("/nonexistent/player", "start.oga", "stop.oga"), logger)

	// Neither call may panic or block on the broken player.
	p.PlayStart()
	p.PlayStop()

	assert.Equal(t, 2, logger.debugCount(), "failures should be logged at debug")
}

func TestExecPlayer_EmptySoundFileSkipsCue(t *testing.T) {
	logger := &recordingLogger{}
	p := NewPlayer(audioConfig("/nonexistent/player", "", ""), logger)

	p.PlayStart()
	p.PlayStop()

	assert.Equal(t, 0, logger.debugCount(), "empty cue files should not reach the player")
}

func TestExecPlayer_RunsConfiguredPlayer(t *testing.T) {
	logger := &recordingLogger{}
	// `true` exits immediately regardless of arguments.
	p := NewPlayer(audioConfig("true", "start.oga", ""), logger)

	p.PlayStart()

	// Give the reaper goroutine a moment; the call itself must not error.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, logger.debugCount())
}
