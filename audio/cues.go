// Package audio plays short feedback tones for operator commands
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a feedback sound
type Cue uint8

const (
	CueNone Cue = iota
	CueSelect
	CueCommand
	CueWindowOpen
	CueWindowClose
	CueError
)

const (
	defaultSampleRate = beep.SampleRate(44100)
	defaultVolume     = 0.4

	toneAttack         = 5 * time.Millisecond
	toneRelease        = 30 * time.Millisecond
	selectDuration     = 60 * time.Millisecond
	commandDuration    = 80 * time.Millisecond
	windowNoteDuration = 90 * time.Millisecond
	errorDuration      = 150 * time.Millisecond
)

// Speaker hooks; tests swap them to run without an audio device
var (
	speakerInit  = speaker.Init
	speakerPlay  = speaker.Play
	speakerClear = speaker.Clear
	speakerClose = speaker.Close
)

// Player mixes cue sounds into the speaker
// The speaker is opened on the first audible cue; failures leave the player muted
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	initErr     error

	enabled atomic.Bool
	played  atomic.Int64
}

// NewPlayer creates a player; enabled selects the initial mute state
func NewPlayer(enabled bool) *Player {
	p := &Player{
		rate:   defaultSampleRate,
		volume: defaultVolume,
		mixer:  &beep.Mixer{},
	}
	p.enabled.Store(enabled)
	return p
}

// Init opens the speaker; safe to call repeatedly
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initLocked()
}

func (p *Player) initLocked() error {
	if p.initialized || p.initErr != nil {
		return p.initErr
	}
	if err := speakerInit(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.initErr = err
		p.enabled.Store(false)
		return err
	}
	speakerPlay(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues are audible
func (p *Player) Enabled() bool {
	return p.enabled.Load()
}

// SetEnabled mutes or unmutes the player
func (p *Player) SetEnabled(on bool) {
	p.enabled.Store(on)
}

// Played returns the number of cues queued on the mixer
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Play queues the sound for c; no-op while muted
func (p *Player) Play(c Cue) {
	if !p.enabled.Load() {
		return
	}
	s := CueStreamer(c, p.rate, p.volume)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.initLocked(); err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
}

// Close drops queued sounds and releases the speaker
// A later audible cue reopens it
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speakerClear()
	speakerClose()
	p.mixer = &beep.Mixer{}
	p.initialized = false
}
