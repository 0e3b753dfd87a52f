package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/pong/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// bufferSize keeps speaker latency around one frame.
const bufferSize = time.Second / 30

var (
	mu    sync.Mutex
	ready bool
)

// Init opens the speaker. Calling it again is a no-op.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	ready = true
	return nil
}

// Close releases the speaker opened by Init.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		return
	}
	speaker.Close()
	ready = false
}

func speakerReady() bool {
	mu.Lock()
	defer mu.Unlock()
	return ready
}

// Clip identifies one of the game sounds.
type Clip int

const (
	ClipNone Clip = iota
	ClipGoal
	ClipWall
	ClipLeft
	ClipRight
)

func (c Clip) String() string {
	switch c {
	case ClipGoal:
		return "goal"
	case ClipWall:
		return "wall"
	case ClipLeft:
		return "left"
	case ClipRight:
		return "right"
	}
	return "none"
}

// ClipFor returns the clip played for a game event.
func ClipFor(ev game.Event) Clip {
	switch ev.Kind {
	case game.EventGoal:
		return ClipGoal
	case game.EventWallBounce:
		return ClipWall
	case game.EventPaddleHit:
		if ev.Side == game.Left {
			return ClipLeft
		}
		return ClipRight
	}
	return ClipNone
}

// waveform maps a phase in cycles to a sample in [-1, 1].
type waveform func(phase float64) float64

func sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

// note is one pitched step of a clip. The level decays linearly from
// volume to volume*(1-decay) over the note.
type note struct {
	wave   waveform
	freq   float64
	length time.Duration
	volume float64
	decay  float64
}

// clipNotes holds the score of every clip. The goal jingle steps down
// in both pitch and level.
var clipNotes = map[Clip][]note{
	ClipGoal: {
		{square, 660, 100 * time.Millisecond, 0.25, 0.2},
		{square, 440, 100 * time.Millisecond, 0.2, 0.2},
		{square, 330, 150 * time.Millisecond, 0.15, 0.9},
	},
	ClipWall: {
		{sine, 440, 30 * time.Millisecond, 0.3, 0.5},
	},
	ClipLeft: {
		{square, 880, 50 * time.Millisecond, 0.2, 0.4},
	},
	ClipRight: {
		{square, 784, 50 * time.Millisecond, 0.2, 0.4},
	},
}

// Stream builds a fresh streamer for the clip, or nil for ClipNone.
func (c Clip) Stream() beep.Streamer {
	notes, ok := clipNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.stream()
	}
	return beep.Seq(parts...)
}

// Peak returns the loudest level the clip reaches.
func (c Clip) Peak() float64 {
	peak := 0.0
	for _, n := range clipNotes[c] {
		peak = max(peak, n.volume)
	}
	return peak
}

func (n note) stream() beep.Streamer {
	total := sampleRate.N(n.length)
	step := n.freq / float64(sampleRate)
	i := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			if i >= total {
				return j, false
			}
			level := n.volume * (1 - n.decay*float64(i)/float64(total))
			v := level * n.wave(float64(i)*step)
			samples[j][0] = v
			samples[j][1] = v
			i++
		}
		return len(samples), true
	})
}

// Player plays the clip of each game event while enabled.
type Player struct {
	enabled atomic.Bool
	play    func(beep.Streamer)
}

// NewPlayer returns a player feeding the speaker.
func NewPlayer(enabled bool) *Player {
	return newPlayer(enabled, playSpeaker)
}

func newPlayer(enabled bool, play func(beep.Streamer)) *Player {
	p := &Player{play: play}
	p.enabled.Store(enabled)
	return p
}

func playSpeaker(s beep.Streamer) {
	if !speakerReady() {
		return
	}
	speaker.Play(s)
}

// SetEnabled turns playback on or off.
func (p *Player) SetEnabled(on bool) {
	p.enabled.Store(on)
}

// Enabled reports whether events produce sound.
func (p *Player) Enabled() bool {
	return p.enabled.Load()
}

// Bind keeps the player in sync with the sound option.
func (p *Player) Bind(opts *game.Options) {
	p.SetEnabled(opts.SoundOn())
	opts.OnChange(func(o *game.Options) {
		p.SetEnabled(o.SoundOn())
	})
}

// Handle plays the clip for ev. It matches game.Listener.
func (p *Player) Handle(ev game.Event) {
	if !p.Enabled() {
		return
	}
	if s := ClipFor(ev).Stream(); s != nil {
		p.play(s)
	}
}
