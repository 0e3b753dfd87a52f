package game

import (
	"errors"
	"fmt"
	"strings"
)

// OptionName identifies a toggle that can be switched while playing.
type OptionName string

const (
	OptionSound       OptionName = "sound"
	OptionAnglePaddle OptionName = "anglePaddle"
)

// ErrUnknownOption is returned for option names the game does not know.
var ErrUnknownOption = errors.New("unknown option")

// Options holds the in-game toggles. Listeners registered with OnChange are
// called after every change.
type Options struct {
	soundOn     bool
	anglePaddle bool
	listeners   []func(*Options)
}

func NewOptions(soundOn, anglePaddle bool) *Options {
	return &Options{soundOn: soundOn, anglePaddle: anglePaddle}
}

// ParseOptionName maps a user-facing option name to an OptionName,
// case-insensitively. "angle" is accepted for anglePaddle.
func ParseOptionName(s string) (OptionName, error) {
	switch strings.ToLower(s) {
	case "sound":
		return OptionSound, nil
	case "anglepaddle", "angle":
		return OptionAnglePaddle, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOption, s)
}

func (o *Options) SoundOn() bool     { return o.soundOn }
func (o *Options) AnglePaddle() bool { return o.anglePaddle }

// Get returns the current value of an option.
func (o *Options) Get(name OptionName) (bool, error) {
	switch name {
	case OptionSound:
		return o.soundOn, nil
	case OptionAnglePaddle:
		return o.anglePaddle, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownOption, name)
}

// Set changes an option. Listeners only hear about actual changes.
func (o *Options) Set(name OptionName, on bool) error {
	cur, err := o.Get(name)
	if err != nil {
		return err
	}
	if cur == on {
		return nil
	}

	switch name {
	case OptionSound:
		o.soundOn = on
	case OptionAnglePaddle:
		o.anglePaddle = on
	}

	for _, fn := range o.listeners {
		fn(o)
	}
	return nil
}

// Toggle flips an option.
func (o *Options) Toggle(name OptionName) error {
	cur, err := o.Get(name)
	if err != nil {
		return err
	}
	return o.Set(name, !cur)
}

// OnChange registers fn to be called after every option change.
func (o *Options) OnChange(fn func(*Options)) {
	o.listeners = append(o.listeners, fn)
}

// Summary renders the options line shown under the field, e.g.
// "Options: Sound (1) OFF  Angling Paddle (2) ON  ".
func (o *Options) Summary() string {
	var sb strings.Builder
	sb.WriteString("Options: ")
	sb.WriteString("Sound (1) ")
	sb.WriteString(onOff(o.soundOn))
	sb.WriteString("  ")
	sb.WriteString("Angling Paddle (2) ")
	sb.WriteString(onOff(o.anglePaddle))
	sb.WriteString("  ")
	return sb.String()
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
