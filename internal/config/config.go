package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/diegok/pong/internal/game"
)

// Default values for configuration
const (
	DefaultWidth        = game.DefaultWidth
	DefaultHeight       = game.DefaultHeight
	DefaultPaddleLength = game.InitialPaddleLength
	DefaultSpeed        = game.InitialSpeed
	DefaultAcceleration = game.Acceleration
	DefaultGoalDelay    = game.GoalDelay
	DefaultLogLevel     = "info"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the application configuration
type Config struct {
	Width        float64       `toml:"width"`
	Height       float64       `toml:"height"`
	PaddleLength float64       `toml:"paddle_length"`
	BallSpeed    float64       `toml:"ball_speed"`
	PaddleSpeed  float64       `toml:"paddle_speed"`
	Acceleration float64       `toml:"acceleration"`
	GoalDelay    time.Duration `toml:"goal_delay"`
	Sound        bool          `toml:"sound"`
	AnglePaddle  bool          `toml:"angle_paddle"`
	Seed         int64         `toml:"seed"`
	LogFile      string        `toml:"log"`
	LogLevel     string        `toml:"log_level"`

	// ConfigFile is the TOML file the values were read from, if any.
	ConfigFile string `toml:"-"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		PaddleLength: DefaultPaddleLength,
		BallSpeed:    DefaultSpeed,
		PaddleSpeed:  DefaultSpeed,
		Acceleration: DefaultAcceleration,
		GoalDelay:    DefaultGoalDelay,
		Sound:        false,
		AnglePaddle:  true,
		LogLevel:     DefaultLogLevel,
	}
}

// ParseArgs parses command line arguments and returns a Config.
// Values come from the defaults, then the --config file, then the flags
// given explicitly on the command line.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)

	d := Default()
	file := fs.String("config", "", "TOML configuration file")
	width := fs.Float64("width", d.Width, "playfield width (>0)")
	height := fs.Float64("height", d.Height, "playfield height (>0)")
	paddle := fs.Float64("paddle-length", d.PaddleLength, "paddle length (>0, < height)")
	ballSpeed := fs.Float64("ball-speed", d.BallSpeed, "initial ball ticks per second (>0)")
	paddleSpeed := fs.Float64("paddle-speed", d.PaddleSpeed, "initial paddle ticks per second (>0)")
	accel := fs.Float64("acceleration", d.Acceleration, "speed factor per paddle hit (>=1)")
	goalDelay := fs.Duration("goal-delay", d.GoalDelay, "pause after a goal")
	sound := fs.Bool("sound", d.Sound, "start with sound on")
	angle := fs.Bool("angle-paddle", d.AnglePaddle, "start with angling paddles on")
	seed := fs.Int64("seed", 0, "random seed (0 = from clock)")
	logFile := fs.String("log", "", "write logs to this file")
	logLevel := fs.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := Default()
	if *file != "" {
		if err := cfg.LoadFile(*file); err != nil {
			return nil, err
		}
	}

	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "paddle-length":
			cfg.PaddleLength = *paddle
		case "ball-speed":
			cfg.BallSpeed = *ballSpeed
		case "paddle-speed":
			cfg.PaddleSpeed = *paddleSpeed
		case "acceleration":
			cfg.Acceleration = *accel
		case "goal-delay":
			cfg.GoalDelay = *goalDelay
		case "sound":
			cfg.Sound = *sound
		case "angle-paddle":
			cfg.AnglePaddle = *angle
		case "seed":
			cfg.Seed = *seed
		case "log":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a TOML file on top of the current values. Keys missing
// from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}
	c.ConfigFile = path
	return nil
}

// Validate checks the values for consistency.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("playfield must be larger than 0x0, got %gx%g", c.Width, c.Height)
	}
	if c.PaddleLength <= 0 || c.PaddleLength >= c.Height {
		return fmt.Errorf("paddle length must be between 0 and the field height %g, got %g", c.Height, c.PaddleLength)
	}
	if c.BallSpeed <= 0 || c.PaddleSpeed <= 0 {
		return fmt.Errorf("speeds must be positive, got ball %g and paddle %g", c.BallSpeed, c.PaddleSpeed)
	}
	if c.Acceleration < 1 {
		return fmt.Errorf("acceleration must be at least 1, got %g", c.Acceleration)
	}
	if c.GoalDelay < 0 {
		return errors.New("goal delay cannot be negative")
	}
	if !validLevel(c.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}
	return nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

// Settings converts the configuration into game settings.
func (c *Config) Settings() game.Settings {
	return game.Settings{
		Width:        c.Width,
		Height:       c.Height,
		PaddleLength: c.PaddleLength,
		BallSpeed:    c.BallSpeed,
		PaddleSpeed:  c.PaddleSpeed,
		Acceleration: c.Acceleration,
		GoalDelay:    c.GoalDelay,
		SoundOn:      c.Sound,
		AnglePaddle:  c.AnglePaddle,
		Seed:         c.Seed,
	}
}
