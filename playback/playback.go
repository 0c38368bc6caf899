package playback

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnsupportedFormat is returned for files the backend cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Player is the playback contract the canvas relies on.
type Player interface {
	Play()
	Pause()
	Stop() error
	Seek(offset time.Duration) error
	SetVolume(volume float64)
	IsPlaying() bool
	Close() error
}

// Opener creates players for audio files.
type Opener interface {
	Open(path string) (Player, error)
}

// Supported reports whether the backend can decode path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".wav", ".ogg":
		return true
	}
	return false
}

// Backend plays files through an ebiten audio context. Only one Backend
// may exist per process.
type Backend struct {
	ctx *audio.Context
}

func NewBackend(sampleRate int) *Backend {
	return &Backend{ctx: audio.NewContext(sampleRate)}
}

func (b *Backend) Open(path string) (Player, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	stream, err := b.decode(path, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	p, err := b.ctx.NewPlayer(stream)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating player for %s: %w", path, err)
	}
	return &filePlayer{player: p, file: f}, nil
}

func (b *Backend) decode(path string, f *os.File) (io.ReadSeeker, error) {
	sr := b.ctx.SampleRate()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.DecodeWithSampleRate(sr, f)
	case ".wav":
		return wav.DecodeWithSampleRate(sr, f)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sr, f)
	}
	return nil, ErrUnsupportedFormat
}

type filePlayer struct {
	player *audio.Player
	file   *os.File
}

func (p *filePlayer) Play()                    { p.player.Play() }
func (p *filePlayer) Pause()                   { p.player.Pause() }
func (p *filePlayer) IsPlaying() bool          { return p.player.IsPlaying() }
func (p *filePlayer) SetVolume(volume float64) { p.player.SetVolume(volume) }

// Stop pauses and rewinds to the start.
func (p *filePlayer) Stop() error {
	p.player.Pause()
	return p.Seek(0)
}

func (p *filePlayer) Seek(offset time.Duration) error {
	if err := p.player.SetPosition(offset); err != nil {
		return fmt.Errorf("seeking to %s: %w", offset, err)
	}
	return nil
}

func (p *filePlayer) Close() error {
	perr := p.player.Close()
	ferr := p.file.Close()
	return errors.Join(perr, ferr)
}
