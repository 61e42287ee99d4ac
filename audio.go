package rl

import (
	"sync"
	"time"

	"github.com/gogpu/rl/native"
)

var audioSlot struct {
	mu   sync.Mutex
	open *AudioDevice
}

// AudioDevice is the single native audio device. Sounds and music streams
// are created through it and released, last acquired first, when it
// closes. The device does not need a window.
type AudioDevice struct {
	lib    native.Library
	owned  *tracker
	closed bool
}

// OpenAudio initializes the audio device. Only one device may be open at a
// time; a second call fails with ErrAudioOpen.
func OpenAudio() (*AudioDevice, error) {
	const op = "OpenAudio"
	l, err := currentLibrary()
	if err != nil {
		return nil, stateError(op, err)
	}
	audioSlot.mu.Lock()
	defer audioSlot.mu.Unlock()
	if audioSlot.open != nil {
		return nil, stateError(op, ErrAudioOpen)
	}
	l.InitAudioDevice()
	if !l.IsAudioDeviceReady() {
		return nil, stateError(op, ErrInitFailed)
	}
	a := &AudioDevice{lib: l, owned: newTracker("audio")}
	audioSlot.open = a
	Logger().Info("rl: audio device opened", "backend", l.Name())
	return a, nil
}

// Close releases every sound and music stream still open, last acquired
// first, and shuts the device down. A second call returns ErrAudioClosed.
func (a *AudioDevice) Close() error {
	if a.closed {
		return stateError("AudioDevice.Close", ErrAudioClosed)
	}
	ReleasePending()
	released := a.owned.closeAll()
	a.lib.CloseAudioDevice()
	a.closed = true

	audioSlot.mu.Lock()
	if audioSlot.open == a {
		audioSlot.open = nil
	}
	audioSlot.mu.Unlock()
	Logger().Info("rl: audio device closed", "released", released)
	return nil
}

func (a *AudioDevice) requireOpen(op string) error {
	if a.closed {
		return stateError(op, ErrAudioClosed)
	}
	return nil
}

// Wave is decoded audio in CPU memory.
type Wave struct {
	resource[native.Wave]
}

// LoadWave decodes an audio file into memory. Waves do not need the
// audio device.
func LoadWave(path string) (*Wave, error) {
	const op = "LoadWave"
	p, err := marshalPath(op, path)
	if err != nil {
		return nil, err
	}
	l, err := currentLibrary()
	if err != nil {
		return nil, stateError(op, err)
	}
	st, err := adopt(waveKind, l, nil, l.LoadWave(p), op, path)
	if err != nil {
		return nil, err
	}
	return &Wave{resource[native.Wave]{st}}, nil
}

// Frames returns the number of sample frames.
func (w *Wave) Frames() int { return int(w.handle("Wave.Frames").FrameCount) }

// SampleRate returns the sample rate in Hz.
func (w *Wave) SampleRate() int { return int(w.handle("Wave.SampleRate").SampleRate) }

// Channels returns the number of interleaved channels.
func (w *Wave) Channels() int { return int(w.handle("Wave.Channels").Channels) }

// Duration returns the playing time of the wave.
func (w *Wave) Duration() time.Duration {
	raw := w.handle("Wave.Duration")
	if raw.SampleRate == 0 {
		return 0
	}
	return time.Duration(raw.FrameCount) * time.Second / time.Duration(raw.SampleRate)
}

// Sound is an audio clip fully loaded into an audio buffer.
type Sound struct {
	resource[native.Sound]
}

func (a *AudioDevice) newSound(raw native.Sound, op, path string) (*Sound, error) {
	st, err := adopt(soundKind, a.lib, a.owned, raw, op, path)
	if err != nil {
		return nil, err
	}
	return &Sound{resource[native.Sound]{st}}, nil
}

// LoadSound loads an audio file into a playable sound.
func (a *AudioDevice) LoadSound(path string) (*Sound, error) {
	const op = "LoadSound"
	p, err := marshalPath(op, path)
	if err != nil {
		return nil, err
	}
	if err := a.requireOpen(op); err != nil {
		return nil, err
	}
	return a.newSound(a.lib.LoadSound(p), op, path)
}

// LoadSoundFromWave copies w into a playable sound. w stays owned by the
// caller.
func (a *AudioDevice) LoadSoundFromWave(w *Wave) (*Sound, error) {
	const op = "LoadSoundFromWave"
	if err := a.requireOpen(op); err != nil {
		return nil, err
	}
	return a.newSound(a.lib.LoadSoundFromWave(w.handle(op)), op, "")
}

// Play starts the sound from the beginning.
func (s *Sound) Play() { s.st.lib.PlaySound(s.handle("Sound.Play")) }

// Stop stops the sound.
func (s *Sound) Stop() { s.st.lib.StopSound(s.handle("Sound.Stop")) }

// Playing reports whether the sound is playing.
func (s *Sound) Playing() bool { return s.st.lib.IsSoundPlaying(s.handle("Sound.Playing")) }

// SetVolume sets the volume; 1 is full volume.
func (s *Sound) SetVolume(volume float32) {
	s.st.lib.SetSoundVolume(s.handle("Sound.SetVolume"), volume)
}

// Music is an audio stream decoded while it plays. Call Update once per
// frame to keep the stream buffers filled.
type Music struct {
	resource[native.Music]
}

// LoadMusic opens an audio file for streaming.
func (a *AudioDevice) LoadMusic(path string) (*Music, error) {
	const op = "LoadMusic"
	p, err := marshalPath(op, path)
	if err != nil {
		return nil, err
	}
	if err := a.requireOpen(op); err != nil {
		return nil, err
	}
	st, err := adopt(musicKind, a.lib, a.owned, a.lib.LoadMusicStream(p), op, path)
	if err != nil {
		return nil, err
	}
	return &Music{resource[native.Music]{st}}, nil
}

// Play starts streaming.
func (m *Music) Play() { m.st.lib.PlayMusicStream(m.handle("Music.Play")) }

// Update refills the stream buffers.
func (m *Music) Update() { m.st.lib.UpdateMusicStream(m.handle("Music.Update")) }

// Stop stops streaming and rewinds.
func (m *Music) Stop() { m.st.lib.StopMusicStream(m.handle("Music.Stop")) }

// Playing reports whether the stream is playing.
func (m *Music) Playing() bool { return m.st.lib.IsMusicStreamPlaying(m.handle("Music.Playing")) }

// Length returns the total playing time.
func (m *Music) Length() time.Duration {
	sec := m.st.lib.GetMusicTimeLength(m.handle("Music.Length"))
	return time.Duration(float64(sec) * float64(time.Second))
}
