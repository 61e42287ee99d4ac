// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import "github.com/gogpu/rl/native"

func (f *Library) InitAudioDevice() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InitAudioDevice()")
	if f.audioReady {
		f.violate("InitAudioDevice while ready")
		return
	}
	f.audioReady = true
	f.loads[KindAudioDevice]++
}

func (f *Library) CloseAudioDevice() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CloseAudioDevice()")
	f.release(KindAudioDevice, f.audioReady, "CloseAudioDevice")
	f.audioReady = false
}

func (f *Library) IsAudioDeviceReady() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.audioReady
}

func frameCount(a Asset) uint32 {
	if a.Frames > 0 {
		return uint32(a.Frames)
	}
	return 44100
}

func (f *Library) LoadWave(fileName native.CString) native.Wave {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadWave(%q)", fileName.String())
	a, ok := f.lookup(fileName)
	if !ok {
		return native.Wave{}
	}
	w := native.Wave{FrameCount: frameCount(a), SampleRate: 44100, SampleSize: 16, Channels: 2, Data: token()}
	f.waves[w.Data] = true
	f.loads[KindWave]++
	return w
}

func (f *Library) UnloadWave(wave native.Wave) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadWave()")
	f.release(KindWave, f.waves[wave.Data], "UnloadWave")
	delete(f.waves, wave.Data)
}

// newSound allocates an audio buffer. Caller holds f.mu.
func (f *Library) newSound(frameCount uint32) native.Sound {
	if !f.audioReady {
		return native.Sound{}
	}
	s := native.Sound{
		Stream:     native.AudioStream{Buffer: token(), SampleRate: 44100, SampleSize: 32, Channels: 2},
		FrameCount: frameCount,
	}
	f.sounds[s.Stream.Buffer] = true
	f.loads[KindSound]++
	return s
}

func (f *Library) LoadSound(fileName native.CString) native.Sound {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadSound(%q)", fileName.String())
	a, ok := f.lookup(fileName)
	if !ok {
		return native.Sound{}
	}
	return f.newSound(frameCount(a))
}

func (f *Library) LoadSoundFromWave(wave native.Wave) native.Sound {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadSoundFromWave()")
	if !f.waves[wave.Data] {
		f.violate("LoadSoundFromWave of unknown wave")
		return native.Sound{}
	}
	return f.newSound(wave.FrameCount)
}

func (f *Library) UnloadSound(sound native.Sound) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadSound()")
	f.release(KindSound, f.sounds[sound.Stream.Buffer], "UnloadSound")
	delete(f.sounds, sound.Stream.Buffer)
	delete(f.playing, sound.Stream.Buffer)
}

func (f *Library) PlaySound(sound native.Sound) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("PlaySound()")
	f.playing[sound.Stream.Buffer] = f.sounds[sound.Stream.Buffer]
}

func (f *Library) StopSound(sound native.Sound) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("StopSound()")
	delete(f.playing, sound.Stream.Buffer)
}

func (f *Library) IsSoundPlaying(sound native.Sound) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing[sound.Stream.Buffer]
}

func (f *Library) SetSoundVolume(sound native.Sound, volume float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetSoundVolume(%g)", volume)
}

func (f *Library) LoadMusicStream(fileName native.CString) native.Music {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadMusicStream(%q)", fileName.String())
	a, ok := f.lookup(fileName)
	if !ok || !f.audioReady {
		return native.Music{}
	}
	m := native.Music{
		Stream:     native.AudioStream{Buffer: token(), SampleRate: 44100, SampleSize: 32, Channels: 2},
		FrameCount: frameCount(a),
		Looping:    true,
		CtxData:    token(),
	}
	f.musics[m.CtxData] = true
	f.loads[KindMusic]++
	return m
}

func (f *Library) UnloadMusicStream(music native.Music) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadMusicStream()")
	f.release(KindMusic, f.musics[music.CtxData], "UnloadMusicStream")
	delete(f.musics, music.CtxData)
	delete(f.playing, music.CtxData)
}

func (f *Library) PlayMusicStream(music native.Music) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("PlayMusicStream()")
	f.playing[music.CtxData] = f.musics[music.CtxData]
}

func (f *Library) UpdateMusicStream(music native.Music) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateMusicStream()")
}

func (f *Library) StopMusicStream(music native.Music) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("StopMusicStream()")
	delete(f.playing, music.CtxData)
}

func (f *Library) IsMusicStreamPlaying(music native.Music) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing[music.CtxData]
}

func (f *Library) GetMusicTimeLength(music native.Music) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if music.Stream.SampleRate == 0 {
		return 0
	}
	return float32(music.FrameCount) / float32(music.Stream.SampleRate)
}
