// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import "github.com/gogpu/rl/native"

func (f *Library) LoadShader(vsFileName, fsFileName native.CString) native.Shader {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadShader(%q, %q)", vsFileName.String(), fsFileName.String())
	f.requireWindow("LoadShader")
	if !f.ready {
		return native.Shader{}
	}
	// A stage that was given but cannot be read fails the whole program,
	// and the native library hands back the default shader.
	for _, p := range []native.CString{vsFileName, fsFileName} {
		if p.IsNull() {
			continue
		}
		if _, ok := f.lookup(p); !ok {
			return f.defaultShader
		}
	}
	if vsFileName.IsNull() && fsFileName.IsNull() {
		return f.defaultShader
	}
	s := native.Shader{ID: f.id(), Locs: token()}
	f.shaders[s.ID] = true
	f.loads[KindShader]++
	return s
}

func (f *Library) UnloadShader(shader native.Shader) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadShader(%d)", shader.ID)
	if shader.ID == f.defaultShader.ID {
		f.violate("UnloadShader of the default shader")
		return
	}
	f.release(KindShader, f.shaders[shader.ID], "UnloadShader")
	delete(f.shaders, shader.ID)
}

func (f *Library) ShaderIDDefault() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.defaultShader.ID
}

func (f *Library) GetShaderLocation(shader native.Shader, uniformName native.CString) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetShaderLocation(%d, %q)", shader.ID, uniformName.String())
	if !f.shaders[shader.ID] {
		return -1
	}
	// Stable fake locations derived from the name.
	var loc int32
	for _, b := range []byte(uniformName.String()) {
		loc = (loc*31 + int32(b)) & 0xff
	}
	return loc
}

func (f *Library) SetShaderValue(shader native.Shader, loc int32, value []float32, uniformType native.UniformType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetShaderValue(%d, %d, %v, %d)", shader.ID, loc, value, uniformType)
	if !f.shaders[shader.ID] {
		f.violate("SetShaderValue on unknown shader %d", shader.ID)
	}
}
