package rl

import (
	"github.com/gogpu/rl/native"
)

// Shader is a compiled GPU program.
type Shader struct {
	resource[native.Shader]
}

// LoadShader compiles a program from a vertex and a fragment shader file.
// An empty path selects the default stage; at least one must be given.
func (w *Window) LoadShader(vsPath, fsPath string) (*Shader, error) {
	const op = "LoadShader"
	vs, err := marshalOptionalPath(op, vsPath)
	if err != nil {
		return nil, err
	}
	fs, err := marshalOptionalPath(op, fsPath)
	if err != nil {
		return nil, err
	}
	if err := w.requireOpen(op); err != nil {
		return nil, err
	}
	path := fsPath
	if path == "" {
		path = vsPath
	}
	if vs.IsNull() && fs.IsNull() {
		return nil, loadError(op, path)
	}
	raw := w.lib.LoadShader(vs, fs)
	// A failed compile hands back the default program.
	if raw.ID == w.lib.ShaderIDDefault() {
		return nil, loadError(op, path)
	}
	st, err := adopt(shaderKind, w.lib, w.owned, raw, op, path)
	if err != nil {
		return nil, err
	}
	return &Shader{resource[native.Shader]{st}}, nil
}

// Location returns the location of a uniform, or -1 if the program has
// no uniform of that name.
func (s *Shader) Location(name string) (int, error) {
	const op = "Shader.Location"
	n, err := marshalPath(op, name)
	if err != nil {
		return -1, err
	}
	return int(s.st.lib.GetShaderLocation(s.handle(op), n)), nil
}

// SetValue sets a float uniform. value must hold exactly as many
// components as typ.
func (s *Shader) SetValue(loc int, value []float32, typ native.UniformType) error {
	const op = "Shader.SetValue"
	raw := s.handle(op)
	if n := typ.Components(); n == 0 || len(value) != n {
		return errorf(op, KindOther, "%w: %d values", ErrUniformType, len(value))
	}
	if loc < 0 {
		return nil
	}
	s.st.lib.SetShaderValue(raw, int32(loc), value, typ)
	return nil
}
