package rl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	goerrors "github.com/go-errors/errors"

	"github.com/gogpu/rl/native"
)

// Sentinel errors. Use errors.Is to test for them; most are wrapped in an
// *Error that names the failing operation.
var (
	// ErrLoadFailed reports that the native loader could not produce the
	// resource (missing file, decode failure, no GPU context).
	ErrLoadFailed = errors.New("rl: load failed")

	// ErrExportFailed reports that the native library could not write a file.
	ErrExportFailed = errors.New("rl: export failed")

	// ErrInvalidString reports text that cannot cross the native boundary.
	ErrInvalidString = errors.New("rl: invalid string")

	// ErrReleased reports use of a resource after Close, Unwrap or the
	// release of its owner.
	ErrReleased = errors.New("rl: resource already released")

	// ErrWindowOpen is returned by Open while another window is open.
	ErrWindowOpen = errors.New("rl: window already open")

	// ErrWindowClosed is returned by window operations after Close.
	ErrWindowClosed = errors.New("rl: window closed")

	// ErrInitFailed reports that the native window or audio device did not
	// come up.
	ErrInitFailed = errors.New("rl: native initialization failed")

	// ErrInvalidSize reports a dimension or rate outside the range the
	// native library accepts.
	ErrInvalidSize = errors.New("rl: invalid size")

	// ErrSessionActive is returned when a drawing session is begun, or the
	// window closed, while another session is still open.
	ErrSessionActive = errors.New("rl: drawing session active")

	// ErrWrongThread is returned when a Thread token from another (or a
	// closed) window is presented.
	ErrWrongThread = errors.New("rl: thread token not valid for this window")

	// ErrTargetBusy is returned when a render texture is bound while another
	// render texture is already the drawing target.
	ErrTargetBusy = errors.New("rl: render target already bound")

	// ErrAudioOpen is returned by OpenAudio while the device is open.
	ErrAudioOpen = errors.New("rl: audio device already open")

	// ErrAudioClosed is returned by audio operations after the device closed.
	ErrAudioClosed = errors.New("rl: audio device closed")

	// ErrPixelSize reports a pixel buffer whose length does not match the
	// texture format and region.
	ErrPixelSize = errors.New("rl: pixel data size mismatch")

	// ErrOutOfBounds reports a region outside the texture or image.
	ErrOutOfBounds = errors.New("rl: region out of bounds")

	// ErrUniformType reports a uniform value whose length does not match its
	// declared type.
	ErrUniformType = errors.New("rl: uniform value does not match type")

	// ErrNotAvailable is returned when no native library is registered.
	ErrNotAvailable = native.ErrNotAvailable
)

// Protocol violations. These are carried by panics, never returned.
var (
	// ErrHandleEnded reports a drawing command on a handle whose scope has
	// returned.
	ErrHandleEnded = errors.New("rl: drawing handle used after its scope ended")

	// ErrNotInnermost reports a drawing command on an outer handle while a
	// nested mode is open.
	ErrNotInnermost = errors.New("rl: drawing handle is not the innermost session")

	// ErrBorrowed reports an attempt to take ownership of a handle that
	// belongs to the native library, such as the default font.
	ErrBorrowed = errors.New("rl: borrowed resource cannot be unwrapped")

	// ErrNotIn3D reports a 3D shape drawn outside Mode3D.
	ErrNotIn3D = errors.New("rl: 3D shape drawn outside Mode3D")

	// ErrSelfSample reports drawing a render texture into itself while it
	// is the bound target.
	ErrSelfSample = errors.New("rl: render texture drawn into itself")
)

// Kind classifies an Error.
type Kind uint8

// Error kinds.
const (
	KindOther    Kind = iota
	KindLoad          // native loader returned its failure sentinel
	KindMarshal       // text rejected before the native call
	KindProtocol      // begin/end or ownership contract broken
	KindState         // window, session or device in the wrong state
)

func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindMarshal:
		return "marshal"
	case KindProtocol:
		return "protocol"
	case KindState:
		return "state"
	default:
		return "other"
	}
}

// Error is the structured error returned by rl operations.
type Error struct {
	Op   string // operation, e.g. "LoadImage"
	Kind Kind
	Path string // file name or text argument, if any
	Err  error  // underlying sentinel or cause
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("rl: ")
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.Path))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(strings.TrimPrefix(e.Err.Error(), "rl: "))
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. An Op set on
// target must match as well.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Op == "" || t.Op == e.Op)
}

func loadError(op, path string) error {
	return &Error{Op: op, Kind: KindLoad, Path: path, Err: ErrLoadFailed}
}

func stateError(op string, err error) error {
	return &Error{Op: op, Kind: KindState, Err: err}
}

// violation panics with a protocol error carrying the caller's stack.
func violation(op string, err error) {
	panic(goerrors.Wrap(&Error{Op: op, Kind: KindProtocol, Err: err}, 2))
}

// IsProtocolViolation reports whether v, typically a recovered panic value,
// is a protocol violation raised by rl.
func IsProtocolViolation(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	return errors.Is(err, &Error{Kind: KindProtocol})
}

// Stack returns the stack trace captured with a protocol violation, or ""
// if v does not carry one.
func Stack(v any) string {
	var ge *goerrors.Error
	if err, ok := v.(error); ok && errors.As(err, &ge) {
		return string(ge.Stack())
	}
	return ""
}

func errorf(op string, kind Kind, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
