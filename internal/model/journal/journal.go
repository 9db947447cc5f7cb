// Package journal provides an in-memory editor model that records every
// mutation it receives.
//
// The journal backs the rigedit console (each dispatched action prints the
// model calls it produced) and serves as the model for handler tests.
// Calls are recorded as "<path> <method>[ <arg>...]", for example
// "target.bone select Hand_L" or "misc setIndexBase 1".
package journal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/rigedit/internal/model"
)

// Journal is a recording model.EditorModel.
type Journal struct {
	mu    sync.Mutex
	calls []string

	flags   map[string]bool
	names   map[string]string
	ids     map[string]uint64
	frames  map[string][]float32
	options *options
	cgms    [2]*cgm
	mapping *cursor
}

// New creates an empty journal with index base 0.
func New() *Journal {
	j := &Journal{
		flags:  make(map[string]bool),
		names:  make(map[string]string),
		ids:    make(map[string]uint64),
		frames: make(map[string][]float32),
	}
	j.options = &options{j: j}
	j.cgms[model.SourceCgm] = newCgm(j, "source")
	j.cgms[model.TargetCgm] = newCgm(j, "target")
	j.mapping = &cursor{j: j, path: "map"}
	return j
}

func (j *Journal) record(path, method string, args ...interface{}) {
	var b strings.Builder
	b.WriteString(path)
	b.WriteByte(' ')
	b.WriteString(method)
	for _, a := range args {
		b.WriteByte(' ')
		fmt.Fprint(&b, a)
	}

	j.mu.Lock()
	j.calls = append(j.calls, b.String())
	j.mu.Unlock()
}

// Calls returns a copy of every recorded call in order.
func (j *Journal) Calls() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.calls...)
}

// Last returns the most recent call, or "" if none was recorded.
func (j *Journal) Last() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.calls) == 0 {
		return ""
	}
	return j.calls[len(j.calls)-1]
}

// Len returns the number of recorded calls.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.calls)
}

// Since returns the calls recorded after the first n.
func (j *Journal) Since(n int) []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	if n >= len(j.calls) {
		return nil
	}
	return append([]string(nil), j.calls[n:]...)
}

// Reset discards the recorded calls. Model state is kept.
func (j *Journal) Reset() {
	j.mu.Lock()
	j.calls = nil
	j.mu.Unlock()
}

// SetFlag sets a boolean property such as "target.animation.real",
// "target.matParam.selected", "target.track.selected" or "target.sgc.enabled".
func (j *Journal) SetFlag(key string, v bool) {
	j.mu.Lock()
	j.flags[key] = v
	j.mu.Unlock()
}

// SetName sets a string property such as "target.sgc.object".
func (j *Journal) SetName(key, v string) {
	j.mu.Lock()
	j.names[key] = v
	j.mu.Unlock()
}

// SetShapeID gives the selected physics object of a model a shape.
func (j *Journal) SetShapeID(which model.WhichCgm, id uint64) {
	j.mu.Lock()
	j.ids[j.cgms[which].path+".object.shape"] = id
	j.mu.Unlock()
}

// SetKeyframeTimes sets the keyframe times of the selected track of a model.
func (j *Journal) SetKeyframeTimes(which model.WhichCgm, times ...float32) {
	j.mu.Lock()
	j.frames[j.cgms[which].path+".track"] = append([]float32(nil), times...)
	j.mu.Unlock()
}

func (j *Journal) flag(key string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.flags[key]
}

func (j *Journal) name(key string) string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.names[key]
}

// Target implements model.EditorModel.
func (j *Journal) Target() model.EditableCgm { return j.cgms[model.TargetCgm] }

// Source implements model.EditorModel.
func (j *Journal) Source() model.Cgm { return j.cgms[model.SourceCgm] }

// Cgm implements model.EditorModel.
func (j *Journal) Cgm(which model.WhichCgm) model.Cgm {
	if which == model.SourceCgm {
		return j.cgms[model.SourceCgm]
	}
	return j.cgms[model.TargetCgm]
}

// Play returns the player of a model with its concrete type, for inspection.
func (j *Journal) Play(which model.WhichCgm) *PlayOptions {
	return j.cgms[which].play
}

// Map implements model.EditorModel.
func (j *Journal) Map() model.Mapping { return j.mapping }

// Misc implements model.EditorModel.
func (j *Journal) Misc() model.Misc { return j.options }

// Scene implements model.EditorModel.
func (j *Journal) Scene() model.Scene { return j.options }

// Score implements model.EditorModel.
func (j *Journal) Score() model.Score { return j.options }

// Tween implements model.EditorModel.
func (j *Journal) Tween() model.Tween { return j.options }

// Dumper implements model.EditorModel.
func (j *Journal) Dumper() model.Dumper { return j.options }

// SetBackgroundColor implements model.EditorModel.
func (j *Journal) SetBackgroundColor(background model.Background, c model.Color) {
	j.record("model", "setBackgroundColor", model.Backgrounds.Name(background), c)
}

var _ model.EditorModel = (*Journal)(nil)
