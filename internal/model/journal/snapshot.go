package journal

import (
	"github.com/dshills/rigedit/internal/model"
)

// state is the restorable part of a journal.
type state struct {
	flags     map[string]bool
	names     map[string]string
	ids       map[string]uint64
	frames    map[string][]float32
	times     [2][3]float32
	indexBase int
	rbp       model.RigidBodyParameter
	shapeParm model.ShapeParameter
}

// clone returns a deep copy of s.
func (s *state) clone() *state {
	c := *s
	c.flags = make(map[string]bool, len(s.flags))
	c.names = make(map[string]string, len(s.names))
	c.ids = make(map[string]uint64, len(s.ids))
	c.frames = make(map[string][]float32, len(s.frames))
	for k, v := range s.flags {
		c.flags[k] = v
	}
	for k, v := range s.names {
		c.names[k] = v
	}
	for k, v := range s.ids {
		c.ids[k] = v
	}
	for k, v := range s.frames {
		c.frames[k] = append([]float32(nil), v...)
	}
	return &c
}

// Snapshot captures the journal's model state. Recorded calls are not
// part of the snapshot.
func (j *Journal) Snapshot() interface{} {
	j.mu.Lock()
	defer j.mu.Unlock()

	live := &state{
		flags:     j.flags,
		names:     j.names,
		ids:       j.ids,
		frames:    j.frames,
		indexBase: j.options.indexBase,
		rbp:       j.options.rbp,
		shapeParm: j.options.shapeParm,
	}
	for i, c := range j.cgms {
		live.times[i] = c.play.times
	}
	return live.clone()
}

// Restore reinstates a state produced by Snapshot and records the restore.
func (j *Journal) Restore(v interface{}) {
	saved, ok := v.(*state)
	if !ok {
		return
	}
	s := saved.clone()

	j.mu.Lock()
	j.flags = s.flags
	j.names = s.names
	j.ids = s.ids
	j.frames = s.frames
	j.options.indexBase = s.indexBase
	j.options.rbp = s.rbp
	j.options.shapeParm = s.shapeParm
	for i, c := range j.cgms {
		c.play.times = s.times[i]
	}
	j.mu.Unlock()

	j.record("model", "restore")
}
