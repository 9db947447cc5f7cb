package settings

import (
	"fmt"
	"strconv"

	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/model"
)

// playTime addresses one time slot of one model. When hasValue is false
// the action asks for the value with a dialog.
type playTime struct {
	which    model.WhichCgm
	slot     model.PlayTimes
	hasValue bool
	seconds  float32
	ordinal  int
}

var (
	whichCgm = arg.Enum(model.WhichCgms)
	playSlot = arg.Enum(model.PlayTimeSlots)
)

// parseSlot parses "<WhichCgm> <PlayTimes> [<value>]" and returns the
// raw value field, if any.
func parseSlot(payload string) (playTime, string, error) {
	fields, err := arg.Fields(payload, 2, 3)
	if err != nil {
		return playTime{}, "", err
	}
	var pt playTime
	if pt.which, err = whichCgm(fields[0]); err != nil {
		return playTime{}, "", err
	}
	if pt.slot, err = playSlot(fields[1]); err != nil {
		return playTime{}, "", err
	}
	if len(fields) == 2 {
		return pt, "", nil
	}
	pt.hasValue = true
	return pt, fields[2], nil
}

// parsePlayTime parses "<WhichCgm> <PlayTimes> [<seconds>]".
func parsePlayTime(payload string) (playTime, error) {
	pt, raw, err := parseSlot(payload)
	if err != nil || !pt.hasValue {
		return pt, err
	}
	pt.seconds, err = arg.Float(raw)
	return pt, err
}

// parseKeyframeTime parses "<WhichCgm> <PlayTimes> [<keyframe ordinal>]".
func parseKeyframeTime(payload string) (playTime, error) {
	pt, raw, err := parseSlot(payload)
	if err != nil || !pt.hasValue {
		return pt, err
	}
	pt.ordinal, err = arg.Int(raw)
	return pt, err
}

func setTime(ctx *execctx.ExecutionContext, pt playTime) handler.Result {
	if !pt.hasValue {
		return openTimeDialog(ctx, DialogTime, pt)
	}
	ctx.Model.Cgm(pt.which).Play().SetTime(pt.slot, pt.seconds)
	return handler.Success()
}

// setTimeToKeyframe sets a play time to the time of a keyframe of the
// model's selected track. An ordinal below the index base is malformed; a
// keyframe past the end of the track is a no-op.
func setTimeToKeyframe(ctx *execctx.ExecutionContext, pt playTime) handler.Result {
	if !pt.hasValue {
		return openTimeDialog(ctx, DialogTimeToKeyframe, pt)
	}
	index := ctx.Index(pt.ordinal)
	if index < 0 {
		return handler.Malformed(malformed(DialogTimeToKeyframe, "ordinal %d below index base %d",
			pt.ordinal, ctx.IndexBase()))
	}
	cgm := ctx.Model.Cgm(pt.which)
	seconds, ok := cgm.Track().KeyframeTime(index)
	if !ok {
		return handler.NoOpWithMessage(fmt.Sprintf("no keyframe %d", pt.ordinal))
	}
	cgm.Play().SetTime(pt.slot, seconds)
	return handler.Success()
}

func openTimeDialog(ctx *execctx.ExecutionContext, name string, pt playTime) handler.Result {
	if ctx.UI == nil {
		return handler.Error(execctx.ErrMissingUI)
	}
	ctx.UI.OpenDialog(name, pt.which.String(), pt.slot.String())
	return handler.Success()
}

// malformed builds a grammar error for the argument of a prefix.
func malformed(prefix, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", strconv.Quote(prefix), arg.ErrMalformedArgument, fmt.Sprintf(format, args...))
}
