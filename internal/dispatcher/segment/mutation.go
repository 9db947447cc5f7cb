package segment

import (
	"fmt"

	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// Menu returns a mutation that pops up the named menu.
func Menu(name string) Mutation {
	return func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		ctx.UI.OpenMenu(name)
		return handler.Success()
	}
}

// Dialog returns a mutation that opens the named dialog.
func Dialog(name string, args ...string) Mutation {
	return func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		ctx.UI.OpenDialog(name, args...)
		return handler.Success()
	}
}

// Pick returns a mutation that picks the item under the pointer.
func Pick(what string) Mutation {
	return func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		ctx.UI.Pick(what)
		return handler.Success()
	}
}

// Do adapts a mutation that cannot fail.
func Do(fn func(ctx *execctx.ExecutionContext)) Mutation {
	return func(ctx *execctx.ExecutionContext) handler.Result {
		fn(ctx)
		return handler.Success()
	}
}

// Set adapts a parsed-argument setter that cannot fail, for use with On.
func Set[T any](fn func(ctx *execctx.ExecutionContext, v T)) func(*execctx.ExecutionContext, T) handler.Result {
	return func(ctx *execctx.ExecutionContext, v T) handler.Result {
		fn(ctx, v)
		return handler.Success()
	}
}

// Ordinal adapts a setter that takes a zero-based index to a user-facing
// ordinal argument. The configured index base is subtracted first; an
// ordinal below the base is malformed.
func Ordinal(fn func(ctx *execctx.ExecutionContext, index int)) func(*execctx.ExecutionContext, int) handler.Result {
	return func(ctx *execctx.ExecutionContext, n int) handler.Result {
		i := ctx.Index(n)
		if i < 0 {
			return handler.Malformed(fmt.Errorf("%w: ordinal %d below index base %d",
				arg.ErrMalformedArgument, n, ctx.IndexBase()))
		}
		fn(ctx, i)
		return handler.Success()
	}
}
