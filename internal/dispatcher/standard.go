package dispatcher

import (
	"fmt"

	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/edit"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/navigate"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/selection"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/settings"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/view"
)

// StandardHandlers returns the editor's segments in routing order.
func StandardHandlers() []handler.Handler {
	return []handler.Handler{
		edit.NewCopyHandler(),
		edit.NewDeleteHandler(),
		edit.NewNewHandler(),
		navigate.NewNextHandler(),
		navigate.NewPreviousHandler(),
		edit.NewReduceHandler(),
		edit.NewRenameHandler(),
		edit.NewResampleHandler(),
		view.NewResetHandler(),
		edit.NewRetargetHandler(),
		selection.NewHandlerAN(),
		selection.NewHandlerOZ(),
		settings.NewHandlerAN(),
		settings.NewHandlerOZ(),
		view.NewToggleHandler(),
		view.NewViewHandler(),
		view.NewWarpHandler(),
		edit.NewWrapHandler(),
	}
}

// NewStandard creates a dispatcher with every standard segment added and
// the resulting catalog validated.
func NewStandard(config Config) (*Dispatcher, error) {
	d := New(config)
	for _, h := range StandardHandlers() {
		if err := d.Add(h); err != nil {
			return nil, err
		}
	}
	if err := d.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}
	return d, nil
}
