package edit

import (
	"fmt"

	"github.com/dshills/rigedit/internal/action/arg"
)

func positiveRate(payload string) (float32, error) {
	rate, err := arg.Float(payload)
	if err != nil {
		return 0, err
	}
	if rate <= 0 {
		return 0, fmt.Errorf("%w: rate %q must be positive", arg.ErrMalformedArgument, payload)
	}
	return rate, nil
}
