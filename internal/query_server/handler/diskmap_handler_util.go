package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
)

// parseLayoutOptions overrides defaults with the width, height and padding query parameters.
func parseLayoutOptions(r *http.Request, defaults layout.Options) (layout.Options, error) {
	opts := defaults
	query := r.URL.Query()
	params := []struct {
		name   string
		target *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"padding", &opts.Padding},
	}
	for _, p := range params {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return layout.Options{}, fmt.Errorf("%w: %s=%q", ErrInvalidParameter, p.name, raw)
		}
		*p.target = v
	}
	if err := opts.Validate(); err != nil {
		return layout.Options{}, err
	}
	return opts, nil
}

var (
	ErrInvalidParameter = errors.New("invalid query parameter")
)
