package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// BasicWrapper logs the start and the duration of every plugin call. A failing plugin is
// reported to the exit handler.
func BasicWrapper(plugin Plugin, opts *Options) Func {
	name := plugin.String()

	return func(ctx context.Context, args ...any) (Result, error) {
		opts.Debugf("Plugin %s is starting", name)

		start := time.Now()

		res, err := safeCall(ctx, plugin.Fn, args)
		if err != nil {
			return nil, opts.Fail(errors.Wrapf(err, "plugin %s execution has failed", name))
		}

		opts.Debugf("Plugin %s has returned after %dms", name, time.Since(start).Milliseconds())

		return res, nil
	}
}
