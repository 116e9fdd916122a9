package moonglide

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// MaxSeriesLen caps the number of instants Series will evaluate.
const MaxSeriesLen = 1 << 20

// Series evaluates the model at start, start+step, ... up to and including
// end, in parallel. The result is in time order. A cancelled ctx stops the
// work and returns ctx's error.
func Series(ctx context.Context, start, end time.Time, step time.Duration, opts ...Option) ([]*Snapshot, error) {
	if step <= 0 {
		return nil, errors.New("series step must be positive")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("series end %s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	n := int(end.Sub(start)/step) + 1
	if n > MaxSeriesLen {
		return nil, fmt.Errorf("series of %d instants exceeds limit %d", n, MaxSeriesLen)
	}

	out := make([]*Snapshot, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := At(start.Add(time.Duration(i)*step), opts...)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
