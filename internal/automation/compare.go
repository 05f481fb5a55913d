package automation

import (
	"context"
	"sync"

	"github.com/san-kum/photosim/internal/photon"
)

// CompareMetals runs the same sweep once per metal, concurrently. Results
// are indexed like metals.
func CompareMetals(ctx context.Context, sweep Sweep, metals []photon.Metal) ([][]SweepPoint, error) {
	if err := sweep.validate(); err != nil {
		return nil, err
	}

	results := make([][]SweepPoint, len(metals))
	errs := make([]error, len(metals))

	var wg sync.WaitGroup
	for i, m := range metals {
		wg.Add(1)
		go func(idx int, m photon.Metal) {
			defer wg.Done()

			s := sweep
			s.Base.Metal = m
			results[idx], errs[idx] = RunSweep(ctx, s)
		}(i, m)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
