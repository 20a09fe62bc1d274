package veria

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batchLimit bounds concurrent in-flight screens during ScreenBatch.
const batchLimit = 8

// BatchResult holds the outcome for one input of a batch screen. Exactly one
// of Result and Err is set.
type BatchResult struct {
	Input  string
	Result *ScreenResult
	Err    error
}

// ScreenBatch screens multiple inputs concurrently, at most batchLimit at a
// time. Results are returned in input order. A failing input does not abort
// the batch; its error is recorded in its BatchResult.
func (c *Client) ScreenBatch(ctx context.Context, inputs []string) []BatchResult {
	results := make([]BatchResult, len(inputs))

	var g errgroup.Group
	g.SetLimit(batchLimit)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			result, err := c.Screen(ctx, input)
			results[i] = BatchResult{Input: input, Result: result, Err: err}
			return nil
		})
	}

	g.Wait()
	return results
}
