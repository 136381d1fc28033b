package services

import (
	"fmt"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/logger"
)

// Slice is one time window of a corpus: the first year in the window and
// the sub-corpus of documents dated within it.
type Slice struct {
	Key    int
	Corpus *Corpus
}

// SliceOptions controls time-window generation. Equal window and step
// sizes produce disjoint time periods; a step of 1 with a larger window
// produces overlapping sliding windows. Values below 1 default to 1.
type SliceOptions struct {
	WindowSize int
	StepSize   int
}

func (o SliceOptions) normalized() SliceOptions {
	if o.WindowSize < 1 {
		o.WindowSize = 1
	}
	if o.StepSize < 1 {
		o.StepSize = 1
	}
	return o
}

// SliceIter walks the time windows of a corpus in increasing key order.
// Iteration is lazy: each window's sub-corpus is built on Next. Iterators
// are independent; Slice returns a fresh one per call.
//
//	it, err := corpus.Slice(services.SliceOptions{})
//	for s, ok := it.Next(); ok; s, ok = it.Next() {
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
type SliceIter struct {
	corpus *Corpus
	opts   SliceOptions
	next   int
	end    int
	err    error
}

// Slice prepares time-window iteration over the corpus's date index,
// building that index on demand. A corpus with no integer-dated documents
// fails with domain.ErrNoDateIndex. A window that would extend past the
// last year is never emitted.
func (c *Corpus) Slice(opts SliceOptions) (*SliceIter, error) {
	opts = opts.normalized()

	if _, ok := c.indices[domain.FieldDate]; !ok {
		c.Index(domain.FieldDate)
	}

	start, end, ok := c.dateBounds()
	if !ok {
		return nil, fmt.Errorf("cannot slice: %w", domain.ErrNoDateIndex)
	}
	logger.Debug("Slicing %d..%d window=%d step=%d", start, end, opts.WindowSize, opts.StepSize)

	return &SliceIter{corpus: c, opts: opts, next: start, end: end}, nil
}

// dateBounds returns the smallest and largest integer keys of the date
// index.
func (c *Corpus) dateBounds() (start, end int, ok bool) {
	for key := range c.indices[domain.FieldDate] {
		year, isInt := key.Int()
		if !isInt {
			continue
		}
		if !ok || year < start {
			start = year
		}
		if !ok || year > end {
			end = year
		}
		ok = true
	}
	return start, end, ok
}

// Next returns the next slice. It reports false when no further full-size
// window fits; check Err afterwards for construction failures.
func (i *SliceIter) Next() (Slice, bool) {
	if i.err != nil {
		return Slice{}, false
	}
	if i.next > i.end-(i.opts.WindowSize-1) {
		return Slice{}, false
	}

	key := i.next
	i.next += i.opts.StepSize

	// Years inside the window may be absent from the index (gap years);
	// selection demands membership, so restrict to the present ones.
	present := make([]domain.Key, 0, i.opts.WindowSize)
	for _, k := range domain.IntRange(key, key+i.opts.WindowSize) {
		if i.corpus.HasIndexValue(domain.FieldDate, k) {
			present = append(present, k)
		}
	}

	sub, err := i.corpus.Subcorpus(domain.ByField(domain.FieldDate, present...))
	if err != nil {
		i.err = fmt.Errorf("slice %d: %w", key, err)
		return Slice{}, false
	}
	return Slice{Key: key, Corpus: sub}, true
}

// Err returns the first error encountered during iteration.
func (i *SliceIter) Err() error {
	return i.err
}
