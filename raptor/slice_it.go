package raptor

/**
 * sliceIterator walks a contiguous index range forward. There is no
 * reverse-iteration mode: this core only ever walks departures,
 * transfers and route-stops forward (depart-at only, no arrive-by
 * sweep).
 */
type sliceIterator struct {
	first int
	count int
	index int
}

func newRangeIterator(first, count int) *sliceIterator {
	return &sliceIterator{first: first, count: count, index: 0}
}

func (it *sliceIterator) HasNext() bool {
	return it.index < it.count
}

func (it *sliceIterator) Next() int {
	if !it.HasNext() {
		panic("Next always has to be pre-guarded by HasNext")
	}
	val := it.first + it.index
	it.index++
	return val
}
