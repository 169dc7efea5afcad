package galex

// CrossoverBuffer is a per-branch staging area for offspring produced
// during one generation pass, matching the spec's requirement that
// offspring accumulate locally to a branch before being merged into the
// population at a barrier, so no branch observes another branch's
// in-progress work mid-pass. It is intentionally a thin, unsynchronized
// slice wrapper: safety comes from every branch owning a distinct buffer,
// not from locking.
type CrossoverBuffer struct {
	branch  int
	staged  []*ChromosomeStorage
}

// NewCrossoverBuffer creates an empty buffer for the given branch index.
func NewCrossoverBuffer(branch int) *CrossoverBuffer {
	return &CrossoverBuffer{branch: branch}
}

// Branch returns the branch index this buffer is local to.
func (b *CrossoverBuffer) Branch() int { return b.branch }

// Stage appends freshly-evaluated offspring storage to the buffer.
func (b *CrossoverBuffer) Stage(cs *ChromosomeStorage) {
	b.staged = append(b.staged, cs)
}

// Len returns the number of staged offspring.
func (b *CrossoverBuffer) Len() int { return len(b.staged) }

// Drain returns and clears the staged offspring, for merging into the
// shared population at a barrier.
func (b *CrossoverBuffer) Drain() []*ChromosomeStorage {
	out := b.staged
	b.staged = nil
	return out
}

// MergeBuffers concatenates the staged offspring of every branch buffer, in
// branch order, the single-branch critical-section reduction step the
// concurrency model requires after a barrier.
func MergeBuffers(buffers []*CrossoverBuffer) []*ChromosomeStorage {
	total := 0
	for _, b := range buffers {
		total += b.Len()
	}
	out := make([]*ChromosomeStorage, 0, total)
	for _, b := range buffers {
		out = append(out, b.Drain()...)
	}
	return out
}
