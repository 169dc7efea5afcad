package galex

// Flags is a 32-bit, user-assignable bitmask attached to a population or a
// single chromosome storage slot. The engine itself never assigns meaning to
// individual bits; callers reserve bits for their own bookkeeping (e.g.
// "this member was produced by elitism", "this population is converging").
type Flags uint32

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Any reports whether at least one bit in mask is set.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// Set returns f with every bit in mask set.
func (f Flags) Set(mask Flags) Flags { return f | mask }

// Clear returns f with every bit in mask cleared.
func (f Flags) Clear(mask Flags) Flags { return f &^ mask }

// Toggle returns f with every bit in mask flipped.
func (f Flags) Toggle(mask Flags) Flags { return f ^ mask }

// Fill options control how a population backfills slots lost to Trim/Remove
// relative to its configured size, mirroring the three independent knobs the
// original engine exposed for this.
type FillOptions uint8

const (
	// FillOnInit backfills the population to its configured size once, the
	// first time it is initialized.
	FillOnInit FillOptions = 1 << iota

	// FillOnSizeChange is kept with the population's parameters, but no
	// Population method reads it: raising Size through SetParams leaves the
	// population at its current length.
	FillOnSizeChange

	// FillCrowdingSpace backfills the crowding (overflow) region of the
	// population rather than only the base region.
	FillCrowdingSpace
)
