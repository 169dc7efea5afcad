package migrate

import "github.com/kataklinger/galex"

// Selector picks members of a population to migrate. It matches the
// return shape of this module's sel package functions, so an existing
// selection op is wrapped directly: migrate.NewMigration(func(pool
// []*galex.ChromosomeStorage) []*galex.ChromosomeStorage { return
// sel.TopN(pool, 3, cmp) }, port, 3).
type Selector func(pool []*galex.ChromosomeStorage) []*galex.ChromosomeStorage

// Migration wraps a Selector and pushes its picks from a source
// population into a Port, the send side of cross-population transfer.
// Prepare/Update/Clear exist so Migration can sit in the same operator
// lifecycle (prepare, clear, update, run) as every other op in this
// module, even though a plain function selector has no state to manage
// by default.
type Migration struct {
	Select Selector
	Port   *Port
	Count  int
}

// NewMigration creates a Migration that selects up to count members per
// run via sel and stages them into port.
func NewMigration(sel Selector, port *Port, count int) *Migration {
	return &Migration{Select: sel, Port: port, Count: count}
}

// Prepare is a no-op hook kept for lifecycle symmetry with other ops;
// stateful selectors can be extended to use it.
func (m *Migration) Prepare() {}

// Clear empties the underlying port, used when a generation fails and
// staging areas must be reset before the error propagates.
func (m *Migration) Clear() { m.Port.Clear() }

// Update is a no-op hook kept for lifecycle symmetry with other ops.
func (m *Migration) Update() {}

// Run selects from source and pushes the result into the port.
func (m *Migration) Run(source *galex.Population) {
	snapshot := source.Members().Snapshot()
	picked := m.Select(snapshot)
	if m.Count > 0 && len(picked) > m.Count {
		picked = picked[:m.Count]
	}
	for _, cs := range picked {
		m.Port.Push(cs)
	}
}
