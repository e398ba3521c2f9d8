// Package builder implements the guided outfit assembly flow: one clothing
// category at a time, with a terminal preview phase before saving.
package builder

import (
	"math/rand"

	"github.com/getset/getset/internal/wardrobe"
)

// Sequence is the fixed order in which categories are presented.
var Sequence = []wardrobe.Category{
	wardrobe.CategoryTops,
	wardrobe.CategoryBottoms,
	wardrobe.CategoryShoes,
	wardrobe.CategoryOuterwear,
	wardrobe.CategoryAccessories,
}

// Phase distinguishes the two builder states.
type Phase string

const (
	// PhaseBrowsing means the user is stepping through one category's
	// candidate pool.
	PhaseBrowsing Phase = "browsing"
	// PhasePreview means every category has been resolved and the
	// assembled outfit is under review.
	PhasePreview Phase = "preview"
)

// Selection holds at most one item per category. A nil slot means the
// category is unresolved or was skipped.
type Selection struct {
	Tops        *wardrobe.Item
	Bottoms     *wardrobe.Item
	Shoes       *wardrobe.Item
	Outerwear   *wardrobe.Item
	Accessories *wardrobe.Item
}

// Get returns the selected item for a category, nil if unresolved.
func (s Selection) Get(category wardrobe.Category) *wardrobe.Item {
	switch category {
	case wardrobe.CategoryTops:
		return s.Tops
	case wardrobe.CategoryBottoms:
		return s.Bottoms
	case wardrobe.CategoryShoes:
		return s.Shoes
	case wardrobe.CategoryOuterwear:
		return s.Outerwear
	case wardrobe.CategoryAccessories:
		return s.Accessories
	}
	return nil
}

func (s *Selection) set(category wardrobe.Category, item *wardrobe.Item) {
	switch category {
	case wardrobe.CategoryTops:
		s.Tops = item
	case wardrobe.CategoryBottoms:
		s.Bottoms = item
	case wardrobe.CategoryShoes:
		s.Shoes = item
	case wardrobe.CategoryOuterwear:
		s.Outerwear = item
	case wardrobe.CategoryAccessories:
		s.Accessories = item
	}
}

// Complete reports whether tops, bottoms and shoes are all resolved.
// Outerwear and accessories are optional.
func (s Selection) Complete() bool {
	return s.Tops != nil && s.Bottoms != nil && s.Shoes != nil
}

// ItemIDs returns the ids of all resolved slots in sequence order.
func (s Selection) ItemIDs() []string {
	var ids []string
	for _, category := range Sequence {
		if item := s.Get(category); item != nil {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Items returns all resolved items in sequence order.
func (s Selection) Items() []*wardrobe.Item {
	var items []*wardrobe.Item
	for _, category := range Sequence {
		if item := s.Get(category); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// Pools supplies the candidate item pool for a category, already
// weather-filtered and sorted by the caller.
type Pools func(category wardrobe.Category) []*wardrobe.Item

// Builder is the outfit assembly state machine. It is not safe for
// concurrent use; each assembly session owns one Builder.
type Builder struct {
	pools     Pools
	selection Selection

	phase    Phase
	position int
	index    int
}

// New returns a Builder at the first category with an empty selection.
func New(pools Pools) *Builder {
	return &Builder{pools: pools, phase: PhaseBrowsing}
}

// Phase returns the current phase.
func (b *Builder) Phase() Phase { return b.phase }

// Category returns the category being browsed. In preview it returns the
// last category of the sequence.
func (b *Builder) Category() wardrobe.Category {
	if b.phase == PhasePreview {
		return Sequence[len(Sequence)-1]
	}
	return Sequence[b.position]
}

// Index returns the browsing index within the current category's pool.
func (b *Builder) Index() int { return b.index }

// Selection returns a copy of the current selection.
func (b *Builder) Selection() Selection { return b.selection }

// Complete reports whether the current selection is committable.
func (b *Builder) Complete() bool { return b.selection.Complete() }

// Current returns the item under the browsing cursor, nil when the pool is
// empty or in preview.
func (b *Builder) Current() *wardrobe.Item {
	if b.phase == PhasePreview {
		return nil
	}
	pool := b.pools(Sequence[b.position])
	if b.index < 0 || b.index >= len(pool) {
		return nil
	}
	return pool[b.index]
}

// Advance commits the item under the cursor for the current category and
// moves to the next one. On the last category it enters preview. An empty
// pool advances without committing, so the flow never dead-ends.
func (b *Builder) Advance() {
	if b.phase == PhasePreview {
		return
	}
	if item := b.Current(); item != nil {
		b.selection.set(Sequence[b.position], item)
	}
	b.stepForward()
}

// Skip moves to the next category without committing a selection.
func (b *Builder) Skip() {
	if b.phase == PhasePreview {
		return
	}
	b.stepForward()
}

func (b *Builder) stepForward() {
	if b.position == len(Sequence)-1 {
		b.phase = PhasePreview
		return
	}
	b.position++
	b.index = 0
}

// GoTo jumps directly to a category, resetting the browsing index and
// leaving preview if active. Unknown categories are ignored.
func (b *Builder) GoTo(category wardrobe.Category) {
	for i, c := range Sequence {
		if c == category {
			b.phase = PhaseBrowsing
			b.position = i
			b.index = 0
			return
		}
	}
}

// Next moves the browsing cursor forward within the current pool, clamped at
// the end.
func (b *Builder) Next() {
	if b.phase == PhasePreview {
		return
	}
	pool := b.pools(Sequence[b.position])
	if b.index < len(pool)-1 {
		b.index++
	}
}

// Prev moves the browsing cursor backward, clamped at zero.
func (b *Builder) Prev() {
	if b.phase == PhasePreview {
		return
	}
	if b.index > 0 {
		b.index--
	}
}

// Back returns to the previous step: from preview to the last category, from
// a non-first category to the one before it. At the first category it is a
// no-op.
func (b *Builder) Back() {
	if b.phase == PhasePreview {
		b.phase = PhaseBrowsing
		b.position = len(Sequence) - 1
		b.index = 0
		return
	}
	if b.position > 0 {
		b.position--
		b.index = 0
	}
}

// Randomize draws one uniformly random item per category from its pool
// (empty pools leave the category unresolved) and jumps to preview,
// regardless of completeness.
func (b *Builder) Randomize(rng *rand.Rand) {
	for _, category := range Sequence {
		pool := b.pools(category)
		if len(pool) == 0 {
			b.selection.set(category, nil)
			continue
		}
		b.selection.set(category, pool[rng.Intn(len(pool))])
	}
	b.phase = PhasePreview
}

// Load replaces the selection wholesale from a recorded outfit's items,
// grouped by category, and jumps to preview. Items for a category seen later
// in the input overwrite earlier ones. Ids that resolve to nothing leave
// their category unresolved.
func (b *Builder) Load(items []*wardrobe.Item) {
	b.selection = Selection{}
	for _, item := range items {
		if item == nil {
			continue
		}
		b.selection.set(item.Category, item)
	}
	b.phase = PhasePreview
}

// Reset clears the selection and returns to the first category.
func (b *Builder) Reset() {
	b.selection = Selection{}
	b.phase = PhaseBrowsing
	b.position = 0
	b.index = 0
}
