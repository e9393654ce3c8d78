package catalog

// Catalog is an immutable set of categories keyed by category key.
// It remembers the order categories were declared in for menu display.
type Catalog struct {
	order []string
	byKey map[string]Category
}

// New validates the categories and builds a Catalog from them.
// The slices inside each category are copied, so later changes by the
// caller do not leak into the catalog.
func New(categories []Category) (*Catalog, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}

	c := &Catalog{
		order: make([]string, 0, len(categories)),
		byKey: make(map[string]Category, len(categories)),
	}
	for _, cat := range categories {
		c.order = append(c.order, cat.Key)
		c.byKey[cat.Key] = cloneCategory(cat)
	}
	return c, nil
}

// Category returns the category registered under key.
func (c *Catalog) Category(key string) (Category, bool) {
	cat, ok := c.byKey[key]
	return cat, ok
}

// Keys returns category keys in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Categories returns all categories in declaration order.
func (c *Catalog) Categories() []Category {
	cats := make([]Category, 0, len(c.order))
	for _, k := range c.order {
		cats = append(cats, c.byKey[k])
	}
	return cats
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.order)
}

// QuestionCount returns the total number of questions across all categories.
func (c *Catalog) QuestionCount() int {
	n := 0
	for _, cat := range c.byKey {
		n += len(cat.Questions)
	}
	return n
}

func cloneCategory(cat Category) Category {
	qs := make([]Question, len(cat.Questions))
	for i, q := range cat.Questions {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		q.Options = opts
		qs[i] = q
	}
	cat.Questions = qs
	return cat
}
