package refdeck

// Selection tracks which search results are currently selected, keyed by
// article ID, holding the last-seen record for each. Selection-scoped
// actions (export, synthesis) only make sense over search results, so
// visibility is gated on the search context and callers must Clear whenever
// the underlying result list is replaced.
//
// Selection is not safe for concurrent use; it is driven synchronously by
// a single command invocation.
type Selection struct {
	items map[string]*Article
	order []string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{items: make(map[string]*Article)}
}

// Toggle flips membership for the record: present ids are removed, absent
// ids are inserted with the given record.
func (s *Selection) Toggle(a *Article) {
	if _, ok := s.items[a.ID]; ok {
		delete(s.items, a.ID)
		for i, id := range s.order {
			if id == a.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.items[a.ID] = a
	s.order = append(s.order, a.ID)
}

// Clear empties the selection unconditionally. Call whenever the active
// result list is replaced so stale ids never leak into the next context.
func (s *Selection) Clear() {
	s.items = make(map[string]*Article)
	s.order = nil
}

// IsSelected reports whether the id is currently selected.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.items[id]
	return ok
}

// Count returns the number of selected articles.
func (s *Selection) Count() int {
	return len(s.items)
}

// Visible reports whether selection-dependent actions should be offered:
// true iff at least one article is selected and the active list is a
// search result list.
func (s *Selection) Visible(searchContext bool) bool {
	return s.Count() > 0 && searchContext
}

// IDs returns the selected article ids in selection order.
func (s *Selection) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Articles returns the last-seen records in selection order.
func (s *Selection) Articles() []*Article {
	articles := make([]*Article, 0, len(s.order))
	for _, id := range s.order {
		articles = append(articles, s.items[id])
	}
	return articles
}

// Article returns the last-seen record for an id, or nil if not selected.
func (s *Selection) Article(id string) *Article {
	return s.items[id]
}
