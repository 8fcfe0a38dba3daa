package repository

import "sportive/internal/model"

// PageOf applies the pagination protocol to a fully materialized list: at
// most limit items starting at offset skip, plus a flag telling whether an
// item exists past the page. A skip beyond the list yields an empty page.
func PageOf[T any](items []T, limit, skip int) model.Page[T] {
	page := model.Page[T]{List: []T{}}
	if skip < len(items) {
		end := skip + limit
		if end > len(items) {
			end = len(items)
		}
		page.List = append(page.List, items[skip:end]...)
	}
	page.HasMore = len(items) > skip+limit
	return page
}

// TrimLookahead converts the result of a limit+1 fetch into a page: when the
// backend returned more rows than the limit, the surplus row only signals
// that more data exists and is dropped from the page.
func TrimLookahead[T any](items []T, limit int) model.Page[T] {
	if len(items) > limit {
		return model.Page[T]{List: items[:limit:limit], HasMore: true}
	}
	if items == nil {
		items = []T{}
	}
	return model.Page[T]{List: items}
}
