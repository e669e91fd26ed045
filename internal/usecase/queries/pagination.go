package queries

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxListLimit = 100
)

type Page struct {
	Number int
	Limit  int
}

// Normalize clamps page and limit into their accepted ranges.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

func TotalPages(total, limit int) int {
	if limit <= 0 || total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func paginate[T any](items []T, p Page) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
