package domain

// PageQuery describes one page of an id-descending list. When AfterID is set
// the query runs in keyset mode (rows with id < AfterID) and Offset is
// ignored; otherwise plain LIMIT/OFFSET applies.
type PageQuery struct {
	Limit   int
	Offset  int
	AfterID *int64
}

const DefaultPageLimit = 20

// Normalized returns a copy with the limit clamped to sane bounds.
func (p PageQuery) Normalized() PageQuery {
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
