package v1

import (
	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/apperror"
)

// OffsetPagination pages by absolute position; the response carries the
// total count.
type OffsetPagination struct {
	Limit  int `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `json:"offset" validate:"min=0"`
}

// CursorPagination pages by keyset: rows with id below AfterID. The
// response carries the next cursor instead of a total.
type CursorPagination struct {
	Limit   int    `json:"limit" validate:"omitempty,min=1,max=100"`
	AfterID *int64 `json:"after_id" validate:"omitempty,min=1"`
}

// paginationParams is embedded into every list method's params. The two
// strategies are mutually exclusive; supplying both is a request error.
type paginationParams struct {
	Offset *OffsetPagination `json:"offset_pagination"`
	Cursor *CursorPagination `json:"cursor_pagination"`
}

func (p paginationParams) pageQuery() (domain.PageQuery, bool, error) {
	if p.Offset != nil && p.Cursor != nil {
		return domain.PageQuery{}, false, apperror.InvalidParams("only one pagination strategy may be supplied")
	}
	if p.Cursor != nil {
		return domain.PageQuery{Limit: p.Cursor.Limit, AfterID: p.Cursor.AfterID}.Normalized(), true, nil
	}
	query := domain.PageQuery{}
	if p.Offset != nil {
		query.Limit = p.Offset.Limit
		query.Offset = p.Offset.Offset
	}
	return query.Normalized(), false, nil
}

// PaginatedResponse wraps one page of results. Total is present in offset
// mode; NextAfterID in cursor mode when more pages may follow.
type PaginatedResponse struct {
	Items       interface{} `json:"items"`
	Total       *int64      `json:"total,omitempty"`
	NextAfterID *int64      `json:"next_after_id,omitempty"`
}

// paginated assembles the response envelope. lastID is the id of the final
// item on the page (ignored when the page is short or empty).
func paginated(items interface{}, count int, lastID int64, total int64, query domain.PageQuery, cursorMode bool) PaginatedResponse {
	resp := PaginatedResponse{Items: items}
	if cursorMode {
		if count == query.Limit && count > 0 {
			next := lastID
			resp.NextAfterID = &next
		}
	} else {
		resp.Total = &total
	}
	return resp
}
