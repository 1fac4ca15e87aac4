package v1

import (
	"encoding/json"

	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type createVacancyParams struct {
	Position    string `json:"position" validate:"required,max=100"`
	Experience  int    `json:"experience" validate:"min=0"`
	Description string `json:"description" validate:"required"`
}

func (h *RPCHandler) createVacancy(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req createVacancyParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}

	vacancy := &domain.Vacancy{
		Position:    req.Position,
		Experience:  req.Experience,
		Description: req.Description,
	}
	created, err := h.vacancyUC.Create(c.Request.Context(), user, vacancy)
	if err != nil {
		return nil, err
	}
	return toVacancyManagerView(created), nil
}

func (h *RPCHandler) getVacancyForManager(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req idParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	vacancy, err := h.vacancyUC.GetForManager(c.Request.Context(), user, req.ID)
	if err != nil {
		return nil, err
	}
	return toVacancyManagerView(vacancy), nil
}

type vacancyManagerFiltersParams struct {
	State    *domain.State `json:"state"`
	Position *string       `json:"position"`
}

type listVacanciesForManagerParams struct {
	paginationParams
	Filters *vacancyManagerFiltersParams `json:"filters"`
}

func (h *RPCHandler) getVacanciesForManager(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req listVacanciesForManagerParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	page, cursorMode, err := req.pageQuery()
	if err != nil {
		return nil, err
	}

	var filters domain.VacancyManagerFilters
	if req.Filters != nil {
		if req.Filters.State != nil && !req.Filters.State.Valid() {
			return nil, apperror.InvalidParams("unknown state filter value")
		}
		filters = domain.VacancyManagerFilters{
			State:    req.Filters.State,
			Position: req.Filters.Position,
		}
	}

	vacancies, total, err := h.vacancyUC.ListForManager(c.Request.Context(), user, filters, page)
	if err != nil {
		return nil, err
	}

	var lastID int64
	if len(vacancies) > 0 {
		lastID = vacancies[len(vacancies)-1].ID
	}
	return paginated(toShortVacancyManagerViews(vacancies), len(vacancies), lastID, total, page, cursorMode), nil
}

type vacancyUpdateParams struct {
	Position    *string `json:"position" validate:"omitempty,max=100"`
	Experience  *int    `json:"experience" validate:"omitempty,min=0"`
	Description *string `json:"description"`
}

type updateVacancyParams struct {
	ID      int64               `json:"id" validate:"required,min=1"`
	NewData vacancyUpdateParams `json:"new_data"`
}

func (h *RPCHandler) updateVacancy(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req updateVacancyParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}

	update := domain.VacancyUpdate{
		Position:    req.NewData.Position,
		Experience:  req.NewData.Experience,
		Description: req.NewData.Description,
	}
	vacancy, err := h.vacancyUC.Update(c.Request.Context(), user.ID, req.ID, update)
	if err != nil {
		return nil, err
	}
	return toVacancyManagerView(vacancy), nil
}

func (h *RPCHandler) publishVacancy(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req idParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	vacancy, err := h.vacancyUC.Publish(c.Request.Context(), user.ID, req.ID)
	if err != nil {
		return nil, err
	}
	return toVacancyManagerView(vacancy), nil
}

func (h *RPCHandler) hideVacancy(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error) {
	var req idParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	vacancy, err := h.vacancyUC.Hide(c.Request.Context(), user.ID, req.ID)
	if err != nil {
		return nil, err
	}
	return toVacancyManagerView(vacancy), nil
}

type applicantFiltersParams struct {
	FullName *string `json:"full_name"`
}

type listApplicantsParams struct {
	paginationParams
	Filters *applicantFiltersParams `json:"filters"`
}

func (h *RPCHandler) getApplicantsForManager(c *gin.Context, _ *domain.User, params json.RawMessage) (interface{}, error) {
	var req listApplicantsParams
	if err := h.bind(params, &req); err != nil {
		return nil, err
	}
	page, cursorMode, err := req.pageQuery()
	if err != nil {
		return nil, err
	}

	var filters domain.ApplicantFilters
	if req.Filters != nil {
		filters = domain.ApplicantFilters{FullName: req.Filters.FullName}
	}

	applicants, total, err := h.applicantUC.ListApplicants(c.Request.Context(), filters, page)
	if err != nil {
		return nil, err
	}

	var lastID int64
	if len(applicants) > 0 {
		lastID = applicants[len(applicants)-1].ID
	}
	return paginated(toShortApplicantViews(applicants), len(applicants), lastID, total, page, cursorMode), nil
}
