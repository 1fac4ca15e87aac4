package v1

import (
	"encoding/json"

	"hr-platform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *RPCHandler) getDepartments(c *gin.Context, _ *domain.User, _ json.RawMessage) (interface{}, error) {
	departments, err := h.departmentUC.List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return toDepartmentViews(departments), nil
}
