package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"hr-platform-backend/internal/delivery/http/middleware"
	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/apperror"
	"hr-platform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

// methodFunc handles one RPC method. user is non-nil whenever the method
// declares allowed roles; for public methods it may be nil.
type methodFunc func(c *gin.Context, user *domain.User, params json.RawMessage) (interface{}, error)

type rpcMethod struct {
	// roles the caller must hold one of; empty means no authentication.
	roles  []domain.Role
	handle methodFunc
}

// RPCHandler dispatches the single JSON-RPC endpoint. The role gate runs
// before any params are even unmarshalled, so unauthorized callers learn
// nothing about entities.
type RPCHandler struct {
	methods  map[string]rpcMethod
	validate *validator.Validate

	departmentUC domain.DepartmentUsecase
	resumeUC     domain.ResumeUsecase
	vacancyUC    domain.VacancyUsecase
	applicantUC  domain.ApplicantUsecase
}

func NewRPCHandler(
	rg *gin.RouterGroup,
	validate *validator.Validate,
	departmentUC domain.DepartmentUsecase,
	resumeUC domain.ResumeUsecase,
	vacancyUC domain.VacancyUsecase,
	applicantUC domain.ApplicantUsecase,
) *RPCHandler {
	h := &RPCHandler{
		methods:      map[string]rpcMethod{},
		validate:     validate,
		departmentUC: departmentUC,
		resumeUC:     resumeUC,
		vacancyUC:    vacancyUC,
		applicantUC:  applicantUC,
	}

	h.register("get_departments", nil, h.getDepartments)

	applicant := []domain.Role{domain.RoleApplicant}
	h.register("create_resume", applicant, h.createResume)
	h.register("get_resume_for_applicant", applicant, h.getResumeForApplicant)
	h.register("get_resumes_for_applicant", applicant, h.getResumesForApplicant)
	h.register("publish_resume", applicant, h.publishResume)
	h.register("hide_resume", applicant, h.hideResume)
	h.register("update_resume", applicant, h.updateResume)
	h.register("get_vacancy_for_applicant", applicant, h.getVacancyForApplicant)
	h.register("get_vacancies_for_applicant", applicant, h.getVacanciesForApplicant)

	manager := []domain.Role{domain.RoleManager}
	h.register("create_vacancy", manager, h.createVacancy)
	h.register("get_vacancy_for_manager", manager, h.getVacancyForManager)
	h.register("get_vacancies_for_manager", manager, h.getVacanciesForManager)
	h.register("update_vacancy", manager, h.updateVacancy)
	h.register("publish_vacancy", manager, h.publishVacancy)
	h.register("hide_vacancy", manager, h.hideVacancy)
	h.register("get_applicants_for_manager", manager, h.getApplicantsForManager)

	rg.POST("/jsonrpc", h.Handle)
	return h
}

func (h *RPCHandler) register(name string, roles []domain.Role, fn methodFunc) {
	h.methods[name] = rpcMethod{roles: roles, handle: fn}
}

func (h *RPCHandler) Handle(c *gin.Context) {
	var req rpcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeRPCError(c, nil, &rpcError{Code: apperror.CodeParseError, Message: "Parse error"})
		return
	}

	if req.JSONRPC != "2.0" || req.Method == "" {
		writeRPCError(c, req.ID, &rpcError{Code: apperror.CodeInvalidRequest, Message: "Invalid request"})
		return
	}

	method, ok := h.methods[req.Method]
	if !ok {
		writeRPCError(c, req.ID, toRPCError(c, apperror.MethodNotFound(req.Method)))
		return
	}

	user := middleware.UserFromContext(c)
	if len(method.roles) > 0 {
		if user == nil {
			writeRPCError(c, req.ID, toRPCError(c, apperror.Unauthorized("Authentication required")))
			return
		}
		if !roleAllowed(user.Role, method.roles) {
			writeRPCError(c, req.ID, toRPCError(c, apperror.Forbidden("Caller role is not allowed for this method")))
			return
		}
	}

	result, err := method.handle(c, user, req.Params)
	if err != nil {
		writeRPCError(c, req.ID, toRPCError(c, err))
		return
	}

	c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: result})
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func toRPCError(c *gin.Context, err error) *rpcError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return &rpcError{Code: appErr.Code, Message: appErr.Message}
	}
	// Never expose internal error details to clients.
	reqID, _ := c.Get(string(domain.KeyRequestID))
	logger.Log.Error("internal error", "error", err, "request_id", reqID)
	return &rpcError{Code: apperror.CodeInternal, Message: "Internal error"}
}

func writeRPCError(c *gin.Context, id json.RawMessage, rpcErr *rpcError) {
	c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: id, Error: rpcErr})
}

// bind unmarshals and validates method params.
func (h *RPCHandler) bind(params json.RawMessage, dst interface{}) error {
	if len(params) == 0 {
		params = []byte("{}")
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return apperror.InvalidParams("Invalid params: " + err.Error())
	}
	if err := h.validate.Struct(dst); err != nil {
		return apperror.InvalidParams("Invalid params: " + err.Error())
	}
	return nil
}
