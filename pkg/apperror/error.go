package apperror

// Stable error codes surfaced to RPC clients. The 3000 family belongs to
// resumes, the 4000 family to vacancies. Codes below 2000 cover access
// control, the negative codes are the JSON-RPC protocol range.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603

	CodeUnauthorized = 1001
	CodeForbidden    = 1002

	CodeResumeNotFound    = 3001
	CodeResumeWrongState  = 3002
	CodeVacancyNotFound   = 4001
	CodeVacancyWrongState = 4002
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, nil)
}

func InvalidParams(message string) *AppError {
	return New(CodeInvalidParams, message, nil)
}

func MethodNotFound(method string) *AppError {
	return New(CodeMethodNotFound, "Method not found: "+method, nil)
}

func Internal(err error) *AppError {
	return New(CodeInternal, "Internal error", err)
}

// Domain errors carry fixed messages; clients match on the code.
func ResumeNotFound() *AppError {
	return New(CodeResumeNotFound, "Resume not found", nil)
}

func ResumeWrongState() *AppError {
	return New(CodeResumeWrongState, "Resume has not allowed state for this method", nil)
}

func VacancyNotFound() *AppError {
	return New(CodeVacancyNotFound, "Vacancy not found", nil)
}

func VacancyWrongState() *AppError {
	return New(CodeVacancyWrongState, "Vacancy has not allowed state for this method", nil)
}
