package rest

import (
	"encoding/json"
	"net/http"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/application"
	"github.com/fidelopez89/cashea-backend-relojteca/internal/domain"
)

type ErrorResponse struct {
	Error    string                  `json:"error"`
	Code     string                  `json:"code,omitempty"`
	Message  string                  `json:"message,omitempty"`
	Status   int                     `json:"status,omitempty"`
	Details  any                     `json:"details,omitempty"`
	IDNumber string                  `json:"idNumber,omitempty"`
	Fields   []domain.FieldViolation `json:"fields,omitempty"`
	Detail   string                  `json:"detail,omitempty"`
}

// BuildErrorResponse maps an error to its status and body. Underlying
// error text is only included when exposeDetail is set.
func BuildErrorResponse(err error, exposeDetail bool) (int, ErrorResponse) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	svcErr, ok := application.IsServiceError(err)
	if !ok {
		svcErr = toServiceError(errorCode, err)
	}

	if errorCode == application.ErrCodeProviderRejected {
		return statusCode, ErrorResponse{
			Error:    svcErr.Message,
			Code:     svcErr.Code,
			Status:   statusCode,
			Details:  svcErr.Details,
			IDNumber: svcErr.IDNumber,
		}
	}

	response := ErrorResponse{
		Error:    errorCode,
		Message:  svcErr.Message,
		IDNumber: svcErr.IDNumber,
		Fields:   svcErr.Fields,
	}

	if exposeDetail && statusCode >= http.StatusInternalServerError && svcErr.Err != nil {
		response.Detail = svcErr.Err.Error()
	}

	return statusCode, response
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, exposeDetail bool) {
	statusCode, response := BuildErrorResponse(err, exposeDetail)
	WriteJSON(w, statusCode, response)
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func toServiceError(code string, err error) *application.ServiceError {
	switch code {
	case application.ErrCodeTimeout:
		return application.NewTimeoutError("", err)
	case application.ErrCodeInternal:
		return application.NewInternalError("", err)
	default:
		return application.NewInvalidInputError(err)
	}
}
