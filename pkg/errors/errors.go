package errors

import (
	"fmt"
	"net/http"
)

var (
	// Tra cứu
	ErrNotFound   = fmt.Errorf("không tìm thấy dữ liệu")
	ErrBadRequest = fmt.Errorf("yêu cầu không hợp lệ")

	// Cấp số VSO
	ErrBranchCodeRequired = fmt.Errorf("thiếu mã DMS chi nhánh")
)

// HttpError mang mã HTTP, thông báo cho người dùng và lỗi gốc (nếu có).
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func NewInternalError(message string, err error) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: message, Err: err}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
