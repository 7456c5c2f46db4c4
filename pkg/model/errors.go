package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why an API call failed.
type ErrorKind string

const (
	KindTransport  ErrorKind = "transport"
	KindHTTP       ErrorKind = "http"
	KindDecode     ErrorKind = "decode"
	KindValidation ErrorKind = "validation"

	// Domain rejections reported by the backend.
	KindAdminUser       ErrorKind = "admin_user"
	KindSelfDelete      ErrorKind = "self_delete"
	KindPendingTrades   ErrorKind = "pending_trades"
	KindHasChildren     ErrorKind = "has_children"
	KindHasItems        ErrorKind = "has_items"
	KindPendingRequests ErrorKind = "pending_requests"
)

var domainKinds = map[ErrorKind]string{
	KindAdminUser:       "不能删除管理员用户",
	KindSelfDelete:      "不能删除自己的账户",
	KindPendingTrades:   "该用户还有未完成的交易，无法删除",
	KindHasChildren:     "该分类下还有子分类，无法删除",
	KindHasItems:        "该分类下还有物品，无法删除",
	KindPendingRequests: "该物品还有待处理的请求，无法删除",
}

// IsDomain reports whether the kind is a business-rule rejection.
func (k ErrorKind) IsDomain() bool {
	_, ok := domainKinds[k]
	return ok
}

// FriendlyMessage returns the operator-facing text for a domain rejection,
// or fallback for every other kind.
func (k ErrorKind) FriendlyMessage(fallback string) string {
	if msg, ok := domainKinds[k]; ok {
		return msg
	}
	return fallback
}

// KindFromCode maps a backend error_code to a kind. Unknown codes report false.
func KindFromCode(code string) (ErrorKind, bool) {
	k := ErrorKind(code)
	if k.IsDomain() {
		return k, true
	}
	return "", false
}

// messageMarkers maps the backend's delete rejection texts onto kinds for
// servers that do not send error_code. They are only meaningful for a
// refused delete. Order matters: the first match wins.
var messageMarkers = []struct {
	marker string
	kind   ErrorKind
}{
	{"该分类下还有子分类", KindHasChildren},
	{"该分类下还有物品", KindHasItems},
	{"未完成的交易", KindPendingTrades},
	{"管理员", KindAdminUser},
	{"自己", KindSelfDelete},
}

// ClassifyMessage derives a domain kind from the message of a refused delete.
// It returns KindHTTP when no known marker is present.
func ClassifyMessage(msg string) ErrorKind {
	for _, m := range messageMarkers {
		if strings.Contains(msg, m.marker) {
			return m.kind
		}
	}
	return KindHTTP
}

// APIError is a failed call to the trading-platform API.
type APIError struct {
	Kind    ErrorKind
	Status  int // HTTP status; 0 when no response was received
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// FriendlyMessage returns the operator-facing text for the failure.
func (e *APIError) FriendlyMessage() string {
	return e.Kind.FriendlyMessage(e.Message)
}

// HTTPStatusMessage is the fallback message for error responses without a usable body.
func HTTPStatusMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}

// KindOf returns the kind of err, or "" when err is not an APIError or ValidationError.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return KindValidation
	}
	return ""
}

// ValidationError is returned before a request is sent when input is incomplete or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation messages shown to the operator.
const (
	MsgRequiredFields = "请填写所有必填字段"
	MsgInvalidEmail   = "请输入有效的邮箱地址"
	MsgShortPassword  = "密码长度至少6位"
	MsgNonPositive    = "价格必须大于0"
	MsgNoImages       = "请至少上传一张图片"
	MsgCategoryName   = "请输入分类名称"
	MsgRequestParties = "请选择物品和请求者"
	MsgUnknownStatus  = "无效的状态"
	MsgEmptyUpdate    = "没有需要更新的字段"
)

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// Describe returns the operator-facing text of err: the friendly message
// of an API failure, the message of a validation error, or err's own text.
func Describe(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.FriendlyMessage()
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return err.Error()
}
