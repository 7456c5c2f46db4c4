package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Kind: KindHTTP, Status: 404, Message: "not found"}
	if got := err.Error(); got != "not found" {
		t.Errorf("Error() = %q, want %q", got, "not found")
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("list users: %w", &APIError{Kind: KindTransport, Message: "request failed", Err: cause})
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the transport cause")
	}
	if KindOf(err) != KindTransport {
		t.Errorf("KindOf = %q, want transport", KindOf(err))
	}
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorKind
	}{
		{"不能删除管理员用户", KindAdminUser},
		{"该用户还有未完成的交易，无法删除", KindPendingTrades},
		{"不能删除自己的账户", KindSelfDelete},
		{"该分类下还有子分类，无法删除", KindHasChildren},
		{"该分类下还有物品，无法删除", KindHasItems},
		{"HTTP error! status: 500", KindHTTP},
		{"", KindHTTP},
	}
	for _, tt := range tests {
		if got := ClassifyMessage(tt.msg); got != tt.want {
			t.Errorf("ClassifyMessage(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestKindFromCode(t *testing.T) {
	if k, ok := KindFromCode("has_children"); !ok || k != KindHasChildren {
		t.Errorf("KindFromCode(has_children) = %q, %v", k, ok)
	}
	if _, ok := KindFromCode("http"); ok {
		t.Error("non-domain codes should not map")
	}
	if _, ok := KindFromCode("bogus"); ok {
		t.Error("unknown codes should not map")
	}
}

func TestFriendlyMessage(t *testing.T) {
	err := &APIError{Kind: KindPendingRequests, Status: 400, Message: "HTTP error! status: 400"}
	if got := err.FriendlyMessage(); got != "该物品还有待处理的请求，无法删除" {
		t.Errorf("FriendlyMessage() = %q", got)
	}
	plain := &APIError{Kind: KindHTTP, Message: "boom"}
	if got := plain.FriendlyMessage(); got != "boom" {
		t.Errorf("FriendlyMessage() = %q, want boom", got)
	}
}

func TestValidationError(t *testing.T) {
	err := newValidationError("email", MsgInvalidEmail)
	if got := err.Error(); got != "email: "+MsgInvalidEmail {
		t.Errorf("Error() = %q", got)
	}
	if KindOf(err) != KindValidation {
		t.Errorf("KindOf = %q, want validation", KindOf(err))
	}
	if KindOf(errors.New("x")) != "" {
		t.Error("plain errors have no kind")
	}
}

func TestHTTPStatusMessage(t *testing.T) {
	if got := HTTPStatusMessage(500); got != "HTTP error! status: 500" {
		t.Errorf("HTTPStatusMessage(500) = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"domain kind", fmt.Errorf("delete category 3: %w", &APIError{Kind: KindHasItems, Message: "raw"}), "该分类下还有物品，无法删除"},
		{"plain api error", &APIError{Kind: KindHTTP, Message: "not found"}, "not found"},
		{"validation", fmt.Errorf("create: %w", &ValidationError{Field: "email", Message: MsgInvalidEmail}), MsgInvalidEmail},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.err); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
