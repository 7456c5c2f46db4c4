package model

// RequestStatus is the state of a trade request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
	RequestCompleted RequestStatus = "completed"
)

// RequestStatuses lists the statuses an operator may set, in menu order.
var RequestStatuses = []RequestStatus{
	RequestPending,
	RequestAccepted,
	RequestRejected,
	RequestCancelled,
	RequestCompleted,
}

var requestStatusLabels = map[RequestStatus]string{
	RequestPending:   "待处理",
	RequestAccepted:  "已接受",
	RequestRejected:  "已拒绝",
	RequestCancelled: "已取消",
	RequestCompleted: "已完成",
}

// Label returns the display text of the status; unknown values pass through.
func (s RequestStatus) Label() string {
	if l, ok := requestStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	_, ok := requestStatusLabels[s]
	return ok
}

// TradeRequest is a buyer's request for an item.
type TradeRequest struct {
	RequestID         int           `json:"request_id"`
	ItemID            int           `json:"item_id"`
	ItemTitle         string        `json:"item_title,omitempty"`
	RequesterID       int           `json:"requester_id"`
	RequesterUsername string        `json:"requester_username,omitempty"`
	OwnerUsername     string        `json:"owner_username,omitempty"`
	Message           *string       `json:"message"`
	Status            RequestStatus `json:"status"`
	Item              *Item         `json:"item,omitempty"`
	CreatedAt         string        `json:"created_at,omitempty"`
	UpdatedAt         string        `json:"updated_at,omitempty"`
}

// Owner returns the item owner's username from whichever field the server filled.
func (r *TradeRequest) Owner() string {
	if r.OwnerUsername != "" {
		return r.OwnerUsername
	}
	if r.Item != nil {
		return r.Item.OwnerUsername
	}
	return ""
}

// NewTradeRequest is the body of POST /requests/admin.
type NewTradeRequest struct {
	ItemID      int           `json:"item_id"`
	RequesterID int           `json:"requester_id"`
	Message     *string       `json:"message"`
	Status      RequestStatus `json:"status"`
}

// Validate requires both parties and a known status. An empty status defaults to pending.
func (in *NewTradeRequest) Validate() error {
	if in.ItemID <= 0 || in.RequesterID <= 0 {
		return newValidationError("", MsgRequestParties)
	}
	if in.Status == "" {
		in.Status = RequestPending
	}
	if !in.Status.Valid() {
		return newValidationError("status", MsgUnknownStatus)
	}
	return nil
}

// TradeRequestUpdate is the body of PUT /requests/{id}/admin.
type TradeRequestUpdate struct {
	Message *string       `json:"message,omitempty"`
	Status  RequestStatus `json:"status,omitempty"`
}

// Validate rejects empty updates and unknown statuses.
func (in *TradeRequestUpdate) Validate() error {
	if in.Message == nil && in.Status == "" {
		return newValidationError("", MsgEmptyUpdate)
	}
	if in.Status != "" && !in.Status.Valid() {
		return newValidationError("status", MsgUnknownStatus)
	}
	return nil
}
