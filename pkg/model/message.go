package model

// MessageType is the kind of a platform message.
type MessageType string

const (
	MessageRequestNotification MessageType = "request_notification"
	MessageStatusUpdate        MessageType = "status_update"
	MessageSystemAnnouncement  MessageType = "system_announcement"
	MessageChat                MessageType = "chat_message"
)

// MessageTypes lists the message types in filter menu order.
var MessageTypes = []MessageType{
	MessageRequestNotification,
	MessageStatusUpdate,
	MessageSystemAnnouncement,
	MessageChat,
}

var messageTypeLabels = map[MessageType]string{
	MessageRequestNotification: "请求通知",
	MessageStatusUpdate:        "状态更新",
	MessageSystemAnnouncement:  "系统公告",
	MessageChat:                "聊天消息",
}

// Label returns the display text of the type; unknown values pass through.
func (t MessageType) Label() string {
	if l, ok := messageTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Message is a notification or chat message between users.
type Message struct {
	MessageID         int         `json:"message_id"`
	SenderID          *int        `json:"sender_id"`
	SenderUsername    string      `json:"sender_username,omitempty"`
	RecipientID       int         `json:"recipient_id"`
	RecipientUsername string      `json:"recipient_username,omitempty"`
	Type              MessageType `json:"type"`
	RelatedID         *int        `json:"related_id,omitempty"`
	Content           string      `json:"content"`
	IsRead            bool        `json:"is_read"`
	CreatedAt         string      `json:"created_at,omitempty"`
}

// Sender returns the sender's username, or the system label for platform messages.
func (m *Message) Sender() string {
	if m.SenderUsername == "" || m.SenderUsername == "System" {
		return "系统"
	}
	return m.SenderUsername
}

// ReadLabel returns the display text of the read flag.
func (m *Message) ReadLabel() string {
	if m.IsRead {
		return "已读"
	}
	return "未读"
}
