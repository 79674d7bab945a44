package domain

// Conversation is a customer/staff chat session.
type Conversation struct {
	ID               int64  `json:"id"`
	CustomerUsername string `json:"customerUsername"`
	StaffUsername    string `json:"staffUsername"`
}

// ChatMessage is one message inside a conversation.
type ChatMessage struct {
	ID             int64  `json:"id"`
	ConversationID int64  `json:"conversationId"`
	Sender         string `json:"sender"`
	Content        string `json:"content"`
	SentAt         string `json:"sentAt"`
}
