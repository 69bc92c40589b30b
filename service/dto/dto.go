package dto

type NewMessage struct {
	Text string `json:"text"`
}

type Index struct {
	Index uint64 `json:"index"`
}

type Total struct {
	Total uint64 `json:"total"`
}

type PostedMessage struct {
	Premium bool   `json:"premium"`
	Sender  string `json:"sender"`
	Text    string `json:"text"`
}

type MessageEvent struct {
	Index   uint64        `json:"index"`
	Message PostedMessage `json:"message"`
}
