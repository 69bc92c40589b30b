package model

type Message struct {
	Id      uint64 `storm:"id,increment"`
	Premium bool
	Sender  string
	Text    string
}
