package model

// CompletionResponse is the result of a text completion call. Delta carries
// the most recent text fragment on streaming calls and is empty otherwise.
type CompletionResponse struct {
	Text  string
	Delta string
}

// ChatResponse is the result of a chat call. Delta carries the most recent
// text fragment on streaming calls and is empty otherwise.
type ChatResponse struct {
	Message Message
	Delta   string
}
