package domain

import "time"

// ChatQuestion é o corpo da requisição do chat
type ChatQuestion struct {
	Question string `json:"question"`
}

// ChatAnswer é uma resposta pronta do chat, em markdown
type ChatAnswer struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
