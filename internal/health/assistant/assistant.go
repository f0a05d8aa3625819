// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package assistant is the health chat: a message thread where every user
// message gets an immediate keyword-matched wellness answer. The thread lives
// in process memory and resets on restart, like a fresh chat window.
package assistant

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the chat thread.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Greeting opens every thread.
const Greeting = "Hello! I'm your AI health assistant. How can I help you today?"

// Suggestions are the prompt chips shown next to the input box.
var Suggestions = []string{
	"How can I improve my sleep?",
	"What's a good workout for beginners?",
	"How much water should I drink daily?",
	"What are healthy breakfast options?",
	"How can I reduce stress naturally?",
}
