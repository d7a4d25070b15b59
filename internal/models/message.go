package models

import "time"

// Message - сообщение в переписке по предложению.
// senderType выводится из роли аккаунта отправителя, не из запроса.
type Message struct {
	ID         uint      `json:"id"`
	ProposalID uint      `json:"proposalId"`
	SenderID   uint      `json:"senderId"`
	SenderType UserRole  `json:"senderType"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
