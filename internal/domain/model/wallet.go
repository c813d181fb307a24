package model

import "time"

// Wallet holds a user's platform credit.
type Wallet struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Balance   float64   `json:"balance"`
	Currency  string    `json:"currency,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID        string    `json:"_id"`
	Wallet    string    `json:"wallet"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Reference string    `json:"reference,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// CreditRequest tops up a user's wallet.
type CreditRequest struct {
	UserID string  `json:"user"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}
