package domain

// Organization is a care provider that users register against by code.
type Organization struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Code      string `json:"code" db:"code"`
	CreatedAt string `json:"createdAt" db:"created_at"`
}
