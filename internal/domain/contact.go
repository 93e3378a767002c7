package domain

import "time"

// Contact — сообщение из формы обратной связи. Журнальная запись без статуса.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

func NewContact(name, email, phone, message string) *Contact {
	return &Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	}
}
