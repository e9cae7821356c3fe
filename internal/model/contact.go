package model

import "github.com/deppfellow/lazy-virtuoso/internal/validation"

// ContactStatusReceived is reported back once a message is stored.
const ContactStatusReceived = "received"

// ContactMessage is stored in the "contactmessage" collection.
//
// InquiryType is free text; the form offers Art, Collaboration,
// Commissions and General.
type ContactMessage struct {
	Base        `bson:",inline"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	InquiryType string `bson:"inquiry_type" json:"inquiry_type"`
	Message     string `bson:"message" json:"message"`
}

type CreateContactMessageRequest struct {
	Name        *string `json:"name" validate:"required"`
	Email       *string `json:"email" validate:"required"`
	InquiryType *string `json:"inquiry_type" validate:"required"`
	Message     *string `json:"message" validate:"required"`
}

func (r *CreateContactMessageRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateContactMessageRequest) ToContactMessage() *ContactMessage {
	return &ContactMessage{
		Name:        value(r.Name),
		Email:       value(r.Email),
		InquiryType: value(r.InquiryType),
		Message:     value(r.Message),
	}
}
