package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Translation struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	OriginalText   string             `json:"originalText" bson:"originalText"`
	TranslatedText string             `json:"translatedText" bson:"translatedText"`
	SourceLang     string             `json:"sourceLang" bson:"sourceLang"`
	TargetLang     string             `json:"targetLang" bson:"targetLang"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

type TranslateRequest struct {
	Text   string `json:"text" validate:"required"`
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// Language is one entry of the fixed list the client offers for source/target
// selection. The codes are forwarded to providers as-is.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
