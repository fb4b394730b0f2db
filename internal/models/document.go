package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocumentType string

const (
	DocumentTypeExamAnswer       DocumentType = "exam-answer"
	DocumentTypeSummary          DocumentType = "summary"
	DocumentTypeLectureNotes     DocumentType = "lecture-notes"
	DocumentTypeExerciseSolution DocumentType = "exercise-solution"
	DocumentTypeOther            DocumentType = "other"
)

type Language string

const (
	LanguageBokmal  Language = "nb"
	LanguageNynorsk Language = "nn"
	LanguageEnglish Language = "en"
	LanguageSwedish Language = "sv"
	LanguageDanish  Language = "da"
)

// MinDocumentPrice is the lowest listing price accepted by the publishing form.
var MinDocumentPrice = decimal.NewFromInt(15)

// Document is a study document listed for sale. RatingAverage is the mean of
// the document's review ratings rounded to one decimal, 0 while unrated.
type Document struct {
	ID            string          `json:"id" bson:"id"`
	Title         string          `json:"title" bson:"title"`
	Description   string          `json:"description" bson:"description"`
	Price         decimal.Decimal `json:"priceNOK" bson:"priceNOK"`
	SellerID      string          `json:"sellerId" bson:"sellerId"`
	University    string          `json:"university" bson:"university"`
	Country       CountryCode     `json:"country" bson:"country"`
	Subject       string          `json:"subject" bson:"subject"`
	CourseCode    string          `json:"courseCode" bson:"courseCode"`
	Type          DocumentType    `json:"type" bson:"type"`
	RatingAverage float64         `json:"ratingAverage" bson:"ratingAverage"`
	RatingCount   int             `json:"ratingCount" bson:"ratingCount"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt" bson:"updatedAt"`
	PreviewURL    string          `json:"previewUrl" bson:"previewUrl"`
	FileName      string          `json:"fileName" bson:"fileName"`
	Tags          []string        `json:"tags" bson:"tags"`
	Language      Language        `json:"language" bson:"language"`
}
