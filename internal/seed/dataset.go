package seed

import (
	"time"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultCurrentUserID is the persona selected after seeding.
const DefaultCurrentUserID = "user-mathias"

// Data is the fixed demonstration dataset.
type Data struct {
	Users        []models.User
	Documents    []models.Document
	Transactions []models.Transaction
	Reviews      []models.Review
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func nok(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Dataset returns a fresh copy of the demo data: 4 users, 6 documents,
// 4 transactions and 4 reviews.
func Dataset() Data {
	return Data{
		Users: []models.User{
			{ID: "user-elin", Name: "Elin Haug", Email: "elin.haug@nordnotes.demo", Role: models.RoleSeller,
				University: "Universitetet i Oslo (UiO)", Country: models.CountryNorway, Balance: nok("88.2"), JoinedAt: ts("2023-09-01T10:00:00Z")},
			{ID: "user-mathias", Name: "Mathias Lund", Email: "mathias.lund@nordnotes.demo", Role: models.RoleBoth,
				University: "Norges Handelshøyskole (NHH)", Country: models.CountryNorway, Balance: nok("58.5"), JoinedAt: ts("2024-01-12T08:30:00Z")},
			{ID: "user-sofia", Name: "Sofia Berg", Email: "sofia.berg@nordnotes.demo", Role: models.RoleBuyer,
				University: "Stockholms universitet", Country: models.CountrySweden, Balance: decimal.Zero, JoinedAt: ts("2024-03-22T15:45:00Z")},
			{ID: "user-hanna", Name: "Hanna Korhonen", Email: "hanna.korhonen@nordnotes.demo", Role: models.RoleSeller,
				University: "Københavns Universitet", Country: models.CountryDenmark, Balance: nok("71.1"), JoinedAt: ts("2023-11-05T12:20:00Z")},
		},
		Documents: []models.Document{
			{
				ID: "doc-statistikk", Title: "Statistikk: komplette eksamensnotater STK1110",
				Description: "Komplette eksamensbesvarelser, formler og typiske oppgaver fra STK1110. Perfekt for repetisjon før eksamen.",
				Price: nok("49"), SellerID: "user-elin", University: "Universitetet i Oslo (UiO)", Country: models.CountryNorway,
				Subject: "Statistikk", CourseCode: "STK1110", Type: models.DocumentTypeExamAnswer,
				RatingAverage: 4.5, RatingCount: 2, CreatedAt: ts("2024-04-15T09:00:00Z"), UpdatedAt: ts("2024-08-01T09:00:00Z"),
				PreviewURL: "https://files.nordnotes.demo/statistikk-stk1110.pdf", FileName: "STK1110-eksamensnotater.pdf",
				Tags: []string{"statistikk", "sannsynlighet", "UiO", "eksamen"}, Language: models.LanguageBokmal,
			},
			{
				ID: "doc-makro", Title: "Makroøkonomi sammendrag ECON2010",
				Description: "Kortfattet sammendrag med modeller, grafer og nøkkelbegreper fra ECON2010. Fokus på forståelse og repetisjon.",
				Price: nok("59"), SellerID: "user-elin", University: "Universitetet i Oslo (UiO)", Country: models.CountryNorway,
				Subject: "Økonomi", CourseCode: "ECON2010", Type: models.DocumentTypeSummary,
				RatingAverage: 4, RatingCount: 1, CreatedAt: ts("2024-02-20T11:30:00Z"), UpdatedAt: ts("2024-07-18T11:30:00Z"),
				PreviewURL: "https://files.nordnotes.demo/makroøkonomi-econ2010.pdf", FileName: "ECON2010-makrookonomi.pdf",
				Tags: []string{"økonomi", "makro", "UiO"}, Language: models.LanguageBokmal,
			},
			{
				ID: "doc-finans", Title: "Finans: forelesningsnotater FIN3001",
				Description: "Detaljerte forelesningsnotater med caser, illustrasjoner og løste oppgaver for FIN3001 ved NHH.",
				Price: nok("65"), SellerID: "user-mathias", University: "Norges Handelshøyskole (NHH)", Country: models.CountryNorway,
				Subject: "Finans", CourseCode: "FIN3001", Type: models.DocumentTypeLectureNotes,
				RatingAverage: 5, RatingCount: 1, CreatedAt: ts("2024-05-05T13:15:00Z"), UpdatedAt: ts("2024-09-02T13:15:00Z"),
				PreviewURL: "https://files.nordnotes.demo/finans-fin3001.pdf", FileName: "FIN3001-forelesningsnotater.pdf",
				Tags: []string{"finans", "nhh", "strategi"}, Language: models.LanguageBokmal,
			},
			{
				ID: "doc-jus", Title: "Juridisk metode og oppgaveløsning JUS1010",
				Description: "Oppgaveløsninger og juridisk metode forklart steg for steg. Strukturert etter eksamensmalen ved KU.",
				Price: nok("79"), SellerID: "user-hanna", University: "Københavns Universitet", Country: models.CountryDenmark,
				Subject: "Jus", CourseCode: "JUS1010", Type: models.DocumentTypeExerciseSolution,
				RatingAverage: 4, RatingCount: 1, CreatedAt: ts("2023-12-01T10:45:00Z"), UpdatedAt: ts("2024-06-15T10:45:00Z"),
				PreviewURL: "https://files.nordnotes.demo/jus1010.pdf", FileName: "JUS1010-oppgaver.pdf",
				Tags: []string{"jus", "KU", "case", "metode"}, Language: models.LanguageDanish,
			},
			{
				ID: "doc-psyk", Title: "Psykologi sammendrag PSY1501",
				Description: "Visuelle sammendrag og hukommelsesteknikker for PSY1501. Fokus på læringspsykologi og kognisjon.",
				Price: nok("55"), SellerID: "user-hanna", University: "Københavns Universitet", Country: models.CountryDenmark,
				Subject: "Psykologi", CourseCode: "PSY1501", Type: models.DocumentTypeSummary,
				CreatedAt: ts("2024-03-28T16:00:00Z"), UpdatedAt: ts("2024-03-28T16:00:00Z"),
				PreviewURL: "https://files.nordnotes.demo/psyk1501.pdf", FileName: "PSY1501-sammendrag.pdf",
				Tags: []string{"psykologi", "hukommelse", "skjema"}, Language: models.LanguageBokmal,
			},
			{
				ID: "doc-datasci", Title: "Datascience notater DATS2300 NTNU",
				Description: "Sammendrag av algoritmeanalyse, Python-snippets og eksamenstips fra DATS2300 ved NTNU.",
				Price: nok("69"), SellerID: "user-mathias", University: "NTNU", Country: models.CountryNorway,
				Subject: "Informatikk", CourseCode: "DATS2300", Type: models.DocumentTypeSummary,
				CreatedAt: ts("2024-06-10T09:40:00Z"), UpdatedAt: ts("2024-09-10T09:40:00Z"),
				PreviewURL: "https://files.nordnotes.demo/dats2300.pdf", FileName: "DATS2300-notater.pdf",
				Tags: []string{"datascience", "algoritmer", "ntnu"}, Language: models.LanguageBokmal,
			},
		},
		Transactions: []models.Transaction{
			{ID: "txn-1001", DocumentID: "doc-statistikk", BuyerID: "user-mathias", SellerID: "user-elin",
				Price: nok("49"), PlatformFee: nok("4.9"), SellerRevenue: nok("44.1"), CreatedAt: ts("2024-08-12T14:00:00Z"),
				PaymentMethod: models.PaymentVipps, Status: models.TransactionCompleted},
			{ID: "txn-1002", DocumentID: "doc-statistikk", BuyerID: "user-sofia", SellerID: "user-elin",
				Price: nok("49"), PlatformFee: nok("4.9"), SellerRevenue: nok("44.1"), CreatedAt: ts("2024-09-01T19:20:00Z"),
				PaymentMethod: models.PaymentCard, Status: models.TransactionCompleted},
			{ID: "txn-1003", DocumentID: "doc-finans", BuyerID: "user-sofia", SellerID: "user-mathias",
				Price: nok("65"), PlatformFee: nok("6.5"), SellerRevenue: nok("58.5"), CreatedAt: ts("2024-10-05T09:30:00Z"),
				PaymentMethod: models.PaymentStripe, Status: models.TransactionCompleted},
			{ID: "txn-1004", DocumentID: "doc-jus", BuyerID: "user-mathias", SellerID: "user-hanna",
				Price: nok("79"), PlatformFee: nok("7.9"), SellerRevenue: nok("71.1"), CreatedAt: ts("2024-07-18T17:45:00Z"),
				PaymentMethod: models.PaymentVipps, Status: models.TransactionCompleted},
		},
		Reviews: []models.Review{
			{ID: "rev-2001", DocumentID: "doc-statistikk", UserID: "user-mathias", Rating: 5,
				Comment: "Perfekt oversikt! Sparte meg masse tid i eksamensuka.", CreatedAt: ts("2024-08-13T08:00:00Z")},
			{ID: "rev-2002", DocumentID: "doc-statistikk", UserID: "user-sofia", Rating: 4,
				Comment: "God kvalitet og lett å forstå, men savnet noen eksempler.", CreatedAt: ts("2024-09-02T07:10:00Z")},
			{ID: "rev-2003", DocumentID: "doc-finans", UserID: "user-sofia", Rating: 5,
				Comment: "Elsker casene! Føles som forelesningene, bare mer konsise.", CreatedAt: ts("2024-10-06T12:30:00Z")},
			{ID: "rev-2004", DocumentID: "doc-jus", UserID: "user-mathias", Rating: 4,
				Comment: "Strukturerte notater som gjorde metodeoppgavene mye enklere.", CreatedAt: ts("2024-07-20T11:10:00Z")},
		},
	}
}
