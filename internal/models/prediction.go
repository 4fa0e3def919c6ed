package models

// TarotCard is one atomic entry of the tarot catalog.
type TarotCard struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	Icon    string `json:"icon"`
}

// DailyPrediction is derived state: regenerated deterministically from the
// viewer's zodiac sign and the current date/hour, never persisted.
type DailyPrediction struct {
	Text          string    `json:"text"`
	Karma         int       `json:"karma"`
	Luck          int       `json:"luck"`
	Love          int       `json:"love"`
	LuckyColor    string    `json:"luckyColor"`
	LuckyColorHex string    `json:"luckyColorHex"`
	TarotCard     TarotCard `json:"tarotCard"`
	Teaser        string    `json:"teaser"`
}
