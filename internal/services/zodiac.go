package services

import "time"

// The twelve zodiac labels, in Russian as the product ships them.
const (
	SignCapricorn   = "Козерог"
	SignAquarius    = "Водолей"
	SignPisces      = "Рыбы"
	SignAries       = "Овен"
	SignTaurus      = "Телец"
	SignGemini      = "Близнецы"
	SignCancer      = "Рак"
	SignLeo         = "Лев"
	SignVirgo       = "Дева"
	SignLibra       = "Весы"
	SignScorpio     = "Скорпион"
	SignSagittarius = "Стрелец"
)

// ZodiacSigns lists every sign label once, in calendar order starting from
// Capricorn.
var ZodiacSigns = []string{
	SignCapricorn,
	SignAquarius,
	SignPisces,
	SignAries,
	SignTaurus,
	SignGemini,
	SignCancer,
	SignLeo,
	SignVirgo,
	SignLibra,
	SignScorpio,
	SignSagittarius,
}

// ZodiacSignFor maps a birth date to its tropical zodiac sign. The function
// is total: every valid (month, day) pair yields exactly one label; the year
// is ignored.
func ZodiacSignFor(birthDate time.Time) string {
	return zodiacSignFor(int(birthDate.Month()), birthDate.Day())
}

func zodiacSignFor(month int, day int) string {
	switch {
	case (month == 1 && day <= 19) || (month == 12 && day >= 22):
		return SignCapricorn
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		return SignAquarius
	case (month == 2 && day >= 19) || (month == 3 && day <= 20):
		return SignPisces
	case (month == 3 && day >= 21) || (month == 4 && day <= 19):
		return SignAries
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		return SignTaurus
	case (month == 5 && day >= 21) || (month == 6 && day <= 20):
		return SignGemini
	case (month == 6 && day >= 21) || (month == 7 && day <= 22):
		return SignCancer
	case (month == 7 && day >= 23) || (month == 8 && day <= 22):
		return SignLeo
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		return SignVirgo
	case (month == 9 && day >= 23) || (month == 10 && day <= 22):
		return SignLibra
	case (month == 10 && day >= 23) || (month == 11 && day <= 21):
		return SignScorpio
	case (month == 11 && day >= 22) || (month == 12 && day <= 21):
		return SignSagittarius
	}
	return SignCapricorn
}

// IsZodiacSign reports whether label is one of the twelve known signs.
func IsZodiacSign(label string) bool {
	for _, sign := range ZodiacSigns {
		if sign == label {
			return true
		}
	}
	return false
}
