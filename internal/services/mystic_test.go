package services

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGeneratePredictionIsDeterministic(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)

	first := GeneratePrediction(SignCancer, at, time.UTC)
	second := GeneratePrediction(SignCancer, at, time.UTC)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("identical inputs produced different predictions (-first +second):\n%s", diff)
	}
}

func TestGeneratePredictionStableWithinHour(t *testing.T) {
	early := time.Date(2026, 3, 14, 15, 0, 1, 0, time.UTC)
	late := time.Date(2026, 3, 14, 15, 59, 59, 0, time.UTC)

	first := GeneratePrediction(SignLeo, early, time.UTC)
	second := GeneratePrediction(SignLeo, late, time.UTC)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same hour produced different predictions (-first +second):\n%s", diff)
	}
}

func TestGeneratePredictionRanges(t *testing.T) {
	for _, sign := range ZodiacSigns {
		for hour := 0; hour < 24; hour++ {
			at := time.Date(2026, 6, 1, hour, 0, 0, 0, time.UTC)
			prediction := GeneratePrediction(sign, at, time.UTC)

			if prediction.Karma < 60 || prediction.Karma > 100 {
				t.Fatalf("%s hour %d: karma %d out of [60, 100]", sign, hour, prediction.Karma)
			}
			if prediction.Luck < 50 || prediction.Luck > 100 {
				t.Fatalf("%s hour %d: luck %d out of [50, 100]", sign, hour, prediction.Luck)
			}
			if prediction.Love < 40 || prediction.Love > 100 {
				t.Fatalf("%s hour %d: love %d out of [40, 100]", sign, hour, prediction.Love)
			}
			if prediction.Text == "" || prediction.Teaser == "" {
				t.Fatalf("%s hour %d: empty text or teaser", sign, hour)
			}
			if prediction.TarotCard.Name == "" || prediction.TarotCard.Meaning == "" {
				t.Fatalf("%s hour %d: incomplete tarot card %+v", sign, hour, prediction.TarotCard)
			}
		}
	}
}

func TestGeneratePredictionColorPairIsAtomic(t *testing.T) {
	validHex := make(map[string]string, len(mysticColors))
	for _, color := range mysticColors {
		validHex[color.Name] = color.Hex
	}

	for hour := 0; hour < 24; hour++ {
		at := time.Date(2026, 9, 9, hour, 0, 0, 0, time.UTC)
		prediction := GeneratePrediction(SignVirgo, at, time.UTC)
		if validHex[prediction.LuckyColor] != prediction.LuckyColorHex {
			t.Fatalf("hour %d: color %q paired with foreign hex %q", hour, prediction.LuckyColor, prediction.LuckyColorHex)
		}
	}
}

func TestPredictionSeedVariesByHourAndSign(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	sameHour := PredictionSeed(SignAries, at, time.UTC)
	nextHour := PredictionSeed(SignAries, at.Add(time.Hour), time.UTC)
	otherSign := PredictionSeed(SignTaurus, at, time.UTC)

	if sameHour == nextHour {
		t.Fatalf("seed did not change across hours: %q", sameHour)
	}
	if sameHour == otherSign {
		t.Fatalf("seed did not change across signs: %q", sameHour)
	}
}

func TestSeedStreamPickStaysInBounds(t *testing.T) {
	stream := newSeedStream("bounds")
	for i := 0; i < 1000; i++ {
		if index := stream.pick(7); index < 0 || index > 6 {
			t.Fatalf("pick(7) = %d, out of bounds", index)
		}
	}
}

func TestCatalogsAreNonEmpty(t *testing.T) {
	if len(predictionTemplates) == 0 || len(mysticColors) == 0 || len(tarotCards) == 0 || len(teasers) == 0 {
		t.Fatal("all content catalogs must be non-empty")
	}
}
