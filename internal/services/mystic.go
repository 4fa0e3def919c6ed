package services

import (
	"fmt"
	"time"

	"github.com/velmora/aetheria/internal/models"
)

// The generator is the deterministic fallback behind every prediction the app
// shows: the same (zodiac, calendar day, hour) triple must yield a
// byte-identical DailyPrediction on every call, in any process. Richer text
// from the generative service may later replace Text, never the numbers.

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// seedStream is a small deterministic pseudo-random stream: an FNV-1a hash of
// the seed string feeds a Mulberry-style avalanche mixer. Not cryptographic;
// the stream only has to stay stable across releases.
type seedStream struct {
	state uint32
}

func newSeedStream(seed string) *seedStream {
	hash := fnvOffsetBasis
	for _, b := range []byte(seed) {
		hash ^= uint32(b)
		hash *= fnvPrime
	}
	return &seedStream{state: hash}
}

// next returns a float in [0, 1).
func (stream *seedStream) next() float64 {
	h := stream.state
	h = (h ^ (h >> 16)) * 2246822507
	h = (h ^ (h >> 13)) * 3266489909
	stream.state = h
	return float64(h) / 4294967296
}

// pick maps one draw onto a catalog index, clamped to bounds.
func (stream *seedStream) pick(size int) int {
	if size <= 0 {
		return 0
	}
	index := int(stream.next() * float64(size))
	if index >= size {
		index = size - 1
	}
	return index
}

// intInRange draws an integer in [low, high] inclusive.
func (stream *seedStream) intInRange(low int, high int) int {
	return low + int(stream.next()*float64(high-low+1))
}

// PredictionSeed builds the seed string for a zodiac sign at a given instant.
// Granularity is (local calendar day, hour): reloads within the hour repeat
// the prediction, a new hour may change it.
func PredictionSeed(zodiac string, at time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	localized := at.In(location)
	return fmt.Sprintf("%s-%d-%s", DayKey(localized, location), localized.Hour(), zodiac)
}

// GeneratePrediction derives the daily prediction for a zodiac sign.
// Draw order is fixed and must never be reordered:
// template, color, tarot, teaser, karma, luck, love.
func GeneratePrediction(zodiac string, at time.Time, location *time.Location) models.DailyPrediction {
	stream := newSeedStream(PredictionSeed(zodiac, at, location))

	template := predictionTemplates[stream.pick(len(predictionTemplates))]
	color := mysticColors[stream.pick(len(mysticColors))]
	card := tarotCards[stream.pick(len(tarotCards))]
	teaser := teasers[stream.pick(len(teasers))]

	return models.DailyPrediction{
		Text:          template,
		Karma:         stream.intInRange(60, 100),
		Luck:          stream.intInRange(50, 100),
		Love:          stream.intInRange(40, 100),
		LuckyColor:    color.Name,
		LuckyColorHex: color.Hex,
		TarotCard:     card,
		Teaser:        teaser,
	}
}
