package domain

import (
	"math"
	"unicode/utf16"
)

const (
	MaxPlausibleScore   = 999999
	MinLogHashLength    = 6
	FlaggedScorePercent = 35
	MaxAcceptBonus      = 25 // bonus is drawn from [0, MaxAcceptBonus)

	// keeps the int64 conversion of absurd submissions well defined
	maxScoreMagnitude = 1e15
)

// ScoreStatus is the outcome of a leaderboard submission.
type ScoreStatus string

const (
	ScoreAccepted ScoreStatus = "accepted"
	ScoreFlagged  ScoreStatus = "flagged"
)

// ScoreVerdict is a verified leaderboard submission.
type ScoreVerdict struct {
	ClientScore   float64
	VerifiedScore int64
	Status        ScoreStatus
}

// IsSuspicious flags implausibly high scores and missing or short log hashes.
func IsSuspicious(clientScore float64, rawLogHash string) bool {
	return clientScore > MaxPlausibleScore || utf16Len(rawLogHash) < MinLogHashLength
}

// utf16Len counts UTF-16 code units, the length browsers report for a string.
// Characters outside the BMP count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// VerifyScore classifies a submission. Flagged scores are cut to 35%;
// accepted scores get bonus added. The heuristic is illustrative, not secure.
func VerifyScore(clientScore float64, rawLogHash string, bonus int64) ScoreVerdict {
	if math.IsNaN(clientScore) || math.IsInf(clientScore, 0) {
		clientScore = 0
	}
	clientScore = math.Max(-maxScoreMagnitude, math.Min(clientScore, maxScoreMagnitude))
	if IsSuspicious(clientScore, rawLogHash) {
		return ScoreVerdict{
			ClientScore:   clientScore,
			VerifiedScore: int64(math.Floor(clientScore * FlaggedScorePercent / 100)),
			Status:        ScoreFlagged,
		}
	}
	return ScoreVerdict{
		ClientScore:   clientScore,
		VerifiedScore: int64(math.Floor(clientScore)) + bonus,
		Status:        ScoreAccepted,
	}
}
