package services

import (
	"math"
	"sort"

	"chat_rating_system/internal/db/models"
)

// Vote-share bands for the two special tags. Both rules require at least half
// the countable votes to carry the tag AND the raw score to sit inside the
// band; the miss band is deliberately asymmetric toward the negative side.
const (
	specialTagMinShare = 0.5

	bookBandLow  = -0.25
	bookBandHigh = 0.25

	missBandLow  = -0.75
	missBandHigh = 0.25
)

// scoreBuckets maps a raw score to the nearest classification, best to worst.
// Thresholds are lower bounds; the first bucket whose threshold the score
// reaches wins.
var scoreBuckets = []struct {
	threshold      float64
	classification models.Classification
}{
	{3.5, models.ClassificationFire},
	{2.5, models.ClassificationSmooth},
	{1.5, models.ClassificationSolid},
	{0.5, models.ClassificationDecent},
	{-0.5, models.ClassificationMid},
	{-1.5, models.ClassificationAwkward},
	{-2.5, models.ClassificationForced},
	{-3.5, models.ClassificationCringe},
	{math.Inf(-1), models.ClassificationDisaster},
}

// interquartileMean averages the middle half of the values with fractional
// weighting of the two boundary elements, so a single outlier is damped
// smoothly instead of being cut at a hard quartile edge.
func interquartileMean(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return values[0]
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	trim := float64(n) * 0.25
	k := int(math.Floor(trim))
	g := trim - float64(k)

	sum := 0.0
	for i := k + 1; i < n-(k+1); i++ {
		sum += sorted[i]
	}
	sum += (sorted[k] + sorted[n-1-k]) * (1 - g)

	return sum / (float64(n) - 2*trim)
}

// computeClassificationConsensus derives a target's consensus from its
// countable vote multiset. Classification stays nil below quorum even when a
// score is computable.
func computeClassificationConsensus(targetID string, votes []*models.ClassificationVote, quorum int) models.ConsensusResult {
	result := models.ConsensusResult{
		TargetID: targetID,
		Counts:   make(map[models.Classification]int),
	}

	weights := make([]float64, 0, len(votes))
	for _, vote := range votes {
		if !vote.Counted {
			continue
		}
		result.Counts[vote.Classification]++
		result.TotalVotes++
		weights = append(weights, vote.Classification.Weight())
	}

	if result.TotalVotes == 0 {
		return result
	}

	result.RawScore = interquartileMean(weights)

	if result.TotalVotes < quorum {
		return result
	}

	classification := classificationForVotes(result)
	result.Classification = &classification
	result.DisplayName = classification.DisplayName()

	return result
}

func classificationForVotes(result models.ConsensusResult) models.Classification {
	total := float64(result.TotalVotes)

	bookShare := float64(result.Counts[models.ClassificationBook]) / total
	if bookShare >= specialTagMinShare && result.RawScore > bookBandLow && result.RawScore < bookBandHigh {
		return models.ClassificationBook
	}

	missShare := float64(result.Counts[models.ClassificationMiss]) / total
	if missShare >= specialTagMinShare && result.RawScore > missBandLow && result.RawScore < missBandHigh {
		return models.ClassificationMiss
	}

	return classificationForScore(result.RawScore)
}

func classificationForScore(score float64) models.Classification {
	for _, bucket := range scoreBuckets {
		if score >= bucket.threshold {
			return bucket.classification
		}
	}

	return models.ClassificationDisaster
}

// computeRatingConsensus applies the same trimmed mean directly to the raw
// rating values.
func computeRatingConsensus(votes []*models.RatingVote) models.RatingConsensus {
	values := make([]float64, 0, len(votes))
	for _, vote := range votes {
		if !vote.Counted {
			continue
		}
		values = append(values, float64(vote.Rating))
	}

	if len(values) == 0 {
		return models.RatingConsensus{}
	}

	return models.RatingConsensus{
		Rating:    int(math.Round(interquartileMean(values))),
		VoteCount: len(values),
	}
}

func clampRating(rating, min, max int) int {
	if rating < min {
		return min
	}
	if rating > max {
		return max
	}
	return rating
}
