package models

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Classification string

const (
	ClassificationFire     Classification = "fire"
	ClassificationSmooth   Classification = "smooth"
	ClassificationSolid    Classification = "solid"
	ClassificationDecent   Classification = "decent"
	ClassificationMid      Classification = "mid"
	ClassificationBook     Classification = "book"
	ClassificationMiss     Classification = "miss"
	ClassificationAwkward  Classification = "awkward"
	ClassificationForced   Classification = "forced"
	ClassificationCringe   Classification = "cringe"
	ClassificationDisaster Classification = "disaster"
)

// classificationWeights maps every votable tag to its score contribution.
// Book and miss are neutral: their meaning comes from the share-based special
// rules, not from the weighted mean.
var classificationWeights = map[Classification]float64{
	ClassificationFire:     4,
	ClassificationSmooth:   3,
	ClassificationSolid:    2,
	ClassificationDecent:   1,
	ClassificationMid:      0,
	ClassificationBook:     0,
	ClassificationMiss:     0,
	ClassificationAwkward:  -1,
	ClassificationForced:   -2,
	ClassificationCringe:   -3,
	ClassificationDisaster: -4,
}

func (c Classification) String() string {
	return string(c)
}

func (c Classification) Weight() float64 {
	return classificationWeights[c]
}

func (c Classification) Valid() bool {
	_, ok := classificationWeights[c]
	return ok
}

func (c Classification) DisplayName() string {
	return cases.Title(language.English).String(c.String())
}

func ParseClassification(value string) (Classification, error) {
	classification := Classification(value)
	if !classification.Valid() {
		return "", fmt.Errorf("unknown classification: %q", value)
	}

	return classification, nil
}
