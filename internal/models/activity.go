package models

// ActivityRating is an ordinal suitability score. The zero value is Poor.
type ActivityRating int

const (
	RatingPoor ActivityRating = iota
	RatingFair
	RatingGood
	RatingExcellent
)

func (r ActivityRating) String() string {
	switch r {
	case RatingPoor:
		return "poor"
	case RatingFair:
		return "fair"
	case RatingGood:
		return "good"
	case RatingExcellent:
		return "excellent"
	}
	return "unknown"
}

// Up moves the rating one step toward Excellent, stopping at Excellent
func (r ActivityRating) Up() ActivityRating {
	if r >= RatingExcellent {
		return RatingExcellent
	}
	return r + 1
}

// Down moves the rating one step toward Poor, stopping at Poor
func (r ActivityRating) Down() ActivityRating {
	if r <= RatingPoor {
		return RatingPoor
	}
	return r - 1
}

// ActivityScore is the rating for one activity and the reasons behind it
type ActivityScore struct {
	Rating  ActivityRating
	Factors []string
}

// ActivityConditions holds independent scores for each supported activity
type ActivityConditions struct {
	Fishing ActivityScore
	Surfing ActivityScore
	Boating ActivityScore
}
