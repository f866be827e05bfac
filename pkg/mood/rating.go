package mood

// Rating is the ordered seven-point mood scale. The zero value means the
// rating has not been chosen yet; commit paths coerce it to RatingNeutral.
type Rating string

const (
	RatingUnset         Rating = ""
	RatingExtremelyBad  Rating = "extremely_bad"
	RatingVeryBad       Rating = "very_bad"
	RatingBad           Rating = "bad"
	RatingNeutral       Rating = "neutral"
	RatingGood          Rating = "good"
	RatingVeryGood      Rating = "very_good"
	RatingExtremelyGood Rating = "extremely_good"
)

// Scale lists the ratings from worst to best.
func Scale() []Rating {
	return []Rating{
		RatingExtremelyBad,
		RatingVeryBad,
		RatingBad,
		RatingNeutral,
		RatingGood,
		RatingVeryGood,
		RatingExtremelyGood,
	}
}

type face struct {
	Symbol  string
	Meaning string
}

var faces = map[Rating]face{
	RatingExtremelyBad:  {Symbol: "😖", Meaning: "extremely bad"},
	RatingVeryBad:       {Symbol: "😦", Meaning: "very bad"},
	RatingBad:           {Symbol: "🙁", Meaning: "bad"},
	RatingNeutral:       {Symbol: "😐", Meaning: "neutral"},
	RatingGood:          {Symbol: "🙂", Meaning: "good"},
	RatingVeryGood:      {Symbol: "😁", Meaning: "very good"},
	RatingExtremelyGood: {Symbol: "🤩", Meaning: "extremely good"},
}

// Valid reports whether r is one of the seven scale values.
func (r Rating) Valid() bool {
	_, ok := faces[r]
	return ok
}

// Index returns the position of r on the scale, or -1 when unset or unknown.
func (r Rating) Index() int {
	for i, v := range Scale() {
		if v == r {
			return i
		}
	}
	return -1
}

func (r Rating) String() string {
	if f, ok := faces[r]; ok {
		return f.Symbol
	}
	return " "
}

// Meaning returns a human readable label for the rating.
func (r Rating) Meaning() string {
	if f, ok := faces[r]; ok {
		return f.Meaning
	}
	return "unset"
}
