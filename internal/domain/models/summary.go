package models

// Summary holds the descriptive statistics computed over one projected
// value sequence (e.g. all PE values in the selected window).
//
// Every float field is rounded to two decimal places at computation time;
// the rounding is part of the API contract, not presentation. Percentile is
// the share of values less than or equal to the LATEST value in the
// sequence, i.e. where the most recent observation sits in its own history.
//
// swagger:model Summary
type Summary struct {
	Mean        float64 `json:"mean" example:"14.21"`
	Median      float64 `json:"median" example:"13.9"`
	StdDev      float64 `json:"std_dev" example:"2.87"`
	Min         float64 `json:"min" example:"8.03"`
	Max         float64 `json:"max" example:"21.55"`
	PlusOneDev  float64 `json:"plus_one_dev" example:"17.08"`
	MinusOneDev float64 `json:"minus_one_dev" example:"11.34"`
	PlusTwoDev  float64 `json:"plus_two_dev" example:"19.95"`
	MinusTwoDev float64 `json:"minus_two_dev" example:"8.47"`
	Percentile  float64 `json:"percentile" example:"62.5"`
	Count       int     `json:"count" example:"248"`
}
