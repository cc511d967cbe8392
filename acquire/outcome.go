package acquire

import "storefront/models"

// Outcome is the classified result of one query against the product source:
// Ok, Empty or Failed.
type Outcome interface {
	// Label is "remote" when the records came from the source, "fallback" otherwise.
	Label() string
	isOutcome()
}

type Ok struct {
	Records []models.Product
}

type Empty struct{}

type Failed struct {
	Reason error
}

func (Ok) isOutcome()     {}
func (Empty) isOutcome()  {}
func (Failed) isOutcome() {}

func (Ok) Label() string     { return "remote" }
func (Empty) Label() string  { return "fallback" }
func (Failed) Label() string { return "fallback" }

// Classify turns a source answer into an Outcome. An error wins over any
// records returned alongside it.
func Classify(records []models.Product, err error) Outcome {
	switch {
	case err != nil:
		return Failed{Reason: err}
	case len(records) == 0:
		return Empty{}
	default:
		return Ok{Records: records}
	}
}

// Resolve collapses an outcome to the data set a page shows. Ok records are
// returned as they are, in source order; anything else yields fallback.
func Resolve(o Outcome, fallback []models.Product) []models.Product {
	if ok, isOk := o.(Ok); isOk {
		return ok.Records
	}
	return fallback
}
