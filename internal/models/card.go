package models

// Card is a single term/definition pair and the number of times it was
// answered wrongly.
type Card struct {
	Term       string
	Definition string
	Mistakes   int
}
