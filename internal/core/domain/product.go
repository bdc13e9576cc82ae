package domain

// ProductRef is a snapshot of a remote product taken at lookup time. It lives
// only for the duration of one inventory operation and is never persisted.
type ProductRef struct {
	ID          ProductID
	Name        string
	Description string
	Price       Amount
	SKU         string
}

type LookupStatus string

const (
	LookupFound    LookupStatus = "found"
	LookupNotFound LookupStatus = "not_found"
	LookupDegraded LookupStatus = "degraded"
)

// LookupOutcome is the tagged result of one remote product lookup. NotFound
// and Degraded both read as "product absent" to the caller; they stay separate
// so a fallback after exhausted retries can be logged as a degradation rather
// than a genuine absence.
type LookupOutcome struct {
	Status  LookupStatus
	Product *ProductRef
	Cause   error
}

func (o LookupOutcome) Found() bool {
	return o.Status == LookupFound && o.Product != nil
}

func NewFoundOutcome(product *ProductRef) LookupOutcome {
	return LookupOutcome{Status: LookupFound, Product: product}
}

func NewNotFoundOutcome() LookupOutcome {
	return LookupOutcome{Status: LookupNotFound}
}

func NewDegradedOutcome(cause error) LookupOutcome {
	return LookupOutcome{Status: LookupDegraded, Cause: cause}
}
