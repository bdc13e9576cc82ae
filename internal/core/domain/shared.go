package domain

import "strconv"

// ID identifies a locally persisted entity (hex object id).
type ID string

// ProductID identifies a product in the remote products service.
type ProductID int64

func ParseProductID(raw string) (ProductID, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return ProductID(id), true
}

func (id ProductID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type Amount int

func NewAmountFromCents(cents int) Amount {
	return Amount(cents)
}

func NewAmountFromFloat(value float64) Amount {
	return Amount(value*100 + 0.5)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) ToValue() int {
	return int(a) / 100
}

func (a Amount) ToFloat() float64 {
	return float64(a) / 100
}

type Event interface {
	GetName() string
	GetEntityName() string
}
