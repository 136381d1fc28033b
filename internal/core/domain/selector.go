package domain

// Selector chooses documents from a corpus. The three concrete forms
// mirror the query surface: indexed field values, primary keys, and
// zero-based insertion positions. The interface is sealed so that
// selection can evaluate exhaustively.
type Selector interface {
	selector()
}

// FieldSelector selects documents whose indexed field normalizes to one of
// the given keys. With multiple keys the result is the order-preserving
// concatenation of the per-key results, not de-duplicated.
type FieldSelector struct {
	Name   string
	Values []Key
}

// ByField builds a field selector.
func ByField(name string, values ...Key) FieldSelector {
	return FieldSelector{Name: name, Values: values}
}

// KeySelector selects documents by primary identity key, in the order
// given.
type KeySelector []string

// ByKeys builds a primary-key selector.
func ByKeys(ids ...string) KeySelector { return KeySelector(ids) }

// PositionSelector selects documents by zero-based position in the
// corpus's insertion order.
type PositionSelector []int

// ByPositions builds a position selector.
func ByPositions(positions ...int) PositionSelector {
	return PositionSelector(positions)
}

func (FieldSelector) selector()    {}
func (KeySelector) selector()      {}
func (PositionSelector) selector() {}
