package domain

// FeatureItem is one token of a feature with its aggregate weight.
type FeatureItem struct {
	Token  Key
	Weight float64
}

// Feature is a weighted multiset of tokens describing one document, e.g.
// token frequencies or a citation list. Tokens appear once each, in
// first-seen order.
type Feature []FeatureItem

// FeatureFromValue wraps a raw field value into a Feature. Weighted tokens
// keep their weights; unweighted elements count their multiplicity.
// Repeated tokens combine by summing.
func FeatureFromValue(v FieldValue) Feature {
	elements, ok := v.(List)
	if !ok {
		elements = List{v}
	}

	feature := make(Feature, 0, len(elements))
	position := make(map[Key]int, len(elements))
	for _, el := range elements {
		token := NormalizeElement(el)
		weight := 1.0
		if t, isToken := el.(Token); isToken {
			weight = t.Weight
		}
		if i, seen := position[token]; seen {
			feature[i].Weight += weight
			continue
		}
		position[token] = len(feature)
		feature = append(feature, FeatureItem{Token: token, Weight: weight})
	}
	return feature
}

// Weight returns the aggregate weight of the given token, or zero when the
// feature does not contain it.
func (f Feature) Weight(token Key) float64 {
	for _, item := range f {
		if item.Token == token {
			return item.Weight
		}
	}
	return 0
}

// Contains reports whether the feature carries the given token.
func (f Feature) Contains(token Key) bool {
	for _, item := range f {
		if item.Token == token {
			return true
		}
	}
	return false
}
