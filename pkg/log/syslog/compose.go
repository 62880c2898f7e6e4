package syslog

// Compose calls all providers in order and merges their elements by ID. An element from a later provider replaces
// an earlier element with the same ID as a whole, params are never merged. The result keeps the position of the
// first occurrence of every ID. Nil providers and nil results are treated as empty.
func Compose(ctx *ProviderContext, providers ...Provider) []SDElement {
	var ret []SDElement
	index := make(map[string]int)
	for _, provider := range providers {
		if provider == nil {
			continue
		}
		for _, elem := range provider.Provide(ctx) {
			if i, ok := index[elem.ID]; ok {
				ret[i] = elem
				continue
			}
			index[elem.ID] = len(ret)
			ret = append(ret, elem)
		}
	}
	return ret
}
