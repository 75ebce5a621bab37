package schemaimport

// mergeRoot computes the closure engine's seed set (spec §4.E): every
// root-operation-type definition found across all files, in file visit
// order, followed by the root file's other admitted definitions; then
// same-named definitions are merged by concatenating their Fields,
// matching spec §8's Root-merge invariant (root-file first).
func mergeRoot(typeDefinitions [][]Definition) []Definition {
	var concatenated []Definition

	for _, fileDefs := range typeDefinitions {
		for _, d := range fileDefs {
			if rootTypeNames[d.Name] {
				concatenated = append(concatenated, d)
			}
		}
	}

	if len(typeDefinitions) > 0 {
		for _, d := range typeDefinitions[0] {
			if !rootTypeNames[d.Name] {
				concatenated = append(concatenated, d)
			}
		}
	}

	var seed []Definition
	index := make(map[string]int)
	for _, d := range concatenated {
		if i, ok := index[d.Name]; ok {
			if seed[i].Object != nil && d.Object != nil {
				seed[i].Object.Fields = append(seed[i].Object.Fields, d.Object.Fields...)
			}
			continue
		}
		index[d.Name] = len(seed)
		seed = append(seed, cloneDefinition(d))
	}

	return seed
}
