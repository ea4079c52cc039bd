package cssvariant

// Merge concatenates the sequences in call order and returns the winning
// tokens joined by spaces. For every conflict key the last token wins,
// except that an important token keeps its key against later non-important
// ones. Winners keep their original relative order.
func Merge(seqs ...Sequence) string {
	return MergeSequence(seqs...).String()
}

// MergeSequence is Merge without the final join.
func MergeSequence(seqs ...Sequence) Sequence {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	if n == 0 {
		return nil
	}

	all := make(Sequence, 0, n)
	for _, s := range seqs {
		all = append(all, s...)
	}

	keys := make([]string, len(all))
	winner := make(map[string]int, len(all))
	for i, tok := range all {
		key := tok.Key()
		keys[i] = key
		if j, ok := winner[key]; ok && all[j].important && !tok.important {
			continue
		}
		winner[key] = i
	}

	out := make(Sequence, 0, len(winner))
	for i, tok := range all {
		if winner[keys[i]] == i {
			out = append(out, tok)
		}
	}
	return out
}

// CN parses inputs with the default classifier and merges the result.
//
//	cssvariant.CN("px-2 py-1", cssvariant.If(active, "bg-brand"), userClass)
func CN(inputs ...any) string {
	return MergeSequence(Parse(inputs...)).String()
}

// CN parses inputs with c and merges the result.
func (c *Classifier) CN(inputs ...any) string {
	return MergeSequence(c.Parse(inputs...)).String()
}
