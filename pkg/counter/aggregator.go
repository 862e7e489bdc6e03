package counter

// aggregator accumulates per-extension counts during one scan. It is owned
// by the traversal engine; callers only ever see the Result snapshot.
type aggregator struct {
	perExt map[string]int
	total  int
	paths  []string
}

// newAggregator seeds a zero count for every configured extension so the
// final report lists extensions that matched nothing.
func newAggregator(exts map[string]struct{}) *aggregator {
	perExt := make(map[string]int, len(exts))
	for ext := range exts {
		perExt[ext] = 0
	}
	return &aggregator{perExt: perExt}
}

func (a *aggregator) increment(ext string) {
	a.perExt[ext]++
	a.total++
}

func (a *aggregator) addPath(path string) {
	a.paths = append(a.paths, path)
}

// snapshot finalizes the aggregator into a Result. Traversal always
// finalizes last, so no increments happen after this point.
func (a *aggregator) snapshot(skipped []string) *Result {
	return &Result{
		PerExtension: a.perExt,
		Total:        a.total,
		MatchedPaths: a.paths,
		SkippedDirs:  skipped,
	}
}
