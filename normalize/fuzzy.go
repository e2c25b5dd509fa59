package normalize

// Matcher computes an edit distance between two already-normalized strings.
// It exists so the distance algorithm can be swapped in tests or replaced by
// a library without touching any caller.
type Matcher interface {
	Distance(a, b string) int
}

// Levenshtein is the default Matcher.
type Levenshtein struct{}

// Distance returns the Levenshtein edit distance between a and b.
func (Levenshtein) Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// DefaultMaxDistance is the edit-distance threshold used when a Resolver is
// built without an explicit one.
const DefaultMaxDistance = 3

// Resolver matches noisy names against a known set of canonical names.
type Resolver struct {
	matcher Matcher
	maxDist int
}

// NewResolver builds a Resolver. maxDist <= 0 selects DefaultMaxDistance; a
// nil matcher selects Levenshtein.
func NewResolver(m Matcher, maxDist int) *Resolver {
	if m == nil {
		m = Levenshtein{}
	}
	if maxDist <= 0 {
		maxDist = DefaultMaxDistance
	}
	return &Resolver{matcher: m, maxDist: maxDist}
}

// Resolve returns the known name closest to candidate, comparing normalized
// forms. An exact normalized match returns immediately. Otherwise the
// minimum distance within the threshold wins, ties going to the earlier
// entry in known, which makes the result deterministic for a given input
// order. Returns ok == false when nothing is close enough.
func (r *Resolver) Resolve(candidate string, known []string) (string, bool) {
	normalized := Team(candidate)
	if normalized == "" {
		return "", false
	}

	best := ""
	bestDist := r.maxDist + 1
	for _, name := range known {
		d := r.matcher.Distance(normalized, Team(name))
		if d == 0 {
			return name, true
		}
		if d < bestDist {
			bestDist = d
			best = name
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
