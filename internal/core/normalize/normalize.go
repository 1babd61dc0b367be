// Package normalize folds grapheme clusters into a canonical form for delimiter lookup
// and shapes replacement words to the casing of the word they replace.
//
// Fold pipeline order
// 1 Unicode NFKC normalization (compatibility forms such as the fullwidth comma)
// 2 Width fold fullwidth and halfwidth forms to their canonical width
//
// Folding is applied to one cluster at a time and never to the text being analyzed,
// so character offsets are unaffected
package normalize

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order mirrors the documented pipeline
		return transform.Chain(norm.NFKC, width.Fold)
	},
}

// Fold returns the compatibility and width folded form of a cluster.
// ASCII input is returned unchanged without touching the pool
func Fold(g string) string {
	if g == "" || isASCII(g) {
		return g
	}
	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, g)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return g
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
