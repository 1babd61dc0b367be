package words

import (
	"sort"

	"github.com/rivo/uniseg"
)

// Text is a string segmented into grapheme clusters (user-perceived characters).
// Offsets into a Text count clusters, never bytes or runes
type Text struct {
	s      string
	bounds []int // byte offset of each cluster start, followed by len(s)
}

// NewText segments s once so offsets can be resolved in constant time
func NewText(s string) Text {
	bounds := make([]int, 0, len(s)+1)
	rest, off, state := s, 0, -1
	for len(rest) > 0 {
		bounds = append(bounds, off)
		var c string
		c, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		off += len(c)
	}
	bounds = append(bounds, len(s))
	return Text{s: s, bounds: bounds}
}

// Len is the number of clusters in the text
func (t Text) Len() int { return len(t.bounds) - 1 }

// Cluster returns the i-th cluster
func (t Text) Cluster(i int) string { return t.s[t.bounds[i]:t.bounds[i+1]] }

// Slice returns the clusters in [from, to)
func (t Text) Slice(from, to int) string { return t.s[t.bounds[from]:t.bounds[to]] }

// Prefix returns the clusters before offset
func (t Text) Prefix(offset int) string { return t.Slice(0, offset) }

// Suffix returns the clusters from offset to the end
func (t Text) Suffix(offset int) string { return t.Slice(offset, t.Len()) }

// ByteOffset maps a cluster offset to its byte offset in the underlying string
func (t Text) ByteOffset(offset int) int { return t.bounds[offset] }

// Last returns the final cluster, or "" when the text is empty
func (t Text) Last() string {
	if t.Len() == 0 {
		return ""
	}
	return t.Cluster(t.Len() - 1)
}

// OffsetOf maps a byte offset to the first cluster starting at or after it.
// A byte offset inside a cluster rounds up to the next boundary
func (t Text) OffsetOf(byteOff int) int {
	return sort.SearchInts(t.bounds, byteOff)
}

func (t Text) String() string { return t.s }

// Len counts the grapheme clusters of s without keeping the segmentation
func Len(s string) int { return uniseg.GraphemeClusterCount(s) }
