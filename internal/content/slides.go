package content

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Slide is one image in a deck, addressed by its position.
type Slide struct {
	SequenceIndex  int    `json:"sequenceIndex"`
	ImageReference string `json:"imageReference"`
}

// ImagePatterns are the glob patterns a file must match to count as a slide.
var ImagePatterns = []string{
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.webp",
	"*.gif",
	"*.svg",
}

// DiscoverSlides lists the image files in dir and returns them as an ordered
// slide sequence, sorted by numeric-aware filename order so slide2 comes
// before slide10. The urlPrefix is prepended to each filename to form the
// image reference. A missing or unreadable directory yields an empty
// sequence, never an error; the sequence is recomputed on every call.
func DiscoverSlides(dir, urlPrefix string) []Slide {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesImage(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})

	slides := make([]Slide, len(names))
	for i, name := range names {
		slides[i] = Slide{
			SequenceIndex:  i,
			ImageReference: path.Join("/", urlPrefix, name),
		}
	}
	return slides
}

// matchesImage checks the filename against ImagePatterns, case-insensitively.
func matchesImage(name string) bool {
	lower := strings.ToLower(filepath.ToSlash(name))
	for _, pattern := range ImagePatterns {
		if matched, err := doublestar.PathMatch(pattern, lower); err == nil && matched {
			return true
		}
	}
	return false
}

// naturalLess compares two filenames treating digit runs as numbers, so
// "slide2.png" sorts before "slide10.png".
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		aDigit, bDigit := isDigit(a[0]), isDigit(b[0])
		if aDigit && bDigit {
			aNum, aRest := splitLeadingNumber(a)
			bNum, bRest := splitLeadingNumber(b)
			if aNum != bNum {
				return aNum < bNum
			}
			a, b = aRest, bRest
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// splitLeadingNumber consumes the leading digit run and returns its value
// and the remainder. Leading zeros are ignored for comparison purposes.
func splitLeadingNumber(s string) (uint64, string) {
	var n uint64
	i := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + uint64(s[i]-'0')
		i++
	}
	return n, s[i:]
}
