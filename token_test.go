package slc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordsRoundTripToKindString(t *testing.T) {
	for text, kind := range keywords {
		assert.Equal(t, text, kind.String(), "keyword %q should stringify back to itself", text)
	}
}

func TestReservedUnimplementedAreAllKeywords(t *testing.T) {
	for kind := range reservedUnimplemented {
		found := false
		for _, k := range keywords {
			if k == kind {
				found = true
				break
			}
		}
		assert.True(t, found, "%s should be present in the keyword table", kind)
	}
}

func TestUnknownKindStringifiesToUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Kind(-1).String())
}
