package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"hit_rate", "mrr"}, SplitList(" hit_rate, ,mrr ,"))
	assert.Nil(t, SplitList(""))
}

func TestTrimAll(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, TrimAll([]string{" a", "", "  ", "b "}))
	assert.Empty(t, TrimAll(nil))
}
