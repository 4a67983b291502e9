package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTags(t *testing.T) {
	tags := ExtractTags("golden hour #travel with #sunset, again #travel!")
	require.Equal(t, []string{"travel", "sunset"}, tags)
}

func TestExtractTags_NoTags(t *testing.T) {
	require.Empty(t, ExtractTags("just a plain caption"))
}

func TestExtractTags_TrimsPunctuation(t *testing.T) {
	tags := ExtractTags("早安 #咖啡。 #coffee!")
	require.Equal(t, []string{"咖啡", "coffee"}, tags)
}
