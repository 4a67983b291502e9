package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetMidnight(t *testing.T) {
	in := time.Date(2026, 8, 1, 15, 30, 45, 123, time.UTC)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), GetMidnight(in))
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	out, err := StrSliceToUInt64Slice([]string{"1", "42", "9999999999"})
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 42, 9999999999}, out)

	_, err = StrSliceToUInt64Slice([]string{"1", "abc"})
	require.Error(t, err)
}
