package rulestring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepair/lifesearch/life"
)

func TestParseConwayLife(t *testing.T) {
	rule, err := Parse("B3/S23")
	require.NoError(t, err)
	assert.False(t, rule.IsGen())
	assert.Equal(t, 2, rule.Gen())
	assert.False(t, rule.HasB0())
}

func TestParseNoSlash(t *testing.T) {
	rule, err := Parse("B3S23")
	require.NoError(t, err)
	assert.False(t, rule.IsGen())
}

func TestParseCaseInsensitive(t *testing.T) {
	rule, err := Parse("b36/s23")
	require.NoError(t, err)
	assert.False(t, rule.IsGen())
}

func TestParseHighLife(t *testing.T) {
	rule, err := Parse("B36/S23")
	require.NoError(t, err)
	assert.False(t, rule.IsGen())
}

func TestParseB0Rule(t *testing.T) {
	rule, err := Parse("B0123478/S01234678")
	require.NoError(t, err)
	assert.True(t, rule.HasB0())
}

func TestParseGenerations(t *testing.T) {
	rule, err := Parse("B36/S23/C3")
	require.NoError(t, err)
	assert.True(t, rule.IsGen())
	assert.Equal(t, 3, rule.Gen())
}

func TestParseGenerationsGLetter(t *testing.T) {
	rule, err := Parse("B2/S/G8")
	require.NoError(t, err)
	assert.True(t, rule.IsGen())
	assert.Equal(t, 8, rule.Gen())
}

func TestParseRejectsBadDigit(t *testing.T) {
	_, err := Parse("B9/S23")
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseRejectsMissingS(t *testing.T) {
	_, err := Parse("B3")
	require.Error(t, err)
}

func TestParseRejectsBadLeadLetter(t *testing.T) {
	_, err := Parse("X3/S23")
	require.Error(t, err)
}

func TestParseRejectsBadGenCount(t *testing.T) {
	_, err := Parse("B3/S23/C1")
	require.Error(t, err)
}

func TestParseIsotropicBuildsNtLife(t *testing.T) {
	rule := ParseIsotropic([]int{0x01, 0x02}, []int{0xff}, 2)
	assert.False(t, rule.IsGen())
	var _ life.Rule = rule
}

func TestParseIsotropicGenerations(t *testing.T) {
	rule := ParseIsotropic([]int{0x01}, []int{0xff}, 4)
	assert.True(t, rule.IsGen())
	assert.Equal(t, 4, rule.Gen())
}
