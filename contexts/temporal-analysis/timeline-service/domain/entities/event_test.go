package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewEventRecordRejectsEmptyIDAndLabel(t *testing.T) {
	date := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewEventRecord("", date, "Market crash", nil, nil)
	require.Error(t, err)

	_, err = NewEventRecord("evt-1", date, "   ", nil, nil)
	require.Error(t, err)

	record, err := NewEventRecord("evt-1", date, "Market crash", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, record.AstroSignature)
	require.NotNil(t, record.Meta)
}

func TestNewCausalLinkValidatesRanges(t *testing.T) {
	_, err := NewCausalLink("a", "b", 1.2, 10, nil)
	require.Error(t, err)

	_, err = NewCausalLink("a", "b", -0.1, 10, nil)
	require.Error(t, err)

	_, err = NewCausalLink("a", "b", 0.5, -1, nil)
	require.Error(t, err)

	link, err := NewCausalLink("a", "b", 0.5, 10, nil)
	require.NoError(t, err)
	require.Equal(t, "a", link.SrcID)
	require.Equal(t, "b", link.DstID)
}

func TestNewMetaPatternValidatesScore(t *testing.T) {
	_, err := NewMetaPattern("p", 1.01, "", nil, nil)
	require.Error(t, err)

	_, err = NewMetaPattern("p", -0.01, "", nil, nil)
	require.Error(t, err)

	pattern, err := NewMetaPattern("p", 0.8, "desc", []string{"a", "b"}, []string{"a->b"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, pattern.Nodes)
}

func TestParseAstroSignature(t *testing.T) {
	sig := ParseAstroSignature("sun:295.5,moon:120.3")
	require.Equal(t, map[string]float64{"sun": 295.5, "moon": 120.3}, sig)

	require.Empty(t, ParseAstroSignature(""))
	require.Empty(t, ParseAstroSignature("   "))

	// Malformed pairs are dropped without failing the whole parse.
	sig = ParseAstroSignature("sun:295.5,garbage,moon:abc,venus:10")
	require.Equal(t, map[string]float64{"sun": 295.5, "venus": 10}, sig)

	sig = ParseAstroSignature(" sun : 10.5 , moon : 20 ")
	require.Equal(t, map[string]float64{"sun": 10.5, "moon": 20}, sig)
}

func TestDeriveEventIDIsDeterministic(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	first := DeriveEventID("Rate decision", date)
	second := DeriveEventID("Rate decision", date)
	require.Equal(t, first, second)
	require.Len(t, first, 8)

	other := DeriveEventID("Rate decision", date.AddDate(0, 0, 1))
	require.NotEqual(t, first, other)
}
