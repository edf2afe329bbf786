package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeilSeconds(t *testing.T) {
	testCases := []struct {
		name string
		in   time.Duration
		want int
	}{
		{"zero", 0, 0},
		{"negative", -time.Second, 0},
		{"whole second", 3 * time.Second, 3},
		{"one eighth over", 2*time.Second + 125*time.Millisecond, 3},
		{"one eighth under", 3*time.Second - 125*time.Millisecond, 3},
		{"default session", 25 * time.Minute, 1500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CeilSeconds(tc.in))
		})
	}
}

func TestSecsToMinsAndSecs(t *testing.T) {
	m, s := SecsToMinsAndSecs(1499)
	assert.Equal(t, 24, m)
	assert.Equal(t, 59, s)

	m, s = SecsToMinsAndSecs(3600)
	assert.Equal(t, 60, m)
	assert.Equal(t, 0, s)
}

func TestFromStr(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2 hours ago", now)
	require.NoError(t, err)

	assert.WithinDuration(t, now.Add(-2*time.Hour), got, time.Second)
}

func TestFromStrInvalid(t *testing.T) {
	_, err := FromStr("not a date at all", time.Now())
	assert.Error(t, err)
}

func TestRoundToStart(t *testing.T) {
	in := time.Date(2025, time.March, 10, 17, 45, 12, 9, time.UTC)

	assert.Equal(
		t,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		RoundToStart(in),
	)
}

func TestToKeySortsInTimeOrder(t *testing.T) {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	east := time.FixedZone("east", 3*60*60)

	keys := []string{
		string(ToKey(base)),
		string(ToKey(base.Add(500 * time.Millisecond))),
		string(ToKey(base.Add(time.Second).In(east))),
	}

	assert.Equal(t, "2025-03-10T12:00:00.000000000Z", keys[0])
	assert.Less(t, keys[0], keys[1])
	assert.Less(t, keys[1], keys[2])
}
