package fee_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/fee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute(t *testing.T) {
	d0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	days := func(n int) time.Time { return d0.AddDate(0, 0, n) }

	tests := []struct {
		name        string
		returned    time.Time
		expected    time.Time
		rate        string
		wantBase    string
		wantOverdue string
		wantTotal   string
		wantDays    int
		wantOverDay int
	}{
		{
			name:     "overdue three days",
			returned: days(10), expected: days(7), rate: "2.00",
			wantBase: "20", wantOverdue: "9", wantTotal: "29", wantDays: 10, wantOverDay: 3,
		},
		{
			name:     "on time",
			returned: days(5), expected: days(7), rate: "1.25",
			wantBase: "6.25", wantOverdue: "0", wantTotal: "6.25", wantDays: 5,
		},
		{
			name:     "returned exactly at due date",
			returned: days(7), expected: days(7), rate: "3",
			wantBase: "21", wantOverdue: "0", wantTotal: "21", wantDays: 7,
		},
		{
			name:     "partial day counts as full",
			returned: days(2).Add(time.Minute), expected: days(7), rate: "1",
			wantBase: "3", wantOverdue: "0", wantTotal: "3", wantDays: 3,
		},
		{
			name:     "partial overdue day counts as full",
			returned: days(7).Add(time.Hour), expected: days(7), rate: "2",
			wantBase: "16", wantOverdue: "3", wantTotal: "19", wantDays: 8, wantOverDay: 1,
		},
		{
			name:     "immediate return billed one day",
			returned: d0, expected: days(7), rate: "4.5",
			wantBase: "4.5", wantOverdue: "0", wantTotal: "4.5", wantDays: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fee.Compute(d0, tt.returned, tt.expected, dec(tt.rate))
			require.True(t, dec(tt.wantBase).Equal(got.Base), "base %s", got.Base)
			require.True(t, dec(tt.wantOverdue).Equal(got.Overdue), "overdue %s", got.Overdue)
			require.True(t, dec(tt.wantTotal).Equal(got.Total()), "total %s", got.Total())
			require.Equal(t, tt.wantDays, got.Days)
			require.Equal(t, tt.wantOverDay, got.OverdueDays)
		})
	}
}

func TestCeilDays(t *testing.T) {
	require.Equal(t, 0, fee.CeilDays(0))
	require.Equal(t, 0, fee.CeilDays(-time.Hour))
	require.Equal(t, 1, fee.CeilDays(time.Nanosecond))
	require.Equal(t, 1, fee.CeilDays(24*time.Hour))
	require.Equal(t, 2, fee.CeilDays(24*time.Hour+time.Second))
}

func TestProjectedAndScale(t *testing.T) {
	require.True(t, dec("14").Equal(fee.Projected(dec("2"), 7)))
	require.True(t, dec("9.9").Equal(fee.Scale(dec("3.3"), 3)))
}
