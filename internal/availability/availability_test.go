package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/slotgrid"
)

var today = time.Date(2018, time.December, 1, 14, 12, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(today.Year(), today.Month(), today.Day(), hour, min, 0, 0, time.UTC)
}

func TestMergeDateAndTime_RoundTrip(t *testing.T) {
	date := time.Date(2019, time.February, 28, 0, 0, 0, 0, time.UTC)
	tod := time.Date(1970, time.January, 1, 17, 30, 15, 250, time.UTC)

	merged := MergeDateAndTime(date, tod)

	assert.Equal(t, 17, merged.Hour())
	assert.Equal(t, 30, merged.Minute())
	assert.Equal(t, 15, merged.Second())
	assert.Equal(t, 250, merged.Nanosecond())
	y, m, d := merged.Date()
	assert.Equal(t, []int{2019, 2, 28}, []int{y, int(m), d})
}

func TestIsBookable(t *testing.T) {
	grid, err := slotgrid.Build(today, 9, 11)
	require.NoError(t, err)
	slots := []domain.OpenSlot{{StartsAt: at(9, 0)}, {StartsAt: at(9, 30)}}

	assert.True(t, IsBookable(grid.Cell(0, 0), slots), "09:00 today")
	assert.True(t, IsBookable(grid.Cell(1, 0), slots), "09:30 today")
	assert.False(t, IsBookable(grid.Cell(2, 0), slots), "10:00 today")
	assert.False(t, IsBookable(grid.Cell(0, 1), slots), "09:00 tomorrow")
	assert.False(t, IsBookable(grid.Cell(0, 0), nil))
}

func TestIsBookable_IgnoresMisalignedSlots(t *testing.T) {
	grid, err := slotgrid.Build(today, 9, 11)
	require.NoError(t, err)
	slots := []domain.OpenSlot{{StartsAt: at(9, 15)}, {StartsAt: at(20, 0)}}

	for _, row := range BookableCells(grid, slots) {
		for _, ok := range row {
			assert.False(t, ok)
		}
	}
}

func TestBookableCells_MatchesIsBookable(t *testing.T) {
	grid, err := slotgrid.Build(today, 9, 12)
	require.NoError(t, err)
	slots := []domain.OpenSlot{
		{StartsAt: at(9, 0)},
		{StartsAt: at(11, 30).AddDate(0, 0, 3)},
	}

	flags := BookableCells(grid, slots)
	for r, row := range grid.Rows() {
		for c, cell := range row {
			assert.Equal(t, IsBookable(cell, slots), flags[r][c], "cell %d,%d", r, c)
		}
	}
	assert.True(t, flags[0][0])
	assert.True(t, flags[5][3])
}

func TestFilterByProvider(t *testing.T) {
	slots := []domain.OpenSlot{
		{StartsAt: at(9, 0), Stylists: []string{"A", "B"}},
		{StartsAt: at(9, 30), Stylists: []string{"A"}},
	}

	assert.Equal(t, slots, FilterByProvider(slots, ""))
	assert.Equal(t, slots, FilterByProvider(slots, "A"))
	assert.Equal(t, slots[:1], FilterByProvider(slots, "B"))
	assert.Empty(t, FilterByProvider(slots, "C"))

	unlisted := []domain.OpenSlot{{StartsAt: at(9, 0)}}
	assert.Equal(t, unlisted, FilterByProvider(unlisted, ""))
	assert.Empty(t, FilterByProvider(unlisted, "A"), "a slot without stylists matches no stylist")
}

func TestProvidersForService(t *testing.T) {
	catalog := domain.DefaultServiceCatalog()
	all := domain.DefaultStylists()

	assert.Equal(t, []string{"Ashley", "Jo"}, ProvidersForService("Cut & color", catalog, all))
	assert.Equal(t, all, ProvidersForService("", catalog, all))
	assert.Empty(t, ProvidersForService("Perm", catalog, all))
}
