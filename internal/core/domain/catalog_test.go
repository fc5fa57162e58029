package domain_test

import (
	"testing"

	"github.com/fxlens/fxlens_backend/internal/apperrors"
	"github.com/fxlens/fxlens_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGroups() []domain.RegionGroup {
	return []domain.RegionGroup{
		{ID: "americas", Name: "Americas", Currencies: []domain.CurrencyRecord{
			{Code: "USD", Symbol: "$", Name: "US Dollar", DecimalDigits: 2},
			{Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar", DecimalDigits: 2},
		}},
		{ID: "europe", Name: "Europe", Currencies: []domain.CurrencyRecord{
			{Code: "EUR", Symbol: "€", Name: "Euro", DecimalDigits: 2},
			{Code: "GBP", Symbol: "£", Name: "British Pound", DecimalDigits: 2},
		}},
	}
}

func TestNewCatalog_BuildsSnapshot(t *testing.T) {
	cat, err := domain.NewCatalog(validGroups(), []string{"USD", "EUR"})
	require.NoError(t, err)

	assert.Equal(t, 4, cat.Size())

	rec, ok := cat.Lookup("usd")
	require.True(t, ok, "lookup must be case-insensitive")
	assert.Equal(t, "USD", rec.Code)
	assert.Equal(t, domain.RegionID("americas"), rec.Region)
	assert.True(t, rec.IsPopular)

	assert.True(t, cat.Has("GBP"))
	assert.False(t, cat.Has("ZZZ"))
}

func TestNewCatalog_MarksPopularEverywhere(t *testing.T) {
	cat, err := domain.NewCatalog(validGroups(), []string{"EUR"})
	require.NoError(t, err)

	// The popular flag must agree across the per-region, all, and popular
	// views of the same record.
	for _, rec := range cat.All() {
		assert.Equal(t, rec.Code == "EUR", rec.IsPopular, "code %s", rec.Code)
	}
	records, ok := cat.Records("europe")
	require.True(t, ok)
	for _, rec := range records {
		assert.Equal(t, rec.Code == "EUR", rec.IsPopular, "code %s", rec.Code)
	}
	require.Len(t, cat.Popular(), 1)
	assert.True(t, cat.Popular()[0].IsPopular)
}

func TestNewCatalog_NormalisesCodes(t *testing.T) {
	groups := []domain.RegionGroup{
		{ID: "europe", Name: "Europe", Currencies: []domain.CurrencyRecord{
			{Code: " eur ", Symbol: "€", Name: "Euro", DecimalDigits: 2},
		}},
	}

	cat, err := domain.NewCatalog(groups, nil)
	require.NoError(t, err)

	rec, ok := cat.Lookup("EUR")
	require.True(t, ok)
	assert.Equal(t, "EUR", rec.Code)
}

func TestNewCatalog_RejectsDuplicateCode(t *testing.T) {
	groups := validGroups()
	groups[1].Currencies = append(groups[1].Currencies, domain.CurrencyRecord{
		Code: "USD", Symbol: "$", Name: "US Dollar Again", DecimalDigits: 2,
	})

	_, err := domain.NewCatalog(groups, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParseFailure)
}

func TestNewCatalog_RejectsDuplicateRegion(t *testing.T) {
	groups := validGroups()
	groups = append(groups, domain.RegionGroup{ID: "americas", Name: "Americas Again", Currencies: []domain.CurrencyRecord{
		{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", DecimalDigits: 2},
	}})

	_, err := domain.NewCatalog(groups, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParseFailure)
}

func TestNewCatalog_RejectsReservedRegionID(t *testing.T) {
	for _, id := range []domain.RegionID{"", domain.RegionPopular, domain.RegionAll} {
		groups := []domain.RegionGroup{
			{ID: id, Name: "Bad", Currencies: []domain.CurrencyRecord{
				{Code: "USD", Symbol: "$", Name: "US Dollar", DecimalDigits: 2},
			}},
		}

		_, err := domain.NewCatalog(groups, nil)

		require.Error(t, err, "region id %q", id)
		assert.ErrorIs(t, err, apperrors.ErrParseFailure)
	}
}

func TestNewCatalog_RejectsIncompleteRecord(t *testing.T) {
	cases := []domain.CurrencyRecord{
		{Code: "", Symbol: "$", Name: "No Code", DecimalDigits: 2},
		{Code: "USD", Symbol: "", Name: "No Symbol", DecimalDigits: 2},
		{Code: "USD", Symbol: "$", Name: "", DecimalDigits: 2},
		{Code: "USD", Symbol: "$", Name: "Bad Digits", DecimalDigits: -1},
	}
	for _, rec := range cases {
		groups := []domain.RegionGroup{{ID: "americas", Name: "Americas", Currencies: []domain.CurrencyRecord{rec}}}

		_, err := domain.NewCatalog(groups, nil)

		require.Error(t, err, "record %+v", rec)
		assert.ErrorIs(t, err, apperrors.ErrParseFailure)
	}
}

func TestNewCatalog_RejectsUnknownPopularCode(t *testing.T) {
	_, err := domain.NewCatalog(validGroups(), []string{"USD", "ZZZ"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParseFailure)
}

func TestNewCatalog_RejectsEmptyListing(t *testing.T) {
	_, err := domain.NewCatalog(nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParseFailure)
}

func TestCatalog_PopularOrderFollowsSubset(t *testing.T) {
	cat, err := domain.NewCatalog(validGroups(), []string{"GBP", "USD"})
	require.NoError(t, err)

	popular := cat.Popular()
	require.Len(t, popular, 2)
	assert.Equal(t, "GBP", popular[0].Code)
	assert.Equal(t, "USD", popular[1].Code)
}

func TestCatalog_RecordsSyntheticRegions(t *testing.T) {
	cat, err := domain.NewCatalog(validGroups(), []string{"USD"})
	require.NoError(t, err)

	popular, ok := cat.Records(domain.RegionPopular)
	require.True(t, ok)
	assert.Len(t, popular, 1)

	all, ok := cat.Records(domain.RegionAll)
	require.True(t, ok)
	assert.Len(t, all, 4)

	_, ok = cat.Records("atlantis")
	assert.False(t, ok)
}

func TestCatalog_RegionsListsSyntheticFirst(t *testing.T) {
	cat, err := domain.NewCatalog(validGroups(), []string{"USD", "EUR"})
	require.NoError(t, err)

	regions := cat.Regions()
	require.Len(t, regions, 4)
	assert.Equal(t, domain.RegionPopular, regions[0].ID)
	assert.Equal(t, 2, regions[0].Count)
	assert.Equal(t, domain.RegionAll, regions[1].ID)
	assert.Equal(t, 4, regions[1].Count)
	assert.Equal(t, domain.RegionID("americas"), regions[2].ID)
	assert.Equal(t, domain.RegionID("europe"), regions[3].ID)
}
