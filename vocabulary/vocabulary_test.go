package vocabulary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslgroup/ppodgraph/vocabulary"
)

const base = "https://example.org/terms#"

func TestFromPairsLastRowWins(t *testing.T) {
	d := vocabulary.FromPairs(vocabulary.Counties, []vocabulary.Pair{
		{Term: "Yuba", IRI: "http://www.wikidata.org/entity/Q109662"},
		{Term: "Yolo", IRI: "http://www.wikidata.org/entity/Q109664"},
		{Term: "Yuba", IRI: "http://www.wikidata.org/entity/Q999999"},
	})

	iri, ok := d.Lookup("Yuba")
	require.True(t, ok)
	assert.Equal(t, "http://www.wikidata.org/entity/Q999999", iri)
	assert.Equal(t, 2, d.Len())
}

func TestFromPairsSkipsEmptyTerms(t *testing.T) {
	d := vocabulary.FromPairs(vocabulary.Commodities, []vocabulary.Pair{
		{Term: "", IRI: "http://example.org/x"},
		{Term: "Rice", IRI: "http://example.org/rice"},
	})
	assert.Equal(t, 1, d.Len())
}

func TestFromColumnHashesTerms(t *testing.T) {
	d := vocabulary.FromColumn(vocabulary.Ecoregions,
		[]string{"", "Sacramento Valley", "Klamath Mountains", "", "Sacramento Valley"},
		base, "eco", 1)

	// crc32("Sacramento Valley") & 0xFFFFFF == 0xeef290
	iri, ok := d.Lookup("Sacramento Valley")
	require.True(t, ok)
	assert.Equal(t, base+"eco_eef290", iri)

	// Distinct values only.
	assert.Equal(t, 2, d.Len())
}

func TestFromColumnSkipsLeadingRows(t *testing.T) {
	d := vocabulary.FromColumn(vocabulary.OrgTypes,
		[]string{"OrgType", "Nonprofit"}, base, "oty", 1)

	_, ok := d.Lookup("OrgType")
	assert.False(t, ok, "header row must be skipped")
	_, ok = d.Lookup("Nonprofit")
	assert.True(t, ok)
}

func TestMerge(t *testing.T) {
	a := vocabulary.FromTerms(vocabulary.Issues, map[string]string{
		"Water": "http://example.org/int#Water",
		"Fire":  "http://example.org/int#Fire",
	})
	b := vocabulary.FromTerms(vocabulary.Issues, map[string]string{
		"Water": "http://example.org/comp#Water",
	})

	// Later arguments win, matching the original's dict merge order.
	m := vocabulary.Merge(vocabulary.Issues, b, a)
	iri, ok := m.Lookup("Water")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/int#Water", iri)
	assert.Equal(t, 2, m.Len())
}

func TestTermsSorted(t *testing.T) {
	d := vocabulary.FromTerms(vocabulary.Counties, map[string]string{
		"Yuba": "y", "Alameda": "a", "Marin": "m",
	})
	assert.Equal(t, []string{"Alameda", "Marin", "Yuba"}, d.Terms())
}

func TestRegistry(t *testing.T) {
	r := vocabulary.NewRegistry()
	require.NoError(t, r.Add(vocabulary.FromTerms(vocabulary.Counties, map[string]string{"Yuba": "y"})))

	// Duplicate registration fails.
	assert.Error(t, r.Add(vocabulary.FromTerms(vocabulary.Counties, nil)))

	// Unknown names are rejected.
	assert.Error(t, r.Add(vocabulary.FromTerms(vocabulary.Name("bogus"), nil)))

	iri, ok := r.Resolve(vocabulary.Counties, "Yuba")
	require.True(t, ok)
	assert.Equal(t, "y", iri)

	_, ok = r.Resolve(vocabulary.Ecoregions, "anything")
	assert.False(t, ok)

	assert.True(t, r.Has("counties"))
	assert.False(t, r.Has("ecoregions"))
}

func TestRegistryEnumerable(t *testing.T) {
	r := vocabulary.NewRegistry()
	assert.True(t, r.Enumerable(vocabulary.Counties))
	assert.True(t, r.Enumerable(vocabulary.Ecoregions))
	assert.False(t, r.Enumerable(vocabulary.Issues))
	assert.False(t, r.Enumerable(vocabulary.OrgTypes))
}

func TestRegistryAllPreservesOrder(t *testing.T) {
	r := vocabulary.NewRegistry()
	require.NoError(t, r.Add(vocabulary.FromTerms(vocabulary.Ecoregions, nil)))
	require.NoError(t, r.Add(vocabulary.FromTerms(vocabulary.Counties, nil)))

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, vocabulary.Ecoregions, all[0].Name())
	assert.Equal(t, vocabulary.Counties, all[1].Name())
}
