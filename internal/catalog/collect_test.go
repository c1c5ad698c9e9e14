package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSection struct {
	label     string
	expandErr error
}

func (s *fakeSection) Label() string { return s.label }
func (s *fakeSection) Expand() error { return s.expandErr }

// fakeView serves one scripted product batch per VisibleProducts call, in the
// order expansions succeed.
type fakeView struct {
	sections     []Section
	discoveryErr error
	batches      [][]ProductRecord
	batchErrs    []error
	calls        int
}

func (v *fakeView) Categories() ([]Section, error) {
	if v.discoveryErr != nil {
		return nil, v.discoveryErr
	}
	return v.sections, nil
}

func (v *fakeView) VisibleProducts() ([]ProductRecord, error) {
	i := v.calls
	v.calls++
	if i < len(v.batchErrs) && v.batchErrs[i] != nil {
		return nil, v.batchErrs[i]
	}
	if i < len(v.batches) {
		return v.batches[i], nil
	}
	return nil, nil
}

func TestCollectCatalogIsolatesFailingCategory(t *testing.T) {
	soda := ProductRecord{Name: "Soda", Description: "Cold drink", Price: "$2", Stock: "10 units available", Image: "http://x/img.png"}
	bread := ProductRecord{Name: "Bread", Description: "Fresh", Price: "$5", Stock: DefaultStock, Image: DefaultImage}

	view := &fakeView{
		sections: []Section{
			&fakeSection{label: "Beverages"},
			&fakeSection{label: "Snacks", expandErr: errors.New("all click strategies failed: timeout")},
			&fakeSection{label: "Bakery"},
		},
		batches: [][]ProductRecord{{soda}, {bread}},
	}

	results, err := collectCatalog(view, discardLogger())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Beverages", results[0].Label)
	assert.Equal(t, []ProductRecord{soda}, results[0].Products)
	assert.Empty(t, results[0].Note)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, "Snacks", results[1].Label)
	assert.Empty(t, results[1].Products)
	assert.Contains(t, results[1].Error, "all click strategies failed")

	assert.Equal(t, "Bakery", results[2].Label)
	assert.Equal(t, []ProductRecord{bread}, results[2].Products)
	assert.Empty(t, results[2].Error)

	// The failing section must not consume a product batch.
	assert.Equal(t, 2, view.calls)
}

func TestCollectCatalogNotesEmptyCategory(t *testing.T) {
	view := &fakeView{
		sections: []Section{&fakeSection{label: "Seasonal"}},
		batches:  [][]ProductRecord{{}},
	}

	results, err := collectCatalog(view, discardLogger())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Seasonal", results[0].Label)
	assert.Empty(t, results[0].Products)
	assert.Equal(t, EmptyCategoryNote, results[0].Note)
	assert.Empty(t, results[0].Error)
}

func TestCollectCatalogRecordsExtractionFailure(t *testing.T) {
	view := &fakeView{
		sections:  []Section{&fakeSection{label: "Frozen"}},
		batchErrs: []error{errors.New("failed to collect product elements: page crashed")},
	}

	results, err := collectCatalog(view, discardLogger())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Contains(t, results[0].Error, "page crashed")
	assert.Empty(t, results[0].Products)
}

func TestCollectCatalogEmptyDiscovery(t *testing.T) {
	view := &fakeView{}

	results, err := collectCatalog(view, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCollectCatalogDiscoveryFailureIsFatal(t *testing.T) {
	view := &fakeView{discoveryErr: errors.New("connection lost")}

	_, err := collectCatalog(view, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category discovery failed")
}

func TestCollectCatalogPreservesDiscoveryOrder(t *testing.T) {
	labels := []string{"One", "Two", "Three", "Four"}
	sections := make([]Section, 0, len(labels))
	for _, l := range labels {
		sections = append(sections, &fakeSection{label: l})
	}

	results, err := collectCatalog(&fakeView{sections: sections}, discardLogger())
	require.NoError(t, err)
	require.Len(t, results, len(labels))
	for i, l := range labels {
		assert.Equal(t, l, results[i].Label)
	}
}
