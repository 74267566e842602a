package planner

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raywall/dynamo-items-service/dyndb"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchAll(ctx context.Context, limit int) ([]dyndb.Record, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dyndb.Record), args.Error(1)
}

func (m *mockFetcher) FetchByKey(ctx context.Context, attribute, value string, limit int) ([]dyndb.Record, error) {
	args := m.Called(ctx, attribute, value, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dyndb.Record), args.Error(1)
}

func TestFilterFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Filter
	}{
		{"empty", "", Filter{}},
		{"limit", "limit=10", Filter{Limit: 10}},
		{"invalid limit", "limit=abc", Filter{}},
		{"zero limit", "limit=0", Filter{}},
		{"key and value", "key=id&value=42&limit=3", Filter{Attribute: "id", Value: "42", Limit: 3}},
		{"key only", "key=id", Filter{Attribute: "id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FilterFromQuery(q))
		})
	}
}

func TestFilter_Strategy(t *testing.T) {
	assert.Equal(t, StrategyKeyLookup, Filter{Attribute: "id", Value: "1"}.Strategy())
	assert.Equal(t, StrategyScanAll, Filter{}.Strategy())
	assert.Equal(t, StrategyScanAll, Filter{Attribute: "id"}.Strategy())
	assert.Equal(t, StrategyScanAll, Filter{Value: "1"}.Strategy())
}

func TestPlan_KeyLookup(t *testing.T) {
	f := &mockFetcher{}
	want := []dyndb.Record{{"id": "1"}}
	f.On("FetchByKey", mock.Anything, "id", "1", 5).Return(want, nil).Once()

	got, err := New(f).Plan(context.Background(), Filter{Attribute: "id", Value: "1", Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	f.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything)
	f.AssertExpectations(t)
}

func TestPlan_PartialFilterScansAll(t *testing.T) {
	f := &mockFetcher{}
	want := []dyndb.Record{{"id": "1"}, {"id": "2"}}
	f.On("FetchAll", mock.Anything, 0).Return(want, nil)

	p := New(f)
	unfiltered, err := p.Plan(context.Background(), Filter{})
	require.NoError(t, err)
	keyOnly, err := p.Plan(context.Background(), Filter{Attribute: "a"})
	require.NoError(t, err)

	assert.Equal(t, unfiltered, keyOnly)
	f.AssertNotCalled(t, "FetchByKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.AssertNumberOfCalls(t, "FetchAll", 2)
}

func TestPlan_Error(t *testing.T) {
	f := &mockFetcher{}
	f.On("FetchAll", mock.Anything, 0).Return(nil, errors.New("boom"))

	got, err := New(f).Plan(context.Background(), Filter{})

	assert.EqualError(t, err, "boom")
	assert.Nil(t, got)
}
