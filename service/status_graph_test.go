package service_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"job-dashboard/entities"
	"job-dashboard/repository"
	"job-dashboard/service"
	"testing"
)

func defaultGraph(t *testing.T) *service.StatusGraph {
	t.Helper()

	defaults := repository.DefaultStatuses()
	statuses := make([]*entities.JobStatus, 0, len(defaults))
	for i := range defaults {
		status := defaults[i]
		status.ID = uint(i + 1)
		statuses = append(statuses, &status)
	}
	graph, err := service.NewStatusGraph(statuses)
	require.NoError(t, err)
	return graph
}

func TestStatusGraph_Navigation(t *testing.T) {
	graph := defaultGraph(t)

	head, ok := graph.Head()
	require.True(t, ok)
	assert.Equal(t, uint(1), head.ID)

	require.NotNil(t, graph.Next(1))
	assert.Equal(t, uint(2), graph.Next(1).ID)
	assert.Nil(t, graph.Prev(1))
	assert.Equal(t, uint(1), graph.Prev(2).ID)
	assert.Nil(t, graph.Next(3))
	assert.Nil(t, graph.Next(42))

	assert.False(t, graph.IsTerminal(1))
	assert.True(t, graph.IsTerminal(3))
	assert.False(t, graph.IsTerminal(42))

	ordered := graph.Statuses()
	require.Len(t, ordered, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{ordered[0].Order, ordered[1].Order, ordered[2].Order})
}

func TestStatusGraph_CanTransition(t *testing.T) {
	graph := defaultGraph(t)

	tests := []struct {
		name     string
		from, to uint
		want     bool
	}{
		{name: "forward", from: 1, to: 2, want: true},
		{name: "backward", from: 2, to: 1, want: true},
		{name: "skip ahead", from: 1, to: 3, want: false},
		{name: "skip back", from: 3, to: 1, want: false},
		{name: "same status", from: 2, to: 2, want: false},
		{name: "unknown source", from: 9, to: 1, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, graph.CanTransition(tt.from, tt.to))
		})
	}
}

func TestNewStatusGraph_RejectsBrokenChains(t *testing.T) {
	order := func(v int) *int { return &v }

	tests := []struct {
		name     string
		statuses []*entities.JobStatus
	}{
		{
			name: "duplicate order",
			statuses: []*entities.JobStatus{
				{ID: 1, Order: 1},
				{ID: 2, Order: 1},
			},
		},
		{
			name: "dangling next",
			statuses: []*entities.JobStatus{
				{ID: 1, Order: 1, NextStatusOrder: order(5)},
			},
		},
		{
			name: "dangling prev",
			statuses: []*entities.JobStatus{
				{ID: 1, Order: 1},
				{ID: 2, Order: 2, PrevStatusOrder: order(7)},
			},
		},
		{
			name: "next cycle",
			statuses: []*entities.JobStatus{
				{ID: 1, Order: 1, NextStatusOrder: order(2)},
				{ID: 2, Order: 2, NextStatusOrder: order(1)},
			},
		},
		{
			name: "prev self loop",
			statuses: []*entities.JobStatus{
				{ID: 1, Order: 1, PrevStatusOrder: order(1)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph, err := service.NewStatusGraph(tt.statuses)
			assert.ErrorIs(t, err, service.ErrInvalidStatusGraph)
			assert.Nil(t, graph)
		})
	}
}

func TestNewStatusGraph_Empty(t *testing.T) {
	graph, err := service.NewStatusGraph(nil)
	require.NoError(t, err)

	_, ok := graph.Head()
	assert.False(t, ok)
	assert.Empty(t, graph.Statuses())
}
