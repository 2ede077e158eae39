package service

import (
	"fmt"
	"job-dashboard/entities"
	"sort"
)

// StatusGraph is the validated view of the job status chain.
type StatusGraph struct {
	byId    map[uint]*entities.JobStatus
	byOrder map[int]*entities.JobStatus
	ordered []*entities.JobStatus
}

// NewStatusGraph checks that orders are unique, that every next/prev pointer
// lands on an existing order and that neither direction loops.
func NewStatusGraph(statuses []*entities.JobStatus) (*StatusGraph, error) {
	g := &StatusGraph{
		byId:    make(map[uint]*entities.JobStatus, len(statuses)),
		byOrder: make(map[int]*entities.JobStatus, len(statuses)),
		ordered: make([]*entities.JobStatus, 0, len(statuses)),
	}

	for _, status := range statuses {
		if _, ok := g.byOrder[status.Order]; ok {
			return nil, fmt.Errorf("%w: duplicate order %d", ErrInvalidStatusGraph, status.Order)
		}
		g.byOrder[status.Order] = status
		g.byId[status.ID] = status
		g.ordered = append(g.ordered, status)
	}
	sort.Slice(g.ordered, func(i, j int) bool { return g.ordered[i].Order < g.ordered[j].Order })

	for _, status := range g.ordered {
		if status.NextStatusOrder != nil {
			if _, ok := g.byOrder[*status.NextStatusOrder]; !ok {
				return nil, fmt.Errorf("%w: status %d points to missing next order %d", ErrInvalidStatusGraph, status.ID, *status.NextStatusOrder)
			}
		}
		if status.PrevStatusOrder != nil {
			if _, ok := g.byOrder[*status.PrevStatusOrder]; !ok {
				return nil, fmt.Errorf("%w: status %d points to missing prev order %d", ErrInvalidStatusGraph, status.ID, *status.PrevStatusOrder)
			}
		}
	}

	next := func(s *entities.JobStatus) *int { return s.NextStatusOrder }
	prev := func(s *entities.JobStatus) *int { return s.PrevStatusOrder }
	for _, status := range g.ordered {
		if g.loops(status, next) {
			return nil, fmt.Errorf("%w: cycle through order %d following next", ErrInvalidStatusGraph, status.Order)
		}
		if g.loops(status, prev) {
			return nil, fmt.Errorf("%w: cycle through order %d following prev", ErrInvalidStatusGraph, status.Order)
		}
	}

	return g, nil
}

func (g *StatusGraph) loops(start *entities.JobStatus, step func(*entities.JobStatus) *int) bool {
	visited := map[int]struct{}{start.Order: {}}
	current := start
	for {
		order := step(current)
		if order == nil {
			return false
		}
		if _, seen := visited[*order]; seen {
			return true
		}
		visited[*order] = struct{}{}
		current = g.byOrder[*order]
	}
}

func (g *StatusGraph) Statuses() []*entities.JobStatus {
	return g.ordered
}

func (g *StatusGraph) Get(id uint) (*entities.JobStatus, bool) {
	status, ok := g.byId[id]
	return status, ok
}

// Head is the status new jobs start in: the lowest order without a previous
// status.
func (g *StatusGraph) Head() (*entities.JobStatus, bool) {
	for _, status := range g.ordered {
		if status.PrevStatusOrder == nil {
			return status, true
		}
	}
	return nil, false
}

func (g *StatusGraph) Next(id uint) *entities.JobStatus {
	status, ok := g.byId[id]
	if !ok || status.NextStatusOrder == nil {
		return nil
	}
	return g.byOrder[*status.NextStatusOrder]
}

func (g *StatusGraph) Prev(id uint) *entities.JobStatus {
	status, ok := g.byId[id]
	if !ok || status.PrevStatusOrder == nil {
		return nil
	}
	return g.byOrder[*status.PrevStatusOrder]
}

func (g *StatusGraph) CanTransition(from, to uint) bool {
	if next := g.Next(from); next != nil && next.ID == to {
		return true
	}
	if prev := g.Prev(from); prev != nil && prev.ID == to {
		return true
	}
	return false
}

func (g *StatusGraph) IsTerminal(id uint) bool {
	status, ok := g.byId[id]
	return ok && status.NextStatusOrder == nil
}
