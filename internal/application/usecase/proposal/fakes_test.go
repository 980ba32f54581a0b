package proposal

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

type fakeProposalRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]entity.SavedProject
	createErr error
	afterFind func() // runs outside the lock once FindByID has read its record
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{items: make(map[uuid.UUID]entity.SavedProject)}
}

func (r *fakeProposalRepo) Create(_ context.Context, p *entity.SavedProject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProposalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavedProject, error) {
	r.mu.Lock()
	p, ok := r.items[id]
	r.mu.Unlock()
	if !ok {
		return nil, domainerror.ErrProposalNotFound
	}
	if r.afterFind != nil {
		r.afterFind()
	}
	return &p, nil
}

func (r *fakeProposalRepo) FindAll(_ context.Context, filter adapter.ProposalFilter) ([]*entity.SavedProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.SavedProject, 0, len(r.items))
	for _, p := range r.items {
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		p := p
		result = append(result, &p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeProposalRepo) CloseDraft(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return domainerror.ErrProposalNotFound
	}
	if p.Status != entity.ProposalStatusDraft {
		return domainerror.ErrProposalAlreadyCompleted
	}
	p.Status = entity.ProposalStatusCompleted
	r.items[id] = p
	return nil
}

func (r *fakeProposalRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeClientRepo struct {
	items map[uuid.UUID]entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{items: make(map[uuid.UUID]entity.Client)}
	for _, c := range clients {
		r.items[c.ID] = *c
	}
	return r
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.items[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) FindAll(context.Context, string) ([]*entity.Client, error) {
	return nil, errors.New("not used")
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.items[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}
