package client

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

type memoryClientRepo struct {
	items map[uuid.UUID]entity.Client
}

func newMemoryClientRepo() *memoryClientRepo {
	return &memoryClientRepo{items: make(map[uuid.UUID]entity.Client)}
}

func (r *memoryClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.items[c.ID] = *c
	return nil
}

func (r *memoryClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	return &c, nil
}

func (r *memoryClientRepo) FindAll(_ context.Context, search string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.items {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) && !strings.Contains(c.Phone, search) {
			continue
		}
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.items[c.ID] = *c
	return nil
}

func (r *memoryClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

var _ adapter.Clock = (*steppingClock)(nil)

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateClientInput
		wantErr error
	}{
		{"valid", CreateClientInput{Name: " Ana Souza ", Phone: "11 91234-5678", Email: "ana@example.com"}, nil},
		{"missing name", CreateClientInput{Name: "  ", Phone: "11 91234-5678"}, domainerror.ErrClientNameRequired},
		{"missing phone", CreateClientInput{Name: "Ana"}, domainerror.ErrClientPhoneRequired},
		{"short phone", CreateClientInput{Name: "Ana", Phone: "(11) 123"}, domainerror.ErrClientPhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryClientRepo()
			uc := NewCreateClientUseCase(repo, &steppingClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})

			out, err := uc.Execute(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, domainerror.IsValidation(err))
				assert.Empty(t, repo.items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana Souza", out.Client.Name)
			assert.Contains(t, repo.items, out.Client.ID)
		})
	}
}

func TestClientRegistryFlow(t *testing.T) {
	repo := newMemoryClientRepo()
	clock := &steppingClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	create := NewCreateClientUseCase(repo, clock)
	update := NewUpdateClientUseCase(repo, clock)
	list := NewListClientsUseCase(repo)
	get := NewGetClientUseCase(repo)
	del := NewDeleteClientUseCase(repo)
	ctx := context.Background()

	ana, err := create.Execute(ctx, CreateClientInput{Name: "Ana Souza", Phone: "11 91234-5678"})
	require.NoError(t, err)
	bruno, err := create.Execute(ctx, CreateClientInput{Name: "Bruno Lima", Phone: "21 99876-5432"})
	require.NoError(t, err)

	all, err := list.Execute(ctx, ListClientsInput{})
	require.NoError(t, err)
	require.Len(t, all.Clients, 2)
	assert.Equal(t, bruno.Client.ID, all.Clients[0].ID, "newest first")

	byName, err := list.Execute(ctx, ListClientsInput{Search: "ANA"})
	require.NoError(t, err)
	require.Len(t, byName.Clients, 1)
	assert.Equal(t, ana.Client.ID, byName.Clients[0].ID)

	byPhone, err := list.Execute(ctx, ListClientsInput{Search: "99876"})
	require.NoError(t, err)
	require.Len(t, byPhone.Clients, 1)
	assert.Equal(t, bruno.Client.ID, byPhone.Clients[0].ID)

	updated, err := update.Execute(ctx, UpdateClientInput{ClientID: ana.Client.ID, Name: "Ana S. Souza", Phone: "11 90000-0000", Notes: "alergia a látex"})
	require.NoError(t, err)
	assert.True(t, updated.Client.UpdatedAt.After(updated.Client.CreatedAt))

	got, err := get.Execute(ctx, GetClientInput{ClientID: ana.Client.ID})
	require.NoError(t, err)
	assert.Equal(t, "alergia a látex", got.Client.Notes)

	_, err = del.Execute(ctx, DeleteClientInput{ClientID: ana.Client.ID})
	require.NoError(t, err)

	_, err = get.Execute(ctx, GetClientInput{ClientID: ana.Client.ID})
	assert.True(t, domainerror.IsNotFound(err))
	var cerr *domainerror.ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, domainerror.ErrCodeClientNotFound, cerr.Code)
}

func TestClientNotFound(t *testing.T) {
	repo := newMemoryClientRepo()
	clock := &steppingClock{}

	_, err := NewUpdateClientUseCase(repo, clock).Execute(context.Background(), UpdateClientInput{ClientID: uuid.New(), Name: "X", Phone: "11 91111-1111"})
	assert.True(t, domainerror.IsNotFound(err))

	_, err = NewDeleteClientUseCase(repo).Execute(context.Background(), DeleteClientInput{ClientID: uuid.New()})
	assert.True(t, domainerror.IsNotFound(err))
}
