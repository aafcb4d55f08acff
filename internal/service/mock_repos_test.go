package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/model"
	"github.com/dimitrilongo/wacdo/internal/repository"
)

// newMockRepository construit un agrégat de repositories en mémoire,
// avec les mocks croisés pour résoudre les relations des affectations.
func newMockRepository() *repository.Repository {
	users := newMockUserRepo()
	restaurants := newMockRestaurantRepo()
	postes := newMockPosteRepo()
	affectations := &mockAffectationRepo{
		affectations: make(map[uint]*model.Affectation),
		users:        users,
		restaurants:  restaurants,
		postes:       postes,
	}
	restaurants.affectations = affectations
	return &repository.Repository{
		User:        users,
		Restaurant:  restaurants,
		Poste:       postes,
		Affectation: affectations,
	}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var ids []uint
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.User, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.users[id])
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

func (m *mockUserRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func (m *mockUserRepo) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	for _, u := range m.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) HasAdmin(_ context.Context) (bool, error) {
	for _, u := range m.users {
		if u.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock RestaurantRepository ──

type mockRestaurantRepo struct {
	restaurants  map[uint]*model.Restaurant
	affectations *mockAffectationRepo
	nextID       uint
}

func newMockRestaurantRepo() *mockRestaurantRepo {
	return &mockRestaurantRepo{restaurants: make(map[uint]*model.Restaurant), nextID: 1}
}

func (m *mockRestaurantRepo) Create(_ context.Context, restaurant *model.Restaurant) error {
	if restaurant.ID == 0 {
		restaurant.ID = m.nextID
		m.nextID++
	}
	m.restaurants[restaurant.ID] = restaurant
	return nil
}

func (m *mockRestaurantRepo) GetByID(ctx context.Context, id uint, includes ...repository.Include) (*model.Restaurant, error) {
	r, ok := m.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	result := *r
	for _, inc := range includes {
		if inc == repository.IncludeAffectations && m.affectations != nil {
			all, _ := m.affectations.List(ctx, repository.IncludeRelations)
			result.Affectations = nil
			for i := range all {
				if all[i].RestaurantID == id {
					result.Affectations = append(result.Affectations, all[i])
				}
			}
		}
	}
	return &result, nil
}

func (m *mockRestaurantRepo) List(_ context.Context) ([]model.Restaurant, error) {
	var ids []uint
	for id := range m.restaurants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.Restaurant, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.restaurants[id])
	}
	return result, nil
}

func (m *mockRestaurantRepo) Update(_ context.Context, restaurant *model.Restaurant) error {
	m.restaurants[restaurant.ID] = restaurant
	return nil
}

func (m *mockRestaurantRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.restaurants[id]; !ok {
		return 0, nil
	}
	delete(m.restaurants, id)
	return 1, nil
}

func (m *mockRestaurantRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.restaurants[id]
	return ok, nil
}

// ── Mock PosteRepository ──

type mockPosteRepo struct {
	postes map[uint]*model.Poste
	nextID uint
}

func newMockPosteRepo() *mockPosteRepo {
	return &mockPosteRepo{postes: make(map[uint]*model.Poste), nextID: 1}
}

func (m *mockPosteRepo) Create(_ context.Context, poste *model.Poste) error {
	if poste.ID == 0 {
		poste.ID = m.nextID
		m.nextID++
	}
	m.postes[poste.ID] = poste
	return nil
}

func (m *mockPosteRepo) GetByID(_ context.Context, id uint) (*model.Poste, error) {
	if p, ok := m.postes[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPosteRepo) List(_ context.Context) ([]model.Poste, error) {
	var ids []uint
	for id := range m.postes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.Poste, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.postes[id])
	}
	return result, nil
}

func (m *mockPosteRepo) Update(_ context.Context, poste *model.Poste) error {
	m.postes[poste.ID] = poste
	return nil
}

func (m *mockPosteRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.postes[id]; !ok {
		return 0, nil
	}
	delete(m.postes, id)
	return 1, nil
}

func (m *mockPosteRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.postes[id]
	return ok, nil
}

// ── Mock AffectationRepository ──

type mockAffectationRepo struct {
	affectations map[uint]*model.Affectation
	users        *mockUserRepo
	restaurants  *mockRestaurantRepo
	postes       *mockPosteRepo
	nextID       uint
}

func (m *mockAffectationRepo) Create(_ context.Context, affectation *model.Affectation) error {
	if affectation.ID == 0 {
		m.nextID++
		affectation.ID = m.nextID
	} else if affectation.ID > m.nextID {
		m.nextID = affectation.ID
	}
	m.affectations[affectation.ID] = affectation
	return nil
}

func (m *mockAffectationRepo) GetByID(_ context.Context, id uint, includes ...repository.Include) (*model.Affectation, error) {
	a, ok := m.affectations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	result := *a
	for _, inc := range includes {
		if inc == repository.IncludeRelations {
			m.attachRelations(&result)
		}
	}
	return &result, nil
}

// sorted renvoie les affectations triées par date de début décroissante,
// ex æquo par id décroissant, comme le repository réel.
func (m *mockAffectationRepo) sorted() []model.Affectation {
	result := make([]model.Affectation, 0, len(m.affectations))
	for _, a := range m.affectations {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DateDebut.Equal(result[j].DateDebut) {
			return result[i].DateDebut.After(result[j].DateDebut)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (m *mockAffectationRepo) List(_ context.Context, includes ...repository.Include) ([]model.Affectation, error) {
	result := m.sorted()
	for _, inc := range includes {
		if inc == repository.IncludeRelations {
			for i := range result {
				m.attachRelations(&result[i])
			}
		}
	}
	return result, nil
}

func (m *mockAffectationRepo) Update(_ context.Context, affectation *model.Affectation) error {
	m.affectations[affectation.ID] = affectation
	return nil
}

func (m *mockAffectationRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.affectations[id]; !ok {
		return 0, nil
	}
	delete(m.affectations, id)
	return 1, nil
}

func (m *mockAffectationRepo) CurrentForUser(_ context.Context, userID uint) (*model.Affectation, error) {
	for _, a := range m.sorted() {
		if a.UserID == userID {
			result := a
			m.attachRelations(&result)
			return &result, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAffectationRepo) LatestOpenForUsers(_ context.Context, asOf time.Time) ([]model.Affectation, error) {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	var result []model.Affectation
	for _, a := range m.sorted() {
		if a.DateFin == nil || !a.DateFin.Before(day) {
			m.attachRelations(&a)
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAffectationRepo) attachRelations(a *model.Affectation) {
	if m.users != nil {
		if u, ok := m.users.users[a.UserID]; ok {
			uc := *u
			a.User = &uc
		}
	}
	if m.restaurants != nil {
		if r, ok := m.restaurants.restaurants[a.RestaurantID]; ok {
			rc := *r
			a.Restaurant = &rc
		}
	}
	if m.postes != nil {
		if p, ok := m.postes.postes[a.PosteID]; ok {
			pc := *p
			a.Poste = &pc
		}
	}
}
