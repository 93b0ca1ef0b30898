package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"club-roster/internal/data/entity"
	"club-roster/internal/data/repository"
	"club-roster/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces. The club fake records every
// index mutation so tests can assert ordering.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.DeletedAt == nil && strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.DeletedAt == nil && strings.EqualFold(user.Username, username) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range f.users {
		if user.DeletedAt == nil {
			cp := *user
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	var n int64
	for _, user := range f.users {
		if user.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("no rows updated")
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("no rows updated")
	}
	user.LastLogin = &at
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("no rows updated")
	}
	now := time.Now()
	user.DeletedAt = &now
	return nil
}

type fakeClubRepo struct {
	clubs map[uuid.UUID]*entity.Club
	// indexOps records AddPlayer/RemovePlayer calls in order, as
	// "add clubID playerID" / "remove clubID playerID".
	indexOps []string
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{clubs: make(map[uuid.UUID]*entity.Club)}
}

func (f *fakeClubRepo) Create(_ context.Context, club *entity.Club) error {
	cp := *club
	cp.PlayerIDs = append([]uuid.UUID{}, club.PlayerIDs...)
	f.clubs[club.ID] = &cp
	return nil
}

func (f *fakeClubRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Club, error) {
	club, ok := f.clubs[id]
	if !ok {
		return nil, nil
	}
	cp := *club
	cp.PlayerIDs = append([]uuid.UUID{}, club.PlayerIDs...)
	return &cp, nil
}

func (f *fakeClubRepo) FindByNameCountry(_ context.Context, name, country string) (*entity.Club, error) {
	for _, club := range f.clubs {
		if strings.EqualFold(club.Name, strings.TrimSpace(name)) && strings.EqualFold(club.Country, country) {
			cp := *club
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClubRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Club, error) {
	var out []*entity.Club
	for _, club := range f.clubs {
		cp := *club
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeClubRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.clubs)), nil
}

func (f *fakeClubRepo) Update(_ context.Context, club *entity.Club) error {
	existing, ok := f.clubs[club.ID]
	if !ok {
		return fmt.Errorf("no rows updated")
	}
	cp := *club
	// player_ids is never written through Update, mirroring the SQL impl
	cp.PlayerIDs = existing.PlayerIDs
	f.clubs[club.ID] = &cp
	return nil
}

func (f *fakeClubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.clubs[id]; !ok {
		return fmt.Errorf("no rows updated")
	}
	delete(f.clubs, id)
	return nil
}

func (f *fakeClubRepo) AddPlayer(_ context.Context, clubID, playerID uuid.UUID) error {
	f.indexOps = append(f.indexOps, fmt.Sprintf("add %s %s", clubID, playerID))
	club, ok := f.clubs[clubID]
	if !ok {
		return fmt.Errorf("club not found")
	}
	for _, id := range club.PlayerIDs {
		if id == playerID {
			return nil
		}
	}
	club.PlayerIDs = append(club.PlayerIDs, playerID)
	return nil
}

func (f *fakeClubRepo) RemovePlayer(_ context.Context, clubID, playerID uuid.UUID) error {
	f.indexOps = append(f.indexOps, fmt.Sprintf("remove %s %s", clubID, playerID))
	club, ok := f.clubs[clubID]
	if !ok {
		return fmt.Errorf("club not found")
	}
	kept := club.PlayerIDs[:0]
	for _, id := range club.PlayerIDs {
		if id != playerID {
			kept = append(kept, id)
		}
	}
	club.PlayerIDs = kept
	return nil
}

type fakePlayerRepo struct {
	players map[uuid.UUID]*entity.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[uuid.UUID]*entity.Player)}
}

func (f *fakePlayerRepo) Create(_ context.Context, player *entity.Player) error {
	cp := *player
	f.players[player.ID] = &cp
	return nil
}

func (f *fakePlayerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	cp := *player
	return &cp, nil
}

func (f *fakePlayerRepo) FindDuplicate(_ context.Context, name string, age int, clubID uuid.UUID) (*entity.Player, error) {
	name = strings.TrimSpace(name)
	for _, player := range f.players {
		if strings.EqualFold(player.Name, name) && player.Age == age &&
			player.ClubID != nil && *player.ClubID == clubID {
			cp := *player
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePlayerRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Player, error) {
	var out []*entity.Player
	for _, id := range ids {
		if player, ok := f.players[id]; ok {
			cp := *player
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePlayerRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Player, error) {
	var out []*entity.Player
	for _, player := range f.players {
		cp := *player
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePlayerRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.players)), nil
}

func (f *fakePlayerRepo) Update(_ context.Context, player *entity.Player) error {
	if _, ok := f.players[player.ID]; !ok {
		return fmt.Errorf("no rows updated")
	}
	cp := *player
	f.players[player.ID] = &cp
	return nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.players[id]; !ok {
		return fmt.Errorf("no rows updated")
	}
	delete(f.players, id)
	return nil
}

type fakePositionRepo struct {
	positions map[uuid.UUID]*entity.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{positions: make(map[uuid.UUID]*entity.Position)}
}

func (f *fakePositionRepo) Create(_ context.Context, position *entity.Position) error {
	cp := *position
	f.positions[position.ID] = &cp
	return nil
}

func (f *fakePositionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Position, error) {
	position, ok := f.positions[id]
	if !ok {
		return nil, nil
	}
	cp := *position
	return &cp, nil
}

func (f *fakePositionRepo) FindByName(_ context.Context, name string) (*entity.Position, error) {
	for _, position := range f.positions {
		if strings.EqualFold(position.Name, name) {
			cp := *position
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePositionRepo) FindAll(_ context.Context) ([]*entity.Position, error) {
	var out []*entity.Position
	for _, position := range f.positions {
		cp := *position
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePositionRepo) Update(_ context.Context, position *entity.Position) error {
	if _, ok := f.positions[position.ID]; !ok {
		return fmt.Errorf("no rows updated")
	}
	cp := *position
	f.positions[position.ID] = &cp
	return nil
}

func (f *fakePositionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.positions[id]; !ok {
		return fmt.Errorf("no rows updated")
	}
	delete(f.positions, id)
	return nil
}

type fakeRepos struct {
	user     *fakeUserRepo
	club     *fakeClubRepo
	player   *fakePlayerRepo
	position *fakePositionRepo
	repo     *repository.Repository
}

func newFakeRepos() *fakeRepos {
	user := newFakeUserRepo()
	club := newFakeClubRepo()
	player := newFakePlayerRepo()
	position := newFakePositionRepo()

	return &fakeRepos{
		user:     user,
		club:     club,
		player:   player,
		position: position,
		repo: &repository.Repository{
			User:     user,
			Club:     club,
			Player:   player,
			Position: position,
		},
	}
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:            "test-secret",
			AccessExpiryMins:  15,
			RefreshExpiryDays: 7,
		},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedClub(f *fakeRepos, name, country string) *entity.Club {
	now := time.Now()
	short := utils.Initialism(name, 4)
	club := &entity.Club{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         name,
		ShortName:    &short,
		Country:      country,
		PlayerIDs:    []uuid.UUID{},
	}
	f.club.clubs[club.ID] = club
	return club
}

func seedUser(f *fakeRepos, username string, role entity.UserRole, password string) *entity.User {
	now := time.Now()
	hash, _ := utils.HashPassword(password)
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Name:         strings.ToUpper(username[:1]) + username[1:],
		Role:         role,
		IsActive:     true,
	}
	f.user.users[user.ID] = user
	return user
}
