package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"soulverse/internal/domain"
	"soulverse/internal/repository"
)

type mockUserRepo struct {
	users map[string]domain.User
	order []string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.users[user.ID] = user
	m.order = append(m.order, user.ID)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for i := len(m.order) - 1; i >= 0; i-- {
		users = append(users, m.users[m.order[i]])
	}
	return users, nil
}

func (m *mockUserRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

type mockProfileRepo struct {
	profiles map[string]domain.Profile
	order    []string
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]domain.Profile)}
}

func (m *mockProfileRepo) Create(_ context.Context, profile domain.Profile) error {
	m.profiles[profile.ID] = profile
	m.order = append(m.order, profile.ID)
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (domain.Profile, error) {
	profile, ok := m.profiles[id]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (m *mockProfileRepo) GetOldest(_ context.Context) (domain.Profile, error) {
	if len(m.order) == 0 {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return m.profiles[m.order[0]], nil
}

func (m *mockProfileRepo) List(_ context.Context, newestFirst bool) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if newestFirst {
		for i := len(m.order) - 1; i >= 0; i-- {
			profiles = append(profiles, m.profiles[m.order[i]])
		}
	} else {
		for _, id := range m.order {
			profiles = append(profiles, m.profiles[id])
		}
	}
	return profiles, nil
}

func (m *mockProfileRepo) Update(_ context.Context, profile domain.Profile) error {
	if _, ok := m.profiles[profile.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *mockProfileRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.profiles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.profiles, id)
	for i, pid := range m.order {
		if pid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockProfileRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.profiles[id]
	return ok, nil
}

func (m *mockProfileRepo) Count(_ context.Context) (int, error) {
	return len(m.profiles), nil
}

type mockCategoryRepo struct {
	categories map[string]domain.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]domain.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, category domain.Category) error {
	for _, c := range m.categories {
		if c.Name == category.Name {
			return repository.ErrDuplicateCategory
		}
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return domain.Category{}, pgx.ErrNoRows
	}
	return category, nil
}

func (m *mockCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, category domain.Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, c := range m.categories {
		if id != category.ID && c.Name == category.Name {
			return repository.ErrDuplicateCategory
		}
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) Count(_ context.Context) (int, error) {
	return len(m.categories), nil
}

type mockCommentRepo struct {
	comments map[string]*domain.Comment
	order    []string
	ledger   *mockLikeRepo
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (m *mockCommentRepo) Create(_ context.Context, comment domain.Comment) error {
	stored := comment
	m.comments[comment.ID] = &stored
	m.order = append(m.order, comment.ID)
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id string) (domain.Comment, error) {
	comment, ok := m.comments[id]
	if !ok {
		return domain.Comment{}, pgx.ErrNoRows
	}
	return *comment, nil
}

func (m *mockCommentRepo) ListByProfile(_ context.Context, profileID string, filter domain.CommentFilter, sortOrder domain.CommentSort) ([]domain.Comment, error) {
	var comments []domain.Comment
	for _, id := range m.order {
		c := m.comments[id]
		if c.ProfileID != profileID {
			continue
		}
		switch filter {
		case domain.FilterMBTI:
			if c.MBTIVote == nil || *c.MBTIVote == "" {
				continue
			}
		case domain.FilterEnneagram:
			if c.EnneagramVote == nil || *c.EnneagramVote == "" {
				continue
			}
		case domain.FilterZodiac:
			if c.ZodiacVote == nil || *c.ZodiacVote == "" {
				continue
			}
		}
		comments = append(comments, *c)
	}

	sort.SliceStable(comments, func(i, j int) bool {
		if sortOrder == domain.SortBest && comments[i].LikesCount != comments[j].LikesCount {
			return comments[i].LikesCount > comments[j].LikesCount
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *mockCommentRepo) RecountLikes(_ context.Context) (int, error) {
	fixed := 0
	for id, c := range m.comments {
		actual := 0
		if m.ledger != nil {
			for _, l := range m.ledger.likes {
				if l.CommentID == id {
					actual++
				}
			}
		}
		if c.LikesCount != actual {
			c.LikesCount = actual
			fixed++
		}
	}
	return fixed, nil
}

type mockLikeRepo struct {
	likes    map[string]domain.Like
	comments *mockCommentRepo
	listErr  error
}

func newMockLikeRepo(comments *mockCommentRepo) *mockLikeRepo {
	m := &mockLikeRepo{likes: make(map[string]domain.Like), comments: comments}
	if comments != nil {
		comments.ledger = m
	}
	return m
}

func likeKey(userID, commentID string) string {
	return userID + "|" + commentID
}

func (m *mockLikeRepo) Like(_ context.Context, userID, commentID string) (int, error) {
	key := likeKey(userID, commentID)
	if _, ok := m.likes[key]; ok {
		return 0, repository.ErrDuplicateLike
	}
	m.likes[key] = domain.Like{ID: key, UserID: userID, CommentID: commentID}

	comment, ok := m.comments.comments[commentID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	comment.LikesCount++
	return comment.LikesCount, nil
}

func (m *mockLikeRepo) Unlike(_ context.Context, userID, commentID string) (int, error) {
	key := likeKey(userID, commentID)
	if _, ok := m.likes[key]; !ok {
		return 0, pgx.ErrNoRows
	}
	delete(m.likes, key)

	comment, ok := m.comments.comments[commentID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	if comment.LikesCount > 0 {
		comment.LikesCount--
	}
	return comment.LikesCount, nil
}

func (m *mockLikeRepo) FindByUserAndComment(_ context.Context, userID, commentID string) (domain.Like, error) {
	like, ok := m.likes[likeKey(userID, commentID)]
	if !ok {
		return domain.Like{}, pgx.ErrNoRows
	}
	return like, nil
}

func (m *mockLikeRepo) ListByUser(_ context.Context, userID string, commentIDs []string) ([]domain.Like, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	wanted := make(map[string]struct{}, len(commentIDs))
	for _, id := range commentIDs {
		wanted[id] = struct{}{}
	}
	var likes []domain.Like
	for _, l := range m.likes {
		if l.UserID != userID {
			continue
		}
		if _, ok := wanted[l.CommentID]; ok {
			likes = append(likes, l)
		}
	}
	return likes, nil
}
