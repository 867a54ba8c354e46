package catalog

import (
	"context"
	"sort"

	"github.com/xiebiao/locallibrary/internal/domain/catalog"
	"github.com/xiebiao/locallibrary/internal/domain/user"
)

// 内存版仓储实现，用于不依赖数据库的用例测试

type fakeAuthorRepo struct {
	items  map[uint]catalog.Author
	nextID uint
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{items: make(map[uint]catalog.Author)}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, author *catalog.Author) error {
	r.nextID++
	author.ID = r.nextID
	r.items[author.ID] = *author
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*catalog.Author, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, catalog.ErrAuthorNotFound
	}
	found := item
	return &found, nil
}

func (r *fakeAuthorRepo) List(ctx context.Context, limit, offset int) ([]*catalog.Author, int64, error) {
	ids := sortedKeys(r.items)
	result := make([]*catalog.Author, 0, limit)
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		item := r.items[ids[i]]
		result = append(result, &item)
	}
	return result, int64(len(r.items)), nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, author *catalog.Author) error {
	if _, ok := r.items[author.ID]; !ok {
		return catalog.ErrAuthorNotFound
	}
	r.items[author.ID] = *author
	return nil
}

func (r *fakeAuthorRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return catalog.ErrAuthorNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeGenreRepo struct {
	items  map[uint]catalog.Genre
	nextID uint
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{items: make(map[uint]catalog.Genre)}
}

func (r *fakeGenreRepo) Create(ctx context.Context, genre *catalog.Genre) error {
	r.nextID++
	genre.ID = r.nextID
	r.items[genre.ID] = *genre
	return nil
}

func (r *fakeGenreRepo) FindByID(ctx context.Context, id uint) (*catalog.Genre, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, catalog.ErrGenreNotFound
	}
	found := item
	return &found, nil
}

func (r *fakeGenreRepo) List(ctx context.Context, limit, offset int) ([]*catalog.Genre, int64, error) {
	ids := sortedKeys(r.items)
	result := make([]*catalog.Genre, 0, limit)
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		item := r.items[ids[i]]
		result = append(result, &item)
	}
	return result, int64(len(r.items)), nil
}

func (r *fakeGenreRepo) Update(ctx context.Context, genre *catalog.Genre) error {
	if _, ok := r.items[genre.ID]; !ok {
		return catalog.ErrGenreNotFound
	}
	r.items[genre.ID] = *genre
	return nil
}

func (r *fakeGenreRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return catalog.ErrGenreNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeLanguageRepo struct {
	items  map[uint]catalog.Language
	nextID uint
}

func newFakeLanguageRepo() *fakeLanguageRepo {
	return &fakeLanguageRepo{items: make(map[uint]catalog.Language)}
}

func (r *fakeLanguageRepo) Create(ctx context.Context, language *catalog.Language) error {
	r.nextID++
	language.ID = r.nextID
	r.items[language.ID] = *language
	return nil
}

func (r *fakeLanguageRepo) FindByID(ctx context.Context, id uint) (*catalog.Language, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, catalog.ErrLanguageNotFound
	}
	found := item
	return &found, nil
}

func (r *fakeLanguageRepo) List(ctx context.Context, limit, offset int) ([]*catalog.Language, int64, error) {
	ids := sortedKeys(r.items)
	result := make([]*catalog.Language, 0, limit)
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		item := r.items[ids[i]]
		result = append(result, &item)
	}
	return result, int64(len(r.items)), nil
}

func (r *fakeLanguageRepo) Update(ctx context.Context, language *catalog.Language) error {
	if _, ok := r.items[language.ID]; !ok {
		return catalog.ErrLanguageNotFound
	}
	r.items[language.ID] = *language
	return nil
}

func (r *fakeLanguageRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return catalog.ErrLanguageNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeBookRepo struct {
	items  map[uint]catalog.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{items: make(map[uint]catalog.Book)}
}

func (r *fakeBookRepo) Create(ctx context.Context, book *catalog.Book) error {
	r.nextID++
	book.ID = r.nextID
	r.items[book.ID] = *book
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, catalog.ErrBookNotFound
	}
	found := item
	return &found, nil
}

func (r *fakeBookRepo) List(ctx context.Context, limit, offset int) ([]*catalog.Book, int64, error) {
	ids := sortedKeys(r.items)
	result := make([]*catalog.Book, 0, limit)
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		item := r.items[ids[i]]
		result = append(result, &item)
	}
	return result, int64(len(r.items)), nil
}

func (r *fakeBookRepo) Update(ctx context.Context, book *catalog.Book) error {
	existing, ok := r.items[book.ID]
	if !ok {
		return catalog.ErrBookNotFound
	}
	// 体裁关联不在Update范围内，保持原集合
	updated := *book
	updated.Genres = existing.Genres
	r.items[book.ID] = updated
	return nil
}

func (r *fakeBookRepo) ReplaceGenres(ctx context.Context, bookID uint, genres []catalog.Genre) error {
	existing, ok := r.items[bookID]
	if !ok {
		return catalog.ErrBookNotFound
	}
	existing.Genres = genres
	r.items[bookID] = existing
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return catalog.ErrBookNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeInstanceRepo struct {
	items map[catalog.InstanceID]catalog.BookInstance
}

func newFakeInstanceRepo() *fakeInstanceRepo {
	return &fakeInstanceRepo{items: make(map[catalog.InstanceID]catalog.BookInstance)}
}

func (r *fakeInstanceRepo) Create(ctx context.Context, instance *catalog.BookInstance) error {
	r.items[instance.ID] = *instance
	return nil
}

func (r *fakeInstanceRepo) FindByID(ctx context.Context, id catalog.InstanceID) (*catalog.BookInstance, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, catalog.ErrInstanceNotFound
	}
	found := item
	return &found, nil
}

func (r *fakeInstanceRepo) List(ctx context.Context, limit, offset int) ([]*catalog.BookInstance, int64, error) {
	result := make([]*catalog.BookInstance, 0, len(r.items))
	for id := range r.items {
		item := r.items[id]
		result = append(result, &item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID.String() < result[j].ID.String() })
	if offset > len(result) {
		offset = len(result)
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], int64(len(r.items)), nil
}

func (r *fakeInstanceRepo) Update(ctx context.Context, instance *catalog.BookInstance) error {
	if _, ok := r.items[instance.ID]; !ok {
		return catalog.ErrInstanceNotFound
	}
	r.items[instance.ID] = *instance
	return nil
}

func (r *fakeInstanceRepo) Delete(ctx context.Context, id catalog.InstanceID) error {
	if _, ok := r.items[id]; !ok {
		return catalog.ErrInstanceNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	items map[uint]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[uint]user.User)}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	found := item
	return &found, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for id := range r.items {
		if r.items[id].Username == username {
			found := r.items[id]
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

// fakeTxManager 直接执行回调并记录调用次数
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
