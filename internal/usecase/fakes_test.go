package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeTxManager выполняет функцию без настоящей транзакции.
// txError имитирует откат: fn не вызывается, ошибка возвращается как есть.
type fakeTxManager struct {
	txError error
	calls   int
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.txError != nil {
		return m.txError
	}
	return fn(ctx)
}

// fakeProductRepo хранит товары в памяти с сохранением порядка вставки.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
	order    []string
	nextID   int

	insertError error
	updateError error
	listError   error
	countError  error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[string]*domain.Product),
		nextID:   1,
	}
}

func (r *fakeProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertError != nil {
		return nil, r.insertError
	}

	saved := *product
	saved.ID = "prod-" + strconv.Itoa(r.nextID)
	saved.CreatedAt = time.Now()
	r.nextID++
	r.products[saved.ID] = &saved
	r.order = append(r.order, saved.ID)

	out := saved
	return &out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateError != nil {
		return nil, r.updateError
	}

	current, ok := r.products[product.ID]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	saved := *product
	saved.CreatedAt = current.CreatedAt
	now := time.Now()
	saved.UpdatedAt = &now
	r.products[saved.ID] = &saved

	out := saved
	return &out, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	out := *product
	return &out, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	out := *product
	return &out, nil
}

func (r *fakeProductRepo) List(ctx context.Context, category string, limit, offset int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listError != nil {
		return nil, r.listError
	}

	var filtered []domain.Product
	// от новых к старым
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.products[r.order[i]]
		if category == "" || p.Category == category {
			filtered = append(filtered, *p)
		}
	}

	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *fakeProductRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.countError != nil {
		return 0, r.countError
	}

	var n int64
	for _, p := range r.products {
		if category == "" || p.Category == category {
			n++
		}
	}
	return n, nil
}

// fakeCategoryRepo хранит категории в памяти, имена уникальны.
type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.Category
	order      []string
	nextID     int

	adjustments map[string]int64

	deleteError error
	adjustError error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:  make(map[string]*domain.Category),
		adjustments: make(map[string]int64),
		nextID:      1,
	}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, e.ErrCategoryExists
		}
	}

	saved := *category
	saved.ID = "cat-" + strconv.Itoa(r.nextID)
	saved.CreatedAt = time.Now()
	r.nextID++
	r.categories[saved.ID] = &saved
	r.order = append(r.order, saved.ID)

	out := saved
	return &out, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}

	out := *category
	return &out, nil
}

func (r *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == name {
			out := *c
			return &out, nil
		}
	}
	return nil, e.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) UpdateImage(ctx context.Context, id string, image string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}

	category.Image = &image
	now := time.Now()
	category.UpdatedAt = &now

	out := *category
	return &out, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteError != nil {
		return nil, r.deleteError
	}

	category, ok := r.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}

	delete(r.categories, id)
	for i, cid := range r.order {
		if cid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	out := *category
	return &out, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offset >= len(r.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.order) {
		end = len(r.order)
	}

	out := make([]domain.Category, 0, end-offset)
	for _, id := range r.order[offset:end] {
		out = append(out, *r.categories[id])
	}
	return out, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) AdjustCount(ctx context.Context, name string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.adjustError != nil {
		return r.adjustError
	}

	r.adjustments[name] += delta
	for _, c := range r.categories {
		if c.Name == name {
			c.Count += delta
			if c.Count < 0 {
				c.Count = 0
			}
		}
	}
	return nil
}

// fakeInquiryRepo хранит заявки в памяти.
type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[string]*domain.Inquiry
	order     []string
	nextID    int
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{
		inquiries: make(map[string]*domain.Inquiry),
		nextID:    1,
	}
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *inquiry
	saved.ID = "inq-" + strconv.Itoa(r.nextID)
	saved.CreatedAt = time.Now()
	r.nextID++
	r.inquiries[saved.ID] = &saved
	r.order = append(r.order, saved.ID)

	out := saved
	return &out, nil
}

func (r *fakeInquiryRepo) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, e.ErrInquiryNotFound
	}

	inquiry.Status = status
	now := time.Now()
	inquiry.UpdatedAt = &now

	out := *inquiry
	return &out, nil
}

func (r *fakeInquiryRepo) List(ctx context.Context, limit, offset int) ([]domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offset >= len(r.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.order) {
		end = len(r.order)
	}

	out := make([]domain.Inquiry, 0, end-offset)
	for i := end - 1; i >= offset; i-- {
		out = append(out, *r.inquiries[r.order[i]])
	}
	return out, nil
}

func (r *fakeInquiryRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.inquiries)), nil
}

// fakeContactRepo хранит сообщения обратной связи в памяти.
type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []domain.Contact
	nextID   int

	listError  error
	countError error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{nextID: 1}
}

func (r *fakeContactRepo) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *contact
	saved.ID = "con-" + strconv.Itoa(r.nextID)
	saved.CreatedAt = time.Now()
	r.nextID++
	r.contacts = append(r.contacts, saved)

	out := saved
	return &out, nil
}

func (r *fakeContactRepo) List(ctx context.Context, limit, offset int) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listError != nil {
		return nil, r.listError
	}

	if offset >= len(r.contacts) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.contacts) {
		end = len(r.contacts)
	}

	out := make([]domain.Contact, end-offset)
	copy(out, r.contacts[offset:end])
	return out, nil
}

func (r *fakeContactRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.countError != nil {
		return 0, r.countError
	}
	return int64(len(r.contacts)), nil
}

// fakeImagesInfra выдаёт детерминированные ключи и запоминает очистки.
type fakeImagesInfra struct {
	mu       sync.Mutex
	uploaded []string
	cleaned  []string
	nextKey  int

	uploadError error
	dropAll     bool
}

func newFakeImagesInfra() *fakeImagesInfra {
	return &fakeImagesInfra{nextKey: 1}
}

func (f *fakeImagesInfra) UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.uploadError != nil {
		return nil, f.uploadError
	}

	if f.dropAll {
		dropped := make([]string, 0, len(req.Images))
		for _, img := range req.Images {
			dropped = append(dropped, img.Name)
		}
		return NewUploadImagesRes(nil, dropped), nil
	}

	keys := make([]string, 0, len(req.Images))
	for range req.Images {
		key := req.Folder + "/img-" + strconv.Itoa(f.nextKey) + ".jpg"
		f.nextKey++
		keys = append(keys, key)
	}
	f.uploaded = append(f.uploaded, keys...)
	return NewUploadImagesRes(keys, nil), nil
}

func (f *fakeImagesInfra) UploadImage(ctx context.Context, folder string, image ProductImage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.uploadError != nil {
		return "", f.uploadError
	}

	key := folder + "/img-" + strconv.Itoa(f.nextKey) + ".jpg"
	f.nextKey++
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeImagesInfra) CleanupImages(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, keys...)
}

// fakeAdminRepo хранит администраторов по email.
type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*domain.Admin
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		admins: make(map[string]*domain.Admin),
		nextID: 1,
	}
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[admin.Email]; ok {
		return nil, e.ErrAdminExists
	}

	saved := *admin
	saved.ID = "adm-" + strconv.Itoa(r.nextID)
	saved.CreatedAt = time.Now()
	r.nextID++
	r.admins[saved.Email] = &saved

	out := saved
	return &out, nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin, ok := r.admins[email]
	if !ok {
		return nil, e.ErrAdminNotFound
	}

	out := *admin
	return &out, nil
}

// fakeSessionRepo хранит сессии в памяти, TTL игнорируется.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]string

	setError error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]string)}
}

func (r *fakeSessionRepo) Set(ctx context.Context, sid string, adminID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.setError != nil {
		return r.setError
	}
	r.sessions[sid] = adminID
	return nil
}

func (r *fakeSessionRepo) Get(ctx context.Context, sid string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	adminID, ok := r.sessions[sid]
	if !ok {
		return "", e.ErrSessionNotFound
	}
	return adminID, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	return nil
}
