package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// callLog registra el orden de llamadas a los repositorios.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(c string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeProductRepo struct {
	log      *callLog
	products map[int64]*entity.Product
	total    int
	skip     int
	take     int
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	r.log.add("products.Create")
	id := int64(len(r.products) + 1)
	out, err := entity.NewProduct(id, p.Name(), p.Price(), p.Active(), p.CreatedAt())
	if err != nil {
		return nil, err
	}
	r.products[id] = out
	return out, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, skip, take int) ([]*entity.Product, error) {
	r.log.add("products.FindAll")
	r.skip, r.take = skip, take
	return nil, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	r.log.add("products.FindByID")
	return r.products[id], nil
}

func (r *fakeProductRepo) Count(context.Context) (int, error) {
	r.log.add("products.Count")
	return r.total, nil
}

type fakeUserRepo struct {
	log   *callLog
	users map[int64]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	r.log.add("users.Create")
	id := int64(len(r.users) + 1)
	out, err := entity.NewUser(id, u.Name(), u.Email(), u.Role(), u.CreatedAt())
	if err != nil {
		return nil, err
	}
	r.users[id] = out
	return out, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, _, _ int, role *entity.Role) ([]*entity.User, error) {
	r.log.add("users.FindAll")
	var out []*entity.User
	for _, u := range r.users {
		if role == nil || u.Role() == *role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.log.add("users.FindByID")
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.log.add("users.FindByEmail")
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context, role *entity.Role) (int, error) {
	r.log.add("users.Count")
	n := 0
	for _, u := range r.users {
		if role == nil || u.Role() == *role {
			n++
		}
	}
	return n, nil
}

type fakeSaleRepo struct {
	log   *callLog
	sales []*entity.Sale
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) (*entity.Sale, error) {
	r.log.add("sales.Create")
	out, err := entity.NewSale(entity.SaleParams{
		ID:         int64(len(r.sales) + 1),
		Value:      s.Value(),
		ProductID:  s.ProductID(),
		CustomerID: s.CustomerID(),
		PartnerID:  s.PartnerID(),
		CreatedAt:  s.CreatedAt(),
		Product:    s.Product(),
		Customer:   s.Customer(),
		Partner:    s.Partner(),
	})
	if err != nil {
		return nil, err
	}
	r.sales = append(r.sales, out)
	return out, nil
}

func (r *fakeSaleRepo) FindAll(_ context.Context, skip, take int) ([]*entity.Sale, error) {
	r.log.add("sales.FindAll")
	if skip >= len(r.sales) {
		return nil, nil
	}
	end := min(skip+take, len(r.sales))
	return r.sales[skip:end], nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id int64) (*entity.Sale, error) {
	r.log.add("sales.FindByID")
	for _, s := range r.sales {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) FindByPartner(_ context.Context, partnerID int64) ([]*entity.Sale, error) {
	r.log.add("sales.FindByPartner")
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.PartnerID() == partnerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Count(context.Context) (int, error) {
	r.log.add("sales.Count")
	return len(r.sales), nil
}

type fixture struct {
	log      *callLog
	products *fakeProductRepo
	users    *fakeUserRepo
	sales    *fakeSaleRepo
}

// newFixture: producto 1 activo (100), producto 2 inactivo, usuario 1 admin,
// 2 partner, 3 customer.
func newFixture() *fixture {
	log := &callLog{}
	now := time.Now()
	p1, _ := entity.NewProduct(1, "Curso de Go", decimal.NewFromInt(100), true, now)
	p2, _ := entity.NewProduct(2, "E-book", decimal.NewFromInt(50), false, now)
	admin, _ := entity.NewUser(1, "Admin", "admin@test.com", entity.RoleAdmin, now)
	partner, _ := entity.NewUser(2, "Partner", "partner@test.com", entity.RolePartner, now)
	customer, _ := entity.NewUser(3, "Cliente", "cliente@test.com", entity.RoleCustomer, now)
	return &fixture{
		log:      log,
		products: &fakeProductRepo{log: log, products: map[int64]*entity.Product{1: p1, 2: p2}},
		users:    &fakeUserRepo{log: log, users: map[int64]*entity.User{1: admin, 2: partner, 3: customer}},
		sales:    &fakeSaleRepo{log: log},
	}
}
