// Package seed carga datos de demostración pasando por los casos de uso,
// de modo que cada registro respeta las mismas reglas que una alta manual.
package seed

import (
	"context"
	"fmt"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Repositories repositorios atados a una misma transacción.
type Repositories struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
	Sales    repository.SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción (commit si fn no falla).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// Summary cantidades creadas por Run.
type Summary struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Sales    int `json:"sales"`
}

type userSeed struct {
	name, email string
	role        entity.Role
}

var users = []userSeed{
	{"Admin User", "admin@marketplace.com", entity.RoleAdmin},
	{"João Silva", "joao.silva@partner.com", entity.RolePartner},
	{"Maria Santos", "maria.santos@partner.com", entity.RolePartner},
	{"Carlos Oliveira", "carlos@customer.com", entity.RoleCustomer},
	{"Ana Paula", "ana@customer.com", entity.RoleCustomer},
	{"Pedro Almeida", "pedro@customer.com", entity.RoleCustomer},
}

type productSeed struct {
	name   string
	price  string
	active bool
}

var products = []productSeed{
	{"Curso de TypeScript Avançado", "299.90", true},
	{"Curso de NestJS", "399.90", true},
	{"Curso de React com TypeScript", "349.90", true},
	{"Mentoria Individual", "1500.00", true},
	{"E-book Clean Architecture", "49.90", false},
	{"Curso de Node.js", "279.90", true},
	{"Workshop de Domain-Driven Design", "599.00", true},
}

// índices sobre products, customers y partners; value = precio del producto.
var sales = []struct{ product, customer, partner int }{
	{0, 0, 0},
	{1, 1, 0},
	{2, 2, 0},
	{3, 0, 1},
	{0, 1, 1},
	{1, 2, 1},
	{5, 0, 0},
	{6, 1, 1},
}

// Seeder puebla una base vacía en una sola transacción.
type Seeder struct {
	tx  TxRunner
	log *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(tx TxRunner, log *logger.Logger) *Seeder {
	return &Seeder{tx: tx, log: log}
}

// Run crea usuarios, productos y ventas. Falla con ErrConflict si ya hay usuarios.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	var sum Summary
	err := s.tx.Run(ctx, func(repos Repositories) error {
		n, err := repos.Users.Count(ctx, nil)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.NewConflictError("la base ya contiene %d usuarios; el seed requiere una base vacía", n)
		}

		userUC := usecase.NewUserUseCase(repos.Users)
		productUC := usecase.NewProductUseCase(repos.Products)
		saleUC := usecase.NewSaleUseCase(repos.Sales, repos.Users, repos.Products)

		var partners, customers []*entity.User
		for _, u := range users {
			created, err := userUC.Create(ctx, dto.CreateUserRequest{Name: u.name, Email: u.email, Role: u.role.String()})
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.email, err)
			}
			switch {
			case created.IsPartner():
				partners = append(partners, created)
			case created.IsCustomer():
				customers = append(customers, created)
			}
		}
		sum.Users = len(users)
		s.log.Info().Int("partners", len(partners)).Int("customers", len(customers)).Msg("seed: usuarios creados")

		created := make([]*entity.Product, 0, len(products))
		for _, p := range products {
			active := p.active
			prod, err := productUC.Create(ctx, dto.CreateProductRequest{
				Name:   p.name,
				Price:  decimal.RequireFromString(p.price),
				Active: &active,
			})
			if err != nil {
				return fmt.Errorf("seed product %s: %w", p.name, err)
			}
			created = append(created, prod)
		}
		sum.Products = len(created)
		s.log.Info().Int("count", sum.Products).Msg("seed: productos creados")

		for _, sl := range sales {
			product := created[sl.product]
			if _, err := saleUC.Create(ctx, dto.CreateSaleRequest{
				ProductID:  product.ID(),
				CustomerID: customers[sl.customer].ID(),
				PartnerID:  partners[sl.partner].ID(),
				Value:      product.Price(),
			}); err != nil {
				return fmt.Errorf("seed sale (producto %d): %w", product.ID(), err)
			}
			sum.Sales++
		}
		s.log.Info().Int("count", sum.Sales).Msg("seed: ventas creadas")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
