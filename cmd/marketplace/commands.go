package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/seed"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Marketplace-api/pkg/config"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

var errUsage = errors.New("uso incorrecto")

type app struct {
	cfg *config.Config
	log *logger.Logger
	be  *backend
	out io.Writer
}

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"migrate":        {"crea el esquema", cmdMigrate},
	"seed":           {"carga datos de demostración en una base vacía", cmdSeed},
	"product-create": {"-name N -price P [-active=false]", cmdProductCreate},
	"product-list":   {"[-page 1] [-limit 10]", cmdProductList},
	"product-get":    {"<id>", cmdProductGet},
	"user-create":    {"-name N -email E -role ADMIN|PARTNER|CUSTOMER", cmdUserCreate},
	"user-list":      {"[-page 1] [-limit 10] [-role R]", cmdUserList},
	"user-get":       {"<id>", cmdUserGet},
	"sale-create":    {"-product ID -customer ID -partner ID -value V", cmdSaleCreate},
	"sale-list":      {"[-page 1] [-limit 10]", cmdSaleList},
	"sale-get":       {"<id>", cmdSaleGet},
	"commissions":    {"<partnerId>", cmdCommissions},
	"report":         {"[-start YYYY-MM-DD] [-end YYYY-MM-DD] [-partner ID] [-page N] [-limit N] [-pdf archivo]", cmdReport},
}

// run despacha args[0] al comando correspondiente y escribe el resultado en out.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return fmt.Errorf("%w: falta el comando", errUsage)
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(out)
		return nil
	}
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: comando desconocido %q", errUsage, name)
	}

	be, err := openBackend(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer be.close()

	log.Debug().Str("cmd", name).Str("driver", cfg.DB.Driver).Msg("ejecutando comando")
	return cmd.run(ctx, &app{cfg: cfg, log: log, be: be, out: out}, args[1:])
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "uso: marketplace <comando> [flags]")
	for _, n := range names {
		fmt.Fprintf(w, "  %-15s %s\n", n, commands[n].usage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: argumentos inesperados %v", errUsage, fs.Name(), fs.Args())
	}
	return nil
}

func parseID(cmd string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s requiere exactamente un ID", errUsage, cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("ID inválido: %q", args[0])
	}
	return id, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, domain.NewValidationError("%s inválido: %q", field, s)
	}
	return d, nil
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func cmdMigrate(ctx context.Context, a *app, args []string) error {
	if err := parseFlags(newFlagSet("migrate"), args); err != nil {
		return err
	}
	if err := a.be.migrate(ctx); err != nil {
		return err
	}
	a.log.Info().Str("driver", a.cfg.DB.Driver).Msg("esquema aplicado")
	return writeJSON(a.out, map[string]string{"status": "ok"})
}

func cmdSeed(ctx context.Context, a *app, args []string) error {
	if err := parseFlags(newFlagSet("seed"), args); err != nil {
		return err
	}
	sum, err := seed.NewSeeder(a.be.tx, a.log).Run(ctx)
	if err != nil {
		return err
	}
	return writeJSON(a.out, sum)
}

func cmdProductCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("product-create")
	name := fs.String("name", "", "nombre del producto")
	price := fs.String("price", "", "precio (decimal)")
	active := fs.Bool("active", true, "disponible para la venta")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	p, err := parseDecimal("price", *price)
	if err != nil {
		return err
	}
	product, err := usecase.NewProductUseCase(a.be.products).Create(ctx, dto.CreateProductRequest{
		Name:   *name,
		Price:  p,
		Active: active,
	})
	if err != nil {
		return err
	}
	a.log.Info().Int64("product_id", product.ID()).Msg("producto creado")
	return writeJSON(a.out, dto.NewProductResponse(product))
}

func pageFlags(fs *flag.FlagSet) *dto.PageRequest {
	var p dto.PageRequest
	fs.IntVar(&p.Page, "page", dto.DefaultPage, "página (≥1)")
	fs.IntVar(&p.Limit, "limit", dto.DefaultLimit, "tamaño de página (≥1)")
	return &p
}

func cmdProductList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("product-list")
	page := pageFlags(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	res, err := usecase.NewProductUseCase(a.be.products).FindAll(ctx, page.Page, page.Limit)
	if err != nil {
		return err
	}
	return writeJSON(a.out, dto.MapPaginated(res, dto.NewProductResponse))
}

func cmdProductGet(ctx context.Context, a *app, args []string) error {
	id, err := parseID("product-get", args)
	if err != nil {
		return err
	}
	product, err := usecase.NewProductUseCase(a.be.products).FindByID(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(a.out, dto.NewProductResponse(product))
}

func cmdUserCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("user-create")
	name := fs.String("name", "", "nombre")
	email := fs.String("email", "", "email único")
	role := fs.String("role", "", "ADMIN | PARTNER | CUSTOMER")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	user, err := usecase.NewUserUseCase(a.be.users).Create(ctx, dto.CreateUserRequest{
		Name:  *name,
		Email: *email,
		Role:  *role,
	})
	if err != nil {
		return err
	}
	a.log.Info().Int64("user_id", user.ID()).Str("role", user.Role().String()).Msg("usuario creado")
	return writeJSON(a.out, dto.NewUserResponse(user))
}

func cmdUserList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("user-list")
	page := pageFlags(fs)
	roleFlag := fs.String("role", "", "filtrar por rol")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	var role *entity.Role
	if *roleFlag != "" {
		r, err := entity.ParseRole(*roleFlag)
		if err != nil {
			return err
		}
		role = &r
	}
	res, err := usecase.NewUserUseCase(a.be.users).FindAll(ctx, page.Page, page.Limit, role)
	if err != nil {
		return err
	}
	return writeJSON(a.out, dto.MapPaginated(res, dto.NewUserResponse))
}

func cmdUserGet(ctx context.Context, a *app, args []string) error {
	id, err := parseID("user-get", args)
	if err != nil {
		return err
	}
	user, err := usecase.NewUserUseCase(a.be.users).FindByID(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(a.out, dto.NewUserResponse(user))
}

func newSaleUseCase(a *app) *usecase.SaleUseCase {
	return usecase.NewSaleUseCase(a.be.sales, a.be.users, a.be.products)
}

func cmdSaleCreate(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("sale-create")
	productID := fs.Int64("product", 0, "ID del producto")
	customerID := fs.Int64("customer", 0, "ID del cliente")
	partnerID := fs.Int64("partner", 0, "ID del partner")
	value := fs.String("value", "", "valor de la venta (decimal)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	v, err := parseDecimal("value", *value)
	if err != nil {
		return err
	}
	sale, err := newSaleUseCase(a).Create(ctx, dto.CreateSaleRequest{
		ProductID:  *productID,
		CustomerID: *customerID,
		PartnerID:  *partnerID,
		Value:      v,
	})
	if err != nil {
		return err
	}
	a.log.Info().Int64("sale_id", sale.ID()).Int64("partner_id", sale.PartnerID()).Msg("venta registrada")
	return writeJSON(a.out, dto.NewSaleResponse(sale))
}

func cmdSaleList(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("sale-list")
	page := pageFlags(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	res, err := newSaleUseCase(a).FindAll(ctx, page.Page, page.Limit)
	if err != nil {
		return err
	}
	return writeJSON(a.out, dto.MapPaginated(res, dto.NewSaleResponse))
}

func cmdSaleGet(ctx context.Context, a *app, args []string) error {
	id, err := parseID("sale-get", args)
	if err != nil {
		return err
	}
	sale, err := newSaleUseCase(a).FindByID(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(a.out, dto.NewSaleResponse(sale))
}

func cmdCommissions(ctx context.Context, a *app, args []string) error {
	id, err := parseID("commissions", args)
	if err != nil {
		return err
	}
	res, err := usecase.NewPartnerUseCase(a.be.users, a.be.sales).GetCommissions(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(a.out, res)
}

func cmdReport(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("report")
	start := fs.String("start", "", "fecha inicial YYYY-MM-DD")
	end := fs.String("end", "", "fecha final YYYY-MM-DD (inclusiva)")
	partner := fs.Int64("partner", 0, "ID del partner")
	page := fs.Int("page", 0, "página (0 = 1)")
	limit := fs.Int("limit", 0, "tamaño de página (0 = REPORT_PAGE_SIZE)")
	pdfPath := fs.String("pdf", "", "escribe además el reporte en PDF")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	q := dto.SalesReportQuery{StartDate: *start, EndDate: *end, Page: *page, Limit: *limit}
	if flagWasSet(fs, "partner") {
		q.PartnerID = partner
	}
	report, err := usecase.NewReportUseCase(a.be.report, a.cfg.Report.PageSize).GetSalesReport(ctx, q)
	if err != nil {
		return err
	}

	if *pdfPath != "" {
		doc, err := pdf.NewSalesReportPDF(a.cfg.App.Name).Generate(ctx, report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*pdfPath, doc, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", *pdfPath, err)
		}
		a.log.Info().Str("path", *pdfPath).Int("bytes", len(doc)).Msg("reporte PDF generado")
	}
	return writeJSON(a.out, report)
}
