package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	accountinadapter "github.com/Nickgiresse/aurastyle/internal/modules/account/adapter/in"
	accountoutadapter "github.com/Nickgiresse/aurastyle/internal/modules/account/adapter/out"
	accountusecase "github.com/Nickgiresse/aurastyle/internal/modules/account/usecase"
	admininadapter "github.com/Nickgiresse/aurastyle/internal/modules/admin/adapter/in"
	adminoutadapter "github.com/Nickgiresse/aurastyle/internal/modules/admin/adapter/out"
	adminusecase "github.com/Nickgiresse/aurastyle/internal/modules/admin/usecase"
	authinadapter "github.com/Nickgiresse/aurastyle/internal/modules/auth/adapter/in"
	authoutadapter "github.com/Nickgiresse/aurastyle/internal/modules/auth/adapter/out"
	authservice "github.com/Nickgiresse/aurastyle/internal/modules/auth/service"
	authusecase "github.com/Nickgiresse/aurastyle/internal/modules/auth/usecase"
	cartinadapter "github.com/Nickgiresse/aurastyle/internal/modules/cart/adapter/in"
	cartoutadapter "github.com/Nickgiresse/aurastyle/internal/modules/cart/adapter/out"
	cartservice "github.com/Nickgiresse/aurastyle/internal/modules/cart/service"
	cartusecase "github.com/Nickgiresse/aurastyle/internal/modules/cart/usecase"
	cataloginadapter "github.com/Nickgiresse/aurastyle/internal/modules/catalog/adapter/in"
	catalogoutadapter "github.com/Nickgiresse/aurastyle/internal/modules/catalog/adapter/out"
	catalogservice "github.com/Nickgiresse/aurastyle/internal/modules/catalog/service"
	catalogusecase "github.com/Nickgiresse/aurastyle/internal/modules/catalog/usecase"
	orderinadapter "github.com/Nickgiresse/aurastyle/internal/modules/order/adapter/in"
	orderoutadapter "github.com/Nickgiresse/aurastyle/internal/modules/order/adapter/out"
	orderservice "github.com/Nickgiresse/aurastyle/internal/modules/order/service"
	orderusecase "github.com/Nickgiresse/aurastyle/internal/modules/order/usecase"
	"github.com/Nickgiresse/aurastyle/internal/platform/clock"
	"github.com/Nickgiresse/aurastyle/internal/platform/config"
	"github.com/Nickgiresse/aurastyle/internal/platform/localstore"
	uiapp "github.com/Nickgiresse/aurastyle/internal/ui/app"
)

type App struct {
	AuthCLI    authinadapter.CLIHandler
	CartCLI    cartinadapter.CLIHandler
	CatalogCLI cataloginadapter.CLIHandler
	OrderCLI   orderinadapter.CLIHandler
	AccountCLI accountinadapter.CLIHandler
	AdminCLI   admininadapter.CLIHandler
}

// New wires every module against one profile and hydrates the session before
// any handler can observe it.
func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	store, err := localstore.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	authUC := authusecase.NewInteractor(
		authservice.NewSessionService(authoutadapter.NewKeyedSessionStore(store)),
		authoutadapter.NewHTTPAuthClient(cfg.APIURL),
	)
	if err := authUC.Hydrate(context.Background()); err != nil {
		return nil, fmt.Errorf("hydrate session: %w", err)
	}

	cartUC := cartusecase.NewInteractor(cartservice.NewCartService(
		cartoutadapter.NewKeyedCartStore(store),
		cartoutadapter.NewSessionIdentityAdapter(authUC),
		clk,
	))

	projector, err := catalogoutadapter.NewSQLiteListingProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new listing projector: %w", err)
	}
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewHTTPCatalogClient(cfg.APIURL),
		projector,
	))

	orderUC := orderusecase.NewInteractor(
		orderservice.NewOrderService(orderoutadapter.NewHTTPOrderClient(cfg.APIURL), cfg.WhatsAppPhone),
		authUC,
		cartUC,
	)

	accountUC := accountusecase.NewInteractor(accountoutadapter.NewHTTPAccountClient(cfg.APIURL), authUC)
	adminUC := adminusecase.NewInteractor(adminoutadapter.NewHTTPAdminClient(cfg.APIURL), authUC)

	return &App{
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		CartCLI:    cartinadapter.NewCLIHandler(cartUC),
		CatalogCLI: cataloginadapter.NewCLIHandler(catalogUC),
		OrderCLI:   orderinadapter.NewCLIHandler(orderUC),
		AccountCLI: accountinadapter.NewCLIHandler(accountUC),
		AdminCLI:   admininadapter.NewCLIHandler(adminUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.CartCLI, app.AuthCLI, app.AccountCLI, app.OrderCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
