package cmd

import (
	"log/slog"

	"grocery/internal/adapters/out/geo"
	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/postgres/productrepo"
	"grocery/internal/adapters/out/postgres/vendorrepo"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	redisClient     *redis.Client
	publisher       ports.EventPublisher
	logger          *slog.Logger
	uowFactory      postgres.GormUnitOfWorkFactory
	quoteCalculator services.QuoteCalculator
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	calculator, err := services.NewQuoteCalculator(geo.NewRandomEstimator())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:          gormDB,
		redisClient:     redisClient,
		publisher:       publisher,
		logger:          logger,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		quoteCalculator: calculator,
	}, nil
}

func (c *CompositionRoot) CreateAddBasketItemCommandHandler() commands.AddBasketItemCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddBasketItemCommandHandler(
		f,
		productrepo.NewGormProductCatalog(c.gormDB),
		vendorrepo.NewGormVendorRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateUpdateBasketItemQuantityCommandHandler() commands.UpdateBasketItemQuantityCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBasketItemQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveBasketItemCommandHandler() commands.RemoveBasketItemCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveBasketItemCommandHandler(f)
}

func (c *CompositionRoot) CreateClearBasketCommandHandler() commands.ClearBasketCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearBasketCommandHandler(f)
}

func (c *CompositionRoot) CreateEstimateDeliveryCommandHandler() commands.EstimateDeliveryCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEstimateDeliveryCommandHandler(f, c.quoteCalculator)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrdersCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRequestVerificationCommandHandler() commands.RequestVerificationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestVerificationCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, services.NewRiderSelector(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateApproveRiderPaymentCommandHandler() commands.ApproveRiderPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRiderPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBasketQueryHandler() queries.GetBasketQueryHandler {
	return queries.NewGetBasketQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorsQueryHandler() queries.GetVendorsQueryHandler {
	return queries.NewGetVendorsQueryHandler(c.gormDB, c.redisClient)
}

func (c *CompositionRoot) CreateGetVendorProductsQueryHandler() queries.GetVendorProductsQueryHandler {
	return queries.NewGetVendorProductsQueryHandler(c.gormDB, c.redisClient)
}

func (c *CompositionRoot) CreateGetRiderPaymentsQueryHandler() queries.GetRiderPaymentsQueryHandler {
	return queries.NewGetRiderPaymentsQueryHandler(c.gormDB)
}

type FuncBasketUoWFactory func() commands.BasketUoW

func (f FuncBasketUoWFactory) Create() commands.BasketUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
