package cmd

import (
	"log/slog"

	httpin "github.com/lax56237/Daily-Drop/internal/adapters/in/http"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/queries"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/otp"
	"github.com/lax56237/Daily-Drop/internal/core/ports"
	"github.com/lax56237/Daily-Drop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	otpStore   ports.OtpStore
	notifier   ports.Notifier
	codes      otp.Generator
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	otpStore ports.OtpStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		otpStore:   otpStore,
		notifier:   notifier,
		codes:      otp.NewGenerator(),
		logger:     logger,
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) buyerUoWFactory() commands.BuyerUoWFactory {
	return FuncBuyerUoWFactory(func() commands.BuyerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) agentUoWFactory() commands.AgentUoWFactory {
	return FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemsCommandHandler() commands.AddCartItemsCommandHandler {
	return commands.NewAddCartItemsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartQuantityCommandHandler() commands.UpdateCartQuantityCommandHandler {
	return commands.NewUpdateCartQuantityCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.checkoutUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateReconcileFanOutCommandHandler() commands.ReconcileFanOutCommandHandler {
	return commands.NewReconcileFanOutCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateSaveAddressCommandHandler() commands.SaveAddressCommandHandler {
	return commands.NewSaveAddressCommandHandler(c.buyerUoWFactory())
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	return commands.NewCreateAgentCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateListReadyOrdersCommandHandler() commands.ListReadyOrdersCommandHandler {
	return commands.NewListReadyOrdersCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateStoreOrderSheetCommandHandler() commands.StoreOrderSheetCommandHandler {
	return commands.NewStoreOrderSheetCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateSendCompletionOtpCommandHandler() commands.SendCompletionOtpCommandHandler {
	return commands.NewSendCompletionOtpCommandHandler(c.deliveryUoWFactory(), c.codes, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateVerifyAndCompleteCommandHandler() commands.VerifyAndCompleteCommandHandler {
	return commands.NewVerifyAndCompleteCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateSendAccountOtpCommandHandler() commands.SendAccountOtpCommandHandler {
	return commands.NewSendAccountOtpCommandHandler(c.otpStore, c.codes, c.notifier, c.config.AccountOtpTTL, c.logger)
}

func (c *CompositionRoot) CreateVerifyAccountOtpCommandHandler() commands.VerifyAccountOtpCommandHandler {
	return commands.NewVerifyAccountOtpCommandHandler(c.otpStore)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrderQueryHandler() queries.GetBuyerOrderQueryHandler {
	return queries.NewGetBuyerOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAddressQueryHandler() queries.GetAddressQueryHandler {
	return queries.NewGetAddressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSheetQueryHandler() queries.GetOrderSheetQueryHandler {
	return queries.NewGetOrderSheetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		AddCartItems:       c.CreateAddCartItemsCommandHandler(),
		UpdateCartQuantity: c.CreateUpdateCartQuantityCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		SaveAddress:        c.CreateSaveAddressCommandHandler(),
		ListReadyOrders:    c.CreateListReadyOrdersCommandHandler(),
		TakeOrder:          c.CreateTakeOrderCommandHandler(),
		StoreOrderSheet:    c.CreateStoreOrderSheetCommandHandler(),
		SendCompletionOtp:  c.CreateSendCompletionOtpCommandHandler(),
		VerifyAndComplete:  c.CreateVerifyAndCompleteCommandHandler(),
		CompleteDelivery:   c.CreateCompleteDeliveryCommandHandler(),
		CreateAgent:        c.CreateCreateAgentCommandHandler(),
		SendAccountOtp:     c.CreateSendAccountOtpCommandHandler(),
		VerifyAccountOtp:   c.CreateVerifyAccountOtpCommandHandler(),

		GetCart:         c.CreateGetCartQueryHandler(),
		GetBuyerOrders:  c.CreateGetBuyerOrdersQueryHandler(),
		GetBuyerOrder:   c.CreateGetBuyerOrderQueryHandler(),
		GetAddress:      c.CreateGetAddressQueryHandler(),
		GetOrderSheet:   c.CreateGetOrderSheetQueryHandler(),
		GetSellerOrders: c.CreateGetSellerOrdersQueryHandler(),
	}
}

// CreateJobManager wires the scheduled jobs. The sweep job only runs for
// stores that need explicit sweeping.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweeper, _ := c.otpStore.(ports.OtpSweeper)
	return jobs.NewJobManager(sweeper, c.CreateReconcileFanOutCommandHandler(), jobs.Schedules{
		OtpSweep:  c.config.OtpSweepSchedule,
		Reconcile: c.config.ReconcileSchedule,
	}, c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncBuyerUoWFactory func() commands.BuyerUoW

func (f FuncBuyerUoWFactory) Create() commands.BuyerUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
