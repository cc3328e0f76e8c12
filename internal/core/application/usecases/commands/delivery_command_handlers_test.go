package commands_test

import (
	"errors"
	"testing"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/buyer"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/ports"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTakeOrderCommandHandler_Handle(t *testing.T) {
	buyerEmail := email(t, "asha@example.com")

	t.Run("claims_order_and_caches_sheet", func(t *testing.T) {
		// Given
		ctx := t.Context()
		a := readyAgent(t, "ravi")
		o := orderIn(t, buyerEmail, order.OnDelivery, "Milk")
		milk := product("Milk")
		seller := catalog.Seller{ID: milk.SellerID, ShopName: "Fresh Dairy"}
		cmd, err := commands.NewAgentOrderCommand("ravi", o.ID())
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("TransitionStatus", ctx, o.ID(), order.Ready, order.OnDelivery).Return(int64(1), nil).Once(),
			r.sellers.On("TransitionAll", ctx, o.ID(), order.Ready, order.OnDelivery).Return(int64(1), nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.catalog.On("Resolve", ctx, mock.Anything).Return(resolutionOf(milk), nil).Once(),
			r.catalog.On("Sellers", ctx, []kernel.UUID{milk.SellerID}).
				Return(map[kernel.UUID]catalog.Seller{seller.ID: seller}, nil).Once(),
			r.buyers.On("Get", ctx, buyerEmail).Return(nil, errs.NewObjectNotFoundError("buyer", buyerEmail)).Once(),
			r.agents.On("Update", ctx, a).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		// When
		err = commands.NewTakeOrderCommandHandler(factory).Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, agent.OnDelivery, a.Status())
		require.NotNil(t, a.ActiveOrderID())
		assert.Equal(t, o.ID(), *a.ActiveOrderID())
		sheet, err := a.OrderSheet()
		require.NoError(t, err)
		require.Len(t, sheet.Items, 1)
		assert.Equal(t, "Fresh Dairy", sheet.Items[0].Seller.ShopName)
		require.NotNil(t, sheet.Buyer.Address)
		assert.Equal(t, "Asha Rao", sheet.Buyer.Address.Name)
		r.assert(t)
	})

	t.Run("lost_race_is_conflict_and_leaves_agent_untouched", func(t *testing.T) {
		ctx := t.Context()
		a := readyAgent(t, "ravi")
		o := orderIn(t, buyerEmail, order.OnDelivery, "Milk")
		cmd, err := commands.NewAgentOrderCommand("ravi", o.ID())
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("TransitionStatus", ctx, o.ID(), order.Ready, order.OnDelivery).Return(int64(0), nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewTakeOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, agent.Ready, a.Status())
		assert.Nil(t, a.ActiveOrderID())
		r.sellers.AssertNotCalled(t, "TransitionAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		r.agents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		r.uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("unknown_order_is_not_found", func(t *testing.T) {
		ctx := t.Context()
		orderID := kernel.NewUUID()
		cmd, err := commands.NewAgentOrderCommand("ravi", orderID)
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(readyAgent(t, "ravi"), nil).Once(),
			r.orders.On("TransitionStatus", ctx, orderID, order.Ready, order.OnDelivery).Return(int64(0), nil).Once(),
			r.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewTakeOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("busy_agent_cannot_claim", func(t *testing.T) {
		ctx := t.Context()
		held := kernel.NewUUID()
		a := deliveringAgent(t, "ravi", held, "")
		cmd, err := commands.NewAgentOrderCommand("ravi", kernel.NewUUID())
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewTakeOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, agent.ErrAgentIsBusy)
		r.orders.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, held, *a.ActiveOrderID())
	})
}

func TestStoreOrderSheetCommandHandler_Handle(t *testing.T) {
	buyerEmail := email(t, "asha@example.com")

	t.Run("refreshes_sheet_for_active_order", func(t *testing.T) {
		ctx := t.Context()
		o := orderIn(t, buyerEmail, order.OnDelivery, "Milk")
		a := deliveringAgent(t, "ravi", o.ID(), "")
		saved, err := buyer.NewBuyer(buyerEmail, "Asha")
		require.NoError(t, err)
		other := addressFields()
		other.Street = "7 Brigade Road"
		otherAddress, err := kernel.NewAddress(other)
		require.NoError(t, err)
		require.NoError(t, saved.SaveAddress(otherAddress))
		cmd, err := commands.NewAgentOrderCommand("ravi", o.ID())
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.catalog.On("Resolve", ctx, mock.Anything).Return(catalog.NewResolution(), nil).Once(),
			r.catalog.On("Sellers", ctx, []kernel.UUID{}).Return(map[kernel.UUID]catalog.Seller{}, nil).Once(),
			r.buyers.On("Get", ctx, buyerEmail).Return(saved, nil).Once(),
			r.agents.On("Update", ctx, a).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewStoreOrderSheetCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		sheet, err := a.OrderSheet()
		require.NoError(t, err)
		assert.Equal(t, "7 Brigade Road", sheet.Buyer.Address.Street)
		require.Len(t, sheet.Items, 1)
		assert.Nil(t, sheet.Items[0].Product)
		assert.Nil(t, sheet.Items[0].Seller)
		r.assert(t)
	})

	t.Run("order_not_held_by_agent", func(t *testing.T) {
		ctx := t.Context()
		o := orderIn(t, buyerEmail, order.OnDelivery, "Milk")
		a := deliveringAgent(t, "ravi", kernel.NewUUID(), "")
		cmd, err := commands.NewAgentOrderCommand("ravi", o.ID())
		require.NoError(t, err)

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once()
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		r.catalog.On("Resolve", ctx, mock.Anything).Return(catalog.NewResolution(), nil).Once()
		r.catalog.On("Sellers", ctx, mock.Anything).Return(map[kernel.UUID]catalog.Seller{}, nil).Once()
		r.buyers.On("Get", ctx, buyerEmail).Return(nil, errs.NewObjectNotFoundError("buyer", buyerEmail)).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewStoreOrderSheetCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, agent.ErrOrderIsNotActive)
		r.agents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestListReadyOrdersCommandHandler_Handle(t *testing.T) {
	buyerEmail := email(t, "asha@example.com")

	t.Run("agent_with_delivery_in_progress_is_redirected", func(t *testing.T) {
		ctx := t.Context()
		a := deliveringAgent(t, "ravi", kernel.NewUUID(), "")
		cmd, err := commands.NewAgentCommand("ravi")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		result, err := commands.NewListReadyOrdersCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.Redirect)
		assert.Empty(t, result.Orders)
		r.orders.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything)
	})

	t.Run("busy_agent_without_artifacts_is_healed", func(t *testing.T) {
		// Given an agent marked OnDelivery with no active order or sheet
		ctx := t.Context()
		a, err := agent.RestoreAgent(kernel.NewUUID(), "ravi", "9000000000", agent.OnDelivery, nil, nil, "")
		require.NoError(t, err)
		o := orderIn(t, buyerEmail, order.Ready, "Milk")
		cmd, err := commands.NewAgentCommand("ravi")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.agents.On("Update", ctx, a).Return(nil).Once(),
			r.orders.On("ListByStatus", ctx, order.Ready).Return([]*order.Order{o}, nil).Once(),
			r.catalog.On("Resolve", ctx, mock.Anything).Return(catalog.NewResolution(), nil).Once(),
			r.catalog.On("Sellers", ctx, mock.Anything).Return(map[kernel.UUID]catalog.Seller{}, nil).Once(),
			r.buyers.On("Get", ctx, buyerEmail).Return(nil, errs.NewObjectNotFoundError("buyer", buyerEmail)).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		// When
		result, err := commands.NewListReadyOrdersCommandHandler(factory).Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.True(t, result.Healed)
		assert.False(t, result.Redirect)
		assert.Equal(t, agent.Ready, a.Status())
		require.Len(t, result.Orders, 1)
		assert.Equal(t, o.ID(), result.Orders[0].OrderID)
		r.assert(t)
	})

	t.Run("ready_agent_sees_orders_without_write", func(t *testing.T) {
		ctx := t.Context()
		first := orderIn(t, buyerEmail, order.Ready, "Milk")
		second := orderIn(t, buyerEmail, order.Ready, "Bread")
		cmd, err := commands.NewAgentCommand("ravi")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(readyAgent(t, "ravi"), nil).Once(),
			r.orders.On("ListByStatus", ctx, order.Ready).Return([]*order.Order{first, second}, nil).Once(),
			r.catalog.On("Resolve", ctx, mock.Anything).Return(catalog.NewResolution(), nil).Twice(),
			r.catalog.On("Sellers", ctx, mock.Anything).Return(map[kernel.UUID]catalog.Seller{}, nil).Once(),
			// One profile lookup per distinct buyer.
			r.buyers.On("Get", ctx, buyerEmail).Return(nil, errs.NewObjectNotFoundError("buyer", buyerEmail)).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		result, err := commands.NewListReadyOrdersCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, result.Healed)
		assert.Len(t, result.Orders, 2)
		r.agents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		r.assert(t)
	})

	t.Run("same_item_name_resolves_per_order", func(t *testing.T) {
		// Given two ready orders naming "Milk" after different products
		ctx := t.Context()
		cowMilk := product("Milk")
		oatMilk := product("Milk")
		first := orderWithProduct(t, buyerEmail, "Milk", cowMilk.ID)
		second := orderWithProduct(t, buyerEmail, "Milk", oatMilk.ID)
		refersTo := func(id kernel.UUID) func([]catalog.Ref) bool {
			return func(refs []catalog.Ref) bool {
				return len(refs) == 1 && refs[0].ProductID != nil && *refs[0].ProductID == id
			}
		}
		cmd, err := commands.NewAgentCommand("ravi")
		require.NoError(t, err)

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(readyAgent(t, "ravi"), nil).Once()
		r.orders.On("ListByStatus", ctx, order.Ready).Return([]*order.Order{first, second}, nil).Once()
		r.catalog.On("Resolve", ctx, mock.MatchedBy(refersTo(cowMilk.ID))).Return(resolutionOf(cowMilk), nil).Once()
		r.catalog.On("Resolve", ctx, mock.MatchedBy(refersTo(oatMilk.ID))).Return(resolutionOf(oatMilk), nil).Once()
		r.catalog.On("Sellers", ctx, []kernel.UUID{cowMilk.SellerID, oatMilk.SellerID}).
			Return(map[kernel.UUID]catalog.Seller{}, nil).Once()
		r.buyers.On("Get", ctx, buyerEmail).Return(nil, errs.NewObjectNotFoundError("buyer", buyerEmail)).Once()
		r.uow.On("Commit", ctx).Return(nil).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		// When
		result, err := commands.NewListReadyOrdersCommandHandler(factory).Handle(ctx, cmd)

		// Then each sheet shows its own product
		require.NoError(t, err)
		require.Len(t, result.Orders, 2)
		require.Len(t, result.Orders[0].Items, 1)
		require.Len(t, result.Orders[1].Items, 1)
		require.NotNil(t, result.Orders[0].Items[0].Product)
		require.NotNil(t, result.Orders[1].Items[0].Product)
		assert.Equal(t, cowMilk.ID, result.Orders[0].Items[0].Product.ID)
		assert.Equal(t, oatMilk.ID, result.Orders[1].Items[0].Product.ID)
		r.assert(t)
	})
}

func TestSendCompletionOtpCommandHandler_Handle(t *testing.T) {
	buyerEmail := email(t, "asha@example.com")
	profile, err := buyer.NewBuyer(buyerEmail, "Asha")
	require.NoError(t, err)

	t.Run("stores_code_and_survives_notifier_failure", func(t *testing.T) {
		// Given
		ctx := t.Context()
		o := orderIn(t, buyerEmail, order.OnDelivery, "Milk")
		a := deliveringAgent(t, "ravi", o.ID(), "1111")
		cmd, err := commands.NewSendCompletionOtpCommand("ravi", buyerEmail)
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.buyers.On("Get", ctx, buyerEmail).Return(profile, nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.agents.On("Update", ctx, a).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Kind == ports.DeliveryCodeNotification && n.To == "asha@example.com"
		})).Return(errors.New("smtp down")).Once()
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		// When
		err = commands.NewSendCompletionOtpCommandHandler(factory, fixedCode("4821"), notifier, discardLogger()).
			Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "4821", a.PendingCode())
		notifier.AssertExpectations(t)
		r.assert(t)
	})

	t.Run("unknown_buyer", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSendCompletionOtpCommand("ravi", buyerEmail)
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.buyers.On("Get", ctx, buyerEmail).Return(nil, errs.NewObjectNotFoundError("buyer", buyerEmail)).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		notifier := new(MockNotifier)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewSendCompletionOtpCommandHandler(factory, fixedCode("4821"), notifier, discardLogger()).
			Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("email_of_another_buyer", func(t *testing.T) {
		ctx := t.Context()
		o := orderIn(t, email(t, "someone@example.com"), order.OnDelivery, "Milk")
		a := deliveringAgent(t, "ravi", o.ID(), "")
		cmd, err := commands.NewSendCompletionOtpCommand("ravi", buyerEmail)
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.buyers.On("Get", ctx, buyerEmail).Return(profile, nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewSendCompletionOtpCommandHandler(factory, fixedCode("4821"), new(MockNotifier), discardLogger()).
			Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, a.PendingCode())
	})
}

func TestVerifyAndCompleteCommandHandler_Handle(t *testing.T) {
	buyerEmail := email(t, "asha@example.com")

	t.Run("correct_code_delivers_order_and_resets_agent", func(t *testing.T) {
		// Given
		ctx := t.Context()
		orderID := kernel.NewUUID()
		a := deliveringAgent(t, "ravi", orderID, "4821")
		cmd, err := commands.NewVerifyAndCompleteCommand("ravi", "4821")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("TransitionStatus", ctx, orderID, order.OnDelivery, order.Delivered).Return(int64(1), nil).Once(),
			r.sellers.On("TransitionAll", ctx, orderID, order.OnDelivery, order.Delivered).Return(int64(2), nil).Once(),
			r.agents.On("Update", ctx, a).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		// When
		err = commands.NewVerifyAndCompleteCommandHandler(factory).Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, agent.Ready, a.Status())
		assert.Nil(t, a.ActiveOrderID())
		assert.Empty(t, a.PendingCode())
		_, sheetErr := a.OrderSheet()
		require.ErrorIs(t, sheetErr, agent.ErrOrderSheetNotFound)
		r.assert(t)
	})

	t.Run("wrong_code_changes_nothing_and_can_be_retried", func(t *testing.T) {
		ctx := t.Context()
		orderID := kernel.NewUUID()
		a := deliveringAgent(t, "ravi", orderID, "4821")
		cmd, err := commands.NewVerifyAndCompleteCommand("ravi", "1234")
		require.NoError(t, err)

		for range 3 {
			r := newRepos()
			mock.InOrder(
				r.uow.On("Begin", ctx).Return(nil).Once(),
				r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
				r.uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockDeliveryUoWFactory)
			factory.On("Create").Return(r.uow).Once()

			err = commands.NewVerifyAndCompleteCommandHandler(factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, agent.ErrInvalidCode)
			r.orders.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			r.agents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		}
		assert.Equal(t, agent.OnDelivery, a.Status())
		assert.Equal(t, "4821", a.PendingCode())
	})

	t.Run("order_already_delivered_still_resets_agent", func(t *testing.T) {
		ctx := t.Context()
		o := orderIn(t, buyerEmail, order.Delivered, "Milk")
		a := deliveringAgent(t, "ravi", o.ID(), "4821")
		cmd, err := commands.NewVerifyAndCompleteCommand("ravi", "4821")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("TransitionStatus", ctx, o.ID(), order.OnDelivery, order.Delivered).Return(int64(0), nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.sellers.On("TransitionAll", ctx, o.ID(), order.OnDelivery, order.Delivered).Return(int64(0), nil).Once(),
			r.agents.On("Update", ctx, a).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewVerifyAndCompleteCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, agent.Ready, a.Status())
	})

	t.Run("order_still_ready_is_conflict", func(t *testing.T) {
		ctx := t.Context()
		o := orderIn(t, buyerEmail, order.Ready, "Milk")
		a := deliveringAgent(t, "ravi", o.ID(), "4821")
		cmd, err := commands.NewVerifyAndCompleteCommand("ravi", "4821")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByNameForUpdate", ctx, "ravi").Return(a, nil).Once(),
			r.orders.On("TransitionStatus", ctx, o.ID(), order.OnDelivery, order.Delivered).Return(int64(0), nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewVerifyAndCompleteCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		r.uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func TestCompleteDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("ready_agent_succeeds", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAgentCommand("ravi")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByName", ctx, "ravi").Return(readyAgent(t, "ravi"), nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockAgentUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewCompleteDeliveryCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		r.assert(t)
	})

	t.Run("unverified_delivery_is_conflict", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAgentCommand("ravi")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("GetByName", ctx, "ravi").Return(deliveringAgent(t, "ravi", kernel.NewUUID(), "4821"), nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockAgentUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		err = commands.NewCompleteDeliveryCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestCreateAgentCommandHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateAgentCommand(" ravi ", "9000000000")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.agents.On("Add", ctx, mock.MatchedBy(func(a *agent.Agent) bool {
				return a.Name() == "ravi" && a.Status() == agent.Ready
			})).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockAgentUoWFactory)
		factory.On("Create").Return(r.uow).Once()

		id, err := commands.NewCreateAgentCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		r.assert(t)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := commands.NewCreateAgentCommand("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
