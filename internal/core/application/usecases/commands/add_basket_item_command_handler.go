package commands

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/basket"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// AddBasketItemCommandHandler handles the business logic for adding a product
// to a basket. The product and its supermarket are resolved from the seeded
// catalog, so prices always come from the server, never from the client.
type AddBasketItemCommandHandler struct {
	uowFactory BasketUoWFactory
	catalog    ports.ProductCatalog
	vendors    ports.VendorRepository
}

// NewAddBasketItemCommandHandler creates a handler for basket add operations.
func NewAddBasketItemCommandHandler(
	uowFactory BasketUoWFactory,
	catalog ports.ProductCatalog,
	vendors ports.VendorRepository,
) AddBasketItemCommandHandler {
	return AddBasketItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		vendors:    vendors,
	}
}

// Handle processes the add command.
//
// The basket is created on first use. A vendor conflict is returned to the
// caller unless the command requests a replace, in which case the basket is
// discarded and restarted with the new item.
func (h *AddBasketItemCommandHandler) Handle(ctx context.Context, cmd AddBasketItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	supermarket, err := h.vendors.Get(ctx, product.VendorID())
	if err != nil {
		return err
	}

	vendorRef, err := basket.NewVendorRef(
		supermarket.ID(), supermarket.Name(), supermarket.Address(), supermarket.Image())
	if err != nil {
		return err
	}

	line, err := basket.NewLine(
		product.ID(), product.Name(), product.Price(), cmd.Quantity(), product.VendorID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	basketRepo := uow.BasketRepository()
	aggregate, err := h.getOrCreateBasket(ctx, basketRepo, cmd.BasketID())
	if err != nil {
		return err
	}

	if err = aggregate.AddLine(line, vendorRef); err != nil {
		if !errors.Is(err, basket.ErrVendorConflict) || !cmd.ReplaceOnConflict() {
			return err
		}
		if err = aggregate.ReplaceWithLine(line, vendorRef); err != nil {
			return err
		}
	}

	if err = basketRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AddBasketItemCommandHandler) getOrCreateBasket(
	ctx context.Context,
	basketRepo ports.BasketRepository,
	basketID kernel.UUID,
) (*basket.Basket, error) {
	aggregate, err := basketRepo.Get(ctx, basketID)
	if err == nil {
		return aggregate, nil
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return basket.NewBasket(basketID)
	}
	return nil, err
}
