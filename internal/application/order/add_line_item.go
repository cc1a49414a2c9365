package order

import (
	"context"

	"github.com/lekimlong/evdealer/internal/domain/catalog"
	"github.com/lekimlong/evdealer/internal/domain/identity"
	"github.com/lekimlong/evdealer/internal/domain/inventory"
	"github.com/lekimlong/evdealer/internal/domain/order"
	apperrors "github.com/lekimlong/evdealer/pkg/errors"
	"github.com/lekimlong/evdealer/pkg/metrics"
)

// AddLineItemUseCase 订单添加明细用例
//
// 涉及:事务处理、行锁防超卖、价格快照
type AddLineItemUseCase struct {
	orderRepo   order.Repository
	stockRepo   inventory.Repository
	catalogRepo catalog.Repository
	tx          Transactor
}

// NewAddLineItemUseCase 创建添加明细用例
func NewAddLineItemUseCase(
	orderRepo order.Repository,
	stockRepo inventory.Repository,
	catalogRepo catalog.Repository,
	tx Transactor,
) *AddLineItemUseCase {
	return &AddLineItemUseCase{
		orderRepo:   orderRepo,
		stockRepo:   stockRepo,
		catalogRepo: catalogRepo,
		tx:          tx,
	}
}

// AddLineItemRequest 添加明细请求
// 配置按名称指定(销售在前台按车型/版本/颜色下单),服务端解析为库存行
type AddLineItemRequest struct {
	OrderID     uint
	ModelName   string
	VariantName string
	ColorName   string
	Quantity    int
}

// AddLineItemResponse 添加明细响应
type AddLineItemResponse struct {
	LineItemID uint   `json:"line_item_id"`
	StockID    uint   `json:"stock_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	FinalPrice string `json:"final_price"`
	SubTotal   string `json:"sub_total"`
	Total      string `json:"total"`
}

// Execute 添加订单明细
//
// 防超卖流程:
//  1. SELECT FOR UPDATE 锁定库存行
//  2. 校验上架状态与可用数量
//  3. 原子扣减库存
//  4. 以当前售价快照创建明细
//  5. 重算订单小计与总额
//
// 全程在一个事务内,任一步失败整体回滚,
// 不会出现"库存扣了明细没建"的中间态
func (uc *AddLineItemUseCase) Execute(ctx context.Context, caller identity.Caller, req AddLineItemRequest) (*AddLineItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, order.ErrInvalidQuantity
	}

	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !caller.OwnsDealer(o.DealerID) {
		return nil, order.ErrAccessDenied
	}

	// 按名称解析配置,再定位到本经销商的库存行
	variant, err := uc.catalogRepo.FindVariantByName(ctx, req.ModelName, req.VariantName)
	if err != nil {
		return nil, err
	}
	color, err := uc.catalogRepo.FindColorByName(ctx, req.ColorName)
	if err != nil {
		return nil, err
	}
	stock, err := uc.stockRepo.FindByConfig(ctx, o.DealerID, variant.ID, color.ID)
	if err != nil {
		return nil, err
	}

	var item *order.LineItem
	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 锁定后再检查,否则并发扣减会超卖
		locked, err := uc.stockRepo.LockByID(txCtx, stock.ID)
		if err != nil {
			return err
		}
		if locked.Status != inventory.StockStatusOnSale {
			return inventory.ErrStockNotOnSale
		}
		if !locked.CanReserve(req.Quantity) {
			return inventory.NewInsufficientError(locked.Quantity, req.Quantity)
		}

		if err := uc.stockRepo.UpdateQuantity(txCtx, locked.ID, -req.Quantity); err != nil {
			return err
		}

		// 单价取锁定时的经销商售价,之后调价不影响本单
		item, err = order.NewLineItem(o.ID, locked.ID, req.Quantity, locked.DealerPrice)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.SaveItem(txCtx, item); err != nil {
			return err
		}

		o.Items = append(o.Items, item)
		o.RecomputeSubTotal()
		return uc.orderRepo.Update(txCtx, o)
	})
	if err != nil {
		metrics.OrderLineItemOpsTotal.WithLabelValues("add", "failure").Inc()
		if apperrors.IsKind(err, apperrors.KindInsufficientInventory) {
			metrics.ReservationFailuresTotal.Inc()
		}
		return nil, err
	}

	metrics.OrderLineItemOpsTotal.WithLabelValues("add", "success").Inc()
	return &AddLineItemResponse{
		LineItemID: item.ID,
		StockID:    item.StockID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice.String(),
		FinalPrice: item.FinalPrice.String(),
		SubTotal:   o.SubTotal.String(),
		Total:      o.TotalAmount.String(),
	}, nil
}
