package handler

import (
	"ppocha-economy/internal/adapter/http/dto"
	"ppocha-economy/internal/adapter/http/middleware"
	"ppocha-economy/internal/core/ports"
	"ppocha-economy/pkg/response"

	"github.com/gin-gonic/gin"
)

// ShopHandler serves the catalog and purchase verification.
type ShopHandler struct {
	economySvc ports.EconomyService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(economySvc ports.EconomyService) *ShopHandler {
	return &ShopHandler{economySvc: economySvc}
}

// Catalog handles GET /api/shop/catalog. The storefront parameters are
// echoed back; every segment currently sees the same tabs.
func (h *ShopHandler) Catalog(c *gin.Context) {
	var q dto.CatalogQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CatalogResponse{
		Meta: dto.CatalogMeta{
			UID:     resolveUID(c, q.UID),
			Country: orDefault(q.Country, "KR"),
			City:    orDefault(q.City, "Seoul"),
			Segment: orDefault(q.Segment, "default"),
		},
		Tabs: h.economySvc.Catalog().Tabs(),
	})
}

// VerifyPurchase handles POST /api/shop/purchase/verify.
func (h *ShopHandler) VerifyPurchase(c *gin.Context) {
	var req dto.PurchaseVerifyRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	uid := resolveUID(c, req.UID)

	res, err := h.economySvc.VerifyPurchase(c.Request.Context(), ports.PurchaseRequest{
		UserID: uid,
		SKUID:  req.SKUID,
		TxID:   req.TxID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, res.TxID)

	items := []string{res.SKU.ID}
	response.OK(c, dto.PurchaseResponse{
		SKUID:        res.SKU.ID,
		TxID:         res.TxID,
		GrantedItems: items,
		WalletDelta: dto.WalletDelta{
			Gold:     res.Grant.Gold,
			FreeCash: res.Grant.FreeCash,
			PaidCash: res.Grant.PaidCash,
			Items:    items,
		},
		Wallet:     res.Account.Wallet,
		ServerTime: res.ServerTime,
	})
}
