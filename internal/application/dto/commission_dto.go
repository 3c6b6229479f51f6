package dto

import "github.com/shopspring/decimal"

// CommissionResponse totales de comisión de un partner.
type CommissionResponse struct {
	PartnerID       int64           `json:"partnerId"`
	PartnerName     string          `json:"partnerName"`
	TotalSales      int             `json:"totalSales"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	CommissionRate  decimal.Decimal `json:"commissionRate"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
}
